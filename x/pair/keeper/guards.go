package keeper

import (
	"cosmossdk.io/math"

	"github.com/veilswap/veil/x/pair/types"
)

// AssertMaxSpread enforces the caller-supplied swap bounds. Exactly one mode
// applies, in this priority order:
//
//  1. expectedReturn given: the net return must reach it.
//  2. beliefPrice and maxSpread given: the shortfall against the return
//     implied by the belief price must not exceed maxSpread.
//  3. maxSpread alone: the realized spread ratio must not exceed maxSpread.
//
// With no bound supplied the swap proceeds unconditionally.
func AssertMaxSpread(beliefPrice, maxSpread *math.LegacyDec, expectedReturn *math.Int, offerAmount, returnAmount, commissionAmount, spreadAmount math.Int) error {
	switch {
	case expectedReturn != nil:
		if returnAmount.LT(*expectedReturn) {
			return types.ErrReturnBelowExpected.Wrapf(
				"expected at least %s, got %s", expectedReturn, returnAmount)
		}

	case maxSpread != nil && beliefPrice != nil:
		if !beliefPrice.IsPositive() {
			return types.ErrInvalidParams.Wrapf("belief price must be positive, got %s", beliefPrice)
		}
		grossReturn := returnAmount.Add(commissionAmount)
		expected := math.LegacyNewDecFromInt(offerAmount).Quo(*beliefPrice).TruncateInt()
		shortfall := math.ZeroInt()
		if expected.GT(grossReturn) {
			shortfall = expected.Sub(grossReturn)
		}
		if grossReturn.LT(expected) &&
			math.LegacyNewDecFromInt(shortfall).Quo(math.LegacyNewDecFromInt(expected)).GT(*maxSpread) {
			return types.ErrSpreadExceeded.Wrapf(
				"shortfall %s against belief price %s exceeds max spread %s", shortfall, beliefPrice, maxSpread)
		}

	case maxSpread != nil:
		grossReturn := returnAmount.Add(commissionAmount)
		total := grossReturn.Add(spreadAmount)
		if total.IsPositive() &&
			math.LegacyNewDecFromInt(spreadAmount).Quo(math.LegacyNewDecFromInt(total)).GT(*maxSpread) {
			return types.ErrSpreadExceeded.Wrapf(
				"spread %s of gross %s exceeds max spread %s", spreadAmount, total, maxSpread)
		}
	}

	return nil
}

// AssertSlippageTolerance rejects a deposit whose implied price deviates
// unfavorably from the pool price by more than the given tolerance, in
// either direction. A nil tolerance is a no-op.
func AssertSlippageTolerance(tolerance *math.LegacyDec, deposits, pools [2]math.Int) error {
	if tolerance == nil {
		return nil
	}
	if tolerance.IsNegative() || tolerance.GT(math.LegacyOneDec()) {
		return types.ErrInvalidParams.Wrapf("slippage tolerance must be within [0, 1], got %s", tolerance)
	}
	for i := range deposits {
		if !deposits[i].IsPositive() {
			return types.ErrDegenerateState.Wrapf("deposit[%d] must be positive, got %s", i, deposits[i])
		}
		if !pools[i].IsPositive() {
			return types.ErrDegenerateState.Wrapf("pool[%d] must be positive, got %s", i, pools[i])
		}
	}

	oneMinusTolerance := math.LegacyOneDec().Sub(*tolerance)

	depositRate01 := math.LegacyNewDecFromInt(deposits[0]).Quo(math.LegacyNewDecFromInt(deposits[1]))
	depositRate10 := math.LegacyNewDecFromInt(deposits[1]).Quo(math.LegacyNewDecFromInt(deposits[0]))
	poolRate01 := math.LegacyNewDecFromInt(pools[0]).Quo(math.LegacyNewDecFromInt(pools[1]))
	poolRate10 := math.LegacyNewDecFromInt(pools[1]).Quo(math.LegacyNewDecFromInt(pools[0]))

	if depositRate01.Mul(oneMinusTolerance).GT(poolRate01) ||
		depositRate10.Mul(oneMinusTolerance).GT(poolRate10) {
		return types.ErrSlippageExceeded.Wrapf(
			"deposit ratio %s/%s deviates from pool ratio %s/%s beyond tolerance %s",
			deposits[0], deposits[1], pools[0], pools[1], tolerance)
	}

	return nil
}
