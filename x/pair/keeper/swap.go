package keeper

import (
	"context"

	"cosmossdk.io/math"

	"github.com/veilswap/veil/x/pair/types"
)

// ComputeSwap prices a forward swap against the constant-product invariant.
//
// offerPool and askPool are the true reserves before the offered amount is
// credited to the offer side. The returned amounts are, in order: the net
// amount leaving the ask pool, the price impact against the marginal
// pre-trade price, and the commission retained in the pool.
//
// All reserve-scale steps go through SafeMath; the commission split never
// lets the invariant offerPool*askPool decrease.
func ComputeSwap(offerPool, askPool, offerAmount math.Int, params types.Params) (returnAmount, spreadAmount, commissionAmount math.Int, err error) {
	zero := math.ZeroInt()

	if err := params.Validate(); err != nil {
		return zero, zero, zero, err
	}
	if !offerPool.IsPositive() || !askPool.IsPositive() {
		return zero, zero, zero, types.ErrDegenerateState.Wrapf(
			"swap requires positive reserves, got offer_pool %s, ask_pool %s", offerPool, askPool)
	}
	if offerAmount.IsNegative() {
		return zero, zero, zero, types.ErrInvalidAsset.Wrapf("negative offer amount %s", offerAmount)
	}

	// cp = offer_pool * ask_pool
	cp, err := SafeMul(offerPool, askPool)
	if err != nil {
		return zero, zero, zero, err
	}

	// return_amount = ask_pool - cp / (offer_pool + offer_amount)
	newOfferPool, err := SafeAdd(offerPool, offerAmount)
	if err != nil {
		return zero, zero, zero, err
	}
	quotient, err := SafeQuo(cp, newOfferPool)
	if err != nil {
		return zero, zero, zero, err
	}
	grossReturn, err := SafeSub(askPool, quotient)
	if err != nil {
		return zero, zero, zero, err
	}

	// spread = offer_amount * ask_pool / offer_pool - return_amount,
	// floored at zero
	marginalReturn, err := SafeMulDiv(offerAmount, askPool, offerPool)
	if err != nil {
		return zero, zero, zero, err
	}
	spreadAmount = math.ZeroInt()
	if marginalReturn.GT(grossReturn) {
		spreadAmount = marginalReturn.Sub(grossReturn)
	}

	// commission_amount = return_amount * rate_nom / rate_denom,
	// retained in the pool
	commissionAmount, err = SafeMulDiv(grossReturn, params.CommissionRateNom, params.CommissionRateDenom)
	if err != nil {
		return zero, zero, zero, err
	}
	returnAmount, err = SafeSub(grossReturn, commissionAmount)
	if err != nil {
		return zero, zero, zero, err
	}

	if returnAmount, err = EnsureAmount(returnAmount); err != nil {
		return zero, zero, zero, err
	}
	if spreadAmount, err = EnsureAmount(spreadAmount); err != nil {
		return zero, zero, zero, err
	}
	if commissionAmount, err = EnsureAmount(commissionAmount); err != nil {
		return zero, zero, zero, err
	}
	return returnAmount, spreadAmount, commissionAmount, nil
}

// ComputeOfferAmount derives the offer amount required for a desired ask
// amount: the inverse of ComputeSwap. This path only serves reverse quotes,
// so fee back-calculation may use decimal math instead of wide integers.
func ComputeOfferAmount(offerPool, askPool, askAmount math.Int, params types.Params) (offerAmount, spreadAmount, commissionAmount math.Int, err error) {
	zero := math.ZeroInt()

	if err := params.Validate(); err != nil {
		return zero, zero, zero, err
	}
	if !offerPool.IsPositive() || !askPool.IsPositive() {
		return zero, zero, zero, types.ErrDegenerateState.Wrapf(
			"swap requires positive reserves, got offer_pool %s, ask_pool %s", offerPool, askPool)
	}
	if askAmount.IsNegative() {
		return zero, zero, zero, types.ErrInvalidAsset.Wrapf("negative ask amount %s", askAmount)
	}

	oneMinusCommission := math.LegacyOneDec().Sub(params.CommissionRate())
	if !oneMinusCommission.IsPositive() {
		return zero, zero, zero, types.ErrInvalidFeeRate.Wrapf(
			"commission rate %s/%s leaves no return", params.CommissionRateNom, params.CommissionRateDenom)
	}

	// gross ask before the commission was deducted
	beforeCommission := math.LegacyNewDecFromInt(askAmount).Quo(oneMinusCommission).TruncateInt()

	// offer_amount = cp / (ask_pool - ask_amount / (1 - rate)) - offer_pool
	remainingAsk, err := SafeSub(askPool, beforeCommission)
	if err != nil || remainingAsk.IsZero() {
		return zero, zero, zero, types.ErrInsufficientLiquidity.Wrapf(
			"ask amount %s would exhaust ask pool %s at commission rate %s/%s",
			askAmount, askPool, params.CommissionRateNom, params.CommissionRateDenom)
	}
	cp, err := SafeMul(offerPool, askPool)
	if err != nil {
		return zero, zero, zero, err
	}
	newOfferPool, err := SafeQuo(cp, remainingAsk)
	if err != nil {
		return zero, zero, zero, err
	}
	offerAmount, err = SafeSub(newOfferPool, offerPool)
	if err != nil {
		return zero, zero, zero, err
	}

	// spread = offer_amount * ask_pool / offer_pool - gross ask,
	// floored at zero
	marginalReturn := math.LegacyNewDecFromInt(offerAmount).
		Mul(math.LegacyNewDecFromInt(askPool)).
		Quo(math.LegacyNewDecFromInt(offerPool)).
		TruncateInt()
	spreadAmount = math.ZeroInt()
	if marginalReturn.GT(beforeCommission) {
		spreadAmount = marginalReturn.Sub(beforeCommission)
	}

	commissionAmount = math.LegacyNewDecFromInt(beforeCommission).Mul(params.CommissionRate()).TruncateInt()

	if offerAmount, err = EnsureAmount(offerAmount); err != nil {
		return zero, zero, zero, err
	}
	if spreadAmount, err = EnsureAmount(spreadAmount); err != nil {
		return zero, zero, zero, err
	}
	if commissionAmount, err = EnsureAmount(commissionAmount); err != nil {
		return zero, zero, zero, err
	}
	return offerAmount, spreadAmount, commissionAmount, nil
}

// ExecuteSwap prices a state-changing swap on the true reserves.
//
// The ledger reports balances in which the offered amount has already been
// credited to the pair, so the matched side is reduced by the offer before
// pricing. The caller commits the resulting balance changes; this keeper
// never mutates state itself.
func (k Keeper) ExecuteSwap(ctx context.Context, offerAsset types.Asset, beliefPrice, maxSpread *math.LegacyDec, expectedReturn *math.Int) (types.SwapResult, error) {
	if err := offerAsset.Validate(); err != nil {
		return types.SwapResult{}, err
	}

	reserves, err := k.ledger.PairReserves(ctx)
	if err != nil {
		return types.SwapResult{}, err
	}

	var offerPool, askPool types.Asset
	switch {
	case offerAsset.Info.Equal(reserves[0].Info):
		offerPool, askPool = reserves[0], reserves[1]
	case offerAsset.Info.Equal(reserves[1].Info):
		offerPool, askPool = reserves[1], reserves[0]
	default:
		return types.SwapResult{}, types.ErrInvalidAsset.Wrapf(
			"offer asset %s does not match pair %s/%s", offerAsset.Info, reserves[0].Info, reserves[1].Info)
	}

	offerReserve, err := SafeSub(offerPool.Amount, offerAsset.Amount)
	if err != nil {
		return types.SwapResult{}, types.ErrDegenerateState.Wrapf(
			"offer amount %s larger than pool balance %s", offerAsset.Amount, offerPool.Amount)
	}

	params, err := k.settings.PairSettings(ctx)
	if err != nil {
		return types.SwapResult{}, err
	}

	returnAmount, spreadAmount, commissionAmount, err := ComputeSwap(offerReserve, askPool.Amount, offerAsset.Amount, params)
	if err != nil {
		k.metrics.SwapsComputed.WithLabelValues("failed").Inc()
		return types.SwapResult{}, err
	}

	if err := AssertMaxSpread(beliefPrice, maxSpread, expectedReturn, offerAsset.Amount, returnAmount, commissionAmount, spreadAmount); err != nil {
		k.metrics.SwapsComputed.WithLabelValues("rejected").Inc()
		k.logger.Debug("swap rejected by spread guard",
			"offer_asset", offerAsset.Info.String(),
			"offer_amount", offerAsset.Amount.String(),
			"return_amount", returnAmount.String(),
			"spread_amount", spreadAmount.String(),
			"error", err,
		)
		return types.SwapResult{}, err
	}

	if err := CheckSwapInvariant(offerReserve, askPool.Amount, offerAsset.Amount, returnAmount); err != nil {
		k.metrics.SwapsComputed.WithLabelValues("failed").Inc()
		return types.SwapResult{}, err
	}

	k.metrics.SwapsComputed.WithLabelValues("success").Inc()
	k.metrics.SwapVolume.WithLabelValues(offerPool.Info.String(), "in").Add(metricAmount(offerAsset.Amount))
	k.metrics.SwapVolume.WithLabelValues(askPool.Info.String(), "out").Add(metricAmount(returnAmount))
	gross := returnAmount.Add(commissionAmount).Add(spreadAmount)
	if gross.IsPositive() {
		k.metrics.SwapSpreadRatio.Observe(
			math.LegacyNewDecFromInt(spreadAmount).Quo(math.LegacyNewDecFromInt(gross)).MustFloat64())
	}

	k.logger.Debug("swap computed",
		"offer_asset", offerAsset.Info.String(),
		"ask_asset", askPool.Info.String(),
		"offer_amount", offerAsset.Amount.String(),
		"return_amount", returnAmount.String(),
		"spread_amount", spreadAmount.String(),
		"commission_amount", commissionAmount.String(),
	)

	return types.SwapResult{
		ReturnAsset:      types.NewAsset(askPool.Info, returnAmount),
		SpreadAmount:     spreadAmount,
		CommissionAmount: commissionAmount,
	}, nil
}
