package keeper

import (
	"context"

	"cosmossdk.io/math"

	"github.com/veilswap/veil/x/pair/types"
)

// InitialLiquidityShares computes the shares minted for the first deposit:
// floor(sqrt(deposit0 * deposit1)). The geometric mean makes the initial
// mint independent of the deposit ratio, preventing share manipulation by
// the first depositor.
func InitialLiquidityShares(deposit0, deposit1 math.Int) (math.Int, error) {
	if deposit0.IsNegative() || deposit1.IsNegative() {
		return math.Int{}, types.ErrInvalidParams.Wrapf(
			"deposits must be non-negative, got %s, %s", deposit0, deposit1)
	}
	product, err := SafeMul(deposit0, deposit1)
	if err != nil {
		return math.Int{}, err
	}
	shares, err := SafeSqrt(product)
	if err != nil {
		return math.Int{}, err
	}
	return EnsureAmount(shares)
}

// AdditionalLiquidityShares computes the shares minted for a deposit into a
// funded pool: min(deposit0 * total / pool0, deposit1 * total / pool1).
// Taking the minimum of the two pro-rata candidates prevents a depositor
// from minting against only the richer side, which would dilute holders.
func AdditionalLiquidityShares(deposit0, deposit1, pool0, pool1, totalShare math.Int) (math.Int, error) {
	if !pool0.IsPositive() || !pool1.IsPositive() {
		return math.Int{}, types.ErrDegenerateState.Wrapf(
			"pool has shares but empty reserves: pool0 %s, pool1 %s", pool0, pool1)
	}
	share0, err := SafeMulDiv(deposit0, totalShare, pool0)
	if err != nil {
		return math.Int{}, err
	}
	share1, err := SafeMulDiv(deposit1, totalShare, pool1)
	if err != nil {
		return math.Int{}, err
	}
	shares := math.MinInt(share0, share1)
	return EnsureAmount(shares)
}

// WithdrawalAmount computes the amount of one reserve released by burning
// burnAmount shares: reserve * burn / total, truncating. The caller is
// responsible for burn <= total; a zero total share supply is degenerate.
func WithdrawalAmount(reserve, burnAmount, totalShare math.Int) (math.Int, error) {
	if totalShare.IsZero() {
		return math.Int{}, types.ErrDegenerateState.Wrap("withdrawal from pool with zero share supply")
	}
	amount, err := SafeMulDiv(reserve, burnAmount, totalShare)
	if err != nil {
		return math.Int{}, err
	}
	return EnsureAmount(amount)
}

// ProvideLiquidity computes the shares minted for a deposit against the
// current true reserves and share supply. Deposits arrive unordered and are
// matched to the pair sides by asset identity. The caller commits the
// reserve credits and the share mint.
func (k Keeper) ProvideLiquidity(ctx context.Context, assets [2]types.Asset, slippageTolerance *math.LegacyDec) (math.Int, error) {
	for _, asset := range assets {
		if err := asset.Validate(); err != nil {
			return math.Int{}, err
		}
	}

	reserves, err := k.ledger.PairReserves(ctx)
	if err != nil {
		return math.Int{}, err
	}

	// match deposits to the canonical pair ordering
	var deposits [2]math.Int
	for i := range reserves {
		matched := false
		for _, asset := range assets {
			if asset.Info.Equal(reserves[i].Info) {
				deposits[i] = asset.Amount
				matched = true
				break
			}
		}
		if !matched {
			return math.Int{}, types.ErrInvalidAsset.Wrapf(
				"no deposit given for pair side %s", reserves[i].Info)
		}
	}

	pools := [2]math.Int{reserves[0].Amount, reserves[1].Amount}
	if err := AssertSlippageTolerance(slippageTolerance, deposits, pools); err != nil {
		k.metrics.GuardRejections.WithLabelValues("slippage_tolerance").Inc()
		k.logger.Debug("deposit rejected by slippage guard",
			"deposit0", deposits[0].String(),
			"deposit1", deposits[1].String(),
			"error", err,
		)
		return math.Int{}, err
	}

	totalShare, err := k.supply.TotalShare(ctx)
	if err != nil {
		return math.Int{}, err
	}

	var shares math.Int
	if totalShare.IsZero() {
		shares, err = InitialLiquidityShares(deposits[0], deposits[1])
	} else {
		shares, err = AdditionalLiquidityShares(deposits[0], deposits[1], pools[0], pools[1], totalShare)
	}
	if err != nil {
		return math.Int{}, err
	}

	k.metrics.SharesMinted.Add(metricAmount(shares))
	k.logger.Debug("liquidity shares computed",
		"deposit0", deposits[0].String(),
		"deposit1", deposits[1].String(),
		"total_share", totalShare.String(),
		"shares", shares.String(),
	)
	return shares, nil
}

// WithdrawLiquidity computes the per-side refunds for burning burnAmount
// shares against the current true reserves and share supply. The caller
// commits the reserve debits and the share burn.
func (k Keeper) WithdrawLiquidity(ctx context.Context, burnAmount math.Int) ([2]types.Asset, error) {
	if burnAmount.IsNil() || !burnAmount.IsPositive() {
		return [2]types.Asset{}, types.ErrInvalidParams.Wrapf("burn amount must be positive, got %v", burnAmount)
	}

	reserves, err := k.ledger.PairReserves(ctx)
	if err != nil {
		return [2]types.Asset{}, err
	}
	totalShare, err := k.supply.TotalShare(ctx)
	if err != nil {
		return [2]types.Asset{}, err
	}

	var refunds [2]types.Asset
	for i := range reserves {
		amount, err := WithdrawalAmount(reserves[i].Amount, burnAmount, totalShare)
		if err != nil {
			return [2]types.Asset{}, err
		}
		refunds[i] = types.NewAsset(reserves[i].Info, amount)
	}

	k.metrics.SharesBurned.Add(metricAmount(burnAmount))
	k.logger.Debug("withdrawal computed",
		"burn_amount", burnAmount.String(),
		"total_share", totalShare.String(),
		"refund0", refunds[0].String(),
		"refund1", refunds[1].String(),
	)
	return refunds, nil
}
