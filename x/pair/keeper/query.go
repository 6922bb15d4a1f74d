package keeper

import (
	"context"

	"github.com/veilswap/veil/x/pair/types"
)

// Observer read paths. Every query works on the veiled copy of the reserves;
// the execute paths in swap.go and liquidity.go always use the true state.

// QueryPool reports the pair reserves and share supply to an observer.
func (k Keeper) QueryPool(ctx context.Context) (types.PoolResponse, error) {
	reserves, err := k.ledger.PairReserves(ctx)
	if err != nil {
		return types.PoolResponse{}, err
	}
	totalShare, err := k.supply.TotalShare(ctx)
	if err != nil {
		return types.PoolResponse{}, err
	}

	veiled, veiledShare, err := k.veiledView(ctx, reserves, totalShare)
	if err != nil {
		return types.PoolResponse{}, err
	}

	k.metrics.QuotesServed.WithLabelValues("pool").Inc()
	return types.PoolResponse{
		Assets:     veiled,
		TotalShare: veiledShare,
	}, nil
}

// QuerySimulation quotes a forward swap for an observer. The mechanism is
// the real swap math run on veiled reserves, so the return/spread/commission
// split stays representative without exposing the literal state.
func (k Keeper) QuerySimulation(ctx context.Context, offerAsset types.Asset) (types.SimulationResponse, error) {
	if err := offerAsset.Validate(); err != nil {
		return types.SimulationResponse{}, err
	}

	reserves, err := k.ledger.PairReserves(ctx)
	if err != nil {
		return types.SimulationResponse{}, err
	}
	totalShare, err := k.supply.TotalShare(ctx)
	if err != nil {
		return types.SimulationResponse{}, err
	}
	veiled, _, err := k.veiledView(ctx, reserves, totalShare)
	if err != nil {
		return types.SimulationResponse{}, err
	}

	var offerPool, askPool types.Asset
	switch {
	case offerAsset.Info.Equal(veiled[0].Info):
		offerPool, askPool = veiled[0], veiled[1]
	case offerAsset.Info.Equal(veiled[1].Info):
		offerPool, askPool = veiled[1], veiled[0]
	default:
		return types.SimulationResponse{}, types.ErrInvalidAsset.Wrapf(
			"offer asset %s does not match pair %s/%s", offerAsset.Info, veiled[0].Info, veiled[1].Info)
	}

	params, err := k.settings.PairSettings(ctx)
	if err != nil {
		return types.SimulationResponse{}, err
	}

	returnAmount, spreadAmount, commissionAmount, err := ComputeSwap(offerPool.Amount, askPool.Amount, offerAsset.Amount, params)
	if err != nil {
		return types.SimulationResponse{}, err
	}

	k.metrics.QuotesServed.WithLabelValues("simulation").Inc()
	return types.SimulationResponse{
		ReturnAmount:     returnAmount,
		SpreadAmount:     spreadAmount,
		CommissionAmount: commissionAmount,
	}, nil
}

// QueryReverseSimulation quotes the offer amount needed for a desired ask
// amount, on veiled reserves.
func (k Keeper) QueryReverseSimulation(ctx context.Context, askAsset types.Asset) (types.ReverseSimulationResponse, error) {
	if err := askAsset.Validate(); err != nil {
		return types.ReverseSimulationResponse{}, err
	}

	reserves, err := k.ledger.PairReserves(ctx)
	if err != nil {
		return types.ReverseSimulationResponse{}, err
	}
	totalShare, err := k.supply.TotalShare(ctx)
	if err != nil {
		return types.ReverseSimulationResponse{}, err
	}
	veiled, _, err := k.veiledView(ctx, reserves, totalShare)
	if err != nil {
		return types.ReverseSimulationResponse{}, err
	}

	var offerPool, askPool types.Asset
	switch {
	case askAsset.Info.Equal(veiled[0].Info):
		askPool, offerPool = veiled[0], veiled[1]
	case askAsset.Info.Equal(veiled[1].Info):
		askPool, offerPool = veiled[1], veiled[0]
	default:
		return types.ReverseSimulationResponse{}, types.ErrInvalidAsset.Wrapf(
			"ask asset %s does not match pair %s/%s", askAsset.Info, veiled[0].Info, veiled[1].Info)
	}

	params, err := k.settings.PairSettings(ctx)
	if err != nil {
		return types.ReverseSimulationResponse{}, err
	}

	offerAmount, spreadAmount, commissionAmount, err := ComputeOfferAmount(offerPool.Amount, askPool.Amount, askAsset.Amount, params)
	if err != nil {
		return types.ReverseSimulationResponse{}, err
	}

	k.metrics.QuotesServed.WithLabelValues("reverse_simulation").Inc()
	return types.ReverseSimulationResponse{
		OfferAmount:      offerAmount,
		SpreadAmount:     spreadAmount,
		CommissionAmount: commissionAmount,
	}, nil
}
