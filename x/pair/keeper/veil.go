package keeper

import (
	"context"

	"cosmossdk.io/math"

	"github.com/veilswap/veil/x/pair/types"
)

// Observer queries never see the literal reserves. Each query consumes one
// entropy draw and scales every reported figure by nom/10000, with nom drawn
// from 10000±(draw mod 100) and the sign taken from the draw's parity. The
// true accounting state is untouched; only the reported copy is scaled.
//
// The distribution is deliberately kept exactly as downstream consumers
// expect it: up to ±0.99%, keyed off a single draw.

const veilDenom = 10_000

// VeilRatio derives the multiplier ratio from one entropy draw.
func VeilRatio(draw uint64) (nom, denom math.Int) {
	noise := math.NewIntFromUint64(draw % 100)
	denom = math.NewInt(veilDenom)
	if draw%2 == 0 {
		nom = denom.Add(noise)
	} else {
		nom = denom.Sub(noise)
	}
	return nom, denom
}

// VeilAmount scales a single reported amount by nom/denom, truncating.
func VeilAmount(amount, nom, denom math.Int) (math.Int, error) {
	scaled, err := SafeMulDiv(amount, nom, denom)
	if err != nil {
		return math.Int{}, err
	}
	return EnsureAmount(scaled)
}

// veiledView draws once and returns the scaled copies of the reserves and
// the share supply for observer reporting.
func (k Keeper) veiledView(ctx context.Context, reserves [2]types.Asset, totalShare math.Int) ([2]types.Asset, math.Int, error) {
	draw, err := k.entropy.Draw(ctx)
	if err != nil {
		return [2]types.Asset{}, math.Int{}, types.ErrEntropyUnavailable.Wrapf("entropy draw failed: %v", err)
	}
	k.metrics.VeilDraws.Inc()

	nom, denom := VeilRatio(draw)

	var veiled [2]types.Asset
	for i := range reserves {
		amount, err := VeilAmount(reserves[i].Amount, nom, denom)
		if err != nil {
			return [2]types.Asset{}, math.Int{}, err
		}
		veiled[i] = types.NewAsset(reserves[i].Info, amount)
	}
	veiledShare, err := VeilAmount(totalShare, nom, denom)
	if err != nil {
		return [2]types.Asset{}, math.Int{}, err
	}
	return veiled, veiledShare, nil
}
