package keeper_test

import (
	"context"
	"testing"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	keepertest "github.com/veilswap/veil/testutil/keeper"
	"github.com/veilswap/veil/x/pair/keeper"
	"github.com/veilswap/veil/x/pair/types"
)

func TestVeilRatio_EvenDrawScalesUp(t *testing.T) {
	nom, denom := keeper.VeilRatio(42)
	require.Equal(t, math.NewInt(10_042), nom)
	require.Equal(t, math.NewInt(10_000), denom)
}

func TestVeilRatio_OddDrawScalesDown(t *testing.T) {
	nom, denom := keeper.VeilRatio(41)
	require.Equal(t, math.NewInt(9959), nom)
	require.Equal(t, math.NewInt(10_000), denom)
}

func TestVeilRatio_NoiseWrapsAtHundred(t *testing.T) {
	// 1234 mod 100 = 34, even draw
	nom, _ := keeper.VeilRatio(1234)
	require.Equal(t, math.NewInt(10_034), nom)

	// zero noise leaves the ratio at one
	nom, _ = keeper.VeilRatio(0)
	require.Equal(t, math.NewInt(10_000), nom)
}

// TestVeilRatio_Bounds sweeps draws and confirms the multiplier never
// leaves [9901, 10099], the ±0.99% band.
func TestVeilRatio_Bounds(t *testing.T) {
	for draw := uint64(0); draw < 1000; draw++ {
		nom, denom := keeper.VeilRatio(draw)
		require.True(t, nom.GTE(math.NewInt(9901)), "draw %d gave nom %s", draw, nom)
		require.True(t, nom.LTE(math.NewInt(10_099)), "draw %d gave nom %s", draw, nom)
		require.Equal(t, math.NewInt(10_000), denom)
	}
}

func TestVeilAmount_Truncates(t *testing.T) {
	scaled, err := keeper.VeilAmount(math.NewInt(999), math.NewInt(10_042), math.NewInt(10_000))
	require.NoError(t, err)
	// 999 * 10042 / 10000 = 1003.19 -> 1003
	require.Equal(t, math.NewInt(1003), scaled)
}

// TestQueryPool_DistinctDrawsDistinctViews runs the same true state through
// two different draws and confirms the reported reserves differ while the
// true reserves never change.
func TestQueryPool_DistinctDrawsDistinctViews(t *testing.T) {
	reserves := keepertest.DefaultPair(math.NewInt(1_000_000), math.NewInt(2_000_000))
	f := keepertest.PairKeeper(t, reserves, math.NewInt(1_400_000), testParams(),
		[]uint64{42, 41})

	first, err := f.Keeper.QueryPool(context.Background())
	require.NoError(t, err)
	second, err := f.Keeper.QueryPool(context.Background())
	require.NoError(t, err)

	require.NotEqual(t, first.Assets[0].Amount, second.Assets[0].Amount)
	require.NotEqual(t, first.Assets[1].Amount, second.Assets[1].Amount)
	require.NotEqual(t, first.TotalShare, second.TotalShare)

	// draw 42: scaled up by 0.42%
	require.Equal(t, math.NewInt(1_004_200), first.Assets[0].Amount)
	require.Equal(t, math.NewInt(2_008_400), first.Assets[1].Amount)
	require.Equal(t, math.NewInt(1_405_880), first.TotalShare)

	// draw 41: scaled down by 0.41%
	require.Equal(t, math.NewInt(995_900), second.Assets[0].Amount)

	// the true state is untouched
	require.Equal(t, math.NewInt(1_000_000), f.Ledger.Reserves[0].Amount)
	require.Equal(t, math.NewInt(2_000_000), f.Ledger.Reserves[1].Amount)
	require.Equal(t, math.NewInt(1_400_000), f.Supply.Total)
}

// TestVeil_ManyDrawsDiffer applies a spread of draws and requires that the
// veiled views are not all identical for the same true reserves.
func TestVeil_ManyDrawsDiffer(t *testing.T) {
	draws := make([]uint64, 0, 64)
	for i := uint64(0); i < 64; i++ {
		draws = append(draws, i*2654435761+17)
	}
	f := keepertest.PairKeeper(t, keepertest.DefaultPair(math.NewInt(1_000_000), math.NewInt(1_000_000)),
		math.NewInt(1_000_000), testParams(), draws)

	seen := make(map[string]struct{})
	for range draws {
		resp, err := f.Keeper.QueryPool(context.Background())
		require.NoError(t, err)
		seen[resp.Assets[0].Amount.String()] = struct{}{}
	}
	require.Greater(t, len(seen), 1, "every draw produced the same veiled view")
}

// TestExecuteSwap_UnaffectedByVeil interleaves observer queries with an
// executed swap and confirms the execute path prices on true reserves.
func TestExecuteSwap_UnaffectedByVeil(t *testing.T) {
	infos := types.SortAssetInfos(types.NewNativeAssetInfo("uveil"), types.NewNativeAssetInfo("uusdt"))
	reserves := [2]types.Asset{
		types.NewAsset(infos[0], math.NewInt(101_000)),
		types.NewAsset(infos[1], math.NewInt(100_000)),
	}
	f := keepertest.PairKeeper(t, reserves, math.NewInt(100_000), testParams(),
		[]uint64{98, 97})

	_, err := f.Keeper.QueryPool(context.Background())
	require.NoError(t, err)

	result, err := f.Keeper.ExecuteSwap(context.Background(),
		types.NewAsset(infos[0], math.NewInt(1000)), nil, nil, nil)
	require.NoError(t, err)
	require.Equal(t, math.NewInt(989), result.ReturnAsset.Amount)

	_, err = f.Keeper.QueryPool(context.Background())
	require.NoError(t, err)

	// two observer queries, two draws; the swap consumed none
	require.Equal(t, 2, f.Entropy.Consumed())
}
