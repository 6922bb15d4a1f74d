package keeper_test

import (
	"context"
	"testing"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	keepertest "github.com/veilswap/veil/testutil/keeper"
	"github.com/veilswap/veil/x/pair/types"
)

func TestQuerySimulation_ZeroNoiseMatchesTrueQuote(t *testing.T) {
	reserves := keepertest.DefaultPair(math.NewInt(100_000), math.NewInt(100_000))
	// draw 0 leaves the veil multiplier at exactly one
	f := keepertest.PairKeeper(t, reserves, math.NewInt(100_000), testParams(), []uint64{0})

	resp, err := f.Keeper.QuerySimulation(context.Background(),
		types.NewAsset(reserves[0].Info, math.NewInt(1000)))
	require.NoError(t, err)
	require.Equal(t, math.NewInt(989), resp.ReturnAmount)
	require.Equal(t, math.NewInt(9), resp.SpreadAmount)
	require.Equal(t, math.NewInt(2), resp.CommissionAmount)
	require.Equal(t, 1, f.Entropy.Consumed())
}

func TestQuerySimulation_VeiledQuoteDiffers(t *testing.T) {
	reserves := keepertest.DefaultPair(math.NewInt(100_000), math.NewInt(100_000))
	f := keepertest.PairKeeper(t, reserves, math.NewInt(100_000), testParams(), []uint64{0, 98})

	exact, err := f.Keeper.QuerySimulation(context.Background(),
		types.NewAsset(reserves[0].Info, math.NewInt(10_000)))
	require.NoError(t, err)

	veiled, err := f.Keeper.QuerySimulation(context.Background(),
		types.NewAsset(reserves[0].Info, math.NewInt(10_000)))
	require.NoError(t, err)

	require.NotEqual(t, exact.ReturnAmount, veiled.ReturnAmount)
}

func TestQuerySimulation_ForeignAsset(t *testing.T) {
	reserves := keepertest.DefaultPair(math.NewInt(100_000), math.NewInt(100_000))
	f := keepertest.PairKeeper(t, reserves, math.NewInt(100_000), testParams(), []uint64{0})

	_, err := f.Keeper.QuerySimulation(context.Background(),
		types.NewAsset(types.NewNativeAssetInfo("uatom"), math.NewInt(1000)))
	require.Error(t, err)
	require.ErrorIs(t, err, types.ErrInvalidAsset)
}

func TestQueryReverseSimulation_ZeroNoise(t *testing.T) {
	reserves := keepertest.DefaultPair(math.NewInt(100_000), math.NewInt(100_000))
	f := keepertest.PairKeeper(t, reserves, math.NewInt(100_000), testParams(), []uint64{0})

	resp, err := f.Keeper.QueryReverseSimulation(context.Background(),
		types.NewAsset(reserves[1].Info, math.NewInt(989)))
	require.NoError(t, err)
	require.Equal(t, math.NewInt(1001), resp.OfferAmount)
	require.Equal(t, math.NewInt(10), resp.SpreadAmount)
	require.Equal(t, math.NewInt(2), resp.CommissionAmount)
	require.Equal(t, 1, f.Entropy.Consumed())
}

func TestQueries_OneDrawEach(t *testing.T) {
	reserves := keepertest.DefaultPair(math.NewInt(100_000), math.NewInt(100_000))
	f := keepertest.PairKeeper(t, reserves, math.NewInt(100_000), testParams(), []uint64{1, 2, 3})

	_, err := f.Keeper.QueryPool(context.Background())
	require.NoError(t, err)
	require.Equal(t, 1, f.Entropy.Consumed())

	_, err = f.Keeper.QuerySimulation(context.Background(),
		types.NewAsset(reserves[0].Info, math.NewInt(1000)))
	require.NoError(t, err)
	require.Equal(t, 2, f.Entropy.Consumed())

	_, err = f.Keeper.QueryReverseSimulation(context.Background(),
		types.NewAsset(reserves[1].Info, math.NewInt(100)))
	require.NoError(t, err)
	require.Equal(t, 3, f.Entropy.Consumed())
}

func TestQueryPool_EntropyUnavailable(t *testing.T) {
	reserves := keepertest.DefaultPair(math.NewInt(100_000), math.NewInt(100_000))
	f := keepertest.PairKeeper(t, reserves, math.NewInt(100_000), testParams(), nil)

	_, err := f.Keeper.QueryPool(context.Background())
	require.Error(t, err)
	require.ErrorIs(t, err, types.ErrEntropyUnavailable)
}
