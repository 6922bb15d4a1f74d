package keeper_test

import (
	"testing"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	"github.com/veilswap/veil/x/pair/keeper"
	"github.com/veilswap/veil/x/pair/types"
)

func TestAssertMaxSpread_ExpectedReturn(t *testing.T) {
	expected := math.NewInt(1000)

	// realized 999 falls short
	err := keeper.AssertMaxSpread(nil, nil, &expected,
		math.NewInt(1000), math.NewInt(999), math.NewInt(3), math.NewInt(10))
	require.Error(t, err)
	require.ErrorIs(t, err, types.ErrReturnBelowExpected)

	// realized exactly 1000 passes
	err = keeper.AssertMaxSpread(nil, nil, &expected,
		math.NewInt(1000), math.NewInt(1000), math.NewInt(3), math.NewInt(10))
	require.NoError(t, err)
}

// TestAssertMaxSpread_ExpectedReturnPriority verifies that expectedReturn
// wins over the other bounds when several are supplied.
func TestAssertMaxSpread_ExpectedReturnPriority(t *testing.T) {
	expected := math.NewInt(1)
	belief := math.LegacyNewDecWithPrec(9, 1) // 0.9
	spread := math.LegacyNewDecWithPrec(1, 4) // 0.01%, would reject on its own

	err := keeper.AssertMaxSpread(&belief, &spread, &expected,
		math.NewInt(1000), math.NewInt(989), math.NewInt(2), math.NewInt(9))
	require.NoError(t, err)
}

func TestAssertMaxSpread_BeliefPrice(t *testing.T) {
	belief := math.LegacyNewDecWithPrec(9, 1) // expected return 1000/0.9 = 1111
	tight := math.LegacyNewDecWithPrec(5, 2)  // 5%
	loose := math.LegacyNewDecWithPrec(2, 1)  // 20%

	// gross return 991, shortfall 120/1111 ≈ 10.8%
	err := keeper.AssertMaxSpread(&belief, &tight, nil,
		math.NewInt(1000), math.NewInt(989), math.NewInt(2), math.NewInt(9))
	require.Error(t, err)
	require.ErrorIs(t, err, types.ErrSpreadExceeded)

	err = keeper.AssertMaxSpread(&belief, &loose, nil,
		math.NewInt(1000), math.NewInt(989), math.NewInt(2), math.NewInt(9))
	require.NoError(t, err)
}

func TestAssertMaxSpread_BeliefPriceZero(t *testing.T) {
	belief := math.LegacyZeroDec()
	spread := math.LegacyNewDecWithPrec(5, 2)

	err := keeper.AssertMaxSpread(&belief, &spread, nil,
		math.NewInt(1000), math.NewInt(989), math.NewInt(2), math.NewInt(9))
	require.Error(t, err)
	require.ErrorIs(t, err, types.ErrInvalidParams)
}

func TestAssertMaxSpread_SpreadOnly(t *testing.T) {
	// spread ratio = 9 / (989 + 2 + 9) = 0.9%
	tight := math.LegacyNewDecWithPrec(5, 3) // 0.5%
	loose := math.LegacyNewDecWithPrec(1, 2) // 1%

	err := keeper.AssertMaxSpread(nil, &tight, nil,
		math.NewInt(1000), math.NewInt(989), math.NewInt(2), math.NewInt(9))
	require.Error(t, err)
	require.ErrorIs(t, err, types.ErrSpreadExceeded)

	err = keeper.AssertMaxSpread(nil, &loose, nil,
		math.NewInt(1000), math.NewInt(989), math.NewInt(2), math.NewInt(9))
	require.NoError(t, err)
}

func TestAssertMaxSpread_NoBounds(t *testing.T) {
	err := keeper.AssertMaxSpread(nil, nil, nil,
		math.NewInt(1000), math.NewInt(1), math.NewInt(0), math.NewInt(999))
	require.NoError(t, err)
}

func TestAssertSlippageTolerance_NoOp(t *testing.T) {
	err := keeper.AssertSlippageTolerance(nil,
		[2]math.Int{math.NewInt(1), math.NewInt(1_000_000)},
		[2]math.Int{math.NewInt(1_000_000), math.NewInt(1)})
	require.NoError(t, err)
}

func TestAssertSlippageTolerance_WithinBounds(t *testing.T) {
	tolerance := math.LegacyNewDecWithPrec(1, 1) // 10%

	err := keeper.AssertSlippageTolerance(&tolerance,
		[2]math.Int{math.NewInt(1000), math.NewInt(2000)},
		[2]math.Int{math.NewInt(10_000), math.NewInt(20_000)})
	require.NoError(t, err)
}

func TestAssertSlippageTolerance_Exceeded(t *testing.T) {
	tolerance := math.LegacyNewDecWithPrec(1, 1) // 10%

	// deposit implies price 1:1 against a 1:2 pool
	err := keeper.AssertSlippageTolerance(&tolerance,
		[2]math.Int{math.NewInt(1000), math.NewInt(1000)},
		[2]math.Int{math.NewInt(10_000), math.NewInt(20_000)})
	require.Error(t, err)
	require.ErrorIs(t, err, types.ErrSlippageExceeded)

	// and symmetrically in the other direction
	err = keeper.AssertSlippageTolerance(&tolerance,
		[2]math.Int{math.NewInt(1000), math.NewInt(4000)},
		[2]math.Int{math.NewInt(10_000), math.NewInt(20_000)})
	require.Error(t, err)
	require.ErrorIs(t, err, types.ErrSlippageExceeded)
}

func TestAssertSlippageTolerance_InvalidTolerance(t *testing.T) {
	tolerance := math.LegacyNewDec(2)

	err := keeper.AssertSlippageTolerance(&tolerance,
		[2]math.Int{math.NewInt(1000), math.NewInt(1000)},
		[2]math.Int{math.NewInt(1000), math.NewInt(1000)})
	require.Error(t, err)
	require.ErrorIs(t, err, types.ErrInvalidParams)
}

func TestAssertSlippageTolerance_ZeroDeposit(t *testing.T) {
	tolerance := math.LegacyNewDecWithPrec(1, 1)

	err := keeper.AssertSlippageTolerance(&tolerance,
		[2]math.Int{math.ZeroInt(), math.NewInt(1000)},
		[2]math.Int{math.NewInt(1000), math.NewInt(1000)})
	require.Error(t, err)
	require.ErrorIs(t, err, types.ErrDegenerateState)
}
