package keeper

import (
	"math/big"

	"cosmossdk.io/math"

	"github.com/veilswap/veil/x/pair/types"
)

// SafeMath provides overflow-safe arithmetic for all reserve-scale
// computations in the pair module. Results are bounded at 2^256; amounts
// returned to callers must additionally fit 128 bits (EnsureAmount).

var (
	maxSafeInt = new(big.Int).Exp(big.NewInt(2), big.NewInt(256), nil)
	maxAmount  = new(big.Int).Sub(new(big.Int).Exp(big.NewInt(2), big.NewInt(128), nil), big.NewInt(1))
)

// SafeAdd adds two math.Int values with overflow checking
func SafeAdd(a, b math.Int) (math.Int, error) {
	result := new(big.Int).Add(a.BigInt(), b.BigInt())
	if result.Cmp(maxSafeInt) >= 0 {
		return math.Int{}, types.ErrOverflow.Wrapf("cannot calculate %s + %s", a, b)
	}
	return math.NewIntFromBigInt(result), nil
}

// SafeSub subtracts two math.Int values with underflow checking
func SafeSub(a, b math.Int) (math.Int, error) {
	if a.LT(b) {
		return math.Int{}, types.ErrOverflow.Wrapf("cannot calculate %s - %s", a, b)
	}
	result := new(big.Int).Sub(a.BigInt(), b.BigInt())
	return math.NewIntFromBigInt(result), nil
}

// SafeMul multiplies two math.Int values with overflow checking
func SafeMul(a, b math.Int) (math.Int, error) {
	if a.IsZero() || b.IsZero() {
		return math.ZeroInt(), nil
	}
	result := new(big.Int).Mul(a.BigInt(), b.BigInt())
	if result.Cmp(maxSafeInt) >= 0 {
		return math.Int{}, types.ErrOverflow.Wrapf("cannot calculate %s * %s", a, b)
	}
	return math.NewIntFromBigInt(result), nil
}

// SafeQuo divides two math.Int values with division by zero checking
func SafeQuo(a, b math.Int) (math.Int, error) {
	if b.IsZero() {
		return math.Int{}, types.ErrDivideByZero.Wrapf("cannot calculate %s / %s", a, b)
	}
	result := new(big.Int).Quo(a.BigInt(), b.BigInt())
	return math.NewIntFromBigInt(result), nil
}

// SafeMulDiv performs (a * b) / c with overflow protection.
// This is the workhorse of pro-rata share and veil math.
func SafeMulDiv(a, b, c math.Int) (math.Int, error) {
	if c.IsZero() {
		return math.Int{}, types.ErrDivideByZero.Wrapf("cannot calculate %s * %s / %s", a, b, c)
	}
	intermediate := new(big.Int).Mul(a.BigInt(), b.BigInt())
	if intermediate.Cmp(maxSafeInt) >= 0 {
		return math.Int{}, types.ErrOverflow.Wrapf("cannot calculate %s * %s / %s", a, b, c)
	}
	result := new(big.Int).Quo(intermediate, c.BigInt())
	return math.NewIntFromBigInt(result), nil
}

// SafeSqrt returns the floor of the exact square root of a.
func SafeSqrt(a math.Int) (math.Int, error) {
	if a.IsNegative() {
		return math.Int{}, types.ErrOverflow.Wrapf("cannot calculate sqrt(%s)", a)
	}
	result := new(big.Int).Sqrt(a.BigInt())
	return math.NewIntFromBigInt(result), nil
}

// EnsureAmount checks that a result fits the 128-bit amount range used for
// reserves and shares. Intermediates may be wider; final amounts may not.
func EnsureAmount(a math.Int) (math.Int, error) {
	if a.BigInt().Cmp(maxAmount) > 0 {
		return math.Int{}, types.ErrAmountTooLarge.Wrapf("amount %s does not fit 128 bits", a)
	}
	return a, nil
}
