package types

import (
	"cosmossdk.io/errors"
)

// Pair module sentinel errors
var (
	ErrOverflow              = errors.Register(ModuleName, 1, "arithmetic overflow")
	ErrDivideByZero          = errors.Register(ModuleName, 2, "division by zero")
	ErrInvalidAsset          = errors.Register(ModuleName, 3, "asset does not belong to pair")
	ErrDegenerateState       = errors.Register(ModuleName, 4, "degenerate pool state")
	ErrInsufficientLiquidity = errors.Register(ModuleName, 5, "insufficient liquidity in pool")
	ErrSlippageExceeded      = errors.Register(ModuleName, 6, "operation exceeds max slippage tolerance")
	ErrSpreadExceeded        = errors.Register(ModuleName, 7, "operation exceeds max spread limit")
	ErrReturnBelowExpected   = errors.Register(ModuleName, 8, "operation fell short of expected return")
	ErrAmountTooLarge        = errors.Register(ModuleName, 9, "amount exceeds 128-bit range")
	ErrInvalidFeeRate        = errors.Register(ModuleName, 10, "invalid commission rate")
	ErrInvalidParams         = errors.Register(ModuleName, 11, "invalid parameters")
	ErrEntropyUnavailable    = errors.Register(ModuleName, 12, "entropy source unavailable")
)
