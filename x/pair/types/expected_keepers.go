package types

import (
	"context"

	sdkmath "cosmossdk.io/math"
)

// ReserveLedger defines the expected ledger collaborator holding the true
// pair balances. Reserves are returned in the pair's canonical ordering.
type ReserveLedger interface {
	PairReserves(ctx context.Context) ([2]Asset, error)
}

// ShareSupply defines the expected ledger collaborator tracking the total
// outstanding liquidity share supply.
type ShareSupply interface {
	TotalShare(ctx context.Context) (sdkmath.Int, error)
}

// SettingsSource defines the expected settings collaborator. The returned
// params are authoritative for the current call only.
type SettingsSource interface {
	PairSettings(ctx context.Context) (Params, error)
}

// EntropySource defines the expected entropy collaborator. Draw returns one
// fresh pseudo-random 64-bit value; the keeper consumes at most one draw per
// observer query and never caches the result.
type EntropySource interface {
	Draw(ctx context.Context) (uint64, error)
}
