package keeper

import (
	"cosmossdk.io/log"

	"github.com/veilswap/veil/x/pair/types"
)

// Keeper is the pricing and liquidity-accounting core of a two-asset
// constant-product pair. It owns no state: true reserves, share supply,
// commission settings and entropy are all supplied per call by the injected
// collaborators, and every operation returns either a complete result or an
// error with no partial effects.
type Keeper struct {
	ledger   types.ReserveLedger
	supply   types.ShareSupply
	settings types.SettingsSource
	entropy  types.EntropySource
	logger   log.Logger
	metrics  *PairMetrics
}

// NewKeeper creates a new pair Keeper instance.
func NewKeeper(
	ledger types.ReserveLedger,
	supply types.ShareSupply,
	settings types.SettingsSource,
	entropy types.EntropySource,
	logger log.Logger,
) Keeper {
	if logger == nil {
		logger = log.NewNopLogger()
	}
	return Keeper{
		ledger:   ledger,
		supply:   supply,
		settings: settings,
		entropy:  entropy,
		logger:   logger.With("module", "x/"+types.ModuleName),
		metrics:  GetPairMetrics(),
	}
}

// Logger returns the keeper's logger.
func (k Keeper) Logger() log.Logger {
	return k.logger
}
