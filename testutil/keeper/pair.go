package keeper

import (
	"context"
	"fmt"
	"testing"

	"cosmossdk.io/log"
	"cosmossdk.io/math"

	"github.com/veilswap/veil/x/pair/keeper"
	"github.com/veilswap/veil/x/pair/types"
)

// FixedLedger is an in-memory reserve ledger collaborator.
type FixedLedger struct {
	Reserves [2]types.Asset
}

func (l *FixedLedger) PairReserves(_ context.Context) ([2]types.Asset, error) {
	return l.Reserves, nil
}

// FixedSupply is an in-memory share supply collaborator.
type FixedSupply struct {
	Total math.Int
}

func (s *FixedSupply) TotalShare(_ context.Context) (math.Int, error) {
	return s.Total, nil
}

// FixedSettings is an in-memory settings collaborator.
type FixedSettings struct {
	Params types.Params
}

func (s *FixedSettings) PairSettings(_ context.Context) (types.Params, error) {
	return s.Params, nil
}

// ScriptedEntropy replays a fixed sequence of draws and fails once the
// script is exhausted, so tests can pin down exactly how many draws a
// query consumes.
type ScriptedEntropy struct {
	Draws []uint64
	next  int
}

func (e *ScriptedEntropy) Draw(_ context.Context) (uint64, error) {
	if e.next >= len(e.Draws) {
		return 0, fmt.Errorf("entropy script exhausted after %d draws", e.next)
	}
	draw := e.Draws[e.next]
	e.next++
	return draw, nil
}

// Consumed reports how many draws have been taken.
func (e *ScriptedEntropy) Consumed() int {
	return e.next
}

// PairFixture bundles a keeper with its in-memory collaborators so tests
// can mutate the fixed state between calls.
type PairFixture struct {
	Keeper   keeper.Keeper
	Ledger   *FixedLedger
	Supply   *FixedSupply
	Settings *FixedSettings
	Entropy  *ScriptedEntropy
}

// PairKeeper creates a test keeper for the pair module with fixed
// collaborators: the given reserves, supply and params, and a scripted
// entropy source.
func PairKeeper(t testing.TB, reserves [2]types.Asset, totalShare math.Int, params types.Params, draws []uint64) PairFixture {
	t.Helper()

	ledger := &FixedLedger{Reserves: reserves}
	supply := &FixedSupply{Total: totalShare}
	settings := &FixedSettings{Params: params}
	entropy := &ScriptedEntropy{Draws: draws}

	k := keeper.NewKeeper(ledger, supply, settings, entropy, log.NewNopLogger())

	return PairFixture{
		Keeper:   k,
		Ledger:   ledger,
		Supply:   supply,
		Settings: settings,
		Entropy:  entropy,
	}
}

// DefaultPair returns a uveil/uusdt pair with the given reserves in
// canonical order.
func DefaultPair(reserveA, reserveB math.Int) [2]types.Asset {
	infos := types.SortAssetInfos(types.NewNativeAssetInfo("uveil"), types.NewNativeAssetInfo("uusdt"))
	return [2]types.Asset{
		types.NewAsset(infos[0], reserveA),
		types.NewAsset(infos[1], reserveB),
	}
}
