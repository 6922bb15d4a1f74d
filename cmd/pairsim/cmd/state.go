package cmd

import (
	"context"
	cryptorand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math/rand/v2"

	"cosmossdk.io/math"

	"github.com/veilswap/veil/x/pair/types"
)

// memLedger holds pool reserves for the simulated pair.
type memLedger struct {
	reserves [2]types.Asset
}

func (l *memLedger) PairReserves(_ context.Context) ([2]types.Asset, error) {
	return l.reserves, nil
}

// credit adds an amount to the side holding the given asset, mirroring how
// a settlement layer credits offered funds before the swap engine runs.
func (l *memLedger) credit(info types.AssetInfo, amount math.Int) error {
	for i := range l.reserves {
		if l.reserves[i].Info.Equal(info) {
			l.reserves[i].Amount = l.reserves[i].Amount.Add(amount)
			return nil
		}
	}
	return fmt.Errorf("asset %s is not part of the pool", info)
}

// memSupply holds the outstanding liquidity share supply.
type memSupply struct {
	total math.Int
}

func (s *memSupply) TotalShare(_ context.Context) (math.Int, error) {
	return s.total, nil
}

// memSettings serves fixed pair settings.
type memSettings struct {
	params types.Params
}

func (s *memSettings) PairSettings(_ context.Context) (types.Params, error) {
	return s.params, nil
}

// seededEntropy backs observer veiling with a PRNG. A zero seed draws the
// initial state from the OS so repeated runs are not trivially correlated.
type seededEntropy struct {
	rng *rand.Rand
}

func newSeededEntropy(seed uint64) *seededEntropy {
	if seed == 0 {
		var buf [8]byte
		if _, err := cryptorand.Read(buf[:]); err == nil {
			seed = binary.BigEndian.Uint64(buf[:])
		}
	}
	return &seededEntropy{rng: rand.New(rand.NewPCG(seed, 0))}
}

func (e *seededEntropy) Draw(_ context.Context) (uint64, error) {
	return e.rng.Uint64(), nil
}
