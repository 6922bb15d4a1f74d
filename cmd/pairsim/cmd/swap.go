package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"cosmossdk.io/math"

	"github.com/veilswap/veil/x/pair/types"
)

const (
	flagBeliefPrice    = "belief-price"
	flagMaxSpread      = "max-spread"
	flagExpectedReturn = "expected-return"
)

// SwapCmd executes a swap against the true reserves, settles it against the
// in-memory pool and prints the result together with the post-swap state.
func SwapCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "swap [offer-asset]",
		Short: "Execute a swap against the pool",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			state, err := buildPair()
			if err != nil {
				return err
			}
			offer, err := parseAsset(args[0])
			if err != nil {
				return err
			}

			beliefPrice, err := parseDecFlag(cmd, flagBeliefPrice)
			if err != nil {
				return err
			}
			maxSpread, err := parseDecFlag(cmd, flagMaxSpread)
			if err != nil {
				return err
			}
			var expectedReturn *math.Int
			if cmd.Flags().Changed(flagExpectedReturn) {
				raw, err := cmd.Flags().GetString(flagExpectedReturn)
				if err != nil {
					return err
				}
				amount, ok := math.NewIntFromString(raw)
				if !ok {
					return fmt.Errorf("--%s: invalid integer %q", flagExpectedReturn, raw)
				}
				expectedReturn = &amount
			}

			// Offered funds land in the pool before the engine prices the
			// swap, matching settlement order on chain.
			if err := state.ledger.credit(offer.Info, offer.Amount); err != nil {
				return err
			}

			result, err := state.keeper.ExecuteSwap(cmd.Context(), offer, beliefPrice, maxSpread, expectedReturn)
			if err != nil {
				return err
			}
			if err := state.ledger.credit(result.ReturnAsset.Info, result.ReturnAsset.Amount.Neg()); err != nil {
				return err
			}

			return printJSON(cmd, struct {
				Result   types.SwapResult
				Reserves [2]types.Asset
			}{result, state.ledger.reserves})
		},
	}

	cmd.Flags().String(flagBeliefPrice, "", "trader's belief price as offer per ask unit")
	cmd.Flags().String(flagMaxSpread, "", "maximum tolerated spread ratio, e.g. 0.01")
	cmd.Flags().String(flagExpectedReturn, "", "minimum acceptable return amount")

	return cmd
}
