package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"cosmossdk.io/math"

	"github.com/veilswap/veil/x/pair/types"
)

const flagSlippageTolerance = "slippage-tolerance"

// ProvideCmd deposits both assets, settles the mint against the in-memory
// pool and prints the minted shares with the post-deposit state.
func ProvideCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "provide [asset-a] [asset-b]",
		Short: "Deposit both assets and mint liquidity shares",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			state, err := buildPair()
			if err != nil {
				return err
			}
			depositA, err := parseAsset(args[0])
			if err != nil {
				return err
			}
			depositB, err := parseAsset(args[1])
			if err != nil {
				return err
			}
			tolerance, err := parseDecFlag(cmd, flagSlippageTolerance)
			if err != nil {
				return err
			}

			shares, err := state.keeper.ProvideLiquidity(cmd.Context(), [2]types.Asset{depositA, depositB}, tolerance)
			if err != nil {
				return err
			}

			if err := state.ledger.credit(depositA.Info, depositA.Amount); err != nil {
				return err
			}
			if err := state.ledger.credit(depositB.Info, depositB.Amount); err != nil {
				return err
			}
			state.supply.total = state.supply.total.Add(shares)

			return printJSON(cmd, struct {
				MintedShares math.Int
				TotalShare   math.Int
				Reserves     [2]types.Asset
			}{shares, state.supply.total, state.ledger.reserves})
		},
	}

	cmd.Flags().String(flagSlippageTolerance, "", "maximum tolerated price movement during the deposit, e.g. 0.01")

	return cmd
}

// WithdrawCmd burns shares, settles the refund against the in-memory pool
// and prints the refunded assets with the post-withdrawal state.
func WithdrawCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "withdraw [share-amount]",
		Short: "Burn liquidity shares for a pro-rata refund of both assets",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			state, err := buildPair()
			if err != nil {
				return err
			}
			burn, ok := math.NewIntFromString(args[0])
			if !ok {
				return fmt.Errorf("invalid share amount %q", args[0])
			}

			refunds, err := state.keeper.WithdrawLiquidity(cmd.Context(), burn)
			if err != nil {
				return err
			}

			for _, refund := range refunds {
				if err := state.ledger.credit(refund.Info, refund.Amount.Neg()); err != nil {
					return err
				}
			}
			state.supply.total = state.supply.total.Sub(burn)

			return printJSON(cmd, struct {
				Refunds    [2]types.Asset
				TotalShare math.Int
				Reserves   [2]types.Asset
			}{refunds, state.supply.total, state.ledger.reserves})
		},
	}
}
