package cmd

import (
	"github.com/spf13/cobra"
)

// PoolCmd reports the observer view of the pool. Amounts are veiled.
func PoolCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pool",
		Short: "Show the veiled observer view of the pool",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			state, err := buildPair()
			if err != nil {
				return err
			}
			resp, err := state.keeper.QueryPool(cmd.Context())
			if err != nil {
				return err
			}
			return printJSON(cmd, resp)
		},
	}
}

// SimulateCmd quotes a forward swap against the veiled pool view.
func SimulateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "simulate [offer-asset]",
		Short: "Quote the return for an offered amount",
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
			resp, err := state.keeper.QuerySimulation(cmd.Context(), offer)
			if err != nil {
				return err
			}
			return printJSON(cmd, resp)
		},
	}
}

// ReverseSimulateCmd quotes the offer needed for a desired ask amount.
func ReverseSimulateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reverse [ask-asset]",
		Short: "Quote the offer needed to receive a desired amount",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			state, err := buildPair()
			if err != nil {
				return err
			}
			ask, err := parseAsset(args[0])
			if err != nil {
				return err
			}
			resp, err := state.keeper.QueryReverseSimulation(cmd.Context(), ask)
			if err != nil {
				return err
			}
			return printJSON(cmd, resp)
		},
	}
}
