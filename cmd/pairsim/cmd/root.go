package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cast"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"cosmossdk.io/log"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/veilswap/veil/x/pair/keeper"
	"github.com/veilswap/veil/x/pair/types"
)

const (
	flagReserveA        = "reserve-a"
	flagReserveB        = "reserve-b"
	flagTotalShare      = "total-share"
	flagCommissionNom   = "commission-nom"
	flagCommissionDenom = "commission-denom"
	flagSeed            = "seed"
	flagVerbose         = "verbose"

	envPrefix = "PAIRSIM"
)

// NewRootCmd builds the pairsim command tree. The simulator runs every pair
// engine against an in-memory pool described by flags, so pricing, liquidity
// accounting and observer veiling can be exercised without a running chain.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "pairsim",
		Short: "Offline simulator for the pair pricing and liquidity engines",
		Long: `pairsim prices swaps, liquidity deposits and withdrawals against an
in-memory two-asset pool described by flags.

Example:
  pairsim simulate 1000uveil \
    --reserve-a 100000uusdt \
    --reserve-b 100000uveil \
    --total-share 100000

Flags can also be supplied through the environment with the PAIRSIM prefix,
e.g. PAIRSIM_TOTAL_SHARE=100000.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			viper.SetEnvPrefix(envPrefix)
			viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
			viper.AutomaticEnv()
			return viper.BindPFlags(cmd.Flags())
		},
	}

	rootCmd.PersistentFlags().String(flagReserveA, "", "pool reserve of the first asset, e.g. 100000uusdt")
	rootCmd.PersistentFlags().String(flagReserveB, "", "pool reserve of the second asset, e.g. 100000uveil")
	rootCmd.PersistentFlags().String(flagTotalShare, "0", "total liquidity shares outstanding")
	rootCmd.PersistentFlags().Int64(flagCommissionNom, 3, "commission rate nominator")
	rootCmd.PersistentFlags().Int64(flagCommissionDenom, 1000, "commission rate denominator")
	rootCmd.PersistentFlags().Uint64(flagSeed, 0, "entropy seed for veiled observer queries (0 seeds from the OS)")
	rootCmd.PersistentFlags().Bool(flagVerbose, false, "log engine activity to stderr")

	rootCmd.AddCommand(
		PoolCmd(),
		SimulateCmd(),
		ReverseSimulateCmd(),
		SwapCmd(),
		ProvideCmd(),
		WithdrawCmd(),
	)

	return rootCmd
}

// pairState bundles the keeper with its in-memory collaborators so commands
// can mutate pool state between engine calls.
type pairState struct {
	keeper keeper.Keeper
	ledger *memLedger
	supply *memSupply
}

// buildPair assembles a keeper over the flag-described pool. Flag values are
// read through viper so environment overrides apply.
func buildPair() (*pairState, error) {
	reserveA, err := parseAsset(viper.GetString(flagReserveA))
	if err != nil {
		return nil, fmt.Errorf("--%s: %w", flagReserveA, err)
	}
	reserveB, err := parseAsset(viper.GetString(flagReserveB))
	if err != nil {
		return nil, fmt.Errorf("--%s: %w", flagReserveB, err)
	}
	if reserveA.Info.Equal(reserveB.Info) {
		return nil, fmt.Errorf("pool sides must be distinct assets, got %s twice", reserveA.Info)
	}

	totalShare, ok := math.NewIntFromString(viper.GetString(flagTotalShare))
	if !ok {
		return nil, fmt.Errorf("--%s: invalid integer %q", flagTotalShare, viper.GetString(flagTotalShare))
	}

	nom, err := cast.ToInt64E(viper.Get(flagCommissionNom))
	if err != nil {
		return nil, fmt.Errorf("--%s: %w", flagCommissionNom, err)
	}
	denom, err := cast.ToInt64E(viper.Get(flagCommissionDenom))
	if err != nil {
		return nil, fmt.Errorf("--%s: %w", flagCommissionDenom, err)
	}
	params := types.NewParams(math.NewInt(nom), math.NewInt(denom))
	if err := params.Validate(); err != nil {
		return nil, err
	}

	seed, err := cast.ToUint64E(viper.Get(flagSeed))
	if err != nil {
		return nil, fmt.Errorf("--%s: %w", flagSeed, err)
	}

	infos := types.SortAssetInfos(reserveA.Info, reserveB.Info)
	reserves := [2]types.Asset{
		{Info: infos[0], Amount: reserveA.Amount},
		{Info: infos[1], Amount: reserveB.Amount},
	}
	if !infos[0].Equal(reserveA.Info) {
		reserves[0].Amount, reserves[1].Amount = reserveB.Amount, reserveA.Amount
	}

	logger := log.NewNopLogger()
	if viper.GetBool(flagVerbose) {
		logger = log.NewLogger(os.Stderr)
	}

	ledger := &memLedger{reserves: reserves}
	supply := &memSupply{total: totalShare}
	k := keeper.NewKeeper(ledger, supply, &memSettings{params: params}, newSeededEntropy(seed), logger)

	return &pairState{keeper: k, ledger: ledger, supply: supply}, nil
}

// parseAsset reads a coin-style string such as "100000uveil" into an Asset.
func parseAsset(s string) (types.Asset, error) {
	if s == "" {
		return types.Asset{}, fmt.Errorf("missing asset, expected e.g. 100000uveil")
	}
	coin, err := sdk.ParseCoinNormalized(s)
	if err != nil {
		return types.Asset{}, err
	}
	asset := types.NewAsset(types.NewNativeAssetInfo(coin.Denom), coin.Amount)
	if err := asset.Validate(); err != nil {
		return types.Asset{}, err
	}
	return asset, nil
}

func parseDecFlag(cmd *cobra.Command, name string) (*math.LegacyDec, error) {
	if !cmd.Flags().Changed(name) {
		return nil, nil
	}
	raw, err := cmd.Flags().GetString(name)
	if err != nil {
		return nil, err
	}
	dec, err := math.LegacyNewDecFromStr(raw)
	if err != nil {
		return nil, fmt.Errorf("--%s: %w", name, err)
	}
	return &dec, nil
}

func printJSON(cmd *cobra.Command, v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	cmd.Println(string(out))
	return nil
}
