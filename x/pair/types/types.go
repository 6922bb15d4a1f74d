package types

import (
	"fmt"
	"strings"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

const (
	// ModuleName defines the module name
	ModuleName = "pair"

	// Event types
	EventTypeSwap              = "swap"
	EventTypeProvideLiquidity  = "provide_liquidity"
	EventTypeWithdrawLiquidity = "withdraw_liquidity"

	// Event attribute keys
	AttributeKeyOfferAsset   = "offer_asset"
	AttributeKeyAskAsset     = "ask_asset"
	AttributeKeyOfferAmount  = "offer_amount"
	AttributeKeyReturnAmount = "return_amount"
	AttributeKeySpread       = "spread_amount"
	AttributeKeyCommission   = "commission_amount"
	AttributeKeyShare        = "share"
	AttributeKeyRefundAssets = "refund_assets"
)

// AssetInfo identifies one side of a pair: either a native currency denom or
// a fungible token contract. Exactly one of the two fields is set.
type AssetInfo struct {
	NativeDenom string
	Token       string
}

// NewNativeAssetInfo returns an AssetInfo for a native currency denom.
func NewNativeAssetInfo(denom string) AssetInfo {
	return AssetInfo{NativeDenom: denom}
}

// NewTokenAssetInfo returns an AssetInfo for a fungible token contract.
func NewTokenAssetInfo(contract string) AssetInfo {
	return AssetInfo{Token: contract}
}

// IsNative reports whether the asset is a native currency.
func (i AssetInfo) IsNative() bool {
	return i.NativeDenom != ""
}

// Equal reports whether two asset infos reference the same asset.
func (i AssetInfo) Equal(other AssetInfo) bool {
	return i.NativeDenom == other.NativeDenom && i.Token == other.Token
}

// Validate checks that exactly one kind is set and the identifier is well formed.
func (i AssetInfo) Validate() error {
	switch {
	case i.NativeDenom != "" && i.Token != "":
		return ErrInvalidAsset.Wrap("asset cannot be both native and token")
	case i.NativeDenom != "":
		if err := sdk.ValidateDenom(i.NativeDenom); err != nil {
			return ErrInvalidAsset.Wrapf("invalid native denom %q: %v", i.NativeDenom, err)
		}
	case i.Token != "":
		if strings.TrimSpace(i.Token) != i.Token {
			return ErrInvalidAsset.Wrapf("invalid token contract %q", i.Token)
		}
	default:
		return ErrInvalidAsset.Wrap("empty asset info")
	}
	return nil
}

func (i AssetInfo) String() string {
	if i.IsNative() {
		return i.NativeDenom
	}
	return i.Token
}

// Asset is a (kind, amount) pair in the asset's smallest unit.
type Asset struct {
	Info   AssetInfo
	Amount math.Int
}

// NewAsset constructs an Asset from an info and amount.
func NewAsset(info AssetInfo, amount math.Int) Asset {
	return Asset{Info: info, Amount: amount}
}

// Validate checks the asset info and that the amount is a defined,
// non-negative integer.
func (a Asset) Validate() error {
	if err := a.Info.Validate(); err != nil {
		return err
	}
	if a.Amount.IsNil() {
		return ErrInvalidAsset.Wrapf("asset %s has nil amount", a.Info)
	}
	if a.Amount.IsNegative() {
		return ErrInvalidAsset.Wrapf("asset %s has negative amount %s", a.Info, a.Amount)
	}
	return nil
}

// Coin converts a native asset to an sdk.Coin. Token assets have no coin
// representation.
func (a Asset) Coin() (sdk.Coin, error) {
	if !a.Info.IsNative() {
		return sdk.Coin{}, ErrInvalidAsset.Wrapf("asset %s is not a native currency", a.Info)
	}
	return sdk.NewCoin(a.Info.NativeDenom, a.Amount), nil
}

func (a Asset) String() string {
	return fmt.Sprintf("%s%s", a.Amount, a.Info)
}

// SortAssetInfos returns the canonical ordering of a pair, fixed at pool
// creation. Ordering is lexicographic over the asset identifier.
func SortAssetInfos(a, b AssetInfo) [2]AssetInfo {
	if a.String() <= b.String() {
		return [2]AssetInfo{a, b}
	}
	return [2]AssetInfo{b, a}
}

// SwapResult is the outcome of an executed swap against true reserves.
type SwapResult struct {
	ReturnAsset      Asset
	SpreadAmount     math.Int
	CommissionAmount math.Int
}

// PoolResponse is the observer view of the pair state. Amounts are veiled.
type PoolResponse struct {
	Assets     [2]Asset
	TotalShare math.Int
}

// SimulationResponse is the observer view of a forward swap quote.
type SimulationResponse struct {
	ReturnAmount     math.Int
	SpreadAmount     math.Int
	CommissionAmount math.Int
}

// ReverseSimulationResponse is the observer view of a reverse swap quote.
type ReverseSimulationResponse struct {
	OfferAmount      math.Int
	SpreadAmount     math.Int
	CommissionAmount math.Int
}
