package types

import (
	"cosmossdk.io/math"
)

// Params holds the per-call pair settings supplied by the settings
// collaborator. The commission rate is a nom/denom ratio so that exact
// integer fee math is possible at reserve scale.
type Params struct {
	CommissionRateNom   math.Int
	CommissionRateDenom math.Int
}

// DefaultParams returns a default set of parameters: a 0.3% commission.
func DefaultParams() Params {
	return Params{
		CommissionRateNom:   math.NewInt(3),
		CommissionRateDenom: math.NewInt(1000),
	}
}

// NewParams builds Params from a raw commission ratio.
func NewParams(nom, denom math.Int) Params {
	return Params{
		CommissionRateNom:   nom,
		CommissionRateDenom: denom,
	}
}

// Validate validates the set of params. The rate must satisfy
// 0 <= nom <= denom with denom positive.
func (p Params) Validate() error {
	if p.CommissionRateNom.IsNil() || p.CommissionRateDenom.IsNil() {
		return ErrInvalidFeeRate.Wrap("commission rate is not set")
	}
	if !p.CommissionRateDenom.IsPositive() {
		return ErrInvalidFeeRate.Wrapf("commission rate denominator must be positive, got %s", p.CommissionRateDenom)
	}
	if p.CommissionRateNom.IsNegative() {
		return ErrInvalidFeeRate.Wrapf("commission rate nominator must be non-negative, got %s", p.CommissionRateNom)
	}
	if p.CommissionRateNom.GT(p.CommissionRateDenom) {
		return ErrInvalidFeeRate.Wrapf("commission rate %s/%s exceeds one",
			p.CommissionRateNom, p.CommissionRateDenom)
	}
	return nil
}

// CommissionRate returns the rate as a decimal for quote-path math.
func (p Params) CommissionRate() math.LegacyDec {
	return math.LegacyNewDecFromInt(p.CommissionRateNom).Quo(math.LegacyNewDecFromInt(p.CommissionRateDenom))
}
