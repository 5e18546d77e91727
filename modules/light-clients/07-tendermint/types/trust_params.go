package types

import (
	"time"

	"github.com/tendermint/tendermint/light"
	yaml "gopkg.in/yaml.v2"

	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
)

const (
	// DefaultTrustingPeriod is used when a create request leaves the trusting period unset.
	DefaultTrustingPeriod = 24 * time.Hour
	// DefaultMaxClockDrift is used when a create request leaves the clock drift unset.
	DefaultMaxClockDrift = 30 * time.Second
	// DefaultUnbondingPeriod is used when a create request leaves the unbonding period unset.
	DefaultUnbondingPeriod = 3 * 7 * 24 * time.Hour
)

// TrustParameters are fixed when a client is created and govern every later update.
type TrustParameters struct {
	// duration after the last update beyond which the trusted state may not anchor updates
	TrustingPeriod time.Duration `json:"trusting_period" yaml:"trusting_period"`
	// tolerance for clock skew between the host and the foreign chain
	MaxClockDrift time.Duration `json:"max_clock_drift" yaml:"max_clock_drift"`
	// foreign chain unbonding period, bounds the age of headers that may be trusted
	UnbondingPeriod time.Duration `json:"unbonding_period" yaml:"unbonding_period"`
	// fraction of trusted voting power that must sign a new header
	TrustLevel Fraction `json:"trust_level" yaml:"trust_level"`
}

// NewTrustParameters creates a new TrustParameters instance.
func NewTrustParameters(trustingPeriod, maxClockDrift, unbondingPeriod time.Duration, trustLevel Fraction) TrustParameters {
	return TrustParameters{
		TrustingPeriod:  trustingPeriod,
		MaxClockDrift:   maxClockDrift,
		UnbondingPeriod: unbondingPeriod,
		TrustLevel:      trustLevel,
	}
}

// DefaultTrustParameters returns the parameters applied to fields a create request omits.
func DefaultTrustParameters() TrustParameters {
	return NewTrustParameters(DefaultTrustingPeriod, DefaultMaxClockDrift, DefaultUnbondingPeriod, DefaultTrustLevel)
}

// WithDefaults returns a copy of p in which every zero field is replaced by its default.
func (p TrustParameters) WithDefaults() TrustParameters {
	def := DefaultTrustParameters()
	if p.TrustingPeriod == 0 {
		p.TrustingPeriod = def.TrustingPeriod
	}
	if p.MaxClockDrift == 0 {
		p.MaxClockDrift = def.MaxClockDrift
	}
	if p.UnbondingPeriod == 0 {
		p.UnbondingPeriod = def.UnbondingPeriod
	}
	if p.TrustLevel.IsZero() {
		p.TrustLevel = def.TrustLevel
	}
	return p
}

// TrustWindow is the maximum time after the last update during which the trusted
// state may still be used to verify a new header.
func (p TrustParameters) TrustWindow() time.Duration {
	return p.TrustingPeriod + p.MaxClockDrift
}

// Validate performs a basic validation of the trust parameters.
func (p TrustParameters) Validate() error {
	if err := light.ValidateTrustLevel(p.TrustLevel.ToTendermint()); err != nil {
		return sdkerrors.Wrap(ErrInvalidTrustLevel, err.Error())
	}
	if p.TrustingPeriod <= 0 {
		return sdkerrors.Wrap(ErrInvalidTrustingPeriod, "trusting period must be greater than zero")
	}
	if p.UnbondingPeriod <= 0 {
		return sdkerrors.Wrap(ErrInvalidUnbondingPeriod, "unbonding period must be greater than zero")
	}
	if p.MaxClockDrift <= 0 {
		return sdkerrors.Wrap(ErrInvalidMaxClockDrift, "max clock drift must be greater than zero")
	}
	if p.TrustingPeriod >= p.UnbondingPeriod {
		return sdkerrors.Wrapf(
			ErrInvalidTrustingPeriod,
			"trusting period (%s) should be < unbonding period (%s)", p.TrustingPeriod, p.UnbondingPeriod,
		)
	}
	return nil
}

func (p TrustParameters) String() string {
	out, _ := yaml.Marshal(p)
	return string(out)
}
