package types

import (
	"math"
	"time"

	tmbytes "github.com/tendermint/tendermint/libs/bytes"
	tmtypes "github.com/tendermint/tendermint/types"

	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
)

// MaxPeriodSeconds is the largest period, in seconds, that fits a time.Duration.
const MaxPeriodSeconds = uint64(math.MaxInt64 / int64(time.Second))

// CreateClientPayload carries the initial trusted header of a new client.
// Periods are expressed in seconds; zero selects the default.
type CreateClientPayload struct {
	ClientID tmbytes.HexBytes `json:"client_id"`
	// optional, defaults to the chain-id of the header
	ChainID         string                `json:"chain_id"`
	Header          *tmtypes.SignedHeader `json:"header"`
	ValidatorSet    *tmtypes.ValidatorSet `json:"validator_set"`
	TrustingPeriod  uint64                `json:"trusting_period"`
	MaxClockDrift   uint64                `json:"max_clock_drift"`
	UnbondingPeriod uint64                `json:"unbonding_period"`
	// optional, defaults to DefaultTrustLevel
	TrustLevel *Fraction `json:"trust_level,omitempty"`
}

// ValidateBasic checks that the payload is well formed. It does not verify signatures.
func (p CreateClientPayload) ValidateBasic() error {
	if err := ValidateClientID(p.ClientID); err != nil {
		return err
	}
	if err := validateSignedHeaderShape(p.Header); err != nil {
		return err
	}
	if p.ValidatorSet.IsNilOrEmpty() {
		return sdkerrors.Wrap(ErrDeserialize, "validator set cannot be empty")
	}
	for _, period := range []struct {
		name    string
		seconds uint64
	}{
		{"trusting period", p.TrustingPeriod},
		{"max clock drift", p.MaxClockDrift},
		{"unbonding period", p.UnbondingPeriod},
	} {
		if period.seconds > MaxPeriodSeconds {
			return sdkerrors.Wrapf(
				ErrDeserialize, "%s of %d seconds exceeds the maximum of %d", period.name, period.seconds, MaxPeriodSeconds,
			)
		}
	}
	return nil
}

// GetChainID returns the requested chain-id, falling back to the header chain-id.
func (p CreateClientPayload) GetChainID() string {
	if p.ChainID != "" {
		return p.ChainID
	}
	if p.Header == nil || p.Header.Header == nil {
		return ""
	}
	return p.Header.ChainID
}

// GetTrustParameters converts the payload fields to trust parameters, filling in
// defaults for every unset field.
func (p CreateClientPayload) GetTrustParameters() TrustParameters {
	params := TrustParameters{
		TrustingPeriod:  time.Duration(p.TrustingPeriod) * time.Second,
		MaxClockDrift:   time.Duration(p.MaxClockDrift) * time.Second,
		UnbondingPeriod: time.Duration(p.UnbondingPeriod) * time.Second,
	}
	if p.TrustLevel != nil {
		params.TrustLevel = *p.TrustLevel
	}
	return params.WithDefaults()
}

// UpdateClientPayload carries a candidate header for an existing client.
type UpdateClientPayload struct {
	ClientID     tmbytes.HexBytes      `json:"client_id"`
	Header       *tmtypes.SignedHeader `json:"header"`
	ValidatorSet *tmtypes.ValidatorSet `json:"validator_set"`
	// optional hint, see ConsensusState.NextValidatorSet
	NextValidatorSet *tmtypes.ValidatorSet `json:"next_validator_set"`
}

// ValidateBasic checks that the payload is well formed. It does not verify signatures.
func (p UpdateClientPayload) ValidateBasic() error {
	if err := ValidateClientID(p.ClientID); err != nil {
		return err
	}
	if err := validateSignedHeaderShape(p.Header); err != nil {
		return err
	}
	if p.ValidatorSet.IsNilOrEmpty() {
		return sdkerrors.Wrap(ErrDeserialize, "validator set cannot be empty")
	}
	if p.NextValidatorSet != nil && len(p.NextValidatorSet.Validators) == 0 {
		return sdkerrors.Wrap(ErrDeserialize, "next validator set must be omitted or non-empty")
	}
	return nil
}

func validateSignedHeaderShape(header *tmtypes.SignedHeader) error {
	switch {
	case header == nil:
		return sdkerrors.Wrap(ErrDeserialize, "signed header cannot be nil")
	case header.Header == nil:
		return sdkerrors.Wrap(ErrDeserialize, "header cannot be nil")
	case header.Commit == nil:
		return sdkerrors.Wrap(ErrDeserialize, "commit cannot be nil")
	}
	return nil
}
