package mock

import (
	"time"

	tmtypes "github.com/tendermint/tendermint/types"

	"github.com/tmbridge/lightclient/modules/light-clients/07-tendermint/types"
)

var _ types.TrustVerifier = (*Verifier)(nil)

// Verifier is a TrustVerifier with canned results. Unset functions accept every
// request; VerifyTransition then trusts the header as given.
type Verifier struct {
	ValidateInitialFn func(chainID string, header *tmtypes.SignedHeader, valSet *tmtypes.ValidatorSet, trustLevel types.Fraction) error
	VerifyTransitionFn func(
		trusted types.ConsensusState,
		header *tmtypes.SignedHeader, valSet, nextValSet *tmtypes.ValidatorSet,
		trustLevel types.Fraction, trustWindow, maxClockDrift time.Duration, now time.Time,
	) (*types.ConsensusState, error)
}

func (v *Verifier) ValidateInitial(chainID string, header *tmtypes.SignedHeader, valSet *tmtypes.ValidatorSet, trustLevel types.Fraction) error {
	if v.ValidateInitialFn == nil {
		return nil
	}

	return v.ValidateInitialFn(chainID, header, valSet, trustLevel)
}

func (v *Verifier) VerifyTransition(
	trusted types.ConsensusState,
	header *tmtypes.SignedHeader, valSet, nextValSet *tmtypes.ValidatorSet,
	trustLevel types.Fraction, trustWindow, maxClockDrift time.Duration, now time.Time,
) (*types.ConsensusState, error) {
	if v.VerifyTransitionFn == nil {
		return types.NewConsensusState(header, valSet, nextValSet, now), nil
	}

	return v.VerifyTransitionFn(trusted, header, valSet, nextValSet, trustLevel, trustWindow, maxClockDrift, now)
}
