package types

import (
	"bytes"
	"time"

	tmtypes "github.com/tendermint/tendermint/types"

	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
)

// ConsensusState is the trusted checkpoint of a client: the last accepted header,
// the validator set bound to it and the host time at which it was committed.
type ConsensusState struct {
	SignedHeader *tmtypes.SignedHeader `json:"signed_header"`
	// validator set whose hash is SignedHeader.ValidatorsHash. At least the trust
	// level of its voting power must sign the next accepted header.
	ValidatorSet *tmtypes.ValidatorSet `json:"validator_set"`
	// optional, set when the update carried a next validator set matching
	// SignedHeader.NextValidatorsHash
	NextValidatorSet *tmtypes.ValidatorSet `json:"next_validator_set"`
	// host block time of the transition that produced this state, not the header time
	LastUpdate time.Time `json:"last_update"`
}

// NewConsensusState creates a new ConsensusState instance.
func NewConsensusState(
	header *tmtypes.SignedHeader, valSet, nextValSet *tmtypes.ValidatorSet, lastUpdate time.Time,
) *ConsensusState {
	return &ConsensusState{
		SignedHeader:     header,
		ValidatorSet:     valSet,
		NextValidatorSet: nextValSet,
		LastUpdate:       lastUpdate.UTC(),
	}
}

// Height returns the height of the trusted header.
func (cs ConsensusState) Height() int64 {
	if cs.SignedHeader == nil || cs.SignedHeader.Header == nil {
		return 0
	}
	return cs.SignedHeader.Height
}

// Timestamp returns the time of the trusted header.
func (cs ConsensusState) Timestamp() time.Time {
	if cs.SignedHeader == nil || cs.SignedHeader.Header == nil {
		return time.Time{}
	}
	return cs.SignedHeader.Time
}

// IsExpired returns whether the trust window has elapsed since the last update, in
// which case the state may no longer anchor updates.
func (cs ConsensusState) IsExpired(trustWindow time.Duration, now time.Time) bool {
	return now.Sub(cs.LastUpdate) > trustWindow
}

// ValidateBasic checks that the state holds a header bound to its validator set.
func (cs ConsensusState) ValidateBasic() error {
	if cs.SignedHeader == nil || cs.SignedHeader.Header == nil || cs.SignedHeader.Commit == nil {
		return sdkerrors.Wrap(ErrInvalidHeader, "trusted header cannot be nil")
	}
	if cs.ValidatorSet.IsNilOrEmpty() {
		return sdkerrors.Wrap(ErrInvalidValidatorSet, "trusted validator set cannot be empty")
	}
	if !bytes.Equal(cs.SignedHeader.ValidatorsHash, cs.ValidatorSet.Hash()) {
		return sdkerrors.Wrapf(
			ErrInvalidValidatorSet,
			"trusted validator set hash %X does not match header validators hash %X",
			cs.ValidatorSet.Hash(), cs.SignedHeader.ValidatorsHash,
		)
	}
	if cs.NextValidatorSet != nil && !bytes.Equal(cs.SignedHeader.NextValidatorsHash, cs.NextValidatorSet.Hash()) {
		return sdkerrors.Wrapf(
			ErrInvalidValidatorSet,
			"next validator set hash %X does not match header next validators hash %X",
			cs.NextValidatorSet.Hash(), cs.SignedHeader.NextValidatorsHash,
		)
	}
	if cs.LastUpdate.IsZero() {
		return sdkerrors.Wrap(ErrInvalidHeader, "last update time cannot be zero")
	}
	return nil
}
