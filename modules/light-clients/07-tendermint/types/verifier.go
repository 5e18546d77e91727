package types

import (
	"bytes"
	"errors"
	"time"

	tmtypes "github.com/tendermint/tendermint/types"

	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
)

// TrustVerifier decides whether foreign headers can be trusted. Implementations
// must be deterministic: given the same inputs they return the same result.
type TrustVerifier interface {
	// ValidateInitial checks that header is a correctly signed header of chainID,
	// committed by valSet, and that at least trustLevel of valSet's voting power signed it.
	ValidateInitial(chainID string, header *tmtypes.SignedHeader, valSet *tmtypes.ValidatorSet, trustLevel Fraction) error

	// VerifyTransition checks that header is linked to the trusted state by at least
	// trustLevel of the trusted voting power, that the trusted state is still within
	// trustWindow of now and that header is not from the future beyond maxClockDrift.
	// On success it returns the new trusted state with LastUpdate set to now.
	VerifyTransition(
		trusted ConsensusState,
		header *tmtypes.SignedHeader, valSet, nextValSet *tmtypes.ValidatorSet,
		trustLevel Fraction, trustWindow, maxClockDrift time.Duration, now time.Time,
	) (*ConsensusState, error)
}

var _ TrustVerifier = TendermintVerifier{}

// TendermintVerifier implements TrustVerifier with the tendermint light client
// verification rules: sequential verification for adjacent headers and skipping
// verification otherwise.
type TendermintVerifier struct{}

// NewTendermintVerifier returns the default TrustVerifier.
func NewTendermintVerifier() TendermintVerifier {
	return TendermintVerifier{}
}

// ValidateInitial implements TrustVerifier.
func (TendermintVerifier) ValidateInitial(
	chainID string, header *tmtypes.SignedHeader, valSet *tmtypes.ValidatorSet, trustLevel Fraction,
) error {
	if !hasHeaderAndCommit(header) {
		return sdkerrors.Wrap(ErrInvalidHeader, "signed header cannot be nil")
	}
	if err := validateValidatorSet(valSet); err != nil {
		return err
	}
	if err := header.ValidateBasic(chainID); err != nil {
		return sdkerrors.Wrap(ErrInvalidHeader, err.Error())
	}
	if !bytes.Equal(header.ValidatorsHash, valSet.Hash()) {
		return sdkerrors.Wrapf(
			ErrInvalidValidatorSet, "header validators hash %X does not match validator set hash %X",
			header.ValidatorsHash, valSet.Hash(),
		)
	}

	// +2/3 of the set must have committed the header
	if err := valSet.VerifyCommitLight(chainID, header.Commit.BlockID, header.Height, header.Commit); err != nil {
		return sdkerrors.Wrap(ErrInvalidHeader, err.Error())
	}
	if err := valSet.VerifyCommitLightTrusting(chainID, header.Commit, trustLevel.ToTendermint()); err != nil {
		return sdkerrors.Wrap(ErrInsufficientVotingPower, err.Error())
	}
	return nil
}

// VerifyTransition implements TrustVerifier.
func (TendermintVerifier) VerifyTransition(
	trusted ConsensusState,
	header *tmtypes.SignedHeader, valSet, nextValSet *tmtypes.ValidatorSet,
	trustLevel Fraction, trustWindow, maxClockDrift time.Duration, now time.Time,
) (*ConsensusState, error) {
	if err := trusted.ValidateBasic(); err != nil {
		return nil, err
	}
	if !hasHeaderAndCommit(header) {
		return nil, sdkerrors.Wrap(ErrInvalidHeader, "signed header cannot be nil")
	}
	if err := validateValidatorSet(valSet); err != nil {
		return nil, err
	}
	if nextValSet != nil {
		if err := validateValidatorSet(nextValSet); err != nil {
			return nil, err
		}
		if !bytes.Equal(header.NextValidatorsHash, nextValSet.Hash()) {
			return nil, sdkerrors.Wrapf(
				ErrInvalidValidatorSet, "header next validators hash %X does not match next validator set hash %X",
				header.NextValidatorsHash, nextValSet.Hash(),
			)
		}
	}

	if trusted.IsExpired(trustWindow, now) {
		return nil, sdkerrors.Wrapf(
			ErrTrustingPeriodExpired, "last update %s + trust window %s <= current time %s",
			trusted.LastUpdate, trustWindow, now,
		)
	}

	if err := verifyNewHeaderAndVals(trusted.SignedHeader, header, valSet, now, maxClockDrift); err != nil {
		return nil, err
	}

	chainID := trusted.SignedHeader.ChainID
	if header.Height == trusted.Height()+1 {
		// sequential: the trusted header must have announced the new validator set
		if !bytes.Equal(header.ValidatorsHash, trusted.SignedHeader.NextValidatorsHash) {
			return nil, sdkerrors.Wrapf(
				ErrInvalidHeader, "expected old header next validators hash %X to match new validators hash %X",
				trusted.SignedHeader.NextValidatorsHash, header.ValidatorsHash,
			)
		}
	} else if err := verifyTrusting(chainID, trusted, header, trustLevel); err != nil {
		return nil, err
	}

	// +2/3 of the new validator set must have committed the header
	if err := valSet.VerifyCommitLight(chainID, header.Commit.BlockID, header.Height, header.Commit); err != nil {
		return nil, sdkerrors.Wrap(ErrInvalidHeader, err.Error())
	}

	return NewConsensusState(header, valSet, nextValSet, now), nil
}

// verifyNewHeaderAndVals checks that header extends the trusted header and is bound
// to valSet. Staleness is not checked here: it is measured from the last update
// of the trusted state, never from the trusted header time.
func verifyNewHeaderAndVals(
	trustedHeader, header *tmtypes.SignedHeader, valSet *tmtypes.ValidatorSet,
	now time.Time, maxClockDrift time.Duration,
) error {
	if err := header.ValidateBasic(trustedHeader.ChainID); err != nil {
		return sdkerrors.Wrap(ErrInvalidHeader, err.Error())
	}
	if header.Height <= trustedHeader.Height {
		return sdkerrors.Wrapf(
			ErrInvalidHeaderHeight, "expected new header height %d to be greater than one of old header %d",
			header.Height, trustedHeader.Height,
		)
	}
	if !header.Time.After(trustedHeader.Time) {
		return sdkerrors.Wrapf(
			ErrInvalidHeader, "expected new header time %s to be after old header time %s",
			header.Time, trustedHeader.Time,
		)
	}
	if !header.Time.Before(now.Add(maxClockDrift)) {
		return sdkerrors.Wrapf(
			ErrInvalidHeader, "new header has a time from the future %s (now: %s; max clock drift: %s)",
			header.Time, now, maxClockDrift,
		)
	}
	if !bytes.Equal(header.ValidatorsHash, valSet.Hash()) {
		return sdkerrors.Wrapf(
			ErrInvalidHeader, "expected new header validators hash %X to match validator set hash %X",
			header.ValidatorsHash, valSet.Hash(),
		)
	}
	return nil
}

// verifyTrusting checks that at least trustLevel of a trusted validator set signed
// header. The set bound to the trusted header is tried first, then the next
// validator set recorded with it, which lets trust cross a validator set change
// announced by the trusted header.
func verifyTrusting(chainID string, trusted ConsensusState, header *tmtypes.SignedHeader, trustLevel Fraction) error {
	err := trusted.ValidatorSet.VerifyCommitLightTrusting(chainID, header.Commit, trustLevel.ToTendermint())
	if err == nil {
		return nil
	}

	next := trusted.NextValidatorSet
	if next != nil && !bytes.Equal(next.Hash(), trusted.ValidatorSet.Hash()) {
		if nextErr := next.VerifyCommitLightTrusting(chainID, header.Commit, trustLevel.ToTendermint()); nextErr == nil {
			return nil
		}
	}

	var notEnough tmtypes.ErrNotEnoughVotingPowerSigned
	if errors.As(err, &notEnough) {
		return sdkerrors.Wrap(ErrInsufficientVotingPower, err.Error())
	}
	return sdkerrors.Wrap(ErrInvalidHeader, err.Error())
}

// validateValidatorSet rejects sets that cannot be hashed safely.
func validateValidatorSet(valSet *tmtypes.ValidatorSet) error {
	if valSet.IsNilOrEmpty() {
		return sdkerrors.Wrap(ErrInvalidValidatorSet, "validator set cannot be empty")
	}
	for i, val := range valSet.Validators {
		if err := val.ValidateBasic(); err != nil {
			return sdkerrors.Wrapf(ErrInvalidValidatorSet, "validator %d: %v", i, err)
		}
	}
	return nil
}

func hasHeaderAndCommit(header *tmtypes.SignedHeader) bool {
	return header != nil && header.Header != nil && header.Commit != nil
}
