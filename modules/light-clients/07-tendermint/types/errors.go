package types

import (
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
)

// Tendermint light client sentinel errors. The first four are the kinds reported to
// submitters; the rest describe why a request failed validation.
var (
	ErrDeserialize              = sdkerrors.Register(ModuleName, 2, "unable to deserialize payload")
	ErrClientAlreadyInitialized = sdkerrors.Register(ModuleName, 3, "client already initialized")
	ErrItemNotFound             = sdkerrors.Register(ModuleName, 4, "item not found in storage")
	ErrValidation               = sdkerrors.Register(ModuleName, 5, "validation failed")
	ErrInvalidSigner            = sdkerrors.Register(ModuleName, 6, "invalid signer")
	ErrInvalidChainID           = sdkerrors.Register(ModuleName, 7, "invalid chain-id")
	ErrInvalidTrustLevel        = sdkerrors.Register(ModuleName, 8, "invalid trust level")
	ErrInvalidTrustingPeriod    = sdkerrors.Register(ModuleName, 9, "invalid trusting period")
	ErrInvalidUnbondingPeriod   = sdkerrors.Register(ModuleName, 10, "invalid unbonding period")
	ErrInvalidMaxClockDrift     = sdkerrors.Register(ModuleName, 11, "invalid max clock drift")
	ErrInvalidHeader            = sdkerrors.Register(ModuleName, 12, "invalid header")
	ErrInvalidHeaderHeight      = sdkerrors.Register(ModuleName, 13, "invalid header height")
	ErrInvalidValidatorSet      = sdkerrors.Register(ModuleName, 14, "invalid validator set")
	ErrTrustingPeriodExpired    = sdkerrors.Register(ModuleName, 15, "time since latest trusted state has passed the trust window")
	ErrUnbondingPeriodExpired   = sdkerrors.Register(ModuleName, 16, "header is older than the unbonding period")
	ErrInsufficientVotingPower  = sdkerrors.Register(ModuleName, 17, "insufficient voting power of trusted validators signed the header")
	ErrInvalidGenesis           = sdkerrors.Register(ModuleName, 18, "invalid genesis state")
)

// ValidationFailure tags err as a rejected create or update request. The returned
// error matches ErrValidation under errors.Is, reports the ErrValidation ABCI code
// and still unwraps to err.
func ValidationFailure(err error) error {
	if err == nil {
		return nil
	}
	return validationError{reason: err}
}

type validationError struct {
	reason error
}

func (e validationError) Error() string {
	return ErrValidation.Error() + ": " + e.reason.Error()
}

func (e validationError) Unwrap() error { return e.reason }

func (e validationError) Cause() error { return e.reason }

func (e validationError) Is(target error) bool {
	return ErrValidation.Is(target)
}

func (e validationError) Codespace() string { return ErrValidation.Codespace() }

func (e validationError) ABCICode() uint32 { return ErrValidation.ABCICode() }
