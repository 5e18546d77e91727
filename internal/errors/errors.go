package errors

import (
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
)

const codespace = "lightclient"

var (
	// ErrLogic defines an internal logic error, e.g. an invariant or assertion
	// that is violated. It is a programmer error, not a user-facing error.
	ErrLogic = sdkerrors.Register(codespace, 2, "internal logic error")

	// ErrInvalidRequest defines an error where the request contains invalid data.
	ErrInvalidRequest = sdkerrors.Register(codespace, 3, "invalid request")

	// ErrInvalidConfig is used when the node configuration cannot be used.
	ErrInvalidConfig = sdkerrors.Register(codespace, 4, "invalid configuration")
)
