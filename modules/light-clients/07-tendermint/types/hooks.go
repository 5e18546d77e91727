package types

import (
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// ClientHooks observe committed client transitions. They run only after the new
// state has been written.
type ClientHooks interface {
	// AfterClientCreated is executed after a client has been created.
	AfterClientCreated(ctx sdk.Context, submitter sdk.AccAddress, clientID []byte, chainID string, height int64) error
	// AfterClientUpdated is executed after a client has advanced to a new trusted header.
	AfterClientUpdated(ctx sdk.Context, submitter sdk.AccAddress, clientID []byte, chainID string, height int64) error
}

var _ ClientHooks = MultiClientHooks{}

// MultiClientHooks combines multiple client hooks, all hook functions are run in array sequence
type MultiClientHooks []ClientHooks

// NewMultiClientHooks creates a new MultiClientHooks instance.
func NewMultiClientHooks(hooks ...ClientHooks) MultiClientHooks {
	return hooks
}

func (h MultiClientHooks) AfterClientCreated(ctx sdk.Context, submitter sdk.AccAddress, clientID []byte, chainID string, height int64) error {
	for i := range h {
		if err := h[i].AfterClientCreated(ctx, submitter, clientID, chainID, height); err != nil {
			return err
		}
	}
	return nil
}

func (h MultiClientHooks) AfterClientUpdated(ctx sdk.Context, submitter sdk.AccAddress, clientID []byte, chainID string, height int64) error {
	for i := range h {
		if err := h[i].AfterClientUpdated(ctx, submitter, clientID, chainID, height); err != nil {
			return err
		}
	}
	return nil
}
