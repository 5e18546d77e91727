package mock

import (
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/tmbridge/lightclient/modules/light-clients/07-tendermint/types"
)

var _ types.ClientHooks = &Hooks{}

// HookCall records the arguments of one hook invocation.
type HookCall struct {
	Submitter sdk.AccAddress
	ClientID  []byte
	ChainID   string
	Height    int64
}

// Hooks records every invocation and returns Err from each of them.
type Hooks struct {
	Created []HookCall
	Updated []HookCall
	Err     error
}

func (h *Hooks) AfterClientCreated(_ sdk.Context, submitter sdk.AccAddress, clientID []byte, chainID string, height int64) error {
	h.Created = append(h.Created, HookCall{submitter, clientID, chainID, height})
	return h.Err
}

func (h *Hooks) AfterClientUpdated(_ sdk.Context, submitter sdk.AccAddress, clientID []byte, chainID string, height int64) error {
	h.Updated = append(h.Updated, HookCall{submitter, clientID, chainID, height})
	return h.Err
}
