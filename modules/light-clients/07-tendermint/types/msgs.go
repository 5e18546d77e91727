package types

import (
	"context"

	tmbytes "github.com/tendermint/tendermint/libs/bytes"

	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
)

// MsgCreateClient defines a message to create a tendermint light client. Payload
// holds a JSON encoded CreateClientPayload.
type MsgCreateClient struct {
	Signer  string `json:"signer"`
	Payload []byte `json:"payload"`
}

// NewMsgCreateClient creates a new MsgCreateClient instance
func NewMsgCreateClient(signer string, payload []byte) *MsgCreateClient {
	return &MsgCreateClient{
		Signer:  signer,
		Payload: payload,
	}
}

// ValidateBasic implements sdk.Msg
func (msg MsgCreateClient) ValidateBasic() error {
	_, err := validateSigner(msg.Signer)
	return err
}

// GetSigners implements sdk.Msg
func (msg MsgCreateClient) GetSigners() []sdk.AccAddress {
	accAddr, err := sdk.AccAddressFromBech32(msg.Signer)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{accAddr}
}

// MsgCreateClientResponse defines the MsgCreateClient response type.
type MsgCreateClientResponse struct {
	ClientID tmbytes.HexBytes `json:"client_id"`
	Height   int64            `json:"height"`
}

// MsgUpdateClient defines a message to update a tendermint light client. Payload
// holds a JSON encoded UpdateClientPayload.
type MsgUpdateClient struct {
	Signer  string `json:"signer"`
	Payload []byte `json:"payload"`
}

// NewMsgUpdateClient creates a new MsgUpdateClient instance
func NewMsgUpdateClient(signer string, payload []byte) *MsgUpdateClient {
	return &MsgUpdateClient{
		Signer:  signer,
		Payload: payload,
	}
}

// ValidateBasic implements sdk.Msg
func (msg MsgUpdateClient) ValidateBasic() error {
	_, err := validateSigner(msg.Signer)
	return err
}

// GetSigners implements sdk.Msg
func (msg MsgUpdateClient) GetSigners() []sdk.AccAddress {
	accAddr, err := sdk.AccAddressFromBech32(msg.Signer)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{accAddr}
}

// MsgUpdateClientResponse defines the MsgUpdateClient response type.
type MsgUpdateClientResponse struct {
	ClientID tmbytes.HexBytes `json:"client_id"`
	Height   int64            `json:"height"`
}

func validateSigner(signer string) (sdk.AccAddress, error) {
	accAddr, err := sdk.AccAddressFromBech32(signer)
	if err != nil {
		return nil, sdkerrors.Wrapf(ErrInvalidSigner, "string could not be parsed as address: %v", err)
	}
	return accAddr, nil
}

// ParseSigner authenticates the signer of a message as an account address.
func ParseSigner(signer string) (sdk.AccAddress, error) {
	return validateSigner(signer)
}

// MsgServer is the transaction surface of the tendermint light client module.
type MsgServer interface {
	CreateClient(context.Context, *MsgCreateClient) (*MsgCreateClientResponse, error)
	UpdateClient(context.Context, *MsgUpdateClient) (*MsgUpdateClientResponse, error)
}
