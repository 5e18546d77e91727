package keeper

import (
	"context"

	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"

	"github.com/tmbridge/lightclient/modules/light-clients/07-tendermint/types"
)

type msgServer struct {
	Keeper
}

// NewMsgServerImpl returns an implementation of the MsgServer interface for the
// provided Keeper. Signers are authenticated and payloads decoded before the
// keeper is invoked.
func NewMsgServerImpl(keeper Keeper) types.MsgServer {
	return &msgServer{Keeper: keeper}
}

var _ types.MsgServer = msgServer{}

// CreateClient defines a rpc handler method for MsgCreateClient.
func (m msgServer) CreateClient(goCtx context.Context, msg *types.MsgCreateClient) (*types.MsgCreateClientResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)

	submitter, err := types.ParseSigner(msg.Signer)
	if err != nil {
		return nil, err
	}

	payload, err := types.DecodeCreateClientPayload(msg.Payload)
	if err != nil {
		return nil, err
	}

	client, err := m.Keeper.CreateClient(ctx, submitter, payload)
	if err != nil {
		return nil, sdkerrors.Wrap(err, "client creation failed")
	}

	return &types.MsgCreateClientResponse{
		ClientID: client.ClientID,
		Height:   client.LatestHeight(),
	}, nil
}

// UpdateClient defines a rpc handler method for MsgUpdateClient.
func (m msgServer) UpdateClient(goCtx context.Context, msg *types.MsgUpdateClient) (*types.MsgUpdateClientResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)

	submitter, err := types.ParseSigner(msg.Signer)
	if err != nil {
		return nil, err
	}

	payload, err := types.DecodeUpdateClientPayload(msg.Payload)
	if err != nil {
		return nil, err
	}

	client, err := m.Keeper.UpdateClient(ctx, submitter, payload)
	if err != nil {
		return nil, sdkerrors.Wrap(err, "client update failed")
	}

	return &types.MsgUpdateClientResponse{
		ClientID: client.ClientID,
		Height:   client.LatestHeight(),
	}, nil
}
