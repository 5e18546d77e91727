package keeper

import (
	"context"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"

	"github.com/tmbridge/lightclient/internal/validate"
	"github.com/tmbridge/lightclient/modules/light-clients/07-tendermint/types"
)

var _ types.QueryServer = Keeper{}

// Client returns the full record of a client.
func (k Keeper) Client(c context.Context, req *types.QueryClientRequest) (*types.QueryClientResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "empty request")
	}
	if err := validate.GRPCRequest(req.ClientID); err != nil {
		return nil, err
	}

	ctx := sdk.UnwrapSDKContext(c)
	client, found := k.GetClient(ctx, req.ClientID)
	if !found {
		return nil, status.Error(codes.NotFound, sdkerrors.Wrap(types.ErrItemNotFound, req.ClientID.String()).Error())
	}

	return &types.QueryClientResponse{
		Client: client,
	}, nil
}

// ClientInfo returns the chain-id and latest height of a client.
func (k Keeper) ClientInfo(c context.Context, req *types.QueryClientInfoRequest) (*types.QueryClientInfoResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "empty request")
	}
	if err := validate.GRPCRequest(req.ClientID); err != nil {
		return nil, err
	}

	ctx := sdk.UnwrapSDKContext(c)
	info, found := k.GetClientInfo(ctx, req.ClientID)
	if !found {
		return nil, status.Error(codes.NotFound, sdkerrors.Wrap(types.ErrItemNotFound, req.ClientID.String()).Error())
	}

	return &types.QueryClientInfoResponse{
		Info: info,
	}, nil
}

// Clients lists every client identifier in creation order.
func (k Keeper) Clients(c context.Context, req *types.QueryClientsRequest) (*types.QueryClientsResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "empty request")
	}

	ctx := sdk.UnwrapSDKContext(c)
	return &types.QueryClientsResponse{
		ClientIDs: k.GetClientIDs(ctx),
	}, nil
}

// ClientStatus returns the status of a client at the block time. Unknown
// identifiers report the Unknown status rather than an error.
func (k Keeper) ClientStatus(c context.Context, req *types.QueryClientStatusRequest) (*types.QueryClientStatusResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "empty request")
	}
	if err := validate.GRPCRequest(req.ClientID); err != nil {
		return nil, err
	}

	ctx := sdk.UnwrapSDKContext(c)
	client, found := k.GetClient(ctx, req.ClientID)
	if !found {
		return &types.QueryClientStatusResponse{Status: types.Unknown}, nil
	}

	return &types.QueryClientStatusResponse{
		Status: client.Status(ctx.BlockTime()),
	}, nil
}
