package keeper

import (
	"strconv"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/tmbridge/lightclient/modules/light-clients/07-tendermint/types"
)

// emitCreateClientEvent emits a create client event
func emitCreateClientEvent(ctx sdk.Context, submitter sdk.AccAddress, client types.TendermintClient) {
	ctx.EventManager().EmitEvents(sdk.Events{
		sdk.NewEvent(
			types.EventTypeCreateClient,
			sdk.NewAttribute(types.AttributeKeySubmitter, submitter.String()),
			sdk.NewAttribute(types.AttributeKeyClientID, client.ClientID.String()),
			sdk.NewAttribute(types.AttributeKeyChainID, client.ChainID),
			sdk.NewAttribute(types.AttributeKeyHeight, strconv.FormatInt(client.LatestHeight(), 10)),
		),
		sdk.NewEvent(
			sdk.EventTypeMessage,
			sdk.NewAttribute(sdk.AttributeKeyModule, types.AttributeValueCategory),
		),
	})
}

// emitUpdateClientEvent emits an update client event
func emitUpdateClientEvent(ctx sdk.Context, submitter sdk.AccAddress, client types.TendermintClient, updateType string) {
	ctx.EventManager().EmitEvents(sdk.Events{
		sdk.NewEvent(
			types.EventTypeUpdateClient,
			sdk.NewAttribute(types.AttributeKeySubmitter, submitter.String()),
			sdk.NewAttribute(types.AttributeKeyClientID, client.ClientID.String()),
			sdk.NewAttribute(types.AttributeKeyChainID, client.ChainID),
			sdk.NewAttribute(types.AttributeKeyHeight, strconv.FormatInt(client.LatestHeight(), 10)),
			sdk.NewAttribute(types.AttributeKeyUpdateType, updateType),
		),
		sdk.NewEvent(
			sdk.EventTypeMessage,
			sdk.NewAttribute(sdk.AttributeKeyModule, types.AttributeValueCategory),
		),
	})
}
