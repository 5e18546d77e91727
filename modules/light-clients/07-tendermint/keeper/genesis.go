package keeper

import (
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"

	"github.com/tmbridge/lightclient/modules/light-clients/07-tendermint/types"
)

// InitGenesis initializes the module state from a provided genesis state. Every
// client is written to all three store views in the order it appears.
func (k Keeper) InitGenesis(ctx sdk.Context, gs types.GenesisState) error {
	if err := gs.Validate(); err != nil {
		return err
	}

	cacheCtx, writeCache := ctx.CacheContext()
	for _, client := range gs.Clients {
		if k.HasClient(cacheCtx, client.ClientID) {
			return sdkerrors.Wrapf(types.ErrClientAlreadyInitialized, "client id %s", client.ClientID)
		}

		k.setClient(cacheCtx, client)
		k.appendClientID(cacheCtx, client.ClientID)
	}
	writeCache()

	k.Logger(ctx).Info("imported clients from genesis", "count", len(gs.Clients))
	return nil
}

// ExportGenesis returns the module's exported genesis. Clients are listed in
// creation order.
func (k Keeper) ExportGenesis(ctx sdk.Context) types.GenesisState {
	clients := []types.TendermintClient{}
	k.IterateClients(ctx, func(client types.TendermintClient) bool {
		clients = append(clients, client)
		return false
	})

	return types.NewGenesisState(clients)
}
