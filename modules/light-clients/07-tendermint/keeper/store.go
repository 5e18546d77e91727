package keeper

import (
	"fmt"

	tmbytes "github.com/tendermint/tendermint/libs/bytes"
	tmjson "github.com/tendermint/tendermint/libs/json"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/tmbridge/lightclient/modules/light-clients/07-tendermint/types"
)

// The module store holds three views that are always written together: the full
// client record, its ClientInfo projection and the listing of all client ids.

// GetClient returns the full record of a client.
func (k Keeper) GetClient(ctx sdk.Context, clientID []byte) (types.TendermintClient, bool) {
	store := ctx.KVStore(k.storeKey)
	bz := store.Get(types.ClientKey(clientID))
	if len(bz) == 0 {
		return types.TendermintClient{}, false
	}

	client, err := types.UnmarshalClient(bz)
	if err != nil {
		panic(fmt.Errorf("failed to decode client %s: %w", types.FormatClientID(clientID), err))
	}
	return client, true
}

// HasClient returns true if a client with the given identifier exists.
func (k Keeper) HasClient(ctx sdk.Context, clientID []byte) bool {
	store := ctx.KVStore(k.storeKey)
	return store.Has(types.ClientKey(clientID))
}

// GetClientInfo returns the info projection of a client.
func (k Keeper) GetClientInfo(ctx sdk.Context, clientID []byte) (types.ClientInfo, bool) {
	store := ctx.KVStore(k.storeKey)
	bz := store.Get(types.ClientInfoKey(clientID))
	if len(bz) == 0 {
		return types.ClientInfo{}, false
	}

	info, err := types.UnmarshalClientInfo(bz)
	if err != nil {
		panic(fmt.Errorf("failed to decode client info %s: %w", types.FormatClientID(clientID), err))
	}
	return info, true
}

// GetClientIDs returns the identifiers of every client in creation order.
func (k Keeper) GetClientIDs(ctx sdk.Context) []tmbytes.HexBytes {
	store := ctx.KVStore(k.storeKey)
	bz := store.Get(types.KeyClientList)
	if len(bz) == 0 {
		return []tmbytes.HexBytes{}
	}

	var ids []tmbytes.HexBytes
	if err := tmjson.Unmarshal(bz, &ids); err != nil {
		panic(fmt.Errorf("failed to decode client list: %w", err))
	}
	return ids
}

// IterateClients calls cb on every client in creation order until cb returns true.
func (k Keeper) IterateClients(ctx sdk.Context, cb func(client types.TendermintClient) (stop bool)) {
	for _, id := range k.GetClientIDs(ctx) {
		client, found := k.GetClient(ctx, id)
		if !found {
			panic(fmt.Errorf("listed client %s has no record", id))
		}
		if cb(client) {
			return
		}
	}
}

// setClient writes the client record and its recomputed info projection.
func (k Keeper) setClient(ctx sdk.Context, client types.TendermintClient) {
	store := ctx.KVStore(k.storeKey)
	store.Set(types.ClientKey(client.ClientID), types.MustMarshalClient(client))
	store.Set(types.ClientInfoKey(client.ClientID), types.MustMarshalClientInfo(client.Info()))
}

// appendClientID adds a newly created client to the listing. Only the create
// transition and genesis import call it.
func (k Keeper) appendClientID(ctx sdk.Context, clientID tmbytes.HexBytes) {
	ids := append(k.GetClientIDs(ctx), clientID)
	bz, err := tmjson.Marshal(ids)
	if err != nil {
		panic(err)
	}

	store := ctx.KVStore(k.storeKey)
	store.Set(types.KeyClientList, bz)
}
