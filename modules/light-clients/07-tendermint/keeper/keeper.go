package keeper

import (
	"fmt"
	"sync"

	"github.com/tendermint/tendermint/libs/log"

	storetypes "github.com/cosmos/cosmos-sdk/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/tmbridge/lightclient/modules/light-clients/07-tendermint/types"
)

// Keeper runs the tendermint light client state machine over the module store.
type Keeper struct {
	storeKey storetypes.StoreKey
	verifier types.TrustVerifier
	hooks    types.ClientHooks

	// serializes transitions so that the existence check of a create and the
	// read-verify-write of an update are never interleaved
	mtx *sync.Mutex
}

// NewKeeper creates a new tendermint light client Keeper instance. A nil verifier
// selects the tendermint verification rules.
func NewKeeper(key storetypes.StoreKey, verifier types.TrustVerifier) Keeper {
	if verifier == nil {
		verifier = types.NewTendermintVerifier()
	}

	return Keeper{
		storeKey: key,
		verifier: verifier,
		mtx:      &sync.Mutex{},
	}
}

// SetHooks sets the client hooks. It panics if hooks were already set.
func (k *Keeper) SetHooks(hooks types.ClientHooks) *Keeper {
	if k.hooks != nil {
		panic("cannot set tendermint client hooks twice")
	}

	k.hooks = hooks
	return k
}

// Logger returns a module-specific logger.
func (Keeper) Logger(ctx sdk.Context) log.Logger {
	return ctx.Logger().With("module", fmt.Sprintf("x/%s", types.ModuleName))
}
