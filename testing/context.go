package lctesting

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/tendermint/tendermint/crypto/ed25519"
	"github.com/tendermint/tendermint/libs/log"
	tmproto "github.com/tendermint/tendermint/proto/tendermint/types"
	dbm "github.com/tendermint/tm-db"

	"github.com/cosmos/cosmos-sdk/store"
	storetypes "github.com/cosmos/cosmos-sdk/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/tmbridge/lightclient/modules/light-clients/07-tendermint/types"
)

// NewTestContext mounts the module store on an in-memory multistore and returns a
// context whose block time is now.
func NewTestContext(tb testing.TB, now time.Time) (sdk.Context, storetypes.StoreKey) {
	tb.Helper()

	key := sdk.NewKVStoreKey(types.StoreKey)
	db := dbm.NewMemDB()

	cms := store.NewCommitMultiStore(db)
	cms.MountStoreWithDB(key, sdk.StoreTypeIAVL, db)
	require.NoError(tb, cms.LoadLatestVersion())

	ctx := sdk.NewContext(cms, tmproto.Header{Time: now.UTC()}, false, log.NewNopLogger())
	return ctx, key
}

// NewSubmitter returns a fresh account address to sign test messages with.
func NewSubmitter() sdk.AccAddress {
	return sdk.AccAddress(ed25519.GenPrivKey().PubKey().Address())
}
