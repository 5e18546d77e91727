// Package app wires the tendermint light client keeper to a persistent
// multistore so that client transitions can be run outside of a full chain.
package app

import (
	"time"

	"github.com/pkg/errors"
	"github.com/tendermint/tendermint/libs/log"
	tmproto "github.com/tendermint/tendermint/proto/tendermint/types"
	dbm "github.com/tendermint/tm-db"

	"github.com/cosmos/cosmos-sdk/store"
	storetypes "github.com/cosmos/cosmos-sdk/store/types"
	"github.com/cosmos/cosmos-sdk/telemetry"
	sdk "github.com/cosmos/cosmos-sdk/types"

	lcerrors "github.com/tmbridge/lightclient/internal/errors"
	"github.com/tmbridge/lightclient/modules/light-clients/07-tendermint/keeper"
	"github.com/tmbridge/lightclient/modules/light-clients/07-tendermint/types"
)

// AppName is the name of the database and of the telemetry service.
const AppName = "tmclient"

// Config holds the options needed to open an App.
type Config struct {
	// DBBackend is a tm-db backend type, e.g. goleveldb or memdb.
	DBBackend string
	// DBDir is the directory holding the database. Unused by memdb.
	DBDir string
	// Telemetry enables in-memory collection of the module counters.
	Telemetry bool
}

// App owns the module store and the keeper operating on it.
type App struct {
	logger   log.Logger
	db       dbm.DB
	cms      storetypes.CommitMultiStore
	storeKey *storetypes.KVStoreKey
	metrics  *telemetry.Metrics

	Keeper keeper.Keeper
}

// New opens the database described by cfg and loads the latest committed version
// of the module store.
func New(cfg Config, logger log.Logger, hooks ...types.ClientHooks) (*App, error) {
	db, err := dbm.NewDB(AppName, dbm.BackendType(cfg.DBBackend), cfg.DBDir)
	if err != nil {
		return nil, errors.Wrapf(lcerrors.ErrInvalidConfig, "failed to open %s database in %s: %v", cfg.DBBackend, cfg.DBDir, err)
	}

	app, err := NewWithDB(db, logger, hooks...)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	if cfg.Telemetry {
		app.metrics, err = telemetry.New(telemetry.Config{
			ServiceName:         AppName,
			Enabled:             true,
			EnableServiceLabel:  true,
			EnableHostnameLabel: false,
		})
		if err != nil {
			_ = app.Close()
			return nil, errors.Wrap(err, "failed to initialize telemetry")
		}
	}

	return app, nil
}

// NewWithDB creates an App on an already opened database.
func NewWithDB(db dbm.DB, logger log.Logger, hooks ...types.ClientHooks) (*App, error) {
	storeKey := sdk.NewKVStoreKey(types.StoreKey)

	cms := store.NewCommitMultiStore(db)
	cms.MountStoreWithDB(storeKey, sdk.StoreTypeIAVL, nil)
	if err := cms.LoadLatestVersion(); err != nil {
		return nil, errors.Wrap(err, "failed to load latest version")
	}

	k := keeper.NewKeeper(storeKey, nil)
	if len(hooks) > 0 {
		k.SetHooks(types.NewMultiClientHooks(hooks...))
	}

	return &App{
		logger:   logger,
		db:       db,
		cms:      cms,
		storeKey: storeKey,
		Keeper:   k,
	}, nil
}

// LastHeight returns the height of the last committed version.
func (a *App) LastHeight() int64 {
	return a.cms.LastCommitID().Version
}

// NewContext returns a context for the next block with the given block time.
func (a *App) NewContext(now time.Time) sdk.Context {
	header := tmproto.Header{
		ChainID: AppName,
		Height:  a.LastHeight() + 1,
		Time:    now.UTC(),
	}
	return sdk.NewContext(a.cms, header, false, a.logger)
}

// Execute runs fn in a new block at time now and commits the store if fn
// succeeds. It returns the events emitted by fn.
func (a *App) Execute(now time.Time, fn func(ctx sdk.Context) error) (sdk.Events, error) {
	ctx := a.NewContext(now)
	if err := fn(ctx); err != nil {
		return nil, err
	}

	commitID := a.cms.Commit()
	a.logger.Debug("committed state", "height", commitID.Version, "hash", commitID.Hash)

	return ctx.EventManager().Events(), nil
}

// Query runs fn against the last committed state at time now.
func (a *App) Query(now time.Time, fn func(ctx sdk.Context) error) error {
	return fn(a.NewContext(now))
}

// Metrics returns the collected counters in JSON, or nil when telemetry is disabled.
func (a *App) Metrics() ([]byte, error) {
	if a.metrics == nil {
		return nil, nil
	}

	res, err := a.metrics.Gather(telemetry.FormatDefault)
	if err != nil {
		return nil, err
	}
	return res.Metrics, nil
}

// Close releases the database.
func (a *App) Close() error {
	return a.db.Close()
}
