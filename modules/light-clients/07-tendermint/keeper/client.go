package keeper

import (
	metrics "github.com/armon/go-metrics"

	"github.com/cosmos/cosmos-sdk/telemetry"
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"

	lcerrors "github.com/tmbridge/lightclient/internal/errors"
	"github.com/tmbridge/lightclient/modules/light-clients/07-tendermint/types"
)

// CreateClient validates the initial header and validator set of a new client and
// stores the client with that header as its trusted state. Creation fails if the
// identifier is already in use. Nothing is written unless every check passes.
func (k Keeper) CreateClient(
	ctx sdk.Context, submitter sdk.AccAddress, payload types.CreateClientPayload,
) (types.TendermintClient, error) {
	if err := payload.ValidateBasic(); err != nil {
		return types.TendermintClient{}, err
	}

	client, err := k.createClient(ctx, payload)
	if err != nil {
		return types.TendermintClient{}, err
	}

	clientID := client.ClientID.String()
	k.Logger(ctx).Info("client created at height", "client-id", clientID, "chain-id", client.ChainID, "height", client.LatestHeight())

	defer telemetry.IncrCounterWithLabels(
		[]string{types.ModuleName, "client", "create"},
		1,
		[]metrics.Label{telemetry.NewLabel(types.LabelChainID, client.ChainID)},
	)

	emitCreateClientEvent(ctx, submitter, client)

	if k.hooks != nil {
		if err := k.hooks.AfterClientCreated(ctx, submitter, client.ClientID, client.ChainID, client.LatestHeight()); err != nil {
			k.Logger(ctx).Error("client created hook failed", "client-id", clientID, "err", err)
		}
	}

	return client, nil
}

func (k Keeper) createClient(ctx sdk.Context, payload types.CreateClientPayload) (types.TendermintClient, error) {
	k.mtx.Lock()
	defer k.mtx.Unlock()

	if k.HasClient(ctx, payload.ClientID) {
		return types.TendermintClient{}, sdkerrors.Wrapf(types.ErrClientAlreadyInitialized, "client id %s", payload.ClientID)
	}

	chainID := payload.GetChainID()
	params := payload.GetTrustParameters()
	if err := k.validateInitialState(ctx, chainID, params, payload); err != nil {
		return types.TendermintClient{}, types.ValidationFailure(err)
	}

	consensusState := types.NewConsensusState(payload.Header, payload.ValidatorSet, nil, ctx.BlockTime())
	client := types.NewTendermintClient(payload.ClientID, chainID, params, consensusState)

	cacheCtx, writeCache := ctx.CacheContext()
	k.setClient(cacheCtx, client)
	k.appendClientID(cacheCtx, client.ClientID)
	writeCache()

	return client, nil
}

// validateInitialState checks the parameters and the initial header of a create
// request. The header must be verified by its own validator set, must not be from
// the future and must still be within the trusting period.
func (k Keeper) validateInitialState(
	ctx sdk.Context, chainID string, params types.TrustParameters, payload types.CreateClientPayload,
) error {
	if err := types.ValidateChainID(chainID); err != nil {
		return err
	}
	if payload.Header.ChainID != chainID {
		return sdkerrors.Wrapf(
			types.ErrInvalidChainID, "header chain-id %s does not match requested chain-id %s",
			payload.Header.ChainID, chainID,
		)
	}
	if err := params.Validate(); err != nil {
		return err
	}
	if err := k.verifier.ValidateInitial(chainID, payload.Header, payload.ValidatorSet, params.TrustLevel); err != nil {
		return err
	}

	now := ctx.BlockTime()
	headerTime := payload.Header.Time
	if !headerTime.Add(params.TrustingPeriod).After(now) {
		return sdkerrors.Wrapf(
			types.ErrTrustingPeriodExpired, "initial header time %s + trusting period %s <= current time %s",
			headerTime, params.TrustingPeriod, now,
		)
	}
	if !headerTime.Before(now.Add(params.MaxClockDrift)) {
		return sdkerrors.Wrapf(
			types.ErrInvalidHeader, "initial header has a time from the future %s (now: %s; max clock drift: %s)",
			headerTime, now, params.MaxClockDrift,
		)
	}
	return nil
}

// UpdateClient verifies a candidate header against the trusted state of a client
// and, if it can be trusted, replaces the trusted state with it. On failure the
// stored client is left unchanged.
func (k Keeper) UpdateClient(
	ctx sdk.Context, submitter sdk.AccAddress, payload types.UpdateClientPayload,
) (types.TendermintClient, error) {
	if err := payload.ValidateBasic(); err != nil {
		return types.TendermintClient{}, err
	}

	client, updateType, err := k.updateClient(ctx, payload)
	if err != nil {
		return types.TendermintClient{}, err
	}

	clientID := client.ClientID.String()
	k.Logger(ctx).Info("client state updated", "client-id", clientID, "height", client.LatestHeight(), "update-type", updateType)

	defer telemetry.IncrCounterWithLabels(
		[]string{types.ModuleName, "client", "update"},
		1,
		[]metrics.Label{
			telemetry.NewLabel(types.LabelClientID, clientID),
			telemetry.NewLabel(types.LabelChainID, client.ChainID),
			telemetry.NewLabel(types.LabelUpdateType, updateType),
		},
	)

	emitUpdateClientEvent(ctx, submitter, client, updateType)

	if k.hooks != nil {
		if err := k.hooks.AfterClientUpdated(ctx, submitter, client.ClientID, client.ChainID, client.LatestHeight()); err != nil {
			k.Logger(ctx).Error("client updated hook failed", "client-id", clientID, "err", err)
		}
	}

	return client, nil
}

func (k Keeper) updateClient(ctx sdk.Context, payload types.UpdateClientPayload) (types.TendermintClient, string, error) {
	k.mtx.Lock()
	defer k.mtx.Unlock()

	client, found := k.GetClient(ctx, payload.ClientID)
	if !found {
		return types.TendermintClient{}, "", sdkerrors.Wrapf(types.ErrItemNotFound, "client id %s", payload.ClientID)
	}

	// every stored client was created with a consensus state
	if client.ConsensusState == nil {
		k.Logger(ctx).Error("stored client has no consensus state", "client-id", client.ClientID.String())
		return types.TendermintClient{}, "", sdkerrors.Wrapf(lcerrors.ErrLogic, "client %s has no consensus state", payload.ClientID)
	}

	trusted := *client.ConsensusState
	params := client.TrustParameters
	header := payload.Header
	now := ctx.BlockTime().UTC()

	if header.Height <= trusted.Height() {
		return types.TendermintClient{}, "", types.ValidationFailure(sdkerrors.Wrapf(
			types.ErrInvalidHeaderHeight, "header height %d must be greater than trusted height %d",
			header.Height, trusted.Height(),
		))
	}
	if !header.Time.Add(params.UnbondingPeriod).After(now) {
		return types.TendermintClient{}, "", types.ValidationFailure(sdkerrors.Wrapf(
			types.ErrUnbondingPeriodExpired, "header time %s + unbonding period %s <= current time %s",
			header.Time, params.UnbondingPeriod, now,
		))
	}

	newState, err := k.verifier.VerifyTransition(
		trusted,
		header, payload.ValidatorSet, payload.NextValidatorSet,
		params.TrustLevel, params.TrustWindow(), params.MaxClockDrift, now,
	)
	if err != nil {
		return types.TendermintClient{}, "", types.ValidationFailure(err)
	}
	if newState == nil || newState.Height() <= trusted.Height() {
		return types.TendermintClient{}, "", sdkerrors.Wrap(lcerrors.ErrLogic, "verifier returned a state that does not advance the trusted height")
	}

	updateType := types.UpdateTypeSkipping
	if header.Height == trusted.Height()+1 {
		updateType = types.UpdateTypeAdjacent
	}

	client.ConsensusState = newState

	cacheCtx, writeCache := ctx.CacheContext()
	k.setClient(cacheCtx, client)
	writeCache()

	return client, updateType, nil
}
