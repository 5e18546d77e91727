package keeper_test

import (
	"errors"
	"sync"
	"time"

	tmtypes "github.com/tendermint/tendermint/types"

	sdk "github.com/cosmos/cosmos-sdk/types"

	lcerrors "github.com/tmbridge/lightclient/internal/errors"
	"github.com/tmbridge/lightclient/modules/light-clients/07-tendermint/keeper"
	"github.com/tmbridge/lightclient/modules/light-clients/07-tendermint/types"
	lctesting "github.com/tmbridge/lightclient/testing"
	"github.com/tmbridge/lightclient/testing/mock"
)

func (suite *KeeperTestSuite) TestCreateClient() {
	var payload types.CreateClientPayload

	testCases := []struct {
		name      string
		malleate  func()
		expErr    error
		expReason error
	}{
		{
			"success",
			func() {},
			nil, nil,
		},
		{
			"success with default trust parameters",
			func() {
				payload.TrustingPeriod = 0
				payload.MaxClockDrift = 0
				payload.UnbondingPeriod = 0
				payload.TrustLevel = nil
			},
			nil, nil,
		},
		{
			"success with chain-id taken from the header",
			func() {
				payload.ChainID = ""
			},
			nil, nil,
		},
		{
			"client already exists",
			func() {
				suite.createClient(testClientID)
			},
			types.ErrClientAlreadyInitialized, types.ErrClientAlreadyInitialized,
		},
		{
			"client id is empty",
			func() {
				payload.ClientID = nil
			},
			types.ErrDeserialize, types.ErrDeserialize,
		},
		{
			"trusting period overflows a duration",
			func() {
				payload.TrustingPeriod = 18447608074
			},
			types.ErrDeserialize, types.ErrDeserialize,
		},
		{
			"requested chain-id does not match header",
			func() {
				payload.ChainID = "chain-b"
			},
			types.ErrValidation, types.ErrInvalidChainID,
		},
		{
			"trust level below one third",
			func() {
				payload.TrustLevel = &types.Fraction{Numerator: 1, Denominator: 4}
			},
			types.ErrValidation, types.ErrInvalidTrustLevel,
		},
		{
			"trusting period not below unbonding period",
			func() {
				payload.TrustingPeriod = payload.UnbondingPeriod
			},
			types.ErrValidation, types.ErrInvalidTrustingPeriod,
		},
		{
			"header committed by less than +2/3 of its validator set",
			func() {
				chain := suite.chainA
				payload.Header = chain.CreateSignedHeader(chain.ChainID, 1, chain.CurrentTime, chain.Vals, chain.Vals, chain.Signers[:2])
			},
			types.ErrValidation, types.ErrInvalidHeader,
		},
		{
			"validator set does not match header",
			func() {
				payload.ValidatorSet = suite.chainA.ValidatorSetFrom(1, 2, 3, 4)
			},
			types.ErrValidation, types.ErrInvalidValidatorSet,
		},
		{
			"initial header outside the trusting period",
			func() {
				chain := suite.chainA
				headerTime := suite.now.Add(-lctesting.TrustingPeriod)
				payload.Header = chain.CreateSignedHeader(chain.ChainID, 1, headerTime, chain.Vals, chain.Vals, chain.Signers)
			},
			types.ErrValidation, types.ErrTrustingPeriodExpired,
		},
		{
			"initial header from the future",
			func() {
				chain := suite.chainA
				headerTime := suite.now.Add(lctesting.MaxClockDrift)
				payload.Header = chain.CreateSignedHeader(chain.ChainID, 1, headerTime, chain.Vals, chain.Vals, chain.Signers)
			},
			types.ErrValidation, types.ErrInvalidHeader,
		},
	}

	for _, tc := range testCases {
		tc := tc

		suite.Run(tc.name, func() {
			suite.SetupTest() // reset
			payload = suite.createPayload(testClientID)

			tc.malleate()

			suite.resetObservers()
			expIDs := suite.keeper.GetClientIDs(suite.ctx)
			snapshot := suite.storeSnapshot()

			client, err := suite.keeper.CreateClient(suite.ctx, suite.submitter, payload)

			if tc.expErr == nil {
				suite.Require().NoError(err)

				stored, found := suite.keeper.GetClient(suite.ctx, testClientID)
				suite.Require().True(found)
				suite.Require().Equal(client.ClientID, stored.ClientID)
				suite.Require().Equal(client.ChainID, stored.ChainID)
				suite.Require().Equal(payload.GetTrustParameters(), stored.TrustParameters)
				suite.Require().Equal(payload.Header.Hash(), stored.ConsensusState.SignedHeader.Hash())
				suite.Require().True(suite.now.Equal(stored.ConsensusState.LastUpdate))
				suite.Require().NoError(stored.Validate())

				info, found := suite.keeper.GetClientInfo(suite.ctx, testClientID)
				suite.Require().True(found)
				suite.Require().Equal(stored.ChainID, info.ChainID)
				suite.Require().Equal(payload.Header.Height, info.LatestHeight)
				suite.Require().Equal(stored.TrustParameters, info.TrustParameters)

				suite.Require().Len(suite.keeper.GetClientIDs(suite.ctx), len(expIDs)+1)

				attributes, found := suite.findEvent(types.EventTypeCreateClient)
				suite.Require().True(found)
				suite.Require().Equal(suite.submitter.String(), attributes[types.AttributeKeySubmitter])
				suite.Require().Equal(types.FormatClientID(testClientID), attributes[types.AttributeKeyClientID])
				suite.Require().Equal(lctesting.DefaultChainID, attributes[types.AttributeKeyChainID])
				suite.Require().Equal("1", attributes[types.AttributeKeyHeight])

				suite.Require().Len(suite.hooks.Created, 1)
				suite.Require().Equal(mock.HookCall{
					Submitter: suite.submitter,
					ClientID:  client.ClientID,
					ChainID:   lctesting.DefaultChainID,
					Height:    1,
				}, suite.hooks.Created[0])
			} else {
				suite.Require().Error(err)
				suite.Require().ErrorIs(err, tc.expErr)
				suite.Require().ErrorIs(err, tc.expReason)

				suite.Require().Equal(snapshot, suite.storeSnapshot())
				suite.Require().Equal(expIDs, suite.keeper.GetClientIDs(suite.ctx))
				suite.Require().Empty(suite.ctx.EventManager().Events())
				suite.Require().Empty(suite.hooks.Created)
			}
		})
	}
}

func (suite *KeeperTestSuite) TestCreateClientTwice() {
	original := suite.createClient(testClientID)
	snapshot := suite.storeSnapshot()

	// a second request with a different header must not overwrite the first client
	suite.chainA.NextBlock(5 * time.Second)
	_, err := suite.keeper.CreateClient(suite.ctx, suite.submitter, suite.createPayload(testClientID))
	suite.Require().ErrorIs(err, types.ErrClientAlreadyInitialized)
	suite.Require().False(errors.Is(err, types.ErrValidation))

	suite.Require().Equal(snapshot, suite.storeSnapshot())

	stored, found := suite.keeper.GetClient(suite.ctx, testClientID)
	suite.Require().True(found)
	suite.Require().Equal(original.LatestHeight(), stored.LatestHeight())
	suite.Require().Len(suite.keeper.GetClientIDs(suite.ctx), 1)
}

func (suite *KeeperTestSuite) TestCreateClientConcurrently() {
	k := keeper.NewKeeper(suite.storeKey, nil)
	payload := suite.createPayload(testClientID)

	const attempts = 8
	var (
		wg        sync.WaitGroup
		mtx       sync.Mutex
		successes int
		conflicts int
	)
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			ctx := suite.ctx.WithEventManager(sdk.NewEventManager())
			_, err := k.CreateClient(ctx, suite.submitter, payload)

			mtx.Lock()
			defer mtx.Unlock()
			switch {
			case err == nil:
				successes++
			case errors.Is(err, types.ErrClientAlreadyInitialized):
				conflicts++
			}
		}()
	}
	wg.Wait()

	suite.Require().Equal(1, successes)
	suite.Require().Equal(attempts-1, conflicts)
	suite.Require().Len(k.GetClientIDs(suite.ctx), 1)
}

func (suite *KeeperTestSuite) TestUpdateClient() {
	var (
		clientID []byte
		payload  types.UpdateClientPayload
		expType  string
	)

	chain := func() *lctesting.TestChain { return suite.chainA }
	headerTime := lctesting.DefaultGenesisTime.Add(5 * time.Second)

	testCases := []struct {
		name      string
		malleate  func()
		expErr    error
		expReason error
	}{
		{
			"success: adjacent header",
			func() {},
			nil, nil,
		},
		{
			"success: adjacent header with next validator set",
			func() {
				payload.NextValidatorSet = chain().Vals
			},
			nil, nil,
		},
		{
			"success: skipping header signed by an overlapping validator set",
			func() {
				valSet := chain().ValidatorSetFrom(1, 2, 3, 4)
				payload.Header = chain().CreateSignedHeader(chain().ChainID, 5, headerTime, valSet, valSet, chain().Signers)
				payload.ValidatorSet = valSet
				expType = types.UpdateTypeSkipping
			},
			nil, nil,
		},
		{
			"client does not exist",
			func() {
				payload.ClientID = testClientID2
			},
			types.ErrItemNotFound, types.ErrItemNotFound,
		},
		{
			"client id is too long",
			func() {
				payload.ClientID = make([]byte, types.MaxClientIDLength+1)
			},
			types.ErrDeserialize, types.ErrDeserialize,
		},
		{
			"header height equal to trusted height",
			func() {
				payload.Header = chain().CreateSignedHeader(chain().ChainID, 1, headerTime, chain().Vals, chain().Vals, chain().Signers)
			},
			types.ErrValidation, types.ErrInvalidHeaderHeight,
		},
		{
			"header signed by a disjoint validator set",
			func() {
				chainB := lctesting.NewTestChain(suite.T(), chain().ChainID, 4, 4)
				payload.Header = chainB.CreateSignedHeader(chainB.ChainID, 5, headerTime, chainB.Vals, chainB.Vals, chainB.Signers)
				payload.ValidatorSet = chainB.Vals
			},
			types.ErrValidation, types.ErrInsufficientVotingPower,
		},
		{
			"header for another chain",
			func() {
				payload.Header = chain().CreateSignedHeader("chain-b", 2, headerTime, chain().Vals, chain().Vals, chain().Signers)
			},
			types.ErrValidation, types.ErrInvalidHeader,
		},
		{
			"trust window elapsed since the last update",
			func() {
				client, _ := suite.keeper.GetClient(suite.ctx, clientID)
				window := client.TrustParameters.TrustWindow()
				suite.ctx = suite.ctx.WithBlockTime(client.ConsensusState.LastUpdate.Add(window + time.Second))
			},
			types.ErrValidation, types.ErrTrustingPeriodExpired,
		},
		{
			"header older than the unbonding period",
			func() {
				suite.ctx = suite.ctx.WithBlockTime(headerTime.Add(lctesting.UnbondingPeriod))
			},
			types.ErrValidation, types.ErrUnbondingPeriodExpired,
		},
		{
			"stored client has no consensus state",
			func() {
				client, _ := suite.keeper.GetClient(suite.ctx, clientID)
				client.ConsensusState = nil
				suite.keeper.SetClient(suite.ctx, client)
			},
			lcerrors.ErrLogic, lcerrors.ErrLogic,
		},
	}

	for _, tc := range testCases {
		tc := tc

		suite.Run(tc.name, func() {
			suite.SetupTest() // reset
			clientID = suite.createClient(testClientID).ClientID

			expType = types.UpdateTypeAdjacent
			header := chain().CreateSignedHeader(chain().ChainID, 2, headerTime, chain().Vals, chain().Vals, chain().Signers)
			payload = lctesting.NewUpdateClientPayload(clientID, header, chain().Vals, nil)

			tc.malleate()

			suite.resetObservers()
			snapshot := suite.storeSnapshot()

			client, err := suite.keeper.UpdateClient(suite.ctx, suite.submitter, payload)

			if tc.expErr == nil {
				suite.Require().NoError(err)

				stored, found := suite.keeper.GetClient(suite.ctx, clientID)
				suite.Require().True(found)
				suite.Require().Equal(payload.Header.Height, stored.LatestHeight())
				suite.Require().Equal(payload.Header.Hash(), stored.ConsensusState.SignedHeader.Hash())
				suite.Require().Equal(payload.ValidatorSet.Hash(), stored.ConsensusState.ValidatorSet.Hash())
				suite.Require().True(suite.ctx.BlockTime().Equal(stored.ConsensusState.LastUpdate))
				suite.Require().Equal(client.LatestHeight(), stored.LatestHeight())
				if payload.NextValidatorSet != nil {
					suite.Require().Equal(payload.NextValidatorSet.Hash(), stored.ConsensusState.NextValidatorSet.Hash())
				}

				info, found := suite.keeper.GetClientInfo(suite.ctx, clientID)
				suite.Require().True(found)
				suite.Require().Equal(payload.Header.Height, info.LatestHeight)

				// updates never touch the listing
				suite.Require().Len(suite.keeper.GetClientIDs(suite.ctx), 1)

				attributes, found := suite.findEvent(types.EventTypeUpdateClient)
				suite.Require().True(found)
				suite.Require().Equal(types.FormatClientID(clientID), attributes[types.AttributeKeyClientID])
				suite.Require().Equal(expType, attributes[types.AttributeKeyUpdateType])
				suite.Require().Equal(suite.submitter.String(), attributes[types.AttributeKeySubmitter])

				suite.Require().Len(suite.hooks.Updated, 1)
				suite.Require().Equal(payload.Header.Height, suite.hooks.Updated[0].Height)
			} else {
				suite.Require().Error(err)
				suite.Require().ErrorIs(err, tc.expErr)
				suite.Require().ErrorIs(err, tc.expReason)

				suite.Require().Equal(snapshot, suite.storeSnapshot())
				suite.Require().Empty(suite.ctx.EventManager().Events())
				suite.Require().Empty(suite.hooks.Updated)
			}
		})
	}
}

// TestUpdateClientSequence follows a client through a skipping update across a
// validator set change and a rejected attempt to roll back.
func (suite *KeeperTestSuite) TestUpdateClientSequence() {
	chain := suite.chainA
	v1 := chain.Vals
	v2 := chain.ValidatorSetFrom(1, 2, 3, 4)

	suite.createClient(testClientID)

	// height 5 is signed by V2, of which three quarters of V1 remain bonded
	header5 := chain.CreateSignedHeader(chain.ChainID, 5, chain.CurrentTime.Add(5*time.Second), v2, v2, chain.Signers)
	client, err := suite.keeper.UpdateClient(suite.ctx, suite.submitter, lctesting.NewUpdateClientPayload(testClientID, header5, v2, nil))
	suite.Require().NoError(err)
	suite.Require().Equal(int64(5), client.LatestHeight())

	stored, _ := suite.keeper.GetClient(suite.ctx, testClientID)
	suite.Require().Equal(v2.Hash(), stored.ConsensusState.ValidatorSet.Hash())
	suite.Require().NotEqual(v1.Hash(), stored.ConsensusState.ValidatorSet.Hash())

	// a correctly signed header at a lower height is rejected
	snapshot := suite.storeSnapshot()
	header3 := chain.CreateSignedHeader(chain.ChainID, 3, chain.CurrentTime.Add(3*time.Second), v2, v2, chain.Signers)
	_, err = suite.keeper.UpdateClient(suite.ctx, suite.submitter, lctesting.NewUpdateClientPayload(testClientID, header3, v2, nil))
	suite.Require().ErrorIs(err, types.ErrValidation)
	suite.Require().ErrorIs(err, types.ErrInvalidHeaderHeight)
	suite.Require().Equal(snapshot, suite.storeSnapshot())

	stored, _ = suite.keeper.GetClient(suite.ctx, testClientID)
	suite.Require().Equal(int64(5), stored.LatestHeight())

	// the same header can not be applied twice
	_, err = suite.keeper.UpdateClient(suite.ctx, suite.submitter, lctesting.NewUpdateClientPayload(testClientID, header5, v2, nil))
	suite.Require().ErrorIs(err, types.ErrInvalidHeaderHeight)

	// V2 continues the chain with an adjacent header
	header6 := chain.CreateSignedHeader(chain.ChainID, 6, chain.CurrentTime.Add(6*time.Second), v2, v2, chain.Signers)
	client, err = suite.keeper.UpdateClient(suite.ctx, suite.submitter, lctesting.NewUpdateClientPayload(testClientID, header6, v2, v2))
	suite.Require().NoError(err)
	suite.Require().Equal(int64(6), client.LatestHeight())
}

func (suite *KeeperTestSuite) TestUpdateClientTrustWindow() {
	chain := suite.chainA

	// trusting period 100s, clock drift 10s, unbonding period 1000s
	cfg := &lctesting.ClientConfig{
		TrustLevel:      types.DefaultTrustLevel,
		TrustingPeriod:  100 * time.Second,
		MaxClockDrift:   10 * time.Second,
		UnbondingPeriod: 1000 * time.Second,
	}

	t0 := chain.CurrentTime
	suite.ctx = suite.ctx.WithBlockTime(t0)
	_, err := suite.keeper.CreateClient(suite.ctx, suite.submitter, lctesting.NewCreateClientPayload(testClientID, chain.CurrentHeader(), chain.Vals, cfg))
	suite.Require().NoError(err)
	_, err = suite.keeper.CreateClient(suite.ctx, suite.submitter, lctesting.NewCreateClientPayload(testClientID2, chain.CurrentHeader(), chain.Vals, cfg))
	suite.Require().NoError(err)

	header := chain.CreateSignedHeader(chain.ChainID, 2, t0.Add(100*time.Second), chain.Vals, chain.Vals, chain.Signers)

	// 111s after the last update the trust window of 110s has elapsed
	suite.ctx = suite.ctx.WithBlockTime(t0.Add(111 * time.Second))
	snapshot := suite.storeSnapshot()
	_, err = suite.keeper.UpdateClient(suite.ctx, suite.submitter, lctesting.NewUpdateClientPayload(testClientID, header, chain.Vals, nil))
	suite.Require().ErrorIs(err, types.ErrValidation)
	suite.Require().ErrorIs(err, types.ErrTrustingPeriodExpired)
	suite.Require().Equal(snapshot, suite.storeSnapshot())

	status, err := suite.keeper.ClientStatus(sdk.WrapSDKContext(suite.ctx), &types.QueryClientStatusRequest{ClientID: testClientID})
	suite.Require().NoError(err)
	suite.Require().Equal(types.Expired, status.Status)

	// within the window the same header is accepted
	suite.ctx = suite.ctx.WithBlockTime(t0.Add(100 * time.Second))
	client, err := suite.keeper.UpdateClient(suite.ctx, suite.submitter, lctesting.NewUpdateClientPayload(testClientID2, header, chain.Vals, nil))
	suite.Require().NoError(err)
	suite.Require().Equal(int64(2), client.LatestHeight())
}

func (suite *KeeperTestSuite) TestUpdateClientTrustWindowFromLastUpdate() {
	chain := suite.chainA

	// trusting period 100s, clock drift 10s, unbonding period 1000s
	cfg := &lctesting.ClientConfig{
		TrustLevel:      types.DefaultTrustLevel,
		TrustingPeriod:  100 * time.Second,
		MaxClockDrift:   10 * time.Second,
		UnbondingPeriod: 1000 * time.Second,
	}

	// the initial header is already 90s old when the client is created
	headerTime := chain.CurrentTime
	t0 := headerTime.Add(90 * time.Second)
	suite.ctx = suite.ctx.WithBlockTime(t0)
	_, err := suite.keeper.CreateClient(suite.ctx, suite.submitter, lctesting.NewCreateClientPayload(testClientID, chain.CurrentHeader(), chain.Vals, cfg))
	suite.Require().NoError(err)

	// 120s after the initial header, but only 30s after the last update
	suite.ctx = suite.ctx.WithBlockTime(t0.Add(30 * time.Second))
	status, err := suite.keeper.ClientStatus(sdk.WrapSDKContext(suite.ctx), &types.QueryClientStatusRequest{ClientID: testClientID})
	suite.Require().NoError(err)
	suite.Require().Equal(types.Active, status.Status)

	header := chain.CreateSignedHeader(chain.ChainID, 2, t0.Add(20*time.Second), chain.Vals, chain.Vals, chain.Signers)
	client, err := suite.keeper.UpdateClient(suite.ctx, suite.submitter, lctesting.NewUpdateClientPayload(testClientID, header, chain.Vals, nil))
	suite.Require().NoError(err)
	suite.Require().Equal(int64(2), client.LatestHeight())
	suite.Require().True(t0.Add(30 * time.Second).Equal(client.ConsensusState.LastUpdate))
}

func (suite *KeeperTestSuite) TestUpdateClientAcrossValidatorSetChange() {
	chain := suite.chainA
	suite.createClient(testClientID)
	suite.createClient(testClientID2)

	// header 2 announces a validator set made only of the fifth key
	nextVals := chain.ValidatorSetFrom(4)
	header2 := chain.CreateSignedHeader(chain.ChainID, 2, chain.CurrentTime.Add(10*time.Second), chain.Vals, nextVals, chain.Signers)
	header5 := chain.CreateSignedHeader(chain.ChainID, 5, chain.CurrentTime.Add(20*time.Second), nextVals, nextVals, chain.Signers)

	// with the next validator set recorded, trust skips to a header signed only by it
	_, err := suite.keeper.UpdateClient(suite.ctx, suite.submitter, lctesting.NewUpdateClientPayload(testClientID, header2, chain.Vals, nextVals))
	suite.Require().NoError(err)
	client, err := suite.keeper.UpdateClient(suite.ctx, suite.submitter, lctesting.NewUpdateClientPayload(testClientID, header5, nextVals, nil))
	suite.Require().NoError(err)
	suite.Require().Equal(int64(5), client.LatestHeight())

	// without it, none of the trusted voting power signed header 5
	_, err = suite.keeper.UpdateClient(suite.ctx, suite.submitter, lctesting.NewUpdateClientPayload(testClientID2, header2, chain.Vals, nil))
	suite.Require().NoError(err)
	_, err = suite.keeper.UpdateClient(suite.ctx, suite.submitter, lctesting.NewUpdateClientPayload(testClientID2, header5, nextVals, nil))
	suite.Require().ErrorIs(err, types.ErrValidation)
	suite.Require().ErrorIs(err, types.ErrInsufficientVotingPower)

	info, found := suite.keeper.GetClientInfo(suite.ctx, testClientID2)
	suite.Require().True(found)
	suite.Require().Equal(int64(2), info.LatestHeight)
}

func (suite *KeeperTestSuite) TestUpdateClientVerifierResult() {
	verifier := &mock.Verifier{}
	k := keeper.NewKeeper(suite.storeKey, verifier)

	payload := suite.createPayload(testClientID)
	_, err := k.CreateClient(suite.ctx, suite.submitter, payload)
	suite.Require().NoError(err)

	chain := suite.chainA
	header := chain.CreateSignedHeader(chain.ChainID, 2, chain.CurrentTime.Add(time.Second), chain.Vals, chain.Vals, chain.Signers)
	update := lctesting.NewUpdateClientPayload(testClientID, header, chain.Vals, nil)

	// a verifier that does not advance the trusted state is an internal error
	verifier.VerifyTransitionFn = func(
		trusted types.ConsensusState, _ *tmtypes.SignedHeader, _, _ *tmtypes.ValidatorSet,
		_ types.Fraction, _, _ time.Duration, _ time.Time,
	) (*types.ConsensusState, error) {
		return &trusted, nil
	}
	snapshot := suite.storeSnapshot()
	_, err = k.UpdateClient(suite.ctx, suite.submitter, update)
	suite.Require().ErrorIs(err, lcerrors.ErrLogic)
	suite.Require().Equal(snapshot, suite.storeSnapshot())

	// verifier rejections are reported as validation failures
	verifier.VerifyTransitionFn = func(
		types.ConsensusState, *tmtypes.SignedHeader, *tmtypes.ValidatorSet, *tmtypes.ValidatorSet,
		types.Fraction, time.Duration, time.Duration, time.Time,
	) (*types.ConsensusState, error) {
		return nil, types.ErrInsufficientVotingPower
	}
	_, err = k.UpdateClient(suite.ctx, suite.submitter, update)
	suite.Require().ErrorIs(err, types.ErrValidation)
	suite.Require().ErrorIs(err, types.ErrInsufficientVotingPower)

	verifier.VerifyTransitionFn = nil
	client, err := k.UpdateClient(suite.ctx, suite.submitter, update)
	suite.Require().NoError(err)
	suite.Require().Equal(int64(2), client.LatestHeight())
}

func (suite *KeeperTestSuite) TestHookErrorsDoNotRevert() {
	suite.hooks.Err = errors.New("observer failed")

	client := suite.createClient(testClientID)
	suite.Require().Len(suite.hooks.Created, 1)

	_, found := suite.keeper.GetClient(suite.ctx, client.ClientID)
	suite.Require().True(found)

	_, found = suite.findEvent(types.EventTypeCreateClient)
	suite.Require().True(found)
}

func (suite *KeeperTestSuite) TestSetHooksTwice() {
	suite.Require().Panics(func() {
		suite.keeper.SetHooks(types.NewMultiClientHooks())
	})
}
