package types_test

import (
	"github.com/tmbridge/lightclient/modules/light-clients/07-tendermint/types"
)

func (suite *TendermintTestSuite) TestValidateGenesis() {
	var gs types.GenesisState

	testCases := []struct {
		name     string
		malleate func()
		expPass  bool
	}{
		{
			"default genesis",
			func() {
				gs = types.DefaultGenesisState()
			},
			true,
		},
		{
			"valid genesis with two clients",
			func() {},
			true,
		},
		{
			"duplicate client id",
			func() {
				gs.Clients[1].ClientID = gs.Clients[0].ClientID
			},
			false,
		},
		{
			"client without consensus state",
			func() {
				gs.Clients[1].ConsensusState = nil
			},
			false,
		},
		{
			"client with invalid trust parameters",
			func() {
				gs.Clients[0].TrustParameters.TrustLevel = types.Fraction{Numerator: 1, Denominator: 10}
			},
			false,
		},
	}

	for _, tc := range testCases {
		tc := tc

		suite.Run(tc.name, func() {
			first, second := suite.trusted, suite.trusted
			gs = types.NewGenesisState([]types.TendermintClient{
				types.NewTendermintClient([]byte("client-0"), chainID, suite.params, &first),
				types.NewTendermintClient([]byte("client-1"), chainID, suite.params, &second),
			})

			tc.malleate()

			err := gs.Validate()

			if tc.expPass {
				suite.Require().NoError(err)
			} else {
				suite.Require().Error(err)
				suite.Require().ErrorIs(err, types.ErrInvalidGenesis)
			}
		})
	}
}
