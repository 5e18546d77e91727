package lctesting

import (
	"testing"

	"github.com/stretchr/testify/require"
	tmjson "github.com/tendermint/tendermint/libs/json"
	tmtypes "github.com/tendermint/tendermint/types"

	"github.com/tmbridge/lightclient/modules/light-clients/07-tendermint/types"
)

// NewCreateClientPayload returns a create payload for header with the trust
// parameters of cfg expressed in whole seconds.
func NewCreateClientPayload(
	clientID []byte, header *tmtypes.SignedHeader, valSet *tmtypes.ValidatorSet, cfg *ClientConfig,
) types.CreateClientPayload {
	trustLevel := cfg.TrustLevel
	return types.CreateClientPayload{
		ClientID:        clientID,
		ChainID:         header.ChainID,
		Header:          header,
		ValidatorSet:    valSet,
		TrustingPeriod:  uint64(cfg.TrustingPeriod.Seconds()),
		MaxClockDrift:   uint64(cfg.MaxClockDrift.Seconds()),
		UnbondingPeriod: uint64(cfg.UnbondingPeriod.Seconds()),
		TrustLevel:      &trustLevel,
	}
}

// NewUpdateClientPayload returns an update payload for header.
func NewUpdateClientPayload(
	clientID []byte, header *tmtypes.SignedHeader, valSet, nextValSet *tmtypes.ValidatorSet,
) types.UpdateClientPayload {
	return types.UpdateClientPayload{
		ClientID:         clientID,
		Header:           header,
		ValidatorSet:     valSet,
		NextValidatorSet: nextValSet,
	}
}

// MustMarshalPayload encodes a payload the way submitters do.
func MustMarshalPayload(tb testing.TB, payload interface{}) []byte {
	tb.Helper()

	bz, err := tmjson.Marshal(payload)
	require.NoError(tb, err)
	return bz
}
