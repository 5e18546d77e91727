package lctesting

import (
	"time"

	"github.com/tmbridge/lightclient/modules/light-clients/07-tendermint/types"
)

const (
	// DefaultChainID is the chain-id of the simulated foreign chain.
	DefaultChainID = "chain-a"

	// DefaultValidatorPower is the voting power given to every generated validator.
	DefaultValidatorPower int64 = 10
)

var (
	// DefaultGenesisTime is the block time at which simulated chains start.
	DefaultGenesisTime = time.Date(2022, 1, 1, 0, 0, 0, 0, time.UTC)

	DefaultTrustLevel = types.DefaultTrustLevel
	TrustingPeriod    = 14 * 24 * time.Hour
	UnbondingPeriod   = 21 * 24 * time.Hour
	MaxClockDrift     = 10 * time.Second
)

// ClientConfig holds the trust parameters used when a test creates a client.
type ClientConfig struct {
	TrustLevel      types.Fraction
	TrustingPeriod  time.Duration
	UnbondingPeriod time.Duration
	MaxClockDrift   time.Duration
}

// NewClientConfig returns the default test client configuration.
func NewClientConfig() *ClientConfig {
	return &ClientConfig{
		TrustLevel:      DefaultTrustLevel,
		TrustingPeriod:  TrustingPeriod,
		UnbondingPeriod: UnbondingPeriod,
		MaxClockDrift:   MaxClockDrift,
	}
}

// TrustParameters converts the configuration to client trust parameters.
func (cfg ClientConfig) TrustParameters() types.TrustParameters {
	return types.NewTrustParameters(cfg.TrustingPeriod, cfg.MaxClockDrift, cfg.UnbondingPeriod, cfg.TrustLevel)
}
