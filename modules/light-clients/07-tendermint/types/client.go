package types

import (
	"strings"
	"time"

	tmbytes "github.com/tendermint/tendermint/libs/bytes"
	tmtypes "github.com/tendermint/tendermint/types"
	yaml "gopkg.in/yaml.v2"

	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
)

// Status is the liveness of a client as observed at a given host time.
type Status string

const (
	// Active is a client whose trusted state may anchor updates.
	Active Status = "Active"
	// Expired is a client whose trust window elapsed since its last update.
	Expired Status = "Expired"
	// Unknown is returned for identifiers without a client.
	Unknown Status = "Unknown"
)

// TendermintClient is the full record of a light client: its identity, trust
// parameters and current trusted consensus state.
type TendermintClient struct {
	ClientID        tmbytes.HexBytes `json:"client_id"`
	ChainID         string           `json:"chain_id"`
	TrustParameters TrustParameters  `json:"trust_parameters"`
	// nil only before creation completes
	ConsensusState *ConsensusState `json:"consensus_state"`
}

// NewTendermintClient creates a new TendermintClient instance.
func NewTendermintClient(
	clientID []byte, chainID string, params TrustParameters, consensusState *ConsensusState,
) TendermintClient {
	return TendermintClient{
		ClientID:        clientID,
		ChainID:         chainID,
		TrustParameters: params,
		ConsensusState:  consensusState,
	}
}

// LatestHeight returns the height of the trusted header, or zero when the client
// has no consensus state.
func (c TendermintClient) LatestHeight() int64 {
	if c.ConsensusState == nil {
		return 0
	}
	return c.ConsensusState.Height()
}

// Status returns Expired when the trust window has elapsed since the last update.
func (c TendermintClient) Status(now time.Time) Status {
	if c.ConsensusState == nil || c.ConsensusState.IsExpired(c.TrustParameters.TrustWindow(), now) {
		return Expired
	}
	return Active
}

// Info returns the summary projection of the client.
func (c TendermintClient) Info() ClientInfo {
	info := ClientInfo{
		ChainID:         c.ChainID,
		TrustParameters: c.TrustParameters,
		LatestHeight:    c.LatestHeight(),
	}
	if c.ConsensusState != nil {
		info.LastUpdate = c.ConsensusState.LastUpdate
	}
	return info
}

// Validate checks the record as it must look once stored.
func (c TendermintClient) Validate() error {
	if err := ValidateClientID(c.ClientID); err != nil {
		return err
	}
	if err := ValidateChainID(c.ChainID); err != nil {
		return err
	}
	if err := c.TrustParameters.Validate(); err != nil {
		return err
	}
	if c.ConsensusState == nil {
		return sdkerrors.Wrap(ErrInvalidHeader, "consensus state cannot be nil")
	}
	if err := c.ConsensusState.ValidateBasic(); err != nil {
		return err
	}
	if c.ConsensusState.SignedHeader.ChainID != c.ChainID {
		return sdkerrors.Wrapf(
			ErrInvalidChainID, "trusted header chain-id %s does not match client chain-id %s",
			c.ConsensusState.SignedHeader.ChainID, c.ChainID,
		)
	}
	return nil
}

// ClientInfo is a small read projection of a TendermintClient kept beside the full
// record so it can be inspected without decoding the consensus state.
type ClientInfo struct {
	ChainID         string          `json:"chain_id" yaml:"chain_id"`
	TrustParameters TrustParameters `json:"trust_parameters" yaml:"trust_parameters"`
	LatestHeight    int64           `json:"latest_height" yaml:"latest_height"`
	LastUpdate      time.Time       `json:"last_update" yaml:"last_update"`
}

func (ci ClientInfo) String() string {
	out, _ := yaml.Marshal(ci)
	return string(out)
}

// ValidateClientID checks the length bounds of a client identifier.
func ValidateClientID(clientID []byte) error {
	if len(clientID) == 0 {
		return sdkerrors.Wrap(ErrDeserialize, "client id cannot be empty")
	}
	if len(clientID) > MaxClientIDLength {
		return sdkerrors.Wrapf(ErrDeserialize, "client id is too long; got: %d, max: %d", len(clientID), MaxClientIDLength)
	}
	return nil
}

// ValidateChainID checks that a foreign chain-id is usable.
func ValidateChainID(chainID string) error {
	if strings.TrimSpace(chainID) == "" {
		return sdkerrors.Wrap(ErrInvalidChainID, "chain id cannot be empty string")
	}
	if len(chainID) > tmtypes.MaxChainIDLen {
		return sdkerrors.Wrapf(ErrInvalidChainID, "chainID is too long; got: %d, max: %d", len(chainID), tmtypes.MaxChainIDLen)
	}
	return nil
}
