package types

import (
	"fmt"

	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
)

// GenesisState defines the tendermint light client genesis state: every client in
// creation order.
type GenesisState struct {
	Clients []TendermintClient `json:"clients"`
}

// NewGenesisState creates a GenesisState instance.
func NewGenesisState(clients []TendermintClient) GenesisState {
	return GenesisState{
		Clients: clients,
	}
}

// DefaultGenesisState returns the default genesis state, with no clients.
func DefaultGenesisState() GenesisState {
	return GenesisState{
		Clients: []TendermintClient{},
	}
}

// Validate performs basic genesis state validation returning an error upon any
// failure.
func (gs GenesisState) Validate() error {
	seen := make(map[string]bool, len(gs.Clients))
	for i, client := range gs.Clients {
		if err := client.Validate(); err != nil {
			return sdkerrors.Wrapf(ErrInvalidGenesis, "invalid client %d: %v", i, err)
		}
		id := string(client.ClientID)
		if seen[id] {
			return sdkerrors.Wrap(ErrInvalidGenesis, fmt.Sprintf("duplicate client id %s", client.ClientID))
		}
		seen[id] = true
	}
	return nil
}
