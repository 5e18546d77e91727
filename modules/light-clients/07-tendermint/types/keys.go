package types

import "fmt"

const (
	// ModuleName defines the tendermint light client module name
	ModuleName = "tmclient"

	// StoreKey is the store key string for the tendermint light client module
	StoreKey = ModuleName

	// MaxClientIDLength is the maximum length in bytes of a client identifier
	MaxClientIDLength = 128
)

// telemetry label keys
const (
	LabelClientID   = "client_id"
	LabelChainID    = "chain_id"
	LabelUpdateType = "update_type"
)

const (
	// UpdateTypeAdjacent labels an update whose header directly follows the trusted header.
	UpdateTypeAdjacent = "adjacent"
	// UpdateTypeSkipping labels an update that skips one or more heights.
	UpdateTypeSkipping = "skipping"
)

var (
	// KeyClientPrefix is the prefix under which full client records are stored.
	KeyClientPrefix = []byte("clients/")

	// KeyClientInfoPrefix is the prefix under which client info projections are stored.
	KeyClientInfoPrefix = []byte("clientInfo/")

	// KeyClientList is the key of the ordered listing of every client identifier.
	KeyClientList = []byte("clientList")
)

// ClientKey returns the store key of the full client record.
func ClientKey(clientID []byte) []byte {
	return append(append([]byte{}, KeyClientPrefix...), clientID...)
}

// ClientInfoKey returns the store key of the client info projection.
func ClientInfoKey(clientID []byte) []byte {
	return append(append([]byte{}, KeyClientInfoPrefix...), clientID...)
}

// FormatClientID returns the identifier as it is rendered in events and logs.
func FormatClientID(clientID []byte) string {
	return fmt.Sprintf("%X", clientID)
}
