package types

// tendermint light client events
const (
	EventTypeCreateClient = "create_client"
	EventTypeUpdateClient = "update_client"

	AttributeKeySubmitter  = "submitter"
	AttributeKeyClientID   = "client_id"
	AttributeKeyChainID    = "chain_id"
	AttributeKeyHeight     = "height"
	AttributeKeyUpdateType = "update_type"

	AttributeValueCategory = ModuleName
)
