package types

import (
	"context"

	tmbytes "github.com/tendermint/tendermint/libs/bytes"
)

// QueryServer is the query surface of the tendermint light client module.
type QueryServer interface {
	Client(context.Context, *QueryClientRequest) (*QueryClientResponse, error)
	ClientInfo(context.Context, *QueryClientInfoRequest) (*QueryClientInfoResponse, error)
	Clients(context.Context, *QueryClientsRequest) (*QueryClientsResponse, error)
	ClientStatus(context.Context, *QueryClientStatusRequest) (*QueryClientStatusResponse, error)
}

// QueryClientRequest is the request type for the Query/Client method.
type QueryClientRequest struct {
	ClientID tmbytes.HexBytes `json:"client_id"`
}

// QueryClientResponse is the response type for the Query/Client method.
type QueryClientResponse struct {
	Client TendermintClient `json:"client"`
}

// QueryClientInfoRequest is the request type for the Query/ClientInfo method.
type QueryClientInfoRequest struct {
	ClientID tmbytes.HexBytes `json:"client_id"`
}

// QueryClientInfoResponse is the response type for the Query/ClientInfo method.
type QueryClientInfoResponse struct {
	Info ClientInfo `json:"info"`
}

// QueryClientsRequest is the request type for the Query/Clients method.
type QueryClientsRequest struct{}

// QueryClientsResponse is the response type for the Query/Clients method. Client
// identifiers are listed in creation order.
type QueryClientsResponse struct {
	ClientIDs []tmbytes.HexBytes `json:"client_ids"`
}

// QueryClientStatusRequest is the request type for the Query/ClientStatus method.
type QueryClientStatusRequest struct {
	ClientID tmbytes.HexBytes `json:"client_id"`
}

// QueryClientStatusResponse is the response type for the Query/ClientStatus method.
type QueryClientStatusResponse struct {
	Status Status `json:"status"`
}
