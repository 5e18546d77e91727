package validate

import (
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/tmbridge/lightclient/modules/light-clients/07-tendermint/types"
)

// GRPCRequest validates that the client identifier of a gRPC Request is well formed.
func GRPCRequest(clientID []byte) error {
	if err := types.ValidateClientID(clientID); err != nil {
		return status.Error(codes.InvalidArgument, err.Error())
	}

	return nil
}
