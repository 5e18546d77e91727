package types

import (
	tmjson "github.com/tendermint/tendermint/libs/json"

	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
)

// Records and payloads are encoded with the tendermint JSON codec, which knows how
// to encode the public keys inside validator sets.

// MarshalClient encodes a client record for storage.
func MarshalClient(client TendermintClient) ([]byte, error) {
	return tmjson.Marshal(client)
}

// MustMarshalClient encodes a client record and panics on failure.
func MustMarshalClient(client TendermintClient) []byte {
	bz, err := MarshalClient(client)
	if err != nil {
		panic(err)
	}
	return bz
}

// UnmarshalClient decodes a stored client record.
func UnmarshalClient(bz []byte) (TendermintClient, error) {
	var client TendermintClient
	if err := tmjson.Unmarshal(bz, &client); err != nil {
		return TendermintClient{}, err
	}
	return client, nil
}

// MustMarshalClientInfo encodes a client info projection and panics on failure.
func MustMarshalClientInfo(info ClientInfo) []byte {
	bz, err := tmjson.Marshal(info)
	if err != nil {
		panic(err)
	}
	return bz
}

// UnmarshalClientInfo decodes a stored client info projection.
func UnmarshalClientInfo(bz []byte) (ClientInfo, error) {
	var info ClientInfo
	if err := tmjson.Unmarshal(bz, &info); err != nil {
		return ClientInfo{}, err
	}
	return info, nil
}

// DecodeCreateClientPayload decodes and checks the well-formedness of a create payload.
func DecodeCreateClientPayload(bz []byte) (CreateClientPayload, error) {
	var payload CreateClientPayload
	if err := tmjson.Unmarshal(bz, &payload); err != nil {
		return CreateClientPayload{}, sdkerrors.Wrap(ErrDeserialize, err.Error())
	}
	if err := payload.ValidateBasic(); err != nil {
		return CreateClientPayload{}, err
	}
	return payload, nil
}

// DecodeUpdateClientPayload decodes and checks the well-formedness of an update payload.
func DecodeUpdateClientPayload(bz []byte) (UpdateClientPayload, error) {
	var payload UpdateClientPayload
	if err := tmjson.Unmarshal(bz, &payload); err != nil {
		return UpdateClientPayload{}, sdkerrors.Wrap(ErrDeserialize, err.Error())
	}
	if err := payload.ValidateBasic(); err != nil {
		return UpdateClientPayload{}, err
	}
	return payload, nil
}
