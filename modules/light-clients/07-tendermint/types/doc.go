/*
Package types implements the data model of the Tendermint light client: the
trust parameters and trusted consensus state of a client, the derived client
info projection, the create and update payloads submitted by relayers and the
TrustVerifier capability used to authenticate foreign headers.

A client is created once from an initial signed header and validator set and
then advanced by updates. Each update is accepted only if the candidate header
is signed by at least the trust level of voting power of the currently trusted
validator set, is newer than the trusted header and arrives within the trust
window of the last update.
*/
package types
