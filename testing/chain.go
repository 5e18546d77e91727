package lctesting

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/tendermint/tendermint/crypto/tmhash"
	tmproto "github.com/tendermint/tendermint/proto/tendermint/types"
	tmprotoversion "github.com/tendermint/tendermint/proto/tendermint/version"
	tmtypes "github.com/tendermint/tendermint/types"
	tmversion "github.com/tendermint/tendermint/version"
)

// TestChain is a simulated foreign tendermint chain. It holds a pool of validator
// keys and produces signed headers for any subset of them; it does not execute
// blocks.
type TestChain struct {
	TB      testing.TB
	ChainID string

	// Signers is the pool of validator keys, in generation order.
	Signers []tmtypes.PrivValidator
	// Vals is the current validator set, built from a prefix of Signers.
	Vals *tmtypes.ValidatorSet

	CurrentHeight int64
	CurrentTime   time.Time
}

// NewTestChain creates a chain with numKeys validator keys, the first numVals of
// which form the current validator set.
func NewTestChain(tb testing.TB, chainID string, numKeys, numVals int) *TestChain {
	tb.Helper()
	require.LessOrEqual(tb, numVals, numKeys)

	signers := GenerateSigners(numKeys)
	return &TestChain{
		TB:            tb,
		ChainID:       chainID,
		Signers:       signers,
		Vals:          NewValidatorSet(tb, signers[:numVals]),
		CurrentHeight: 1,
		CurrentTime:   DefaultGenesisTime,
	}
}

// GenerateSigners generates n mock private validators.
func GenerateSigners(n int) []tmtypes.PrivValidator {
	signers := make([]tmtypes.PrivValidator, n)
	for i := range signers {
		signers[i] = tmtypes.NewMockPV()
	}
	return signers
}

// NewValidatorSet builds a validator set in which every signer has DefaultValidatorPower.
func NewValidatorSet(tb testing.TB, signers []tmtypes.PrivValidator) *tmtypes.ValidatorSet {
	tb.Helper()

	vals := make([]*tmtypes.Validator, len(signers))
	for i, signer := range signers {
		pubKey, err := signer.GetPubKey()
		require.NoError(tb, err)
		vals[i] = tmtypes.NewValidator(pubKey, DefaultValidatorPower)
	}
	return tmtypes.NewValidatorSet(vals)
}

// ValidatorSetFrom builds a validator set from the signers at the given indices
// of the chain's key pool.
func (chain *TestChain) ValidatorSetFrom(indices ...int) *tmtypes.ValidatorSet {
	signers := make([]tmtypes.PrivValidator, len(indices))
	for i, idx := range indices {
		signers[i] = chain.Signers[idx]
	}
	return NewValidatorSet(chain.TB, signers)
}

// CurrentHeader returns a header at the current height and time, signed by the
// whole current validator set.
func (chain *TestChain) CurrentHeader() *tmtypes.SignedHeader {
	return chain.CreateSignedHeader(chain.ChainID, chain.CurrentHeight, chain.CurrentTime, chain.Vals, chain.Vals, chain.Signers)
}

// NextBlock advances the simulated chain by one height and the given time.
func (chain *TestChain) NextBlock(d time.Duration) {
	chain.CurrentHeight++
	chain.CurrentTime = chain.CurrentTime.Add(d)
}

// CreateSignedHeader creates a header committed by valSet. Only the members of
// valSet found in signers sign the commit; the rest are recorded as absent.
func (chain *TestChain) CreateSignedHeader(
	chainID string, height int64, timestamp time.Time,
	valSet, nextValSet *tmtypes.ValidatorSet, signers []tmtypes.PrivValidator,
) *tmtypes.SignedHeader {
	require.NotNil(chain.TB, valSet)
	if nextValSet == nil {
		nextValSet = valSet
	}

	header := tmtypes.Header{
		Version:            tmprotoversion.Consensus{Block: tmversion.BlockProtocol, App: 2},
		ChainID:            chainID,
		Height:             height,
		Time:               timestamp.UTC(),
		LastBlockID:        MakeBlockID(make([]byte, tmhash.Size), 10_000, make([]byte, tmhash.Size)),
		LastCommitHash:     tmhash.Sum([]byte("last_commit_hash")),
		DataHash:           tmhash.Sum([]byte("data_hash")),
		ValidatorsHash:     valSet.Hash(),
		NextValidatorsHash: nextValSet.Hash(),
		ConsensusHash:      tmhash.Sum([]byte("consensus_hash")),
		AppHash:            tmhash.Sum([]byte("app_hash")),
		LastResultsHash:    tmhash.Sum([]byte("last_results_hash")),
		EvidenceHash:       tmhash.Sum([]byte("evidence_hash")),
		ProposerAddress:    valSet.Proposer.Address,
	}

	blockID := MakeBlockID(header.Hash(), 3, tmhash.Sum([]byte("part_set")))
	commit := chain.makeCommit(chainID, blockID, height, timestamp.UTC(), valSet, signers)

	return &tmtypes.SignedHeader{
		Header: &header,
		Commit: commit,
	}
}

// makeCommit signs a precommit for blockID with every validator of valSet that has
// a key in signers. The commit signatures follow the validator set order.
func (chain *TestChain) makeCommit(
	chainID string, blockID tmtypes.BlockID, height int64, timestamp time.Time,
	valSet *tmtypes.ValidatorSet, signers []tmtypes.PrivValidator,
) *tmtypes.Commit {
	byAddress := make(map[string]tmtypes.PrivValidator, len(signers))
	for _, signer := range signers {
		pubKey, err := signer.GetPubKey()
		require.NoError(chain.TB, err)
		byAddress[string(pubKey.Address())] = signer
	}

	sigs := make([]tmtypes.CommitSig, len(valSet.Validators))
	for i, val := range valSet.Validators {
		signer, ok := byAddress[string(val.Address)]
		if !ok {
			sigs[i] = tmtypes.NewCommitSigAbsent()
			continue
		}

		vote := &tmtypes.Vote{
			Type:             tmproto.PrecommitType,
			Height:           height,
			Round:            1,
			BlockID:          blockID,
			Timestamp:        timestamp,
			ValidatorAddress: val.Address,
			ValidatorIndex:   int32(i),
		}
		pbVote := vote.ToProto()
		require.NoError(chain.TB, signer.SignVote(chainID, pbVote))
		vote.Signature = pbVote.Signature

		sigs[i] = vote.CommitSig()
	}

	return tmtypes.NewCommit(height, 1, blockID, sigs)
}

// MakeBlockID copied unimported test functions from tmtypes to use them here
func MakeBlockID(hash []byte, partSetSize uint32, partSetHash []byte) tmtypes.BlockID {
	return tmtypes.BlockID{
		Hash: hash,
		PartSetHeader: tmtypes.PartSetHeader{
			Total: partSetSize,
			Hash:  partSetHash,
		},
	}
}
