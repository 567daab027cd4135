// Package gethbridge is the only package in this module that imports
// go-ethereum directly (uint256 is also imported by ethtypes and
// fixtureset). It decodes the JSON-RPC responses a real node returns for
// eth_getProof, eth_getBlockByHash, and eth_getTransactionReceipt,
// converting go-ethereum's wire types into the ethtypes/mpt values the
// core verifiers consume. Every other package in this module works
// exclusively with those converted values and never touches a JSON-RPC
// response or a go-ethereum type.
package gethbridge

import (
	gethcommon "github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"

	"github.com/ethproof/verifier/ethtypes"
	"github.com/ethproof/verifier/mpt"
)

func toHash(h gethcommon.Hash) ethtypes.Hash {
	return ethtypes.Hash(h)
}

func toAddress(a gethcommon.Address) ethtypes.Address {
	return ethtypes.Address(a)
}

// hexProof decodes an eth_getProof-style proof array (each entry a
// "0x"-prefixed RLP node) into an mpt.Proof.
func hexProof(items []string) (mpt.Proof, error) {
	out := make(mpt.Proof, len(items))
	for i, s := range items {
		b, err := hexutil.Decode(s)
		if err != nil {
			return nil, err
		}
		out[i] = b
	}
	return out, nil
}
