package verify

import (
	"bytes"

	"github.com/ethproof/verifier/ethtypes"
	"github.com/ethproof/verifier/mpt"
	"github.com/ethproof/verifier/rlp"
)

// VerifyTransactionProof checks that proof resolves the transaction at
// index in a transaction trie, under txRoot, to a leaf of type txType whose
// nonce, gas limit, recipient, value and data match tx. tx's ChainID and
// fee fields are not compared, and signature values are not decoded. The
// trie key is the RLP encoding of index; the leaf is the bare RLP list for
// a legacy transaction, or the type byte followed by the RLP list for a
// typed transaction.
func VerifyTransactionProof(index uint64, txType uint8, tx ethtypes.TransactionPartial, proof mpt.Proof, txRoot [32]byte) error {
	key, err := rlp.EncodeToBytes(index)
	if err != nil {
		return err
	}

	leaf, err := mpt.ResolveMerkleProof(txRoot, key, proof, mpt.MaxDepth)
	if err != nil {
		return err
	}

	got, err := ethtypes.DecodeTransactionPartial(leaf)
	if err != nil {
		return err
	}

	if got.Type != txType {
		return ErrTxTypeMismatch
	}

	if err := rlp.AssertEqUint64(tx.Nonce, got.Nonce, "Nonce"); err != nil {
		return ErrTxFieldMismatch
	}
	if err := rlp.AssertEqUint64(tx.Gas, got.Gas, "Gas"); err != nil {
		return ErrTxFieldMismatch
	}
	if !addrEqual(tx.To, got.To) {
		return ErrTxFieldMismatch
	}
	if !bytes.Equal(tx.Value, got.Value) {
		return ErrTxFieldMismatch
	}
	if !bytes.Equal(tx.Data, got.Data) {
		return ErrTxFieldMismatch
	}
	return nil
}

func addrEqual(a, b *ethtypes.Address) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
