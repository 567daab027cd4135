package verify

import (
	"bytes"

	"github.com/ethproof/verifier/ethtypes"
	"github.com/ethproof/verifier/forkparams"
	"github.com/ethproof/verifier/mpt"
	"github.com/ethproof/verifier/rlp"
)

// VerifyReceiptProof checks that proof resolves the receipt at index in a
// receipt trie, under receiptRoot, to a leaf whose consensus fields match
// receipt. The trie key is the RLP encoding of index, matching
// VerifyTransactionProof's key derivation. blockNumber selects whether the
// leaf's first field is a pre-Byzantium state root or a post-Byzantium
// status byte, per forkparams.Mainnet.
func VerifyReceiptProof(blockNumber uint64, index uint64, txType uint8, receipt ethtypes.ReceiptPartial, proof mpt.Proof, receiptRoot [32]byte) error {
	key, err := rlp.EncodeToBytes(index)
	if err != nil {
		return err
	}

	leaf, err := mpt.ResolveMerkleProof(receiptRoot, key, proof, mpt.MaxDepth)
	if err != nil {
		return err
	}

	got, err := ethtypes.DecodeReceiptPartial(leaf)
	if err != nil {
		return err
	}

	if got.Type != txType {
		return ErrTxTypeMismatch
	}

	postByzantium := forkparams.Mainnet.IsByzantiumOrLater(blockNumber)
	if postByzantium {
		if !receipt.HasStatus {
			return ErrStatusMissing
		}
		if !got.HasStatus {
			return ErrStatusMissing
		}
		if receipt.Status != got.Status {
			return ErrStatusMismatch
		}
	} else {
		if receipt.HasStatus || len(receipt.PostState) == 0 {
			return ErrStateRootMissing
		}
		if got.HasStatus || len(got.PostState) == 0 {
			return ErrStateRootMissing
		}
		if !bytes.Equal(receipt.PostState, got.PostState) {
			return ErrReceiptPostStateMismatch
		}
	}

	if err := rlp.AssertEqUint64(receipt.CumulativeGasUsed, got.CumulativeGasUsed, "Cumulative Gas Used"); err != nil {
		return ErrCumulativeGasMismatch
	}
	if receipt.Bloom != got.Bloom {
		return ErrBloomMismatch
	}
	return nil
}

// ExtractLog decodes receiptRLP (the raw receipt-trie leaf bytes, such as
// those mpt.ResolveMerkleProof returns) and returns the log at logIndex.
// VerifyReceiptProof returns only an error and does not hand back the
// leaf bytes or its decoded list.
func ExtractLog(receiptRLP []byte, logIndex int) (ethtypes.Log, error) {
	r, err := ethtypes.DecodeReceiptPartial(receiptRLP)
	if err != nil {
		return ethtypes.Log{}, err
	}
	if logIndex < 0 || logIndex >= len(r.Logs) {
		return ethtypes.Log{}, ErrLogIndexOutOfRange
	}
	return r.Logs[logIndex], nil
}
