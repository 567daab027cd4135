package verify

import (
	"github.com/ethproof/verifier/mpt"
	"github.com/ethproof/verifier/rlp"
	"github.com/ethproof/verifier/xkeccak"
)

// VerifyStorageProof checks that proof resolves slot's leaf in a storage
// trie, under storageHash, to value. The trie key is keccak256(slot); the
// trie value is value's leading-zero-trimmed bytes wrapped as an RLP
// string (an empty value slot means the storage word is zero).
func VerifyStorageProof(slot [32]byte, value []byte, proof mpt.Proof, storageHash [32]byte) error {
	if len(value) > 32 {
		return rlp.ErrValueTooLarge
	}
	var full [32]byte
	copy(full[32-len(value):], value)

	if len(proof) == 0 {
		return mpt.ErrEmptyProof
	}
	if leafNode := proof[len(proof)-1]; len(leafNode) > mpt.MaxStorageLeafLength {
		return mpt.ErrNodeTooLarge
	}

	key := xkeccak.Bytes(slot[:])

	resolved, err := mpt.ResolveMerkleProof(storageHash, key, proof, mpt.MaxStorageDepth)
	if err != nil {
		return err
	}
	if len(resolved) > mpt.MaxStorageValueLength {
		return rlp.ErrValueTooLarge
	}

	h, _, err := rlp.DecodeHeader(resolved, 0)
	if err != nil {
		return err
	}

	if err := rlp.AssertEqBytes32Trimmed(full, h.Payload(resolved), "Storage Value"); err != nil {
		return ErrStorageValueMismatch
	}
	return nil
}
