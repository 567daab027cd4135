package verify

import (
	"github.com/ethproof/verifier/ethtypes"
	"github.com/ethproof/verifier/mpt"
	"github.com/ethproof/verifier/rlp"
	"github.com/ethproof/verifier/xkeccak"
)

// VerifyAccount checks that proof resolves address's leaf in the state
// trie, under stateRoot, to exactly account's fields. The trie key is
// keccak256(address); the trie value is the canonical RLP encoding of
// [nonce, balance, storageRoot, codeHash].
func VerifyAccount(account ethtypes.Account, address ethtypes.Address, proof mpt.Proof, stateRoot [32]byte) error {
	key := xkeccak.Bytes(address[:])

	leaf, err := mpt.ResolveMerkleProof(stateRoot, key, proof, mpt.MaxDepth)
	if err != nil {
		return err
	}

	got, err := ethtypes.DecodeAccount(leaf)
	if err != nil {
		return err
	}

	if err := rlp.AssertEqUint64(account.Nonce, got.Nonce, "Nonce"); err != nil {
		return ErrNonceMismatch
	}
	if account.Balance.Cmp(got.Balance) != 0 {
		return ErrBalanceMismatch
	}
	if err := rlp.AssertEqBytes32Exact(account.StorageRoot, got.StorageRoot, "Storage Root"); err != nil {
		return ErrStorageRootMismatch
	}
	if err := rlp.AssertEqBytes32Exact(account.CodeHash, got.CodeHash, "Code Hash"); err != nil {
		return ErrCodeHashMismatch
	}
	return nil
}
