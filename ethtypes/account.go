package ethtypes

import (
	"github.com/holiman/uint256"

	"github.com/ethproof/verifier/rlp"
)

// Account is the RLP-encoded value stored at an address's leaf in the
// state trie: a 4-item list of [nonce, balance, storageRoot, codeHash].
type Account struct {
	Nonce       uint64
	Balance     *uint256.Int
	StorageRoot Hash
	CodeHash    Hash
}

// DecodeAccount decodes the RLP-encoded account leaf value produced by
// eth_getProof's accountProof.
func DecodeAccount(enc []byte) (Account, error) {
	_, children, err := rlp.DecodeList(enc, 0, 4)
	if err != nil {
		return Account{}, err
	}
	if len(children) != 4 {
		return Account{}, rlp.ErrExpectedList
	}

	get := func(i int) []byte { return children[i].Payload(enc) }

	nonce, err := decodeUint64(get(0))
	if err != nil {
		return Account{}, err
	}

	balanceBytes := get(1)
	if len(balanceBytes) > 32 {
		return Account{}, rlp.ErrValueTooLarge
	}

	return Account{
		Nonce:       nonce,
		Balance:     new(uint256.Int).SetBytes(balanceBytes),
		StorageRoot: BytesToHash(get(2)),
		CodeHash:    BytesToHash(get(3)),
	}, nil
}

// EncodeAccount produces the canonical RLP encoding of an account leaf,
// used by tests to build fixtures without a full trie implementation.
func EncodeAccount(acc Account) []byte {
	nonce, _ := rlp.EncodeToBytes(acc.Nonce)
	balance := encodeUint256(acc.Balance)
	root, _ := rlp.EncodeToBytes(acc.StorageRoot[:])
	code, _ := rlp.EncodeToBytes(acc.CodeHash[:])
	return rlp.WrapList(concat(nonce, balance, root, code))
}

func encodeUint256(v *uint256.Int) []byte {
	if v == nil || v.IsZero() {
		enc, _ := rlp.EncodeToBytes([]byte(nil))
		return enc
	}
	b := v.Bytes()
	enc, _ := rlp.EncodeToBytes(b)
	return enc
}

func concat(parts ...[]byte) []byte {
	var out []byte
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}
