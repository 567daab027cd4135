// Package mpt verifies Ethereum Merkle Patricia Trie inclusion proofs
// against a known root hash. It never builds or mutates a trie; it only
// walks a caller-supplied proof (an ordered list of RLP-encoded nodes)
// and checks that it resolves a given key to a given value.
package mpt

import (
	"bytes"

	"github.com/ethproof/verifier/rlp"
	"github.com/ethproof/verifier/xkeccak"
)

// Proof is an ordered list of RLP-encoded trie nodes, root first, as
// returned by eth_getProof's accountProof/storageProof fields or derived
// from a transaction/receipt trie.
type Proof [][]byte

// VerifyMerkleProof checks that proof resolves key to value under root.
// maxDepth bounds both the number of hash-referenced nodes the proof may
// contain and the total number of nodes (hash-referenced or inline) the
// walk may descend through, matching the fixed-capacity contract the
// caller's trie (account, storage, transaction, or receipt) is expected to
// respect.
func VerifyMerkleProof(root [32]byte, key, value []byte, proof Proof, maxDepth int) error {
	resolved, err := ResolveMerkleProof(root, key, proof, maxDepth)
	if err != nil {
		return err
	}
	if !bytes.Equal(resolved, value) {
		return ErrValueMismatch
	}
	return nil
}

// ResolveMerkleProof walks proof from root and returns the raw value bytes
// it resolves key to, without comparing against a caller-supplied expected
// value. Domain verifiers that need field-by-field diagnostics (rather
// than a single opaque value mismatch) decode the returned bytes
// themselves and compare fields individually.
func ResolveMerkleProof(root [32]byte, key []byte, proof Proof, maxDepth int) ([]byte, error) {
	if len(proof) == 0 {
		return nil, ErrEmptyProof
	}
	if len(proof) > maxDepth {
		return nil, ErrProofTooDeep
	}

	hexKey := keybytesToHex(key)
	pos := 0
	current := proof[0]
	idx := 0

	if got := xkeccak.Sum256(current); got != root {
		return nil, ErrRootMismatch
	}

	for steps := 0; ; steps++ {
		if steps >= maxDepth {
			return nil, ErrProofTooDeep
		}
		if len(current) > MaxNodeLen {
			return nil, ErrNodeTooLarge
		}

		_, children, err := rlp.DecodeList(current, 0, 17)
		if err != nil {
			return nil, ErrMalformedNode
		}

		switch len(children) {
		case 2:
			path, err := compactToHex(children[0].Payload(current))
			if err != nil {
				return nil, err
			}
			leaf := hasTerm(path)
			cmpPath := path
			if leaf {
				cmpPath = path[:len(path)-1]
			}
			if pos+len(cmpPath) > len(hexKey) {
				return nil, ErrKeyMismatch
			}
			if !keysEqual(cmpPath, hexKey[pos:pos+len(cmpPath)]) {
				return nil, ErrKeyMismatch
			}
			pos += len(cmpPath)

			if leaf {
				if pos != len(hexKey)-1 {
					return nil, ErrKeyMismatch
				}
				if idx != len(proof)-1 {
					return nil, ErrTrailingNodes
				}
				return append([]byte{}, children[1].Payload(current)...), nil
			}

			next, nextIdx, err := resolveChild(children[1], current, proof, idx)
			if err != nil {
				return nil, err
			}
			current, idx = next, nextIdx

		case 17:
			if pos >= len(hexKey) {
				return nil, ErrMalformedNode
			}
			n := hexKey[pos]
			pos++

			if n == terminator {
				val := children[16].Payload(current)
				if len(val) == 0 {
					return nil, ErrKeyNotFound
				}
				if idx != len(proof)-1 {
					return nil, ErrTrailingNodes
				}
				return append([]byte{}, val...), nil
			}

			if children[n].Kind == rlp.String && children[n].Length == 0 {
				return nil, ErrKeyNotFound
			}
			next, nextIdx, err := resolveChild(children[n], current, proof, idx)
			if err != nil {
				return nil, err
			}
			current, idx = next, nextIdx

		default:
			return nil, ErrMalformedNode
		}
	}
}

// resolveChild follows a child reference from a branch or extension node.
// A child stored as a 32-byte string is a hash reference: the next entry
// in the proof list must be the node whose keccak256 equals that hash. A
// child stored as a list is inline: its own encoding (tag byte included)
// is the complete child node, embedded in the parent rather than
// referenced by hash, so no proof entry is consumed and no hash check
// applies.
func resolveChild(ref rlp.Header, current []byte, proof Proof, idx int) (next []byte, nextIdx int, err error) {
	if ref.Kind == rlp.String && ref.Length == 32 {
		if idx+1 >= len(proof) {
			return nil, 0, ErrProofTruncated
		}
		candidate := proof[idx+1]
		got := xkeccak.Sum256(candidate)
		if !bytes.Equal(got[:], ref.Payload(current)) {
			return nil, 0, ErrNodeHashMismatch
		}
		return candidate, idx + 1, nil
	}
	if ref.Kind != rlp.List {
		return nil, 0, ErrMalformedNode
	}
	return ref.Raw(current), idx, nil
}
