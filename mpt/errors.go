package mpt

import "errors"

var (
	// ErrEmptyProof is returned when the proof contains no nodes at all.
	ErrEmptyProof = errors.New("mpt: proof is empty")

	// ErrRootMismatch is returned when the first proof node's hash does not
	// match the claimed root.
	ErrRootMismatch = errors.New("mpt: proof root does not match")

	// ErrNodeHashMismatch is returned when a referenced child's hash does not
	// match the hash of the next proof node.
	ErrNodeHashMismatch = errors.New("mpt: node hash does not match reference")

	// ErrMalformedNode is returned when a proof element does not decode to a
	// 2-item (leaf/extension) or 17-item (branch) RLP list.
	ErrMalformedNode = errors.New("mpt: malformed trie node")

	// ErrKeyMismatch is returned when the path encoded by a leaf or extension
	// node diverges from the key being verified.
	ErrKeyMismatch = errors.New("mpt: key does not match node path")

	// ErrKeyNotFound is returned when the proof conclusively demonstrates the
	// key is absent from the trie (a nil branch slot, or an exhausted path).
	ErrKeyNotFound = errors.New("mpt: key not found in trie")

	// ErrValueMismatch is returned when the proof resolves to a value that
	// differs from the expected value.
	ErrValueMismatch = errors.New("mpt: resolved value does not match expected value")

	// ErrProofTruncated is returned when the path is not fully consumed by
	// the time the proof runs out of nodes, or a node is referenced beyond
	// the end of the proof list.
	ErrProofTruncated = errors.New("mpt: proof truncated before path exhausted")

	// ErrProofTooDeep is returned when the number of nodes walked exceeds the
	// caller-supplied depth bound.
	ErrProofTooDeep = errors.New("mpt: proof exceeds maximum depth")

	// ErrTrailingNodes is returned when the proof contains more nodes than
	// were needed to resolve the key.
	ErrTrailingNodes = errors.New("mpt: proof has unconsumed trailing nodes")

	// ErrNodeTooLarge is returned when a proof node's RLP encoding exceeds
	// MaxNodeLen, or a storage proof's terminal leaf exceeds
	// MaxStorageLeafLength.
	ErrNodeTooLarge = errors.New("mpt: node exceeds maximum size")
)
