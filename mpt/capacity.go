package mpt

// Capacity ceilings for proof walks. These bound the input sizes the
// fixed-capacity design this module descends from expects to reject rather
// than silently accept. ResolveMerkleProof enforces MaxNodeLen itself; the
// depth bounds are passed in by the domain verifiers, and the verify
// package checks the two storage length bounds.
const (
	// MaxDepth is the walk-depth bound for the account, transaction, and
	// receipt tries, whose keys are 32-byte hashes or short RLP-encoded
	// indices: at most 64 nibbles of branching plus a leaf.
	MaxDepth = 65

	// MaxStorageDepth bounds a storage-slot proof, which in practice never
	// approaches the generic 64-nibble ceiling.
	MaxStorageDepth = 6

	// MaxStorageValueLength bounds a storage slot's RLP-encoded value: a
	// 32-byte word trimmed of leading zeros, wrapped as an RLP string.
	MaxStorageValueLength = 33

	// MaxStorageLeafLength bounds the RLP encoding of a storage trie's
	// terminal leaf node.
	MaxStorageLeafLength = 69

	// MaxNodeLen bounds a single trie node's RLP encoding: the largest
	// case is a branch node holding 16 32-byte hash children.
	MaxNodeLen = 532
)
