// Package xkeccak provides the keccak256 black box that the rest of this
// module treats as an opaque 32-byte hash of a byte range. It is a thin
// wrapper, never a hand-rolled sponge construction.
package xkeccak

import "golang.org/x/crypto/sha3"

// Size is the length in bytes of a keccak256 digest.
const Size = 32

// Sum256 computes the keccak256 digest of the concatenation of data.
func Sum256(data ...[]byte) [Size]byte {
	d := sha3.NewLegacyKeccak256()
	for _, b := range data {
		d.Write(b)
	}
	var out [Size]byte
	d.Sum(out[:0])
	return out
}

// Bytes computes the keccak256 digest and returns it as a fresh slice.
func Bytes(data ...[]byte) []byte {
	sum := Sum256(data...)
	return sum[:]
}
