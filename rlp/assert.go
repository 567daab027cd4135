package rlp

import (
	"bytes"
	"fmt"

	"github.com/ethproof/verifier/nibble"
)

// assertFail wraps ErrAssertion with a stable, human-readable label so
// callers can both errors.Is against a single sentinel and print the
// original diagnostic text.
func assertFail(label string) error {
	return fmt.Errorf("%w: %s", ErrAssertion, label)
}

// AssertEqUint64 fails with label if a != b. Used to compare a decoded
// RLP integer field against an independently known expected value.
func AssertEqUint64(a, b uint64, label string) error {
	if a != b {
		return assertFail(label)
	}
	return nil
}

// AssertEqBytes32Exact fails with label unless a and b are byte-identical
// 32-byte values. Use this for comparing hashes and roots, which are
// always encoded and compared at full width.
func AssertEqBytes32Exact(a, b [32]byte, label string) error {
	if a != b {
		return assertFail(label)
	}
	return nil
}

// AssertEqBytes32Trimmed fails with label unless trimmed, once expanded to
// 32 bytes with implied leading zeros, equals full. Use this for trie leaf
// values (e.g. storage slots) that RLP encodes without leading zero bytes,
// so a canonical value may be shorter than 32 bytes.
func AssertEqBytes32Trimmed(full [32]byte, trimmed []byte, label string) error {
	if len(trimmed) > 32 {
		return assertFail(label)
	}
	tail, n := nibble.ByteValue(trimmed)
	etail, en := nibble.ByteValue(full[:])
	if n != en || !bytes.Equal(tail[:n], etail[:en]) {
		return assertFail(label)
	}
	return nil
}

// AssertEqBytes fails with label unless a and b are byte-for-byte equal.
func AssertEqBytes(a, b []byte, label string) error {
	if !bytes.Equal(a, b) {
		return assertFail(label)
	}
	return nil
}
