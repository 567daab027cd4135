package rlp

import "errors"

var (
	// ErrExpectedString is returned when a list is encountered where a string was expected.
	ErrExpectedString = errors.New("rlp: expected string")

	// ErrExpectedList is returned when a string is encountered where a list was expected.
	ErrExpectedList = errors.New("rlp: expected list")

	// ErrCanonSize is returned when a single byte in [0x00, 0x7f] is wrapped in a
	// one-byte string header instead of being encoded directly.
	ErrCanonSize = errors.New("rlp: non-canonical size for single byte")

	// ErrEOL is returned when a list is closed before all its bytes were consumed,
	// or reading continues past the end of the enclosing list.
	ErrEOL = errors.New("rlp: end of list")

	// ErrCanonInt is returned when an integer uses non-canonical encoding
	// (a leading zero byte in its big-endian representation).
	ErrCanonInt = errors.New("rlp: non-canonical integer encoding")

	// ErrNonCanonicalSize is returned when a long-form string or list encodes a
	// length that would have fit in the short form (<= 55 bytes).
	ErrNonCanonicalSize = errors.New("rlp: non-canonical size")

	// ErrUint64Range is returned when a decoded integer exceeds uint64 range.
	ErrUint64Range = errors.New("rlp: uint64 overflow")

	// ErrValueTooLarge is returned when a Go value has no RLP representation.
	ErrValueTooLarge = errors.New("rlp: unsupported value")

	// ErrTruncated is returned when the input ends before a declared length is
	// satisfied.
	ErrTruncated = errors.New("rlp: input truncated")

	// ErrTooManyElements is returned when a bounded list decode encounters more
	// elements than its capacity allows.
	ErrTooManyElements = errors.New("rlp: list exceeds bound")

	// ErrAssertion is the sentinel wrapped by every AssertEq* failure. Callers
	// match on it with errors.Is; the wrapped message carries the stable label.
	ErrAssertion = errors.New("rlp: assertion failed")
)
