package mpt

// Hex-prefix (compact) path encoding, Ethereum Yellow Paper Appendix C.
//
// A trie path is a sequence of nibbles, optionally terminated by a
// terminator marker (leaf paths carry one, extension paths don't). The
// compact form packs that sequence into bytes: the high nibble of the
// first byte carries two flag bits (leaf vs extension, even vs odd nibble
// count), and if the nibble count is odd, the first data nibble is folded
// into that same byte's low nibble.

const terminator = 16

// keybytesToHex expands a raw key into its nibble sequence with a trailing
// terminator nibble appended.
func keybytesToHex(key []byte) []byte {
	l := len(key)*2 + 1
	nibbles := make([]byte, l)
	for i, b := range key {
		nibbles[i*2] = b / 16
		nibbles[i*2+1] = b % 16
	}
	nibbles[l-1] = terminator
	return nibbles
}

// hasTerm reports whether a nibble sequence ends with the terminator.
func hasTerm(hex []byte) bool {
	return len(hex) > 0 && hex[len(hex)-1] == terminator
}

// compactToHex expands a hex-prefix encoded path into its nibble sequence.
// If the path is a leaf path, the returned sequence includes the trailing
// terminator nibble.
func compactToHex(compact []byte) ([]byte, error) {
	if len(compact) == 0 {
		return nil, nil
	}
	flags := compact[0] >> 4
	if flags > 3 {
		return nil, ErrMalformedNode
	}
	odd := flags&1 != 0
	leaf := flags&2 != 0

	if !odd && compact[0]&0x0F != 0 {
		return nil, ErrMalformedNode
	}

	nibbles := make([]byte, 0, 2*len(compact))
	if odd {
		nibbles = append(nibbles, compact[0]&0x0F)
	}
	for _, b := range compact[1:] {
		nibbles = append(nibbles, b>>4, b&0x0F)
	}
	if leaf {
		nibbles = append(nibbles, terminator)
	}
	return nibbles, nil
}

// keysEqual compares two nibble sequences element by element; sequences of
// different lengths are unequal. Terminators are not treated specially, so
// callers strip a leaf path's terminator before comparing.
func keysEqual(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
