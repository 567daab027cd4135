package verify

import (
	"github.com/ethproof/verifier/mpt"
	"github.com/ethproof/verifier/rlp"
	"github.com/ethproof/verifier/xkeccak"
)

// buildLeafProof builds the single-node proof for a trie containing exactly
// one key: a leaf sitting directly at the root, its compact path carrying
// the full key nibble sequence. Every domain verifier test below drives its
// mpt walk through this fixture rather than a multi-node trie, since the
// walk itself is mpt's responsibility and already has its own coverage.
func buildLeafProof(key, value []byte) (root [32]byte, proof mpt.Proof) {
	hexKey := keybytesToHexForTest(key)
	compact := hexToCompactForTest(hexKey)
	leaf := rlp.WrapList(concatForTest(rlpBytesForTest(compact), rlpBytesForTest(value)))
	return xkeccak.Sum256(leaf), mpt.Proof{leaf}
}

func keybytesToHexForTest(key []byte) []byte {
	l := len(key)*2 + 1
	nibbles := make([]byte, l)
	for i, b := range key {
		nibbles[i*2] = b / 16
		nibbles[i*2+1] = b % 16
	}
	nibbles[l-1] = 16
	return nibbles
}

// hexToCompactForTest is the inverse of mpt's internal compactToHex,
// reimplemented here since that helper is unexported to another package.
func hexToCompactForTest(hex []byte) []byte {
	flag := byte(2) // leaf flag; every fixture below is a lone leaf at the root
	hex = hex[:len(hex)-1]
	buf := make([]byte, len(hex)/2+1)
	buf[0] = flag << 4
	if len(hex)&1 == 1 {
		buf[0] |= 1 << 4
		buf[0] |= hex[0]
		hex = hex[1:]
	}
	for bi, ni := 0, 0; ni < len(hex); bi, ni = bi+1, ni+2 {
		buf[1+bi] = hex[ni]<<4 | hex[ni+1]
	}
	return buf
}

func rlpBytesForTest(b []byte) []byte {
	enc, err := rlp.EncodeToBytes(b)
	if err != nil {
		panic(err)
	}
	return enc
}

func concatForTest(parts ...[]byte) []byte {
	var out []byte
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}
