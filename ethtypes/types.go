// Package ethtypes defines the Ethereum value types and partial
// header/transaction/receipt representations the verify package decodes
// from trie proof leaves. These are read-only views suited to a verifier:
// no transaction execution, no state mutation, only structural decoding
// and field extraction sufficient to check a proof's leaf value against
// an independently known expected field.
package ethtypes

import (
	"encoding/hex"
	"fmt"
)

const (
	HashLength    = 32
	AddressLength = 20
	BloomLength   = 256
	NonceLength   = 8
)

// Hash is a 32-byte keccak256 digest.
type Hash [HashLength]byte

// Address is a 20-byte Ethereum account address.
type Address [AddressLength]byte

// Bloom is a 2048-bit (256-byte) log bloom filter.
type Bloom [BloomLength]byte

// BlockNonce is the 8-byte block header nonce field.
type BlockNonce [NonceLength]byte

// BytesToHash left-pads b to 32 bytes and returns it as a Hash.
func BytesToHash(b []byte) Hash {
	var h Hash
	h.SetBytes(b)
	return h
}

// HexToHash decodes a hex string (with optional 0x prefix) into a Hash.
func HexToHash(s string) Hash { return BytesToHash(fromHex(s)) }

func (h Hash) Bytes() []byte   { return h[:] }
func (h Hash) Hex() string     { return fmt.Sprintf("0x%x", h[:]) }
func (h Hash) String() string  { return h.Hex() }
func (h Hash) IsZero() bool    { return h == Hash{} }
func (h *Hash) SetBytes(b []byte) {
	if len(b) > HashLength {
		b = b[len(b)-HashLength:]
	}
	copy(h[HashLength-len(b):], b)
}

// BytesToAddress left-pads b to 20 bytes and returns it as an Address.
func BytesToAddress(b []byte) Address {
	var a Address
	a.SetBytes(b)
	return a
}

// HexToAddress decodes a hex string (with optional 0x prefix) into an Address.
func HexToAddress(s string) Address { return BytesToAddress(fromHex(s)) }

func (a Address) Bytes() []byte  { return a[:] }
func (a Address) Hex() string    { return fmt.Sprintf("0x%x", a[:]) }
func (a Address) String() string { return a.Hex() }
func (a Address) IsZero() bool   { return a == Address{} }
func (a *Address) SetBytes(b []byte) {
	if len(b) > AddressLength {
		b = b[len(b)-AddressLength:]
	}
	copy(a[AddressLength-len(b):], b)
}

func (b Bloom) Bytes() []byte { return b[:] }

// Log represents a single contract log event, decoded from either a
// receipt's log list or extracted independently by ExtractLog.
type Log struct {
	Address     Address
	Topics      []Hash
	Data        []byte
	BlockNumber uint64
	TxHash      Hash
	TxIndex     uint
	BlockHash   Hash
	Index       uint
	Removed     bool
}

var (
	// EmptyRootHash is keccak256 of the RLP encoding of the empty string,
	// the storage/state root of an account or trie with no entries.
	EmptyRootHash = HexToHash("56e81f171bcc55a6ff8345e692c0f86e5b48e01b996cadc001622fb5e363b421")

	// EmptyCodeHash is keccak256 of the empty byte string, the code hash of
	// an externally-owned account.
	EmptyCodeHash = HexToHash("c5d2460186f7233c927e7db2dcc703c0e500b653ca82273b7bfad8045d85a470")

	// EmptyUncleHash is keccak256 of the RLP encoding of an empty list.
	EmptyUncleHash = HexToHash("1dcc4de8dec75d7aab85b567b6ccd41ad312451b948a7413f0a142fd40d49347")
)

func fromHex(s string) []byte {
	if len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		s = s[2:]
	}
	if len(s)%2 == 1 {
		s = "0" + s
	}
	b, _ := hex.DecodeString(s)
	return b
}
