package ethtypes

import (
	"github.com/ethproof/verifier/rlp"
	"github.com/ethproof/verifier/xkeccak"
)

// HeaderPartial is a block header decoded from its canonical RLP encoding. Later
// EIPs only ever append fields, so the header's own field count says
// which optional fields are present: 15 (pre-London), 16 (London adds
// BaseFee), 17 (Shanghai adds WithdrawalsHash), or 20 (Cancun adds
// BlobGasUsed, ExcessBlobGas, ParentBeaconRoot). Fields beyond Cancun are
// declared for forward reference but this verifier does not decode them;
// see forkparams for the capacity ceiling this reflects.
type HeaderPartial struct {
	ParentHash  Hash
	UncleHash   Hash
	Coinbase    Address
	Root        Hash
	TxHash      Hash
	ReceiptHash Hash
	Bloom       Bloom
	Difficulty  []byte // arbitrary-precision, kept as canonical big-endian bytes
	Number      []byte
	GasLimit    uint64
	GasUsed     uint64
	Time        uint64
	Extra       []byte
	MixDigest   Hash
	Nonce       BlockNonce

	BaseFee *[]byte // EIP-1559

	WithdrawalsHash *Hash // EIP-4895

	BlobGasUsed      *uint64 // EIP-4844
	ExcessBlobGas    *uint64
	ParentBeaconRoot *Hash // EIP-4788

	RequestsHash        *Hash // EIP-7685, declared but not decoded (see forkparams)
	BlockAccessListHash *Hash // EIP-7928, declared but not decoded
	CalldataGasUsed     *uint64
	CalldataExcessGas   *uint64

	// ExpectedHash is the independently known block hash a caller wants
	// this header checked against; it is not itself an RLP field and is
	// left zero when decoding a header from its own RLP encoding.
	ExpectedHash Hash
}

// FieldCount reports the number of RLP list items this header encodes to,
// derived from which optional fields are populated.
func (h *HeaderPartial) FieldCount() int {
	switch {
	case h.ParentBeaconRoot != nil || h.BlobGasUsed != nil || h.ExcessBlobGas != nil:
		return 20
	case h.WithdrawalsHash != nil:
		return 17
	case h.BaseFee != nil:
		return 16
	default:
		return 15
	}
}

// DecodeHeader decodes a canonical RLP block header. It accepts any of the
// 15/16/17/20 field-count layouts described on HeaderPartial.
func DecodeHeader(enc []byte) (*HeaderPartial, error) {
	_, children, err := rlp.DecodeList(enc, 0, 20)
	if err != nil {
		return nil, err
	}
	n := len(children)
	if n != 15 && n != 16 && n != 17 && n != 20 {
		return nil, rlp.ErrExpectedList
	}

	h := &HeaderPartial{}
	get := func(i int) []byte { return children[i].Payload(enc) }

	h.ParentHash = BytesToHash(get(0))
	h.UncleHash = BytesToHash(get(1))
	h.Coinbase = BytesToAddress(get(2))
	h.Root = BytesToHash(get(3))
	h.TxHash = BytesToHash(get(4))
	h.ReceiptHash = BytesToHash(get(5))
	copy(h.Bloom[:], get(6))
	h.Difficulty = append([]byte{}, get(7)...)
	h.Number = append([]byte{}, get(8)...)

	gasLimit, err := decodeUint64(get(9))
	if err != nil {
		return nil, err
	}
	h.GasLimit = gasLimit

	gasUsed, err := decodeUint64(get(10))
	if err != nil {
		return nil, err
	}
	h.GasUsed = gasUsed

	t, err := decodeUint64(get(11))
	if err != nil {
		return nil, err
	}
	h.Time = t

	h.Extra = append([]byte{}, get(12)...)
	h.MixDigest = BytesToHash(get(13))
	copy(h.Nonce[:], get(14))

	if n >= 16 {
		bf := append([]byte{}, get(15)...)
		h.BaseFee = &bf
	}
	if n >= 17 {
		wh := BytesToHash(get(16))
		h.WithdrawalsHash = &wh
	}
	if n == 20 {
		bgu, err := decodeUint64(get(17))
		if err != nil {
			return nil, err
		}
		h.BlobGasUsed = &bgu

		ebg, err := decodeUint64(get(18))
		if err != nil {
			return nil, err
		}
		h.ExcessBlobGas = &ebg

		pbr := BytesToHash(get(19))
		h.ParentBeaconRoot = &pbr
	}

	return h, nil
}

func decodeUint64(b []byte) (uint64, error) {
	if len(b) > 8 {
		return 0, rlp.ErrUint64Range
	}
	var v uint64
	for _, x := range b {
		v = v<<8 | uint64(x)
	}
	return v, nil
}

// Encode produces the canonical RLP encoding of the header, used by tests
// to build fixtures and to recompute the block hash.
func (h *HeaderPartial) Encode() []byte {
	items := [][]byte{
		rlpBytesRaw(h.ParentHash[:]),
		rlpBytesRaw(h.UncleHash[:]),
		rlpBytesRaw(h.Coinbase[:]),
		rlpBytesRaw(h.Root[:]),
		rlpBytesRaw(h.TxHash[:]),
		rlpBytesRaw(h.ReceiptHash[:]),
		rlpBytesRaw(h.Bloom[:]),
		rlpBytesRaw(h.Difficulty),
		rlpBytesRaw(h.Number),
		rlpUint64Raw(h.GasLimit),
		rlpUint64Raw(h.GasUsed),
		rlpUint64Raw(h.Time),
		rlpBytesRaw(h.Extra),
		rlpBytesRaw(h.MixDigest[:]),
		rlpBytesRaw(h.Nonce[:]),
	}
	switch h.FieldCount() {
	case 16:
		items = append(items, rlpBytesRaw(*h.BaseFee))
	case 17:
		items = append(items, rlpBytesRaw(*h.BaseFee), rlpBytesRaw(h.WithdrawalsHash[:]))
	case 20:
		items = append(items,
			rlpBytesRaw(*h.BaseFee),
			rlpBytesRaw(h.WithdrawalsHash[:]),
			rlpUint64Raw(*h.BlobGasUsed),
			rlpUint64Raw(*h.ExcessBlobGas),
			rlpBytesRaw(h.ParentBeaconRoot[:]),
		)
	}
	return rlp.WrapList(concat(items...))
}

// RLPHash returns the keccak256 of the header's canonical RLP encoding.
func (h *HeaderPartial) RLPHash() Hash {
	return BytesToHash(xkeccak.Bytes(h.Encode()))
}

func rlpBytesRaw(b []byte) []byte {
	enc, _ := rlp.EncodeToBytes(b)
	return enc
}

func rlpUint64Raw(u uint64) []byte {
	enc, _ := rlp.EncodeToBytes(u)
	return enc
}
