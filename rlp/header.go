// Package rlp implements Ethereum's Recursive Length Prefix encoding: a
// header-only, zero-copy decoder for walking proof bytes without
// allocating (Header, DecodeHeader, DecodeList), a small specialized
// encoder for the two shapes the domain ever needs to produce
// (EncodeUint64, EncodeBytes, WrapList), and the type-directed AssertEq*
// comparisons the domain verifiers use to compare decoded field values
// against expected hashes and roots.
//
// The raw proof bytes handed to DecodeHeader are first wrapped in a
// fragment.Fragment view: every prefix byte and length-of-length field is
// read through the fragment's bounds-checked accessors rather than by
// indexing the slice directly. DecodeHeader checks each declared length
// against the buffer before reading it, so a truncated proof is reported
// as ErrTruncated rather than as a panic from the fragment package.
package rlp

import "github.com/ethproof/verifier/fragment"

// Kind identifies the shape of an RLP item: a single byte below 0x80, a
// string (byte range, including the empty string), or a list.
type Kind int

const (
	Byte Kind = iota
	String
	List
)

// Header describes one RLP item's tag without copying its payload: Offset
// and Length locate the payload within the original buffer, so a caller
// walking a proof can validate structure and hash sub-ranges without ever
// allocating an intermediate copy. Start locates the item's tag byte,
// letting a caller recover the item's complete encoding (tag plus
// payload) when it needs to re-decode an embedded node rather than just
// read a string's content.
type Header struct {
	Kind   Kind
	Start  int
	Offset int
	Length int
}

// End returns the offset one past the end of the header's payload.
func (h Header) End() int { return h.Offset + h.Length }

// DecodeHeader reads a single RLP item's header starting at data[pos] and
// returns it along with the position immediately after the item's payload.
// It enforces every canonicality rule the encoding defines: no leading
// zero in a length-of-length field, no long-form encoding of a length that
// would fit in short form, and no single-byte string wrapping a byte that
// is itself below 0x80.
func DecodeHeader(data []byte, pos int) (Header, int, error) {
	buf := fragment.FromArray(data)
	if pos >= buf.Len() {
		return Header{}, 0, ErrTruncated
	}
	prefix := buf.At(pos)

	switch {
	case prefix <= 0x7f:
		return Header{Kind: Byte, Start: pos, Offset: pos, Length: 1}, pos + 1, nil

	case prefix <= 0xb7:
		size := int(prefix - 0x80)
		start := pos + 1
		end := start + size
		if end > buf.Len() {
			return Header{}, 0, ErrTruncated
		}
		if size == 1 && buf.At(start) <= 0x7f {
			return Header{}, 0, ErrCanonSize
		}
		return Header{Kind: String, Start: pos, Offset: start, Length: size}, end, nil

	case prefix <= 0xbf:
		lenOfLen := int(prefix - 0xb7)
		if pos+1+lenOfLen > buf.Len() {
			return Header{}, 0, ErrTruncated
		}
		sizeBytes := buf.Slice(pos+1, pos+1+lenOfLen).ToSlice()
		size, err := canonicalLength(sizeBytes)
		if err != nil {
			return Header{}, 0, err
		}
		start := pos + 1 + lenOfLen
		end := start + size
		if end > buf.Len() {
			return Header{}, 0, ErrTruncated
		}
		return Header{Kind: String, Start: pos, Offset: start, Length: size}, end, nil

	case prefix <= 0xf7:
		size := int(prefix - 0xc0)
		start := pos + 1
		end := start + size
		if end > buf.Len() {
			return Header{}, 0, ErrTruncated
		}
		return Header{Kind: List, Start: pos, Offset: start, Length: size}, end, nil

	default:
		lenOfLen := int(prefix - 0xf7)
		if pos+1+lenOfLen > buf.Len() {
			return Header{}, 0, ErrTruncated
		}
		sizeBytes := buf.Slice(pos+1, pos+1+lenOfLen).ToSlice()
		size, err := canonicalLength(sizeBytes)
		if err != nil {
			return Header{}, 0, err
		}
		start := pos + 1 + lenOfLen
		end := start + size
		if end > buf.Len() {
			return Header{}, 0, ErrTruncated
		}
		return Header{Kind: List, Start: pos, Offset: start, Length: size}, end, nil
	}
}

// canonicalLength decodes a big-endian length-of-length field, rejecting a
// leading zero byte and any value that would have fit in short form.
func canonicalLength(sizeBytes []byte) (int, error) {
	if len(sizeBytes) > 0 && sizeBytes[0] == 0 {
		return 0, ErrCanonInt
	}
	var size uint64
	for _, b := range sizeBytes {
		size = size<<8 | uint64(b)
	}
	if size <= 55 {
		return 0, ErrNonCanonicalSize
	}
	return int(size), nil
}

// DecodeList decodes the header of an RLP list at data[pos] and then walks
// its payload, returning the header of each direct child. maxChildren
// bounds the number of children accepted, matching the fixed-capacity
// contract the rest of this module relies on; a list with more children
// than maxChildren fails with ErrTooManyElements instead of silently
// truncating.
func DecodeList(data []byte, pos int, maxChildren int) (Header, []Header, error) {
	listHeader, _, err := DecodeHeader(data, pos)
	if err != nil {
		return Header{}, nil, err
	}
	if listHeader.Kind != List {
		return Header{}, nil, ErrExpectedList
	}
	children := make([]Header, 0, maxChildren)
	cur := listHeader.Offset
	end := listHeader.End()
	for cur < end {
		if len(children) >= maxChildren {
			return Header{}, nil, ErrTooManyElements
		}
		h, next, err := DecodeHeader(data, cur)
		if err != nil {
			return Header{}, nil, err
		}
		if next > end {
			return Header{}, nil, ErrEOL
		}
		children = append(children, h)
		cur = next
	}
	if cur != end {
		return Header{}, nil, ErrEOL
	}
	return listHeader, children, nil
}

// Payload returns the byte range a header describes within data.
func (h Header) Payload(data []byte) []byte {
	return data[h.Offset:h.End()]
}

// Raw returns the item's complete encoding, tag byte(s) included. Use this
// (rather than Payload) when the item is itself an embedded RLP structure
// that must be re-decoded, such as an inline trie node.
func (h Header) Raw(data []byte) []byte {
	return data[h.Start:h.End()]
}
