package ethtypes

import (
	"github.com/ethproof/verifier/rlp"
)

// Transaction type byte prefixes for the typed transaction envelopes
// introduced after the legacy (untyped) format.
const (
	LegacyTxType     = 0x00
	AccessListTxType = 0x01
	DynamicFeeTxType = 0x02
	BlobTxType       = 0x03
	SetCodeTxType    = 0x04
)

// TransactionPartial is the set of fields a proof verifier needs from a
// transaction-trie leaf: enough to check the signer-independent envelope
// fields against an expected value, without decoding the signature or
// building an execution-ready transaction. To is nil for a
// contract-creation transaction.
type TransactionPartial struct {
	Type     byte
	ChainID  []byte // absent (nil) for legacy transactions with no EIP-155 V
	Nonce    uint64
	GasPrice []byte // legacy/AccessList gasPrice, or nil for fee-market types
	GasTip   []byte // maxPriorityFeePerGas, fee-market types only
	GasFee   []byte // maxFeePerGas, fee-market types only
	Gas      uint64
	To       *Address
	Value    []byte
	Data     []byte
}

// transactionPartialFieldLayout describes, for one transaction type, the
// list-item index of each field this module extracts. -1 means the field
// does not appear in that type's envelope.
type transactionPartialFieldLayout struct {
	chainID, nonce, gasPrice, gasTip, gasFee, gas, to, value, data int
}

var legacyLayout = transactionPartialFieldLayout{
	chainID: -1, nonce: 0, gasPrice: 1, gasTip: -1, gasFee: -1,
	gas: 2, to: 3, value: 4, data: 5,
}

var accessListLayout = transactionPartialFieldLayout{
	chainID: 0, nonce: 1, gasPrice: 2, gasTip: -1, gasFee: -1,
	gas: 3, to: 4, value: 5, data: 6,
}

var dynamicFeeLayout = transactionPartialFieldLayout{
	chainID: 0, nonce: 1, gasPrice: -1, gasTip: 2, gasFee: 3,
	gas: 4, to: 5, value: 6, data: 7,
}

// blobLayout and setCodeLayout share the same prefix as dynamicFeeLayout;
// the trailing fields (blob hashes / authorization list, then v, r, s)
// aren't extracted here.
var blobLayout = dynamicFeeLayout
var setCodeLayout = dynamicFeeLayout

func layoutFor(txType byte) (transactionPartialFieldLayout, bool) {
	switch txType {
	case LegacyTxType:
		return legacyLayout, true
	case AccessListTxType:
		return accessListLayout, true
	case DynamicFeeTxType:
		return dynamicFeeLayout, true
	case BlobTxType:
		return blobLayout, true
	case SetCodeTxType:
		return setCodeLayout, true
	default:
		return transactionPartialFieldLayout{}, false
	}
}

// DecodeTransactionPartial decodes a transaction-trie leaf value. A legacy
// transaction's leaf is the bare RLP list; a typed transaction's leaf is a
// single type byte followed by the RLP list, per EIP-2718.
func DecodeTransactionPartial(enc []byte) (TransactionPartial, error) {
	if len(enc) == 0 {
		return TransactionPartial{}, rlp.ErrTruncated
	}

	txType := byte(LegacyTxType)
	body := enc
	if enc[0] < 0xc0 {
		txType = enc[0]
		body = enc[1:]
	}

	layout, ok := layoutFor(txType)
	if !ok {
		return TransactionPartial{}, rlp.ErrExpectedList
	}

	_, children, err := rlp.DecodeList(body, 0, 14)
	if err != nil {
		return TransactionPartial{}, err
	}
	if len(children) <= layout.data {
		return TransactionPartial{}, rlp.ErrExpectedList
	}

	get := func(i int) []byte {
		if i < 0 || i >= len(children) {
			return nil
		}
		return children[i].Payload(body)
	}

	tx := TransactionPartial{Type: txType}
	if layout.chainID >= 0 {
		tx.ChainID = append([]byte{}, get(layout.chainID)...)
	} else if txType == LegacyTxType {
		tx.ChainID = deriveLegacyChainID(get(6))
	}

	nonce, err := decodeUint64(get(layout.nonce))
	if err != nil {
		return TransactionPartial{}, err
	}
	tx.Nonce = nonce

	if layout.gasPrice >= 0 {
		tx.GasPrice = append([]byte{}, get(layout.gasPrice)...)
	}
	if layout.gasTip >= 0 {
		tx.GasTip = append([]byte{}, get(layout.gasTip)...)
	}
	if layout.gasFee >= 0 {
		tx.GasFee = append([]byte{}, get(layout.gasFee)...)
	}

	gas, err := decodeUint64(get(layout.gas))
	if err != nil {
		return TransactionPartial{}, err
	}
	tx.Gas = gas

	if to := get(layout.to); len(to) > 0 {
		addr := BytesToAddress(to)
		tx.To = &addr
	}

	tx.Value = append([]byte{}, get(layout.value)...)
	tx.Data = append([]byte{}, get(layout.data)...)

	return tx, nil
}

// deriveLegacyChainID recovers the EIP-155 chain ID encoded into a legacy
// transaction's V value. Pre-EIP-155 transactions (V of 27 or 28) carry no
// chain ID and this returns nil.
func deriveLegacyChainID(v []byte) []byte {
	vInt := beToUint64(v)
	if vInt == 27 || vInt == 28 {
		return nil
	}
	if vInt < 35 {
		return nil
	}
	chainID := (vInt - 35) / 2
	return uint64ToMinimalBigEndian(chainID)
}

func beToUint64(b []byte) uint64 {
	var v uint64
	for _, x := range b {
		v = v<<8 | uint64(x)
	}
	return v
}

func uint64ToMinimalBigEndian(v uint64) []byte {
	if v == 0 {
		return nil
	}
	var buf [8]byte
	for i := 7; i >= 0; i-- {
		buf[i] = byte(v)
		v >>= 8
	}
	i := 0
	for i < 8 && buf[i] == 0 {
		i++
	}
	return buf[i:]
}
