package ethtypes

import (
	"bytes"
	"testing"

	"github.com/ethproof/verifier/rlp"
)

func encodeLegacyTxForTest(t *testing.T, nonce uint64, gasPrice, gas uint64, to []byte, value uint64, data []byte, v uint64) []byte {
	t.Helper()
	items := [][]byte{
		rlpUint64Raw(nonce),
		rlpUint64Raw(gasPrice),
		rlpUint64Raw(gas),
		rlpBytesRaw(to),
		rlpUint64Raw(value),
		rlpBytesRaw(data),
		rlpUint64Raw(v),
		rlpUint64Raw(0),
		rlpUint64Raw(0),
	}
	return rlp.WrapList(concat(items...))
}

func TestDecodeTransactionPartial_Legacy(t *testing.T) {
	to := make([]byte, 20)
	to[19] = 0x42
	enc := encodeLegacyTxForTest(t, 5, 1_000_000_000, 21000, to, 1_000, []byte("hi"), 37)

	tx, err := DecodeTransactionPartial(enc)
	if err != nil {
		t.Fatalf("DecodeTransactionPartial: %v", err)
	}
	if tx.Type != LegacyTxType {
		t.Errorf("Type = %d, want legacy", tx.Type)
	}
	if tx.Nonce != 5 {
		t.Errorf("Nonce = %d, want 5", tx.Nonce)
	}
	if tx.Gas != 21000 {
		t.Errorf("Gas = %d, want 21000", tx.Gas)
	}
	if tx.To == nil || !bytes.Equal(tx.To[:], to) {
		t.Errorf("To = %v, want %x", tx.To, to)
	}
	if !bytes.Equal(tx.Data, []byte("hi")) {
		t.Errorf("Data = %q, want %q", tx.Data, "hi")
	}
	// v=37 => chainID = (37-35)/2 = 1
	if len(tx.ChainID) != 1 || tx.ChainID[0] != 1 {
		t.Errorf("ChainID = %x, want [0x01]", tx.ChainID)
	}
}

func TestDecodeTransactionPartial_LegacyPreEIP155(t *testing.T) {
	enc := encodeLegacyTxForTest(t, 0, 1, 21000, nil, 0, nil, 27)
	tx, err := DecodeTransactionPartial(enc)
	if err != nil {
		t.Fatalf("DecodeTransactionPartial: %v", err)
	}
	if tx.ChainID != nil {
		t.Errorf("ChainID = %x, want nil for pre-EIP-155 V", tx.ChainID)
	}
	if tx.To != nil {
		t.Errorf("To = %v, want nil for contract creation", tx.To)
	}
}

func TestDecodeTransactionPartial_DynamicFee(t *testing.T) {
	items := [][]byte{
		rlpUint64Raw(1),     // chainID
		rlpUint64Raw(9),     // nonce
		rlpUint64Raw(2),     // gasTip
		rlpUint64Raw(50),    // gasFee
		rlpUint64Raw(21000), // gas
		rlpBytesRaw(nil),    // to (contract creation)
		rlpUint64Raw(0),     // value
		rlpBytesRaw(nil),    // data
		rlp.WrapList(nil),   // accessList
		rlpUint64Raw(0),     // v
		rlpUint64Raw(0),     // r
		rlpUint64Raw(0),     // s
	}
	body := rlp.WrapList(concat(items...))
	enc := append([]byte{DynamicFeeTxType}, body...)

	tx, err := DecodeTransactionPartial(enc)
	if err != nil {
		t.Fatalf("DecodeTransactionPartial: %v", err)
	}
	if tx.Type != DynamicFeeTxType {
		t.Errorf("Type = %d, want dynamic fee", tx.Type)
	}
	if tx.Nonce != 9 {
		t.Errorf("Nonce = %d, want 9", tx.Nonce)
	}
	if len(tx.GasTip) != 1 || tx.GasTip[0] != 2 {
		t.Errorf("GasTip = %x, want [0x02]", tx.GasTip)
	}
	if len(tx.GasFee) != 1 || tx.GasFee[0] != 50 {
		t.Errorf("GasFee = %x, want [0x32]", tx.GasFee)
	}
	if tx.To != nil {
		t.Errorf("To = %v, want nil", tx.To)
	}
}

func TestDecodeTransactionPartial_UnknownType(t *testing.T) {
	if _, err := DecodeTransactionPartial([]byte{0x7f, 0xc0}); err == nil {
		t.Fatal("expected error for unknown transaction type")
	}
}

func TestDecodeTransactionPartial_Empty(t *testing.T) {
	if _, err := DecodeTransactionPartial(nil); err == nil {
		t.Fatal("expected error for empty input")
	}
}
