package verify

import (
	"testing"

	"github.com/ethproof/verifier/ethtypes"
	"github.com/ethproof/verifier/rlp"
)

func encodeLogLeaf(addr ethtypes.Address, topics []ethtypes.Hash, data []byte) []byte {
	topicItems := make([][]byte, 0, len(topics))
	for _, t := range topics {
		topicItems = append(topicItems, rlpBytesForTest(t[:]))
	}
	addrEnc := rlpBytesForTest(addr[:])
	dataEnc := rlpBytesForTest(data)
	return rlp.WrapList(concatForTest(addrEnc, rlp.WrapList(concatForTest(topicItems...)), dataEnc))
}

func encodeReceiptLeaf(first []byte, firstIsStatus bool, gasUsed uint64, bloom ethtypes.Bloom, logs [][]byte) []byte {
	var firstEnc []byte
	if firstIsStatus {
		firstEnc = rlpBytesForTest(rlpTrimmedUint(beBytesToUint64(first)))
	} else {
		firstEnc = rlpBytesForTest(first)
	}
	gasEnc := rlpBytesForTest(rlpTrimmedUint(gasUsed))
	bloomEnc := rlpBytesForTest(bloom[:])
	logsEnc := rlp.WrapList(concatForTest(logs...))
	return rlp.WrapList(concatForTest(firstEnc, gasEnc, bloomEnc, logsEnc))
}

const postByzantiumBlock = 5_000_000
const preByzantiumBlock = 4_000_000

func TestVerifyReceiptProof_PostByzantiumSuccess(t *testing.T) {
	log := encodeLogLeaf(ethtypes.BytesToAddress([]byte{0x01}), nil, []byte("payload"))
	leaf := encodeReceiptLeaf([]byte{1}, true, 21000, ethtypes.Bloom{}, [][]byte{log})

	got, err := ethtypes.DecodeReceiptPartial(leaf)
	if err != nil {
		t.Fatalf("DecodeReceiptPartial: %v", err)
	}

	root, proof := buildLeafProof(txIndexKey(2), leaf)
	if err := VerifyReceiptProof(postByzantiumBlock, 2, ethtypes.LegacyTxType, got, proof, root); err != nil {
		t.Fatalf("expected success, got %v", err)
	}
}

func TestVerifyReceiptProof_StatusMismatch(t *testing.T) {
	leaf := encodeReceiptLeaf([]byte{1}, true, 21000, ethtypes.Bloom{}, nil)
	got, err := ethtypes.DecodeReceiptPartial(leaf)
	if err != nil {
		t.Fatalf("DecodeReceiptPartial: %v", err)
	}
	claimed := got
	claimed.Status = ethtypes.ReceiptStatusFailed

	root, proof := buildLeafProof(txIndexKey(0), leaf)
	if err := VerifyReceiptProof(postByzantiumBlock, 0, ethtypes.LegacyTxType, claimed, proof, root); err != ErrStatusMismatch {
		t.Fatalf("err = %v, want ErrStatusMismatch", err)
	}
}

func TestVerifyReceiptProof_PreByzantiumPostState(t *testing.T) {
	postState := make([]byte, 32)
	postState[0] = 0xaa
	leaf := encodeReceiptLeaf(postState, false, 50000, ethtypes.Bloom{}, nil)

	got, err := ethtypes.DecodeReceiptPartial(leaf)
	if err != nil {
		t.Fatalf("DecodeReceiptPartial: %v", err)
	}

	root, proof := buildLeafProof(txIndexKey(1), leaf)
	if err := VerifyReceiptProof(preByzantiumBlock, 1, ethtypes.LegacyTxType, got, proof, root); err != nil {
		t.Fatalf("expected success, got %v", err)
	}
}

func TestVerifyReceiptProof_CumulativeGasMismatch(t *testing.T) {
	leaf := encodeReceiptLeaf([]byte{1}, true, 21000, ethtypes.Bloom{}, nil)
	got, err := ethtypes.DecodeReceiptPartial(leaf)
	if err != nil {
		t.Fatalf("DecodeReceiptPartial: %v", err)
	}
	claimed := got
	claimed.CumulativeGasUsed = got.CumulativeGasUsed + 1

	root, proof := buildLeafProof(txIndexKey(0), leaf)
	if err := VerifyReceiptProof(postByzantiumBlock, 0, ethtypes.LegacyTxType, claimed, proof, root); err != ErrCumulativeGasMismatch {
		t.Fatalf("err = %v, want ErrCumulativeGasMismatch", err)
	}
}

func TestExtractLog_Success(t *testing.T) {
	addr := ethtypes.BytesToAddress([]byte{0x01})
	log := encodeLogLeaf(addr, nil, []byte("payload"))
	leaf := encodeReceiptLeaf([]byte{1}, true, 21000, ethtypes.Bloom{}, [][]byte{log})

	got, err := ExtractLog(leaf, 0)
	if err != nil {
		t.Fatalf("ExtractLog: %v", err)
	}
	if got.Address != addr {
		t.Errorf("Address = %x, want %x", got.Address, addr)
	}
}

func TestExtractLog_OutOfRange(t *testing.T) {
	leaf := encodeReceiptLeaf([]byte{1}, true, 21000, ethtypes.Bloom{}, nil)
	if _, err := ExtractLog(leaf, 0); err != ErrLogIndexOutOfRange {
		t.Fatalf("err = %v, want ErrLogIndexOutOfRange", err)
	}
}
