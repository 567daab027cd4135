package gethbridge

import (
	"fmt"
	"strings"
	"testing"
)

func receiptJSONFixture(status *string) string {
	bloom := "0x" + strings.Repeat("00", 256)
	statusField := ""
	if status != nil {
		statusField = fmt.Sprintf(`"status": %q,`, *status)
	} else {
		statusField = fmt.Sprintf(`"root": "0x%s",`, strings.Repeat("33", 32))
	}
	return fmt.Sprintf(`{
		"transactionHash": "0x%s",
		"transactionIndex": "0x2",
		"blockHash": "0x%s",
		"blockNumber": "0x112a880",
		"type": "0x0",
		%s
		"cumulativeGasUsed": "0x5208",
		"logsBloom": %q,
		"logs": [
			{
				"address": "0x1111111111111111111111111111111111111111",
				"topics": ["0x%s"],
				"data": "0x2a",
				"logIndex": "0x3"
			}
		]
	}`, strings.Repeat("aa", 32), strings.Repeat("bb", 32), statusField, bloom, strings.Repeat("cc", 32))
}

func TestDecodeTransactionReceipt_PostByzantium(t *testing.T) {
	status := "0x1"
	r, err := DecodeTransactionReceipt([]byte(receiptJSONFixture(&status)))
	if err != nil {
		t.Fatalf("DecodeTransactionReceipt: %v", err)
	}
	if !r.Receipt.HasStatus || !r.Receipt.Succeeded() {
		t.Fatalf("Receipt = %+v, want a successful post-Byzantium receipt", r.Receipt)
	}
	if r.TransactionIndex != 2 {
		t.Fatalf("TransactionIndex = %d, want 2", r.TransactionIndex)
	}
	if len(r.Receipt.Logs) != 1 {
		t.Fatalf("len(Logs) = %d, want 1", len(r.Receipt.Logs))
	}
	if r.LogIndexBase != 3 {
		t.Fatalf("LogIndexBase = %d, want 3", r.LogIndexBase)
	}
}

func TestDecodeTransactionReceipt_PreByzantium(t *testing.T) {
	r, err := DecodeTransactionReceipt([]byte(receiptJSONFixture(nil)))
	if err != nil {
		t.Fatalf("DecodeTransactionReceipt: %v", err)
	}
	if r.Receipt.HasStatus {
		t.Fatalf("HasStatus = true, want false for a pre-Byzantium receipt")
	}
	if len(r.Receipt.PostState) != 32 {
		t.Fatalf("len(PostState) = %d, want 32", len(r.Receipt.PostState))
	}
}

func TestDecodeTransactionReceipt_BadJSON(t *testing.T) {
	if _, err := DecodeTransactionReceipt([]byte("nope")); err == nil {
		t.Fatalf("expected error decoding malformed JSON")
	}
}
