package fixtureset

import (
	"encoding/json"

	"github.com/ethproof/verifier/ethtypes"
	"github.com/ethproof/verifier/mpt"
)

// logJSON is one entry of a KindReceipt fixture's logs array.
type logJSON struct {
	Address string   `json:"address"`
	Topics  []string `json:"topics"`
	Data    string   `json:"data,omitempty"`
}

// receiptJSON is the "data" object of a KindReceipt fixture. Status is a
// pointer so its absence (pre-Byzantium) is distinguishable from status 0
// (a failed post-Byzantium transaction).
type receiptJSON struct {
	BlockNumber       uint64   `json:"blockNumber"`
	Index             uint64   `json:"index"`
	Type              byte     `json:"type"`
	Status            *uint64  `json:"status,omitempty"`
	PostState         string   `json:"postState,omitempty"`
	CumulativeGasUsed uint64   `json:"cumulativeGasUsed"`
	Bloom             string   `json:"bloom"`
	Logs              []logJSON `json:"logs"`
	Proof             []string `json:"proof"`
	Root              string   `json:"root"`
}

// ReceiptCase holds the arguments verify.VerifyReceiptProof takes.
type ReceiptCase struct {
	BlockNumber uint64
	Index       uint64
	Type        uint8
	Receipt     ethtypes.ReceiptPartial
	Proof       mpt.Proof
	Root        [32]byte
}

// DecodeReceiptCase decodes a KindReceipt fixture's Data field.
func DecodeReceiptCase(data json.RawMessage) (ReceiptCase, error) {
	var raw receiptJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return ReceiptCase{}, err
	}

	root, err := decodeHash32(raw.Root)
	if err != nil {
		return ReceiptCase{}, err
	}
	proofBytes, err := decodeHexProof(raw.Proof)
	if err != nil {
		return ReceiptCase{}, err
	}
	bloomBytes, err := decodeHex(raw.Bloom)
	if err != nil {
		return ReceiptCase{}, err
	}

	receipt := ethtypes.ReceiptPartial{
		Type:              raw.Type,
		CumulativeGasUsed: raw.CumulativeGasUsed,
	}
	copy(receipt.Bloom[:], bloomBytes)

	if raw.Status != nil {
		receipt.HasStatus = true
		receipt.Status = *raw.Status
	} else if raw.PostState != "" {
		if receipt.PostState, err = decodeHex(raw.PostState); err != nil {
			return ReceiptCase{}, err
		}
	}

	receipt.Logs = make([]ethtypes.Log, len(raw.Logs))
	for i, l := range raw.Logs {
		topics := make([]ethtypes.Hash, len(l.Topics))
		for j, t := range l.Topics {
			h, err := decodeHash32(t)
			if err != nil {
				return ReceiptCase{}, err
			}
			topics[j] = ethtypes.Hash(h)
		}
		var logData []byte
		if l.Data != "" {
			if logData, err = decodeHex(l.Data); err != nil {
				return ReceiptCase{}, err
			}
		}
		receipt.Logs[i] = ethtypes.Log{
			Address: ethtypes.HexToAddress(l.Address),
			Topics:  topics,
			Data:    logData,
		}
	}

	return ReceiptCase{
		BlockNumber: raw.BlockNumber,
		Index:       raw.Index,
		Type:        raw.Type,
		Receipt:     receipt,
		Proof:       mpt.Proof(proofBytes),
		Root:        root,
	}, nil
}
