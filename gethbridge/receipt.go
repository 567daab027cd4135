package gethbridge

import (
	"encoding/json"

	gethcommon "github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"

	"github.com/ethproof/verifier/ethtypes"
)

// logJSON mirrors one entry of a transaction receipt's logs array.
type logJSON struct {
	Address gethcommon.Address `json:"address"`
	Topics  []gethcommon.Hash  `json:"topics"`
	Data    hexutil.Bytes      `json:"data"`
	Index   hexutil.Uint       `json:"logIndex"`
}

// receiptJSON mirrors the JSON object eth_getTransactionReceipt returns.
type receiptJSON struct {
	TransactionHash   gethcommon.Hash `json:"transactionHash"`
	TransactionIndex  hexutil.Uint    `json:"transactionIndex"`
	BlockHash         gethcommon.Hash `json:"blockHash"`
	BlockNumber       hexutil.Uint64  `json:"blockNumber"`
	Type              hexutil.Uint64  `json:"type"`
	Status            *hexutil.Uint64 `json:"status"`
	Root              gethcommon.Hash `json:"root"`
	CumulativeGasUsed hexutil.Uint64  `json:"cumulativeGasUsed"`
	LogsBloom         hexutil.Bytes   `json:"logsBloom"`
	Logs              []logJSON       `json:"logs"`
}

// Receipt bundles the decoded consensus receipt with the block/transaction
// context an eth_getTransactionReceipt response carries alongside it,
// which ethtypes.ExtractLog needs to fully populate an ethtypes.Log.
type Receipt struct {
	Receipt          ethtypes.ReceiptPartial
	BlockHash        ethtypes.Hash
	BlockNumber      uint64
	TransactionHash  ethtypes.Hash
	TransactionIndex uint
	LogIndexBase     uint
}

// DecodeTransactionReceipt parses a raw eth_getTransactionReceipt
// JSON-RPC result.
func DecodeTransactionReceipt(data []byte) (Receipt, error) {
	var raw receiptJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return Receipt{}, err
	}

	r := ethtypes.ReceiptPartial{
		Type:              byte(raw.Type),
		CumulativeGasUsed: uint64(raw.CumulativeGasUsed),
	}
	copy(r.Bloom[:], raw.LogsBloom)

	if raw.Status != nil {
		r.HasStatus = true
		r.Status = uint64(*raw.Status)
	} else {
		r.PostState = raw.Root[:]
	}

	r.Logs = make([]ethtypes.Log, len(raw.Logs))
	var logIndexBase uint
	for i, l := range raw.Logs {
		topics := make([]ethtypes.Hash, len(l.Topics))
		for j, t := range l.Topics {
			topics[j] = toHash(t)
		}
		r.Logs[i] = ethtypes.Log{
			Address: toAddress(l.Address),
			Topics:  topics,
			Data:    l.Data,
		}
		if i == 0 {
			logIndexBase = uint(l.Index)
		}
	}

	return Receipt{
		Receipt:          r,
		BlockHash:        toHash(raw.BlockHash),
		BlockNumber:      uint64(raw.BlockNumber),
		TransactionHash:  toHash(raw.TransactionHash),
		TransactionIndex: uint(raw.TransactionIndex),
		LogIndexBase:     logIndexBase,
	}, nil
}
