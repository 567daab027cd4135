package ethtypes

import (
	"github.com/ethproof/verifier/rlp"
)

// Receipt status values, valid only for post-Byzantium receipts.
const (
	ReceiptStatusFailed     = uint64(0)
	ReceiptStatusSuccessful = uint64(1)
)

// ReceiptPartial is a receipt-trie leaf's consensus fields: exactly the
// four items covered by [PostState|Status, CumulativeGasUsed, Bloom, Logs].
// Pre-Byzantium receipts carry a 32-byte intermediate state root instead of
// a status code; PostState is set in that case and Status is unused.
type ReceiptPartial struct {
	Type              byte
	PostState         []byte // pre-Byzantium only
	HasStatus         bool
	Status            uint64
	CumulativeGasUsed uint64
	Bloom             Bloom
	Logs              []Log
}

// Succeeded reports whether a post-Byzantium receipt indicates success.
// Callers must check HasStatus first: a pre-Byzantium receipt has no
// status field at all.
func (r ReceiptPartial) Succeeded() bool {
	return r.HasStatus && r.Status == ReceiptStatusSuccessful
}

// DecodeReceiptPartial decodes a receipt-trie leaf value. A legacy
// (pre-EIP-2718) receipt's leaf is the bare RLP list; a typed receipt's
// leaf is a single type byte followed by the RLP list.
func DecodeReceiptPartial(enc []byte) (ReceiptPartial, error) {
	if len(enc) == 0 {
		return ReceiptPartial{}, rlp.ErrTruncated
	}

	r := ReceiptPartial{}
	body := enc
	if enc[0] < 0x80 {
		r.Type = enc[0]
		body = enc[1:]
	}

	_, children, err := rlp.DecodeList(body, 0, 4)
	if err != nil {
		return ReceiptPartial{}, err
	}
	if len(children) != 4 {
		return ReceiptPartial{}, rlp.ErrExpectedList
	}

	first := children[0].Payload(body)
	if len(first) == 32 {
		r.PostState = append([]byte{}, first...)
	} else {
		status, err := decodeUint64(first)
		if err != nil {
			return ReceiptPartial{}, err
		}
		r.HasStatus = true
		r.Status = status
	}

	gasUsed, err := decodeUint64(children[1].Payload(body))
	if err != nil {
		return ReceiptPartial{}, err
	}
	r.CumulativeGasUsed = gasUsed

	bloom := children[2].Payload(body)
	if len(bloom) != BloomLength {
		return ReceiptPartial{}, rlp.ErrExpectedString
	}
	copy(r.Bloom[:], bloom)

	logs, err := decodeLogs(children[3], body)
	if err != nil {
		return ReceiptPartial{}, err
	}
	r.Logs = logs

	return r, nil
}

func decodeLogs(logsHeader rlp.Header, body []byte) ([]Log, error) {
	if logsHeader.Kind != rlp.List {
		return nil, rlp.ErrExpectedList
	}
	raw := logsHeader.Raw(body)
	_, logItems, err := rlp.DecodeList(raw, 0, maxLogsPerReceipt)
	if err != nil {
		return nil, err
	}

	logs := make([]Log, 0, len(logItems))
	for _, item := range logItems {
		if item.Kind != rlp.List {
			return nil, rlp.ErrExpectedList
		}
		logRaw := item.Raw(raw)
		_, fields, err := rlp.DecodeList(logRaw, 0, 3)
		if err != nil {
			return nil, err
		}
		if len(fields) != 3 {
			return nil, rlp.ErrExpectedList
		}
		log := Log{Address: BytesToAddress(fields[0].Payload(logRaw))}

		if fields[1].Kind != rlp.List {
			return nil, rlp.ErrExpectedList
		}
		topicsRaw := fields[1].Raw(logRaw)
		_, topicItems, err := rlp.DecodeList(topicsRaw, 0, maxLogTopics)
		if err != nil {
			return nil, err
		}
		log.Topics = make([]Hash, 0, len(topicItems))
		for _, t := range topicItems {
			log.Topics = append(log.Topics, BytesToHash(t.Payload(topicsRaw)))
		}

		log.Data = append([]byte{}, fields[2].Payload(logRaw)...)
		logs = append(logs, log)
	}
	return logs, nil
}

// maxLogsPerReceipt and maxLogTopics bound the header-only decoder's list
// walk. Ethereum has no protocol-level log count limit lower than the
// block gas limit already implies, so maxLogsPerReceipt is generous rather
// than exact; maxLogTopics is the exact maximum of four topics per log.
const (
	maxLogsPerReceipt = 4096
	maxLogTopics      = 4
)

// ExtractLog returns the log at index i from a decoded receipt's log list,
// annotated with the block/transaction context the trie proof alone
// cannot supply.
func ExtractLog(r ReceiptPartial, i int, blockHash Hash, blockNumber uint64, txHash Hash, txIndex uint, logIndexBase uint) (Log, error) {
	if i < 0 || i >= len(r.Logs) {
		return Log{}, rlp.ErrValueTooLarge
	}
	log := r.Logs[i]
	log.BlockHash = blockHash
	log.BlockNumber = blockNumber
	log.TxHash = txHash
	log.TxIndex = txIndex
	log.Index = logIndexBase + uint(i)
	return log, nil
}
