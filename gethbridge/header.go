package gethbridge

import (
	"encoding/json"

	gethcommon "github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"

	"github.com/ethproof/verifier/ethtypes"
)

// blockHeaderJSON mirrors the header fields of an eth_getBlockByHash
// result. Fields introduced by London/Shanghai/Cancun are pointers so a
// pre-fork block's absent field decodes to nil rather than a zero value.
type blockHeaderJSON struct {
	Hash             gethcommon.Hash    `json:"hash"`
	ParentHash       gethcommon.Hash    `json:"parentHash"`
	Sha3Uncles       gethcommon.Hash    `json:"sha3Uncles"`
	Miner            gethcommon.Address `json:"miner"`
	StateRoot        gethcommon.Hash    `json:"stateRoot"`
	TransactionsRoot gethcommon.Hash    `json:"transactionsRoot"`
	ReceiptsRoot     gethcommon.Hash    `json:"receiptsRoot"`
	LogsBloom        hexutil.Bytes      `json:"logsBloom"`
	Difficulty       *hexutil.Big       `json:"difficulty"`
	Number           *hexutil.Big       `json:"number"`
	GasLimit         hexutil.Uint64     `json:"gasLimit"`
	GasUsed          hexutil.Uint64     `json:"gasUsed"`
	Timestamp        hexutil.Uint64     `json:"timestamp"`
	ExtraData        hexutil.Bytes      `json:"extraData"`
	MixHash          gethcommon.Hash    `json:"mixHash"`
	Nonce            hexutil.Bytes      `json:"nonce"`

	BaseFeePerGas *hexutil.Big `json:"baseFeePerGas"`

	WithdrawalsRoot *gethcommon.Hash `json:"withdrawalsRoot"`

	BlobGasUsed      *hexutil.Uint64  `json:"blobGasUsed"`
	ExcessBlobGas    *hexutil.Uint64  `json:"excessBlobGas"`
	ParentBeaconRoot *gethcommon.Hash `json:"parentBeaconBlockRoot"`
}

// DecodeBlockHeader parses a raw eth_getBlockByHash JSON-RPC result into
// an ethtypes.HeaderPartial, with ExpectedHash set to the node's reported
// block hash so a caller can pass the result straight to
// verify.VerifyHeader alongside the block's canonical RLP encoding.
func DecodeBlockHeader(data []byte) (ethtypes.HeaderPartial, error) {
	var raw blockHeaderJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return ethtypes.HeaderPartial{}, err
	}

	h := ethtypes.HeaderPartial{
		ParentHash:  toHash(raw.ParentHash),
		UncleHash:   toHash(raw.Sha3Uncles),
		Coinbase:    toAddress(raw.Miner),
		Root:        toHash(raw.StateRoot),
		TxHash:      toHash(raw.TransactionsRoot),
		ReceiptHash: toHash(raw.ReceiptsRoot),
		Extra:       raw.ExtraData,
		MixDigest:   toHash(raw.MixHash),
		GasLimit:    uint64(raw.GasLimit),
		GasUsed:     uint64(raw.GasUsed),
		Time:        uint64(raw.Timestamp),

		ExpectedHash: toHash(raw.Hash),
	}
	copy(h.Bloom[:], raw.LogsBloom)
	copy(h.Nonce[:], raw.Nonce)

	if raw.Difficulty != nil {
		h.Difficulty = (*raw.Difficulty).ToInt().Bytes()
	}
	if raw.Number != nil {
		h.Number = (*raw.Number).ToInt().Bytes()
	}
	if raw.BaseFeePerGas != nil {
		bf := (*raw.BaseFeePerGas).ToInt().Bytes()
		h.BaseFee = &bf
	}
	if raw.WithdrawalsRoot != nil {
		wh := toHash(*raw.WithdrawalsRoot)
		h.WithdrawalsHash = &wh
	}
	if raw.BlobGasUsed != nil {
		v := uint64(*raw.BlobGasUsed)
		h.BlobGasUsed = &v
	}
	if raw.ExcessBlobGas != nil {
		v := uint64(*raw.ExcessBlobGas)
		h.ExcessBlobGas = &v
	}
	if raw.ParentBeaconRoot != nil {
		pbr := toHash(*raw.ParentBeaconRoot)
		h.ParentBeaconRoot = &pbr
	}

	return h, nil
}
