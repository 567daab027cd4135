package fixtureset

import (
	"encoding/json"

	"github.com/ethproof/verifier/ethtypes"
	"github.com/ethproof/verifier/mpt"
)

// transactionJSON is the "data" object of a KindTransaction fixture. Hex
// fields left empty decode to nil, matching TransactionPartial's use of nil
// to mean "absent from this transaction type's envelope".
type transactionJSON struct {
	Index    uint64   `json:"index"`
	Type     byte     `json:"type"`
	ChainID  string   `json:"chainId,omitempty"`
	Nonce    uint64   `json:"nonce"`
	GasPrice string   `json:"gasPrice,omitempty"`
	GasTip   string   `json:"gasTip,omitempty"`
	GasFee   string   `json:"gasFee,omitempty"`
	Gas      uint64   `json:"gas"`
	To       string   `json:"to,omitempty"`
	Value    string   `json:"value,omitempty"`
	Data     string   `json:"data,omitempty"`
	Proof    []string `json:"proof"`
	Root     string   `json:"root"`
}

// TransactionCase holds the arguments verify.VerifyTransactionProof takes.
type TransactionCase struct {
	Index       uint64
	Type        uint8
	Transaction ethtypes.TransactionPartial
	Proof       mpt.Proof
	Root        [32]byte
}

// DecodeTransactionCase decodes a KindTransaction fixture's Data field.
func DecodeTransactionCase(data json.RawMessage) (TransactionCase, error) {
	var raw transactionJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return TransactionCase{}, err
	}

	root, err := decodeHash32(raw.Root)
	if err != nil {
		return TransactionCase{}, err
	}
	proofBytes, err := decodeHexProof(raw.Proof)
	if err != nil {
		return TransactionCase{}, err
	}

	tx := ethtypes.TransactionPartial{
		Type:  raw.Type,
		Nonce: raw.Nonce,
		Gas:   raw.Gas,
	}
	if raw.ChainID != "" {
		if tx.ChainID, err = decodeHex(raw.ChainID); err != nil {
			return TransactionCase{}, err
		}
	}
	if raw.GasPrice != "" {
		if tx.GasPrice, err = decodeHex(raw.GasPrice); err != nil {
			return TransactionCase{}, err
		}
	}
	if raw.GasTip != "" {
		if tx.GasTip, err = decodeHex(raw.GasTip); err != nil {
			return TransactionCase{}, err
		}
	}
	if raw.GasFee != "" {
		if tx.GasFee, err = decodeHex(raw.GasFee); err != nil {
			return TransactionCase{}, err
		}
	}
	if raw.Value != "" {
		if tx.Value, err = decodeHex(raw.Value); err != nil {
			return TransactionCase{}, err
		}
	}
	if raw.Data != "" {
		if tx.Data, err = decodeHex(raw.Data); err != nil {
			return TransactionCase{}, err
		}
	}
	if raw.To != "" {
		addr := ethtypes.HexToAddress(raw.To)
		tx.To = &addr
	}

	return TransactionCase{
		Index:       raw.Index,
		Type:        raw.Type,
		Transaction: tx,
		Proof:       mpt.Proof(proofBytes),
		Root:        root,
	}, nil
}
