package fixtureset

import (
	"encoding/json"

	"github.com/ethproof/verifier/ethtypes"
)

// headerJSON is the "data" object of a KindHeader fixture. Post-fork fields
// are pointers so an unset field decodes to nil, matching HeaderPartial's
// own use of nil to mean "not present at this block".
type headerJSON struct {
	ChainID     uint64 `json:"chainId"`
	HeaderRLP   string `json:"headerRlp"`
	ExpectedHash string `json:"expectedHash"`

	ParentHash  string `json:"parentHash"`
	UncleHash   string `json:"uncleHash"`
	Coinbase    string `json:"coinbase"`
	Root        string `json:"root"`
	TxHash      string `json:"txHash"`
	ReceiptHash string `json:"receiptHash"`
	Bloom       string `json:"bloom"`
	Difficulty  string `json:"difficulty,omitempty"`
	Number      string `json:"number"`
	GasLimit    uint64 `json:"gasLimit"`
	GasUsed     uint64 `json:"gasUsed"`
	Time        uint64 `json:"time"`
	Extra       string `json:"extra,omitempty"`
	MixDigest   string `json:"mixDigest"`
	Nonce       string `json:"nonce"`

	BaseFee *string `json:"baseFee,omitempty"`

	WithdrawalsHash *string `json:"withdrawalsHash,omitempty"`

	BlobGasUsed      *uint64 `json:"blobGasUsed,omitempty"`
	ExcessBlobGas    *uint64 `json:"excessBlobGas,omitempty"`
	ParentBeaconRoot *string `json:"parentBeaconRoot,omitempty"`
}

// HeaderCase holds the arguments verify.VerifyHeader takes.
type HeaderCase struct {
	ChainID   uint64
	Header    ethtypes.HeaderPartial
	HeaderRLP []byte
}

// DecodeHeaderCase decodes a KindHeader fixture's Data field.
func DecodeHeaderCase(data json.RawMessage) (HeaderCase, error) {
	var raw headerJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return HeaderCase{}, err
	}

	headerRLP, err := decodeHex(raw.HeaderRLP)
	if err != nil {
		return HeaderCase{}, err
	}
	expectedHash, err := decodeHash32(raw.ExpectedHash)
	if err != nil {
		return HeaderCase{}, err
	}

	h := ethtypes.HeaderPartial{
		ParentHash:  ethtypes.HexToHash(raw.ParentHash),
		UncleHash:   ethtypes.HexToHash(raw.UncleHash),
		Coinbase:    ethtypes.HexToAddress(raw.Coinbase),
		Root:        ethtypes.HexToHash(raw.Root),
		TxHash:      ethtypes.HexToHash(raw.TxHash),
		ReceiptHash: ethtypes.HexToHash(raw.ReceiptHash),
		Number:      nil,
		GasLimit:    raw.GasLimit,
		GasUsed:     raw.GasUsed,
		Time:        raw.Time,
		MixDigest:   ethtypes.HexToHash(raw.MixDigest),

		ExpectedHash: ethtypes.Hash(expectedHash),
	}

	if raw.Bloom != "" {
		bloomBytes, err := decodeHex(raw.Bloom)
		if err != nil {
			return HeaderCase{}, err
		}
		copy(h.Bloom[:], bloomBytes)
	}
	if raw.Difficulty != "" {
		if h.Difficulty, err = decodeHex(raw.Difficulty); err != nil {
			return HeaderCase{}, err
		}
	}
	if h.Number, err = decodeHex(raw.Number); err != nil {
		return HeaderCase{}, err
	}
	if raw.Extra != "" {
		if h.Extra, err = decodeHex(raw.Extra); err != nil {
			return HeaderCase{}, err
		}
	}
	nonceBytes, err := decodeHex(raw.Nonce)
	if err != nil {
		return HeaderCase{}, err
	}
	copy(h.Nonce[:], nonceBytes)

	if raw.BaseFee != nil {
		bf, err := decodeHex(*raw.BaseFee)
		if err != nil {
			return HeaderCase{}, err
		}
		h.BaseFee = &bf
	}
	if raw.WithdrawalsHash != nil {
		wh := ethtypes.HexToHash(*raw.WithdrawalsHash)
		h.WithdrawalsHash = &wh
	}
	if raw.BlobGasUsed != nil {
		v := *raw.BlobGasUsed
		h.BlobGasUsed = &v
	}
	if raw.ExcessBlobGas != nil {
		v := *raw.ExcessBlobGas
		h.ExcessBlobGas = &v
	}
	if raw.ParentBeaconRoot != nil {
		pbr := ethtypes.HexToHash(*raw.ParentBeaconRoot)
		h.ParentBeaconRoot = &pbr
	}

	return HeaderCase{
		ChainID:   raw.ChainID,
		Header:    h,
		HeaderRLP: headerRLP,
	}, nil
}
