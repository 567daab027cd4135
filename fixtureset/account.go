package fixtureset

import (
	"encoding/json"

	"github.com/holiman/uint256"

	"github.com/ethproof/verifier/ethtypes"
	"github.com/ethproof/verifier/mpt"
)

// accountJSON is the "data" object of a KindAccount fixture.
type accountJSON struct {
	Address     string   `json:"address"`
	Nonce       uint64   `json:"nonce"`
	Balance     string   `json:"balance"` // decimal
	StorageRoot string   `json:"storageRoot"`
	CodeHash    string   `json:"codeHash"`
	Proof       []string `json:"proof"`
	Root        string   `json:"root"`
}

// AccountCase holds the arguments verify.VerifyAccount takes.
type AccountCase struct {
	Address ethtypes.Address
	Account ethtypes.Account
	Proof   mpt.Proof
	Root    [32]byte
}

// DecodeAccountCase decodes a KindAccount fixture's Data field.
func DecodeAccountCase(data json.RawMessage) (AccountCase, error) {
	var raw accountJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return AccountCase{}, err
	}

	balance, err := uint256.FromDecimal(raw.Balance)
	if err != nil {
		return AccountCase{}, err
	}
	storageRoot, err := decodeHash32(raw.StorageRoot)
	if err != nil {
		return AccountCase{}, err
	}
	codeHash, err := decodeHash32(raw.CodeHash)
	if err != nil {
		return AccountCase{}, err
	}
	root, err := decodeHash32(raw.Root)
	if err != nil {
		return AccountCase{}, err
	}
	proofBytes, err := decodeHexProof(raw.Proof)
	if err != nil {
		return AccountCase{}, err
	}

	return AccountCase{
		Address: ethtypes.HexToAddress(raw.Address),
		Account: ethtypes.Account{
			Nonce:       raw.Nonce,
			Balance:     balance,
			StorageRoot: ethtypes.Hash(storageRoot),
			CodeHash:    ethtypes.Hash(codeHash),
		},
		Proof: mpt.Proof(proofBytes),
		Root:  root,
	}, nil
}
