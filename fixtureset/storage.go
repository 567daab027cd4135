package fixtureset

import (
	"encoding/json"

	"github.com/ethproof/verifier/mpt"
)

// storageJSON is the "data" object of a KindStorage fixture.
type storageJSON struct {
	Slot        string   `json:"slot"`
	Value       string   `json:"value"`
	Proof       []string `json:"proof"`
	StorageHash string   `json:"storageHash"`
}

// StorageCase holds the arguments verify.VerifyStorageProof takes.
type StorageCase struct {
	Slot        [32]byte
	Value       []byte
	Proof       mpt.Proof
	StorageHash [32]byte
}

// DecodeStorageCase decodes a KindStorage fixture's Data field.
func DecodeStorageCase(data json.RawMessage) (StorageCase, error) {
	var raw storageJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return StorageCase{}, err
	}

	slot, err := decodeHash32(raw.Slot)
	if err != nil {
		return StorageCase{}, err
	}
	storageHash, err := decodeHash32(raw.StorageHash)
	if err != nil {
		return StorageCase{}, err
	}
	value, err := decodeHex(raw.Value)
	if err != nil {
		return StorageCase{}, err
	}
	proofBytes, err := decodeHexProof(raw.Proof)
	if err != nil {
		return StorageCase{}, err
	}

	return StorageCase{
		Slot:        slot,
		Value:       value,
		Proof:       mpt.Proof(proofBytes),
		StorageHash: storageHash,
	}, nil
}
