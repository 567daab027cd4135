package gethbridge

import (
	"encoding/json"

	gethcommon "github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/holiman/uint256"

	"github.com/ethproof/verifier/ethtypes"
	"github.com/ethproof/verifier/mpt"
)

// storageProofJSON mirrors one entry of eth_getProof's storageProof array.
type storageProofJSON struct {
	Key   string   `json:"key"`
	Value string   `json:"value"`
	Proof []string `json:"proof"`
}

// accountProofJSON mirrors the JSON object eth_getProof returns.
type accountProofJSON struct {
	Address      gethcommon.Address `json:"address"`
	AccountProof []string           `json:"accountProof"`
	Balance      *hexutil.Big       `json:"balance"`
	CodeHash     gethcommon.Hash    `json:"codeHash"`
	Nonce        hexutil.Uint64     `json:"nonce"`
	StorageHash  gethcommon.Hash    `json:"storageHash"`
	StorageProof []storageProofJSON `json:"storageProof"`
}

// StorageSlotProof is one decoded storageProof entry: the slot key, its
// claimed value (big-endian bytes exactly as the response's hex string
// gives them, neither trimmed nor padded; verify.VerifyStorageProof accepts
// up to 32 bytes and left-pads them), and the trie proof for it.
type StorageSlotProof struct {
	Slot  ethtypes.Hash
	Value []byte
	Proof mpt.Proof
}

// AccountProof is the decoded, ethtypes/mpt-native form of an
// eth_getProof response.
type AccountProof struct {
	Address      ethtypes.Address
	Account      ethtypes.Account
	Proof        mpt.Proof
	StorageHash  ethtypes.Hash
	StorageProof []StorageSlotProof
}

// DecodeAccountProof parses a raw eth_getProof JSON-RPC result.
func DecodeAccountProof(data []byte) (AccountProof, error) {
	var raw accountProofJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return AccountProof{}, err
	}

	proof, err := hexProof(raw.AccountProof)
	if err != nil {
		return AccountProof{}, err
	}

	balance := new(uint256.Int)
	if raw.Balance != nil {
		balance, _ = uint256.FromBig((*raw.Balance).ToInt())
	}

	out := AccountProof{
		Address: toAddress(raw.Address),
		Account: ethtypes.Account{
			Nonce:       uint64(raw.Nonce),
			Balance:     balance,
			StorageRoot: toHash(raw.StorageHash),
			CodeHash:    toHash(raw.CodeHash),
		},
		Proof:       proof,
		StorageHash: toHash(raw.StorageHash),
	}

	out.StorageProof = make([]StorageSlotProof, len(raw.StorageProof))
	for i, sp := range raw.StorageProof {
		slotProof, err := hexProof(sp.Proof)
		if err != nil {
			return AccountProof{}, err
		}
		var slot ethtypes.Hash
		if b, err := hexutil.Decode(sp.Key); err == nil {
			slot = ethtypes.BytesToHash(b)
		}
		value, err := hexutil.Decode(sp.Value)
		if err != nil {
			return AccountProof{}, err
		}
		out.StorageProof[i] = StorageSlotProof{
			Slot:  slot,
			Value: value,
			Proof: slotProof,
		}
	}

	return out, nil
}
