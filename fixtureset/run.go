package fixtureset

import (
	"fmt"

	"github.com/ethproof/verifier/verify"
)

// Run decodes a fixture's Data field for its Kind and calls the matching
// verify entry point, returning whatever error that call returns.
func Run(f Fixture) error {
	switch f.Kind {
	case KindAccount:
		c, err := DecodeAccountCase(f.Data)
		if err != nil {
			return err
		}
		return verify.VerifyAccount(c.Account, c.Address, c.Proof, c.Root)
	case KindStorage:
		c, err := DecodeStorageCase(f.Data)
		if err != nil {
			return err
		}
		return verify.VerifyStorageProof(c.Slot, c.Value, c.Proof, c.StorageHash)
	case KindTransaction:
		c, err := DecodeTransactionCase(f.Data)
		if err != nil {
			return err
		}
		return verify.VerifyTransactionProof(c.Index, c.Type, c.Transaction, c.Proof, c.Root)
	case KindReceipt:
		c, err := DecodeReceiptCase(f.Data)
		if err != nil {
			return err
		}
		return verify.VerifyReceiptProof(c.BlockNumber, c.Index, c.Type, c.Receipt, c.Proof, c.Root)
	case KindHeader:
		c, err := DecodeHeaderCase(f.Data)
		if err != nil {
			return err
		}
		return verify.VerifyHeader(c.ChainID, c.Header, c.HeaderRLP)
	default:
		return fmt.Errorf("fixtureset: unknown kind %q", f.Kind)
	}
}
