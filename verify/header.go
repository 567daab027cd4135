package verify

import (
	"bytes"

	"github.com/ethproof/verifier/ethtypes"
	"github.com/ethproof/verifier/forkparams"
	"github.com/ethproof/verifier/rlp"
	"github.com/ethproof/verifier/xkeccak"
)

// VerifyHeader checks header_rlp against the caller-supplied header, whose
// Number/Root/TxHash/ReceiptHash/WithdrawalsHash/ExpectedHash fields carry
// independently known values to check the decoded header against.
// chainID selects the fork schedule (currently only Ethereum mainnet's is
// wired) that determines the expected field count at the header's block
// number.
func VerifyHeader(chainID uint64, header ethtypes.HeaderPartial, headerRLP []byte) error {
	if len(headerRLP) > forkparams.MaxHeaderSize {
		return ErrHeaderTooLarge
	}

	got, err := ethtypes.DecodeHeader(headerRLP)
	if err != nil {
		return err
	}

	number := beBytesToUint64(header.Number)

	// get_header_fields_count(chain_id, number) per spec.md §6.1: this
	// module only carries a schedule for mainnet (forkparams.Mainnet);
	// other chains "may differ" and are accepted at whatever field count
	// they decode to rather than guessed against mainnet's schedule.
	if chainID == forkparams.Mainnet.ChainID() {
		if want := forkparams.Mainnet.HeaderFieldCount(number); got.FieldCount() != want {
			return ErrHeaderFieldCount
		}
	}

	if !bytes.Equal(header.Number, got.Number) {
		return ErrBlockNumberMismatch
	}
	if err := rlp.AssertEqBytes32Exact(header.Root, got.Root, "State Root"); err != nil {
		return ErrStateRootFieldMismatch
	}
	if err := rlp.AssertEqBytes32Exact(header.TxHash, got.TxHash, "Transactions Root"); err != nil {
		return ErrTransactionsRootMismatch
	}
	if err := rlp.AssertEqBytes32Exact(header.ReceiptHash, got.ReceiptHash, "Receipts Root"); err != nil {
		return ErrReceiptsRootMismatch
	}

	// Shanghai activation for unmodeled chains is read off the decoded
	// header itself (field count >= 17 implies a withdrawals root field)
	// rather than guessed against mainnet's block numbers.
	shanghai := got.WithdrawalsHash != nil
	if chainID == forkparams.Mainnet.ChainID() {
		shanghai = forkparams.Mainnet.ActiveAt(forkparams.Shanghai, number)
	}
	if shanghai {
		if header.WithdrawalsHash == nil || got.WithdrawalsHash == nil {
			return ErrWithdrawalsRootMismatch
		}
		if *header.WithdrawalsHash != *got.WithdrawalsHash {
			return ErrWithdrawalsRootMismatch
		}
	}

	if xkeccak.Sum256(headerRLP) != header.ExpectedHash {
		return ErrBlockHashMismatch
	}
	return nil
}

func beBytesToUint64(b []byte) uint64 {
	var v uint64
	for _, x := range b {
		v = v<<8 | uint64(x)
	}
	return v
}
