// Package verify implements the domain entry points that check a decoded
// Ethereum record against a trusted root, by deriving the record's trie
// key, resolving the proof with mpt.ResolveMerkleProof, and comparing the
// resolved leaf's fields one at a time.
package verify

import "errors"

var (
	// ErrNonceMismatch is returned when an account's nonce disagrees with
	// the value carried in the proven trie leaf.
	ErrNonceMismatch = errors.New("verify: Nonce")

	// ErrBalanceMismatch is returned when an account's balance disagrees
	// with the value carried in the proven trie leaf.
	ErrBalanceMismatch = errors.New("verify: Balance")

	// ErrStorageRootMismatch is returned when an account's storage root
	// disagrees with the value carried in the proven trie leaf.
	ErrStorageRootMismatch = errors.New("verify: Storage Root")

	// ErrCodeHashMismatch is returned when an account's code hash
	// disagrees with the value carried in the proven trie leaf.
	ErrCodeHashMismatch = errors.New("verify: Code Hash")

	// ErrStorageValueMismatch is returned when a storage slot's value
	// disagrees with the value carried in the proven trie leaf.
	ErrStorageValueMismatch = errors.New("verify: Storage Value")

	// ErrTxTypeMismatch is returned when the caller-supplied tx_type
	// disagrees with the type byte actually present in the trie leaf.
	ErrTxTypeMismatch = errors.New("verify: transaction type does not match proof leaf")

	// ErrTxFieldMismatch is returned when a transaction field disagrees
	// with the value carried in the proven trie leaf.
	ErrTxFieldMismatch = errors.New("verify: transaction field mismatch")

	// ErrStatusMissing is returned when a post-Byzantium receipt's proof
	// leaf carries a status field but the caller's ReceiptPartial has none.
	ErrStatusMissing = errors.New("verify: Status is missing")

	// ErrStateRootMissing is returned when a pre-Byzantium receipt's proof
	// leaf carries a state root but the caller's ReceiptPartial has none.
	ErrStateRootMissing = errors.New("verify: State Root is missing")

	// ErrReceiptPostStateMismatch is returned when a pre-Byzantium
	// receipt's intermediate state root disagrees with the value carried
	// in the proven trie leaf.
	ErrReceiptPostStateMismatch = errors.New("verify: Post State")

	// ErrStatusMismatch is returned when a receipt's status disagrees with
	// the value carried in the proven trie leaf.
	ErrStatusMismatch = errors.New("verify: Status")

	// ErrCumulativeGasMismatch is returned when a receipt's cumulative gas
	// used disagrees with the value carried in the proven trie leaf.
	ErrCumulativeGasMismatch = errors.New("verify: Cumulative Gas Used")

	// ErrBloomMismatch is returned when a receipt's logs bloom disagrees
	// with the value carried in the proven trie leaf.
	ErrBloomMismatch = errors.New("verify: Logs Bloom")

	// ErrLogIndexOutOfRange is returned by ExtractLog when the requested
	// index is outside the receipt's log list.
	ErrLogIndexOutOfRange = errors.New("verify: log index out of range")

	// ErrHeaderFieldCount is returned when a header's RLP list arity does
	// not match the chain's expected count at the given block number.
	ErrHeaderFieldCount = errors.New("verify: Invalid number of fields in header RLP")

	// ErrBlockNumberMismatch is returned when a header's number disagrees
	// with the value carried in header_rlp.
	ErrBlockNumberMismatch = errors.New("verify: Number")

	// ErrStateRootFieldMismatch is returned when a header's state root
	// disagrees with the value carried in header_rlp.
	ErrStateRootFieldMismatch = errors.New("verify: State Root")

	// ErrTransactionsRootMismatch is returned when a header's transactions
	// root disagrees with the value carried in header_rlp.
	ErrTransactionsRootMismatch = errors.New("verify: Transactions Root")

	// ErrReceiptsRootMismatch is returned when a header's receipts root
	// disagrees with the value carried in header_rlp.
	ErrReceiptsRootMismatch = errors.New("verify: Receipts Root")

	// ErrWithdrawalsRootMismatch is returned when a post-Shanghai header's
	// withdrawals root disagrees with the value carried in header_rlp, or
	// is absent from either side while the other has one.
	ErrWithdrawalsRootMismatch = errors.New("verify: Withdrawals Root")

	// ErrBlockHashMismatch is returned when keccak256(header_rlp) does not
	// equal the caller's claimed block hash.
	ErrBlockHashMismatch = errors.New("verify: Block Hash does not Match")

	// ErrHeaderTooLarge is returned when header_rlp exceeds
	// forkparams.MaxHeaderSize.
	ErrHeaderTooLarge = errors.New("verify: header RLP exceeds maximum size")
)
