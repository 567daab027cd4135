// Package forkparams holds per-chain hard-fork activation schedules. The
// verify package looks up "how many fields does this block's header have"
// and "is Byzantium or Shanghai active" in Mainnet; a schedule for another
// chain can be built with NewSchedule.
package forkparams

import "sort"

// HeaderFieldCount values for the four header field-layout eras this
// module decodes. Later forks only ever append fields.
const (
	HeaderFieldsPreLondon  = 15
	HeaderFieldsLondon     = 16
	HeaderFieldsShanghai   = 17
	HeaderFieldsCancun     = 20
	MaxHeaderFieldsCount   = HeaderFieldsCancun
	MaxHeaderSize          = 709
)

// Fork identifies one of the hard forks this schedule tracks, in
// activation order.
type Fork int

const (
	Byzantium Fork = iota
	London
	Shanghai
	Cancun
)

// activation is one fork's block number and the header field count it
// introduces.
type activation struct {
	fork        Fork
	block       uint64
	fieldCount  int
}

// Schedule is an ordered list of fork activation blocks for one chain,
// used to answer "how many header fields does block N have" and "has
// fork F happened by block N".
type Schedule struct {
	chainID     uint64
	activations []activation
}

// NewSchedule builds a Schedule from an unordered set of fork activation
// blocks, sorting them by block number.
func NewSchedule(chainID uint64, byzantium, london, shanghai, cancun uint64) *Schedule {
	acts := []activation{
		{fork: Byzantium, block: byzantium, fieldCount: HeaderFieldsPreLondon},
		{fork: London, block: london, fieldCount: HeaderFieldsLondon},
		{fork: Shanghai, block: shanghai, fieldCount: HeaderFieldsShanghai},
		{fork: Cancun, block: cancun, fieldCount: HeaderFieldsCancun},
	}
	sort.Slice(acts, func(i, j int) bool { return acts[i].block < acts[j].block })
	return &Schedule{chainID: chainID, activations: acts}
}

// ChainID returns the chain ID this schedule was built for.
func (s *Schedule) ChainID() uint64 { return s.chainID }

// HeaderFieldCount returns the expected RLP list arity of a block header
// at the given block number, i.e. get_header_fields_count(chain_id, number)
// specialized to this schedule.
func (s *Schedule) HeaderFieldCount(number uint64) int {
	count := HeaderFieldsPreLondon
	for _, a := range s.activations {
		if number >= a.block {
			count = a.fieldCount
		}
	}
	return count
}

// ActiveAt reports whether the named fork has activated by the given
// block number.
func (s *Schedule) ActiveAt(f Fork, number uint64) bool {
	for _, a := range s.activations {
		if a.fork == f {
			return number >= a.block
		}
	}
	return false
}

// IsByzantiumOrLater reports whether receipts at this block use the
// post-Byzantium status byte rather than an intermediate state root.
func (s *Schedule) IsByzantiumOrLater(number uint64) bool {
	return s.ActiveAt(Byzantium, number)
}

// Mainnet is the fork schedule for Ethereum mainnet (chain ID 1), using
// the block numbers spec.md §6.2 lists.
var Mainnet = NewSchedule(1,
	4_370_000,  // Byzantium
	12_965_000, // London
	17_034_870, // Shanghai
	19_426_587, // Cancun
)
