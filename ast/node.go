// Package ast implements the FlowRegex abstract syntax tree: a small,
// immutable tree of transformers. Every node variant turns a bitset of
// reachable end-positions into the bitset reachable after consuming one
// more regex element. Matching a whole pattern is nothing but calling
// Apply on the root node with a seed bitset and reading back the result.
//
// Dispatch is by concrete type rather than an explicit tag, following the
// tagged-variant-plus-switch design the source model calls for: each node
// type implements Node directly instead of routing through a function
// pointer and payload struct.
package ast

import (
	"github.com/flowregex/flowregex/bitset"
	"github.com/flowregex/flowregex/matchmask"
)

// Node is the transformer contract every AST variant implements. input is
// the set of end-positions reachable before this node; text is the
// subject being matched against; accel, if non-nil, is consulted by nodes
// that can use it (currently only Literal) to avoid a byte-by-byte scan. accel never changes the result, only how fast it is
// computed.
type Node interface {
	Apply(input *bitset.Bitset, text []byte, accel *matchmask.Table) *bitset.Bitset
}
