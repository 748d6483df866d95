package ast

import (
	"github.com/flowregex/flowregex/bitset"
	"github.com/flowregex/flowregex/matchmask"
)

// Concat applies Left then Right in sequence: the end-positions reachable
// after Left become the start-positions fed into Right.
type Concat struct {
	Left, Right Node
}

// Apply computes Right.Apply(Left.Apply(input)).
func (c Concat) Apply(input *bitset.Bitset, text []byte, accel *matchmask.Table) *bitset.Bitset {
	mid := c.Left.Apply(input, text, accel)
	return c.Right.Apply(mid, text, accel)
}

// Alternation matches whatever either branch matches, both evaluated on
// the same input bitset.
type Alternation struct {
	Left, Right Node
}

// Apply returns Left.Apply(input) OR Right.Apply(input).
func (a Alternation) Apply(input *bitset.Bitset, text []byte, accel *matchmask.Table) *bitset.Bitset {
	left := a.Left.Apply(input, text, accel)
	right := a.Right.Apply(input, text, accel)
	left.Or(right)
	return left
}

// Question matches zero or one application of Inner.
type Question struct {
	Inner Node
}

// Apply returns input OR Inner.Apply(input).
func (q Question) Apply(input *bitset.Bitset, text []byte, accel *matchmask.Table) *bitset.Bitset {
	out := input.Copy()
	inner := q.Inner.Apply(input, text, accel)
	out.Or(inner)
	return out
}
