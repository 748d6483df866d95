package ast

import (
	"github.com/flowregex/flowregex/bitset"
	"github.com/flowregex/flowregex/matchmask"
)

// Literal matches a single fixed byte.
type Literal struct {
	Char byte
}

// Apply sets bit p+1 in the output whenever bit p is set in input, p is a
// valid text index, and text[p] equals the literal's byte.
func (l Literal) Apply(input *bitset.Bitset, text []byte, accel *matchmask.Table) *bitset.Bitset {
	n := len(text)

	if mask, ok := accel.Get(l.Char); ok {
		return input.MaskedShiftLeft(mask)
	}

	out := bitset.New(input.Size())
	for _, p := range input.Enumerate() {
		if p < n && text[p] == l.Char {
			out.Set(p + 1)
		}
	}
	return out
}
