package ast

import (
	"github.com/flowregex/flowregex/bitset"
	"github.com/flowregex/flowregex/matchmask"
)

// AnyChar matches any byte except a newline, mirroring regexp's "." without
// the /s flag.
type AnyChar struct{}

// Apply sets bit p+1 whenever bit p is set in input, p is a valid text
// index, and text[p] is not '\n'.
func (AnyChar) Apply(input *bitset.Bitset, text []byte, _ *matchmask.Table) *bitset.Bitset {
	n := len(text)
	out := bitset.New(input.Size())
	for _, p := range input.Enumerate() {
		if p < n && text[p] != '\n' {
			out.Set(p + 1)
		}
	}
	return out
}
