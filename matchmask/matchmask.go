// Package matchmask precomputes, for a fixed input text, one occurrence
// bitset per byte value: bit i of the mask for byte c is set exactly when
// text[i] == c. The ast package's Literal transformer ANDs an input
// position set against the mask for its literal and shifts left by one,
// replacing an O(|input|) byte-by-byte comparison with a handful of
// word-parallel bitset operations.
//
// Building a Table is optional. Every ast.Node works correctly without one;
// a Table only changes how fast the Literal node runs, never what it
// matches. CharClass does not consult a Table: a class is a predicate over
// many byte values, and a Table built with a restricted alphabet may hold
// no mask at all for a byte the class would otherwise match, so there is no
// way to tell "this byte doesn't match the class" apart from "this byte's
// mask wasn't precomputed" without rescanning the text anyway.
package matchmask

import (
	"sort"

	"github.com/flowregex/flowregex/bitset"
	"github.com/flowregex/flowregex/internal/sparse"
)

// Table holds a precomputed occurrence bitset for each byte value that
// appears in the text it was built from. Each mask has size |text|+1,
// matching the position bitsets the ast package transforms, even though
// bit |text| is never set (no text byte occupies that index).
type Table struct {
	masks   [256]*bitset.Bitset
	present *sparse.SparseSet
	size    int
}

// Build scans text once and constructs a Table. If alphabet is non-empty,
// only byte values in alphabet get a mask; this lets a caller restrict
// acceleration to the literal bytes a specific pattern actually needs,
// rather than paying for a mask per distinct byte in the text. A nil or
// empty alphabet masks every distinct byte encountered.
func Build(text []byte, alphabet []byte) *Table {
	t := &Table{
		present: sparse.NewSparseSet(256),
		size:    len(text),
	}

	var include [256]bool
	restrict := len(alphabet) > 0
	if restrict {
		for _, c := range alphabet {
			include[c] = true
		}
	}

	for i, c := range text {
		if restrict && !include[c] {
			continue
		}
		mask := t.masks[c]
		if mask == nil {
			mask = bitset.New(len(text) + 1)
			t.masks[c] = mask
			t.present.Insert(uint32(c))
		}
		mask.Set(i)
	}

	return t
}

// Get returns the occurrence bitset for byte c and reports whether one was
// built for it. A Table built with a restricted alphabet returns ok=false
// for bytes outside that alphabet even if they occur in the text.
func (t *Table) Get(c byte) (*bitset.Bitset, bool) {
	if t == nil {
		return nil, false
	}
	mask := t.masks[c]
	return mask, mask != nil
}

// Size returns the length of the text the table was built from.
func (t *Table) Size() int {
	if t == nil {
		return 0
	}
	return t.size
}

// Alphabet returns the ascending, duplicate-free list of byte values this
// table has a mask for.
func (t *Table) Alphabet() []byte {
	if t == nil {
		return nil
	}
	values := t.present.Values()
	out := make([]byte, len(values))
	for i, v := range values {
		out[i] = byte(v)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
