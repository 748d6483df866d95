package ast

import (
	"github.com/flowregex/flowregex/bitset"
	"github.com/flowregex/flowregex/matchmask"
)

// closureFixedPoint is the shared driver behind KleeneStar and Plus: it
// repeatedly applies inner to the current frontier, accumulating every
// bit ever produced into r, until either a round adds nothing new (the
// subset test r OR next == r) or a round produces an empty frontier.
//
// Because every position lives in a fixed universe of size r.Size(), and
// each round either grows r or terminates, the loop reaches its fixed
// point in at most r.Size() rounds; the iteration limit below is purely
// defensive.
func closureFixedPoint(inner Node, text []byte, accel *matchmask.Table, r, current *bitset.Bitset) *bitset.Bitset {
	maxIters := r.Size() + 1
	for i := 0; i < maxIters; i++ {
		next := inner.Apply(current, text, accel)
		if next.IsEmpty() {
			break
		}
		merged := r.Copy()
		merged.Or(next)
		if merged.Equal(r) {
			break
		}
		r = merged
		current = next
	}
	return r
}

// KleeneStar matches Inner zero or more times.
type KleeneStar struct {
	Inner Node
}

// Apply seeds both the accumulator and the frontier with input itself,
// since zero repetitions of Inner always contributes every input position.
func (k KleeneStar) Apply(input *bitset.Bitset, text []byte, accel *matchmask.Table) *bitset.Bitset {
	return closureFixedPoint(k.Inner, text, accel, input.Copy(), input.Copy())
}

// Plus matches Inner one or more times.
type Plus struct {
	Inner Node
}

// Apply seeds both the accumulator and the frontier with one application
// of Inner, since Plus requires at least one match.
func (p Plus) Apply(input *bitset.Bitset, text []byte, accel *matchmask.Table) *bitset.Bitset {
	first := p.Inner.Apply(input, text, accel)
	return closureFixedPoint(p.Inner, text, accel, first.Copy(), first)
}
