package bitset

import "golang.org/x/sys/cpu"

// useWideShift selects the word-batch width for MaskedShiftLeft at package
// init. Both code paths compute bit-for-bit identical output; this is a
// throughput tuning knob, never a semantic one. Mirrors the dispatch
// pattern the wider regex engine this package was split out of uses in its
// simd package (cpu.X86.HasAVX2-gated selection), minus the assembly that
// package carries and this one, being pure bit-twiddling rather than byte
// search, has no use for.
var useWideShift = cpu.X86.HasAVX2

// MaskedShiftLeft computes output = (b AND mask) << 1, propagating carry
// across 64-bit word boundaries, and returns a new Bitset the same size as
// b. This is the accelerated-path primitive behind the Literal transformer:
// given input positions b and a MatchMask occurrence bitset for some byte,
// it produces exactly the positions one past every input position whose
// text byte matched — the same result the general enumerate-and-compare
// loop computes, at word-parallel speed.
func (b *Bitset) MaskedShiftLeft(mask *Bitset) *Bitset {
	if b == nil {
		return nil
	}
	if useWideShift {
		return b.maskedShiftLeftWide(mask)
	}
	return b.maskedShiftLeftNarrow(mask)
}

func (b *Bitset) maskedShiftLeftNarrow(mask *Bitset) *Bitset {
	out := New(b.size)
	n := len(b.words)
	if mask != nil && len(mask.words) < n {
		n = len(mask.words)
	}
	if mask == nil {
		n = 0
	}
	var carry uint64
	for i := 0; i < n; i++ {
		masked := b.words[i] & mask.words[i]
		out.words[i] = (masked << 1) | carry
		carry = masked >> 63
	}
	if carry != 0 && n < len(out.words) {
		out.words[n] |= carry
	}
	return out
}

// maskedShiftLeftWide computes the same result as maskedShiftLeftNarrow but
// walks the word slice four at a time, trading a little code size for fewer
// loop-branch mispredicts on CPUs with wide execution ports.
func (b *Bitset) maskedShiftLeftWide(mask *Bitset) *Bitset {
	out := New(b.size)
	n := len(b.words)
	if mask != nil && len(mask.words) < n {
		n = len(mask.words)
	}
	if mask == nil {
		n = 0
	}

	var carry uint64
	i := 0
	for ; i+4 <= n; i += 4 {
		m0 := b.words[i] & mask.words[i]
		m1 := b.words[i+1] & mask.words[i+1]
		m2 := b.words[i+2] & mask.words[i+2]
		m3 := b.words[i+3] & mask.words[i+3]

		out.words[i] = (m0 << 1) | carry
		carry = m0 >> 63
		out.words[i+1] = (m1 << 1) | carry
		carry = m1 >> 63
		out.words[i+2] = (m2 << 1) | carry
		carry = m2 >> 63
		out.words[i+3] = (m3 << 1) | carry
		carry = m3 >> 63
	}
	for ; i < n; i++ {
		masked := b.words[i] & mask.words[i]
		out.words[i] = (masked << 1) | carry
		carry = masked >> 63
	}
	if carry != 0 && n < len(out.words) {
		out.words[n] |= carry
	}
	return out
}
