package ast

import (
	"github.com/itgcl/ahocorasick"

	"github.com/flowregex/flowregex/bitset"
	"github.com/flowregex/flowregex/matchmask"
)

// ClassKind identifies which built-in predicate a CharClass tests, or
// Custom for an explicit literal list.
type ClassKind int

const (
	// ClassDigit matches ASCII digits 0-9 (escape \d; negated via Negated for \D).
	ClassDigit ClassKind = iota
	// ClassSpace matches ASCII whitespace (escape \s; negated for \S).
	ClassSpace
	// ClassWord matches ASCII word characters: letters, digits, underscore (escape \w; negated for \W).
	ClassWord
	// ClassCustom matches membership in an explicit literal byte list, no range expansion.
	ClassCustom
)

// CharClass matches a single byte against a built-in ASCII predicate or an
// explicit literal list, optionally negated.
//
// Custom classes are ASCII-only and test literal membership, never
// character ranges — ranges are an explicit non-goal (see the parser's
// escape grammar, which only recognizes the shorthand classes).
type CharClass struct {
	Kind     ClassKind
	Negated  bool
	Literals []byte // only meaningful when Kind == ClassCustom

	custom *ahocorasick.Matcher // built from Literals by NewCustomCharClass
}

// NewCustomCharClass builds a CharClass that matches membership in
// literals, using an Aho-Corasick automaton over one single-byte pattern
// per distinct listed byte so that membership testing stays O(1) per byte
// regardless of how many literals are listed.
func NewCustomCharClass(literals []byte, negated bool) *CharClass {
	dict := make([][]byte, len(literals))
	for i, c := range literals {
		dict[i] = []byte{c}
	}
	return &CharClass{
		Kind:     ClassCustom,
		Negated:  negated,
		Literals: literals,
		custom:   ahocorasick.NewMatcher(dict),
	}
}

// Apply sets bit p+1 whenever bit p is set in input, p is a valid text
// index, and the class predicate holds for text[p] (XOR Negated). Unlike
// Literal, Apply never consults accel: a class matches many byte values,
// and a Table built over a restricted alphabet may hold no mask at all for
// a byte the class matches, indistinguishable from a byte the class
// doesn't — see matchmask's package doc.
func (c *CharClass) Apply(input *bitset.Bitset, text []byte, _ *matchmask.Table) *bitset.Bitset {
	n := len(text)
	out := bitset.New(input.Size())
	for _, p := range input.Enumerate() {
		if p < n && (c.matches(text[p]) != c.Negated) {
			out.Set(p + 1)
		}
	}
	return out
}

func (c *CharClass) matches(b byte) bool {
	switch c.Kind {
	case ClassDigit:
		return isASCIIDigit(b)
	case ClassSpace:
		return isASCIISpace(b)
	case ClassWord:
		return isASCIIWord(b)
	case ClassCustom:
		if c.custom == nil {
			return false
		}
		return c.custom.Contains([]byte{b})
	default:
		return false
	}
}

func isASCIIDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

func isASCIISpace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\r', '\f', '\v':
		return true
	default:
		return false
	}
}

func isASCIIWord(b byte) bool {
	return isASCIIDigit(b) || b == '_' ||
		(b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}
