// Package flowregex implements a regular-expression matcher built on a
// bit-parallel "flow" model: rather than tracking one active position
// (backtracking) or a set of NFA states per character (Thompson), it
// represents, after consuming each regex element, the set of
// end-positions reachable in the input text as a single bitset. Every
// regex element is a transformer on bitsets.
//
// Basic usage:
//
//	m, err := flowregex.Compile(`a+b`)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	positions, err := m.Match([]byte("aaab"), nil)
//
// Accelerated matching: precompute a MatchMask table over the text once,
// reuse it across matches of any pattern whose literals it covers:
//
//	table := matchmask.Build(text, m.Literals())
//	positions, err := m.Match(text, table)
//
// Limitations: no capture groups, no anchors, no backreferences, no
// lookaround, no lazy quantifiers, no Unicode-aware character classes.
// The matcher reports every end position reachable from any start
// position, not a single leftmost-longest match.
package flowregex

import (
	"fmt"

	"github.com/flowregex/flowregex/ast"
	"github.com/flowregex/flowregex/bitset"
	"github.com/flowregex/flowregex/matchmask"
	"github.com/flowregex/flowregex/parser"
)

// ErrorKind classifies why a Compile or Match call failed.
type ErrorKind int

const (
	// KindInvalidPattern means the pattern was empty or structurally absent.
	KindInvalidPattern ErrorKind = iota
	// KindParseError means the pattern violated the grammar.
	KindParseError
	// KindTextTooLong means the text exceeded Config.MaxTextLength.
	KindTextTooLong
)

func (k ErrorKind) String() string {
	switch k {
	case KindInvalidPattern:
		return "InvalidPattern"
	case KindParseError:
		return "ParseError"
	case KindTextTooLong:
		return "TextTooLong"
	default:
		return "Unknown"
	}
}

// Error wraps a failure with the ErrorKind a caller needs to branch on,
// while still exposing the underlying cause through Unwrap.
type Error struct {
	Kind ErrorKind
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("flowregex: %s: %v", e.Kind, e.Err)
	}
	return fmt.Sprintf("flowregex: %s", e.Kind)
}

// Unwrap exposes the underlying error so callers can errors.As down to a
// *parser.ParseError for its Pos and Message.
func (e *Error) Unwrap() error {
	return e.Err
}

// Config controls the one runtime limit this package enforces.
type Config struct {
	// MaxTextLength is the largest text, in bytes, Match will accept.
	// Default: 100,000.
	MaxTextLength int
}

// DefaultConfig returns the documented default configuration.
func DefaultConfig() Config {
	return Config{MaxTextLength: 100_000}
}

// Matcher is a compiled pattern ready to match against any text.
//
// A *Matcher is safe for concurrent use by multiple goroutines: its AST
// is read-only after Compile, and every Apply call allocates fresh
// bitsets rather than mutating shared state.
type Matcher struct {
	root    ast.Node
	pattern string
	config  Config
}

// Compile parses pattern and returns a ready-to-use Matcher using
// DefaultConfig's limits.
func Compile(pattern string) (*Matcher, error) {
	return CompileWithConfig(pattern, DefaultConfig())
}

// MustCompile is like Compile but panics if pattern is invalid. Intended
// for patterns known to be valid at compile time, such as package-level
// vars.
func MustCompile(pattern string) *Matcher {
	m, err := Compile(pattern)
	if err != nil {
		panic("flowregex: Compile(" + pattern + "): " + err.Error())
	}
	return m
}

// CompileWithConfig parses pattern and returns a Matcher that enforces
// config's limits on every Match call.
func CompileWithConfig(pattern string, config Config) (*Matcher, error) {
	root, err := parser.Parse(pattern)
	if err != nil {
		return nil, wrapParseError(err)
	}
	return &Matcher{root: root, pattern: pattern, config: config}, nil
}

func wrapParseError(err error) error {
	switch err.(type) {
	case parser.InvalidPatternError:
		return &Error{Kind: KindInvalidPattern, Err: err}
	case *parser.ParseError:
		return &Error{Kind: KindParseError, Err: err}
	default:
		return &Error{Kind: KindParseError, Err: err}
	}
}

// Match runs the matcher over text and returns the ascending, duplicate
// free set of end positions reachable from any start position. accel, if
// non-nil, accelerates Literal transformers that cover bytes in accel's
// alphabet; the result is identical with or without it.
func (m *Matcher) Match(text []byte, accel *matchmask.Table) ([]int, error) {
	if len(text) > m.config.MaxTextLength {
		return nil, &Error{Kind: KindTextTooLong, Err: fmt.Errorf("text length %d exceeds limit %d", len(text), m.config.MaxTextLength)}
	}

	seed := bitset.New(len(text) + 1)
	for i := 0; i <= len(text); i++ {
		seed.Set(i)
	}

	result := m.root.Apply(seed, text, accel)
	return result.Enumerate(), nil
}

// MatchString is a convenience wrapper around Match for string input.
func (m *Matcher) MatchString(s string, accel *matchmask.Table) ([]int, error) {
	return m.Match([]byte(s), accel)
}

// Literals returns the ascending, duplicate-free set of bytes this
// pattern matches as literals — exactly the alphabet a caller should pass
// to matchmask.Build to accelerate every Literal node in this pattern.
func (m *Matcher) Literals() []byte {
	return ast.CollectLiterals(m.root)
}

// String returns the source pattern the Matcher was compiled from.
func (m *Matcher) String() string {
	return m.pattern
}
