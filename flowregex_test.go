package flowregex

import (
	"errors"
	"reflect"
	"testing"

	"github.com/flowregex/flowregex/matchmask"
	"github.com/flowregex/flowregex/parser"
)

func TestScenarios(t *testing.T) {
	cases := []struct {
		pattern string
		text    string
		want    []int
	}{
		{"abc", "xabcyz", []int{4}},
		{"a*b", "aaab", []int{4}},
		{"a|b", "cat", []int{2}},
		{"a+", "aaa", []int{1, 2, 3}},
		{"a?b", "ab", []int{2}},
		{"a.c", "abc", []int{3}},
		{`\d+`, "abc123def", []int{4, 5, 6}},
		{"(ab)+", "ababab", []int{2, 4, 6}},
		{`a(b|c)*d`, "abcbcd", []int{6}},
		{`(a|b)*c`, "bababc", []int{6}},
		{`((a|b)*c)+d`, "abcbaccd", []int{8}},
	}

	for _, c := range cases {
		m, err := Compile(c.pattern)
		if err != nil {
			t.Fatalf("Compile(%q) unexpected error: %v", c.pattern, err)
		}
		got, err := m.MatchString(c.text, nil)
		if err != nil {
			t.Fatalf("Match(%q, %q) unexpected error: %v", c.pattern, c.text, err)
		}
		if !reflect.DeepEqual(got, c.want) {
			t.Errorf("Match(%q, %q) = %v, want %v", c.pattern, c.text, got, c.want)
		}
	}
}

func TestParserErrorScenarios(t *testing.T) {
	if _, err := Compile("(abc"); err == nil {
		t.Fatal(`Compile("(abc") should fail with ParseError`)
	} else {
		var fe *Error
		if !errors.As(err, &fe) || fe.Kind != KindParseError {
			t.Fatalf(`Compile("(abc") error = %v, want KindParseError`, err)
		}
	}

	if _, err := Compile(""); err == nil {
		t.Fatal(`Compile("") should fail with InvalidPattern`)
	} else {
		var fe *Error
		if !errors.As(err, &fe) || fe.Kind != KindInvalidPattern {
			t.Fatalf(`Compile("") error = %v, want KindInvalidPattern`, err)
		}
	}
}

func TestMatchTextTooLong(t *testing.T) {
	m, err := CompileWithConfig("a", Config{MaxTextLength: 3})
	if err != nil {
		t.Fatalf("Compile unexpected error: %v", err)
	}
	_, err = m.MatchString("aaaa", nil)
	var fe *Error
	if !errors.As(err, &fe) || fe.Kind != KindTextTooLong {
		t.Fatalf("Match over limit error = %v, want KindTextTooLong", err)
	}
}

func TestAcceleratorEquivalence(t *testing.T) {
	m, err := Compile(`a(b|c)*d`)
	if err != nil {
		t.Fatalf("Compile unexpected error: %v", err)
	}
	text := []byte("abcbcd")
	general, err := m.Match(text, nil)
	if err != nil {
		t.Fatalf("Match unexpected error: %v", err)
	}

	table := matchmask.Build(text, m.Literals())
	accelerated, err := m.Match(text, table)
	if err != nil {
		t.Fatalf("Match unexpected error: %v", err)
	}

	if !reflect.DeepEqual(general, accelerated) {
		t.Fatalf("accelerated result %v differs from general %v", accelerated, general)
	}
}

func TestMustCompilePanicsOnInvalidPattern(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("MustCompile(\"(\") should panic")
		}
	}()
	MustCompile("(")
}

func TestErrorUnwrapsToParserError(t *testing.T) {
	_, err := Compile("(abc")
	var parseErr *parser.ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("errors.As could not unwrap to *parser.ParseError from %v", err)
	}
	if parseErr.Pos == 0 {
		t.Fatal("expected a non-zero parse error position for \"(abc\"")
	}
}

func TestDuplicateFreeAndAscending(t *testing.T) {
	m, err := Compile(`(a|a)*`)
	if err != nil {
		t.Fatalf("Compile unexpected error: %v", err)
	}
	got, err := m.MatchString("aaa", nil)
	if err != nil {
		t.Fatalf("Match unexpected error: %v", err)
	}
	for i := 1; i < len(got); i++ {
		if got[i] <= got[i-1] {
			t.Fatalf("result %v is not strictly ascending", got)
		}
	}
}

func TestStringReturnsSourcePattern(t *testing.T) {
	m := MustCompile(`\d+`)
	if m.String() != `\d+` {
		t.Fatalf("String() = %q, want %q", m.String(), `\d+`)
	}
}
