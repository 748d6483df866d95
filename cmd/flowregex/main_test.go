package main

import (
	"bytes"
	"strings"
	"testing"
)

func TestRunSuccessPrintsPositions(t *testing.T) {
	var buf bytes.Buffer
	code := run([]string{"a+b", "xaaabzz"}, &buf)
	if code != 0 {
		t.Fatalf("run() = %d, want 0", code)
	}
	if got := strings.TrimSpace(buf.String()); got != "5" {
		t.Fatalf("run() output = %q, want %q", got, "5")
	}
}

func TestRunSuccessWithEmptyResult(t *testing.T) {
	var buf bytes.Buffer
	code := run([]string{"z", "abc"}, &buf)
	if code != 0 {
		t.Fatalf("run() = %d, want 0 for an attempted match with no hits", code)
	}
	if got := strings.TrimSpace(buf.String()); got != "" {
		t.Fatalf("run() output = %q, want empty", got)
	}
}

func TestRunInvalidPatternExitsNonZero(t *testing.T) {
	var buf bytes.Buffer
	code := run([]string{"(abc", "xyz"}, &buf)
	if code != 1 {
		t.Fatalf("run() = %d, want 1 for a parse error", code)
	}
}

func TestRunWrongArgCountExitsNonZero(t *testing.T) {
	var buf bytes.Buffer
	code := run([]string{"only-one-arg"}, &buf)
	if code != 1 {
		t.Fatalf("run() = %d, want 1 for the wrong argument count", code)
	}
}

func TestRunDebugFlagPrintsBothResultSets(t *testing.T) {
	var buf bytes.Buffer
	code := run([]string{"-d", "a(b|c)*d", "abcbcd"}, &buf)
	if code != 0 {
		t.Fatalf("run() = %d, want 0", code)
	}
	out := buf.String()
	if !strings.Contains(out, "general:") || !strings.Contains(out, "accelerated:") || !strings.Contains(out, "alphabet:") {
		t.Fatalf("run() with -d output = %q, want general/accelerated/alphabet lines", out)
	}
	if !strings.HasSuffix(strings.TrimRight(out, "\n"), "6") {
		t.Fatalf("run() with -d output = %q, want trailing position list ending in 6", out)
	}
}

func TestRunUnknownFlagExitsNonZero(t *testing.T) {
	var buf bytes.Buffer
	code := run([]string{"-x", "a", "b"}, &buf)
	if code != 1 {
		t.Fatalf("run() = %d, want 1 for an unrecognized flag", code)
	}
}
