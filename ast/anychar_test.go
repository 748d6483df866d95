package ast

import (
	"reflect"
	"testing"
)

func TestAnyCharMatchesEverythingButNewline(t *testing.T) {
	text := []byte("a\nb")
	input := seedAll(len(text))
	out := AnyChar{}.Apply(input, text, nil)
	want := []int{1, 3}
	if got := out.Enumerate(); !reflect.DeepEqual(got, want) {
		t.Fatalf("AnyChar.Apply = %v, want %v", got, want)
	}
}
