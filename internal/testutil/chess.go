package testutil

import (
	"fmt"
	"sort"
	"testing"
)

// SortedNames returns the text of each item, sorted. Squares come out as
// "e4" and moves in long algebraic form, so lists compare independently of
// generation order.
func SortedNames[T fmt.Stringer](items []T) []string {
	names := make([]string, len(items))
	for i, item := range items {
		names[i] = item.String()
	}
	sort.Strings(names)
	return names
}

// AssertNames fails unless got holds exactly the squares or moves named in
// want, in any order.
func AssertNames[T fmt.Stringer](t testing.TB, got []T, want []string, msgAndArgs ...interface{}) {
	t.Helper()
	sorted := append([]string{}, want...)
	sort.Strings(sorted)
	AssertEqual(t, SortedNames(got), sorted, msgAndArgs...)
}

// MustParse calls parse on text and stops the test if it fails. It takes
// FEN, square and move parsers alike:
//
//	pos := testutil.MustParse(t, engine.ParseFEN, fen)
func MustParse[T any](t testing.TB, parse func(string) (T, error), text string) T {
	t.Helper()
	v, err := parse(text)
	if err != nil {
		t.Fatalf("parse %q: %v", text, err)
	}
	return v
}
