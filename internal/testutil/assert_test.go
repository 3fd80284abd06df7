package testutil

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

// recorder is a testing.TB that keeps failures instead of reporting them.
type recorder struct {
	testing.TB
	errors []string
	fatal  string
}

func (r *recorder) Helper() {}

func (r *recorder) Error(args ...interface{}) {
	r.errors = append(r.errors, fmt.Sprint(args...))
}

func (r *recorder) Fatalf(format string, args ...interface{}) {
	r.fatal = fmt.Sprintf(format, args...)
}

type square string

func (s square) String() string { return string(s) }

func TestAssertions_Pass(t *testing.T) {
	var nilSlice []string
	var nilPtr *int

	r := &recorder{TB: t}
	AssertEqual(r, []string{"e2e4", "e7e5"}, []string{"e2e4", "e7e5"})
	AssertNoError(r, nil)
	AssertError(r, errors.New("illegal move"))
	AssertContains(r, "Status: checkmate", "checkmate")
	AssertNotContains(r, "Status: ongoing", "checkmate")
	AssertTrue(r, true)
	AssertFalse(r, false)
	AssertNil(r, nil)
	AssertNil(r, nilSlice)
	AssertNil(r, nilPtr)

	if len(r.errors) != 0 {
		t.Errorf("passing assertions reported %q", r.errors)
	}
}

func TestAssertions_Fail(t *testing.T) {
	tests := []struct {
		name   string
		assert func(testing.TB)
		want   string
	}{
		{"equal", func(tb testing.TB) { AssertEqual(tb, 20, 48) }, "mismatch (-want +got)"},
		{"no error", func(tb testing.TB) { AssertNoError(tb, errors.New("bad fen")) }, "unexpected error: bad fen"},
		{"error", func(tb testing.TB) { AssertError(tb, nil) }, "expected error but got nil"},
		{"contains", func(tb testing.TB) { AssertContains(tb, "e2e4", "O-O") }, `"e2e4" does not contain "O-O"`},
		{"not contains", func(tb testing.TB) { AssertNotContains(tb, "O-O-O", "O-O") }, `"O-O-O" should not contain "O-O"`},
		{"true", func(tb testing.TB) { AssertTrue(tb, false) }, "expected true but got false"},
		{"false", func(tb testing.TB) { AssertFalse(tb, true) }, "expected false but got true"},
		{"nil", func(tb testing.TB) { AssertNil(tb, []string{}) }, "expected nil but got []"},
		{"message", func(tb testing.TB) { AssertTrue(tb, false, "depth %d", 3) }, "depth 3: expected true"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := &recorder{TB: t}
			tt.assert(r)
			if len(r.errors) != 1 || !strings.Contains(r.errors[0], tt.want) {
				t.Errorf("errors = %q, want one containing %q", r.errors, tt.want)
			}
		})
	}
}

func TestFormatMessage(t *testing.T) {
	tests := []struct {
		name string
		args []interface{}
		want string
	}{
		{"empty", nil, ""},
		{"single string", []interface{}{"e2e4"}, "e2e4"},
		{"format", []interface{}{"ply %d: %s", 3, "e4e5"}, "ply 3: e4e5"},
		{"non-string", []interface{}{42}, "42"},
		{"non-string with args", []interface{}{42, "ignored"}, "42"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := formatMessage(tt.args...); got != tt.want {
				t.Errorf("formatMessage() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSortedNames(t *testing.T) {
	got := SortedNames([]square{"e4", "a1", "h8", "d5"})
	AssertEqual(t, got, []string{"a1", "d5", "e4", "h8"})
	AssertEqual(t, SortedNames([]square(nil)), []string{})
}

func TestAssertNames(t *testing.T) {
	r := &recorder{TB: t}
	AssertNames(r, []square{"f3", "h3"}, []string{"h3", "f3"})
	AssertNames(r, []square{}, nil)
	if len(r.errors) != 0 {
		t.Errorf("matching names reported %q", r.errors)
	}

	AssertNames(r, []square{"f3"}, []string{"f3", "h3"}, "knight on g1")
	if len(r.errors) != 1 || !strings.Contains(r.errors[0], "knight on g1") {
		t.Errorf("errors = %q, want one mismatch", r.errors)
	}
}

func TestMustParse(t *testing.T) {
	parseFile := func(s string) (int, error) {
		if len(s) != 1 || s[0] < 'a' || s[0] > 'h' {
			return 0, fmt.Errorf("bad file %q", s)
		}
		return int(s[0] - 'a'), nil
	}

	r := &recorder{TB: t}
	AssertEqual(t, MustParse(r, parseFile, "e"), 4)
	AssertEqual(t, r.fatal, "")

	MustParse(r, parseFile, "z")
	AssertContains(t, r.fatal, `parse "z": bad file "z"`)
}
