package chess

import "testing"

func TestAbsSign(t *testing.T) {
	tests := []struct {
		in, abs, sign int
	}{
		{-7, 7, -1},
		{-1, 1, -1},
		{0, 0, 0},
		{2, 2, 1},
	}
	for _, tt := range tests {
		if got := Abs(tt.in); got != tt.abs {
			t.Errorf("Abs(%d) = %d, want %d", tt.in, got, tt.abs)
		}
		if got := Sign(tt.in); got != tt.sign {
			t.Errorf("Sign(%d) = %d, want %d", tt.in, got, tt.sign)
		}
	}

	if got := Abs(int8(-128 + 1)); got != 127 {
		t.Errorf("Abs(int8) = %d, want 127", got)
	}
}
