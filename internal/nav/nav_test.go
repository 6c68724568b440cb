package nav

import (
	"errors"
	"testing"
)

func TestNext_StepsAndWraps(t *testing.T) {
	b := DefaultBounds()

	tests := []struct {
		name    string
		current int
		want    int
	}{
		{"steps forward", 1, 2},
		{"middle", 25, 26},
		{"wraps at max", 151, 1},
		{"clamps below window", -5, 2},
		{"clamps above window", 9000, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := b.Next(tt.current); got != tt.want {
				t.Errorf("Next(%d) = %d, want %d", tt.current, got, tt.want)
			}
		})
	}
}

func TestPrev_StepsAndWraps(t *testing.T) {
	b := DefaultBounds()

	tests := []struct {
		name    string
		current int
		want    int
	}{
		{"steps backward", 151, 150},
		{"middle", 25, 24},
		{"wraps at min", 1, 151},
		{"clamps below window", -5, 151},
		{"clamps above window", 9000, 150},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := b.Prev(tt.current); got != tt.want {
				t.Errorf("Prev(%d) = %d, want %d", tt.current, got, tt.want)
			}
		})
	}
}

func TestNextPrev_InverseWithinCycle(t *testing.T) {
	b := DefaultBounds()

	for x := -10; x <= 200; x++ {
		if got := b.Prev(b.Next(x)); got != b.Clamp(x) {
			t.Fatalf("Prev(Next(%d)) = %d, want %d", x, got, b.Clamp(x))
		}
		if got := b.Next(b.Prev(x)); got != b.Clamp(x) {
			t.Fatalf("Next(Prev(%d)) = %d, want %d", x, got, b.Clamp(x))
		}
	}
}

func TestParseJumpTarget(t *testing.T) {
	b := DefaultBounds()

	tests := []struct {
		name    string
		raw     string
		want    int
		wantErr error
	}{
		{"plain number", "25", 25, nil},
		{"whitespace trimmed", "  7  ", 7, nil},
		{"max accepted", "151", 151, nil},
		{"zero accepted", "0", 0, nil},
		{"negative accepted", "-3", -3, nil},
		{"not a number", "abc", 0, ErrNotANumber},
		{"empty", "", 0, ErrNotANumber},
		{"decimal", "2.5", 0, ErrNotANumber},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := b.ParseJumpTarget(tt.raw)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("ParseJumpTarget(%q) error = %v, want %v", tt.raw, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseJumpTarget(%q) returned error: %v", tt.raw, err)
			}
			if got != tt.want {
				t.Errorf("ParseJumpTarget(%q) = %d, want %d", tt.raw, got, tt.want)
			}
		})
	}
}

func TestParseJumpTarget_OutOfRange(t *testing.T) {
	b := DefaultBounds()

	_, err := b.ParseJumpTarget("9999")
	var oor *OutOfRangeError
	if !errors.As(err, &oor) {
		t.Fatalf("ParseJumpTarget error = %v, want *OutOfRangeError", err)
	}
	if oor.Value != 9999 || oor.Max != 151 {
		t.Fatalf("OutOfRangeError = %#v, want value=9999 max=151", oor)
	}
}
