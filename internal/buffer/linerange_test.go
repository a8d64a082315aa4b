package buffer

import (
	"testing"
)

func TestNewLineRange(t *testing.T) {
	r := NewLineRange(3, 7)

	if r.Start() != 3 {
		t.Errorf("expected start 3, got %d", r.Start())
	}
	if r.End() != 7 {
		t.Errorf("expected end 7, got %d", r.End())
	}
	if r.Len() != 4 {
		t.Errorf("expected len 4, got %d", r.Len())
	}
}

func TestNewLineRangeNormalizes(t *testing.T) {
	// Negative start clamps to zero.
	r := NewLineRange(-2, 5)
	if r.Start() != 0 {
		t.Errorf("expected start 0, got %d", r.Start())
	}

	// Decreasing range collapses to empty at start.
	r = NewLineRange(10, 5)
	if r.Start() != 10 || r.End() != 10 {
		t.Errorf("expected [10:10), got %v", r)
	}
	if !r.IsEmpty() {
		t.Error("collapsed range should be empty")
	}
}

func TestLineRangeContains(t *testing.T) {
	r := NewLineRange(5, 10)

	tests := []struct {
		name string
		line int
		want bool
	}{
		{"before start", 4, false},
		{"at start", 5, true},
		{"inside", 7, true},
		{"last line", 9, true},
		{"at end", 10, false},
		{"past end", 11, false},
		{"negative", -1, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Contains(tt.line); got != tt.want {
				t.Errorf("Contains(%d) = %v, want %v", tt.line, got, tt.want)
			}
		})
	}
}

func TestLineRangeClamp(t *testing.T) {
	r := NewLineRange(5, 15)

	clamped := r.Clamp(10)
	if clamped.Start() != 5 || clamped.End() != 10 {
		t.Errorf("expected [5:10), got %v", clamped)
	}

	// Entirely past the bound collapses to empty at the bound.
	clamped = r.Clamp(3)
	if clamped.Start() != 3 || clamped.End() != 3 {
		t.Errorf("expected [3:3), got %v", clamped)
	}

	// Negative bound behaves like zero.
	clamped = r.Clamp(-1)
	if clamped.Start() != 0 || clamped.End() != 0 {
		t.Errorf("expected [0:0), got %v", clamped)
	}

	// Bound past the range leaves it alone.
	clamped = r.Clamp(100)
	if clamped != r {
		t.Errorf("expected %v, got %v", r, clamped)
	}
}

func TestLineRangeString(t *testing.T) {
	r := NewLineRange(2, 8)
	if got := r.String(); got != "[2:8)" {
		t.Errorf("expected %q, got %q", "[2:8)", got)
	}
}
