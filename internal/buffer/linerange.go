package buffer

import "fmt"

// LineRange is a half-open span of 0-indexed line numbers: [start, end).
// It is an immutable value type; construction normalizes the endpoints so
// that 0 <= start <= end always holds.
type LineRange struct {
	start int
	end   int
}

// NewLineRange creates a LineRange covering [start, end). A negative start
// clamps to zero and a decreasing range collapses to empty at start.
func NewLineRange(start, end int) LineRange {
	if start < 0 {
		start = 0
	}
	if end < start {
		end = start
	}
	return LineRange{start: start, end: end}
}

// Start returns the first line inside the range.
func (r LineRange) Start() int { return r.start }

// End returns the first line past the range.
func (r LineRange) End() int { return r.end }

// Len returns the number of lines in the range.
func (r LineRange) Len() int { return r.end - r.start }

// IsEmpty returns true if the range contains no lines.
func (r LineRange) IsEmpty() bool { return r.start == r.end }

// Contains returns true if the given line falls inside the range.
func (r LineRange) Contains(line int) bool {
	return line >= r.start && line < r.end
}

// Clamp bounds the range to [0, maxEnd), collapsing to an empty range at
// maxEnd when the receiver lies entirely past it.
func (r LineRange) Clamp(maxEnd int) LineRange {
	if maxEnd < 0 {
		maxEnd = 0
	}
	start, end := r.start, r.end
	if start > maxEnd {
		start = maxEnd
	}
	if end > maxEnd {
		end = maxEnd
	}
	return LineRange{start: start, end: end}
}

// String returns a human-readable representation of the range.
func (r LineRange) String() string {
	return fmt.Sprintf("[%d:%d)", r.start, r.end)
}
