package viewport

import (
	"testing"
)

// testTerminal is a fixed-size height provider for tests. Ten rows gives
// the region a height of nine once the status row is reserved.
type testTerminal struct {
	height int
}

func (t *testTerminal) Height() int { return t.height }

func newTestRegion() *Viewport {
	return New(&testTerminal{height: 10})
}

func TestVisibleRangeForZeroLineOffset(t *testing.T) {
	v := newTestRegion()

	r := v.VisibleRange()
	if r.Start() != 0 {
		t.Errorf("expected start 0, got %d", r.Start())
	}
	if r.End() != 9 {
		t.Errorf("expected end 9, got %d", r.End())
	}
}

func TestVisibleRangeForNonZeroLineOffset(t *testing.T) {
	v := newTestRegion()
	v.ScrollDown(10)

	r := v.VisibleRange()
	if r.Start() != 10 {
		t.Errorf("expected start 10, got %d", r.Start())
	}
	if r.End() != 19 {
		t.Errorf("expected end 19, got %d", r.End())
	}
}

func TestScrollIntoViewAdvancesRegionForLineBelowRange(t *testing.T) {
	v := newTestRegion()
	v.ScrollDown(10)

	// Line 40 becomes the bottom row: offset = 40 - 9 + 1 = 32.
	v.ScrollIntoView(40)
	r := v.VisibleRange()
	if r.Start() != 32 {
		t.Errorf("expected start 32, got %d", r.Start())
	}
	if r.End() != 41 {
		t.Errorf("expected end 41, got %d", r.End())
	}
}

func TestScrollIntoViewRecedesRegionForLineAboveRange(t *testing.T) {
	v := newTestRegion()
	v.ScrollDown(10)

	// Line 5 becomes the top row.
	v.ScrollIntoView(5)
	r := v.VisibleRange()
	if r.Start() != 5 {
		t.Errorf("expected start 5, got %d", r.Start())
	}
	if r.End() != 14 {
		t.Errorf("expected end 14, got %d", r.End())
	}
}

func TestScrollIntoViewLeavesVisibleLineAlone(t *testing.T) {
	v := newTestRegion()
	v.ScrollDown(10)

	v.ScrollIntoView(12)
	if v.LineOffset() != 10 {
		t.Errorf("expected offset 10 for already visible line, got %d", v.LineOffset())
	}
}

func TestScrollIntoViewIsIdempotent(t *testing.T) {
	v := newTestRegion()
	v.ScrollDown(10)

	v.ScrollIntoView(40)
	first := v.LineOffset()
	v.ScrollIntoView(40)
	if v.LineOffset() != first {
		t.Errorf("expected offset %d after repeat, got %d", first, v.LineOffset())
	}
}

func TestScrollIntoViewClampsNegativeLine(t *testing.T) {
	v := newTestRegion()
	v.ScrollDown(10)

	v.ScrollIntoView(-3)
	if v.LineOffset() != 0 {
		t.Errorf("expected offset 0, got %d", v.LineOffset())
	}
}

// A zero-height region classifies every line as past its end, so
// ScrollIntoView walks the offset to line+1. Degenerate but intentional:
// the band reappears in a sane place once the terminal grows again.
func TestScrollIntoViewOnZeroHeightRegion(t *testing.T) {
	v := newTestRegion()
	v.SetWrappedLineCount(12)

	if v.Height() != 0 {
		t.Fatalf("expected height 0, got %d", v.Height())
	}
	v.ScrollIntoView(5)
	if v.LineOffset() != 6 {
		t.Errorf("expected offset 6 on zero-height region, got %d", v.LineOffset())
	}
}

func TestScrollToCenterSetsCorrectLineOffset(t *testing.T) {
	v := newTestRegion()

	// 20 - 9/2 = 16 with floor division.
	v.ScrollToCenter(20)
	r := v.VisibleRange()
	if r.Start() != 16 {
		t.Errorf("expected start 16, got %d", r.Start())
	}
	if r.End() != 25 {
		t.Errorf("expected end 25, got %d", r.End())
	}
}

func TestScrollToCenterDoesNotSetNegativeOffset(t *testing.T) {
	v := newTestRegion()

	v.ScrollToCenter(0)
	r := v.VisibleRange()
	if r.Start() != 0 {
		t.Errorf("expected start 0, got %d", r.Start())
	}
	if r.End() != 9 {
		t.Errorf("expected end 9, got %d", r.End())
	}
}

func TestRelativePositionReturnsRowWhenVisible(t *testing.T) {
	v := newTestRegion()
	v.ScrollIntoView(30)

	if got := v.RelativePosition(25); got != Visible(3) {
		t.Errorf("expected visible(3), got %v", got)
	}
}

func TestRelativePositionReturnsAboveRegion(t *testing.T) {
	v := newTestRegion()
	v.ScrollIntoView(30)

	if got := v.RelativePosition(0); got != Above {
		t.Errorf("expected above, got %v", got)
	}
}

func TestRelativePositionReturnsBelowRegion(t *testing.T) {
	v := newTestRegion()

	if got := v.RelativePosition(20); got != Below {
		t.Errorf("expected below, got %v", got)
	}
}

func TestRelativePositionAtBandEdges(t *testing.T) {
	v := newTestRegion()
	v.ScrollDown(10)

	tests := []struct {
		name string
		line int
		want Placement
	}{
		{"first visible row", 10, Visible(0)},
		{"last visible row", 18, Visible(8)},
		{"first row past band", 19, Below},
		{"line just above band", 9, Above},
		{"negative line", -1, Above},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := v.RelativePosition(tt.line); got != tt.want {
				t.Errorf("RelativePosition(%d) = %v, want %v", tt.line, got, tt.want)
			}
		})
	}
}

func TestScrollDownIncreasesLineOffsetByAmount(t *testing.T) {
	v := newTestRegion()

	v.ScrollDown(10)
	if v.LineOffset() != 10 {
		t.Errorf("expected offset 10, got %d", v.LineOffset())
	}
}

func TestScrollUpDecreasesLineOffsetByAmount(t *testing.T) {
	v := newTestRegion()
	v.ScrollDown(10)

	v.ScrollUp(5)
	if v.LineOffset() != 5 {
		t.Errorf("expected offset 5, got %d", v.LineOffset())
	}
}

func TestScrollUpDoesNotScrollBeyondTopOfRegion(t *testing.T) {
	v := newTestRegion()

	v.ScrollUp(5)
	if v.LineOffset() != 0 {
		t.Errorf("expected offset 0, got %d", v.LineOffset())
	}
}

func TestScrollIgnoresNonPositiveAmounts(t *testing.T) {
	v := newTestRegion()
	v.ScrollDown(10)

	v.ScrollDown(-4)
	v.ScrollDown(0)
	v.ScrollUp(-4)
	v.ScrollUp(0)
	if v.LineOffset() != 10 {
		t.Errorf("expected offset 10, got %d", v.LineOffset())
	}
}

func TestHeightIsOneLessThanTerminalHeight(t *testing.T) {
	term := &testTerminal{height: 10}
	v := New(term)

	if v.Height() != term.Height()-1 {
		t.Errorf("expected height %d, got %d", term.Height()-1, v.Height())
	}
}

func TestHeightDeductsWrappedLineCount(t *testing.T) {
	v := newTestRegion()

	v.SetWrappedLineCount(4)
	if v.Height() != 5 {
		t.Errorf("expected height 5, got %d", v.Height())
	}
}

func TestHeightSaturatesAtZero(t *testing.T) {
	v := newTestRegion()

	v.SetWrappedLineCount(12)
	if v.Height() != 0 {
		t.Errorf("expected height 0, got %d", v.Height())
	}
}

func TestHeightTracksTerminalResize(t *testing.T) {
	term := &testTerminal{height: 10}
	v := New(term)

	term.height = 24
	if v.Height() != 23 {
		t.Errorf("expected height 23 after resize, got %d", v.Height())
	}

	term.height = 0
	if v.Height() != 0 {
		t.Errorf("expected height 0 for zero terminal, got %d", v.Height())
	}
}

func TestSetWrappedLineCountDoesNotMoveOffset(t *testing.T) {
	v := newTestRegion()
	v.ScrollDown(10)

	v.SetWrappedLineCount(4)
	if v.LineOffset() != 10 {
		t.Errorf("expected offset 10 after wrap change, got %d", v.LineOffset())
	}
	if v.WrappedLineCount() != 4 {
		t.Errorf("expected wrapped count 4, got %d", v.WrappedLineCount())
	}
}

func TestSetWrappedLineCountClampsNegative(t *testing.T) {
	v := newTestRegion()

	v.SetWrappedLineCount(-3)
	if v.WrappedLineCount() != 0 {
		t.Errorf("expected wrapped count 0, got %d", v.WrappedLineCount())
	}
}

func TestPageDownScrollsByHeightMinusOverlap(t *testing.T) {
	v := newTestRegion()

	v.PageDown(2)
	if v.LineOffset() != 7 {
		t.Errorf("expected offset 7 after page down, got %d", v.LineOffset())
	}

	v.PageUp(2)
	if v.LineOffset() != 0 {
		t.Errorf("expected offset 0 after page up, got %d", v.LineOffset())
	}
}

func TestPageMovesAtLeastOneLine(t *testing.T) {
	v := newTestRegion()
	v.SetWrappedLineCount(12) // height 0

	v.PageDown(2)
	if v.LineOffset() != 1 {
		t.Errorf("expected offset 1 after page down, got %d", v.LineOffset())
	}
}

func TestVisibilityString(t *testing.T) {
	tests := []struct {
		vis  Visibility
		want string
	}{
		{AboveRegion, "above"},
		{VisibleInRegion, "visible"},
		{BelowRegion, "below"},
		{Visibility(255), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.vis.String(); got != tt.want {
				t.Errorf("Visibility.String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestPlacementString(t *testing.T) {
	if got := Visible(3).String(); got != "visible(3)" {
		t.Errorf("expected %q, got %q", "visible(3)", got)
	}
	if got := Above.String(); got != "above" {
		t.Errorf("expected %q, got %q", "above", got)
	}
	if got := Below.String(); got != "below" {
		t.Errorf("expected %q, got %q", "below", got)
	}
}
