package viewport

import (
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

// drawRegion builds a viewport with an arbitrary terminal height, wrap
// count, and scroll position.
func drawRegion(rt *rapid.T) *Viewport {
	term := &testTerminal{height: rapid.IntRange(0, 100).Draw(rt, "termHeight")}
	v := New(term)
	v.SetWrappedLineCount(rapid.IntRange(0, 120).Draw(rt, "wrapped"))
	v.ScrollDown(rapid.IntRange(0, 1000).Draw(rt, "offset"))
	return v
}

func TestProperty_HeightSaturates(t *testing.T) {
	// height == max(0, terminal - wrapped - 1) for every combination.
	rapid.Check(t, func(rt *rapid.T) {
		termHeight := rapid.IntRange(0, 200).Draw(rt, "termHeight")
		wrapped := rapid.IntRange(0, 200).Draw(rt, "wrapped")

		v := New(&testTerminal{height: termHeight})
		v.SetWrappedLineCount(wrapped)

		want := termHeight - wrapped - 1
		if want < 0 {
			want = 0
		}
		require.Equal(t, want, v.Height(), "height for terminal %d, wrapped %d", termHeight, wrapped)
	})
}

func TestProperty_VisibleRangeMatchesOffsetAndHeight(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		v := drawRegion(rt)

		r := v.VisibleRange()
		require.Equal(t, v.LineOffset(), r.Start(), "range start should equal line offset")
		require.Equal(t, v.LineOffset()+v.Height(), r.End(), "range end should equal offset+height")
		require.Equal(t, v.Height(), r.Len(), "range length should equal height")
	})
}

func TestProperty_ScrollIntoViewMakesLineVisible(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		v := drawRegion(rt)
		line := rapid.IntRange(0, 2000).Draw(rt, "line")

		heightBefore := v.Height()
		v.ScrollIntoView(line)

		require.Equal(t, heightBefore, v.Height(), "scrolling must not change the band height")

		// A zero-height band can hold no line, so visibility and
		// idempotence only apply to real bands.
		if v.Height() > 0 {
			require.True(t, v.RelativePosition(line).IsVisible(),
				"line %d should be visible after ScrollIntoView, offset %d height %d",
				line, v.LineOffset(), v.Height())

			offset := v.LineOffset()
			v.ScrollIntoView(line)
			require.Equal(t, offset, v.LineOffset(), "repeat ScrollIntoView should not move the band")
		}
	})
}

func TestProperty_RelativePositionPartitionsLines(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		v := drawRegion(rt)
		line := rapid.IntRange(0, 2000).Draw(rt, "line")

		got := v.RelativePosition(line)
		switch {
		case line < v.LineOffset():
			require.Equal(t, Above, got, "line %d before offset %d", line, v.LineOffset())
		case line >= v.LineOffset()+v.Height():
			require.Equal(t, Below, got, "line %d past band end", line)
		default:
			require.Equal(t, Visible(line-v.LineOffset()), got, "line %d inside band", line)
		}
	})
}

func TestProperty_VisibleRowsEnumerateInOrder(t *testing.T) {
	// Every row k in [0, height) maps back to Visible(k).
	rapid.Check(t, func(rt *rapid.T) {
		v := drawRegion(rt)

		for k := 0; k < v.Height(); k++ {
			require.Equal(t, Visible(k), v.RelativePosition(v.LineOffset()+k), "row %d", k)
		}
	})
}

func TestProperty_ScrollUpSaturatesAtZero(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		v := drawRegion(rt)
		amount := rapid.IntRange(0, 5000).Draw(rt, "amount")

		v.ScrollUp(amount)
		require.GreaterOrEqual(t, v.LineOffset(), 0, "offset must never go negative")

		v.ScrollUp(v.LineOffset() + 1)
		require.Equal(t, 0, v.LineOffset(), "overscroll should land exactly at the top")
		v.ScrollUp(1)
		require.Equal(t, 0, v.LineOffset(), "scrolling up from the top stays at the top")
	})
}

func TestProperty_ScrollDecompositionRoundTrips(t *testing.T) {
	// Scrolling down then up by the same amount restores the offset.
	rapid.Check(t, func(rt *rapid.T) {
		v := drawRegion(rt)
		start := v.LineOffset()
		amount := rapid.IntRange(1, 500).Draw(rt, "amount")

		v.ScrollDown(amount)
		require.Equal(t, start+amount, v.LineOffset(), "scroll down is unbounded addition")
		v.ScrollUp(amount)
		require.Equal(t, start, v.LineOffset(), "down then up should round-trip")
	})
}

func TestProperty_ScrollToCenterFormula(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		v := drawRegion(rt)
		line := rapid.IntRange(0, 2000).Draw(rt, "line")

		v.ScrollToCenter(line)

		want := line - v.Height()/2
		if want < 0 {
			want = 0
		}
		require.Equal(t, want, v.LineOffset(), "center of line %d with height %d", line, v.Height())
	})
}
