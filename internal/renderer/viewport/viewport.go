// Package viewport implements scroll state for a fixed-height,
// line-oriented display region.
//
// A Viewport tracks which contiguous band of document lines is visible
// and exposes deterministic operations to move that band: scroll by an
// amount, scroll so a target line becomes visible, scroll to center a
// target line, and classify an arbitrary line against the band. It is
// pure arithmetic over integers, recomputed on demand.
//
// Arithmetic that could go below zero saturates at zero instead. The
// region-coordinate domain treats "below zero" as "zero", not as an
// error: callers routinely pass lines and offsets near 0 or near the
// edges of a shrinking terminal, so every operation is total and no
// operation can fail.
//
// A Viewport performs no locking. It is owned and mutated by a single
// display-region controller; that controller serializes access.
package viewport

import "github.com/dshills/lineview/internal/buffer"

// Terminal supplies the current number of display rows available to the
// region. The handle is shared with whatever else needs terminal
// dimensions; the viewport only ever reads from it.
type Terminal interface {
	Height() int
}

// Viewport tracks the first visible line of a display region and the
// extra rows currently lost to soft wrapping.
type Viewport struct {
	term         Terminal
	lineOffset   int
	wrappedLines int
}

// New creates a viewport bound to term, positioned at the top of the
// document with no wrapped lines.
func New(term Terminal) *Viewport {
	return &Viewport{term: term}
}

// Height returns the visible row capacity: terminal height minus the
// rows consumed by soft wrapping, minus one row permanently reserved
// for the status line. Saturates at 0 when the terminal is too small.
func (v *Viewport) Height() int {
	h := v.term.Height() - v.wrappedLines - 1
	if h < 0 {
		return 0
	}
	return h
}

// VisibleRange returns the band of absolute line numbers currently
// visible: [LineOffset, LineOffset+Height()).
func (v *Viewport) VisibleRange() buffer.LineRange {
	return buffer.NewLineRange(v.lineOffset, v.lineOffset+v.Height())
}

// ScrollIntoView moves the band the minimum distance required to make
// line visible, using prior state to decide direction: lines above the
// band become its new top row, lines at or past its end become its new
// bottom row, and lines already visible cause no movement.
func (v *Viewport) ScrollIntoView(line int) {
	if line < 0 {
		line = 0
	}
	r := v.VisibleRange()
	if line < r.Start() {
		v.lineOffset = line
	} else if line >= r.End() {
		v.lineOffset = line - v.Height() + 1
	}
}

// ScrollToCenter positions the band so line sits at its vertical middle,
// using floor division and clamping at the top of the document.
func (v *Viewport) ScrollToCenter(line int) {
	offset := line - v.Height()/2
	if offset < 0 {
		offset = 0
	}
	v.lineOffset = offset
}

// RelativePosition classifies an absolute line number against the
// current band: above it, below it, or visible at a given row, where
// row 0 is the band's first line.
func (v *Viewport) RelativePosition(line int) Placement {
	if line < v.lineOffset {
		return Above
	}
	row := line - v.lineOffset
	if row >= v.Height() {
		return Below
	}
	return Visible(row)
}

// LineOffset returns the number of lines the region has scrolled over.
// Zero represents an unscrolled region.
func (v *Viewport) LineOffset() int {
	return v.lineOffset
}

// ScrollUp moves the band up by amount lines, saturating at the top.
// Non-positive amounts are no-ops.
func (v *Viewport) ScrollUp(amount int) {
	if amount <= 0 {
		return
	}
	offset := v.lineOffset - amount
	if offset < 0 {
		offset = 0
	}
	v.lineOffset = offset
}

// ScrollDown moves the band down by amount lines. The viewport does not
// know the document's length, so it never clamps against the document's
// end; bounding is the caller's responsibility. Non-positive amounts
// are no-ops.
func (v *Viewport) ScrollDown(amount int) {
	if amount <= 0 {
		return
	}
	v.lineOffset += amount
}

// PageUp scrolls up by one band height minus overlap rows of context,
// always moving at least one line.
func (v *Viewport) PageUp(overlap int) {
	v.ScrollUp(v.pageSize(overlap))
}

// PageDown scrolls down by one band height minus overlap rows of
// context, always moving at least one line.
func (v *Viewport) PageDown(overlap int) {
	v.ScrollDown(v.pageSize(overlap))
}

func (v *Viewport) pageSize(overlap int) int {
	if overlap < 0 {
		overlap = 0
	}
	size := v.Height() - overlap
	if size < 1 {
		size = 1
	}
	return size
}

// SetWrappedLineCount replaces the stored count of extra display rows
// consumed by soft-wrapped lines. It takes effect on the next Height
// call; the line offset is not recomputed, so callers that care about
// the band shifting under a height change must re-invoke ScrollIntoView
// themselves. Negative counts clamp to 0.
func (v *Viewport) SetWrappedLineCount(count int) {
	if count < 0 {
		count = 0
	}
	v.wrappedLines = count
}

// WrappedLineCount returns the stored wrapped-line count.
func (v *Viewport) WrappedLineCount() int {
	return v.wrappedLines
}
