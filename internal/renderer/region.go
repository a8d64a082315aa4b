package renderer

import (
	"sync"

	"github.com/google/uuid"

	"github.com/dshills/lineview/internal/buffer"
	"github.com/dshills/lineview/internal/renderer/backend"
	"github.com/dshills/lineview/internal/renderer/layout"
	"github.com/dshills/lineview/internal/renderer/statusline"
	"github.com/dshills/lineview/internal/renderer/viewport"
)

// wrapMetricPasses caps the wrap measurement loop. The wrap count and
// the visible band depend on each other and can oscillate on documents
// whose wrapping changes at the band boundary.
const wrapMetricPasses = 8

// Options configures a display region.
type Options struct {
	// Wrap soft-wraps long lines instead of truncating them.
	Wrap bool

	// TabWidth is the tab stop distance in cells.
	TabWidth int

	// PageOverlap is the number of lines two consecutive pages share.
	PageOverlap int
}

// DefaultOptions returns default region options.
func DefaultOptions() Options {
	return Options{
		Wrap:        false,
		TabWidth:    layout.DefaultTabWidth,
		PageOverlap: 1,
	}
}

// Region is a fixed-height display region covering the terminal. It
// owns the scroll state, wrap metrics, cursor, and status line for one
// document, and serializes access to all of them.
type Region struct {
	mu sync.RWMutex

	// Identity
	id string

	// Output
	backend backend.Backend
	width   int
	height  int

	// Content
	doc    *buffer.Document
	cursor int

	// Components
	vp      *viewport.Viewport
	metrics layout.Metrics
	status  *statusline.StatusLine

	// State
	opts        Options
	needsRedraw bool
}

// NewRegion creates a region drawing to the full extent of the backend.
func NewRegion(b backend.Backend, opts Options) *Region {
	width, height := b.Size()

	r := &Region{
		id:          uuid.NewString(),
		backend:     b,
		width:       width,
		height:      height,
		vp:          viewport.New(b),
		metrics:     layout.NewMetrics(width, opts.TabWidth),
		status:      statusline.New(),
		opts:        opts,
		needsRedraw: true,
	}
	r.status.Resize(width)

	b.OnResize(func(w, h int) {
		r.Resize(w, h)
	})

	return r
}

// ID returns the region's identifier.
func (r *Region) ID() string {
	return r.id
}

// Document returns the document currently displayed.
func (r *Region) Document() *buffer.Document {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.doc
}

// SetDocument replaces the displayed document and rewinds to the top.
func (r *Region) SetDocument(doc *buffer.Document) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.doc = doc
	r.cursor = 0
	r.vp.ScrollUp(r.vp.LineOffset())
	r.refreshWrapMetrics()
	r.needsRedraw = true
}

// Cursor returns the cursor line (0-indexed).
func (r *Region) Cursor() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.cursor
}

// SetCursor moves the cursor to a document line, scrolling the minimum
// amount needed to keep it visible.
func (r *Region) SetCursor(line int) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.cursor = line
	r.clampCursor()
	r.scrollCursorIntoView()
	r.needsRedraw = true
}

// MoveCursor moves the cursor by delta lines.
func (r *Region) MoveCursor(delta int) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.cursor += delta
	r.clampCursor()
	r.scrollCursorIntoView()
	r.needsRedraw = true
}

// CenterCursor scrolls so the cursor line sits in the middle of the
// region.
func (r *Region) CenterCursor() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.vp.ScrollToCenter(r.cursor)
	r.refreshWrapMetrics()
	r.needsRedraw = true
}

// ScrollLines scrolls the band by delta lines, positive toward the end
// of the document. The cursor is pulled along when the band leaves it
// behind.
func (r *Region) ScrollLines(delta int) {
	r.mu.Lock()
	defer r.mu.Unlock()

	switch {
	case delta > 0:
		r.vp.ScrollDown(delta)
	case delta < 0:
		r.vp.ScrollUp(-delta)
	}
	r.clampToDocument()
	r.refreshWrapMetrics()
	r.pinCursorToBand()
	r.needsRedraw = true
}

// ScrollPages scrolls by whole pages, positive toward the end of the
// document.
func (r *Region) ScrollPages(delta int) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for ; delta > 0; delta-- {
		r.vp.PageDown(r.opts.PageOverlap)
	}
	for ; delta < 0; delta++ {
		r.vp.PageUp(r.opts.PageOverlap)
	}
	r.clampToDocument()
	r.refreshWrapMetrics()
	r.pinCursorToBand()
	r.needsRedraw = true
}

// Height returns the number of document lines the region can show.
func (r *Region) Height() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.vp.Height()
}

// LineOffset returns the first document line the region displays.
func (r *Region) LineOffset() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.vp.LineOffset()
}

// VisibleRange returns the document lines currently inside the region,
// clamped to the document.
func (r *Region) VisibleRange() buffer.LineRange {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.visibleRange()
}

// ShowMessage displays a transient status message until cleared.
func (r *Region) ShowMessage(msg string, kind statusline.MessageType) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.status.SetMessage(msg, kind)
	r.needsRedraw = true
}

// ClearMessage removes the transient status message.
func (r *Region) ClearMessage() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.status.ClearMessage()
	r.needsRedraw = true
}

// MarkDirty marks the region as needing redraw.
func (r *Region) MarkDirty() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.needsRedraw = true
}

// NeedsRedraw returns whether the region needs redrawing.
func (r *Region) NeedsRedraw() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.needsRedraw
}

// Resize adapts the region to a new terminal size.
func (r *Region) Resize(width, height int) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.width = width
	r.height = height
	r.metrics = layout.NewMetrics(width, r.opts.TabWidth)
	r.status.Resize(width)
	r.refreshWrapMetrics()
	r.clampToDocument()
	r.pinCursorToBand()
	r.needsRedraw = true
}

// Render draws the region if it has pending changes.
func (r *Region) Render() {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.needsRedraw {
		return
	}
	r.render()
	r.needsRedraw = false
}

// RenderNow draws the region unconditionally.
func (r *Region) RenderNow() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.render()
	r.needsRedraw = false
}

// render performs the actual drawing (must hold lock).
func (r *Region) render() {
	r.backend.Clear()

	if r.doc == nil {
		r.backend.HideCursor()
		r.renderStatus()
		r.backend.Show()
		return
	}

	r.refreshWrapMetrics()

	visible := r.visibleRange()
	maxRow := r.contentRows()
	row := 0
	for line := visible.Start(); line < visible.End(); line++ {
		if row >= maxRow {
			break
		}
		text, ok := r.doc.Line(line)
		if !ok {
			break
		}
		row = r.renderLine(text, row, maxRow)
	}

	r.renderCursor(maxRow)
	r.renderStatus()
	r.backend.Show()
}

// renderLine draws one document line starting at a terminal row and
// returns the next free row.
func (r *Region) renderLine(text string, row, maxRow int) int {
	if !r.opts.Wrap {
		r.drawText(0, row, layout.Truncate(r.metrics.ExpandTabs(text), r.width))
		return row + 1
	}

	for _, seg := range r.metrics.WrapLine(text) {
		if row >= maxRow {
			break
		}
		r.drawText(0, row, seg)
		row++
	}
	return row
}

// renderCursor places the terminal cursor on the cursor line, or hides
// it when the line is outside the region.
func (r *Region) renderCursor(maxRow int) {
	p := r.vp.RelativePosition(r.cursor)
	if !p.IsVisible() {
		r.backend.HideCursor()
		return
	}

	row := r.cursorScreenRow(p.Row)
	if row >= maxRow {
		r.backend.HideCursor()
		return
	}
	r.backend.ShowCursor(0, row)
}

// cursorScreenRow converts a band-relative row into a terminal row,
// accounting for the extra rows wrapped lines above it occupy.
func (r *Region) cursorScreenRow(rel int) int {
	if !r.opts.Wrap {
		return rel
	}

	row := 0
	start := r.vp.LineOffset()
	for i := 0; i < rel; i++ {
		text, ok := r.doc.Line(start + i)
		if !ok {
			row++
			continue
		}
		row += r.metrics.RowsForLine(text)
	}
	return row
}

// renderStatus draws the status line on the reserved bottom row.
func (r *Region) renderStatus() {
	if r.height < 1 {
		return
	}
	if r.doc != nil {
		r.status.SetName(r.doc.Name())
		r.status.SetPosition(r.cursor + 1)
		r.status.SetTotalLines(r.doc.LineCount())
		r.status.SetScrollPercent(r.scrollPercent())
	}
	r.status.Render(r.backend, r.height-1)
}

// scrollPercent reports how far the band has scrolled through the
// document, 100 when the whole document fits.
func (r *Region) scrollPercent() int {
	maxOff := r.maxOffset()
	if maxOff <= 0 {
		return 100
	}
	return r.vp.LineOffset() * 100 / maxOff
}

// refreshWrapMetrics measures the extra rows wrapping adds to the
// visible band and feeds the result back to the viewport. The band and
// the count depend on each other, so the measurement repeats until it
// stops changing.
func (r *Region) refreshWrapMetrics() {
	if !r.opts.Wrap || r.doc == nil {
		r.vp.SetWrappedLineCount(0)
		return
	}

	for i := 0; i < wrapMetricPasses; i++ {
		extra := r.metrics.WrappedRowCount(r.doc.LinesIn(r.visibleRange()))
		if extra == r.vp.WrappedLineCount() {
			return
		}
		r.vp.SetWrappedLineCount(extra)
	}
}

// scrollCursorIntoView pins the band to the cursor and settles the wrap
// metrics the scroll may have changed.
func (r *Region) scrollCursorIntoView() {
	r.vp.ScrollIntoView(r.cursor)
	r.refreshWrapMetrics()
	if r.vp.Height() > 0 && !r.vp.RelativePosition(r.cursor).IsVisible() {
		r.vp.ScrollIntoView(r.cursor)
		r.refreshWrapMetrics()
	}
}

// visibleRange returns the viewport band clamped to the document
// (must hold lock).
func (r *Region) visibleRange() buffer.LineRange {
	rng := r.vp.VisibleRange()
	if r.doc != nil {
		rng = rng.Clamp(r.doc.LineCount())
	}
	return rng
}

// contentRows returns the terminal rows available for document content,
// excluding the status row.
func (r *Region) contentRows() int {
	rows := r.height - 1
	if rows < 0 {
		rows = 0
	}
	return rows
}

// maxOffset returns the largest line offset that still fills the region
// when the document has enough lines.
func (r *Region) maxOffset() int {
	if r.doc == nil {
		return 0
	}
	maxOff := r.doc.LineCount() - r.vp.Height()
	if maxOff < 0 {
		return 0
	}
	return maxOff
}

// clampToDocument pulls the offset back when scrolling ran past the
// last full screen of the document.
func (r *Region) clampToDocument() {
	if over := r.vp.LineOffset() - r.maxOffset(); over > 0 {
		r.vp.ScrollUp(over)
	}
}

// pinCursorToBand moves the cursor to the nearest edge of the band when
// the band moved away from it.
func (r *Region) pinCursorToBand() {
	visible := r.visibleRange()
	if visible.IsEmpty() || visible.Contains(r.cursor) {
		return
	}
	if r.cursor < visible.Start() {
		r.cursor = visible.Start()
	} else {
		r.cursor = visible.End() - 1
	}
	r.clampCursor()
}

// clampCursor bounds the cursor to the document.
func (r *Region) clampCursor() {
	last := 0
	if r.doc != nil && r.doc.LineCount() > 0 {
		last = r.doc.LineCount() - 1
	}
	if r.cursor > last {
		r.cursor = last
	}
	if r.cursor < 0 {
		r.cursor = 0
	}
}

// drawText draws a string starting at a column, stepping wide runes by
// their display width.
func (r *Region) drawText(x, y int, text string) {
	col := x
	for _, ch := range text {
		r.backend.SetCell(col, y, ch, backend.StyleDefault)
		w := layout.DisplayWidth(string(ch))
		if w < 1 {
			w = 1
		}
		col += w
	}
}
