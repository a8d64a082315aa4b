// Package statusline renders the one display row every region reserves:
// document name on the left, cursor position and scroll progress on the
// right, transient messages in between.
package statusline

import (
	"strconv"

	"github.com/dshills/lineview/internal/renderer/backend"
	"github.com/dshills/lineview/internal/renderer/layout"
)

// MessageType indicates the type of status message.
type MessageType int

const (
	MessageNone MessageType = iota
	MessageInfo
	MessageError
)

// StatusLine holds the state displayed on the reserved row.
type StatusLine struct {
	name          string
	line          int // 1-indexed for display
	totalLines    int
	percentScroll int
	message       string
	messageType   MessageType
	width         int
}

// New creates an empty status line.
func New() *StatusLine {
	return &StatusLine{}
}

// SetName updates the displayed document name.
func (s *StatusLine) SetName(name string) {
	s.name = name
}

// SetPosition updates the displayed cursor line (1-indexed).
func (s *StatusLine) SetPosition(line int) {
	s.line = line
}

// SetTotalLines updates the total line count.
func (s *StatusLine) SetTotalLines(total int) {
	s.totalLines = total
}

// SetScrollPercent updates the scroll percentage (0-100).
func (s *StatusLine) SetScrollPercent(percent int) {
	s.percentScroll = percent
}

// SetMessage displays a transient message in place of the name.
func (s *StatusLine) SetMessage(msg string, msgType MessageType) {
	s.message = msg
	s.messageType = msgType
}

// ClearMessage removes the transient message.
func (s *StatusLine) ClearMessage() {
	s.message = ""
	s.messageType = MessageNone
}

// Resize updates the row width.
func (s *StatusLine) Resize(width int) {
	s.width = width
}

// Render draws the status line to the backend at the given row.
func (s *StatusLine) Render(b backend.Backend, row int) {
	bar := backend.Style{Reverse: true}

	for x := 0; x < s.width; x++ {
		b.SetCell(x, row, ' ', bar)
	}

	// Right side first so the left side knows where to stop.
	pos := s.formatPosition()
	posWidth := layout.DisplayWidth(pos)
	posStart := s.width - posWidth - 1
	if posStart < 0 {
		posStart = 0
	}
	drawText(b, posStart, row, pos, bar)

	left := s.leftText()
	leftStyle := bar
	if s.message != "" && s.messageType == MessageError {
		leftStyle.Bold = true
	}
	maxLeft := posStart - 2
	if maxLeft > 0 {
		drawText(b, 1, row, layout.Truncate(left, maxLeft), leftStyle)
	}
}

// leftText returns the name or, when set, the transient message.
func (s *StatusLine) leftText() string {
	if s.message != "" {
		return s.message
	}
	if s.name == "" {
		return "[No Name]"
	}
	return s.name
}

// formatPosition formats the right side: "Ln 12/300 | 47%" with Top and
// Bot replacing the percentage at the extremes.
func (s *StatusLine) formatPosition() string {
	line := s.line
	if line < 1 {
		line = 1
	}

	result := "Ln " + strconv.Itoa(line)
	if s.totalLines > 0 {
		result += "/" + strconv.Itoa(s.totalLines)
		switch {
		case line <= 1:
			result += " | Top"
		case line >= s.totalLines:
			result += " | Bot"
		default:
			result += " | " + strconv.Itoa(s.percentScroll) + "%"
		}
	}
	return result
}

// drawText draws a string one cell per column, stepping wide runes by
// their display width.
func drawText(b backend.Backend, x, y int, text string, style backend.Style) {
	col := x
	for _, r := range text {
		b.SetCell(col, y, r, style)
		w := layout.DisplayWidth(string(r))
		if w < 1 {
			w = 1
		}
		col += w
	}
}
