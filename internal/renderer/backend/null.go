package backend

import "strings"

// cell is one drawn screen position.
type cell struct {
	r     rune
	style Style
}

// NullBackend is an in-memory Backend for tests. It records every drawn
// cell and the cursor state, accepts posted events, and can simulate
// terminal resizes.
type NullBackend struct {
	width, height int
	cells         [][]cell
	cursorX       int
	cursorY       int
	cursorVisible bool
	resizeHandler func(width, height int)
	events        chan Event
}

// NewNullBackend creates a null backend with the given dimensions.
func NewNullBackend(width, height int) *NullBackend {
	b := &NullBackend{
		width:  width,
		height: height,
		events: make(chan Event, 100),
	}
	b.reset()
	return b
}

func (b *NullBackend) reset() {
	b.cells = make([][]cell, b.height)
	for y := range b.cells {
		b.cells[y] = make([]cell, b.width)
		for x := range b.cells[y] {
			b.cells[y][x] = cell{r: ' '}
		}
	}
}

func (b *NullBackend) Init() error {
	b.reset()
	return nil
}

func (b *NullBackend) Shutdown() {}

func (b *NullBackend) Size() (int, int) {
	return b.width, b.height
}

func (b *NullBackend) Height() int {
	return b.height
}

func (b *NullBackend) OnResize(callback func(width, height int)) {
	b.resizeHandler = callback
}

func (b *NullBackend) SetCell(x, y int, r rune, style Style) {
	if x >= 0 && x < b.width && y >= 0 && y < b.height {
		b.cells[y][x] = cell{r: r, style: style}
	}
}

func (b *NullBackend) Clear() {
	b.reset()
}

func (b *NullBackend) Show() {}

func (b *NullBackend) ShowCursor(x, y int) {
	b.cursorX = x
	b.cursorY = y
	b.cursorVisible = true
}

func (b *NullBackend) HideCursor() {
	b.cursorVisible = false
}

func (b *NullBackend) PollEvent() Event {
	return <-b.events
}

func (b *NullBackend) PostEvent(event Event) {
	select {
	case b.events <- event:
	default:
		// Dropped if the queue is full; tests never queue that deep.
	}
}

// CursorPosition returns the current cursor state for assertions.
func (b *NullBackend) CursorPosition() (x, y int, visible bool) {
	return b.cursorX, b.cursorY, b.cursorVisible
}

// RuneAt returns the rune drawn at a position, or space when out of
// bounds.
func (b *NullBackend) RuneAt(x, y int) rune {
	if x >= 0 && x < b.width && y >= 0 && y < b.height {
		return b.cells[y][x].r
	}
	return ' '
}

// StyleAt returns the style drawn at a position.
func (b *NullBackend) StyleAt(x, y int) Style {
	if x >= 0 && x < b.width && y >= 0 && y < b.height {
		return b.cells[y][x].style
	}
	return StyleDefault
}

// RowString returns row y as a string with trailing blanks removed.
func (b *NullBackend) RowString(y int) string {
	if y < 0 || y >= b.height {
		return ""
	}
	var sb strings.Builder
	for x := 0; x < b.width; x++ {
		sb.WriteRune(b.cells[y][x].r)
	}
	return strings.TrimRight(sb.String(), " ")
}

// Resize simulates a terminal resize.
func (b *NullBackend) Resize(width, height int) {
	b.width = width
	b.height = height
	b.reset()
	if b.resizeHandler != nil {
		b.resizeHandler(width, height)
	}
}
