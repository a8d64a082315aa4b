// Package backend provides the terminal abstraction the renderer draws
// to: a tcell-backed screen for real terminals and an in-memory null
// backend for tests.
package backend

// EventType identifies the type of terminal event.
type EventType int

const (
	EventNone EventType = iota
	EventKey
	EventMouse
	EventResize
)

// Event represents a terminal event.
type Event struct {
	Type EventType

	// Key event fields
	Key  Key
	Rune rune
	Mod  ModMask

	// Mouse event fields
	MouseX, MouseY int
	MouseButton    MouseButton

	// Resize event fields
	Width, Height int
}

// Key represents a keyboard key.
type Key int

// Key constants for the keys the pager responds to. Printable characters
// arrive as KeyRune with the Rune field set.
const (
	KeyNone Key = iota
	KeyRune
	KeyEscape
	KeyEnter
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyCtrlC
	KeyCtrlD
	KeyCtrlU
	KeyCtrlB
	KeyCtrlF
	KeyCtrlL
)

// ModMask represents modifier key state.
type ModMask int

const (
	ModNone  ModMask = 0
	ModShift ModMask = 1 << iota
	ModCtrl
	ModAlt
)

// Has returns true if the mask contains the given modifier.
func (m ModMask) Has(mod ModMask) bool {
	return m&mod != 0
}

// MouseButton represents mouse button state.
type MouseButton int

const (
	MouseNone MouseButton = iota
	MouseLeft
	MouseWheelUp
	MouseWheelDown
)

// Style describes how a cell is drawn. The zero value is the terminal's
// default rendition.
type Style struct {
	Bold      bool
	Dim       bool
	Reverse   bool
	Underline bool
}

// StyleDefault is the terminal's default rendition.
var StyleDefault = Style{}

// Backend defines the drawing and event surface the renderer uses.
// Implementations handle the actual terminal (or stand in for one).
type Backend interface {
	// Init prepares the backend for use. Must be called before any
	// other method.
	Init() error

	// Shutdown releases resources and restores the terminal state.
	Shutdown()

	// Size returns the current terminal dimensions.
	Size() (width, height int)

	// Height returns the current number of display rows. It is the
	// capability display regions depend on to derive their own height.
	Height() int

	// OnResize registers a callback invoked when the terminal resizes.
	OnResize(callback func(width, height int))

	// SetCell draws a single cell. Positions outside the terminal are
	// silently ignored.
	SetCell(x, y int, r rune, style Style)

	// Clear erases the screen with the default style.
	Clear()

	// Show flushes pending changes to the display.
	Show()

	// ShowCursor positions and displays the cursor.
	ShowCursor(x, y int)

	// HideCursor hides the cursor.
	HideCursor()

	// PollEvent blocks until the next terminal event arrives.
	PollEvent() Event

	// PostEvent posts a synthetic event to the event queue.
	PostEvent(event Event)
}
