package app

import (
	"github.com/dshills/lineview/internal/config"
	"github.com/dshills/lineview/internal/renderer/backend"
	"github.com/dshills/lineview/internal/renderer/statusline"
)

// eventLoop translates terminal events into display region operations.
// It blocks until the user quits or Shutdown is called.
func (app *Application) eventLoop() error {
	region := app.Region()
	region.RenderNow()

	for {
		select {
		case <-app.done:
			return nil
		default:
		}

		event := app.backend.PollEvent()

		// Shutdown may have fired while PollEvent was blocked.
		select {
		case <-app.done:
			return nil
		default:
		}

		if err := app.handleEvent(event); err != nil {
			return err
		}
		region.Render()
	}
}

// handleEvent dispatches a single terminal event.
func (app *Application) handleEvent(event backend.Event) error {
	switch event.Type {
	case backend.EventKey:
		return app.handleKey(event)
	case backend.EventMouse:
		app.handleMouse(event)
	case backend.EventResize:
		// The region already resized itself through the backend
		// callback; the repaint happens after dispatch.
		app.logger.Debug("resize to %dx%d", event.Width, event.Height)
	}
	return nil
}

// handleKey maps keys to region operations. Any status message is
// cleared first so transient notices vanish on the next keypress.
func (app *Application) handleKey(event backend.Event) error {
	region := app.Region()
	region.ClearMessage()

	step := app.scrollStep()

	switch event.Key {
	case backend.KeyRune:
		return app.handleRune(event.Rune)
	case backend.KeyEscape, backend.KeyCtrlC:
		return ErrQuit
	case backend.KeyUp:
		region.MoveCursor(-step)
	case backend.KeyDown, backend.KeyEnter:
		region.MoveCursor(step)
	case backend.KeyPageUp:
		region.ScrollPages(-1)
	case backend.KeyPageDown:
		region.ScrollPages(1)
	case backend.KeyHome:
		app.jumpTo(0)
	case backend.KeyEnd:
		app.jumpToEnd()
	case backend.KeyCtrlD:
		region.ScrollLines(app.halfPage())
	case backend.KeyCtrlU:
		region.ScrollLines(-app.halfPage())
	case backend.KeyCtrlF:
		region.ScrollPages(1)
	case backend.KeyCtrlB:
		region.ScrollPages(-1)
	case backend.KeyCtrlL:
		region.MarkDirty()
	}
	return nil
}

// handleRune maps printable keys to region operations.
func (app *Application) handleRune(r rune) error {
	region := app.Region()
	step := app.scrollStep()

	switch r {
	case 'q':
		return ErrQuit
	case 'j':
		region.MoveCursor(step)
	case 'k':
		region.MoveCursor(-step)
	case ' ', 'f':
		region.ScrollPages(1)
	case 'b':
		region.ScrollPages(-1)
	case 'd':
		region.ScrollLines(app.halfPage())
	case 'u':
		region.ScrollLines(-app.halfPage())
	case 'g':
		app.jumpTo(0)
	case 'G':
		app.jumpToEnd()
	case 'z':
		region.CenterCursor()
	}
	return nil
}

// handleMouse maps wheel events to line scrolls.
func (app *Application) handleMouse(event backend.Event) {
	region := app.Region()
	step := app.scrollStep()

	switch event.MouseButton {
	case backend.MouseWheelUp:
		region.ScrollLines(-step)
	case backend.MouseWheelDown:
		region.ScrollLines(step)
	}
}

// jumpTo moves the cursor to an absolute line.
func (app *Application) jumpTo(line int) {
	region := app.Region()
	region.SetCursor(line)
	if app.centerOnJump() {
		region.CenterCursor()
	}
}

// jumpToEnd moves the cursor to the last line of the document.
func (app *Application) jumpToEnd() {
	doc := app.Region().Document()
	if doc == nil {
		return
	}
	app.jumpTo(doc.LineCount() - 1)
}

// scrollStep returns the configured line step, at least 1.
func (app *Application) scrollStep() int {
	app.mu.RLock()
	defer app.mu.RUnlock()

	if app.cfg.Scroll.Step < 1 {
		return 1
	}
	return app.cfg.Scroll.Step
}

// centerOnJump reports whether absolute jumps recenter the view.
func (app *Application) centerOnJump() bool {
	app.mu.RLock()
	defer app.mu.RUnlock()
	return app.cfg.Scroll.CenterOnJump
}

// halfPage is the Ctrl-D and Ctrl-U scroll distance.
func (app *Application) halfPage() int {
	half := app.Region().Height() / 2
	if half < 1 {
		half = 1
	}
	return half
}

// onConfigReload applies a reloaded preferences file to the running
// pager. Wrap and tab settings are fixed at startup; scroll behavior
// and log level take effect immediately.
func (app *Application) onConfigReload(cfg config.Config) {
	app.mu.Lock()
	// Startup overrides keep priority over the file.
	if app.opts.LogLevel != "" {
		cfg.Log.Level = app.opts.LogLevel
	}
	if app.opts.Wrap != nil {
		cfg.Wrap.Enabled = *app.opts.Wrap
	}
	app.cfg = cfg
	app.mu.Unlock()

	app.logger.SetLevel(ParseLogLevel(cfg.Log.Level))
	app.logger.Info("preferences reloaded")

	if region := app.Region(); region != nil {
		region.ShowMessage("preferences reloaded", statusline.MessageInfo)
		region.Render()
	}
}
