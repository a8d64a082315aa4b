package app

import (
	"os"
	"sync"
	"sync/atomic"

	"github.com/dshills/lineview/internal/buffer"
	"github.com/dshills/lineview/internal/config"
	"github.com/dshills/lineview/internal/renderer"
	"github.com/dshills/lineview/internal/renderer/backend"
)

// Application is the central coordinator for the pager. It wires the
// preferences file, the logger, the terminal backend, and the display
// region together and runs the main event loop.
type Application struct {
	mu sync.RWMutex

	// Core infrastructure
	cfg     config.Config
	logger  *Logger
	logFile *os.File
	watcher *config.Watcher

	// Display components
	backend backend.Backend
	region  *renderer.Region

	// State
	running  atomic.Bool
	done     chan struct{}
	stopOnce sync.Once

	// Options
	opts Options
}

// Options configures the application.
type Options struct {
	// ConfigPath is the path to the preferences file. Empty means the
	// platform default location.
	ConfigPath string

	// Files are files to display on startup. Only the first is opened.
	Files []string

	// LogLevel overrides the configured logging verbosity.
	LogLevel string

	// Wrap overrides the configured soft-wrap setting when non-nil.
	Wrap *bool
}

// New creates a new Application with the given options.
func New(opts Options) (*Application, error) {
	app := &Application{
		opts: opts,
		done: make(chan struct{}),
	}

	if err := app.bootstrap(); err != nil {
		return nil, err
	}

	return app, nil
}

// bootstrap initializes components in dependency order.
func (app *Application) bootstrap() error {
	path := app.opts.ConfigPath
	if path == "" {
		path = config.DefaultPath()
	}

	// Preferences problems are non-fatal. Load falls back to the
	// defaults, and the error surfaces in the log once it exists.
	cfg, cfgErr := config.Load(path)

	if app.opts.LogLevel != "" {
		cfg.Log.Level = app.opts.LogLevel
	}
	if app.opts.Wrap != nil {
		cfg.Wrap.Enabled = *app.opts.Wrap
	}
	app.cfg = cfg

	if err := app.initLogger(cfg.Log); err != nil {
		return &InitError{Component: "logger", Err: err}
	}
	if cfgErr != nil {
		app.logger.Warn("preferences: %v", cfgErr)
	}

	if path != "" {
		watcher, err := config.NewWatcher(path)
		if err != nil {
			app.logger.Warn("preferences watch unavailable: %v", err)
		} else {
			watcher.OnChange(app.onConfigReload)
			app.watcher = watcher
		}
	}

	return nil
}

// initLogger builds the logger. Output goes to the configured log file
// or nowhere at all; the terminal is off limits while the backend owns
// it.
func (app *Application) initLogger(cfg config.LogConfig) error {
	logger := NewLogger(LoggerConfig{
		Level:  ParseLogLevel(cfg.Level),
		Prefix: "lineview",
	})

	if cfg.File != "" {
		f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return err
		}
		logger.SetOutput(f)
		app.logFile = f
	}

	app.logger = logger
	return nil
}

// SetBackend sets the terminal backend.
// Must be called before Run().
func (app *Application) SetBackend(b backend.Backend) error {
	app.mu.Lock()
	defer app.mu.Unlock()

	if app.running.Load() {
		return ErrAlreadyRunning
	}

	app.backend = b
	return nil
}

// Run starts the pager main loop.
// Blocks until the user quits or Shutdown is called.
func (app *Application) Run() error {
	if !app.running.CompareAndSwap(false, true) {
		return ErrAlreadyRunning
	}
	defer app.running.Store(false)
	defer app.closeLogFile()

	if app.backend == nil {
		return ErrNoBackend
	}

	if err := app.backend.Init(); err != nil {
		return &InitError{Component: "backend", Err: err}
	}
	defer app.backend.Shutdown()

	region := renderer.NewRegion(app.backend, app.regionOptions())
	app.mu.Lock()
	app.region = region
	app.mu.Unlock()

	if len(app.opts.Files) == 0 {
		return NewOperationError("run", "", ErrNoDocument)
	}
	if err := app.OpenFile(app.opts.Files[0]); err != nil {
		return err
	}

	if app.watcher != nil {
		if err := app.watcher.Start(); err != nil {
			app.logger.Warn("preferences watch failed: %v", err)
		} else {
			defer app.watcher.Stop()
		}
	}

	app.logger.Info("started")
	err := app.eventLoop()
	app.logger.Info("exiting")
	return err
}

// regionOptions maps the current preferences onto display options.
func (app *Application) regionOptions() renderer.Options {
	app.mu.RLock()
	defer app.mu.RUnlock()

	opts := renderer.DefaultOptions()
	opts.Wrap = app.cfg.Wrap.Enabled
	opts.TabWidth = app.cfg.Wrap.TabWidth
	opts.PageOverlap = app.cfg.Scroll.PageOverlap
	return opts
}

// OpenFile reads a file into a document and hands it to the display
// region.
func (app *Application) OpenFile(path string) error {
	region := app.Region()
	if region == nil {
		return ErrNotRunning
	}

	f, err := os.Open(path)
	if err != nil {
		return NewOperationError("open", path, err)
	}
	defer f.Close()

	doc, err := buffer.NewDocument(path, f)
	if err != nil {
		return NewOperationError("read", path, err)
	}

	region.SetDocument(doc)
	app.logger.WithFields(map[string]any{
		"file":  path,
		"lines": doc.LineCount(),
	}).Info("opened document")
	return nil
}

// Shutdown initiates graceful shutdown. Safe to call from any
// goroutine, including a signal handler.
func (app *Application) Shutdown() {
	if !app.running.Load() {
		return
	}

	app.stopOnce.Do(func() {
		close(app.done)
		// Wake the event loop if it is blocked in PollEvent.
		app.mu.RLock()
		b := app.backend
		app.mu.RUnlock()
		if b != nil {
			b.PostEvent(backend.Event{Type: backend.EventNone})
		}
	})
}

// closeLogFile closes the log file, if one was opened.
func (app *Application) closeLogFile() {
	if app.logFile != nil {
		_ = app.logFile.Close()
		app.logFile = nil
	}
}

// IsRunning returns true if the application is running.
func (app *Application) IsRunning() bool {
	return app.running.Load()
}

// Region returns the display region, or nil before Run.
func (app *Application) Region() *renderer.Region {
	app.mu.RLock()
	defer app.mu.RUnlock()
	return app.region
}

// Config returns the current preferences.
func (app *Application) Config() config.Config {
	app.mu.RLock()
	defer app.mu.RUnlock()
	return app.cfg
}

// Logger returns the application logger.
func (app *Application) Logger() *Logger {
	return app.logger
}

// InitError represents an initialization error.
type InitError struct {
	Component string
	Err       error
}

func (e *InitError) Error() string {
	return "init " + e.Component + ": " + e.Err.Error()
}

func (e *InitError) Unwrap() error {
	return e.Err
}
