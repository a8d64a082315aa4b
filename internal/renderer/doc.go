// Package renderer provides the display layer for the lineview pager.
//
// The renderer is responsible for:
//   - Tracking which document lines a fixed-height region shows
//   - Line layout with tab expansion and Unicode handling
//   - Minimal scrolling to keep the cursor visible
//   - Status line rendering on the reserved bottom row
//   - Backend abstraction for terminal output
//
// Architecture:
//
// The renderer follows a layered design:
//
//	┌─────────────────────────────────────────┐
//	│            Region (Facade)              │
//	├─────────────────────────────────────────┤
//	│  Viewport │  Layout   │  StatusLine     │
//	│  Scrolling│  Wrapping │  Position       │
//	├─────────────────────────────────────────┤
//	│           Backend Abstraction           │
//	├─────────────────────────────────────────┤
//	│  Screen (tcell)  │  NullBackend (test)  │
//	└─────────────────────────────────────────┘
//
// Usage:
//
//	screen, _ := backend.NewScreen()
//	r := renderer.NewRegion(screen, renderer.DefaultOptions())
//	r.SetDocument(doc)
//	r.Render()
package renderer
