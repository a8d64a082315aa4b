package statusline

import (
	"strings"
	"testing"

	"github.com/dshills/lineview/internal/renderer/backend"
)

func TestRenderShowsNameAndPosition(t *testing.T) {
	b := backend.NewNullBackend(40, 10)
	s := New()
	s.Resize(40)
	s.SetName("notes.txt")
	s.SetPosition(12)
	s.SetTotalLines(300)
	s.SetScrollPercent(47)

	s.Render(b, 9)

	row := b.RowString(9)
	if !strings.Contains(row, "notes.txt") {
		t.Errorf("expected name in status row, got %q", row)
	}
	if !strings.Contains(row, "Ln 12/300 | 47%") {
		t.Errorf("expected position info, got %q", row)
	}
}

func TestRenderUsesReverseVideo(t *testing.T) {
	b := backend.NewNullBackend(40, 10)
	s := New()
	s.Resize(40)

	s.Render(b, 9)

	if !b.StyleAt(0, 9).Reverse {
		t.Error("status bar should render in reverse video")
	}
	if !b.StyleAt(39, 9).Reverse {
		t.Error("status bar should span the full width")
	}
}

func TestRenderTopAndBottomMarkers(t *testing.T) {
	b := backend.NewNullBackend(40, 10)
	s := New()
	s.Resize(40)
	s.SetTotalLines(100)

	s.SetPosition(1)
	s.Render(b, 9)
	if !strings.Contains(b.RowString(9), "| Top") {
		t.Errorf("expected Top marker, got %q", b.RowString(9))
	}

	s.SetPosition(100)
	s.Render(b, 9)
	if !strings.Contains(b.RowString(9), "| Bot") {
		t.Errorf("expected Bot marker, got %q", b.RowString(9))
	}
}

func TestRenderWithoutTotalOmitsProgress(t *testing.T) {
	b := backend.NewNullBackend(40, 10)
	s := New()
	s.Resize(40)
	s.SetPosition(5)

	s.Render(b, 9)

	row := b.RowString(9)
	if !strings.Contains(row, "Ln 5") {
		t.Errorf("expected line number, got %q", row)
	}
	if strings.Contains(row, "|") {
		t.Errorf("expected no progress separator, got %q", row)
	}
}

func TestRenderMessageReplacesName(t *testing.T) {
	b := backend.NewNullBackend(40, 10)
	s := New()
	s.Resize(40)
	s.SetName("notes.txt")
	s.SetMessage("wrap on", MessageInfo)

	s.Render(b, 9)

	row := b.RowString(9)
	if !strings.Contains(row, "wrap on") {
		t.Errorf("expected message, got %q", row)
	}
	if strings.Contains(row, "notes.txt") {
		t.Errorf("message should replace name, got %q", row)
	}

	s.ClearMessage()
	s.Render(b, 9)
	if !strings.Contains(b.RowString(9), "notes.txt") {
		t.Errorf("expected name back after ClearMessage, got %q", b.RowString(9))
	}
}

func TestRenderErrorMessageIsBold(t *testing.T) {
	b := backend.NewNullBackend(40, 10)
	s := New()
	s.Resize(40)
	s.SetMessage("no such file", MessageError)

	s.Render(b, 9)

	if !b.StyleAt(1, 9).Bold {
		t.Error("error message should render bold")
	}
}

func TestRenderEmptyNamePlaceholder(t *testing.T) {
	b := backend.NewNullBackend(40, 10)
	s := New()
	s.Resize(40)

	s.Render(b, 9)

	if !strings.Contains(b.RowString(9), "[No Name]") {
		t.Errorf("expected placeholder, got %q", b.RowString(9))
	}
}

func TestRenderTruncatesLongNameBeforePosition(t *testing.T) {
	b := backend.NewNullBackend(30, 10)
	s := New()
	s.Resize(30)
	s.SetName(strings.Repeat("long", 20) + ".txt")
	s.SetPosition(2)
	s.SetTotalLines(10)
	s.SetScrollPercent(10)

	s.Render(b, 9)

	row := b.RowString(9)
	if !strings.Contains(row, "Ln 2/10") {
		t.Errorf("position info must survive long names, got %q", row)
	}
}
