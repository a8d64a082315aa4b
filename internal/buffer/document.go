package buffer

import (
	"io"
	"strings"
)

// Document is an immutable, line-oriented snapshot of text. Construction
// splits the input into logical lines once; every later access is a cheap
// slice read, which keeps render loops allocation-free.
type Document struct {
	name  string
	lines []string
}

// NewDocument reads all of r and splits it into lines.
func NewDocument(name string, r io.Reader) (*Document, error) {
	// Read all content first so CRLF sequences split across read
	// boundaries normalize correctly.
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return FromLines(name, SplitLines(string(data))), nil
}

// FromLines creates a Document from pre-split lines. The slice is used
// directly; callers must not modify it afterwards.
func FromLines(name string, lines []string) *Document {
	return &Document{name: name, lines: lines}
}

// Name returns the display name of the document.
func (d *Document) Name() string { return d.name }

// LineCount returns the number of logical lines.
func (d *Document) LineCount() int { return len(d.lines) }

// Line returns the 0-indexed line i without its line ending. The second
// return is false when i is out of range.
func (d *Document) Line(i int) (string, bool) {
	if i < 0 || i >= len(d.lines) {
		return "", false
	}
	return d.lines[i], true
}

// LinesIn returns the lines covered by r, clamped to the document. The
// returned slice aliases the document's backing store.
func (d *Document) LinesIn(r LineRange) []string {
	r = r.Clamp(len(d.lines))
	return d.lines[r.Start():r.End()]
}

// SplitLines splits text into logical lines. CRLF and bare CR normalize
// to LF before splitting, and a trailing newline does not produce a
// phantom empty final line.
func SplitLines(text string) []string {
	if text == "" {
		return nil
	}
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	lines := strings.Split(text, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}
