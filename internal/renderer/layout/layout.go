// Package layout computes soft-wrap metrics for the renderer: how many
// display rows a logical line occupies at a given width, and the row
// contents themselves.
//
// Widths are measured in terminal cells, not runes or bytes. Text is
// walked by grapheme cluster so combining sequences and emoji count as
// one unit, and East Asian wide characters count as two cells.
package layout

import (
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// DefaultTabWidth is the tab stop distance used when none is configured.
const DefaultTabWidth = 4

// Metrics measures lines against a display width.
type Metrics struct {
	// Width is the region width in cells. Zero or negative disables
	// wrapping: every line occupies exactly one row.
	Width int

	// TabWidth is the distance between tab stops. Always >= 1.
	TabWidth int
}

// NewMetrics creates metrics for the given width and tab stops.
func NewMetrics(width, tabWidth int) Metrics {
	if tabWidth < 1 {
		tabWidth = DefaultTabWidth
	}
	return Metrics{Width: width, TabWidth: tabWidth}
}

// WrapLine splits one logical line into the display rows it occupies.
// Tabs expand to the next tab stop, clipped at the row edge; a grapheme
// that does not fit the remainder of a row starts the next one. Every
// line occupies at least one row, so an empty line yields one empty row.
func (m Metrics) WrapLine(line string) []string {
	if m.Width <= 0 {
		return []string{m.ExpandTabs(line)}
	}

	var (
		rows []string
		row  strings.Builder
		col  int
	)
	flush := func() {
		rows = append(rows, row.String())
		row.Reset()
		col = 0
	}

	state := -1
	rest := line
	for len(rest) > 0 {
		var cluster string
		cluster, rest, _, state = uniseg.StepString(rest, state)

		if cluster == "\t" {
			if col >= m.Width {
				flush()
			}
			pad := m.tabStop(col)
			if col+pad > m.Width {
				pad = m.Width - col
			}
			for i := 0; i < pad; i++ {
				row.WriteByte(' ')
			}
			col += pad
			continue
		}

		w := runewidth.StringWidth(cluster)
		if w <= 0 {
			// Zero-width cluster rides along with the current row.
			row.WriteString(cluster)
			continue
		}
		if col+w > m.Width && col > 0 {
			flush()
		}
		row.WriteString(cluster)
		col += w
	}

	rows = append(rows, row.String())
	return rows
}

// RowsForLine returns the number of display rows line occupies. Always
// at least 1.
func (m Metrics) RowsForLine(line string) int {
	return len(m.WrapLine(line))
}

// ExtraRowsForLine returns the rows line occupies beyond its first.
func (m Metrics) ExtraRowsForLine(line string) int {
	return m.RowsForLine(line) - 1
}

// WrappedRowCount returns the total extra display rows the given lines
// consume through wrapping. This is the value a display region feeds to
// its viewport when wrap metrics change.
func (m Metrics) WrappedRowCount(lines []string) int {
	total := 0
	for _, line := range lines {
		total += m.ExtraRowsForLine(line)
	}
	return total
}

// ExpandTabs replaces tabs with spaces up to the next tab stop, counting
// columns across the whole line.
func (m Metrics) ExpandTabs(line string) string {
	if !strings.ContainsRune(line, '\t') {
		return line
	}

	var sb strings.Builder
	col := 0
	state := -1
	rest := line
	for len(rest) > 0 {
		var cluster string
		cluster, rest, _, state = uniseg.StepString(rest, state)

		if cluster == "\t" {
			pad := m.tabStop(col)
			for i := 0; i < pad; i++ {
				sb.WriteByte(' ')
			}
			col += pad
			continue
		}
		sb.WriteString(cluster)
		col += runewidth.StringWidth(cluster)
	}
	return sb.String()
}

// tabStop returns the cells from col to the next tab stop.
func (m Metrics) tabStop(col int) int {
	tw := m.TabWidth
	if tw < 1 {
		tw = DefaultTabWidth
	}
	return tw - col%tw
}

// DisplayWidth returns the width of s in terminal cells.
func DisplayWidth(s string) int {
	return runewidth.StringWidth(s)
}

// Truncate cuts s to at most width cells.
func Truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	return runewidth.Truncate(s, width, "")
}
