package viewport

import "fmt"

// Visibility classifies an absolute line against the visible band.
type Visibility uint8

const (
	AboveRegion     Visibility = iota // line precedes the band
	VisibleInRegion                   // line is inside the band
	BelowRegion                       // line is at or past the band's end
)

// String returns the string representation of the visibility.
func (vis Visibility) String() string {
	switch vis {
	case AboveRegion:
		return "above"
	case VisibleInRegion:
		return "visible"
	case BelowRegion:
		return "below"
	default:
		return "unknown"
	}
}

// Placement is the result of classifying a line against the band. Row
// carries the line's offset from the band's first row and is meaningful
// only when Visibility is VisibleInRegion; for the other variants it is
// always 0, which keeps Placement values comparable with ==.
type Placement struct {
	Visibility Visibility
	Row        int
}

// Above and Below are the placements of lines outside the band.
var (
	Above = Placement{Visibility: AboveRegion}
	Below = Placement{Visibility: BelowRegion}
)

// Visible returns the placement of a line row rows below the band's
// first line. Row 0 is the first visible row.
func Visible(row int) Placement {
	return Placement{Visibility: VisibleInRegion, Row: row}
}

// IsVisible returns true for placements inside the band.
func (p Placement) IsVisible() bool {
	return p.Visibility == VisibleInRegion
}

// String returns a human-readable representation of the placement.
func (p Placement) String() string {
	if p.Visibility == VisibleInRegion {
		return fmt.Sprintf("visible(%d)", p.Row)
	}
	return p.Visibility.String()
}
