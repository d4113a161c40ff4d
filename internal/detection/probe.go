package detection

import (
	"fmt"

	"github.com/StefanCiuprina/sheet-music-reader/internal/notation"
)

// Box is a rectangle of pixel offsets relative to a glyph origin. Both ends
// are inclusive on both axes, so a single pixel is Box{r, c, r, c}.
type Box struct {
	Top    int `json:"top"`
	Left   int `json:"left"`
	Bottom int `json:"bottom"`
	Right  int `json:"right"`
}

// Pixel returns the one-pixel box at (row, col).
func Pixel(row, col int) Box {
	return Box{Top: row, Left: col, Bottom: row, Right: col}
}

// VRun returns a vertical run in column col covering rows from..to.
func VRun(col, from, to int) Box {
	return Box{Top: from, Left: col, Bottom: to, Right: col}
}

// HRun returns a horizontal run in row row covering columns from..to.
func HRun(row, from, to int) Box {
	return Box{Top: row, Left: from, Bottom: row, Right: to}
}

// Height returns the number of rows covered by b.
func (b Box) Height() int { return b.Bottom - b.Top + 1 }

// Width returns the number of columns covered by b.
func (b Box) Width() int { return b.Right - b.Left + 1 }

// Union returns the smallest box containing both b and o.
func (b Box) Union(o Box) Box {
	return Box{
		Top:    minInt(b.Top, o.Top),
		Left:   minInt(b.Left, o.Left),
		Bottom: maxInt(b.Bottom, o.Bottom),
		Right:  maxInt(b.Right, o.Right),
	}
}

// Fits reports whether b, anchored at origin, lies entirely inside g.
func (b Box) Fits(g *Grid, origin notation.Origin) bool {
	return g.Inside(origin.Row+b.Top, origin.Col+b.Left) &&
		g.Inside(origin.Row+b.Bottom, origin.Col+b.Right)
}

// Check is the predicate a Probe applies to the pixels of its box.
type Check int

const (
	// AllInk holds when every pixel of the box is ink (a solid stroke).
	AllInk Check = iota
	// AnyInk holds when at least one pixel of the box is ink.
	AnyInk
	// NoInk holds when every pixel of the box is background.
	NoInk
)

func (c Check) String() string {
	switch c {
	case AllInk:
		return "all-ink"
	case AnyInk:
		return "any-ink"
	case NoInk:
		return "no-ink"
	default:
		return fmt.Sprintf("Check(%d)", int(c))
	}
}

// Probe is one structural test of a glyph template.
type Probe struct {
	Role  string `json:"role"`
	Box   Box    `json:"box"`
	Check Check  `json:"check"`
}

// Match evaluates p against g with its box anchored at origin. Pixels
// outside the grid read as background; callers are expected to bounds-check
// the enclosing glyph extent first.
func (p Probe) Match(g *Grid, origin notation.Origin) bool {
	for r := p.Box.Top; r <= p.Box.Bottom; r++ {
		for c := p.Box.Left; c <= p.Box.Right; c++ {
			ink := g.Ink(origin.Row+r, origin.Col+c)
			switch p.Check {
			case AllInk:
				if !ink {
					return false
				}
			case NoInk:
				if ink {
					return false
				}
			case AnyInk:
				if ink {
					return true
				}
			}
		}
	}
	return p.Check != AnyInk
}

// MatchAll reports whether every probe matches at origin. An empty probe
// list never matches, so a misconfigured template cannot accept everything.
func MatchAll(g *Grid, origin notation.Origin, probes []Probe) bool {
	if len(probes) == 0 {
		return false
	}
	for _, p := range probes {
		if !p.Match(g, origin) {
			return false
		}
	}
	return true
}

// Extent returns the smallest box covering every probe, or the zero Box for
// an empty list.
func Extent(probes []Probe) Box {
	if len(probes) == 0 {
		return Box{}
	}
	ext := probes[0].Box
	for _, p := range probes[1:] {
		ext = ext.Union(p.Box)
	}
	return ext
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
