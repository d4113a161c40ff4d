package detection

import "github.com/StefanCiuprina/sheet-music-reader/internal/notation"

// Grid is a two-valued (ink/background) pixel grid.
//
// A Grid is produced by the binarization step and treated as read-only for
// the duration of a recognition pass, so it can be shared by any number of
// goroutines without synchronization. Set exists for the code that builds a
// grid and must not be called while a pass is running.
type Grid struct {
	rows int
	cols int
	ink  []bool
}

// NewGrid returns a rows × cols grid with every pixel set to background.
// Negative dimensions are treated as zero.
func NewGrid(rows, cols int) *Grid {
	if rows < 0 {
		rows = 0
	}
	if cols < 0 {
		cols = 0
	}
	return &Grid{
		rows: rows,
		cols: cols,
		ink:  make([]bool, rows*cols),
	}
}

// Rows returns the grid height in pixels.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the grid width in pixels.
func (g *Grid) Cols() int { return g.cols }

// Inside reports whether (row, col) lies within the grid.
func (g *Grid) Inside(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.cols
}

// Ink reports whether the pixel at (row, col) is ink. Coordinates outside
// the grid read as background.
func (g *Grid) Ink(row, col int) bool {
	if !g.Inside(row, col) {
		return false
	}
	return g.ink[row*g.cols+col]
}

// Set marks the pixel at (row, col) as ink or background. Coordinates
// outside the grid are ignored.
func (g *Grid) Set(row, col int, ink bool) {
	if !g.Inside(row, col) {
		return
	}
	g.ink[row*g.cols+col] = ink
}

// Paint marks every pixel of box, anchored at origin, as ink. Pixels that
// fall outside the grid are skipped.
func (g *Grid) Paint(origin notation.Origin, box Box) {
	for r := box.Top; r <= box.Bottom; r++ {
		for c := box.Left; c <= box.Right; c++ {
			g.Set(origin.Row+r, origin.Col+c, true)
		}
	}
}

// RowInk returns the number of ink pixels in row, or 0 for rows outside the
// grid.
func (g *Grid) RowInk(row int) int {
	if row < 0 || row >= g.rows {
		return 0
	}
	count := 0
	for _, v := range g.ink[row*g.cols : (row+1)*g.cols] {
		if v {
			count++
		}
	}
	return count
}
