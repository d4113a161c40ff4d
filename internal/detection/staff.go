package detection

// LinesPerStaff is the number of lines in a staff.
const LinesPerStaff = 5

// openProbeCol is the projection column that opens and closes a staff band.
const openProbeCol = 1

// Staff is one detected five-line staff.
type Staff struct {
	// Index is the staff's position in top-to-bottom order.
	Index int `json:"index"`

	// Lines holds the row of each staff line, top to bottom.
	Lines [LinesPerStaff]int `json:"lines"`

	// Top is the first row of the staff's glyph band (inclusive).
	Top int `json:"top"`

	// Bottom is the row at which the band closed (exclusive for scanning).
	Bottom int `json:"bottom"`
}

// StaffLayout is the result of staff detection.
type StaffLayout struct {
	// Staves lists every closed staff, top to bottom.
	Staves []Staff `json:"staves"`

	// Lines lists every detected line row in order, including lines of a
	// trailing staff that never closed. Staff k owns Lines[5k:5k+5].
	Lines []int `json:"lines"`

	// Projection holds the number of ink pixels in each row.
	Projection []int `json:"-"`
}

// Count returns the number of closed staves.
func (l *StaffLayout) Count() int {
	if l == nil {
		return 0
	}
	return len(l.Staves)
}

// Projection returns the number of ink pixels in every row of g.
func Projection(g *Grid) []int {
	counts := make([]int, g.Rows())
	for r := range counts {
		counts[r] = g.RowInk(r)
	}
	return counts
}

// ProjectionImage renders counts as horizontal bars: row r is ink on columns
// 0 through counts[r] inclusive, clipped to cols. Column 0 is therefore ink
// on every row.
func ProjectionImage(counts []int, cols int) *Grid {
	img := NewGrid(len(counts), cols)
	for r, n := range counts {
		end := minInt(n, cols-1)
		for c := 0; c <= end; c++ {
			img.Set(r, c, true)
		}
	}
	return img
}

// DetectStaves finds the staves of g.
//
// # Algorithm
//
// The horizontal projection of g is rendered as a bar image and scanned top
// to bottom with two independent probes:
//
//   - The open probe (column 1) opens a staff band on the first ink row seen
//     while no band is open and no lines are pending, and closes the band on
//     the first background row after exactly five lines were counted
//   - The line probe (a quarter of the width) counts every ink row as a staff
//     line, whether or not a band is open
//
// On every row the open rule runs first, then the line rule, then the close
// rule.
//
// # Limitations
//
// Input that does not follow the reference layout is not validated. A staff
// whose line count never reaches exactly five before its band ends never
// closes; it is dropped from Staves while its lines stay in Lines. Staff
// lines thicker than one row count as several lines.
func DetectStaves(g *Grid) *StaffLayout {
	counts := Projection(g)
	proj := ProjectionImage(counts, g.Cols())
	lineProbeCol := g.Cols() / 4

	layout := &StaffLayout{
		Staves:     make([]Staff, 0),
		Lines:      make([]int, 0),
		Projection: counts,
	}

	type band struct{ top, bottom int }
	bands := make([]band, 0)

	inStaff := false
	linesFound := 0
	start := 0
	for r := 0; r < proj.Rows(); r++ {
		if proj.Ink(r, openProbeCol) && !inStaff && linesFound == 0 {
			inStaff = true
			start = r
		}

		if proj.Ink(r, lineProbeCol) {
			layout.Lines = append(layout.Lines, r)
			linesFound++
		}

		if !proj.Ink(r, openProbeCol) && inStaff && linesFound == LinesPerStaff {
			inStaff = false
			bands = append(bands, band{top: start, bottom: r})
			linesFound = 0
		}
	}

	for k, b := range bands {
		first := k * LinesPerStaff
		if first+LinesPerStaff > len(layout.Lines) {
			break
		}
		s := Staff{Index: k, Top: b.top, Bottom: b.bottom}
		copy(s.Lines[:], layout.Lines[first:first+LinesPerStaff])
		layout.Staves = append(layout.Staves, s)
	}

	return layout
}
