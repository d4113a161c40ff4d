package detection

import (
	"sync"

	"github.com/StefanCiuprina/sheet-music-reader/internal/notation"
)

// Scanner walks every staff band of a grid and classifies the glyphs it
// finds.
type Scanner struct {
	// Templates holds the glyph geometry. Nil means DefaultTemplates.
	Templates *Templates

	// Parallel scans staves on separate goroutines. The output is identical
	// to a sequential scan.
	Parallel bool
}

// Scan runs a sequential scan with the default templates.
func Scan(g *Grid, layout *StaffLayout) []notation.Symbol {
	return (&Scanner{}).Scan(g, layout)
}

// Scan returns the symbols of every staff in layout, in emission order:
// staff by staff, then column by column, then row by row within a column.
//
// At each position a note is tried first. A note match resolves its pitch
// at the origin row plus the template pitch offset and advances the column
// cursor by NoteSkip; the remaining rows of the current sweep are then
// probed on the advanced column. When no note matches, a rest is tried and
// the cursor is left in place.
func (s *Scanner) Scan(g *Grid, layout *StaffLayout) []notation.Symbol {
	symbols := make([]notation.Symbol, 0)
	if layout.Count() == 0 {
		return symbols
	}

	t := s.Templates
	if t == nil {
		t = DefaultTemplates()
	}

	if !s.Parallel || layout.Count() == 1 {
		for _, staff := range layout.Staves {
			symbols = append(symbols, t.scanStaff(g, staff, layout.Lines)...)
		}
		return symbols
	}

	parts := make([][]notation.Symbol, layout.Count())
	var wg sync.WaitGroup
	for i, staff := range layout.Staves {
		wg.Add(1)
		go func(i int, staff Staff) {
			defer wg.Done()
			parts[i] = t.scanStaff(g, staff, layout.Lines)
		}(i, staff)
	}
	wg.Wait()

	for _, part := range parts {
		symbols = append(symbols, part...)
	}
	return symbols
}

// scanStaff scans one staff band.
func (t *Templates) scanStaff(g *Grid, staff Staff, lines []int) []notation.Symbol {
	out := make([]notation.Symbol, 0)
	for col := 0; col < g.Cols(); col++ {
		for row := staff.Top; row < staff.Bottom; row++ {
			origin := notation.Origin{Row: row, Col: col}

			if d, stem := t.ClassifyNote(g, origin); d.Valid() {
				pitch := MapPitch(staff.Index, row+t.PitchOffset(stem), lines)
				out = append(out, notation.NewNote(staff.Index, origin, d, stem, pitch))
				col += t.NoteSkip
				continue
			}

			if d := t.ClassifyPause(g, origin); d.Valid() {
				out = append(out, notation.NewPause(staff.Index, origin, d))
			}
		}
	}
	return out
}
