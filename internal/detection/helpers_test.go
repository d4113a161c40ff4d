package detection

import (
	"testing"

	"github.com/StefanCiuprina/sheet-music-reader/internal/notation"
)

// paintProbes inks every box of probes at origin.
func paintProbes(g *Grid, origin notation.Origin, probes ...Probe) {
	for _, p := range probes {
		g.Paint(origin, p.Box)
	}
}

// paintNote draws a note glyph of duration d using the default templates.
// For stemmed notes stem must be StemDown or StemUp.
func paintNote(t *testing.T, g *Grid, origin notation.Origin, d notation.NoteDuration, stem notation.Stem) {
	t.Helper()
	tpl := DefaultTemplates()

	if d == notation.NoteWhole {
		paintProbes(g, origin, tpl.Note.Whole...)
		return
	}

	var head HeadTemplate
	switch stem {
	case notation.StemDown:
		paintProbes(g, origin, tpl.Note.StemRight...)
		head = tpl.Note.Down
	case notation.StemUp:
		paintProbes(g, origin, tpl.Note.StemLeft...)
		head = tpl.Note.Up
	default:
		t.Fatalf("paintNote: unsupported stem %v", stem)
	}

	paintProbes(g, origin, head.Head...)
	if d == notation.NoteQuarter || d == notation.NoteEighth {
		paintProbes(g, origin, head.Fill)
	}
	if d == notation.NoteEighth {
		paintProbes(g, origin, head.Tail...)
	}
}

// paintPause draws a rest glyph of duration d using the default templates.
func paintPause(t *testing.T, g *Grid, origin notation.Origin, d notation.PauseDuration) {
	t.Helper()
	tpl := DefaultTemplates()

	switch d {
	case notation.PauseHalf:
		paintProbes(g, origin, tpl.Pause.Half...)
	case notation.PauseQuarter:
		paintProbes(g, origin, tpl.Pause.Quarter...)
	case notation.PauseEighth:
		paintProbes(g, origin, tpl.Pause.Eighth...)
	default:
		t.Fatalf("paintPause: unsupported duration %v", d)
	}
}

// paintStaffLines draws full-width staff lines at the given rows.
func paintStaffLines(g *Grid, rows ...int) {
	for _, r := range rows {
		for c := 0; c < g.Cols(); c++ {
			g.Set(r, c, true)
		}
	}
}

// createScoreGrid builds a 100×200 grid with one staff (lines at rows 40,
// 50, 60, 70, 80), a half note with its head below the stem at (24, 30), a
// quarter rest at (45, 80) and a whole note at (36, 130).
func createScoreGrid(t *testing.T) *Grid {
	t.Helper()
	g := NewGrid(100, 200)
	drawScore(t, g, 0)
	return g
}

// drawScore paints the createScoreGrid content shifted down by offset rows.
func drawScore(t *testing.T, g *Grid, offset int) {
	t.Helper()
	paintStaffLines(g, 40+offset, 50+offset, 60+offset, 70+offset, 80+offset)
	paintNote(t, g, notation.Origin{Row: 24 + offset, Col: 30}, notation.NoteHalf, notation.StemDown)
	paintPause(t, g, notation.Origin{Row: 45 + offset, Col: 80}, notation.PauseQuarter)
	paintNote(t, g, notation.Origin{Row: 36 + offset, Col: 130}, notation.NoteWhole, notation.StemNone)
}
