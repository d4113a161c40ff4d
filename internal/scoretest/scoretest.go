// Package scoretest builds synthetic score images for tests of the packages
// that sit above detection. Glyphs are painted from the default template
// probes, so a painted score is recognized exactly.
package scoretest

import (
	"bytes"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/StefanCiuprina/sheet-music-reader/internal/detection"
	"github.com/StefanCiuprina/sheet-music-reader/internal/imaging"
	"github.com/StefanCiuprina/sheet-music-reader/internal/notation"
)

// Score dimensions.
const (
	Rows = 100
	Cols = 200
)

// StaffLines are the line rows of the single staff in Grid.
var StaffLines = [5]int{40, 50, 60, 70, 80}

func paint(g *detection.Grid, origin notation.Origin, probes ...detection.Probe) {
	for _, p := range probes {
		g.Paint(origin, p.Box)
	}
}

// Grid returns a 100×200 grid with one staff, a half note with its head
// below the stem at (24, 30), a quarter rest at (45, 80) and a whole note at
// (36, 130).
func Grid() *detection.Grid {
	tpl := detection.DefaultTemplates()
	g := detection.NewGrid(Rows, Cols)

	for _, r := range StaffLines {
		for c := 0; c < Cols; c++ {
			g.Set(r, c, true)
		}
	}

	half := notation.Origin{Row: 24, Col: 30}
	paint(g, half, tpl.Note.StemRight...)
	paint(g, half, tpl.Note.Down.Head...)

	paint(g, notation.Origin{Row: 45, Col: 80}, tpl.Pause.Quarter...)
	paint(g, notation.Origin{Row: 36, Col: 130}, tpl.Note.Whole...)
	return g
}

// Symbols returns what a scan of Grid produces.
func Symbols() []notation.Symbol {
	return []notation.Symbol{
		notation.NewNote(0, notation.Origin{Row: 24, Col: 30}, notation.NoteHalf, notation.StemDown, notation.PitchB4),
		notation.NewPause(0, notation.Origin{Row: 45, Col: 80}, notation.PauseQuarter),
		notation.NewNote(0, notation.Origin{Row: 36, Col: 130}, notation.NoteWhole, notation.StemNone, notation.PitchF5),
	}
}

// Image renders Grid in black on white.
func Image() *image.RGBA {
	return imaging.NewOverlay(Grid(), imaging.DefaultPalette()).Image()
}

// PNG returns Image encoded as PNG.
func PNG(t testing.TB) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, Image()); err != nil {
		t.Fatalf("failed to encode score: %v", err)
	}
	return buf.Bytes()
}

// WritePNG writes the score into a temp directory and returns its path.
func WritePNG(t testing.TB) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "score.png")
	if err := os.WriteFile(path, PNG(t), 0o600); err != nil {
		t.Fatalf("failed to write score: %v", err)
	}
	return path
}

// WriteBlankPNG writes a white image with no staves and returns its path.
func WriteBlankPNG(t testing.TB, width, height int) string {
	t.Helper()
	g := detection.NewGrid(height, width)
	img := imaging.NewOverlay(g, imaging.DefaultPalette()).Image()

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("failed to encode image: %v", err)
	}
	path := filepath.Join(t.TempDir(), "blank.png")
	if err := os.WriteFile(path, buf.Bytes(), 0o600); err != nil {
		t.Fatalf("failed to write image: %v", err)
	}
	return path
}
