package detection

import (
	"testing"

	"github.com/StefanCiuprina/sheet-music-reader/internal/notation"
)

func TestClassifyNoteRoundTrip(t *testing.T) {
	origin := notation.Origin{Row: 10, Col: 5}
	tpl := DefaultTemplates()

	// Half note with its head below a right-hand stem
	g := NewGrid(60, 40)
	paintProbes(g, origin, tpl.Note.StemRight...)
	paintProbes(g, origin, tpl.Note.Down.Head...)

	d, stem := ClassifyNote(g, origin)
	if d != notation.NoteHalf || stem != notation.StemDown {
		t.Fatalf("expected (half, down), got (%v, %v)", d, stem)
	}

	// Filling the head turns it into a quarter
	paintProbes(g, origin, tpl.Note.Down.Fill)
	d, stem = ClassifyNote(g, origin)
	if d != notation.NoteQuarter || stem != notation.StemDown {
		t.Fatalf("expected (quarter, down), got (%v, %v)", d, stem)
	}

	// Adding the flag turns it into an eighth
	paintProbes(g, origin, tpl.Note.Down.Tail...)
	d, stem = ClassifyNote(g, origin)
	if d != notation.NoteEighth || stem != notation.StemDown {
		t.Fatalf("expected (eighth, down), got (%v, %v)", d, stem)
	}
}

func TestClassifyNote(t *testing.T) {
	tests := []struct {
		name     string
		duration notation.NoteDuration
		stem     notation.Stem
	}{
		{"half down", notation.NoteHalf, notation.StemDown},
		{"quarter down", notation.NoteQuarter, notation.StemDown},
		{"eighth down", notation.NoteEighth, notation.StemDown},
		{"half up", notation.NoteHalf, notation.StemUp},
		{"quarter up", notation.NoteQuarter, notation.StemUp},
		{"eighth up", notation.NoteEighth, notation.StemUp},
		{"whole", notation.NoteWhole, notation.StemNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewGrid(60, 40)
			origin := notation.Origin{Row: 10, Col: 5}
			paintNote(t, g, origin, tt.duration, tt.stem)

			d, stem := ClassifyNote(g, origin)
			if d != tt.duration {
				t.Errorf("expected duration %v, got %v", tt.duration, d)
			}
			if stem != tt.stem {
				t.Errorf("expected stem %v, got %v", tt.stem, stem)
			}
		})
	}
}

func TestClassifyNoteStemWithoutHead(t *testing.T) {
	g := NewGrid(60, 40)
	origin := notation.Origin{Row: 10, Col: 5}
	paintProbes(g, origin, DefaultTemplates().Note.StemRight...)

	d, stem := ClassifyNote(g, origin)
	if d != notation.NoteInvalid || stem != notation.StemNone {
		t.Errorf("expected (invalid, none), got (%v, %v)", d, stem)
	}
}

func TestClassifyNoteEmpty(t *testing.T) {
	g := NewGrid(60, 40)
	d, stem := ClassifyNote(g, notation.Origin{Row: 10, Col: 5})
	if d != notation.NoteInvalid || stem != notation.StemNone {
		t.Errorf("expected (invalid, none), got (%v, %v)", d, stem)
	}
}

func TestClassifyNoteBounds(t *testing.T) {
	// A glyph whose extent crosses the grid edge is never classified, even
	// when every probe that lies inside the grid matches.
	g := NewGrid(60, 40)
	paintNote(t, g, notation.Origin{Row: 2, Col: 5}, notation.NoteHalf, notation.StemDown)

	tests := []struct {
		name   string
		grid   *Grid
		origin notation.Origin
	}{
		{"above top", g, notation.Origin{Row: 2, Col: 5}},
		{"past right", g, notation.Origin{Row: 10, Col: 20}},
		{"past bottom", g, notation.Origin{Row: 25, Col: 5}},
		{"negative", g, notation.Origin{Row: -3, Col: -3}},
		{"tiny grid", NewGrid(10, 10), notation.Origin{Row: 5, Col: 0}},
		{"empty grid", NewGrid(0, 0), notation.Origin{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, stem := ClassifyNote(tt.grid, tt.origin)
			if d != notation.NoteInvalid || stem != notation.StemNone {
				t.Errorf("expected (invalid, none), got (%v, %v)", d, stem)
			}
		})
	}
}

func TestClassifyNoteSmallGridEveryOrigin(t *testing.T) {
	g := NewGrid(30, 20)
	for r := 0; r < g.Rows(); r++ {
		for c := 0; c < g.Cols(); c++ {
			g.Set(r, c, true)
		}
	}

	for r := -2; r < g.Rows()+2; r++ {
		for c := -2; c < g.Cols()+2; c++ {
			if d, _ := ClassifyNote(g, notation.Origin{Row: r, Col: c}); d != notation.NoteInvalid {
				t.Fatalf("origin (%d, %d): expected invalid, got %v", r, c, d)
			}
		}
	}
}

func TestClassifyNoteDeterministic(t *testing.T) {
	a := NewGrid(60, 40)
	b := NewGrid(80, 90)
	paintNote(t, a, notation.Origin{Row: 10, Col: 5}, notation.NoteEighth, notation.StemUp)
	paintNote(t, b, notation.Origin{Row: 20, Col: 50}, notation.NoteEighth, notation.StemUp)

	d1, s1 := ClassifyNote(a, notation.Origin{Row: 10, Col: 5})
	d2, s2 := ClassifyNote(a, notation.Origin{Row: 10, Col: 5})
	d3, s3 := ClassifyNote(b, notation.Origin{Row: 20, Col: 50})

	if d1 != d2 || s1 != s2 {
		t.Errorf("repeated classification differs: (%v, %v) vs (%v, %v)", d1, s1, d2, s2)
	}
	if d1 != d3 || s1 != s3 {
		t.Errorf("same neighborhood classified differently: (%v, %v) vs (%v, %v)", d1, s1, d3, s3)
	}
}

func TestCustomTemplates(t *testing.T) {
	// Shrinking the stem on a copy of the templates changes what matches
	// without affecting the defaults.
	tpl := DefaultTemplates()
	tpl.Note.StemRight = []Probe{{Role: "stem", Box: VRun(11, 0, 20), Check: AllInk}}

	g := NewGrid(60, 40)
	origin := notation.Origin{Row: 10, Col: 5}
	paintProbes(g, origin, tpl.Note.StemRight...)
	paintProbes(g, origin, tpl.Note.Down.Head...)

	if d, _ := tpl.ClassifyNote(g, origin); d != notation.NoteHalf {
		t.Errorf("expected half with custom templates, got %v", d)
	}
	if d, _ := ClassifyNote(g, origin); d != notation.NoteInvalid {
		t.Errorf("expected invalid with default templates, got %v", d)
	}
}
