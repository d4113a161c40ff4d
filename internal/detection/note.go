package detection

import "github.com/StefanCiuprina/sheet-music-reader/internal/notation"

// ClassifyNote classifies the glyph at origin using the default templates.
func ClassifyNote(g *Grid, origin notation.Origin) (notation.NoteDuration, notation.Stem) {
	return DefaultTemplates().ClassifyNote(g, origin)
}

// ClassifyNote classifies the glyph at origin as a note.
//
// Returns (NoteInvalid, StemNone) when the template extent does not fit in
// the grid or when no note template matches.
//
// # Algorithm
//
//  1. Bounds: the note extent anchored at origin must lie inside the grid
//  2. Stem side: a solid right-side stem selects StemRight, otherwise a solid
//     left-side stem selects StemLeft; with neither, the whole-note template
//     decides between NoteWhole and invalid
//  3. Orientation: a right stem carries its head below (StemDown), a left
//     stem carries its head above (StemUp)
//  4. Head: the outline strokes of the oriented head must all match
//  5. Fill: an open interior yields NoteHalf
//  6. Tail: on a filled head, a matching flag yields NoteEighth, otherwise
//     NoteQuarter
func (t *Templates) ClassifyNote(g *Grid, origin notation.Origin) (notation.NoteDuration, notation.Stem) {
	if !t.Note.Extent.Fits(g, origin) {
		return notation.NoteInvalid, notation.StemNone
	}

	var orientation notation.Stem
	switch t.stemSide(g, origin) {
	case notation.StemRight:
		orientation = notation.StemDown
	case notation.StemLeft:
		orientation = notation.StemUp
	default:
		if MatchAll(g, origin, t.Note.Whole) {
			return notation.NoteWhole, notation.StemNone
		}
		return notation.NoteInvalid, notation.StemNone
	}

	head, _ := t.head(orientation)
	if !MatchAll(g, origin, head.Head) {
		return notation.NoteInvalid, notation.StemNone
	}
	if !head.Fill.Match(g, origin) {
		return notation.NoteHalf, orientation
	}
	if MatchAll(g, origin, head.Tail) {
		return notation.NoteEighth, orientation
	}
	return notation.NoteQuarter, orientation
}

// stemSide returns StemRight, StemLeft or StemNone.
func (t *Templates) stemSide(g *Grid, origin notation.Origin) notation.Stem {
	if MatchAll(g, origin, t.Note.StemRight) {
		return notation.StemRight
	}
	if MatchAll(g, origin, t.Note.StemLeft) {
		return notation.StemLeft
	}
	return notation.StemNone
}
