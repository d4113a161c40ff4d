package detection

import "github.com/StefanCiuprina/sheet-music-reader/internal/notation"

// HeadTemplate describes a notehead on one side of its stem.
type HeadTemplate struct {
	// Head lists the strokes of the notehead outline.
	Head []Probe `json:"head"`

	// Fill is the interior pixel that separates filled heads from open ones.
	Fill Probe `json:"fill"`

	// Tail lists the strokes of the flag attached to an eighth-note stem.
	Tail []Probe `json:"tail"`

	// PitchOffset is added to the origin row to obtain the vertical position
	// used for pitch mapping.
	PitchOffset int `json:"pitch_offset"`
}

// NoteTemplate describes every note glyph of a font.
type NoteTemplate struct {
	// Extent is the bounding box that must fit inside the grid before any
	// probe is evaluated.
	Extent Box `json:"extent"`

	// StemRight and StemLeft detect the stem on either side of the origin.
	// StemRight is tried first.
	StemRight []Probe `json:"stem_right"`
	StemLeft  []Probe `json:"stem_left"`

	// Whole detects a stemless whole note.
	Whole []Probe `json:"whole"`

	// WholePitchOffset is the pitch offset used for whole notes.
	WholePitchOffset int `json:"whole_pitch_offset"`

	// Down is the head below a right-side stem; Up is the head above a
	// left-side stem.
	Down HeadTemplate `json:"down"`
	Up   HeadTemplate `json:"up"`
}

// PauseTemplate describes every rest glyph of a font. Shapes are tried in
// the order Half, Quarter, Eighth.
type PauseTemplate struct {
	Extent  Box     `json:"extent"`
	Half    []Probe `json:"half"`
	Quarter []Probe `json:"quarter"`
	Eighth  []Probe `json:"eighth"`
}

// Templates is the complete geometric description of one notation font at
// one rendering scale.
type Templates struct {
	Note  NoteTemplate  `json:"note"`
	Pause PauseTemplate `json:"pause"`

	// NoteSkip is the number of columns the scanner jumps after a note match
	// so the same glyph is not detected twice.
	NoteSkip int `json:"note_skip"`

	// LineSpacing is the staff line spacing, in pixels, the templates were
	// calibrated against.
	LineSpacing float64 `json:"line_spacing"`
}

// DefaultTemplates returns the template set for the reference score font.
// Each call returns a fresh value that callers may modify.
func DefaultTemplates() *Templates {
	return &Templates{
		Note: NoteTemplate{
			Extent: Box{Top: -5, Left: 0, Bottom: 40, Right: 24},
			StemRight: []Probe{
				{Role: "stem", Box: VRun(11, 0, 32), Check: AllInk},
			},
			StemLeft: []Probe{
				{Role: "stem", Box: VRun(0, 8, 40), Check: AllInk},
			},
			Whole: []Probe{
				{Role: "left border", Box: VRun(3, 1, 9), Check: AllInk},
				{Role: "right border", Box: VRun(13, 1, 9), Check: AllInk},
				{Role: "lower rim", Box: HRun(9, 4, 7), Check: AllInk},
				{Role: "upper rim", Box: HRun(1, 9, 12), Check: AllInk},
			},
			WholePitchOffset: 4,
			Down: HeadTemplate{
				Head: []Probe{
					{Role: "head top", Box: HRun(32, 4, 10), Check: AllInk},
					{Role: "head bottom", Box: HRun(40, 1, 7), Check: AllInk},
				},
				Fill: Probe{Role: "fill", Box: Pixel(38, 3), Check: AllInk},
				Tail: []Probe{
					{Role: "flag", Box: VRun(20, 20, 32), Check: AllInk},
				},
				PitchOffset: 36,
			},
			Up: HeadTemplate{
				Head: []Probe{
					{Role: "head top", Box: HRun(0, 5, 10), Check: AllInk},
					{Role: "head bottom", Box: HRun(9, 1, 6), Check: AllInk},
				},
				Fill: Probe{Role: "fill", Box: Pixel(6, 3), Check: AllInk},
				Tail: []Probe{
					{Role: "flag", Box: VRun(11, 13, 21), Check: AllInk},
				},
				PitchOffset: 4,
			},
		},
		Pause: PauseTemplate{
			Extent: Box{Top: 0, Left: 0, Bottom: 30, Right: 18},
			Half: []Probe{
				{Role: "anchor", Box: Pixel(5, 0), Check: AllInk},
				{Role: "block", Box: Box{Top: 0, Left: 4, Bottom: 4, Right: 14}, Check: AllInk},
			},
			Quarter: []Probe{
				{Role: "tail", Box: VRun(0, 21, 26), Check: AllInk},
				{Role: "upper stroke", Box: VRun(3, 2, 17), Check: AllInk},
				{Role: "lower stroke", Box: VRun(5, 4, 24), Check: AllInk},
			},
			Eighth: []Probe{
				{Role: "hook", Box: HRun(3, 0, 8), Check: AllInk},
				{Role: "knob", Box: HRun(2, 0, 5), Check: AllInk},
				{Role: "upper stem", Box: VRun(6, 6, 12), Check: AllInk},
				{Role: "lower stem", Box: VRun(5, 9, 16), Check: AllInk},
			},
		},
		NoteSkip:    3,
		LineSpacing: 10,
	}
}

// head returns the head template for a resolved orientation.
func (t *Templates) head(stem notation.Stem) (HeadTemplate, bool) {
	switch stem {
	case notation.StemDown:
		return t.Note.Down, true
	case notation.StemUp:
		return t.Note.Up, true
	default:
		return HeadTemplate{}, false
	}
}

// PitchOffset returns the row offset from a note's origin to the position
// used for pitch mapping.
func (t *Templates) PitchOffset(stem notation.Stem) int {
	if h, ok := t.head(stem); ok {
		return h.PitchOffset
	}
	return t.Note.WholePitchOffset
}
