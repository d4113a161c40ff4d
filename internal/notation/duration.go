package notation

import "fmt"

// NoteDuration is the duration class of a recognized note.
type NoteDuration int

const (
	NoteWhole NoteDuration = iota
	NoteHalf
	NoteQuarter
	NoteEighth
	// NoteSixteenth is reserved. The classifier never produces it.
	NoteSixteenth
	NoteInvalid
)

var noteDurationNames = map[NoteDuration]string{
	NoteWhole:     "whole",
	NoteHalf:      "half",
	NoteQuarter:   "quarter",
	NoteEighth:    "eighth",
	NoteSixteenth: "sixteenth",
	NoteInvalid:   "invalid",
}

func (d NoteDuration) String() string {
	if name, ok := noteDurationNames[d]; ok {
		return name
	}
	return fmt.Sprintf("NoteDuration(%d)", int(d))
}

// Valid reports whether d names a recognized note.
func (d NoteDuration) Valid() bool {
	return d >= NoteWhole && d < NoteInvalid
}

// Fraction returns the length of d as a fraction of a whole note, or 0 for
// durations that have no defined length.
func (d NoteDuration) Fraction() float64 {
	switch d {
	case NoteWhole:
		return 1
	case NoteHalf:
		return 0.5
	case NoteQuarter:
		return 0.25
	case NoteEighth:
		return 0.125
	case NoteSixteenth:
		return 0.0625
	default:
		return 0
	}
}

// MarshalText implements encoding.TextMarshaler.
func (d NoteDuration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// PauseDuration is the duration class of a recognized rest.
type PauseDuration int

const (
	PauseHalf PauseDuration = iota
	PauseQuarter
	PauseEighth
	PauseInvalid
)

var pauseDurationNames = map[PauseDuration]string{
	PauseHalf:    "half",
	PauseQuarter: "quarter",
	PauseEighth:  "eighth",
	PauseInvalid: "invalid",
}

func (d PauseDuration) String() string {
	if name, ok := pauseDurationNames[d]; ok {
		return name
	}
	return fmt.Sprintf("PauseDuration(%d)", int(d))
}

// Valid reports whether d names a recognized rest.
func (d PauseDuration) Valid() bool {
	return d >= PauseHalf && d < PauseInvalid
}

// Fraction returns the length of d as a fraction of a whole note.
func (d PauseDuration) Fraction() float64 {
	switch d {
	case PauseHalf:
		return 0.5
	case PauseQuarter:
		return 0.25
	case PauseEighth:
		return 0.125
	default:
		return 0
	}
}

// MarshalText implements encoding.TextMarshaler.
func (d PauseDuration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// Stem describes stem placement. Left and Right name the side of the glyph
// origin on which the stem stroke was found during detection; Up and Down
// name where the notehead sits once the orientation is resolved.
type Stem int

const (
	StemUp Stem = iota
	StemDown
	StemLeft
	StemRight
	// StemNone is used for whole notes and invalid classifications.
	StemNone
)

var stemNames = map[Stem]string{
	StemUp:    "up",
	StemDown:  "down",
	StemLeft:  "left",
	StemRight: "right",
	StemNone:  "none",
}

func (s Stem) String() string {
	if name, ok := stemNames[s]; ok {
		return name
	}
	return fmt.Sprintf("Stem(%d)", int(s))
}

// MarshalText implements encoding.TextMarshaler.
func (s Stem) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}
