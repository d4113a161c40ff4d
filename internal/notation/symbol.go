package notation

import (
	"encoding/json"
	"fmt"
	"sort"
)

// Origin is the pixel coordinate at which a glyph's probes are anchored.
type Origin struct {
	Row int `json:"row"` // Vertical position (0 = topmost)
	Col int `json:"col"` // Horizontal position (0 = leftmost)
}

// Kind tags the variant held by a Symbol.
type Kind int

const (
	KindNote Kind = iota
	KindPause
)

func (k Kind) String() string {
	switch k {
	case KindNote:
		return "note"
	case KindPause:
		return "pause"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Symbol is one recognized glyph: either a note or a rest (pause).
//
// Only the fields of the active variant are meaningful. Notes carry Note,
// Stem and Pitch; pauses carry Pause. Symbols are immutable values; build
// them with NewNote and NewPause.
type Symbol struct {
	Kind   Kind
	Staff  int
	Origin Origin

	Note  NoteDuration
	Stem  Stem
	Pitch Pitch

	Pause PauseDuration
}

// NewNote returns a note symbol.
func NewNote(staff int, origin Origin, d NoteDuration, stem Stem, pitch Pitch) Symbol {
	return Symbol{
		Kind:   KindNote,
		Staff:  staff,
		Origin: origin,
		Note:   d,
		Stem:   stem,
		Pitch:  pitch,
		Pause:  PauseInvalid,
	}
}

// NewPause returns a rest symbol.
func NewPause(staff int, origin Origin, d PauseDuration) Symbol {
	return Symbol{
		Kind:   KindPause,
		Staff:  staff,
		Origin: origin,
		Note:   NoteInvalid,
		Stem:   StemNone,
		Pitch:  PitchUndefined,
		Pause:  d,
	}
}

// IsNote reports whether s holds a note.
func (s Symbol) IsNote() bool { return s.Kind == KindNote }

// IsPause reports whether s holds a rest.
func (s Symbol) IsPause() bool { return s.Kind == KindPause }

// Fraction returns the symbol's length as a fraction of a whole note.
func (s Symbol) Fraction() float64 {
	if s.IsNote() {
		return s.Note.Fraction()
	}
	return s.Pause.Fraction()
}

func (s Symbol) String() string {
	if s.IsNote() {
		return fmt.Sprintf("%s %s", s.Pitch, s.Note)
	}
	return fmt.Sprintf("%s pause", s.Pause)
}

type symbolJSON struct {
	Kind     string `json:"kind"`
	Staff    int    `json:"staff"`
	Origin   Origin `json:"origin"`
	Duration string `json:"duration"`
	Stem     string `json:"stem,omitempty"`
	Pitch    string `json:"pitch,omitempty"`
}

// MarshalJSON encodes only the fields of the active variant.
func (s Symbol) MarshalJSON() ([]byte, error) {
	out := symbolJSON{
		Kind:   s.Kind.String(),
		Staff:  s.Staff,
		Origin: s.Origin,
	}
	if s.IsNote() {
		out.Duration = s.Note.String()
		out.Stem = s.Stem.String()
		out.Pitch = s.Pitch.String()
	} else {
		out.Duration = s.Pause.String()
	}
	return json.Marshal(out)
}

// ReadingOrder returns a copy of symbols sorted the way a musician reads
// them: staff by staff, left to right, and top to bottom within a column.
// The recognizer's emission order is not guaranteed to be reading order.
func ReadingOrder(symbols []Symbol) []Symbol {
	out := make([]Symbol, len(symbols))
	copy(out, symbols)
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.Staff != b.Staff {
			return a.Staff < b.Staff
		}
		if a.Origin.Col != b.Origin.Col {
			return a.Origin.Col < b.Origin.Col
		}
		return a.Origin.Row < b.Origin.Row
	})
	return out
}
