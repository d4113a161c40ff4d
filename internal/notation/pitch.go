package notation

import "fmt"

// Pitch is a named diatonic pitch, ordered from the highest position on the
// staff (A5, above the first line) to the lowest (C4, below the fifth line).
type Pitch int

const (
	PitchA5 Pitch = iota
	PitchG5
	PitchF5
	PitchE5
	PitchD5
	PitchC5
	PitchB4
	PitchA4
	PitchG4
	PitchF4
	PitchE4
	PitchD4
	PitchC4
	PitchUndefined
)

type pitchInfo struct {
	name      string
	midiKey   uint8
	frequency int
}

var pitchTable = [...]pitchInfo{
	PitchA5: {"A5", 81, 880}, // voiced, not silent
	PitchG5: {"G5", 79, 784},
	PitchF5: {"F5", 77, 698},
	PitchE5: {"E5", 76, 659},
	PitchD5: {"D5", 74, 587},
	PitchC5: {"C5", 72, 523},
	PitchB4: {"B4", 71, 494},
	PitchA4: {"A4", 69, 440},
	PitchG4: {"G4", 67, 392},
	PitchF4: {"F4", 65, 349},
	PitchE4: {"E4", 64, 330},
	PitchD4: {"D4", 62, 294},
	PitchC4: {"C4", 60, 262},
}

// Pitches lists every defined pitch from highest to lowest.
func Pitches() []Pitch {
	out := make([]Pitch, 0, len(pitchTable))
	for p := PitchA5; p < PitchUndefined; p++ {
		out = append(out, p)
	}
	return out
}

// Defined reports whether p is one of the thirteen named pitches.
func (p Pitch) Defined() bool {
	return p >= PitchA5 && p < PitchUndefined
}

func (p Pitch) String() string {
	if p.Defined() {
		return pitchTable[p].name
	}
	if p == PitchUndefined {
		return "undefined"
	}
	return fmt.Sprintf("Pitch(%d)", int(p))
}

// MIDIKey returns the MIDI key number of p, or 0 when p is undefined.
func (p Pitch) MIDIKey() uint8 {
	if !p.Defined() {
		return 0
	}
	return pitchTable[p].midiKey
}

// Frequency returns the rounded frequency of p in hertz, or 0 when p is
// undefined.
func (p Pitch) Frequency() int {
	if !p.Defined() {
		return 0
	}
	return pitchTable[p].frequency
}

// MarshalText implements encoding.TextMarshaler.
func (p Pitch) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}
