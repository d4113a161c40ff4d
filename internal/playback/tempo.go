// Package playback turns a recognized symbol stream into timed events and
// Standard MIDI Files.
//
// Durations are derived from a Tempo, the length of a whole note. Halves,
// quarters and eighths divide it by 2, 4 and 8; rests use the same scale and
// are rendered as silence.
package playback

import (
	"fmt"
	"strings"
	"time"

	"github.com/StefanCiuprina/sheet-music-reader/internal/notation"
)

// Tempo is the length of a whole note.
type Tempo time.Duration

// Tempo presets
const (
	TempoSlow   = Tempo(3000 * time.Millisecond)
	TempoMedium = Tempo(2300 * time.Millisecond)
	TempoFast   = Tempo(1500 * time.Millisecond)
)

var tempoNames = map[string]Tempo{
	"slow":   TempoSlow,
	"medium": TempoMedium,
	"fast":   TempoFast,
}

// ParseTempo accepts a preset name (slow, medium, fast) or a Go duration
// such as "2s" for the whole-note length.
func ParseTempo(s string) (Tempo, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	if t, ok := tempoNames[key]; ok {
		return t, nil
	}
	d, err := time.ParseDuration(key)
	if err != nil {
		return 0, fmt.Errorf("unknown tempo %q: want slow, medium, fast or a duration", s)
	}
	if d <= 0 {
		return 0, fmt.Errorf("tempo must be positive, got %v", d)
	}
	return Tempo(d), nil
}

// Whole returns the whole-note length.
func (t Tempo) Whole() time.Duration { return time.Duration(t) }

// BPM returns the tempo in quarter notes per minute.
func (t Tempo) BPM() float64 {
	if t <= 0 {
		return 0
	}
	return float64(time.Minute) / (float64(t) / 4)
}

func (t Tempo) String() string {
	for name, preset := range tempoNames {
		if preset == t {
			return name
		}
	}
	return time.Duration(t).String()
}

// NoteLength returns how long a note of duration d sounds at tempo t.
// Invalid durations have no length.
func NoteLength(d notation.NoteDuration, t Tempo) time.Duration {
	return scale(d.Fraction(), t)
}

// RestLength returns how long a rest of duration d lasts at tempo t.
func RestLength(d notation.PauseDuration, t Tempo) time.Duration {
	return scale(d.Fraction(), t)
}

func scale(fraction float64, t Tempo) time.Duration {
	return time.Duration(fraction * float64(t))
}
