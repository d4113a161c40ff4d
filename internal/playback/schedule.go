package playback

import (
	"time"

	"github.com/StefanCiuprina/sheet-music-reader/internal/notation"
)

// Event is one entry of a playback timeline.
type Event struct {
	Symbol notation.Symbol `json:"symbol"`

	// Start is the offset from the beginning of the timeline.
	Start time.Duration `json:"start"`

	// Length is how long the event lasts.
	Length time.Duration `json:"length"`

	// Frequency is the pitch to sound in hertz. Zero for rests and for
	// notes whose pitch is undefined.
	Frequency int `json:"frequency"`
}

// Silent reports whether the event produces no sound.
func (e Event) Silent() bool { return e.Frequency == 0 }

// End returns the offset at which the event finishes.
func (e Event) End() time.Duration { return e.Start + e.Length }

// Schedule lays symbols out back to back in the order given. Pass
// notation.ReadingOrder(symbols) to play a score the way it is read.
func Schedule(symbols []notation.Symbol, t Tempo) []Event {
	events := make([]Event, 0, len(symbols))
	var at time.Duration
	for _, s := range symbols {
		e := Event{Symbol: s, Start: at}
		if s.IsNote() {
			e.Length = NoteLength(s.Note, t)
			e.Frequency = s.Pitch.Frequency()
		} else {
			e.Length = RestLength(s.Pause, t)
		}
		events = append(events, e)
		at += e.Length
	}
	return events
}

// Total returns the length of a timeline.
func Total(events []Event) time.Duration {
	if len(events) == 0 {
		return 0
	}
	return events[len(events)-1].End()
}
