package playback

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"io"

	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"

	scoreerrors "github.com/StefanCiuprina/sheet-music-reader/internal/errors"
	"github.com/StefanCiuprina/sheet-music-reader/internal/notation"
)

// TicksPerQuarter is the resolution of exported files.
const TicksPerQuarter = 960

const (
	channel  = 0
	velocity = 100
)

// TrackName is written as the sequence name of the exported track.
const TrackName = "sheet-music-reader"

// ticks returns the length of a fraction of a whole note in MIDI ticks.
func ticks(fraction float64) uint32 {
	return uint32(fraction*4*TicksPerQuarter + 0.5)
}

// BuildSMF renders symbols as a single-track Standard MIDI File. Rests and
// notes with an undefined pitch advance time without sounding.
func BuildSMF(symbols []notation.Symbol, t Tempo) (*smf.SMF, error) {
	if t <= 0 {
		return nil, fmt.Errorf("tempo must be positive, got %v", t)
	}

	s := smf.New()
	s.TimeFormat = smf.MetricTicks(TicksPerQuarter)

	var tr smf.Track
	tr.Add(0, smf.MetaTrackSequenceName(TrackName))
	tr.Add(0, smf.MetaTempo(t.BPM()))

	var gap uint32
	for _, sym := range symbols {
		length := ticks(sym.Fraction())
		if !sym.IsNote() || !sym.Pitch.Defined() {
			gap += length
			continue
		}
		key := sym.Pitch.MIDIKey()
		tr.Add(gap, midi.NoteOn(channel, key, velocity))
		tr.Add(length, midi.NoteOff(channel, key))
		gap = 0
	}
	tr.Close(gap)

	if err := s.Add(tr); err != nil {
		return nil, fmt.Errorf("failed to add track: %w", err)
	}
	return s, nil
}

// WriteMIDI writes symbols to w as a Standard MIDI File.
func WriteMIDI(w io.Writer, symbols []notation.Symbol, t Tempo) error {
	s, err := BuildSMF(symbols, t)
	if err != nil {
		return err
	}
	if _, err := s.WriteTo(w); err != nil {
		return fmt.Errorf("failed to write MIDI: %w", err)
	}
	return nil
}

// MIDIMimeType is the content type of exported files.
const MIDIMimeType = "audio/midi"

// MIDIResult is an exported file together with a summary of its timeline.
type MIDIResult struct {
	// Data is the raw file.
	Data []byte `json:"-"`

	// MIDIBase64 is Data, base64 encoded.
	MIDIBase64 string `json:"midi_base64"`
	MimeType   string `json:"mime_type"`

	Notes      int     `json:"notes"`
	Rests      int     `json:"rests"`
	DurationMs int64   `json:"duration_ms"`
	Tempo      string  `json:"tempo"`
	BPM        float64 `json:"bpm"`
}

// Export renders symbols as MIDI and summarizes the result. Failures are
// reported as EXPORT_FAILED.
func Export(symbols []notation.Symbol, t Tempo) (*MIDIResult, error) {
	var buf bytes.Buffer
	if err := WriteMIDI(&buf, symbols, t); err != nil {
		return nil, scoreerrors.NewExportFailedError("symbols", "midi", err)
	}

	res := &MIDIResult{
		Data:       buf.Bytes(),
		MIDIBase64: base64.StdEncoding.EncodeToString(buf.Bytes()),
		MimeType:   MIDIMimeType,
		DurationMs: Total(Schedule(symbols, t)).Milliseconds(),
		Tempo:      t.String(),
		BPM:        t.BPM(),
	}
	for _, s := range symbols {
		if s.IsNote() {
			res.Notes++
		} else {
			res.Rests++
		}
	}
	return res, nil
}
