package notation

import (
	"encoding/json"
	"testing"
)

func TestNewNote(t *testing.T) {
	s := NewNote(1, Origin{Row: 24, Col: 30}, NoteHalf, StemDown, PitchB4)

	if !s.IsNote() || s.IsPause() {
		t.Fatal("expected a note")
	}
	if s.Pause != PauseInvalid {
		t.Errorf("inactive pause field should be invalid, got %v", s.Pause)
	}
	if s.Fraction() != 0.5 {
		t.Errorf("expected fraction 0.5, got %f", s.Fraction())
	}
	if s.String() != "B4 half" {
		t.Errorf("unexpected string %q", s.String())
	}
}

func TestNewPause(t *testing.T) {
	s := NewPause(0, Origin{Row: 45, Col: 80}, PauseQuarter)

	if !s.IsPause() || s.IsNote() {
		t.Fatal("expected a pause")
	}
	if s.Note != NoteInvalid || s.Stem != StemNone || s.Pitch != PitchUndefined {
		t.Errorf("inactive note fields should be sentinels, got %v %v %v", s.Note, s.Stem, s.Pitch)
	}
	if s.Fraction() != 0.25 {
		t.Errorf("expected fraction 0.25, got %f", s.Fraction())
	}
}

func TestSymbolJSON(t *testing.T) {
	tests := []struct {
		name   string
		symbol Symbol
		want   string
	}{
		{
			"note",
			NewNote(0, Origin{Row: 36, Col: 130}, NoteWhole, StemNone, PitchF5),
			`{"kind":"note","staff":0,"origin":{"row":36,"col":130},"duration":"whole","stem":"none","pitch":"F5"}`,
		},
		{
			"pause",
			NewPause(2, Origin{Row: 5, Col: 7}, PauseEighth),
			`{"kind":"pause","staff":2,"origin":{"row":5,"col":7},"duration":"eighth"}`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := json.Marshal(tt.symbol)
			if err != nil {
				t.Fatalf("marshal failed: %v", err)
			}
			if string(data) != tt.want {
				t.Errorf("expected %s, got %s", tt.want, data)
			}
		})
	}
}

func TestReadingOrder(t *testing.T) {
	symbols := []Symbol{
		NewNote(1, Origin{Row: 130, Col: 10}, NoteHalf, StemDown, PitchA4),
		NewNote(0, Origin{Row: 40, Col: 50}, NoteQuarter, StemUp, PitchC5),
		NewPause(0, Origin{Row: 30, Col: 20}, PauseHalf),
		NewNote(0, Origin{Row: 20, Col: 20}, NoteWhole, StemNone, PitchG5),
	}

	ordered := ReadingOrder(symbols)
	want := []Origin{
		{Row: 20, Col: 20},
		{Row: 30, Col: 20},
		{Row: 40, Col: 50},
		{Row: 130, Col: 10},
	}
	for i, o := range want {
		if ordered[i].Origin != o {
			t.Errorf("position %d: expected %+v, got %+v", i, o, ordered[i].Origin)
		}
	}

	// Input is untouched
	if symbols[0].Origin.Row != 130 {
		t.Error("ReadingOrder modified its input")
	}
}
