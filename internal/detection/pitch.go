package detection

import (
	"math"

	"github.com/StefanCiuprina/sheet-music-reader/internal/notation"
)

// PitchBand is an inclusive range of rows mapped to one pitch.
type PitchBand struct {
	Low   int            `json:"low"`
	High  int            `json:"high"`
	Pitch notation.Pitch `json:"pitch"`
}

// Contains reports whether row falls inside the band.
func (b PitchBand) Contains(row int) bool {
	return row >= b.Low && row <= b.High
}

// Unbounded band ends.
const (
	openLow  = math.MinInt
	openHigh = math.MaxInt
)

// bandRule anchors a band at one staff line. A rule with open set on one
// side extends without limit in that direction.
type bandRule struct {
	line      int
	low, high int
	openLow   bool
	openHigh  bool
	pitch     notation.Pitch
}

// pitchRules lists the bands from the top of the staff to the bottom. A line
// pitch spans the line ±2 rows; the space pitch below it spans +3..+7.
var pitchRules = [...]bandRule{
	{line: 0, high: -8, openLow: true, pitch: notation.PitchA5},
	{line: 0, low: -7, high: -3, pitch: notation.PitchG5},
	{line: 0, low: -2, high: 2, pitch: notation.PitchF5},
	{line: 0, low: 3, high: 7, pitch: notation.PitchE5},
	{line: 1, low: -2, high: 2, pitch: notation.PitchD5},
	{line: 1, low: 3, high: 7, pitch: notation.PitchC5},
	{line: 2, low: -2, high: 2, pitch: notation.PitchB4},
	{line: 2, low: 3, high: 7, pitch: notation.PitchA4},
	{line: 3, low: -2, high: 2, pitch: notation.PitchG4},
	{line: 3, low: 3, high: 7, pitch: notation.PitchF4},
	{line: 4, low: -2, high: 2, pitch: notation.PitchE4},
	{line: 4, low: 3, high: 7, pitch: notation.PitchD4},
	{line: 4, low: 8, openHigh: true, pitch: notation.PitchC4},
}

// PitchBands returns the ordered pitch table for a staff with the given
// line rows. Bands are evaluated first to last; the first containing band
// wins.
func PitchBands(lines [LinesPerStaff]int) []PitchBand {
	bands := make([]PitchBand, 0, len(pitchRules))
	for _, rule := range pitchRules {
		anchor := lines[rule.line]
		b := PitchBand{
			Low:   anchor + rule.low,
			High:  anchor + rule.high,
			Pitch: rule.pitch,
		}
		if rule.openLow {
			b.Low = openLow
		}
		if rule.openHigh {
			b.High = openHigh
		}
		bands = append(bands, b)
	}
	return bands
}

// MapPitch returns the pitch at vertical position row on staff staffIndex,
// whose five lines are read from the flat line list. Positions between
// bands, and staves whose lines are missing from lines, map to
// PitchUndefined.
func MapPitch(staffIndex, row int, lines []int) notation.Pitch {
	first := staffIndex * LinesPerStaff
	if staffIndex < 0 || first+LinesPerStaff > len(lines) {
		return notation.PitchUndefined
	}

	var staff [LinesPerStaff]int
	copy(staff[:], lines[first:first+LinesPerStaff])
	for _, b := range PitchBands(staff) {
		if b.Contains(row) {
			return b.Pitch
		}
	}
	return notation.PitchUndefined
}
