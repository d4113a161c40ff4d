// Package notation defines the vocabulary shared by the recognizer and its
// consumers: note and rest durations, stem orientations, pitch names, glyph
// origins and the Symbol records emitted by a recognition pass.
//
// # Coordinate System
//
// Origins are expressed as (Row, Col) pixel coordinates with (0, 0) at the
// top-left corner of the score image:
//   - Row: vertical position (0 = topmost pixel row)
//   - Col: horizontal position (0 = leftmost pixel column)
//
// Row is the axis along which stems, noteheads and rest strokes are probed;
// Col is the axis the scanner advances along.
//
// # Symbols
//
// A Symbol is a tagged union of a note and a rest. Symbols are plain values
// with no references back into the image they were recognized from, so they
// can be stored, serialized and shared freely.
//
// # Pitches
//
// The recognizer knows thirteen diatonic pitches, one per half line spacing,
// from A5 (above the first staff line) down to C4 (below the fifth line).
// Each pitch carries its MIDI key number and its equal-tempered frequency so
// audio collaborators need no lookup tables of their own.
package notation
