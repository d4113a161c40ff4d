// Package detection implements optical recognition of printed music notation
// on a binarized score image.
//
// The package locates staves through a horizontal ink projection and then
// classifies note and rest glyphs by probing fixed-offset regions of the
// image relative to a candidate origin. It is designed for scores rendered in
// a single known font at a single known scale.
//
// # Pipeline
//
// Recognition runs in three stages:
//
//  1. Staff Detection: Count ink pixels per row, render the counts as a
//     projection image, and cluster line rows into staves of five lines
//  2. Scanning: Walk every column of every staff band, trying the note
//     templates first and the rest templates second at each position
//  3. Pitch Mapping: Convert the vertical position of each recognized
//     notehead into a named pitch relative to its staff's five lines
//
// # Coordinate System
//
// Pixel coordinates are (row, col) pairs with (0, 0) at the top-left corner:
//   - Row increases downward and is the axis stems and noteheads are probed on
//   - Col increases rightward and is the axis the scanner advances along
//   - Template boxes use inclusive offsets on both ends
//
// # Templates
//
// Glyph geometry is data, not control flow. Each glyph class is described by
// a list of Probe values (a role name, a box relative to the origin and the
// check applied to the box) held in a Templates value. Recalibrating for a
// different font means supplying a different Templates value; the scanning
// logic does not change.
//
// # Failure Behavior
//
// Every function in this package is total. A template that would read outside
// the grid classifies as invalid, a position that matches no template
// classifies as invalid, and a vertical offset outside every pitch band maps
// to PitchUndefined. No function returns an error or panics on any input.
//
// # Limitations
//
// The templates are calibrated to one rendering resolution (a staff line
// spacing of about ten pixels). Images rendered at other scales, rotated
// images, and glyphs such as accidentals, key and time signatures, ties,
// beams and dotted notes are not recognized. Off-calibration input produces
// missing or wrong symbols rather than errors; use StaffLayout.Spacing to
// detect that case before trusting the output.
package detection
