// Package pipeline runs the full recognition pass over one score image:
// binarization, staff detection, calibration and the glyph scan.
package pipeline

import (
	"image"
	"time"

	"github.com/google/uuid"

	"github.com/StefanCiuprina/sheet-music-reader/internal/config"
	"github.com/StefanCiuprina/sheet-music-reader/internal/detection"
	scoreerrors "github.com/StefanCiuprina/sheet-music-reader/internal/errors"
	"github.com/StefanCiuprina/sheet-music-reader/internal/imaging"
	"github.com/StefanCiuprina/sheet-music-reader/internal/logging"
	"github.com/StefanCiuprina/sheet-music-reader/internal/notation"
)

// CalibrationTolerance is the largest deviation, in pixels, between the
// measured and the nominal line spacing before a warning is logged.
const CalibrationTolerance = 2.0

// Result is the outcome of one recognition pass.
type Result struct {
	ID     string `json:"id"`
	Width  int    `json:"width"`
	Height int    `json:"height"`

	Staves  []detection.Staff `json:"staves"`
	Lines   []int             `json:"lines"`
	Symbols []notation.Symbol `json:"symbols"`

	Calibration detection.Calibration `json:"calibration"`

	ProcessingTimeMs int64 `json:"processing_time_ms"`

	// Grid is the binarized image the symbols were found on.
	Grid *detection.Grid `json:"-"`
}

// Notes returns the number of recognized notes.
func (r *Result) Notes() int {
	n := 0
	for _, s := range r.Symbols {
		if s.IsNote() {
			n++
		}
	}
	return n
}

// Recognizer holds the settings of a recognition pass. The zero value uses
// the default threshold and templates and does not log.
type Recognizer struct {
	Threshold uint8
	Parallel  bool
	Templates *detection.Templates
	Logger    *logging.Logger
}

// New returns a Recognizer configured from cfg.
func New(cfg *config.Config, logger *logging.Logger) *Recognizer {
	return &Recognizer{
		Threshold: cfg.Threshold,
		Parallel:  cfg.ParallelScan,
		Logger:    logger.With("pipeline"),
	}
}

func (r *Recognizer) templates() *detection.Templates {
	if r.Templates == nil {
		return detection.DefaultTemplates()
	}
	return r.Templates
}

// RecognizeImage binarizes img and recognizes the result. An image with no
// pixels is rejected.
func (r *Recognizer) RecognizeImage(img image.Image) (*Result, error) {
	b := img.Bounds()
	if b.Dx() <= 0 || b.Dy() <= 0 {
		return nil, scoreerrors.NewEmptyImageError("image", b.Dx(), b.Dy())
	}

	threshold := r.Threshold
	if threshold == 0 {
		threshold = imaging.DefaultThreshold
	}
	return r.RecognizeGrid(imaging.Binarize(img, threshold)), nil
}

// RecognizeGrid detects staves on g and scans them.
func (r *Recognizer) RecognizeGrid(g *detection.Grid) *Result {
	start := time.Now()
	tpl := r.templates()

	layout := detection.DetectStaves(g)
	r.Logger.Debug("staves detected", "staves", layout.Count(), "lines", len(layout.Lines))
	if extra := len(layout.Lines) - layout.Count()*detection.LinesPerStaff; extra > 0 {
		r.Logger.Warn("lines outside a closed staff", "lines", extra)
	}

	cal := tpl.Calibrate(layout, CalibrationTolerance)
	if cal.Spacing.Samples > 0 && !cal.Calibrated {
		r.Logger.Warn("staff spacing off calibration",
			"measured", cal.Spacing.Mean, "expected", cal.Expected, "deviation", cal.Deviation)
	}

	scanner := &detection.Scanner{Templates: tpl, Parallel: r.Parallel}
	symbols := scanner.Scan(g, layout)

	result := &Result{
		ID:               uuid.New().String(),
		Width:            g.Cols(),
		Height:           g.Rows(),
		Staves:           layout.Staves,
		Lines:            layout.Lines,
		Symbols:          symbols,
		Calibration:      cal,
		ProcessingTimeMs: time.Since(start).Milliseconds(),
		Grid:             g,
	}
	r.Logger.Info("score recognized",
		"id", result.ID, "staves", layout.Count(), "symbols", len(symbols), "notes", result.Notes())
	return result
}

// Overlay renders the symbols of res over its grid.
func Overlay(res *Result, palette imaging.Palette) *imaging.Overlay {
	o := imaging.NewOverlay(res.Grid, palette)
	o.MarkAll(res.Symbols)
	return o
}
