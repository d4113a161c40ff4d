package detection

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// SpacingStats summarizes the gaps between adjacent lines of the detected
// staves.
type SpacingStats struct {
	// Samples is the number of line gaps measured (four per staff).
	Samples int `json:"samples"`

	// Mean is the average gap in pixels.
	Mean float64 `json:"mean"`

	// StdDev is the sample standard deviation of the gaps.
	StdDev float64 `json:"std_dev"`

	// Min and Max are the extreme gaps observed.
	Min int `json:"min"`
	Max int `json:"max"`
}

// Spacing measures the line spacing of every closed staff. The zero value is
// returned when no staff was detected.
func (l *StaffLayout) Spacing() SpacingStats {
	if l.Count() == 0 {
		return SpacingStats{}
	}

	gaps := make([]float64, 0, len(l.Staves)*(LinesPerStaff-1))
	minGap, maxGap := math.MaxInt, 0
	for _, s := range l.Staves {
		for i := 1; i < LinesPerStaff; i++ {
			gap := s.Lines[i] - s.Lines[i-1]
			gaps = append(gaps, float64(gap))
			minGap = minInt(minGap, gap)
			maxGap = maxInt(maxGap, gap)
		}
	}

	stats := SpacingStats{
		Samples: len(gaps),
		Mean:    stat.Mean(gaps, nil),
		Min:     minGap,
		Max:     maxGap,
	}
	if len(gaps) > 1 {
		stats.StdDev = stat.StdDev(gaps, nil)
	}
	return stats
}

// Calibration reports how well a layout matches a template set.
type Calibration struct {
	Spacing  SpacingStats `json:"spacing"`
	Expected float64      `json:"expected_spacing"`

	// Deviation is |Spacing.Mean - Expected|.
	Deviation float64 `json:"deviation"`

	// Calibrated is true when staves were found and Deviation is within the
	// tolerance passed to Calibrate.
	Calibrated bool `json:"calibrated"`
}

// Calibrate compares the measured line spacing with the spacing t was
// calibrated against. Classification of an off-calibration image is not
// refused; the result only tells the caller how far to trust it.
func (t *Templates) Calibrate(layout *StaffLayout, tolerance float64) Calibration {
	spacing := layout.Spacing()
	c := Calibration{
		Spacing:  spacing,
		Expected: t.LineSpacing,
	}
	if spacing.Samples == 0 {
		return c
	}
	c.Deviation = math.Abs(spacing.Mean - t.LineSpacing)
	c.Calibrated = c.Deviation <= tolerance
	return c
}
