package detection

import "github.com/StefanCiuprina/sheet-music-reader/internal/notation"

// ClassifyPause classifies the glyph at origin using the default templates.
func ClassifyPause(g *Grid, origin notation.Origin) notation.PauseDuration {
	return DefaultTemplates().ClassifyPause(g, origin)
}

// ClassifyPause classifies the glyph at origin as a rest. The shapes are
// disjoint by construction; they are still tried in the fixed order half,
// quarter, eighth and the first match wins.
func (t *Templates) ClassifyPause(g *Grid, origin notation.Origin) notation.PauseDuration {
	if !t.Pause.Extent.Fits(g, origin) {
		return notation.PauseInvalid
	}

	shapes := []struct {
		probes   []Probe
		duration notation.PauseDuration
	}{
		{t.Pause.Half, notation.PauseHalf},
		{t.Pause.Quarter, notation.PauseQuarter},
		{t.Pause.Eighth, notation.PauseEighth},
	}
	for _, s := range shapes {
		if MatchAll(g, origin, s.probes) {
			return s.duration
		}
	}
	return notation.PauseInvalid
}
