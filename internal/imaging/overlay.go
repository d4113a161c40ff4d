package imaging

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/color"
	"io"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/StefanCiuprina/sheet-music-reader/internal/detection"
	"github.com/StefanCiuprina/sheet-music-reader/internal/notation"
)

// Palette holds the overlay colors.
type Palette struct {
	Ink        colorful.Color
	Background colorful.Color
	Whole      colorful.Color
	Half       colorful.Color
	Quarter    colorful.Color
	Eighth     colorful.Color
}

// DefaultPalette returns black ink on white with whole notes in cyan,
// halves in green, quarters in red and eighths in blue.
func DefaultPalette() Palette {
	return Palette{
		Ink:        colorful.Color{R: 0, G: 0, B: 0},
		Background: colorful.Color{R: 1, G: 1, B: 1},
		Whole:      colorful.Color{R: 0, G: 1, B: 1},
		Half:       colorful.Color{R: 0, G: 1, B: 0},
		Quarter:    colorful.Color{R: 1, G: 0, B: 0},
		Eighth:     colorful.Color{R: 0, G: 0, B: 1},
	}
}

// Set replaces one palette entry from a hex string such as "#FF8800".
// Names are ink, background, whole, half, quarter and eighth.
func (p *Palette) Set(name, hex string) error {
	c, err := colorful.Hex(hex)
	if err != nil {
		return fmt.Errorf("invalid color %q for %s: %w", hex, name, err)
	}
	switch strings.ToLower(name) {
	case "ink":
		p.Ink = c
	case "background":
		p.Background = c
	case "whole":
		p.Whole = c
	case "half":
		p.Half = c
	case "quarter":
		p.Quarter = c
	case "eighth":
		p.Eighth = c
	default:
		return fmt.Errorf("unknown palette entry %q", name)
	}
	return nil
}

// For returns the color used to mark s.
func (p Palette) For(s notation.Symbol) colorful.Color {
	if s.IsNote() {
		switch s.Note {
		case notation.NoteWhole:
			return p.Whole
		case notation.NoteHalf:
			return p.Half
		case notation.NoteQuarter:
			return p.Quarter
		default:
			return p.Eighth
		}
	}
	switch s.Pause {
	case notation.PauseHalf:
		return p.Half
	case notation.PauseQuarter:
		return p.Quarter
	default:
		return p.Eighth
	}
}

// marker is the outline box and center dot drawn for one glyph class,
// relative to the glyph origin.
type marker struct {
	box detection.Box
	dot notation.Origin
}

var (
	wholeMarker = marker{detection.Box{Top: 0, Left: 0, Bottom: 10, Right: 16}, notation.Origin{Row: 4, Col: 6}}
	downMarker  = marker{detection.Box{Top: 30, Left: 0, Bottom: 41, Right: 12}, notation.Origin{Row: 36, Col: 6}}
	upMarker    = marker{detection.Box{Top: 0, Left: 0, Bottom: 9, Right: 12}, notation.Origin{Row: 4, Col: 6}}

	pauseMarkers = map[notation.PauseDuration]marker{
		notation.PauseHalf:    {box: detection.Box{Top: 0, Left: 0, Bottom: 5, Right: 18}},
		notation.PauseQuarter: {box: detection.Box{Top: 0, Left: 0, Bottom: 30, Right: 9}},
		notation.PauseEighth:  {box: detection.Box{Top: 0, Left: 0, Bottom: 17, Right: 8}},
	}
)

func markerFor(s notation.Symbol) (marker, bool) {
	if s.IsPause() {
		m, ok := pauseMarkers[s.Pause]
		return m, ok
	}
	switch {
	case s.Note == notation.NoteWhole:
		return wholeMarker, true
	case s.Stem == notation.StemDown:
		return downMarker, true
	case s.Stem == notation.StemUp:
		return upMarker, true
	default:
		return marker{}, false
	}
}

// Overlay is a single mutable RGBA buffer onto which recognized symbols are
// drawn. Every Mark call updates the same buffer in place.
//
// An Overlay is not safe for concurrent use.
type Overlay struct {
	img     *image.RGBA
	palette Palette
	marked  int
}

// NewOverlay renders g (ink and background) into a new buffer.
func NewOverlay(g *detection.Grid, palette Palette) *Overlay {
	img := image.NewRGBA(image.Rect(0, 0, g.Cols(), g.Rows()))
	ink := color.RGBAModel.Convert(palette.Ink)
	bg := color.RGBAModel.Convert(palette.Background)
	for y := 0; y < g.Rows(); y++ {
		for x := 0; x < g.Cols(); x++ {
			if g.Ink(y, x) {
				img.Set(x, y, ink)
			} else {
				img.Set(x, y, bg)
			}
		}
	}
	return &Overlay{img: img, palette: palette}
}

// Mark draws the outline box of s and, for notes, a single-pixel dot on the
// notehead.
// Symbols without a known marker are ignored.
func (o *Overlay) Mark(s notation.Symbol) {
	m, ok := markerFor(s)
	if !ok {
		return
	}
	c := color.RGBAModel.Convert(o.palette.For(s))

	top := s.Origin.Row + m.box.Top
	bottom := s.Origin.Row + m.box.Bottom
	left := s.Origin.Col + m.box.Left
	right := s.Origin.Col + m.box.Right

	for x := left; x <= right; x++ {
		o.set(x, top, c)
		o.set(x, bottom, c)
	}
	for y := top; y <= bottom; y++ {
		o.set(left, y, c)
		o.set(right, y, c)
	}

	if s.IsNote() {
		o.set(s.Origin.Col+m.dot.Col, s.Origin.Row+m.dot.Row, c)
	}
	o.marked++
}

// MarkAll marks every symbol.
func (o *Overlay) MarkAll(symbols []notation.Symbol) {
	for _, s := range symbols {
		o.Mark(s)
	}
}

func (o *Overlay) set(x, y int, c color.Color) {
	if image.Pt(x, y).In(o.img.Rect) {
		o.img.Set(x, y, c)
	}
}

// Image returns the overlay buffer. Later Mark calls keep modifying it.
func (o *Overlay) Image() *image.RGBA { return o.img }

// Marked returns the number of symbols drawn so far.
func (o *Overlay) Marked() int { return o.marked }

// EncodePNG writes the overlay as PNG.
func (o *Overlay) EncodePNG(w io.Writer) error {
	if err := imaging.Encode(w, o.img, imaging.PNG); err != nil {
		return fmt.Errorf("failed to encode image: %w", err)
	}
	return nil
}

// OverlayResult contains the rendered overlay.
type OverlayResult struct {
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	ImageBase64 string `json:"image_base64"`
	MimeType    string `json:"mime_type"`
	Marked      int    `json:"marked"`
}

// Result encodes the overlay as a base64 PNG.
func (o *Overlay) Result() (*OverlayResult, error) {
	var buf bytes.Buffer
	if err := o.EncodePNG(&buf); err != nil {
		return nil, err
	}

	b := o.img.Bounds()
	return &OverlayResult{
		Width:       b.Dx(),
		Height:      b.Dy(),
		ImageBase64: base64.StdEncoding.EncodeToString(buf.Bytes()),
		MimeType:    "image/png",
		Marked:      o.marked,
	}, nil
}
