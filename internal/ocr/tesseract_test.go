package ocr

import (
	"image"
	"image/color"
	"image/draw"
	"strings"
	"testing"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/StefanCiuprina/sheet-music-reader/internal/detection"
	scoreerrors "github.com/StefanCiuprina/sheet-music-reader/internal/errors"
	"github.com/StefanCiuprina/sheet-music-reader/internal/imaging"
)

// drawText draws text on an image using basicfont
func drawText(img *image.RGBA, x, y int, text string, col color.Color) {
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(col),
		Face: basicfont.Face7x13,
		Dot:  fixed.Point26_6{X: fixed.I(x), Y: fixed.I(y)},
	}
	d.DrawString(text)
}

// createTitledScore renders title above a single five-line staff. The text
// is drawn small and scaled up by pixel replication. The band top is 0, the
// way the detector reports it when the title opens the band.
func createTitledScore(t *testing.T, title string, scale int) (*image.RGBA, *detection.StaffLayout) {
	t.Helper()

	w, h := len(title)*7+40, 40
	small := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(small, small.Bounds(), image.White, image.Point{}, draw.Src)
	drawText(small, 20, 25, title, color.Black)

	staffTop := h*scale + 20
	img := image.NewRGBA(image.Rect(0, 0, w*scale, staffTop+60))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)
	for y := 0; y < h*scale; y++ {
		for x := 0; x < w*scale; x++ {
			img.Set(x, y, small.At(x/scale, y/scale))
		}
	}
	for i := 0; i < 5; i++ {
		for x := 0; x < w*scale; x++ {
			img.Set(x, staffTop+i*10, color.Black)
		}
	}

	layout := &detection.StaffLayout{Staves: []detection.Staff{{
		Lines:  [5]int{staffTop, staffTop + 10, staffTop + 20, staffTop + 30, staffTop + 40},
		Top:    0,
		Bottom: staffTop + 41,
	}}}
	return img, layout
}

func skipWithoutTesseract(t *testing.T, err error) {
	t.Helper()
	if scoreerrors.CodeOf(err) == scoreerrors.ErrorOCRFailed &&
		(strings.Contains(err.Error(), "tesseract") ||
			strings.Contains(err.Error(), "library") ||
			strings.Contains(err.Error(), "language")) {
		t.Skip("Tesseract not available")
	}
}

func TestTitleRegion(t *testing.T) {
	layout := &detection.StaffLayout{
		Staves: []detection.Staff{{Index: 0, Lines: [5]int{40, 50, 60, 70, 80}, Top: 40, Bottom: 81}},
	}

	region, err := TitleRegion(layout, image.Rect(0, 0, 200, 120))
	if err != nil {
		t.Fatalf("TitleRegion failed: %v", err)
	}
	want := imaging.Region{X1: 0, Y1: 0, X2: 200, Y2: 40}
	if region != want {
		t.Errorf("got %+v, want %+v", region, want)
	}
}

func TestTitleRegion_OffsetBounds(t *testing.T) {
	layout := &detection.StaffLayout{Staves: []detection.Staff{{Lines: [5]int{15, 25, 35, 45, 55}, Top: 3}}}

	region, err := TitleRegion(layout, image.Rect(10, 20, 110, 120))
	if err != nil {
		t.Fatalf("TitleRegion failed: %v", err)
	}
	want := imaging.Region{X1: 10, Y1: 20, X2: 110, Y2: 35}
	if region != want {
		t.Errorf("got %+v, want %+v", region, want)
	}
}

func TestTitleRegion_Errors(t *testing.T) {
	bounds := image.Rect(0, 0, 100, 100)

	tests := []struct {
		name   string
		layout *detection.StaffLayout
	}{
		{"nil layout", nil},
		{"no staves", &detection.StaffLayout{Lines: []int{10, 20}}},
		{"line at top edge", &detection.StaffLayout{Staves: []detection.Staff{{Lines: [5]int{0, 10, 20, 30, 40}}}}},
		{"staff below image", &detection.StaffLayout{Staves: []detection.Staff{{Lines: [5]int{140, 150, 160, 170, 180}}}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := TitleRegion(tt.layout, bounds)
			if err == nil {
				t.Fatal("expected error")
			}
			if code := scoreerrors.CodeOf(err); code != scoreerrors.ErrorInvalidArgument {
				t.Errorf("expected INVALID_ARGUMENT, got %q", code)
			}
		})
	}
}

func TestReadTitle_NoStaves(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 50, 50))
	if _, err := ReadTitle(img, &detection.StaffLayout{}, "eng"); err == nil {
		t.Error("ReadTitle should fail without staves")
	}
}

func TestUnscale(t *testing.T) {
	region := imaging.Region{X1: 10, Y1: 5, X2: 210, Y2: 45}
	got := unscale(imaging.Region{X1: 20, Y1: 10, X2: 60, Y2: 30}, region, 2.0)
	want := imaging.Region{X1: 20, Y1: 10, X2: 40, Y2: 20}
	if got != want {
		t.Errorf("got %+v, want %+v", got, want)
	}
}

func TestReadTitle_RealText(t *testing.T) {
	img, layout := createTitledScore(t, "MINUET", 3)

	result, err := ReadTitle(img, layout, "")
	if err != nil {
		skipWithoutTesseract(t, err)
		t.Fatalf("ReadTitle failed: %v", err)
	}

	if result.Language != DefaultLanguage {
		t.Errorf("Language: got %q, want %q", result.Language, DefaultLanguage)
	}
	if result.Region.Y2 != layout.Staves[0].Lines[0] {
		t.Errorf("region should end at the first staff, got %+v", result.Region)
	}
	t.Logf("Title: %q (%d words)", result.Text, len(result.Words))

	if !strings.Contains(strings.ToUpper(result.Text), "MINUET") {
		t.Logf("Warning: title not recognized exactly - font rendering may vary")
	}
	for _, w := range result.Words {
		if w.Bounds.Y2 > result.Region.Y2 || w.Bounds.X2 > result.Region.X2 {
			t.Errorf("word %q bounds %+v outside title region %+v", w.Text, w.Bounds, result.Region)
		}
	}
}
