package imaging

import (
	"image"
	"image/color"
	"testing"

	"github.com/StefanCiuprina/sheet-music-reader/internal/detection"
	"github.com/StefanCiuprina/sheet-music-reader/internal/notation"
)

func TestBinarize(t *testing.T) {
	img := createInMemoryImage(20, 10, color.White)
	img.Set(3, 2, color.Black)
	img.Set(4, 2, color.RGBA{60, 60, 60, 255})
	img.Set(5, 2, color.RGBA{160, 160, 160, 255})
	img.Set(6, 2, color.RGBA{30, 60, 90, 255}) // mean 60

	g := Binarize(img, DefaultThreshold)
	if g.Rows() != 10 || g.Cols() != 20 {
		t.Fatalf("expected 10x20 grid, got %dx%d", g.Rows(), g.Cols())
	}

	tests := []struct {
		name string
		x, y int
		ink  bool
	}{
		{"black", 3, 2, true},
		{"dark gray", 4, 2, true},
		{"light gray", 5, 2, false},
		{"dark color", 6, 2, true},
		{"white", 0, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := g.Ink(tt.y, tt.x); got != tt.ink {
				t.Errorf("pixel (%d, %d): ink = %v, want %v", tt.x, tt.y, got, tt.ink)
			}
		})
	}
}

func TestBinarizeOffsetBounds(t *testing.T) {
	// Sub-images keep their parent's coordinates; the grid starts at 0.
	parent := createInMemoryImage(40, 40, color.White)
	parent.Set(12, 11, color.Black)
	sub := parent.SubImage(image.Rect(10, 10, 30, 30))

	g := Binarize(sub, DefaultThreshold)
	if g.Rows() != 20 || g.Cols() != 20 {
		t.Fatalf("expected 20x20 grid, got %dx%d", g.Rows(), g.Cols())
	}
	if !g.Ink(1, 2) {
		t.Error("expected ink at grid (1, 2)")
	}
}

func TestBinarizeThreshold(t *testing.T) {
	img := createInMemoryImage(4, 4, color.RGBA{150, 150, 150, 255})

	if g := Binarize(img, DefaultThreshold); g.Ink(0, 0) {
		t.Error("gray 150 should be background at the default threshold")
	}
	if g := Binarize(img, 200); !g.Ink(0, 0) {
		t.Error("gray 150 should be ink at threshold 200")
	}
}

func TestBinarizeThresholdBoundary(t *testing.T) {
	tests := []struct {
		name      string
		c         color.RGBA
		threshold uint8
		ink       bool
	}{
		{"mean truncates below threshold", color.RGBA{99, 100, 100, 255}, 100, true},
		{"gray 103 at 103", color.RGBA{103, 103, 103, 255}, 103, false},
		{"gray 128 at 128", color.RGBA{128, 128, 128, 255}, 128, false},
		{"gray 98 at 98", color.RGBA{98, 98, 98, 255}, 98, false},
		{"gray 98 at 99", color.RGBA{98, 98, 98, 255}, 99, true},
		{"unequal channels", color.RGBA{10, 200, 90, 255}, 100, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img := createInMemoryImage(2, 2, tt.c)
			if got := Binarize(img, tt.threshold).Ink(1, 1); got != tt.ink {
				t.Errorf("ink = %v, want %v", got, tt.ink)
			}
		})
	}
}

func TestGrayscale(t *testing.T) {
	img := createInMemoryImage(3, 2, color.RGBA{99, 100, 100, 255})
	img.Set(2, 1, color.RGBA{255, 255, 254, 255})

	gray := Grayscale(img)
	if b := gray.Bounds(); b.Dx() != 3 || b.Dy() != 2 {
		t.Fatalf("expected 3x2 image, got %v", b)
	}
	if got := gray.GrayAt(0, 0).Y; got != 99 {
		t.Errorf("gray at (0, 0): got %d, want 99", got)
	}
	if got := gray.GrayAt(2, 1).Y; got != 254 {
		t.Errorf("gray at (2, 1): got %d, want 254", got)
	}
}

func TestBinarizeRoundTrip(t *testing.T) {
	// A grid rendered by the overlay and binarized again is unchanged.
	g := detection.NewGrid(30, 40)
	g.Paint(notation.Origin{Row: 5, Col: 5}, detection.HRun(0, 0, 20))
	g.Paint(notation.Origin{Row: 5, Col: 5}, detection.VRun(3, 0, 15))

	back := Binarize(NewOverlay(g, DefaultPalette()).Image(), DefaultThreshold)
	for r := 0; r < g.Rows(); r++ {
		for c := 0; c < g.Cols(); c++ {
			if back.Ink(r, c) != g.Ink(r, c) {
				t.Fatalf("pixel (%d, %d) changed", r, c)
			}
		}
	}
}
