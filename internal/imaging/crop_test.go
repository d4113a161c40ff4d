package imaging

import (
	"bytes"
	"image/color"
	"image/png"
	"testing"
)

func TestCrop(t *testing.T) {
	img := createInMemoryImage(100, 100, color.White)
	img.Set(10, 5, color.Black)

	cropped, err := Crop(img, Region{X1: 10, Y1: 5, X2: 60, Y2: 30}, 1.0)
	if err != nil {
		t.Fatalf("Crop failed: %v", err)
	}
	if b := cropped.Bounds(); b.Dx() != 50 || b.Dy() != 25 {
		t.Errorf("dimensions: got %dx%d, want 50x25", b.Dx(), b.Dy())
	}
	if r, _, _, _ := cropped.At(0, 0).RGBA(); r != 0 {
		t.Error("expected the black pixel at the crop origin")
	}
}

func TestCrop_WithScale(t *testing.T) {
	img := createInMemoryImage(100, 100, color.White)

	cropped, err := Crop(img, Region{X1: 0, Y1: 0, X2: 50, Y2: 20}, 2.0)
	if err != nil {
		t.Fatalf("Crop with scale failed: %v", err)
	}
	if b := cropped.Bounds(); b.Dx() != 100 || b.Dy() != 40 {
		t.Errorf("scaled dimensions: got %dx%d, want 100x40", b.Dx(), b.Dy())
	}
}

func TestCrop_InvalidRegion(t *testing.T) {
	img := createInMemoryImage(100, 100, color.White)

	tests := []struct {
		name   string
		region Region
	}{
		{"outside bounds", Region{X1: 50, Y1: 50, X2: 150, Y2: 150}},
		{"negative", Region{X1: -10, Y1: 0, X2: 50, Y2: 50}},
		{"inverted", Region{X1: 50, Y1: 50, X2: 10, Y2: 10}},
		{"empty", Region{X1: 10, Y1: 10, X2: 10, Y2: 50}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Crop(img, tt.region, 1.0); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestEncodePNG(t *testing.T) {
	data, err := EncodePNG(createInMemoryImage(12, 8, color.Black))
	if err != nil {
		t.Fatalf("EncodePNG failed: %v", err)
	}
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("output is not a PNG: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 12 || b.Dy() != 8 {
		t.Errorf("dimensions: got %dx%d, want 12x8", b.Dx(), b.Dy())
	}
}
