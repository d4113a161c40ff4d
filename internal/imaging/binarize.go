package imaging

import (
	"image"

	"github.com/anthonynsimon/bild/clone"
	"github.com/anthonynsimon/bild/parallel"

	"github.com/StefanCiuprina/sheet-music-reader/internal/detection"
)

// DefaultThreshold is the gray level below which a pixel counts as ink.
const DefaultThreshold = 100

// Grayscale converts img to gray by the truncated integer mean of its red,
// green and blue channels.
func Grayscale(img image.Image) *image.Gray {
	src := clone.AsRGBA(img)
	b := src.Bounds()
	dst := image.NewGray(image.Rect(0, 0, b.Dx(), b.Dy()))

	parallel.Line(b.Dy(), func(start, end int) {
		for y := start; y < end; y++ {
			for x := 0; x < b.Dx(); x++ {
				i := y*src.Stride + x*4
				sum := int(src.Pix[i]) + int(src.Pix[i+1]) + int(src.Pix[i+2])
				dst.Pix[y*dst.Stride+x] = uint8(sum / 3)
			}
		}
	})
	return dst
}

// Binarize converts img to an ink/background grid. A pixel is ink when its
// gray level is below threshold. Grid rows follow the image's y axis and
// grid columns its x axis, starting at the image's top-left corner.
func Binarize(img image.Image, threshold uint8) *detection.Grid {
	gray := Grayscale(img)

	b := gray.Bounds()
	g := detection.NewGrid(b.Dy(), b.Dx())
	for y := 0; y < b.Dy(); y++ {
		row := gray.Pix[y*gray.Stride : y*gray.Stride+b.Dx()]
		for x, v := range row {
			if v < threshold {
				g.Set(y, x, true)
			}
		}
	}
	return g
}
