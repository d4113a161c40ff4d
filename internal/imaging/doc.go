// Package imaging handles the raster side of score recognition: loading
// score images, binarizing them into ink grids, cropping regions for OCR and
// drawing recognition overlays.
//
// # Coordinate System
//
// Image coordinates are 0-based (x, y) pairs with (0, 0) at the top-left
// corner:
//   - X: horizontal position, the grid's column
//   - Y: vertical position, the grid's row
//   - For regions, (x1,y1) is inclusive (top-left), (x2,y2) is exclusive (bottom-right)
//
// # Binarization
//
// A pixel is ink when the unweighted mean of its red, green and blue
// channels is below a global threshold (100 by default). There is no
// adaptive thresholding, skew correction or noise removal.
//
// # Thread Safety
//
// The ImageCache type is safe for concurrent use. An Overlay is a single
// mutable buffer and must be owned by one goroutine at a time.
package imaging
