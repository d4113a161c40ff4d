// Package ocr reads the text printed above a score's first staff using
// Tesseract.
//
// # Prerequisites
//
// gosseract links against the Tesseract C library, so building this package
// requires cgo plus the Tesseract and Leptonica development headers:
//
//	# Debian/Ubuntu
//	apt-get install libtesseract-dev libleptonica-dev tesseract-ocr-eng
//
//	# macOS
//	brew install tesseract
//
// Language data is looked up in the usual tessdata locations; set
// TESSDATA_PREFIX to override.
//
// # Title Region
//
// The title band is every row above the first staff's top line, across the
// full width of the image. It is enlarged before recognition because titles
// on scanned sheets are often only a few pixels tall. Word bounds in the
// result are mapped back to the original image coordinates.
package ocr
