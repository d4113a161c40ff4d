package ocr

import (
	"image"
	"strings"

	"github.com/otiai10/gosseract/v2"

	"github.com/StefanCiuprina/sheet-music-reader/internal/detection"
	scoreerrors "github.com/StefanCiuprina/sheet-music-reader/internal/errors"
	"github.com/StefanCiuprina/sheet-music-reader/internal/imaging"
)

// DefaultLanguage is the Tesseract language used when none is configured.
const DefaultLanguage = "eng"

// TitleScale is the factor the title band is enlarged by before OCR.
const TitleScale = 2.0

// TextRegion is one recognized word with its location and confidence.
type TextRegion struct {
	Text string `json:"text"`

	// Confidence is Tesseract's word confidence scaled to 0.0 - 1.0.
	Confidence float64 `json:"confidence"`

	// Bounds is the word's box in original image coordinates.
	Bounds imaging.Region `json:"bounds"`
}

// TitleResult is the text found above the first staff.
type TitleResult struct {
	// Text is the recognized text with surrounding whitespace removed.
	Text string `json:"text"`

	// Region is the band that was read.
	Region imaging.Region `json:"region"`

	// Words holds word-level boxes. It may be empty when Tesseract returns
	// text but no iterator results.
	Words []TextRegion `json:"words"`

	Language string `json:"language"`
}

// TitleRegion returns the band of the image above the first staff's top line.
// Ink above the staff can open the staff band early, so the band top is not
// used. It fails when the layout has no staves or the first line is on the
// top row.
func TitleRegion(layout *detection.StaffLayout, bounds image.Rectangle) (imaging.Region, error) {
	if layout.Count() == 0 {
		return imaging.Region{}, scoreerrors.NewInvalidArgumentError("layout", 0, "no staves detected")
	}
	top := layout.Staves[0].Lines[0]
	if top <= 0 {
		return imaging.Region{}, scoreerrors.NewInvalidArgumentError("layout", top, "first staff line is at the top edge")
	}
	if top > bounds.Dy() {
		return imaging.Region{}, scoreerrors.NewInvalidArgumentError("layout", top, "staff lies outside the image")
	}
	return imaging.Region{
		X1: bounds.Min.X,
		Y1: bounds.Min.Y,
		X2: bounds.Max.X,
		Y2: bounds.Min.Y + top,
	}, nil
}

// ReadTitle recognizes the text above the first staff of img.
func ReadTitle(img image.Image, layout *detection.StaffLayout, language string) (*TitleResult, error) {
	if language == "" {
		language = DefaultLanguage
	}

	region, err := TitleRegion(layout, img.Bounds())
	if err != nil {
		return nil, err
	}

	cropped, err := imaging.Crop(img, region, TitleScale)
	if err != nil {
		return nil, scoreerrors.NewOCRFailedError("title", language, err)
	}
	data, err := imaging.EncodePNG(cropped)
	if err != nil {
		return nil, scoreerrors.NewOCRFailedError("title", language, err)
	}

	text, words, err := recognize(data, language)
	if err != nil {
		return nil, scoreerrors.NewOCRFailedError("title", language, err)
	}

	for i := range words {
		words[i].Bounds = unscale(words[i].Bounds, region, TitleScale)
	}

	return &TitleResult{
		Text:     strings.TrimSpace(text),
		Region:   region,
		Words:    words,
		Language: language,
	}, nil
}

// recognize runs Tesseract on an encoded image. A failure to collect word
// boxes is not an error; the text alone is returned.
func recognize(data []byte, language string) (string, []TextRegion, error) {
	client := gosseract.NewClient()
	defer client.Close()

	if err := client.SetLanguage(language); err != nil {
		return "", nil, err
	}
	if err := client.SetImageFromBytes(data); err != nil {
		return "", nil, err
	}

	text, err := client.Text()
	if err != nil {
		return "", nil, err
	}

	words := make([]TextRegion, 0)
	boxes, err := client.GetBoundingBoxes(gosseract.RIL_WORD)
	if err != nil {
		return text, words, nil
	}
	for _, box := range boxes {
		if strings.TrimSpace(box.Word) == "" {
			continue
		}
		words = append(words, TextRegion{
			Text:       box.Word,
			Confidence: float64(box.Confidence) / 100.0,
			Bounds: imaging.Region{
				X1: box.Box.Min.X,
				Y1: box.Box.Min.Y,
				X2: box.Box.Max.X,
				Y2: box.Box.Max.Y,
			},
		})
	}
	return text, words, nil
}

// unscale maps a box found in the enlarged crop back onto the source image.
func unscale(b, region imaging.Region, scale float64) imaging.Region {
	return imaging.Region{
		X1: region.X1 + int(float64(b.X1)/scale),
		Y1: region.Y1 + int(float64(b.Y1)/scale),
		X2: region.X1 + int(float64(b.X2)/scale),
		Y2: region.Y1 + int(float64(b.Y2)/scale),
	}
}
