package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/StefanCiuprina/sheet-music-reader/internal/detection"
	"github.com/StefanCiuprina/sheet-music-reader/internal/imaging"
	"github.com/StefanCiuprina/sheet-music-reader/internal/ocr"
)

func newTitleCmd(a *app) *cobra.Command {
	var language string

	cmd := &cobra.Command{
		Use:   "title <image>",
		Short: "Read the text above the first staff with Tesseract",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if language == "" {
				language = a.cfg.OCRLanguage
			}

			img, err := imaging.Open(args[0])
			if err != nil {
				return err
			}
			threshold := a.cfg.Threshold
			if threshold == 0 {
				threshold = imaging.DefaultThreshold
			}
			layout := detection.DetectStaves(imaging.Binarize(img, threshold))

			title, err := ocr.ReadTitle(img, layout, language)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), title.Text)
			return nil
		},
	}

	cmd.Flags().StringVar(&language, "language", "", "Tesseract language code (default from SHEET_OCR_LANGUAGE)")
	return cmd
}
