package main

import (
	"bytes"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/StefanCiuprina/sheet-music-reader/internal/imaging"
	"github.com/StefanCiuprina/sheet-music-reader/internal/pipeline"
)

func newOverlayCmd(a *app) *cobra.Command {
	var (
		output string
		colors map[string]string
	)

	cmd := &cobra.Command{
		Use:   "overlay <image>",
		Short: "Draw the recognized symbols over the binarized score",
		Long: `Draw the recognized symbols over the binarized score as a PNG.

Each symbol gets a box and a center dot in its duration color: whole cyan,
half green, quarter red and eighth blue. Override with --color, for example
--color half=#ff8800,ink=#333333.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			palette := imaging.DefaultPalette()
			for name, hex := range colors {
				if err := palette.Set(name, hex); err != nil {
					return err
				}
			}

			_, res, err := a.recognizeFile(args[0])
			if err != nil {
				return err
			}

			var buf bytes.Buffer
			o := pipeline.Overlay(res, palette)
			if err := o.EncodePNG(&buf); err != nil {
				return err
			}
			if err := writeFile(cmd, output, buf.Bytes()); err != nil {
				return err
			}
			if output != "-" {
				fmt.Fprintf(cmd.ErrOrStderr(), "marked %d symbols in %s\n", o.Marked(), output)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output PNG path, - for stdout")
	cmd.Flags().StringToStringVar(&colors, "color", nil, "palette overrides as name=#rrggbb")
	cmd.MarkFlagRequired("output")
	return cmd
}
