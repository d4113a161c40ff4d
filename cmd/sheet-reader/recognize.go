package main

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/StefanCiuprina/sheet-music-reader/internal/notation"
)

func newRecognizeCmd(a *app) *cobra.Command {
	var (
		asJSON       bool
		readingOrder bool
	)

	cmd := &cobra.Command{
		Use:   "recognize <image>",
		Short: "Print the notes and rests of a score",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, res, err := a.recognizeFile(args[0])
			if err != nil {
				return err
			}
			if readingOrder {
				res.Symbols = notation.ReadingOrder(res.Symbols)
			}

			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(res)
			}

			fmt.Fprintf(out, "%s: %dx%d, %d staves, %d symbols\n",
				args[0], res.Width, res.Height, len(res.Staves), len(res.Symbols))
			if len(res.Staves) > 0 && !res.Calibration.Calibrated {
				fmt.Fprintf(out, "warning: line spacing %.1f differs from the calibrated %.0f\n",
					res.Calibration.Spacing.Mean, res.Calibration.Expected)
			}

			tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "STAFF\tROW\tCOL\tSYMBOL")
			for _, s := range res.Symbols {
				fmt.Fprintf(tw, "%d\t%d\t%d\t%s\n", s.Staff, s.Origin.Row, s.Origin.Col, s)
			}
			return tw.Flush()
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print the full result as JSON")
	cmd.Flags().BoolVar(&readingOrder, "reading-order", false, "sort symbols left to right within each staff")
	return cmd
}
