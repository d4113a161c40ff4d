package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/StefanCiuprina/sheet-music-reader/internal/notation"
	"github.com/StefanCiuprina/sheet-music-reader/internal/playback"
)

func newMIDICmd(a *app) *cobra.Command {
	var (
		output string
		tempo  string
	)

	cmd := &cobra.Command{
		Use:   "midi <image>",
		Short: "Export the recognized score as a MIDI file",
		Long: `Export the recognized score as a single-track MIDI file, in reading order.

--tempo takes slow (3s per whole note), medium (2.3s), fast (1.5s) or any
duration such as 2s. The default comes from SHEET_TEMPO.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t := a.cfg.Tempo
			if tempo != "" {
				parsed, err := playback.ParseTempo(tempo)
				if err != nil {
					return err
				}
				t = parsed
			}

			_, res, err := a.recognizeFile(args[0])
			if err != nil {
				return err
			}
			out, err := playback.Export(notation.ReadingOrder(res.Symbols), t)
			if err != nil {
				return err
			}
			if err := writeFile(cmd, output, out.Data); err != nil {
				return err
			}
			if output != "-" {
				fmt.Fprintf(cmd.ErrOrStderr(), "wrote %d notes and %d rests (%dms at %s) to %s\n",
					out.Notes, out.Rests, out.DurationMs, out.Tempo, output)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output MIDI path, - for stdout")
	cmd.Flags().StringVar(&tempo, "tempo", "", "slow, medium, fast or a whole-note duration")
	cmd.MarkFlagRequired("output")
	return cmd
}
