package main

import (
	"fmt"
	"image"
	"os"

	"github.com/spf13/cobra"

	"github.com/StefanCiuprina/sheet-music-reader/internal/config"
	"github.com/StefanCiuprina/sheet-music-reader/internal/imaging"
	"github.com/StefanCiuprina/sheet-music-reader/internal/logging"
	"github.com/StefanCiuprina/sheet-music-reader/internal/pipeline"
)

// app is the state shared by every subcommand once configuration is loaded.
type app struct {
	envFile   string
	logLevel  string
	threshold int
	parallel  bool

	cfg    *config.Config
	logger *logging.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "sheet-reader",
		Short: "Recognize notes and rests on score images",
		Long: `sheet-reader finds the staves of a rasterized score, classifies the notes
and rests printed in the reference font and reports their duration and pitch.

Results can be printed, drawn over the score, exported as MIDI or served
over MCP (stdio) and HTTP.

Configuration is read from SHEET_* environment variables and an optional
.env file. Flags override both.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.load,
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.envFile, "env-file", config.DefaultEnvFile, "dotenv file read before the environment")
	flags.StringVar(&a.logLevel, "log-level", "", "debug, info, warn or error (default from SHEET_LOG_LEVEL)")
	flags.IntVar(&a.threshold, "threshold", 0, "gray level below which a pixel is ink, 1-255 (default from SHEET_THRESHOLD)")
	flags.BoolVar(&a.parallel, "parallel", false, "scan staves concurrently")

	root.AddCommand(
		newRecognizeCmd(a),
		newOverlayCmd(a),
		newMIDICmd(a),
		newTitleCmd(a),
		newMCPCmd(a),
		newServeCmd(a),
		newVersionCmd(),
	)
	return root
}

// load builds the configuration and logger, applying flag overrides.
func (a *app) load(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(a.envFile)
	if err != nil {
		return err
	}

	if a.logLevel != "" {
		level, err := logging.ParseLevel(a.logLevel)
		if err != nil {
			return err
		}
		cfg.LogLevel = level
	}
	if cmd.Flags().Changed("threshold") {
		if a.threshold < 1 || a.threshold > 255 {
			return fmt.Errorf("--threshold must be between 1 and 255, got %d", a.threshold)
		}
		cfg.Threshold = uint8(a.threshold)
	}
	if a.parallel {
		cfg.ParallelScan = true
	}

	a.cfg = cfg
	a.logger = logging.NewLoggerTo(cmd.ErrOrStderr(), "sheet-reader", cfg.LogLevel)
	return nil
}

func (a *app) recognizer() *pipeline.Recognizer {
	return pipeline.New(a.cfg, a.logger)
}

// recognizeFile loads the image at path and recognizes it.
func (a *app) recognizeFile(path string) (image.Image, *pipeline.Result, error) {
	img, err := imaging.Open(path)
	if err != nil {
		return nil, nil, err
	}
	res, err := a.recognizer().RecognizeImage(img)
	if err != nil {
		return nil, nil, err
	}
	return img, res, nil
}

// writeFile writes data to path, or to stdout when path is "-".
func writeFile(cmd *cobra.Command, path string, data []byte) error {
	if path == "-" {
		_, err := cmd.OutOrStdout().Write(data)
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
