package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/StefanCiuprina/sheet-music-reader/internal/scoretest"
)

// run executes the CLI with args and returns what it wrote to stdout and
// stderr.
func run(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	cmd := newRootCmd()
	cmd.SetArgs(append([]string{"--env-file", filepath.Join(t.TempDir(), "missing.env")}, args...))
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)

	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestVersion(t *testing.T) {
	out, _, err := run(t, "", "version")
	require.NoError(t, err)
	assert.Contains(t, out, "sheet-reader dev")
	assert.Contains(t, out, "Git commit:")
}

func TestRecognize(t *testing.T) {
	path := scoretest.WritePNG(t)

	out, _, err := run(t, "", "recognize", path)
	require.NoError(t, err)

	assert.Contains(t, out, "1 staves, 3 symbols")
	assert.Contains(t, out, "B4 half")
	assert.Contains(t, out, "quarter pause")
	assert.Contains(t, out, "F5 whole")
	assert.NotContains(t, out, "warning")
}

func TestRecognize_JSON(t *testing.T) {
	path := scoretest.WritePNG(t)

	out, _, err := run(t, "", "recognize", "--json", "--reading-order", path)
	require.NoError(t, err)

	var res struct {
		Width   int               `json:"width"`
		Staves  []json.RawMessage `json:"staves"`
		Symbols []json.RawMessage `json:"symbols"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, scoretest.Cols, res.Width)
	assert.Len(t, res.Staves, 1)
	assert.Len(t, res.Symbols, 3)
}

func TestRecognize_Errors(t *testing.T) {
	_, _, err := run(t, "", "recognize")
	assert.Error(t, err, "missing argument")

	_, _, err = run(t, "", "recognize", "/nonexistent/score.png")
	assert.Error(t, err)

	_, _, err = run(t, "", "--threshold", "0", "recognize", scoretest.WritePNG(t))
	assert.Error(t, err)

	_, _, err = run(t, "", "--log-level", "loud", "recognize", scoretest.WritePNG(t))
	assert.Error(t, err)
}

func TestRecognize_ThresholdFromEnv(t *testing.T) {
	t.Setenv("SHEET_THRESHOLD", "0")
	_, _, err := run(t, "", "recognize", scoretest.WritePNG(t))
	assert.Error(t, err, "invalid configuration is rejected")
}

func TestOverlay(t *testing.T) {
	path := scoretest.WritePNG(t)
	outPath := filepath.Join(t.TempDir(), "overlay.png")

	_, stderr, err := run(t, "", "overlay", path, "-o", outPath, "--color", "half=#ff8800")
	require.NoError(t, err)
	assert.Contains(t, stderr, "marked 3 symbols")

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.Equal(t, "\x89PNG", string(data[:4]))
}

func TestOverlay_Errors(t *testing.T) {
	path := scoretest.WritePNG(t)

	_, _, err := run(t, "", "overlay", path)
	assert.Error(t, err, "output is required")

	_, _, err = run(t, "", "overlay", path, "-o", "-", "--color", "sharp=#000000")
	assert.Error(t, err)
}

func TestMIDI(t *testing.T) {
	path := scoretest.WritePNG(t)

	out, _, err := run(t, "", "midi", path, "-o", "-", "--tempo", "slow")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "MThd"))

	outPath := filepath.Join(t.TempDir(), "score.mid")
	_, stderr, err := run(t, "", "midi", path, "-o", outPath)
	require.NoError(t, err)
	assert.Contains(t, stderr, "2 notes and 1 rests")
	assert.FileExists(t, outPath)

	_, _, err = run(t, "", "midi", path, "-o", "-", "--tempo", "presto")
	assert.Error(t, err)
}

func TestTitle_NoStaves(t *testing.T) {
	_, _, err := run(t, "", "title", scoretest.WriteBlankPNG(t, 30, 30))
	assert.Error(t, err)
}

func TestMCP(t *testing.T) {
	in := `{"jsonrpc":"2.0","id":1,"method":"ping"}` + "\n" +
		`{"jsonrpc":"2.0","id":2,"method":"tools/list"}` + "\n"

	out, _, err := run(t, in, "mcp")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], `"id":1`)
	assert.Contains(t, lines[1], "score_recognize")
}
