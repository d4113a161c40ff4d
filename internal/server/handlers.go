package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"image"

	"github.com/StefanCiuprina/sheet-music-reader/internal/detection"
	scoreerrors "github.com/StefanCiuprina/sheet-music-reader/internal/errors"
	"github.com/StefanCiuprina/sheet-music-reader/internal/imaging"
	"github.com/StefanCiuprina/sheet-music-reader/internal/notation"
	"github.com/StefanCiuprina/sheet-music-reader/internal/ocr"
	"github.com/StefanCiuprina/sheet-music-reader/internal/pipeline"
	"github.com/StefanCiuprina/sheet-music-reader/internal/playback"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "score_recognize").
	Name string `json:"name"`

	// Arguments contains the tool-specific parameters as JSON.
	Arguments json.RawMessage `json:"arguments"`
}

// handleToolsCall processes a tools/call request and executes the specified tool.
//
// The response wraps the tool result in MCP's content format:
//
//	{
//	  "content": [{"type": "text", "text": "<JSON result>"}]
//	}
//
// Tool execution errors return a JSON-RPC error response with code -32000.
// Coded errors carry their ToMap form as the error data.
func (s *Server) handleToolsCall(req *MCPRequest) *MCPResponse {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(req.ID, -32602, "Invalid params", err.Error())
	}

	result, err := s.executeTool(params.Name, params.Arguments)
	if err != nil {
		s.logger.Warn("tool failed", "tool", params.Name, "error", err)
		return s.errorResponse(req.ID, -32000, "Tool execution failed", errorData(err))
	}

	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"content": []map[string]interface{}{
				{
					"type": "text",
					"text": mustMarshalJSON(result),
				},
			},
		},
	}
}

// executeTool dispatches tool execution to the appropriate handler function.
func (s *Server) executeTool(name string, args json.RawMessage) (interface{}, error) {
	switch name {
	case "score_load":
		return s.handleScoreLoad(args)
	case "score_staves":
		return s.handleScoreStaves(args)
	case "score_recognize":
		return s.handleScoreRecognize(args)
	case "score_overlay":
		return s.handleScoreOverlay(args)
	case "score_midi":
		return s.handleScoreMIDI(args)
	case "score_title":
		return s.handleScoreTitle(args)
	default:
		return nil, fmt.Errorf("unknown tool: %s", name)
	}
}

// errorResponse creates a JSON-RPC error response with the given details.
func (s *Server) errorResponse(id interface{}, code int, message string, data interface{}) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      id,
		Error: &MCPError{
			Code:    code,
			Message: message,
			Data:    data,
		},
	}
}

func errorData(err error) interface{} {
	var se *scoreerrors.ScoreError
	if errors.As(err, &se) {
		return se.ToMap()
	}
	return err.Error()
}

// mustMarshalJSON converts a value to pretty-printed JSON string.
// On marshal failure it returns an empty string.
func mustMarshalJSON(v interface{}) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

// scoreArgs are the arguments shared by every tool.
type scoreArgs struct {
	Path      string `json:"path"`
	Threshold int    `json:"threshold"`
}

func (a scoreArgs) validate() error {
	if a.Path == "" {
		return scoreerrors.NewInvalidArgumentError("path", a.Path, "path is required")
	}
	if a.Threshold < 0 || a.Threshold > 255 {
		return scoreerrors.NewInvalidArgumentError("threshold", a.Threshold, "must be between 1 and 255")
	}
	return nil
}

// recognizerFor returns the server's recognizer, or a copy of it when the call
// overrides the threshold.
func (s *Server) recognizerFor(a scoreArgs) *pipeline.Recognizer {
	if a.Threshold == 0 {
		return s.recognizer
	}
	r := *s.recognizer
	r.Threshold = uint8(a.Threshold)
	return &r
}

func (s *Server) threshold(a scoreArgs) uint8 {
	if t := s.recognizerFor(a).Threshold; t != 0 {
		return t
	}
	return imaging.DefaultThreshold
}

func (s *Server) load(a scoreArgs) (image.Image, error) {
	if err := a.validate(); err != nil {
		return nil, err
	}
	return s.cache.Load(a.Path)
}

func (s *Server) recognize(a scoreArgs) (*pipeline.Result, error) {
	img, err := s.load(a)
	if err != nil {
		return nil, err
	}
	return s.recognizerFor(a).RecognizeImage(img)
}

func (s *Server) handleScoreLoad(args json.RawMessage) (interface{}, error) {
	var a scoreArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if err := a.validate(); err != nil {
		return nil, err
	}
	return imaging.LoadImageInfo(s.cache, a.Path)
}

// StavesResult is the outcome of staff detection alone.
type StavesResult struct {
	Count       int                   `json:"count"`
	Staves      []detection.Staff     `json:"staves"`
	Lines       []int                 `json:"lines"`
	Calibration detection.Calibration `json:"calibration"`
}

func (s *Server) handleScoreStaves(args json.RawMessage) (interface{}, error) {
	var a scoreArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	img, err := s.load(a)
	if err != nil {
		return nil, err
	}

	layout := detection.DetectStaves(imaging.Binarize(img, s.threshold(a)))
	tpl := s.recognizer.Templates
	if tpl == nil {
		tpl = detection.DefaultTemplates()
	}
	return &StavesResult{
		Count:       layout.Count(),
		Staves:      layout.Staves,
		Lines:       layout.Lines,
		Calibration: tpl.Calibrate(layout, pipeline.CalibrationTolerance),
	}, nil
}

type scoreRecognizeArgs struct {
	scoreArgs
	ReadingOrder bool `json:"reading_order"`
}

func (s *Server) handleScoreRecognize(args json.RawMessage) (interface{}, error) {
	var a scoreRecognizeArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	res, err := s.recognize(a.scoreArgs)
	if err != nil {
		return nil, err
	}
	if a.ReadingOrder {
		res.Symbols = notation.ReadingOrder(res.Symbols)
	}
	return res, nil
}

type scoreOverlayArgs struct {
	scoreArgs
	Colors map[string]string `json:"colors"`
}

func (s *Server) handleScoreOverlay(args json.RawMessage) (interface{}, error) {
	var a scoreOverlayArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}

	palette := imaging.DefaultPalette()
	for name, hex := range a.Colors {
		if err := palette.Set(name, hex); err != nil {
			return nil, scoreerrors.NewInvalidArgumentError("colors", name+"="+hex, err.Error())
		}
	}

	res, err := s.recognize(a.scoreArgs)
	if err != nil {
		return nil, err
	}
	return pipeline.Overlay(res, palette).Result()
}

type scoreMIDIArgs struct {
	scoreArgs
	Tempo string `json:"tempo"`
}

func (s *Server) handleScoreMIDI(args json.RawMessage) (interface{}, error) {
	var a scoreMIDIArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}

	tempo := s.tempo
	if a.Tempo != "" {
		t, err := playback.ParseTempo(a.Tempo)
		if err != nil {
			return nil, scoreerrors.NewInvalidArgumentError("tempo", a.Tempo, err.Error())
		}
		tempo = t
	}

	res, err := s.recognize(a.scoreArgs)
	if err != nil {
		return nil, err
	}
	return playback.Export(notation.ReadingOrder(res.Symbols), tempo)
}

type scoreTitleArgs struct {
	scoreArgs
	Language string `json:"language"`
}

func (s *Server) handleScoreTitle(args json.RawMessage) (interface{}, error) {
	var a scoreTitleArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Language == "" {
		a.Language = s.language
	}

	img, err := s.load(a.scoreArgs)
	if err != nil {
		return nil, err
	}
	layout := detection.DetectStaves(imaging.Binarize(img, s.threshold(a.scoreArgs)))
	return ocr.ReadTitle(img, layout, a.Language)
}
