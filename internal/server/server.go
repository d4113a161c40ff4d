package server

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/StefanCiuprina/sheet-music-reader/internal/config"
	"github.com/StefanCiuprina/sheet-music-reader/internal/imaging"
	"github.com/StefanCiuprina/sheet-music-reader/internal/logging"
	"github.com/StefanCiuprina/sheet-music-reader/internal/ocr"
	"github.com/StefanCiuprina/sheet-music-reader/internal/pipeline"
	"github.com/StefanCiuprina/sheet-music-reader/internal/playback"
)

// Name and Version are reported in the initialize handshake.
const (
	Name    = "sheet-music-reader"
	Version = "0.1.0"
)

// Server handles MCP protocol communication
type Server struct {
	cache      *imaging.ImageCache
	recognizer *pipeline.Recognizer
	tempo      playback.Tempo
	language   string
	logger     *logging.Logger
}

// MCPRequest represents an incoming JSON-RPC request
type MCPRequest struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      interface{}     `json:"id"`
	Method  string          `json:"method"`
	Params  json.RawMessage `json:"params,omitempty"`
}

// MCPResponse represents an outgoing JSON-RPC response
type MCPResponse struct {
	JSONRPC string      `json:"jsonrpc"`
	ID      interface{} `json:"id"`
	Result  interface{} `json:"result,omitempty"`
	Error   *MCPError   `json:"error,omitempty"`
}

// MCPError represents a JSON-RPC error
type MCPError struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// New creates a server from cfg. A nil cfg selects the defaults: threshold
// 100, sequential scan, fast tempo and English OCR.
func New(cfg *config.Config, logger *logging.Logger) *Server {
	s := &Server{
		cache:      imaging.NewImageCache(),
		recognizer: &pipeline.Recognizer{Logger: logger.With("pipeline")},
		tempo:      playback.TempoFast,
		language:   ocr.DefaultLanguage,
		logger:     logger.With("mcp"),
	}
	if cfg != nil {
		s.recognizer = pipeline.New(cfg, logger)
		if cfg.Tempo > 0 {
			s.tempo = cfg.Tempo
		}
		if cfg.OCRLanguage != "" {
			s.language = cfg.OCRLanguage
		}
	}
	return s
}

// Run serves requests from stdin and writes responses to stdout until stdin
// is closed.
func (s *Server) Run() error {
	return s.Serve(os.Stdin, os.Stdout)
}

// Serve reads one JSON-RPC request per line from r and writes responses to
// w. Lines that are not valid JSON are logged and skipped.
func (s *Server) Serve(r io.Reader, w io.Writer) error {
	scanner := bufio.NewScanner(r)
	// Tool results carry base64 images, requests stay small
	buf := make([]byte, 0, 64*1024)
	scanner.Buffer(buf, 1024*1024)

	encoder := json.NewEncoder(w)

	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}

		var req MCPRequest
		if err := json.Unmarshal(line, &req); err != nil {
			s.logger.Warn("failed to parse request", "error", err)
			continue
		}

		resp := s.handleRequest(&req)
		if resp != nil {
			if err := encoder.Encode(resp); err != nil {
				s.logger.Error("failed to encode response", "method", req.Method, "error", err)
			}
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("scanner error: %w", err)
	}

	return nil
}

// handleRequest routes requests to appropriate handlers
func (s *Server) handleRequest(req *MCPRequest) *MCPResponse {
	switch req.Method {
	case "initialize":
		return s.handleInitialize(req)
	case "notifications/initialized":
		return nil
	case "tools/list":
		return s.handleToolsList(req)
	case "tools/call":
		return s.handleToolsCall(req)
	case "ping":
		return &MCPResponse{
			JSONRPC: "2.0",
			ID:      req.ID,
			Result:  map[string]interface{}{},
		}
	default:
		return &MCPResponse{
			JSONRPC: "2.0",
			ID:      req.ID,
			Error: &MCPError{
				Code:    -32601,
				Message: fmt.Sprintf("Method not found: %s", req.Method),
			},
		}
	}
}

func (s *Server) handleInitialize(req *MCPRequest) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"protocolVersion": "2024-11-05",
			"capabilities": map[string]interface{}{
				"tools": map[string]interface{}{},
			},
			"serverInfo": map[string]interface{}{
				"name":    Name,
				"version": Version,
			},
		},
	}
}
