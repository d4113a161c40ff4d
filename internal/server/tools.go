package server

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

var pathProperty = map[string]interface{}{
	"type":        "string",
	"description": "Absolute path to the score image",
}

var thresholdProperty = map[string]interface{}{
	"type":        "integer",
	"description": "Gray level (1-255) below which a pixel is ink. Default from configuration, usually 100",
	"minimum":     1,
	"maximum":     255,
}

func schema(required []string, props map[string]interface{}) map[string]interface{} {
	props["path"] = pathProperty
	return map[string]interface{}{
		"type":       "object",
		"properties": props,
		"required":   required,
	}
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	return []Tool{
		{
			Name:        "score_load",
			Description: "Load a score image and return its dimensions, format and file size. The image stays cached for later calls.",
			InputSchema: schema([]string{"path"}, map[string]interface{}{}),
		},
		{
			Name:        "score_staves",
			Description: "Detect the five-line staves of a score. Returns each staff's line rows and glyph band, every detected line, and how the line spacing compares with the recognizer's calibration.",
			InputSchema: schema([]string{"path"}, map[string]interface{}{
				"threshold": thresholdProperty,
			}),
		},
		{
			Name:        "score_recognize",
			Description: "Recognize the notes and rests of a score. Each symbol has its staff, pixel origin, duration and, for notes, stem direction and pitch.",
			InputSchema: schema([]string{"path"}, map[string]interface{}{
				"threshold": thresholdProperty,
				"reading_order": map[string]interface{}{
					"type":        "boolean",
					"description": "Sort symbols staff by staff, left to right. Default false returns the scan order",
					"default":     false,
				},
			}),
		},
		{
			Name:        "score_overlay",
			Description: "Render the binarized score with a colored box and dot on every recognized symbol, as a base64 PNG.",
			InputSchema: schema([]string{"path"}, map[string]interface{}{
				"threshold": thresholdProperty,
				"colors": map[string]interface{}{
					"type":        "object",
					"description": "Optional hex colors keyed by ink, background, whole, half, quarter or eighth",
					"additionalProperties": map[string]interface{}{
						"type": "string",
					},
				},
			}),
		},
		{
			Name:        "score_midi",
			Description: "Recognize a score and export it as a single-track MIDI file (base64). Symbols are played in reading order.",
			InputSchema: schema([]string{"path"}, map[string]interface{}{
				"threshold": thresholdProperty,
				"tempo": map[string]interface{}{
					"type":        "string",
					"description": "slow, medium, fast or the length of a whole note such as \"2s\"",
				},
			}),
		},
		{
			Name:        "score_title",
			Description: "Read the text printed above the first staff (usually the title) with Tesseract OCR.",
			InputSchema: schema([]string{"path"}, map[string]interface{}{
				"threshold": thresholdProperty,
				"language": map[string]interface{}{
					"type":        "string",
					"description": "Tesseract language code. Default from configuration, usually eng",
				},
			}),
		},
	}
}

// handleToolsList returns the list of available tools
func (s *Server) handleToolsList(req *MCPRequest) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"tools": GetToolDefinitions(),
		},
	}
}
