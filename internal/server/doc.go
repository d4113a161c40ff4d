// Package server implements an MCP (Model Context Protocol) server that
// exposes score recognition as tools.
//
// # Protocol
//
// The server speaks JSON-RPC 2.0 over stdio, one request per line on stdin
// and one response per line on stdout. Supported methods are initialize,
// tools/list, tools/call and ping. Logs go to stderr.
//
// # Available Tools
//
//   - score_load: image dimensions, format and size
//   - score_staves: staff line rows, glyph bands and spacing calibration
//   - score_recognize: recognized notes and rests
//   - score_overlay: base64 PNG with every symbol boxed in its duration color
//   - score_midi: base64 MIDI export of the recognized symbols
//   - score_title: OCR of the text above the first staff
//
// Every tool takes the absolute path of the score and an optional
// binarization threshold. Images are cached by path for the lifetime of the
// process.
//
// # Error Handling
//
// Tool failures are returned as JSON-RPC errors with code -32000. When the
// failure is a coded error the data field holds its code, message and
// details; otherwise it holds the error string.
package server
