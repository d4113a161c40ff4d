// Package api serves score recognition over HTTP.
//
// # Endpoints
//
//	GET  /healthz        liveness and version
//	POST /v1/recognize   JSON recognition result
//	POST /v1/overlay     PNG overlay of the recognized symbols
//	POST /v1/midi        MIDI export in reading order
//	POST /v1/title       OCR of the text above the first staff
//
// POST endpoints accept the image either as the raw request body or as the
// "image" field of a multipart form. Query parameters: threshold (1-255) on
// every POST endpoint, reading_order on /v1/recognize, tempo on /v1/midi and
// language on /v1/title.
//
// Every response carries an X-Request-ID header. A request that already has
// one keeps it. Errors are JSON objects with an error_code field; coded
// errors map to 400, 413, 415, 422 or 500.
package api
