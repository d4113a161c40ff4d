// Package errors defines the coded error type returned by the collaborators
// around the recognizer: image loading, OCR, export and argument checks.
package errors

import (
	"fmt"
	"time"
)

// ErrorCode identifies a class of failure.
type ErrorCode string

const (
	// Input errors
	ErrorImageLoadFailed   ErrorCode = "IMAGE_LOAD_FAILED"
	ErrorUnsupportedFormat ErrorCode = "UNSUPPORTED_FORMAT"
	ErrorEmptyImage        ErrorCode = "EMPTY_IMAGE"
	ErrorInvalidArgument   ErrorCode = "INVALID_ARGUMENT"

	// Collaborator errors
	ErrorOCRFailed    ErrorCode = "OCR_FAILED"
	ErrorExportFailed ErrorCode = "EXPORT_FAILED"
)

// ScoreError is a structured error carrying a code and the source (file
// path, request ID or tool name) it relates to.
type ScoreError struct {
	Code      ErrorCode
	Message   string
	Source    string
	Timestamp time.Time
	Details   map[string]interface{}
	Cause     error
}

func (e *ScoreError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *ScoreError) Unwrap() error {
	return e.Cause
}

// Factory functions for common errors

func NewImageLoadError(source string, cause error) *ScoreError {
	return &ScoreError{
		Code:      ErrorImageLoadFailed,
		Message:   "Failed to load image",
		Source:    source,
		Timestamp: time.Now(),
		Cause:     cause,
	}
}

func NewUnsupportedFormatError(source string, format string, cause error) *ScoreError {
	return &ScoreError{
		Code:      ErrorUnsupportedFormat,
		Message:   fmt.Sprintf("Unsupported image format: %s", format),
		Source:    source,
		Timestamp: time.Now(),
		Details: map[string]interface{}{
			"format": format,
		},
		Cause: cause,
	}
}

func NewEmptyImageError(source string, width, height int) *ScoreError {
	return &ScoreError{
		Code:      ErrorEmptyImage,
		Message:   fmt.Sprintf("Image has no pixels (%dx%d)", width, height),
		Source:    source,
		Timestamp: time.Now(),
		Details: map[string]interface{}{
			"width":  width,
			"height": height,
		},
	}
}

func NewInvalidArgumentError(name string, value interface{}, reason string) *ScoreError {
	return &ScoreError{
		Code:      ErrorInvalidArgument,
		Message:   fmt.Sprintf("Invalid %s: %s", name, reason),
		Timestamp: time.Now(),
		Details: map[string]interface{}{
			"argument": name,
			"value":    value,
		},
	}
}

func NewOCRFailedError(source string, language string, cause error) *ScoreError {
	return &ScoreError{
		Code:      ErrorOCRFailed,
		Message:   fmt.Sprintf("OCR failed (language: %s)", language),
		Source:    source,
		Timestamp: time.Now(),
		Details: map[string]interface{}{
			"language": language,
		},
		Cause: cause,
	}
}

func NewExportFailedError(source string, format string, cause error) *ScoreError {
	return &ScoreError{
		Code:      ErrorExportFailed,
		Message:   fmt.Sprintf("Failed to export %s", format),
		Source:    source,
		Timestamp: time.Now(),
		Details: map[string]interface{}{
			"format": format,
		},
		Cause: cause,
	}
}

// WithSource returns e with Source set, for errors created before the
// caller knew which request they belong to.
func (e *ScoreError) WithSource(source string) *ScoreError {
	e.Source = source
	return e
}

// ToMap converts the error to a map for JSON responses.
func (e *ScoreError) ToMap() map[string]interface{} {
	result := map[string]interface{}{
		"error_code": string(e.Code),
		"message":    e.Message,
		"timestamp":  e.Timestamp,
	}
	if e.Source != "" {
		result["source"] = e.Source
	}

	for k, v := range e.Details {
		result[k] = v
	}

	if e.Cause != nil {
		result["cause"] = e.Cause.Error()
	}

	return result
}

// CodeOf returns the code of the first ScoreError in err's chain, or the
// empty code when there is none.
func CodeOf(err error) ErrorCode {
	for err != nil {
		if se, ok := err.(*ScoreError); ok {
			return se.Code
		}
		u, ok := err.(interface{ Unwrap() error })
		if !ok {
			return ""
		}
		err = u.Unwrap()
	}
	return ""
}
