package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"image"
	"io"
	"mime"
	"net/http"
	"strconv"

	"github.com/StefanCiuprina/sheet-music-reader/internal/detection"
	scoreerrors "github.com/StefanCiuprina/sheet-music-reader/internal/errors"
	"github.com/StefanCiuprina/sheet-music-reader/internal/imaging"
	"github.com/StefanCiuprina/sheet-music-reader/internal/notation"
	"github.com/StefanCiuprina/sheet-music-reader/internal/ocr"
	"github.com/StefanCiuprina/sheet-music-reader/internal/pipeline"
	"github.com/StefanCiuprina/sheet-music-reader/internal/playback"
)

// uploadField is the multipart form field holding the image.
const uploadField = "image"

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"version": Version,
	})
}

func (s *Server) handleRecognize(w http.ResponseWriter, r *http.Request) {
	res, err := s.recognize(w, r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if ok, _ := strconv.ParseBool(r.URL.Query().Get("reading_order")); ok {
		res.Symbols = notation.ReadingOrder(res.Symbols)
	}
	writeJSON(w, http.StatusOK, res)
}

func (s *Server) handleOverlay(w http.ResponseWriter, r *http.Request) {
	res, err := s.recognize(w, r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	var buf bytes.Buffer
	if err := pipeline.Overlay(res, imaging.DefaultPalette()).EncodePNG(&buf); err != nil {
		s.writeError(w, r, scoreerrors.NewExportFailedError(res.ID, "png", err))
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("X-Symbol-Count", strconv.Itoa(len(res.Symbols)))
	w.Write(buf.Bytes())
}

func (s *Server) handleMIDI(w http.ResponseWriter, r *http.Request) {
	tempo := s.tempo
	if v := r.URL.Query().Get("tempo"); v != "" {
		t, err := playback.ParseTempo(v)
		if err != nil {
			s.writeError(w, r, scoreerrors.NewInvalidArgumentError("tempo", v, err.Error()))
			return
		}
		tempo = t
	}

	res, err := s.recognize(w, r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	out, err := playback.Export(notation.ReadingOrder(res.Symbols), tempo)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", out.MimeType)
	w.Header().Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{
		"filename": res.ID + ".mid",
	}))
	w.Write(out.Data)
}

func (s *Server) handleTitle(w http.ResponseWriter, r *http.Request) {
	language := r.URL.Query().Get("language")
	if language == "" {
		language = s.language
	}

	img, threshold, err := s.readImage(w, r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	layout := detection.DetectStaves(imaging.Binarize(img, threshold))
	title, err := ocr.ReadTitle(img, layout, language)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, title)
}

func (s *Server) recognize(w http.ResponseWriter, r *http.Request) (*pipeline.Result, error) {
	img, threshold, err := s.readImage(w, r)
	if err != nil {
		return nil, err
	}
	rec := *s.recognizer
	rec.Threshold = threshold
	return rec.RecognizeImage(img)
}

// readImage decodes the uploaded image and resolves the threshold query
// parameter against the configured one.
func (s *Server) readImage(w http.ResponseWriter, r *http.Request) (image.Image, uint8, error) {
	threshold := s.recognizer.Threshold
	if threshold == 0 {
		threshold = imaging.DefaultThreshold
	}
	if v := r.URL.Query().Get("threshold"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 || n > 255 {
			return nil, 0, scoreerrors.NewInvalidArgumentError("threshold", v, "must be an integer between 1 and 255")
		}
		threshold = uint8(n)
	}

	data, err := s.readUpload(w, r)
	if err != nil {
		return nil, 0, err
	}
	if len(data) == 0 {
		return nil, 0, scoreerrors.NewInvalidArgumentError("body", 0, "no image uploaded")
	}

	img, err := imaging.Decode(bytes.NewReader(data), "upload")
	if err != nil {
		return nil, 0, err
	}
	return img, threshold, nil
}

func (s *Server) readUpload(w http.ResponseWriter, r *http.Request) ([]byte, error) {
	r.Body = http.MaxBytesReader(w, r.Body, s.maxUpload)

	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType != "multipart/form-data" {
		data, err := io.ReadAll(r.Body)
		if err != nil {
			return nil, scoreerrors.NewImageLoadError("upload", err)
		}
		return data, nil
	}

	if err := r.ParseMultipartForm(s.maxUpload); err != nil {
		return nil, scoreerrors.NewImageLoadError("upload", err)
	}
	f, _, err := r.FormFile(uploadField)
	if err != nil {
		return nil, scoreerrors.NewInvalidArgumentError(uploadField, nil, fmt.Sprintf("missing form file: %v", err))
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, scoreerrors.NewImageLoadError("upload", err)
	}
	return data, nil
}

// statusFor maps an error to its HTTP status.
func statusFor(err error) int {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		return http.StatusRequestEntityTooLarge
	}

	switch scoreerrors.CodeOf(err) {
	case scoreerrors.ErrorInvalidArgument, scoreerrors.ErrorImageLoadFailed:
		return http.StatusBadRequest
	case scoreerrors.ErrorUnsupportedFormat:
		return http.StatusUnsupportedMediaType
	case scoreerrors.ErrorEmptyImage:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)

	body := map[string]interface{}{"error_code": "INTERNAL", "message": err.Error()}
	var se *scoreerrors.ScoreError
	if errors.As(err, &se) {
		body = se.ToMap()
	}
	body["request_id"] = requestID(r)

	if status >= http.StatusInternalServerError {
		s.logger.Error("request failed", "id", requestID(r), "error", err)
	} else {
		s.logger.Debug("request rejected", "id", requestID(r), "status", status, "error", err)
	}
	writeJSON(w, status, body)
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
