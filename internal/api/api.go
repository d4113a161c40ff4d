package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/cors"

	"github.com/StefanCiuprina/sheet-music-reader/internal/config"
	"github.com/StefanCiuprina/sheet-music-reader/internal/logging"
	"github.com/StefanCiuprina/sheet-music-reader/internal/ocr"
	"github.com/StefanCiuprina/sheet-music-reader/internal/pipeline"
	"github.com/StefanCiuprina/sheet-music-reader/internal/playback"
)

// Version is reported by /healthz.
const Version = "0.1.0"

// DefaultMaxUploadBytes bounds request bodies when the configuration does
// not.
const DefaultMaxUploadBytes = 20 << 20

// RequestIDHeader carries the per-request ID.
const RequestIDHeader = "X-Request-ID"

const shutdownTimeout = 10 * time.Second

// Server is the HTTP front end of the recognizer.
type Server struct {
	addr       string
	recognizer *pipeline.Recognizer
	tempo      playback.Tempo
	language   string
	maxUpload  int64
	origins    []string
	logger     *logging.Logger

	handler http.Handler
}

// New builds a server from cfg. A nil cfg selects the defaults.
func New(cfg *config.Config, logger *logging.Logger) *Server {
	s := &Server{
		addr:       ":8080",
		recognizer: &pipeline.Recognizer{Logger: logger.With("pipeline")},
		tempo:      playback.TempoFast,
		language:   ocr.DefaultLanguage,
		maxUpload:  DefaultMaxUploadBytes,
		origins:    []string{"*"},
		logger:     logger.With("api"),
	}
	if cfg != nil {
		s.recognizer = pipeline.New(cfg, logger)
		if cfg.HTTPAddr != "" {
			s.addr = cfg.HTTPAddr
		}
		if cfg.Tempo > 0 {
			s.tempo = cfg.Tempo
		}
		if cfg.OCRLanguage != "" {
			s.language = cfg.OCRLanguage
		}
		if cfg.MaxUploadBytes > 0 {
			s.maxUpload = cfg.MaxUploadBytes
		}
		if len(cfg.CORSOrigins) > 0 {
			s.origins = cfg.CORSOrigins
		}
	}
	s.handler = s.routes()
	return s
}

func (s *Server) routes() http.Handler {
	router := mux.NewRouter().StrictSlash(true)
	router.Use(s.withRequestID, s.withLogging)

	router.HandleFunc("/healthz", s.handleHealth).Methods(http.MethodGet)

	v1 := router.PathPrefix("/v1").Subrouter()
	v1.HandleFunc("/recognize", s.handleRecognize).Methods(http.MethodPost)
	v1.HandleFunc("/overlay", s.handleOverlay).Methods(http.MethodPost)
	v1.HandleFunc("/midi", s.handleMIDI).Methods(http.MethodPost)
	v1.HandleFunc("/title", s.handleTitle).Methods(http.MethodPost)

	c := cors.New(cors.Options{
		AllowedOrigins: s.origins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost},
		AllowedHeaders: []string{"Content-Type", RequestIDHeader},
		ExposedHeaders: []string{RequestIDHeader},
	})
	return c.Handler(router)
}

// Handler returns the routed handler with CORS applied.
func (s *Server) Handler() http.Handler { return s.handler }

// Addr returns the listen address.
func (s *Server) Addr() string { return s.addr }

// ListenAndServe serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.addr,
		Handler:           s.handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "addr", s.addr)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		s.logger.Info("shutting down")
		return srv.Shutdown(shutdownCtx)
	}
}
