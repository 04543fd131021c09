// Package server exposes language detection over HTTP and WebSocket.
package server

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/MeKo-Tech/langid/detect"
	"github.com/MeKo-Tech/langid/lang"
)

// detectorInterface defines the methods the server needs from a detector.
type detectorInterface interface {
	Detect(text string) lang.Language
	ConfidenceValues(text string) []detect.ConfidenceValue
	Languages() []lang.Language
}

// Server holds the HTTP server state and dependencies.
type Server struct {
	detector   detectorInterface
	corsOrigin string
	timeoutSec int
	maxTextKB  int
}

// Config holds server configuration.
type Config struct {
	Host           string
	Port           int
	CORSOrigin     string
	TimeoutSec     int
	MaxTextKB      int
	DetectorConfig detect.Config
}

// Response types for API endpoints.
type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version,omitempty"`
	Time    string `json:"time"`
}

// LanguageInfo describes one catalog language.
type LanguageInfo struct {
	Name    string   `json:"name"`
	Code    string   `json:"code"`
	Scripts []string `json:"scripts"`
}

// LanguagesResponse lists the languages the server detects.
type LanguagesResponse struct {
	Languages []LanguageInfo `json:"languages"`
	Count     int            `json:"count"`
}

// DetectRequest is the body of a detection request.
type DetectRequest struct {
	Text string `json:"text"`
}

// Confidence is one entry of the ranked confidence list.
type Confidence struct {
	Language string  `json:"language"`
	Code     string  `json:"code"`
	Value    float64 `json:"value"`
}

// DetectResponse is the result of a detection request.
type DetectResponse struct {
	Language    string       `json:"language"`
	Code        string       `json:"code,omitempty"`
	Confidences []Confidence `json:"confidences"`
	Error       string       `json:"error,omitempty"`
}

// NewServer creates a new detection server instance.
func NewServer(config Config) (*Server, error) {
	detector, err := detect.New(config.DetectorConfig)
	if err != nil {
		return nil, err
	}

	return &Server{
		detector:   detector,
		corsOrigin: config.CORSOrigin,
		timeoutSec: config.TimeoutSec,
		maxTextKB:  config.MaxTextKB,
	}, nil
}

// SetupRoutes configures the HTTP routes.
func (s *Server) SetupRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/health", s.corsMiddleware(s.healthHandler))
	mux.HandleFunc("/languages", s.corsMiddleware(s.languagesHandler))
	mux.HandleFunc("/detect", s.corsMiddleware(s.detectHandler))
	mux.HandleFunc("/ws", s.detectWebSocketHandler)
	mux.Handle("/metrics", promhttp.Handler())
}
