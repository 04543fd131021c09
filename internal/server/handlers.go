package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/MeKo-Tech/langid/internal/version"
	"github.com/MeKo-Tech/langid/lang"
)

// healthHandler returns server health status.
func (s *Server) healthHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	response := HealthResponse{
		Status:  "healthy",
		Version: version.Version,
		Time:    time.Now().UTC().Format(time.RFC3339),
	}

	writeJSON(w, response)
}

// languagesHandler returns the languages this server detects.
func (s *Server) languagesHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	configured := s.detector.Languages()
	infos := make([]LanguageInfo, 0, len(configured))
	for _, l := range configured {
		scripts := l.Scripts()
		names := make([]string, len(scripts))
		for i, sc := range scripts {
			names[i] = sc.String()
		}
		infos = append(infos, LanguageInfo{
			Name:    l.String(),
			Code:    l.Code(),
			Scripts: names,
		})
	}

	writeJSON(w, LanguagesResponse{Languages: infos, Count: len(infos)})
}

// detectHandler identifies the language of the posted text.
func (s *Server) detectHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, int64(s.maxTextKB)*1024)
	var req DetectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		detectRequestsTotal.WithLabelValues("error").Inc()
		http.Error(w, fmt.Sprintf("invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	start := time.Now()
	response := s.runDetection(req.Text)
	detectDuration.Observe(time.Since(start).Seconds())
	detectTextLength.Observe(float64(len(req.Text)))
	detectRequestsTotal.WithLabelValues(statusLabel(response)).Inc()

	writeJSON(w, response)
}

// runDetection executes one detection and builds the wire response.
func (s *Server) runDetection(text string) DetectResponse {
	detected := s.detector.Detect(text)
	values := s.detector.ConfidenceValues(text)

	confidences := make([]Confidence, 0, len(values))
	for _, v := range values {
		confidences = append(confidences, Confidence{
			Language: v.Language.String(),
			Code:     v.Language.Code(),
			Value:    v.Value,
		})
	}

	return DetectResponse{
		Language:    detected.String(),
		Code:        detected.Code(),
		Confidences: confidences,
	}
}

func statusLabel(resp DetectResponse) string {
	if resp.Language == lang.Unknown.String() {
		return "unknown"
	}
	return "detected"
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding response: %v\n", err)
	}
}
