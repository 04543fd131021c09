package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MeKo-Tech/langid/detect"
	"github.com/MeKo-Tech/langid/lang"
)

// stubDetector is a canned detector for handler tests.
type stubDetector struct {
	language  lang.Language
	values    []detect.ConfidenceValue
	languages []lang.Language
}

func (s *stubDetector) Detect(string) lang.Language                      { return s.language }
func (s *stubDetector) ConfidenceValues(string) []detect.ConfidenceValue { return s.values }
func (s *stubDetector) Languages() []lang.Language                       { return s.languages }

func newTestServer() *Server {
	return &Server{
		detector: &stubDetector{
			language: lang.English,
			values: []detect.ConfidenceValue{
				{Language: lang.English, Value: 1.0},
				{Language: lang.German, Value: 0.4},
			},
			languages: []lang.Language{lang.English, lang.German},
		},
		corsOrigin: "*",
		timeoutSec: 5,
		maxTextKB:  64,
	}
}

func TestHealthHandler(t *testing.T) {
	s := newTestServer()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()

	s.healthHandler(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp HealthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "healthy", resp.Status)
	assert.NotEmpty(t, resp.Time)
}

func TestHealthHandler_MethodNotAllowed(t *testing.T) {
	s := newTestServer()
	req := httptest.NewRequest(http.MethodPost, "/health", nil)
	rec := httptest.NewRecorder()

	s.healthHandler(rec, req)
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestLanguagesHandler(t *testing.T) {
	s := newTestServer()
	req := httptest.NewRequest(http.MethodGet, "/languages", nil)
	rec := httptest.NewRecorder()

	s.languagesHandler(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp LanguagesResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, 2, resp.Count)
	assert.Equal(t, "English", resp.Languages[0].Name)
	assert.Equal(t, "en", resp.Languages[0].Code)
	assert.Equal(t, []string{"Latin"}, resp.Languages[0].Scripts)
}

func TestDetectHandler(t *testing.T) {
	s := newTestServer()
	body := strings.NewReader(`{"text":"languages are awesome"}`)
	req := httptest.NewRequest(http.MethodPost, "/detect", body)
	rec := httptest.NewRecorder()

	s.detectHandler(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp DetectResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "English", resp.Language)
	assert.Equal(t, "en", resp.Code)
	require.Len(t, resp.Confidences, 2)
	assert.Equal(t, 1.0, resp.Confidences[0].Value)
	assert.Equal(t, "German", resp.Confidences[1].Language)
}

func TestDetectHandler_InvalidBody(t *testing.T) {
	s := newTestServer()
	req := httptest.NewRequest(http.MethodPost, "/detect", strings.NewReader("{"))
	rec := httptest.NewRecorder()

	s.detectHandler(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDetectHandler_MethodNotAllowed(t *testing.T) {
	s := newTestServer()
	req := httptest.NewRequest(http.MethodGet, "/detect", nil)
	rec := httptest.NewRecorder()

	s.detectHandler(rec, req)
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestDetectHandler_BodyTooLarge(t *testing.T) {
	s := newTestServer()
	s.maxTextKB = 1
	big := strings.Repeat("a", 2*1024)
	req := httptest.NewRequest(http.MethodPost, "/detect",
		strings.NewReader(`{"text":"`+big+`"}`))
	rec := httptest.NewRecorder()

	s.detectHandler(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCORSMiddleware(t *testing.T) {
	s := newTestServer()
	handler := s.corsMiddleware(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	handler(rec, req)
	assert.Equal(t, http.StatusTeapot, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))

	// Preflight requests stop at the middleware.
	req = httptest.NewRequest(http.MethodOptions, "/health", nil)
	rec = httptest.NewRecorder()
	handler(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestNewServer_InvalidDetectorConfig(t *testing.T) {
	_, err := NewServer(Config{
		DetectorConfig: detect.Config{MinimumRelativeDistance: 2.0},
	})
	assert.Error(t, err)
}

func TestSetupRoutes(t *testing.T) {
	s := newTestServer()
	mux := http.NewServeMux()
	s.SetupRoutes(mux)

	srv := httptest.NewServer(mux)
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/health")
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	metrics, err := http.Get(srv.URL + "/metrics")
	require.NoError(t, err)
	defer func() { _ = metrics.Body.Close() }()
	assert.Equal(t, http.StatusOK, metrics.StatusCode)
}
