package server

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/gorilla/websocket"
)

// WebSocket upgrader with reasonable defaults.
var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		// Allow connections from any origin in development
		// In production, you should check against allowed origins
		return true
	},
}

// WebSocketDetectRequest is one detection request on a WebSocket stream.
type WebSocketDetectRequest struct {
	Text      string `json:"text"`
	RequestID string `json:"request_id,omitempty"`
}

// WebSocketDetectResponse answers one stream request.
type WebSocketDetectResponse struct {
	Status      string       `json:"status"` // "completed" or "error"
	Language    string       `json:"language,omitempty"`
	Code        string       `json:"code,omitempty"`
	Confidences []Confidence `json:"confidences,omitempty"`
	Error       string       `json:"error,omitempty"`
	RequestID   string       `json:"request_id,omitempty"`
}

// detectWebSocketHandler serves a stream of detection requests over one
// connection, answering each text message with a ranked confidence list.
func (s *Server) detectWebSocketHandler(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		slog.Warn("websocket upgrade failed", "error", err)
		return
	}
	defer func() {
		_ = conn.Close()
		websocketConnections.Dec()
	}()
	websocketConnections.Inc()

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				slog.Debug("websocket closed unexpectedly", "error", err)
			}
			return
		}
		websocketMessagesTotal.WithLabelValues("received").Inc()

		var req WebSocketDetectRequest
		var resp WebSocketDetectResponse
		if err := json.Unmarshal(data, &req); err != nil {
			resp = WebSocketDetectResponse{Status: "error", Error: "invalid request: " + err.Error()}
		} else if len(req.Text) > s.maxTextKB*1024 {
			resp = WebSocketDetectResponse{Status: "error", Error: "text too large", RequestID: req.RequestID}
		} else {
			result := s.runDetection(req.Text)
			resp = WebSocketDetectResponse{
				Status:      "completed",
				Language:    result.Language,
				Code:        result.Code,
				Confidences: result.Confidences,
				RequestID:   req.RequestID,
			}
		}

		if err := conn.WriteJSON(resp); err != nil {
			slog.Debug("websocket write failed", "error", err)
			return
		}
		websocketMessagesTotal.WithLabelValues("sent").Inc()
	}
}
