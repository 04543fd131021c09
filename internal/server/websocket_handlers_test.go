package server

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dialTestWebSocket(t *testing.T, s *Server) *websocket.Conn {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.detectWebSocketHandler)
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	return conn
}

func TestDetectWebSocket_RoundTrip(t *testing.T) {
	conn := dialTestWebSocket(t, newTestServer())

	require.NoError(t, conn.WriteJSON(WebSocketDetectRequest{
		Text:      "languages are awesome",
		RequestID: "req-1",
	}))

	var resp WebSocketDetectResponse
	require.NoError(t, conn.ReadJSON(&resp))
	assert.Equal(t, "completed", resp.Status)
	assert.Equal(t, "English", resp.Language)
	assert.Equal(t, "req-1", resp.RequestID)
	require.Len(t, resp.Confidences, 2)
}

func TestDetectWebSocket_MultipleRequests(t *testing.T) {
	conn := dialTestWebSocket(t, newTestServer())

	for _, id := range []string{"a", "b", "c"} {
		require.NoError(t, conn.WriteJSON(WebSocketDetectRequest{Text: "text", RequestID: id}))
		var resp WebSocketDetectResponse
		require.NoError(t, conn.ReadJSON(&resp))
		assert.Equal(t, id, resp.RequestID)
	}
}

func TestDetectWebSocket_InvalidPayload(t *testing.T) {
	conn := dialTestWebSocket(t, newTestServer())

	require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte("{not json")))

	var resp WebSocketDetectResponse
	require.NoError(t, conn.ReadJSON(&resp))
	assert.Equal(t, "error", resp.Status)
	assert.Contains(t, resp.Error, "invalid request")
}

func TestDetectWebSocket_TextTooLarge(t *testing.T) {
	s := newTestServer()
	s.maxTextKB = 1
	conn := dialTestWebSocket(t, s)

	require.NoError(t, conn.WriteJSON(WebSocketDetectRequest{
		Text:      strings.Repeat("a", 2*1024),
		RequestID: "big",
	}))

	var resp WebSocketDetectResponse
	require.NoError(t, conn.ReadJSON(&resp))
	assert.Equal(t, "error", resp.Status)
	assert.Equal(t, "big", resp.RequestID)
}
