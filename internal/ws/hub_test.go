package ws

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func startHub(t *testing.T) (*Hub, *httptest.Server) {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	hub := NewHub(ctx)
	go hub.Run()

	upgrader := websocket.Upgrader{CheckOrigin: func(*http.Request) bool { return true }}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		client := NewClient(conn, hub, r.URL.Query().Get("user"))
		hub.Register(client)
		client.Run(ctx)
	}))
	t.Cleanup(srv.Close)
	return hub, srv
}

func dial(t *testing.T, srv *httptest.Server, user string) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/?user=" + user
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

func TestHub_BroadcastToUser(t *testing.T) {
	hub, srv := startHub(t)
	conn := dial(t, srv, "v101")

	require.Eventually(t, func() bool { return hub.IsOnline("v101") }, time.Second, 10*time.Millisecond)

	require.NoError(t, hub.BroadcastToUser("v101", "assignment", map[string]any{"disaster_id": 1}))

	_ = conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, raw, err := conn.ReadMessage()
	require.NoError(t, err)

	var msg struct {
		Type string         `json:"type"`
		Data map[string]any `json:"data"`
	}
	require.NoError(t, json.Unmarshal(raw, &msg))
	assert.Equal(t, "assignment", msg.Type)
	assert.Equal(t, float64(1), msg.Data["disaster_id"])
}

func TestHub_OfflineUserIsSkipped(t *testing.T) {
	hub, _ := startHub(t)

	assert.False(t, hub.IsOnline("v102"))
	assert.NoError(t, hub.BroadcastToUser("v102", "assignment", nil))
}

func TestHub_StoppedHubRejectsBroadcast(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	hub := NewHub(ctx)
	cancel()

	// заполняем буфер, чтобы следующая отправка упёрлась в отменённый контекст
	for i := 0; i < cap(hub.broadcast); i++ {
		hub.broadcast <- message{}
	}
	assert.ErrorIs(t, hub.BroadcastToUser("v101", "assignment", nil), context.Canceled)
}

func TestHub_UnregisterOnDisconnect(t *testing.T) {
	hub, srv := startHub(t)
	conn := dial(t, srv, "admin")

	require.Eventually(t, func() bool { return hub.IsOnline("admin") }, time.Second, 10*time.Millisecond)
	conn.Close()
	assert.Eventually(t, func() bool { return !hub.IsOnline("admin") }, 2*time.Second, 10*time.Millisecond)
}
