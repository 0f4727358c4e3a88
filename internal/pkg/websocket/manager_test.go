package websocket

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"github.com/piresc/commutemap/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type payload struct {
	Generation int `json:"generation"`
}

func startServer(t *testing.T, m *Manager) string {
	t.Helper()
	e := echo.New()
	e.GET("/ws", m.HandleConnection)
	srv := httptest.NewServer(e)
	t.Cleanup(srv.Close)
	return "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws"
}

func dial(t *testing.T, url string) *websocket.Conn {
	t.Helper()
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

func readFrame(t *testing.T, conn *websocket.Conn) (models.StreamMessage, payload) {
	t.Helper()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	var msg models.StreamMessage
	require.NoError(t, conn.ReadJSON(&msg))
	var p payload
	require.NoError(t, json.Unmarshal(msg.Data, &p))
	return msg, p
}

func TestManager_Broadcast(t *testing.T) {
	m := NewManager()
	fixed := time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC)
	m.now = func() time.Time { return fixed }
	url := startServer(t, m)

	first := dial(t, url)
	second := dial(t, url)
	require.Eventually(t, func() bool { return m.Count() == 2 }, 2*time.Second, 10*time.Millisecond)

	require.NoError(t, m.Broadcast("comparison", payload{Generation: 3}))

	for _, conn := range []*websocket.Conn{first, second} {
		msg, p := readFrame(t, conn)
		assert.Equal(t, "comparison", msg.Event)
		assert.Equal(t, fixed, msg.SentAt)
		assert.Equal(t, 3, p.Generation)
	}
}

func TestManager_ReplaysLatestOnConnect(t *testing.T) {
	m := NewManager()
	url := startServer(t, m)

	require.NoError(t, m.Broadcast("comparison", payload{Generation: 1}))
	require.NoError(t, m.Broadcast("comparison", payload{Generation: 2}))

	conn := dial(t, url)
	msg, p := readFrame(t, conn)
	assert.Equal(t, "comparison", msg.Event)
	assert.Equal(t, 2, p.Generation)
}

func TestManager_DisconnectRemovesViewer(t *testing.T) {
	m := NewManager()
	url := startServer(t, m)

	conn := dial(t, url)
	require.Eventually(t, func() bool { return m.Count() == 1 }, 2*time.Second, 10*time.Millisecond)

	conn.Close()
	assert.Eventually(t, func() bool { return m.Count() == 0 }, 2*time.Second, 10*time.Millisecond)
}

func TestManager_Close(t *testing.T) {
	m := NewManager()
	url := startServer(t, m)

	conn := dial(t, url)
	require.Eventually(t, func() bool { return m.Count() == 1 }, 2*time.Second, 10*time.Millisecond)

	require.NoError(t, m.Close())
	assert.Equal(t, 0, m.Count())

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, _, err := conn.ReadMessage()
	assert.True(t, websocket.IsCloseError(err, websocket.CloseNormalClosure))
}

func TestManager_BroadcastMarshalError(t *testing.T) {
	m := NewManager()
	err := m.Broadcast("comparison", make(chan int))
	assert.Error(t, err)
	assert.Equal(t, 0, m.Count())
}
