package websocket

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"github.com/piresc/commutemap/internal/pkg/logger"
	"github.com/piresc/commutemap/internal/pkg/models"
)

const (
	writeWait  = 10 * time.Second
	sendBuffer = 16
)

type client struct {
	id   string
	conn *websocket.Conn
	send chan []byte
}

// Manager fans events out to every connected viewer. The latest frame of
// each event is replayed to viewers that connect later.
type Manager struct {
	sync.Mutex
	clients  map[string]*client
	latest   map[string][]byte
	upgrader websocket.Upgrader
	now      func() time.Time
}

// NewManager creates a new WebSocket manager
func NewManager() *Manager {
	return &Manager{
		clients: make(map[string]*client),
		latest:  make(map[string][]byte),
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
		now: time.Now,
	}
}

// HandleConnection upgrades the request and serves the viewer until it
// disconnects. Inbound frames are read and discarded.
func (m *Manager) HandleConnection(c echo.Context) error {
	conn, err := m.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		return err
	}

	cl := &client{
		id:   uuid.NewString(),
		conn: conn,
		send: make(chan []byte, sendBuffer),
	}
	m.addClient(cl)
	logger.Debug("Viewer connected", logger.String("client_id", cl.id))

	go m.writeLoop(cl)
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}

	m.removeClient(cl.id)
	logger.Debug("Viewer disconnected", logger.String("client_id", cl.id))
	return nil
}

// Broadcast sends an event to every viewer. Viewers whose buffer is full
// are dropped.
func (m *Manager) Broadcast(event string, data interface{}) error {
	raw, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("error marshaling %s payload: %w", event, err)
	}
	frame, err := json.Marshal(models.StreamMessage{
		Event:  event,
		Data:   raw,
		SentAt: m.now().UTC(),
	})
	if err != nil {
		return fmt.Errorf("error marshaling %s frame: %w", event, err)
	}

	m.Lock()
	defer m.Unlock()
	m.latest[event] = frame
	for id, cl := range m.clients {
		select {
		case cl.send <- frame:
		default:
			logger.Warn("Dropping slow viewer", logger.String("client_id", id))
			delete(m.clients, id)
			close(cl.send)
		}
	}
	return nil
}

// Count returns the number of connected viewers
func (m *Manager) Count() int {
	m.Lock()
	defer m.Unlock()
	return len(m.clients)
}

// Close disconnects every viewer
func (m *Manager) Close() error {
	m.Lock()
	defer m.Unlock()
	for id, cl := range m.clients {
		delete(m.clients, id)
		close(cl.send)
	}
	return nil
}

func (m *Manager) addClient(cl *client) {
	m.Lock()
	defer m.Unlock()

	events := make([]string, 0, len(m.latest))
	for event := range m.latest {
		events = append(events, event)
	}
	sort.Strings(events)
	for _, event := range events {
		select {
		case cl.send <- m.latest[event]:
		default:
		}
	}
	m.clients[cl.id] = cl
}

func (m *Manager) removeClient(id string) {
	m.Lock()
	defer m.Unlock()
	if cl, ok := m.clients[id]; ok {
		delete(m.clients, id)
		close(cl.send)
	}
}

func (m *Manager) writeLoop(cl *client) {
	defer cl.conn.Close()
	for frame := range cl.send {
		_ = cl.conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := cl.conn.WriteMessage(websocket.TextMessage, frame); err != nil {
			logger.Warn("Error sending frame to viewer",
				logger.String("client_id", cl.id),
				logger.Err(err))
			return
		}
	}
	_ = cl.conn.WriteControl(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
		time.Now().Add(writeWait))
}
