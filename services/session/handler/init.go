package handler

import (
	"github.com/piresc/commutemap/internal/pkg/models"
	"github.com/piresc/commutemap/internal/pkg/websocket"
	"github.com/piresc/commutemap/services/session"
	httpHandler "github.com/piresc/commutemap/services/session/handler/http"
)

// Handler combines all handlers of the commute map service
type Handler struct {
	sessionHTTP *httpHandler.SessionHandler
	stream      *websocket.Manager
	cfg         *models.Config
}

// NewHandler creates a new combined handler. stream may be nil, in which
// case the live endpoint is not registered.
func NewHandler(sessionUC session.SessionUC, stream *websocket.Manager, cfg *models.Config) *Handler {
	return &Handler{
		sessionHTTP: httpHandler.NewSessionHandler(sessionUC),
		stream:      stream,
		cfg:         cfg,
	}
}
