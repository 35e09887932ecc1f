package websocket

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// The dashboard is served from a different origin in development
	CheckOrigin: func(r *http.Request) bool { return true },
}

// Handler upgrades HTTP requests to websocket sessions on the hub
type Handler struct {
	hub    *Hub
	logger *zap.Logger
}

// NewHandler creates a new websocket handler
func NewHandler(hub *Hub, logger *zap.Logger) *Handler {
	return &Handler{hub: hub, logger: logger}
}

// ServeWS upgrades the connection and registers the client with the hub
// GET /api/v1/ws
func (h *Handler) ServeWS(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Warn("websocket upgrade failed", zap.Error(err))
		return
	}

	clientID := c.Query("client_id")
	if clientID == "" {
		clientID = uuid.New().String()
	}

	client := NewClient(clientID, conn, h.hub, h.logger)
	h.hub.Register <- client

	go client.WritePump()
	go client.ReadPump()
}

// RegisterRoutes registers the websocket route
func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.GET("/api/v1/ws", h.ServeWS)
}
