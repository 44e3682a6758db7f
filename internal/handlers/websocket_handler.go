package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
	"github.com/google/uuid"

	"github.com/imehub/maritime-assistant-web/internal/models"
	"github.com/imehub/maritime-assistant-web/internal/services"
)

type WebSocketHandler struct {
	Sessions *services.SessionService
}

func NewWebSocketHandler(sessions *services.SessionService) *WebSocketHandler {
	return &WebSocketHandler{Sessions: sessions}
}

func (h *WebSocketHandler) WebSocketMiddleware(c *fiber.Ctx) error {
	if websocket.IsWebSocketUpgrade(c) {
		return c.Next()
	}
	return fiber.ErrUpgradeRequired
}

// HandleWebSocket subscribes the dashboard to transcript pushes. The
// connection is one-way: the browser sends over HTTP, appended messages come
// back over this socket.
func (h *WebSocketHandler) HandleWebSocket(c *websocket.Conn) {
	defer func() {
		_ = c.Close()
	}()

	sessionID := c.Params("session")
	sess := h.Sessions.GetSession(sessionID)
	if sess == nil {
		return // no such session
	}

	sub := &models.Subscriber{
		Id:   uuid.New(),
		Conn: c,
	}

	h.Sessions.AddSubscriber(sess, sub)
	defer h.Sessions.RemoveSubscriber(sess, sub)

	// drain until the browser goes away; inbound frames are ignored
	for {
		if _, _, err := c.ReadMessage(); err != nil {
			return
		}
	}
}
