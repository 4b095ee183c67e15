package handler

import (
	"brandscope-be/internal/pkg/logger"
	"brandscope-be/internal/session"
	internalWS "brandscope-be/internal/websocket"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
)

// NotificationHandler exposes the toast websocket the dashboard keeps
// open while the user is signed in.
type NotificationHandler struct {
	sessions *session.Manager
	hub      *internalWS.Hub
	logger   logger.ILogger
}

func NewNotificationHandler(sessions *session.Manager, hub *internalWS.Hub, log logger.ILogger) *NotificationHandler {
	return &NotificationHandler{
		sessions: sessions,
		hub:      hub,
		logger:   log,
	}
}

func (h *NotificationHandler) RegisterRoutes(r fiber.Router) {
	r.Get("/notifications/ws", h.ServeWs)
}

// ServeWs upgrades the connection after checking the handshake carries
// the current session's token (query param for browsers, Authorization
// header for tooling).
func (h *NotificationHandler) ServeWs(c *fiber.Ctx) error {
	tokenStr := c.Query("token")
	if tokenStr == "" {
		authHeader := c.Get("Authorization")
		if len(authHeader) > 7 && authHeader[:7] == "Bearer " {
			tokenStr = authHeader[7:]
		}
	}

	current := h.sessions.Current()
	if tokenStr == "" || !current.HasToken() || tokenStr != current.Token {
		h.logger.Warn("NotificationHandler", "Rejected WS handshake", map[string]interface{}{
			"has_session": current.HasToken(),
		})
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid or missing token"})
	}

	if websocket.IsWebSocketUpgrade(c) {
		return websocket.New(func(conn *websocket.Conn) {
			h.logger.Info("NotificationHandler", "Starting WebSocket session", nil)
			client := &internalWS.Client{
				Hub:  h.hub,
				Conn: conn,
				Send: make(chan []byte, 32),
			}
			client.Serve()
			h.logger.Info("NotificationHandler", "WebSocket session ended", nil)
		})(c)
	}
	return fiber.ErrUpgradeRequired
}
