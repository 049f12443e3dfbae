package handlers

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/coder/websocket"
	"github.com/sirupsen/logrus"

	"github.com/crazytens/crazytens/internal/game"
)

// extractCookieToken extracts a named cookie value from "Cookie" header, or returns empty if not found.
func extractCookieToken(cookieHeader, cookieName string) string {
	parts := strings.Split(cookieHeader, cookieName+"=")
	if len(parts) < 2 {
		return ""
	}
	token := parts[1]
	if idx := strings.Index(token, ";"); idx != -1 {
		token = token[:idx]
	}
	return token
}

// sendWsMessage marshals a message and sends it to the WebSocket client.
// Includes logging for errors and uses a write timeout.
func sendWsMessage(ctx context.Context, c *websocket.Conn, message interface{}, logger *logrus.Logger) {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	if c == nil {
		logger.Warn("attempted to send WebSocket message on nil connection")
		return
	}
	msgBytes, err := json.Marshal(message)
	if err != nil {
		logger.Warnf("error marshaling WebSocket message: %v", err)
		return
	}

	// Bound the caller's context so a stalled peer cannot block the
	// read loop; a canceled caller aborts the write immediately.
	writeCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := c.Write(writeCtx, websocket.MessageText, msgBytes); err != nil {
		status := websocket.CloseStatus(err)
		if status != websocket.StatusNormalClosure && status != websocket.StatusGoingAway {
			logger.Warnf("error writing WebSocket message: %v (status: %d)", err, status)
		}
		// Let the read loop handle connection closure detection.
	}
}

// sendWsError sends a structured error frame with a machine-readable code.
func sendWsError(ctx context.Context, c *websocket.Conn, code game.ErrorKind, message string) {
	sendWsMessage(ctx, c, wsEnvelope{
		Type:    "error",
		Code:    code,
		Message: message,
	}, nil)
}
