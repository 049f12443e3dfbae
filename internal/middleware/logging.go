// internal/middleware/logging.go

// Package middleware provides logrus request logging for the game
// service's HTTP routes and websocket seats.
package middleware

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// LogMiddleware logs every request with its method, path, duration and
// remote address.
func LogMiddleware(logger *logrus.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			path := r.URL.Path
			method := r.Method

			next.ServeHTTP(w, r)

			logger.WithFields(logrus.Fields{
				"method":   method,
				"path":     path,
				"duration": time.Since(start),
				"remote":   r.RemoteAddr,
			}).Info("http request")
		})
	}
}

// LogWebSocketConnect records a websocket seat attaching to a game.
func LogWebSocketConnect(logger *logrus.Logger, remoteAddr, path string, gameID uuid.UUID) {
	logger.WithFields(logrus.Fields{
		"remote": remoteAddr,
		"path":   path,
		"gameId": gameID,
	}).Info("websocket connected")
}

// LogWebSocketDisconnect records a websocket seat detaching from a
// game, with the closing error when there was one.
func LogWebSocketDisconnect(logger *logrus.Logger, remoteAddr, path string, gameID uuid.UUID, err error) {
	fields := logrus.Fields{
		"remote": remoteAddr,
		"path":   path,
		"gameId": gameID,
	}
	if err != nil {
		fields["error"] = err
	}
	logger.WithFields(fields).Info("websocket disconnected")
}
