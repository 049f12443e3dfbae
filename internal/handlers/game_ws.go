// internal/handlers/game_ws.go
package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/coder/websocket"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/crazytens/crazytens/internal/game"
	"github.com/crazytens/crazytens/internal/middleware"
	"github.com/crazytens/crazytens/internal/models"
)

// wsEnvelope is the single frame shape the server writes: a game_state
// broadcast, a my_hand payload, a rejection, or a pong.
type wsEnvelope struct {
	Type    string            `json:"type"`
	State   *game.PublicState `json:"state,omitempty"`
	Hand    []models.Card     `json:"hand,omitempty"`
	Code    game.ErrorKind    `json:"code,omitempty"`
	Message string            `json:"message,omitempty"`
}

// GameWSHandler upgrades the HTTP connection to a websocket for one
// game. It authenticates the guest, seats (or re-seats) them, wires the
// session's broadcast callbacks, and runs the read loop until the
// connection drops.
func GameWSHandler(logger *logrus.Logger, gs *GameServer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		gameIDStr := strings.TrimPrefix(r.URL.Path, "/game/ws/")
		if i := strings.IndexByte(gameIDStr, '/'); i >= 0 {
			gameIDStr = gameIDStr[:i]
		}
		gameID, err := uuid.Parse(gameIDStr)
		if err != nil {
			http.Error(w, "invalid game_id format", http.StatusBadRequest)
			return
		}

		g, ok := gs.GameStore.GetGame(gameID)
		if !ok {
			http.Error(w, "game not found", http.StatusNotFound)
			return
		}

		// Authenticate before the upgrade; a fresh guest gets its
		// cookie on this response, which is too late once hijacked.
		playerID, err := EnsureEphemeralGuest(w, r)
		if err != nil {
			logger.Warnf("guest authentication failed for game %s: %v", gameID, err)
			http.Error(w, "authentication failed", http.StatusForbidden)
			return
		}

		c, err := websocket.Accept(w, r, &websocket.AcceptOptions{
			Subprotocols:   []string{"game"},
			OriginPatterns: []string{"*"}, // Adjust for production security.
		})
		if err != nil {
			logger.Warnf("websocket accept error for game %s: %v", gameID, err)
			return
		}
		defer c.Close(websocket.StatusInternalError, "internal server error")

		if c.Subprotocol() != "game" {
			c.Close(BadSubprotocolError, "client must use the 'game' subprotocol")
			return
		}
		middleware.LogWebSocketConnect(logger, r.RemoteAddr, r.URL.Path, gameID)

		g.Mu.Lock()
		if g.BroadcastStateFn == nil {
			g.BroadcastStateFn = createBroadcastStateFunc(g, logger)
		}
		if g.BroadcastHandFn == nil {
			g.BroadcastHandFn = createBroadcastHandFunc(g, logger)
		}
		g.Mu.Unlock()

		player := &models.Player{ID: playerID, Connected: true, Conn: c}
		if err := g.AddPlayer(player); err != nil {
			logger.Warnf("player %s cannot join game %s: %v", playerID, gameID, err)
			c.Close(websocket.StatusPolicyViolation, "game is full or already running")
			return
		}
		logger.Infof("player %s joined game %s", playerID, gameID)

		ctx, cancel := context.WithCancel(r.Context())
		defer cancel()

		readGameMessages(ctx, c, g, playerID, logger)

		g.HandleDisconnect(playerID)
		middleware.LogWebSocketDisconnect(logger, r.RemoteAddr, r.URL.Path, gameID, nil)
	}
}

// createBroadcastStateFunc returns the session's public broadcast
// callback: marshal once, write to every connected seat with a timeout.
// The session invokes it without holding its lock.
func createBroadcastStateFunc(g *game.CrazyTensGame, logger *logrus.Logger) func(st game.PublicState) {
	return func(st game.PublicState) {
		var conns []*websocket.Conn
		g.Mu.Lock()
		for _, p := range g.Players {
			if p.Connected && p.Conn != nil {
				conns = append(conns, p.Conn)
			}
		}
		g.Mu.Unlock()

		data, err := json.Marshal(wsEnvelope{Type: "game_state", State: &st})
		if err != nil {
			logger.Errorf("failed to marshal game_state for game %s: %v", g.ID, err)
			return
		}
		for _, conn := range conns {
			writeWithTimeout(conn, data, logger)
		}
	}
}

// createBroadcastHandFunc returns the per-player private hand callback.
func createBroadcastHandFunc(g *game.CrazyTensGame, logger *logrus.Logger) func(playerID uuid.UUID, hand game.PrivateHand) {
	return func(playerID uuid.UUID, hand game.PrivateHand) {
		var conn *websocket.Conn
		g.Mu.Lock()
		for _, p := range g.Players {
			if p.ID == playerID && p.Connected && p.Conn != nil {
				conn = p.Conn
				break
			}
		}
		g.Mu.Unlock()
		if conn == nil {
			return
		}

		data, err := json.Marshal(wsEnvelope{Type: "my_hand", Hand: hand.Hand})
		if err != nil {
			logger.Errorf("failed to marshal my_hand for player %s in game %s: %v", playerID, g.ID, err)
			return
		}
		writeWithTimeout(conn, data, logger)
	}
}

// writeWithTimeout writes one frame, bounding the write so a stalled
// client cannot back up broadcasting.
func writeWithTimeout(conn *websocket.Conn, data []byte, logger *logrus.Logger) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := conn.Write(ctx, websocket.MessageText, data); err != nil {
		logger.Warnf("failed to write websocket frame: %v", err)
	}
}

// gameMessage is one inbound client frame: either a GameAction or a
// ping.
type gameMessage struct {
	Type       string       `json:"type"`
	Card       *models.Card `json:"card,omitempty"`
	ChosenSuit models.Suit  `json:"chosenSuit,omitempty"`
}

// readGameMessages reads client frames until the connection closes,
// translating each into a SubmitAction call and forwarding rejections
// back to the sender. All legality decisions live in the engine.
func readGameMessages(ctx context.Context, c *websocket.Conn, g *game.CrazyTensGame, playerID uuid.UUID, logger *logrus.Logger) {
	for {
		msgType, data, err := c.Read(ctx)
		if err != nil {
			status := websocket.CloseStatus(err)
			if status == websocket.StatusNormalClosure || status == websocket.StatusGoingAway {
				logger.Infof("websocket closed normally for player %s in game %s", playerID, g.ID)
			} else if ctx.Err() != nil {
				logger.Infof("websocket context canceled for player %s in game %s", playerID, g.ID)
			} else {
				logger.Warnf("websocket read error for player %s in game %s: %v", playerID, g.ID, err)
			}
			return
		}
		if msgType != websocket.MessageText {
			continue
		}

		var msg gameMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			logger.Warnf("invalid JSON from player %s in game %s: %v", playerID, g.ID, err)
			sendWsError(ctx, c, game.ErrInvalidPlay, "invalid JSON frame")
			continue
		}

		switch msg.Type {
		case string(models.ActionPlay), string(models.ActionDraw), string(models.ActionPass):
			action := models.GameAction{
				Type:       models.ActionType(msg.Type),
				PlayerID:   playerID,
				Card:       msg.Card,
				ChosenSuit: msg.ChosenSuit,
			}
			if err := g.SubmitAction(playerID, action); err != nil {
				logger.Debugf("action %s rejected for player %s in game %s: %v", msg.Type, playerID, g.ID, err)
				sendWsError(ctx, c, game.KindOf(err), err.Error())
			}
		case "ping":
			sendWsMessage(ctx, c, wsEnvelope{Type: "pong"}, logger)
		default:
			sendWsError(ctx, c, game.ErrInvalidPlay, "unknown action type: "+msg.Type)
		}

		select {
		case <-ctx.Done():
			return
		default:
		}
	}
}
