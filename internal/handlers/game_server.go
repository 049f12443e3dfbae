// internal/handlers/game_server.go
package handlers

import (
	"encoding/json"
	"net/http"

	log "github.com/sirupsen/logrus"

	"github.com/google/uuid"

	"github.com/crazytens/crazytens/internal/config"
	"github.com/crazytens/crazytens/internal/game"
)

// GameServer owns the session registry and creates new games. It is
// handed to the HTTP and websocket handlers as a dependency; there is
// no package-level registry.
type GameServer struct {
	GameStore *game.GameStore
	Config    config.Config
}

func NewGameServer(cfg config.Config) *GameServer {
	return &GameServer{
		GameStore: game.NewGameStore(),
		Config:    cfg,
	}
}

// createGameRequest is the body of POST /game/create. Everything is
// optional; defaults come from service config and the decimal table.
type createGameRequest struct {
	BaseID      game.BaseID `json:"baseId"`
	TargetScore int         `json:"targetScore"`
	HandSize    int         `json:"handSize"`
}

// HandleCreateGame builds a waiting session and returns its id.
func (s *GameServer) HandleCreateGame(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	req := createGameRequest{BaseID: game.BaseDecimal, TargetScore: s.Config.DefaultTargetScore}
	if r.Body != nil && r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid JSON body", http.StatusBadRequest)
			return
		}
	}
	if req.BaseID == "" {
		req.BaseID = game.BaseDecimal
	}

	baseCfg, err := game.ConfigForBase(req.BaseID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if req.TargetScore <= 0 {
		req.TargetScore = s.Config.DefaultTargetScore
	}
	if req.HandSize > 0 {
		if 2*req.HandSize+1 > baseCfg.DeckSize() {
			http.Error(w, "hand size too large for the deck", http.StatusBadRequest)
			return
		}
		baseCfg.HandSize = req.HandSize
	}

	g := game.NewCrazyTensGame(baseCfg, req.TargetScore)
	g.ForfeitOnDisconnect = s.Config.ForfeitOnDisconnect
	g.OnGameEnd = func(gameID, winnerID uuid.UUID, scoresDec map[string]int) {
		log.Infof("game %s finished, winner %s, scores %v", gameID, winnerID, scoresDec)
		s.GameStore.DeleteGame(gameID)
	}
	s.GameStore.AddGame(g)

	log.Infof("created game %s (base %s, target %d)", g.ID, req.BaseID, req.TargetScore)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"game_id":     g.ID,
		"baseId":      req.BaseID,
		"targetScore": req.TargetScore,
	})
}

// HandleListGames returns the ids of sessions still waiting on a seat.
func (s *GameServer) HandleListGames(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"games": s.GameStore.ListJoinable(),
	})
}
