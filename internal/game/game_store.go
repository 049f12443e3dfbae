package game

import (
	"sync"

	"github.com/google/uuid"
)

// GameStore is the session registry, keyed by game id. It is injected
// into the transport layer rather than living as a package singleton.
type GameStore struct {
	mu    sync.Mutex
	games map[uuid.UUID]*CrazyTensGame
}

func NewGameStore() *GameStore {
	return &GameStore{
		games: make(map[uuid.UUID]*CrazyTensGame),
	}
}

func (s *GameStore) AddGame(game *CrazyTensGame) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.games[game.ID] = game
}

func (s *GameStore) GetGame(id uuid.UUID) (*CrazyTensGame, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	g, exists := s.games[id]
	return g, exists
}

func (s *GameStore) DeleteGame(id uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.games, id)
}

// ListJoinable returns the ids of sessions still waiting on a seat.
func (s *GameStore) ListJoinable() []uuid.UUID {
	s.mu.Lock()
	defer s.mu.Unlock()
	var ids []uuid.UUID
	for id, g := range s.games {
		g.Mu.Lock()
		waiting := g.Status == StatusWaiting
		g.Mu.Unlock()
		if waiting {
			ids = append(ids, id)
		}
	}
	return ids
}
