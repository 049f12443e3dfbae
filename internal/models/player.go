package models

import (
	"github.com/coder/websocket"
	"github.com/google/uuid"
)

// Player is one of the two seats in a game session. The hand is mutated
// only by the owning game session, under its lock.
type Player struct {
	ID        uuid.UUID       `json:"id"`
	Hand      []Card          `json:"hand"`
	Connected bool            `json:"connected"`
	Conn      *websocket.Conn `json:"-"`
}

// HasCard reports whether the player's hand contains the exact card.
func (p *Player) HasCard(c Card) bool {
	for _, h := range p.Hand {
		if h == c {
			return true
		}
	}
	return false
}
