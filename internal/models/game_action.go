package models

import "github.com/google/uuid"

// ActionType enumerates the three moves a player can submit.
type ActionType string

const (
	ActionPlay ActionType = "PLAY"
	ActionDraw ActionType = "DRAW"
	ActionPass ActionType = "PASS"
)

// GameAction captures a player's in-game move as received from the
// transport layer. PlayerID is filled from the authenticated session,
// never trusted from the client.
type GameAction struct {
	Type       ActionType `json:"type"`
	PlayerID   uuid.UUID  `json:"playerId"`
	Card       *Card      `json:"card,omitempty"`
	ChosenSuit Suit       `json:"chosenSuit,omitempty"`
}
