// internal/game/sync_state.go
package game

import (
	"github.com/google/uuid"

	"github.com/crazytens/crazytens/internal/models"
)

// PublicState is the broadcast snapshot of a session: everything every
// observer may see, and nothing more. Hands appear only as counts; the
// score text is pre-rendered in the game's numeral base so clients never
// do base arithmetic.
type PublicState struct {
	GameID             uuid.UUID         `json:"gameId"`
	BaseID             BaseID            `json:"baseId"`
	Status             Status            `json:"status"`
	Turn               uuid.UUID         `json:"turn"`
	TopCard            *models.Card      `json:"topCard,omitempty"`
	ForcedSuit         models.Suit       `json:"forcedSuit,omitempty"`
	HandsCount         map[string]int    `json:"handsCount"`
	ScoresDec          map[string]int    `json:"scoresDec"`
	ScoresText         map[string]string `json:"scoresText"`
	TargetScoreDec     int               `json:"targetScoreDec"`
	TargetScoreText    string            `json:"targetScoreText"`
	FaceRanks          []string          `json:"faceRanks"`
	DeckNumericSymbols []string          `json:"deckNumericSymbols"`
}

// PrivateHand is the per-player payload: the owner's cards only.
type PrivateHand struct {
	Hand []models.Card `json:"hand"`
}

// PublicSnapshot returns the current public state as a detached value.
func (g *CrazyTensGame) PublicSnapshot() PublicState {
	g.Mu.Lock()
	defer g.Mu.Unlock()
	return g.publicStateLocked()
}

// HandOf returns one seat's private hand as a detached copy.
func (g *CrazyTensGame) HandOf(playerID uuid.UUID) PrivateHand {
	g.Mu.Lock()
	defer g.Mu.Unlock()
	player := g.playerByID(playerID)
	if player == nil {
		return PrivateHand{}
	}
	return PrivateHand{Hand: append([]models.Card{}, player.Hand...)}
}

// publicStateLocked builds the snapshot. Assumes lock is held.
func (g *CrazyTensGame) publicStateLocked() PublicState {
	st := PublicState{
		GameID:             g.ID,
		BaseID:             g.Config.ID,
		Status:             g.Status,
		HandsCount:         make(map[string]int, len(g.Players)),
		ScoresDec:          g.Scores.ScoresDec(),
		ScoresText:         g.Scores.ScoresText(),
		TargetScoreDec:     g.Scores.TargetDec(),
		TargetScoreText:    g.Scores.TargetText(),
		FaceRanks:          append([]string{}, g.Config.FaceRanks...),
		DeckNumericSymbols: append([]string{}, g.Config.NumeralRanks...),
	}
	if g.Status == StatusOngoing && len(g.Players) > g.CurrentPlayerIndex {
		st.Turn = g.Players[g.CurrentPlayerIndex].ID
	}
	if len(g.DiscardPile) > 0 {
		top := g.topCard()
		st.TopCard = &top
	}
	st.ForcedSuit = g.ForcedSuit
	for _, p := range g.Players {
		st.HandsCount[p.ID.String()] = len(p.Hand)
	}
	return st
}
