// internal/game/score.go
package game

import (
	"strconv"

	"github.com/google/uuid"

	"github.com/crazytens/crazytens/internal/dozenal"
	"github.com/crazytens/crazytens/internal/models"
)

// ScoreTracker keeps cumulative per-player penalties across rounds. The
// canonical values are decimal integers; the dozenal form is display
// only and every comparison runs on the decimal side.
type ScoreTracker struct {
	baseID    BaseID
	scoresDec map[uuid.UUID]int
	targetDec int
}

// NewScoreTracker starts each listed player at zero against targetDec.
func NewScoreTracker(baseID BaseID, targetDec int, playerIDs ...uuid.UUID) *ScoreTracker {
	t := &ScoreTracker{
		baseID:    baseID,
		scoresDec: make(map[uuid.UUID]int, len(playerIDs)),
		targetDec: targetDec,
	}
	for _, id := range playerIDs {
		t.scoresDec[id] = 0
	}
	return t
}

// Add accumulates points onto a player's cumulative score.
func (t *ScoreTracker) Add(playerID uuid.UUID, points int) {
	t.scoresDec[playerID] += points
}

// Score returns one player's cumulative decimal score.
func (t *ScoreTracker) Score(playerID uuid.UUID) int {
	return t.scoresDec[playerID]
}

// ScoresDec returns a copy of the cumulative scores keyed by player id
// string, ready for a snapshot.
func (t *ScoreTracker) ScoresDec() map[string]int {
	out := make(map[string]int, len(t.scoresDec))
	for id, s := range t.scoresDec {
		out[id.String()] = s
	}
	return out
}

// ScoresText returns the display form of every score in the tracker's
// numeral base.
func (t *ScoreTracker) ScoresText() map[string]string {
	out := make(map[string]string, len(t.scoresDec))
	for id, s := range t.scoresDec {
		out[id.String()] = t.format(s)
	}
	return out
}

// TargetDec returns the decimal target score.
func (t *ScoreTracker) TargetDec() int {
	return t.targetDec
}

// TargetText returns the target score in the tracker's numeral base.
func (t *ScoreTracker) TargetText() string {
	return t.format(t.targetDec)
}

// ReachedTarget returns the first player whose cumulative score meets
// or exceeds the target, if any.
func (t *ScoreTracker) ReachedTarget() (uuid.UUID, bool) {
	for id, s := range t.scoresDec {
		if s >= t.targetDec {
			return id, true
		}
	}
	return uuid.Nil, false
}

func (t *ScoreTracker) format(n int) string {
	if t.baseID == BaseDozenal {
		return dozenal.DecimalToDozenal(int64(n))
	}
	return strconv.Itoa(n)
}

// HandPenalty sums the point values of the cards left in a hand at
// round settlement.
func HandPenalty(hand []models.Card, cfg BaseConfig) int {
	sum := 0
	for _, c := range hand {
		sum += cfg.CardPoints(c)
	}
	return sum
}
