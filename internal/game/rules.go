// internal/game/rules.go
package game

import (
	"fmt"

	"github.com/crazytens/crazytens/internal/models"
)

// BaseID selects the numeral convention a game is played in.
type BaseID string

const (
	BaseDecimal BaseID = "dec"
	BaseDozenal BaseID = "doz"
)

// Default gameplay constants. The original rules reference these values
// without fixing them, so they live here as configuration rather than
// being inferred at play time.
const (
	DefaultHandSize    = 7
	DefaultTargetScore = 100
	MaxDrawsPerTurn    = 3
	FaceRankPoints     = 10
	WildcardRankPoints = 25
)

// BaseConfig is the rank table for one numeral convention: which ranks
// exist, their numeric values, which rank is wild, which skips, and the
// sum target for the arithmetic-pair rule. All point values are data
// here, never derived.
type BaseConfig struct {
	ID            BaseID         `json:"baseId"`
	NumeralRanks  []string       `json:"numeralRanks"`
	NumeralValues map[string]int `json:"-"`
	FaceRanks     []string       `json:"faceRanks"`
	FacePoints    map[string]int `json:"-"`
	WildcardRank  string         `json:"wildcardRank"`
	WildcardPts   int            `json:"-"`
	SkipRank      string         `json:"skipRank"`
	SumTarget     int            `json:"sumTarget"`
	HandSize      int            `json:"handSize"`
}

// DecimalConfig returns the rank table for decimal play: numerals 1..10,
// the 10 wild, the 6 skipping, pairs summing to ten.
func DecimalConfig() BaseConfig {
	return BaseConfig{
		ID:            BaseDecimal,
		NumeralRanks:  []string{"1", "2", "3", "4", "5", "6", "7", "8", "9", "10"},
		NumeralValues: map[string]int{"1": 1, "2": 2, "3": 3, "4": 4, "5": 5, "6": 6, "7": 7, "8": 8, "9": 9, "10": 10},
		FaceRanks:     []string{"J", "Q", "K"},
		FacePoints:    map[string]int{"J": FaceRankPoints, "Q": FaceRankPoints, "K": FaceRankPoints},
		WildcardRank:  "10",
		WildcardPts:   WildcardRankPoints,
		SkipRank:      "6",
		SumTarget:     10,
		HandSize:      DefaultHandSize,
	}
}

// DozenalConfig returns the rank table for dozenal play: numerals
// 1..9, X (ten), E (eleven) and 10 (twelve, written "10" in base
// twelve), the 10 wild, the 6 skipping, pairs summing to twelve.
func DozenalConfig() BaseConfig {
	return BaseConfig{
		ID:            BaseDozenal,
		NumeralRanks:  []string{"1", "2", "3", "4", "5", "6", "7", "8", "9", "X", "E", "10"},
		NumeralValues: map[string]int{"1": 1, "2": 2, "3": 3, "4": 4, "5": 5, "6": 6, "7": 7, "8": 8, "9": 9, "X": 10, "E": 11, "10": 12},
		FaceRanks:     []string{"J", "Q", "K"},
		FacePoints:    map[string]int{"J": FaceRankPoints, "Q": FaceRankPoints, "K": FaceRankPoints},
		WildcardRank:  "10",
		WildcardPts:   WildcardRankPoints,
		SkipRank:      "6",
		SumTarget:     12,
		HandSize:      DefaultHandSize,
	}
}

// ConfigForBase resolves a BaseID to its rank table.
func ConfigForBase(id BaseID) (BaseConfig, error) {
	switch id {
	case BaseDecimal:
		return DecimalConfig(), nil
	case BaseDozenal:
		return DozenalConfig(), nil
	}
	return BaseConfig{}, fmt.Errorf("unknown base id %q", id)
}

// Ranks returns the full rank set, numerals then faces.
func (cfg BaseConfig) Ranks() []string {
	ranks := make([]string, 0, len(cfg.NumeralRanks)+len(cfg.FaceRanks))
	ranks = append(ranks, cfg.NumeralRanks...)
	ranks = append(ranks, cfg.FaceRanks...)
	return ranks
}

// DeckSize is the number of cards in a full deck for this table.
func (cfg BaseConfig) DeckSize() int {
	return len(models.Suits) * (len(cfg.NumeralRanks) + len(cfg.FaceRanks))
}

// IsNumeral reports whether rank is a numeral (non-face) rank.
func (cfg BaseConfig) IsNumeral(rank string) bool {
	_, ok := cfg.NumeralValues[rank]
	return ok
}

// NumeralValue returns the numeric value of a numeral rank.
func (cfg BaseConfig) NumeralValue(rank string) (int, bool) {
	v, ok := cfg.NumeralValues[rank]
	return v, ok
}

// CardPoints returns the penalty value of a card left in hand at round
// end: the wildcard's fixed points, a face rank's fixed points, or the
// numeral's value.
func (cfg BaseConfig) CardPoints(c models.Card) int {
	if c.Rank == cfg.WildcardRank {
		return cfg.WildcardPts
	}
	if pts, ok := cfg.FacePoints[c.Rank]; ok {
		return pts
	}
	if v, ok := cfg.NumeralValues[c.Rank]; ok {
		return v
	}
	return 0
}
