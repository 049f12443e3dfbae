// internal/game/rules_test.go
package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crazytens/crazytens/internal/models"
)

func TestDeckSizes(t *testing.T) {
	// 4 suits x (10 numerals + 3 faces) and 4 x (12 numerals + 3 faces).
	assert.Equal(t, 52, DecimalConfig().DeckSize())
	assert.Equal(t, 60, DozenalConfig().DeckSize())
}

func TestBuildDeckIsFullAndDistinct(t *testing.T) {
	for _, cfg := range []BaseConfig{DecimalConfig(), DozenalConfig()} {
		deck := BuildDeck(cfg)
		require.Len(t, deck, cfg.DeckSize())

		seen := make(map[string]bool, len(deck))
		for _, c := range deck {
			require.False(t, seen[c.ID()], "duplicate card %s in %s deck", c.ID(), cfg.ID)
			seen[c.ID()] = true
		}
	}
}

func TestShuffleDeckIsPermutation(t *testing.T) {
	cfg := DecimalConfig()
	deck := BuildDeck(cfg)
	shuffled := append([]models.Card{}, deck...)
	ShuffleDeck(shuffled)

	require.Len(t, shuffled, len(deck))
	counts := make(map[string]int)
	for _, c := range deck {
		counts[c.ID()]++
	}
	for _, c := range shuffled {
		counts[c.ID()]--
	}
	for id, n := range counts {
		assert.Zero(t, n, "card %s count changed by shuffle", id)
	}
}

func TestConfigForBase(t *testing.T) {
	cfg, err := ConfigForBase(BaseDecimal)
	require.NoError(t, err)
	assert.Equal(t, BaseDecimal, cfg.ID)

	cfg, err = ConfigForBase(BaseDozenal)
	require.NoError(t, err)
	assert.Equal(t, BaseDozenal, cfg.ID)

	_, err = ConfigForBase("hex")
	assert.Error(t, err)
}

func TestCardPoints(t *testing.T) {
	dec := DecimalConfig()
	assert.Equal(t, 1, dec.CardPoints(models.Card{Suit: models.Clubs, Rank: "1"}))
	assert.Equal(t, 9, dec.CardPoints(models.Card{Suit: models.Clubs, Rank: "9"}))
	assert.Equal(t, WildcardRankPoints, dec.CardPoints(models.Card{Suit: models.Clubs, Rank: "10"}))
	assert.Equal(t, FaceRankPoints, dec.CardPoints(models.Card{Suit: models.Clubs, Rank: "K"}))

	doz := DozenalConfig()
	assert.Equal(t, 10, doz.CardPoints(models.Card{Suit: models.Clubs, Rank: "X"}))
	assert.Equal(t, 11, doz.CardPoints(models.Card{Suit: models.Clubs, Rank: "E"}))
	// "10" reads as twelve in dozenal, but it is the wildcard rank and
	// scores as the wildcard.
	assert.Equal(t, WildcardRankPoints, doz.CardPoints(models.Card{Suit: models.Clubs, Rank: "10"}))
}

func TestDozenalNumeralValues(t *testing.T) {
	doz := DozenalConfig()
	v, ok := doz.NumeralValue("10")
	require.True(t, ok)
	assert.Equal(t, 12, v)
	assert.True(t, doz.IsNumeral("X"))
	assert.False(t, doz.IsNumeral("J"))
}
