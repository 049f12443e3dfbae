// internal/game/deck.go
package game

import (
	"math/rand"
	"time"

	"github.com/crazytens/crazytens/internal/models"
)

// BuildDeck produces exactly one card per (suit, rank) combination for
// the configured rank table, in construction order.
func BuildDeck(cfg BaseConfig) []models.Card {
	ranks := cfg.Ranks()
	deck := make([]models.Card, 0, len(models.Suits)*len(ranks))
	for _, suit := range models.Suits {
		for _, rank := range ranks {
			deck = append(deck, models.Card{Suit: suit, Rank: rank})
		}
	}
	return deck
}

// ShuffleDeck permutes the deck in place with a Fisher-Yates shuffle.
func ShuffleDeck(deck []models.Card) {
	r := rand.New(rand.NewSource(time.Now().UnixNano()))
	r.Shuffle(len(deck), func(i, j int) {
		deck[i], deck[j] = deck[j], deck[i]
	})
}
