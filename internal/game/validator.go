// internal/game/validator.go
package game

import "github.com/crazytens/crazytens/internal/models"

// IsLegalPlay reports whether card may be played on topCard under the
// given forced suit and rank table. A card is legal iff any of:
//
//  1. its rank is the wildcard rank (always playable);
//  2. its rank is the skip rank (always playable);
//  3. its suit equals the effective suit, which is forcedSuit when set
//     and topCard's suit otherwise;
//  4. its rank equals topCard's rank;
//  5. both it and topCard are numeral ranks whose values sum exactly to
//     the base's target (ten in decimal, twelve in dozenal).
//
// Pure and deterministic; the session and any client-facing hint must
// both go through this function.
func IsLegalPlay(card, topCard models.Card, forcedSuit models.Suit, cfg BaseConfig) bool {
	if card.Rank == cfg.WildcardRank {
		return true
	}
	if card.Rank == cfg.SkipRank {
		return true
	}

	effectiveSuit := topCard.Suit
	if forcedSuit != "" {
		effectiveSuit = forcedSuit
	}
	if card.Suit == effectiveSuit {
		return true
	}
	if card.Rank == topCard.Rank {
		return true
	}

	cv, cardNumeral := cfg.NumeralValue(card.Rank)
	tv, topNumeral := cfg.NumeralValue(topCard.Rank)
	return cardNumeral && topNumeral && cv+tv == cfg.SumTarget
}

// LegalPlays computes the set of cards in hand that are legal to play.
func LegalPlays(hand []models.Card, topCard models.Card, forcedSuit models.Suit, cfg BaseConfig) []models.Card {
	var legal []models.Card
	for _, c := range hand {
		if IsLegalPlay(c, topCard, forcedSuit, cfg) {
			legal = append(legal, c)
		}
	}
	return legal
}
