package models

// Suit is one of the four French suits, encoded as a single letter to
// match the wire format.
type Suit string

const (
	Spades   Suit = "S"
	Hearts   Suit = "H"
	Diamonds Suit = "D"
	Clubs    Suit = "C"
)

// Suits lists the four suits in deck-construction order.
var Suits = []Suit{Spades, Hearts, Diamonds, Clubs}

// IsValid reports whether s is one of the four suits.
func (s Suit) IsValid() bool {
	switch s {
	case Spades, Hearts, Diamonds, Clubs:
		return true
	}
	return false
}

// Card is an immutable (suit, rank) value. Identity is the rank+suit
// string; there is exactly one card per combination in a deck.
type Card struct {
	Suit Suit   `json:"suit"`
	Rank string `json:"rank"`
}

// ID returns the card's identity string, e.g. "10H" or "KS".
func (c Card) ID() string {
	return c.Rank + string(c.Suit)
}
