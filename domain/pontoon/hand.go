package pontoon

import "slices"

// Hand holds the cards dealt to one participant, in the order they were
// received. The zero value is an empty hand ready to use.
type Hand struct {
	cards []Card
}

// NewHand creates an empty hand.
func NewHand() *Hand {
	return &Hand{}
}

// AddCard appends a card to the hand. Duplicates are allowed.
func (h *Hand) AddCard(c Card) {
	h.cards = append(h.cards, c)
}

// CardCount returns the number of cards in the hand.
func (h *Hand) CardCount() int {
	return len(h.cards)
}

// Cards returns the cards in insertion order. The returned slice is a copy,
// changing it does not change the hand.
func (h *Hand) Cards() []Card {
	return slices.Clone(h.cards)
}

// First returns the first card received, if any.
func (h *Hand) First() (Card, bool) {
	if len(h.cards) == 0 {
		return Card{}, false
	}
	return h.cards[0], true
}

// Clear empties the hand. Clearing an empty hand is a no-op.
func (h *Hand) Clear() {
	h.cards = h.cards[:0]
}
