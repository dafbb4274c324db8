package deck

import (
	"sync"

	"github.com/luca-patrignani/pontoon/domain/pontoon"
)

// Shared guards a Deck so that several participants can draw from it.
// Only one caller mutates the deck at a time.
type Shared struct {
	mu   sync.Mutex
	deck *Deck
}

// NewShared wraps d. The caller must not use d directly afterwards.
func NewShared(d *Deck) *Shared {
	return &Shared{deck: d}
}

// Deal removes and returns the top card, see Deck.Deal.
func (s *Shared) Deal() (pontoon.Card, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.deck.Deal()
}

// Shuffle reorders the remaining cards, see Deck.Shuffle.
func (s *Shared) Shuffle() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.deck.Shuffle()
}

// CardsRemaining returns the number of cards left in the deck.
func (s *Shared) CardsRemaining() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.deck.CardsRemaining()
}

// NeedsReshuffle reports whether fewer than ReshuffleThreshold cards remain.
func (s *Shared) NeedsReshuffle() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.deck.NeedsReshuffle()
}

// Fingerprint returns the digest of the remaining order, see Deck.Fingerprint.
func (s *Shared) Fingerprint() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.deck.Fingerprint()
}
