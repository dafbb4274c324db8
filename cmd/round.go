package main

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/luca-patrignani/pontoon/domain/deck"
	"github.com/luca-patrignani/pontoon/domain/pontoon"
)

var errDeckEmpty = errors.New("deck has no cards left")

// dealer is the part of a deck the table draws from.
type dealer interface {
	Deal() (pontoon.Card, bool)
}

func newDeck(cfg config, logger *slog.Logger) *deck.Deck {
	var d *deck.Deck
	if cfg.Seed != nil {
		d = deck.NewSeeded(*cfg.Seed)
		logger.Debug("deck seeded", "seed", *cfg.Seed)
	} else {
		d = deck.New()
	}
	logger.Debug("deck shuffled", "fingerprint", d.Fingerprint())
	return d
}

// dealInitial gives two cards to each hand, alternating player and banker.
func dealInitial(d dealer, player, banker *pontoon.Hand) error {
	for round := 0; round < 2; round++ {
		for _, h := range []*pontoon.Hand{player, banker} {
			c, ok := d.Deal()
			if !ok {
				return fmt.Errorf("initial deal: %w", errDeckEmpty)
			}
			h.AddCard(c)
		}
	}
	return nil
}
