package deck

import (
	"sync"
	"testing"

	"github.com/luca-patrignani/pontoon/domain/pontoon"
)

func TestShuffleKeepsCardSet(t *testing.T) {
	d := NewSeeded(11)
	for i := 0; i < 20; i++ {
		d.Deal()
	}
	before := map[pontoon.Card]int{}
	for _, c := range d.cards {
		before[c]++
	}
	for i := 0; i < 10; i++ {
		d.Shuffle()
	}
	if d.CardsRemaining() != 32 {
		t.Fatalf("expected 32 cards, got %d", d.CardsRemaining())
	}
	after := map[pontoon.Card]int{}
	for _, c := range d.cards {
		after[c]++
	}
	if len(after) != len(before) {
		t.Fatalf("expected %d distinct cards, got %d", len(before), len(after))
	}
	for c, n := range before {
		if after[c] != n {
			t.Fatalf("%s: expected %d copies, got %d", c, n, after[c])
		}
	}
}

func TestShuffleChangesOrder(t *testing.T) {
	d := NewSeeded(5)
	before := d.Fingerprint()
	d.Shuffle()
	if d.Fingerprint() == before {
		t.Fatal("shuffle left 52 cards in the same order")
	}
}

func TestShuffleEmptyAndSingle(t *testing.T) {
	d := NewSeeded(9)
	for d.CardsRemaining() > 1 {
		d.Deal()
	}
	last := d.cards[0]
	d.Shuffle()
	if c, ok := d.Deal(); !ok || c != last {
		t.Fatalf("expected %s, got %s", last, c)
	}
	d.Shuffle()
	if d.CardsRemaining() != 0 {
		t.Fatalf("expected empty deck, got %d", d.CardsRemaining())
	}
}

// Every card should reach every position over many shuffles.
func TestShufflePositionCoverage(t *testing.T) {
	var seen [52]map[pontoon.Card]bool
	for i := range seen {
		seen[i] = map[pontoon.Card]bool{}
	}
	for seed := uint64(0); seed < 2000; seed++ {
		d := NewSeeded(seed)
		for i, c := range d.cards {
			seen[i][c] = true
		}
	}
	for i := range seen {
		if len(seen[i]) != 52 {
			t.Fatalf("position %d saw only %d distinct cards", i, len(seen[i]))
		}
	}
}

func TestSharedConcurrentDeal(t *testing.T) {
	s := NewShared(NewSeeded(1))
	n := 8
	dealt := make(chan pontoon.Card, 52)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				c, ok := s.Deal()
				if !ok {
					return
				}
				dealt <- c
			}
		}()
	}
	wg.Wait()
	close(dealt)
	seen := map[pontoon.Card]bool{}
	for c := range dealt {
		if seen[c] {
			t.Fatalf("%s dealt twice", c)
		}
		seen[c] = true
	}
	if len(seen) != 52 {
		t.Fatalf("expected 52 cards, got %d", len(seen))
	}
	if s.CardsRemaining() != 0 || !s.NeedsReshuffle() {
		t.Fatalf("expected depleted deck, got %d cards", s.CardsRemaining())
	}
	s.Shuffle()
	if s.Fingerprint() != s.deck.Fingerprint() {
		t.Fatal("shared fingerprint differs from the wrapped deck")
	}
}
