package deck

import (
	"encoding/binary"
	"encoding/hex"
	"math/rand/v2"

	"github.com/luca-patrignani/pontoon/domain/pontoon"
	"go.dedis.ch/kyber/v4/suites"
)

// pcgStream fixes the PCG increment so the whole 64-bit seed selects the
// permutation.
const pcgStream = 0x9e3779b97f4a7c15

// ReshuffleThreshold is the low-water mark below which a deck should be
// replaced before the next round.
const ReshuffleThreshold = 15

// Deck is an ordered pile of playing cards with its own random source.
// The top of the deck is the end of the slice.
//
// A Deck is not safe for concurrent use, see Shared.
type Deck struct {
	cards []pontoon.Card
	rng   *rand.Rand
}

var suite suites.Suite = suites.MustFind("Ed25519")

// New creates a standard 52-card deck shuffled with a seed drawn from
// system entropy.
func New() *Deck {
	return NewSeeded(entropySeed())
}

// NewSeeded creates a standard 52-card deck shuffled with a random source
// derived from seed. The same seed always yields the same order.
func NewSeeded(seed uint64) *Deck {
	d := &Deck{
		cards: pontoon.StandardCards(),
		rng:   rand.New(rand.NewPCG(seed, pcgStream)),
	}
	d.Shuffle()
	return d
}

// Deal removes and returns the top card. It reports false when the deck
// is empty.
func (d *Deck) Deal() (pontoon.Card, bool) {
	if len(d.cards) == 0 {
		return pontoon.Card{}, false
	}
	top := d.cards[len(d.cards)-1]
	d.cards = d.cards[:len(d.cards)-1]
	return top, true
}

// CardsRemaining returns the number of cards left in the deck.
func (d *Deck) CardsRemaining() int {
	return len(d.cards)
}

// NeedsReshuffle reports whether fewer than ReshuffleThreshold cards remain.
func (d *Deck) NeedsReshuffle() bool {
	return len(d.cards) < ReshuffleThreshold
}

// Fingerprint returns a hex digest of the remaining cards in order.
// Publishing it before dealing lets players check afterwards, given the
// seed, that the deck was not rearranged.
func (d *Deck) Fingerprint() string {
	h := suite.Hash()
	for _, c := range d.cards {
		h.Write([]byte{byte(c.Rank()), byte(c.Suit())})
	}
	return hex.EncodeToString(h.Sum(nil))
}

// entropySeed reads a seed from the suite random stream, which is backed
// by the system's cryptographic source.
func entropySeed() uint64 {
	var b [8]byte
	suite.RandomStream().XORKeyStream(b[:], b[:])
	return binary.LittleEndian.Uint64(b[:])
}
