package pontoon

import (
	"fmt"
	"strconv"
)

// Rank is the symbolic rank of a playing card, ordered Ace through King.
type Rank uint8

const (
	Ace Rank = iota
	Two
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
)

// Suit is the symbolic suit of a playing card. Suits carry no value.
type Suit uint8

const (
	Hearts Suit = iota
	Diamonds
	Clubs
	Spades
)

// Ranks returns all 13 ranks in canonical order (Ace first, King last).
func Ranks() []Rank {
	return []Rank{Ace, Two, Three, Four, Five, Six, Seven, Eight, Nine, Ten, Jack, Queen, King}
}

// Suits returns the four suits in canonical order.
func Suits() []Suit {
	return []Suit{Hearts, Diamonds, Clubs, Spades}
}

// BaseValue returns the Pontoon point value of the rank before any ace
// promotion: Ace=1, Two..Nine=face value, Ten and the court cards=10.
func (r Rank) BaseValue() int {
	switch r {
	case Ace:
		return 1
	case Ten, Jack, Queen, King:
		return 10
	default:
		return int(r) + 1
	}
}

func (r Rank) String() string {
	switch r {
	case Ace:
		return "Ace"
	case Jack:
		return "Jack"
	case Queen:
		return "Queen"
	case King:
		return "King"
	case Two, Three, Four, Five, Six, Seven, Eight, Nine, Ten:
		return strconv.Itoa(int(r) + 1)
	default:
		return fmt.Sprintf("Rank(%d)", uint8(r))
	}
}

func (s Suit) String() string {
	switch s {
	case Hearts:
		return "Hearts"
	case Diamonds:
		return "Diamonds"
	case Clubs:
		return "Clubs"
	case Spades:
		return "Spades"
	default:
		return fmt.Sprintf("Suit(%d)", uint8(s))
	}
}

// Card is an immutable playing card. Two cards are equal (==) when both
// rank and suit match.
type Card struct {
	rank Rank
	suit Suit
}

// NewCard creates the card with the given rank and suit.
func NewCard(rank Rank, suit Suit) Card {
	return Card{
		rank: rank,
		suit: suit,
	}
}

// Rank returns the rank of the Card.
func (c Card) Rank() Rank {
	return c.rank
}

// Suit returns the suit of the Card.
func (c Card) Suit() Suit {
	return c.suit
}

// BaseValue returns the point value of the card, see Rank.BaseValue.
func (c Card) BaseValue() int {
	return c.rank.BaseValue()
}

// String renders the card as "<Rank> of <Suit>", e.g. "Ace of Hearts".
func (c Card) String() string {
	return c.rank.String() + " of " + c.suit.String()
}

// StandardCards returns the 52 cards of a standard deck, one per rank and
// suit combination, grouped by suit in canonical order.
func StandardCards() []Card {
	cards := make([]Card, 0, len(Suits())*len(Ranks()))
	for _, suit := range Suits() {
		for _, rank := range Ranks() {
			cards = append(cards, NewCard(rank, suit))
		}
	}
	return cards
}
