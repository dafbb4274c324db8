// Package pontoon implements the card model used by the Pontoon table:
// ranks, suits, cards and the hands dealt to each participant.
//
// # Core Types
//
// Rank: one of the 13 ranks, Ace through King, with its base point value
// (Ace=1, court cards=10).
//
// Suit: one of Hearts, Diamonds, Clubs, Spades.
//
// Card: an immutable (Rank, Suit) pair, comparable with ==.
//
// Hand: an ordered, growable list of cards held by one participant.
//
// Game rules (twist, stick, bust, scoring) are not part of this package.
package pontoon
