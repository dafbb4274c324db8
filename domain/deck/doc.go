// Package deck implements the 52-card Pontoon deck: construction, a fair
// Fisher-Yates shuffle driven by a per-deck random source, and dealing from
// the top.
//
// # Randomness
//
// NewSeeded derives the random source from an explicit seed, so a deck can
// be replayed exactly. New draws the seed from system entropy through the
// Ed25519 suite random stream. Both go through the same shuffle.
//
// # Depletion
//
// Dealing from an empty deck is not an error: Deal reports false and may be
// called again. Whether to build a new deck once NeedsReshuffle reports true
// is up to the caller.
package deck
