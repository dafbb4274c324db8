package deck

// Shuffle reorders the remaining cards in place with a Fisher-Yates scan
// from the last index down, swapping each position with a uniformly chosen
// index in [0, i]. The set of cards is unchanged.
func (d *Deck) Shuffle() {
	for i := len(d.cards) - 1; i > 0; i-- {
		j := d.rng.IntN(i + 1)
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	}
}
