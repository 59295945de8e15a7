package poker

// FullDeck returns the 52 glyphs in suit-block order (spades, hearts,
// diamonds, clubs), matching the deck the server deals from.
func FullDeck() []Card {
	deck := make([]Card, 0, 52)
	for _, suit := range []Suit{Spades, Hearts, Diamonds, Clubs} {
		base := suitBlocks[suit]
		for offset := rune(0); offset <= 13; offset++ {
			if offset == knightOffset {
				continue
			}
			deck = append(deck, Card(base+offset))
		}
	}
	return deck
}

// ParseCards decodes a sequence of glyph strings, dropping anything that is
// not in the deck. Malformed server payloads degrade to fewer cards, never an
// error.
func ParseCards(glyphs []string) []Card {
	cards := make([]Card, 0, len(glyphs))
	for _, g := range glyphs {
		runes := []rune(g)
		if len(runes) != 1 {
			continue
		}
		c := Card(runes[0])
		if !c.IsValid() {
			continue
		}
		cards = append(cards, c)
	}
	return cards
}
