package poker

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFullDeck(t *testing.T) {
	deck := FullDeck()
	assert.Equal(t, 52, len(deck))

	seen := make(map[Card]bool)
	reds := 0
	for _, c := range deck {
		assert.True(t, c.IsValid(), "invalid card in deck: %U", rune(c))
		assert.False(t, seen[c], "duplicate card in deck: %U", rune(c))
		seen[c] = true
		if c.IsRed() {
			reds++
		}
	}
	assert.Equal(t, 26, reds)
}

func TestCardDecode(t *testing.T) {
	tests := []struct {
		glyph rune
		str   string
		rank  int32
		suit  Suit
		red   bool
	}{
		{0x1F0A1, "As", 14, Spades, false},
		{0x1F0AE, "Ks", 13, Spades, false},
		{0x1F0AB, "Js", 11, Spades, false},
		{0x1F0AD, "Qs", 12, Spades, false},
		{0x1F0B1, "Ah", 14, Hearts, true},
		{0x1F0B2, "2h", 2, Hearts, true},
		{0x1F0BA, "Th", 10, Hearts, true},
		{0x1F0C5, "5d", 5, Diamonds, true},
		{0x1F0DE, "Kc", 13, Clubs, false},
	}
	for _, tt := range tests {
		c := Card(tt.glyph)
		assert.Equal(t, tt.str, c.String())
		assert.Equal(t, tt.rank, c.Rank())
		assert.Equal(t, tt.suit, c.Suit())
		assert.Equal(t, tt.red, c.IsRed())
	}
}

func TestKnightGlyphRejected(t *testing.T) {
	// U+1F0AC is the knight of spades, not part of a standard deck.
	c := Card(0x1F0AC)
	assert.False(t, c.IsValid())
	assert.Equal(t, int32(0), c.Rank())
}

func TestParseCards(t *testing.T) {
	cards := ParseCards([]string{"\U0001F0A1", "garbage", "", "\U0001F0BE"})
	assert.Equal(t, 2, len(cards))
	assert.Equal(t, "As", cards[0].String())
	assert.Equal(t, "Kh", cards[1].String())
}
