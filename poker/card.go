package poker

import "fmt"

// Card is a single playing-card glyph (U+1F0A1..U+1F0DE minus the knights).
// The server sends cards as opaque glyphs; rank and suit are decoded from the
// codepoint when needed.
type Card rune

type Suit int32

const (
	Spades Suit = iota + 1
	Hearts
	Diamonds
	Clubs
)

var suitBlocks = map[Suit]rune{
	Spades:   0x1F0A1,
	Hearts:   0x1F0B1,
	Diamonds: 0x1F0C1,
	Clubs:    0x1F0D1,
}

var suitNames = map[Suit]string{
	Spades:   "s",
	Hearts:   "h",
	Diamonds: "d",
	Clubs:    "c",
}

const knightOffset = 11

func (c Card) block() (Suit, rune, bool) {
	r := rune(c)
	for suit, base := range suitBlocks {
		if r >= base && r <= base+13 {
			return suit, r - base, true
		}
	}
	return 0, 0, false
}

// IsValid reports whether the glyph belongs to the 52-card deck.
func (c Card) IsValid() bool {
	_, offset, ok := c.block()
	return ok && offset != knightOffset
}

func (c Card) Suit() Suit {
	suit, _, ok := c.block()
	if !ok {
		return 0
	}
	return suit
}

// Rank returns 2..14 with ace high, or 0 for an unknown glyph.
func (c Card) Rank() int32 {
	_, offset, ok := c.block()
	if !ok || offset == knightOffset {
		return 0
	}
	// Block order is A,2..10,J,C,Q,K. The knight (C) is not part of the deck.
	if offset > knightOffset {
		offset--
	}
	if offset == 0 {
		return 14
	}
	return int32(offset) + 1
}

// IsRed reports the suit color classification used by the table display.
func (c Card) IsRed() bool {
	suit := c.Suit()
	return suit == Hearts || suit == Diamonds
}

func (c Card) String() string {
	if !c.IsValid() {
		return fmt.Sprintf("?%q", rune(c))
	}
	rank := c.Rank()
	var rankStr string
	switch rank {
	case 14:
		rankStr = "A"
	case 13:
		rankStr = "K"
	case 12:
		rankStr = "Q"
	case 11:
		rankStr = "J"
	case 10:
		rankStr = "T"
	default:
		rankStr = fmt.Sprintf("%d", rank)
	}
	return rankStr + suitNames[c.Suit()]
}

// Glyph returns the card as the wire string (one rune).
func (c Card) Glyph() string {
	return string(rune(c))
}
