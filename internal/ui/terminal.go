package ui

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"voyager.com/tableclient/internal/action"
	"voyager.com/tableclient/internal/seating"
)

const (
	ansiRed       = "\x1b[31m"
	ansiBold      = "\x1b[1m"
	ansiReset     = "\x1b[0m"
	ansiHighlight = "\x1b[33m"
)

// Terminal is a Surface backed by an ANSI terminal. Every known region is
// present; Flush repaints the whole table from the retained region content.
type Terminal struct {
	mu       sync.Mutex
	out      io.Writer
	color    bool
	text     map[RegionID]string
	cards    map[RegionID][]CardGlyph
	buttons  map[RegionID]ButtonView
	visible  map[RegionID]bool
	chatTail []string
}

const chatTailLines = 8

func NewTerminal(out io.Writer, color bool) *Terminal {
	return &Terminal{
		out:     out,
		color:   color,
		text:    make(map[RegionID]string),
		cards:   make(map[RegionID][]CardGlyph),
		buttons: make(map[RegionID]ButtonView),
		visible: make(map[RegionID]bool),
	}
}

func (t *Terminal) Has(id RegionID) bool {
	return true
}

func (t *Terminal) SetText(id RegionID, text string) {
	t.mu.Lock()
	t.text[id] = text
	t.mu.Unlock()
}

func (t *Terminal) SetCards(id RegionID, cards []CardGlyph) {
	t.mu.Lock()
	t.cards[id] = cards
	t.mu.Unlock()
}

func (t *Terminal) SetButton(id RegionID, b ButtonView) {
	t.mu.Lock()
	t.buttons[id] = b
	t.mu.Unlock()
}

func (t *Terminal) SetVisible(id RegionID, visible bool) {
	t.mu.Lock()
	t.visible[id] = visible
	t.mu.Unlock()
}

func (t *Terminal) AppendLine(id RegionID, line string) {
	t.mu.Lock()
	t.chatTail = append(t.chatTail, line)
	if len(t.chatTail) > chatTailLines {
		t.chatTail = t.chatTail[len(t.chatTail)-chatTailLines:]
	}
	t.mu.Unlock()
}

func (t *Terminal) cardString(cards []CardGlyph) string {
	parts := make([]string, 0, len(cards))
	for _, c := range cards {
		s := c.Glyph
		if t.color {
			switch {
			case c.Highlight:
				s = ansiHighlight + s + ansiReset
			case c.Red:
				s = ansiRed + s + ansiReset
			}
		}
		parts = append(parts, s)
	}
	return strings.Join(parts, " ")
}

func (t *Terminal) seatLine(seat seating.Seat) string {
	label := t.text[SeatLabelRegion(seat)]
	if label == "" {
		label = "(empty)"
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "%-7s %s", seat.String()+":", label)
	if t.visible[DealerBadgeRegion(seat)] {
		sb.WriteString("  [D]")
	}
	if t.visible[WinnerBadgeRegion(seat)] {
		sb.WriteString("  WINNER")
	}
	if cards := t.cards[SeatCardsRegion(seat)]; len(cards) > 0 {
		sb.WriteString("  " + t.cardString(cards))
	}
	return sb.String()
}

func (t *Terminal) buttonString(id action.ButtonID) string {
	b := t.buttons[ButtonRegion(id)]
	if b.Label == "" {
		return ""
	}
	if !b.Enabled {
		return fmt.Sprintf("( %s )", b.Label)
	}
	if t.color {
		return fmt.Sprintf("[%s%s%s]", ansiBold, b.Label, ansiReset)
	}
	return fmt.Sprintf("[%s]", b.Label)
}

// Flush repaints the table.
func (t *Terminal) Flush() {
	t.mu.Lock()
	defer t.mu.Unlock()

	var sb strings.Builder
	sb.WriteString("\n")
	sb.WriteString(t.seatLine(seating.Top) + "\n")
	sb.WriteString(t.seatLine(seating.Left) + "\n")
	sb.WriteString(t.seatLine(seating.Right) + "\n")

	sb.WriteString(fmt.Sprintf("board:  %s    %s\n",
		t.cardString(t.cards[RegionCommunity]), t.text[RegionPot]))
	sb.WriteString(t.seatLine(seating.Bottom) + "\n")

	if hand := t.cards[RegionHand]; len(hand) > 0 {
		sb.WriteString("hand:   " + t.cardString(hand) + "\n")
	}
	if w := t.text[RegionWaiting]; w != "" {
		sb.WriteString(w + "\n")
	}
	if m := t.text[RegionShowdownMsg]; m != "" {
		sb.WriteString(m + "\n")
	}
	sb.WriteString(fmt.Sprintf("%s  %s\n", t.text[RegionTurnText], t.text[RegionTurnTimer]))

	row := []string{
		t.buttonString(action.CheckCall),
		t.buttonString(action.BetRaise),
		t.buttonString(action.Fold),
	}
	sb.WriteString(strings.TrimSpace(strings.Join(row, "  ")) + "\n")

	for _, line := range t.chatTail {
		sb.WriteString("| " + line + "\n")
	}
	fmt.Fprint(t.out, sb.String())
}
