package ui

import (
	"fmt"
	"strings"

	"voyager.com/tableclient/internal/action"
	"voyager.com/tableclient/internal/seating"
	"voyager.com/tableclient/internal/view"
	"voyager.com/tableclient/poker"
)

// Render projects the view model onto the surface. It is a pure function of
// the view: no state of its own, safe to re-run on every update, and
// re-rendering the same view twice yields identical region content.
func Render(v *view.View, s Surface) {
	if v == nil || s == nil {
		return
	}
	renderTable(v, s)
	renderHand(v, s)
	renderButtons(v, s)
	renderTimer(v, s)
}

func renderTable(v *view.View, s Surface) {
	if v.Table == nil {
		return
	}

	if s.Has(RegionCommunity) {
		s.SetCards(RegionCommunity, communityGlyphs(v))
	}
	if s.Has(RegionPot) {
		s.SetText(RegionPot, fmt.Sprintf("Pot: %d", v.Table.Pot))
	}
	if s.Has(RegionWaiting) {
		s.SetText(RegionWaiting, waitingText(v.Table.Waiting))
	}
	if s.Has(RegionShowdownMsg) {
		s.SetText(RegionShowdownMsg, showdownText(v))
	}
	if s.Has(RegionTurnText) {
		s.SetText(RegionTurnText, turnText(v))
	}

	for _, seat := range seating.AllSeats() {
		renderSeat(v, s, seat)
	}
}

func renderSeat(v *view.View, s Surface, seat seating.Seat) {
	p := v.Table.Seats[seat]

	if s.Has(SeatLabelRegion(seat)) {
		s.SetText(SeatLabelRegion(seat), seatLabel(v, seat))
	}
	if s.Has(DealerBadgeRegion(seat)) {
		s.SetVisible(DealerBadgeRegion(seat), p != nil && v.Table.DealerName != "" && p.Name == v.Table.DealerName)
	}
	if s.Has(WinnerBadgeRegion(seat)) {
		s.SetVisible(WinnerBadgeRegion(seat), v.SeatIsWinner(seat))
	}
	if s.Has(SeatCardsRegion(seat)) {
		revealed, ok := v.SeatRevealed(seat)
		if ok {
			s.SetCards(SeatCardsRegion(seat), revealGlyphs(revealed))
		} else {
			s.SetCards(SeatCardsRegion(seat), nil)
		}
	}
}

func renderHand(v *view.View, s Surface) {
	if v.Private == nil || !s.Has(RegionHand) {
		return
	}
	glyphs := make([]CardGlyph, 0, len(v.Private.Hand))
	for _, c := range v.Private.Hand {
		glyphs = append(glyphs, CardGlyph{Glyph: c.Glyph(), Red: c.IsRed()})
	}
	s.SetCards(RegionHand, glyphs)
}

// renderButtons derives the action row from the latest capability set. Until
// the first private snapshot arrives the buttons are left alone rather than
// blanked.
func renderButtons(v *view.View, s Surface) {
	if v.Private == nil {
		return
	}
	buttons := action.Derive(v.Private.Options, v.IsMyTurn())
	if s.Has(ButtonRegion(action.CheckCall)) {
		s.SetButton(ButtonRegion(action.CheckCall), ButtonView(buttons.CheckCall))
	}
	if s.Has(ButtonRegion(action.BetRaise)) {
		s.SetButton(ButtonRegion(action.BetRaise), ButtonView(buttons.BetRaise))
	}
	if s.Has(ButtonRegion(action.Fold)) {
		s.SetButton(ButtonRegion(action.Fold), ButtonView(buttons.Fold))
	}
}

func renderTimer(v *view.View, s Surface) {
	if s.Has(RegionTurnTimer) {
		s.SetText(RegionTurnTimer, fmt.Sprintf("%ds", v.Timer.Remaining))
	}
	if v.Table == nil && s.Has(RegionTurnText) {
		s.SetText(RegionTurnText, turnText(v))
	}
}

func seatLabel(v *view.View, seat seating.Seat) string {
	p := v.Table.Seats[seat]
	if p == nil {
		return ""
	}
	var sb strings.Builder
	sb.WriteString(p.Name)
	if seat == seating.Bottom {
		sb.WriteString(" (You)")
	}
	fmt.Fprintf(&sb, "  [%d]", p.Stack)
	if p.Bet > 0 {
		fmt.Fprintf(&sb, "  bet %d", p.Bet)
	}
	if p.Folded {
		sb.WriteString("  folded")
	}
	return sb.String()
}

func turnText(v *view.View) string {
	name := v.CurrentTurnName
	if name == "" {
		return "—"
	}
	if v.IsMyTurn() {
		return "Your turn"
	}
	return fmt.Sprintf("%s's turn", name)
}

func waitingText(waiting []string) string {
	if len(waiting) == 0 {
		return ""
	}
	return "Waiting: " + strings.Join(waiting, ", ")
}

func showdownText(v *view.View) string {
	if v.Reveal != nil && v.Reveal.Message != "" {
		return v.Reveal.Message
	}
	return v.Table.LastShowdown
}

// communityGlyphs highlights board cards that belong to any winner's
// best-five set while the showdown overlay is active.
func communityGlyphs(v *view.View) []CardGlyph {
	winnerBest5 := make(map[poker.Card]bool)
	if v.Reveal != nil {
		for sid, revealed := range v.Reveal.Players {
			if !v.Reveal.Winners[sid] {
				continue
			}
			for c := range revealed.Best5 {
				winnerBest5[c] = true
			}
		}
	}
	glyphs := make([]CardGlyph, 0, len(v.Table.CommunityCards))
	for _, c := range v.Table.CommunityCards {
		glyphs = append(glyphs, CardGlyph{
			Glyph:     c.Glyph(),
			Red:       c.IsRed(),
			Highlight: winnerBest5[c],
		})
	}
	return glyphs
}

func revealGlyphs(revealed view.RevealedHand) []CardGlyph {
	glyphs := make([]CardGlyph, 0, len(revealed.Hand))
	for _, c := range revealed.Hand {
		glyphs = append(glyphs, CardGlyph{
			Glyph:     c.Glyph(),
			Red:       c.IsRed(),
			Highlight: revealed.Best5[c],
		})
	}
	return glyphs
}
