package ui

import (
	"fmt"

	"voyager.com/tableclient/internal/action"
	"voyager.com/tableclient/internal/seating"
)

// RegionID names one display target on the table surface.
type RegionID string

const (
	RegionCommunity   RegionID = "communityCards"
	RegionHand        RegionID = "hand"
	RegionPot         RegionID = "pot"
	RegionTurnText    RegionID = "turnText"
	RegionTurnTimer   RegionID = "turnTimer"
	RegionWaiting     RegionID = "waiting"
	RegionShowdownMsg RegionID = "showdownMsg"
	RegionChat        RegionID = "messages"
)

// SeatLabelRegion is the text label for a seat.
func SeatLabelRegion(seat seating.Seat) RegionID {
	return RegionID(fmt.Sprintf("seat:%s:label", seat))
}

// SeatCardsRegion holds a seat's revealed cards during a showdown overlay.
func SeatCardsRegion(seat seating.Seat) RegionID {
	return RegionID(fmt.Sprintf("seat:%s:cards", seat))
}

// DealerBadgeRegion is the dealer indicator next to a seat.
func DealerBadgeRegion(seat seating.Seat) RegionID {
	return RegionID(fmt.Sprintf("seat:%s:dealer", seat))
}

// WinnerBadgeRegion is the winner mark next to a seat.
func WinnerBadgeRegion(seat seating.Seat) RegionID {
	return RegionID(fmt.Sprintf("seat:%s:winner", seat))
}

// ButtonRegion is one of the three action buttons.
func ButtonRegion(id action.ButtonID) RegionID {
	switch id {
	case action.CheckCall:
		return "btn:checkCall"
	case action.BetRaise:
		return "btn:betRaise"
	case action.Fold:
		return "btn:fold"
	}
	return "btn:unknown"
}

// CardGlyph is a card prepared for display.
type CardGlyph struct {
	Glyph     string
	Red       bool
	Highlight bool
}

// ButtonView is a rendered action button.
type ButtonView struct {
	Label   string
	Enabled bool
}

// Surface is the set of display targets the renderer projects onto. An
// implementation may be missing any region; Has reports availability and the
// renderer skips the corresponding step, never failing.
type Surface interface {
	Has(id RegionID) bool
	SetText(id RegionID, text string)
	SetCards(id RegionID, cards []CardGlyph)
	SetButton(id RegionID, b ButtonView)
	SetVisible(id RegionID, visible bool)
	// AppendLine adds to a scrolling transcript region (chat). It is driven
	// by the session on chat arrival, not by Render.
	AppendLine(id RegionID, line string)
}
