package view

import (
	"voyager.com/tableclient/internal/game"
	"voyager.com/tableclient/internal/seating"
	"voyager.com/tableclient/poker"
)

// View is the authoritative table state from the local player's point of
// view. All rendering reads from it; it owns no transport knowledge. It is
// only ever mutated by the Reconciler on the session's event loop goroutine.
type View struct {
	localName string
	version   uint64

	// Table is the latest public snapshot. Nil until the first state
	// message arrives. Replaced wholesale on every public update, never
	// patched field by field, so no seat can display information from a
	// previous hand.
	Table *Table

	// Private is the latest private snapshot. Independent lifecycle from
	// Table; either may arrive first.
	Private *Private

	// Reveal is the transient showdown overlay. It augments the current
	// Table and is implicitly discarded by the next public update.
	Reveal *Reveal

	// Timer holds the advisory countdown. It never overrides seat or card
	// data.
	Timer Countdown

	// CurrentTurnName is whichever turn identity arrived most recently,
	// from either a state message or a timer tick.
	CurrentTurnName string
}

// Table is the reconciled public snapshot.
type Table struct {
	Seats          seating.Layout
	CommunityCards []poker.Card
	Pot            int64
	Phase          string
	DealerName     string
	Waiting        []string
	LastShowdown   string
}

// Private is the reconciled private snapshot.
type Private struct {
	Hand    []poker.Card
	Options game.ActionCapabilities
}

// Reveal is the showdown overlay, keyed by session like the wire payload.
type Reveal struct {
	Winners map[string]bool
	Players map[string]RevealedHand
	Message string
}

// RevealedHand is one participant's revealed cards plus the best-five
// highlight set.
type RevealedHand struct {
	Hand  []poker.Card
	Best5 map[poker.Card]bool
}

// Countdown is the turn timer display state.
type Countdown struct {
	Remaining int
}

func NewView(localName string) *View {
	return &View{localName: localName}
}

// LocalName returns the local display identity.
func (v *View) LocalName() string {
	return v.localName
}

// Version increases on every reconciled change; the renderer uses it to skip
// unchanged frames.
func (v *View) Version() uint64 {
	return v.version
}

func (v *View) bump() {
	v.version++
}

// IsMyTurn reports whether the most recently arrived turn identity is the
// local player.
func (v *View) IsMyTurn() bool {
	return v.localName != "" && v.CurrentTurnName == v.localName
}

// SeatRevealed returns the reveal overlay entry for the participant seated at
// the given seat, if the overlay is active and covers that participant.
func (v *View) SeatRevealed(seat seating.Seat) (RevealedHand, bool) {
	if v.Reveal == nil || v.Table == nil {
		return RevealedHand{}, false
	}
	p := v.Table.Seats[seat]
	if p == nil {
		return RevealedHand{}, false
	}
	revealed, ok := v.Reveal.Players[p.SessionID]
	return revealed, ok
}

// SeatIsWinner reports whether the participant at the seat is among the
// showdown winners.
func (v *View) SeatIsWinner(seat seating.Seat) bool {
	if v.Reveal == nil || v.Table == nil {
		return false
	}
	p := v.Table.Seats[seat]
	if p == nil {
		return false
	}
	return v.Reveal.Winners[p.SessionID]
}
