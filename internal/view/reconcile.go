package view

import (
	"sort"

	"github.com/rs/zerolog"
	"voyager.com/tableclient/internal/game"
	"voyager.com/tableclient/internal/seating"
	"voyager.com/tableclient/logging"
	"voyager.com/tableclient/poker"
)

// Reconciler merges the four inbound message kinds into one View under the
// table's merge rules. Each handler is a complete synchronous projection:
// independently idempotent and tolerant of any arrival order, except that a
// showdown reveal needs seats from a prior public snapshot and is a no-op
// without one.
type Reconciler struct {
	logger *zerolog.Logger
	view   *View
}

func NewReconciler(localName string, logger *zerolog.Logger) *Reconciler {
	if logger == nil {
		logger = logging.GetZeroLogger("view::reconcile", nil)
	}
	return &Reconciler{
		logger: logger,
		view:   NewView(localName),
	}
}

func (r *Reconciler) View() *View {
	return r.view
}

// OnState replaces the public snapshot wholesale and re-resolves the seat
// layout. The private snapshot is left untouched. Any active showdown overlay
// is discarded with the old snapshot.
func (r *Reconciler) OnState(msg *game.TableState) {
	if msg == nil {
		return
	}

	participants := make([]seating.Participant, 0, len(msg.Players))
	sessionIDs := make([]string, 0, len(msg.Players))
	for sid := range msg.Players {
		sessionIDs = append(sessionIDs, sid)
	}
	// The wire collection is unordered; sort for a stable display order
	// within this client. Seat stability across updates is still only
	// guaranteed for the Bottom pin.
	sort.Strings(sessionIDs)
	for _, sid := range sessionIDs {
		p := msg.Players[sid]
		participants = append(participants, seating.Participant{
			SessionID: sid,
			Name:      p.Name,
			Stack:     p.Stack,
			Bet:       p.Bet,
			Folded:    p.Folded,
		})
	}

	r.view.Table = &Table{
		Seats:          seating.Resolve(r.view.localName, participants),
		CommunityCards: poker.ParseCards(msg.CommunityCards),
		Pot:            msg.Pot,
		Phase:          msg.Phase,
		DealerName:     msg.DealerName,
		Waiting:        msg.Waiting,
		LastShowdown:   msg.LastShowdown,
	}
	r.view.Reveal = nil
	r.view.CurrentTurnName = msg.CurrentTurnName
	r.view.bump()
}

// OnPrivate replaces the private snapshot wholesale. The public snapshot is
// left untouched. An empty capability set keeps the previous options so the
// action buttons stay in their last-known labeled state instead of blanking
// between hands.
func (r *Reconciler) OnPrivate(msg *game.PrivateState) {
	if msg == nil {
		return
	}
	options := msg.Options
	if options.Empty() && r.view.Private != nil {
		options = r.view.Private.Options
	}
	r.view.Private = &Private{
		Hand:    poker.ParseCards(msg.Hand),
		Options: options,
	}
	r.view.bump()
}

// OnShowdown applies the reveal overlay on top of the current snapshot's
// seats. It augments seat content rather than replacing it, and is a no-op
// when no populated seat exists yet.
func (r *Reconciler) OnShowdown(msg *game.Showdown) {
	if msg == nil {
		return
	}
	if r.view.Table == nil {
		r.logger.Debug().Str(logging.MsgTypeKey, game.MsgShowdown).
			Msg("Dropping showdown reveal: no table snapshot yet")
		return
	}
	populated := false
	for _, p := range r.view.Table.Seats {
		if p != nil {
			populated = true
			break
		}
	}
	if !populated {
		r.logger.Debug().Str(logging.MsgTypeKey, game.MsgShowdown).
			Msg("Dropping showdown reveal: no seats populated")
		return
	}

	reveal := &Reveal{
		Winners: make(map[string]bool),
		Players: make(map[string]RevealedHand),
		Message: msg.Message,
	}
	for _, sid := range msg.Winners {
		reveal.Winners[sid] = true
	}
	for sid, rp := range msg.Players {
		best5 := make(map[poker.Card]bool)
		for _, c := range poker.ParseCards(rp.Best5) {
			best5[c] = true
		}
		reveal.Players[sid] = RevealedHand{
			Hand:  poker.ParseCards(rp.Hand),
			Best5: best5,
		}
	}
	r.view.Reveal = reveal
	r.view.bump()
}

// OnTimer updates only the countdown display and the turn identity used for
// gating action buttons. Cards, pot, and seat content are never touched, so
// ticks may interleave arbitrarily with the other message kinds.
func (r *Reconciler) OnTimer(msg *game.Timer) {
	if msg == nil {
		return
	}
	r.view.Timer.Remaining = msg.Remaining
	r.view.CurrentTurnName = msg.CurrentTurnName
	r.view.bump()
}
