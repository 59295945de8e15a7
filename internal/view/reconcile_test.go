package view

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"voyager.com/tableclient/internal/game"
	"voyager.com/tableclient/internal/seating"
)

const (
	aceSpades  = "\U0001F0A1"
	kingSpades = "\U0001F0AE"
	aceHearts  = "\U0001F0B1"
	twoHearts  = "\U0001F0B2"
	fiveDiam   = "\U0001F0C5"
)

func stateWithPlayers(players map[string]game.PlayerState) *game.TableState {
	return &game.TableState{
		Players:         players,
		CommunityCards:  []string{aceHearts, twoHearts, fiveDiam},
		Pot:             60,
		Phase:           "flop",
		CurrentTurnName: "alice",
		DealerName:      "bob",
	}
}

func fourPlayers() map[string]game.PlayerState {
	// Session IDs sort so that the local player lands at index 2 of the
	// iteration order.
	return map[string]game.PlayerState{
		"sid-1": {Name: "alice", Stack: 190, Bet: 10},
		"sid-2": {Name: "bob", Stack: 180, Bet: 20},
		"sid-3": {Name: "me", Stack: 200},
		"sid-4": {Name: "carol", Stack: 150, Folded: true},
	}
}

func TestOnStateSeatsLocalAtBottom(t *testing.T) {
	r := NewReconciler("me", nil)
	r.OnState(stateWithPlayers(fourPlayers()))

	v := r.View()
	require.NotNil(t, v.Table)
	require.NotNil(t, v.Table.Seats[seating.Bottom])
	assert.Equal(t, "me", v.Table.Seats[seating.Bottom].Name)
	assert.Equal(t, "alice", v.Table.Seats[seating.Left].Name)
	assert.Equal(t, "bob", v.Table.Seats[seating.Top].Name)
	assert.Equal(t, "carol", v.Table.Seats[seating.Right].Name)
	assert.True(t, v.Table.Seats[seating.Right].Folded)

	assert.Equal(t, 3, len(v.Table.CommunityCards))
	assert.Equal(t, int64(60), v.Table.Pot)
	assert.Equal(t, "alice", v.CurrentTurnName)
	assert.False(t, v.IsMyTurn())
}

func TestOnStateIdempotent(t *testing.T) {
	r := NewReconciler("me", nil)
	r.OnState(stateWithPlayers(fourPlayers()))
	first := r.View().Table.Seats
	r.OnState(stateWithPlayers(fourPlayers()))
	second := r.View().Table.Seats

	for _, seat := range seating.AllSeats() {
		if first[seat] == nil {
			assert.Nil(t, second[seat])
			continue
		}
		require.NotNil(t, second[seat])
		assert.Empty(t, cmp.Diff(*first[seat], *second[seat]))
	}
}

func TestOnStateZeroParticipants(t *testing.T) {
	r := NewReconciler("me", nil)
	r.OnState(&game.TableState{})

	v := r.View()
	require.NotNil(t, v.Table)
	for _, seat := range seating.AllSeats() {
		assert.Nil(t, v.Table.Seats[seat])
	}
	assert.Equal(t, 0, len(v.Table.CommunityCards))
}

func TestOnStateReplacesWholesale(t *testing.T) {
	r := NewReconciler("me", nil)
	r.OnState(stateWithPlayers(fourPlayers()))

	// Next hand: fewer players, no community cards. Nothing from the old
	// hand may survive.
	r.OnState(&game.TableState{
		Players: map[string]game.PlayerState{
			"sid-3": {Name: "me", Stack: 230},
		},
		Phase: "waiting",
	})

	v := r.View()
	assert.Equal(t, 0, len(v.Table.CommunityCards))
	assert.Equal(t, int64(0), v.Table.Pot)
	assert.Equal(t, "", v.Table.DealerName)
	assert.Nil(t, v.Table.Seats[seating.Left])
	assert.Equal(t, int64(230), v.Table.Seats[seating.Bottom].Stack)
}

func TestOnStateLeavesPrivateUntouched(t *testing.T) {
	r := NewReconciler("me", nil)
	r.OnPrivate(&game.PrivateState{
		Hand:    []string{aceSpades, kingSpades},
		Options: game.ActionCapabilities{Fold: true, Check: true},
	})
	r.OnState(stateWithPlayers(fourPlayers()))

	v := r.View()
	require.NotNil(t, v.Private)
	assert.Equal(t, 2, len(v.Private.Hand))
	assert.True(t, v.Private.Options.Check)
}

func TestOnPrivateHand(t *testing.T) {
	r := NewReconciler("me", nil)
	r.OnPrivate(&game.PrivateState{Hand: []string{aceSpades, kingSpades}})

	v := r.View()
	require.NotNil(t, v.Private)
	require.Equal(t, 2, len(v.Private.Hand))
	assert.Equal(t, "As", v.Private.Hand[0].String())
	assert.Equal(t, "Ks", v.Private.Hand[1].String())
}

func TestOnPrivateEmptyOptionsKeepLastKnown(t *testing.T) {
	r := NewReconciler("me", nil)
	r.OnPrivate(&game.PrivateState{
		Hand:    []string{aceSpades, kingSpades},
		Options: game.ActionCapabilities{Fold: true, Call: true, ToCall: 25},
	})
	// Between hands the server sends no options. The buttons keep their
	// last-known labels; the hand is still replaced wholesale.
	r.OnPrivate(&game.PrivateState{})

	v := r.View()
	assert.Equal(t, 0, len(v.Private.Hand))
	assert.True(t, v.Private.Options.Call)
	assert.Equal(t, int64(25), v.Private.Options.ToCall)
}

func TestOnShowdownBeforeStateIsNoop(t *testing.T) {
	r := NewReconciler("me", nil)
	r.OnShowdown(&game.Showdown{
		Winners: []string{"sid-3"},
		Players: map[string]game.ShowdownPlayer{
			"sid-3": {Name: "me", Hand: []string{aceSpades, kingSpades}},
		},
	})
	assert.Nil(t, r.View().Reveal)
	assert.Nil(t, r.View().Table)
}

func TestOnShowdownAugmentsSeats(t *testing.T) {
	r := NewReconciler("me", nil)
	r.OnState(stateWithPlayers(fourPlayers()))
	r.OnShowdown(&game.Showdown{
		Winners: []string{"sid-1"},
		Players: map[string]game.ShowdownPlayer{
			"sid-1": {
				Name:  "alice",
				Hand:  []string{aceSpades, kingSpades},
				Best5: []string{aceSpades, kingSpades, aceHearts, twoHearts, fiveDiam},
			},
		},
		Message: "alice wins 60 at showdown",
	})

	v := r.View()
	require.NotNil(t, v.Reveal)

	// Seat labels aren't destroyed: the table snapshot is untouched.
	assert.Equal(t, int64(190), v.Table.Seats[seating.Left].Stack)

	revealed, ok := v.SeatRevealed(seating.Left)
	require.True(t, ok)
	assert.Equal(t, 2, len(revealed.Hand))
	assert.Equal(t, 5, len(revealed.Best5))
	assert.True(t, v.SeatIsWinner(seating.Left))

	// A seat whose participant is absent from the reveal map is left as-is.
	_, ok = v.SeatRevealed(seating.Top)
	assert.False(t, ok)
	assert.False(t, v.SeatIsWinner(seating.Top))
}

func TestNextStateClearsReveal(t *testing.T) {
	r := NewReconciler("me", nil)
	r.OnState(stateWithPlayers(fourPlayers()))
	r.OnShowdown(&game.Showdown{
		Winners: []string{"sid-1"},
		Players: map[string]game.ShowdownPlayer{
			"sid-1": {Name: "alice", Hand: []string{aceSpades, kingSpades}},
		},
	})
	require.NotNil(t, r.View().Reveal)

	r.OnState(stateWithPlayers(fourPlayers()))
	assert.Nil(t, r.View().Reveal)
}

func TestOnTimerTouchesOnlyTimerAndTurn(t *testing.T) {
	r := NewReconciler("me", nil)
	r.OnState(stateWithPlayers(fourPlayers()))
	potBefore := r.View().Table.Pot

	r.OnTimer(&game.Timer{Remaining: 12, CurrentTurnName: "me"})

	v := r.View()
	assert.Equal(t, 12, v.Timer.Remaining)
	assert.True(t, v.IsMyTurn())
	assert.Equal(t, potBefore, v.Table.Pot)
	assert.Equal(t, "alice", v.Table.Seats[seating.Left].Name)
}

func TestTurnIdentityMostRecentWriterWins(t *testing.T) {
	r := NewReconciler("me", nil)
	r.OnState(stateWithPlayers(fourPlayers()))
	assert.Equal(t, "alice", r.View().CurrentTurnName)

	r.OnTimer(&game.Timer{Remaining: 9, CurrentTurnName: "me"})
	assert.True(t, r.View().IsMyTurn())

	r.OnState(stateWithPlayers(fourPlayers()))
	assert.Equal(t, "alice", r.View().CurrentTurnName)
}

func TestTimerBeforeAnyStateIsTolerated(t *testing.T) {
	r := NewReconciler("me", nil)
	r.OnTimer(&game.Timer{Remaining: 30, CurrentTurnName: "bob"})
	assert.Equal(t, 30, r.View().Timer.Remaining)
	assert.Nil(t, r.View().Table)
}

func TestVersionBumpsOnChange(t *testing.T) {
	r := NewReconciler("me", nil)
	v0 := r.View().Version()
	r.OnState(stateWithPlayers(fourPlayers()))
	v1 := r.View().Version()
	assert.True(t, v1 > v0)

	// A dropped showdown does not produce a new frame.
	r2 := NewReconciler("me", nil)
	r2.OnShowdown(&game.Showdown{})
	assert.Equal(t, uint64(0), r2.View().Version())
}
