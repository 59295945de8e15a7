package action

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"voyager.com/tableclient/internal/game"
)

func TestCheckLabel(t *testing.T) {
	caps := game.ActionCapabilities{Fold: true, Check: true}
	b := Derive(caps, true)
	assert.Equal(t, "Check", b.CheckCall.Label)
	assert.True(t, b.CheckCall.Enabled)

	intent, ok := Intent(CheckCall, caps)
	require.True(t, ok)
	assert.Equal(t, game.ActionCheck, intent.Type)
}

func TestCallLabelWithAmount(t *testing.T) {
	caps := game.ActionCapabilities{Fold: true, Call: true, ToCall: 25}
	b := Derive(caps, true)
	assert.Equal(t, "Call 25", b.CheckCall.Label)

	intent, ok := Intent(CheckCall, caps)
	require.True(t, ok)
	assert.Equal(t, game.ActionCall, intent.Type)
}

func TestCallFallbackAmount(t *testing.T) {
	caps := game.ActionCapabilities{Call: true}
	b := Derive(caps, true)
	assert.Equal(t, "Call 10", b.CheckCall.Label)
}

func TestBetTakesPriorityOverRaise(t *testing.T) {
	caps := game.ActionCapabilities{Bet: true, Raise: true, BetAmount: 20, RaiseBy: 40}
	b := Derive(caps, true)
	assert.Equal(t, "Bet 20", b.BetRaise.Label)

	intent, ok := Intent(BetRaise, caps)
	require.True(t, ok)
	assert.Equal(t, game.ActionBet, intent.Type)
	assert.Equal(t, int64(20), intent.Amount)
}

func TestRaiseLabelAndIntent(t *testing.T) {
	caps := game.ActionCapabilities{Raise: true, RaiseBy: 40}
	b := Derive(caps, true)
	assert.Equal(t, "Raise +40", b.BetRaise.Label)
	assert.True(t, b.BetRaise.Enabled)

	intent, ok := Intent(BetRaise, caps)
	require.True(t, ok)
	assert.Equal(t, game.ActionRaise, intent.Type)
	assert.Equal(t, int64(40), intent.Amount)
}

func TestCheckCallDisabledEmitsNothing(t *testing.T) {
	caps := game.ActionCapabilities{Fold: true}
	b := Derive(caps, true)
	assert.False(t, b.CheckCall.Enabled)

	intent, ok := Intent(CheckCall, caps)
	assert.False(t, ok)
	assert.Nil(t, intent)
}

func TestBetRaiseDisabledEmitsNothing(t *testing.T) {
	caps := game.ActionCapabilities{Fold: true, Check: true}
	b := Derive(caps, true)
	assert.False(t, b.BetRaise.Enabled)

	intent, ok := Intent(BetRaise, caps)
	assert.False(t, ok)
	assert.Nil(t, intent)
}

func TestFoldAlwaysEmits(t *testing.T) {
	intent, ok := Intent(Fold, game.ActionCapabilities{})
	require.True(t, ok)
	assert.Equal(t, game.ActionFold, intent.Type)
	assert.Equal(t, int64(0), intent.Amount)
}

func TestTurnGateDisablesEverything(t *testing.T) {
	caps := game.ActionCapabilities{Fold: true, Check: true, Bet: true, BetAmount: 20}
	b := Derive(caps, false)
	assert.False(t, b.CheckCall.Enabled)
	assert.False(t, b.BetRaise.Enabled)
	assert.False(t, b.Fold.Enabled)

	// Labels are still derived so the row never blanks while waiting.
	assert.Equal(t, "Check", b.CheckCall.Label)
	assert.Equal(t, "Bet 20", b.BetRaise.Label)
}
