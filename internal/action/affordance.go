package action

import (
	"fmt"

	"voyager.com/tableclient/internal/game"
)

// DefaultChipUnit is the fallback magnitude when the server declares a
// capability without an amount. It matches the reference table's big blind.
const DefaultChipUnit int64 = 10

// ButtonID identifies one of the three action buttons.
type ButtonID int

const (
	CheckCall ButtonID = iota
	BetRaise
	Fold
)

// Button is the derived affordance for one button.
type Button struct {
	Label   string
	Enabled bool
}

// Buttons is the full derived button row.
type Buttons struct {
	CheckCall Button
	BetRaise  Button
	Fold      Button
}

func callAmount(caps game.ActionCapabilities) int64 {
	if caps.ToCall > 0 {
		return caps.ToCall
	}
	return DefaultChipUnit
}

func betAmount(caps game.ActionCapabilities) int64 {
	if caps.BetAmount > 0 {
		return caps.BetAmount
	}
	return DefaultChipUnit
}

func raiseAmount(caps game.ActionCapabilities) int64 {
	if caps.RaiseBy > 0 {
		return caps.RaiseBy
	}
	return DefaultChipUnit
}

// Derive maps the server-declared capability set to button labels and
// enabled flags. The capability set is the sole source of truth for
// legality; myTurn is a cross-cutting gate ANDed on top.
func Derive(caps game.ActionCapabilities, myTurn bool) Buttons {
	var b Buttons

	if caps.Check {
		b.CheckCall.Label = "Check"
	} else {
		b.CheckCall.Label = fmt.Sprintf("Call %d", callAmount(caps))
	}
	b.CheckCall.Enabled = (caps.Check || caps.Call) && myTurn

	if caps.Bet {
		b.BetRaise.Label = fmt.Sprintf("Bet %d", betAmount(caps))
		b.BetRaise.Enabled = myTurn
	} else if caps.Raise {
		b.BetRaise.Label = fmt.Sprintf("Raise +%d", raiseAmount(caps))
		b.BetRaise.Enabled = myTurn
	} else {
		b.BetRaise.Label = "Bet"
		b.BetRaise.Enabled = false
	}

	b.Fold.Label = "Fold"
	b.Fold.Enabled = myTurn

	return b
}

// Intent turns a button activation into the outgoing action message. The
// second return is false when the activation emits nothing (a disabled
// button).
func Intent(id ButtonID, caps game.ActionCapabilities) (*game.Action, bool) {
	switch id {
	case CheckCall:
		if caps.Check {
			return &game.Action{Type: game.ActionCheck}, true
		}
		if caps.Call {
			return &game.Action{Type: game.ActionCall}, true
		}
		return nil, false
	case BetRaise:
		if caps.Bet {
			return &game.Action{Type: game.ActionBet, Amount: betAmount(caps)}, true
		}
		if caps.Raise {
			return &game.Action{Type: game.ActionRaise, Amount: raiseAmount(caps)}, true
		}
		return nil, false
	case Fold:
		// Fold is always available on the player's turn.
		return &game.Action{Type: game.ActionFold}, true
	}
	return nil, false
}
