package game

import "encoding/json"

// Inbound message types pushed by the server over the table channels.
const (
	MsgTableState string = "state"
	MsgPrivate    string = "private"
	MsgShowdown   string = "showdown"
	MsgTimer      string = "timer"
	MsgChat       string = "chat"
	MsgError      string = "error"
)

// Outbound message types sent by the client.
const (
	MsgJoin   string = "join"
	MsgAction string = "action"
)

// Player action types.
const (
	ActionCheck string = "check"
	ActionCall  string = "call"
	ActionBet   string = "bet"
	ActionRaise string = "raise"
	ActionFold  string = "fold"
)

// Envelope wraps every message on the wire with its type tag. Data stays raw
// until the type is known.
type Envelope struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data"`
}

// PlayerState is the public per-player record inside a table state message.
type PlayerState struct {
	Name   string `json:"name"`
	Stack  int64  `json:"stack"`
	Bet    int64  `json:"bet"`
	Folded bool   `json:"folded"`
}

// TableState is the public snapshot broadcast to every client. The server
// owns every field; the client replaces its copy wholesale on each arrival.
type TableState struct {
	Players         map[string]PlayerState `json:"players"`
	Waiting         []string               `json:"waiting"`
	CommunityCards  []string               `json:"community_cards"`
	Pot             int64                  `json:"pot"`
	Phase           string                 `json:"phase"`
	CurrentTurnName string                 `json:"current_turn_name"`
	DealerName      string                 `json:"dealer_name"`
	SmallBlind      int64                  `json:"small_blind"`
	BigBlind        int64                  `json:"big_blind"`
	LastShowdown    string                 `json:"last_showdown"`
	MessageID       string                 `json:"message_id"`
}

// ActionCapabilities is the server-declared set of legal actions for the
// local player. The client never computes legality on its own; absent fields
// default to false/zero.
type ActionCapabilities struct {
	Fold      bool  `json:"fold"`
	Check     bool  `json:"check"`
	Call      bool  `json:"call"`
	Bet       bool  `json:"bet"`
	Raise     bool  `json:"raise"`
	ToCall    int64 `json:"to_call"`
	BetAmount int64 `json:"bet_amount"`
	RaiseBy   int64 `json:"raise_by"`
}

// Empty reports whether the server sent no options at all (between hands or
// when it is not this player's turn).
func (a ActionCapabilities) Empty() bool {
	return a == ActionCapabilities{}
}

// PrivateState carries what only the local player may see.
type PrivateState struct {
	Hand    []string           `json:"hand"`
	Options ActionCapabilities `json:"options"`
}

// ShowdownPlayer is one participant's reveal at hand conclusion.
type ShowdownPlayer struct {
	Name  string   `json:"name"`
	Hand  []string `json:"hand"`
	Best5 []string `json:"best5"`
}

// Showdown is the transient reveal overlay broadcast at the end of a hand.
type Showdown struct {
	Winners        []string                  `json:"winners"`
	Players        map[string]ShowdownPlayer `json:"players"`
	CommunityCards []string                  `json:"community_cards"`
	Message        string                    `json:"message"`
}

// Timer is the per-second countdown tick.
type Timer struct {
	Remaining       int    `json:"remaining"`
	CurrentTurnName string `json:"current_turn_name"`
}

// Join is sent once at session start.
type Join struct {
	Name string `json:"name"`
}

// Action is an outgoing player intent.
type Action struct {
	Type   string `json:"type"`
	Amount int64  `json:"amount,omitempty"`
}

// Chat is shared with the transport by the chat feature.
type Chat struct {
	User string `json:"user"`
	Msg  string `json:"msg"`
}

// ErrorPayload is a transport-level error message. It is logged, never
// surfaced as fatal.
type ErrorPayload struct {
	Chat    string `json:"chat"`
	Message string `json:"message"`
}
