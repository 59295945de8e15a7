package seating

// Seat is one of the four fixed spatial slots around the table.
type Seat int

const (
	Bottom Seat = iota
	Left
	Top
	Right
)

// NumSeats is the table capacity. Participants beyond the capacity are not
// seated (documented limit, not an error).
const NumSeats = 4

var seatNames = map[Seat]string{
	Bottom: "bottom",
	Left:   "left",
	Top:    "top",
	Right:  "right",
}

func (s Seat) String() string {
	return seatNames[s]
}

// AllSeats lists every seat in display order.
func AllSeats() []Seat {
	return []Seat{Bottom, Left, Top, Right}
}

// guestSeats is the assignment order for non-local participants.
var guestSeats = []Seat{Left, Top, Right}

// Participant is one remote player as described by the server.
type Participant struct {
	SessionID string
	Name      string
	Stack     int64
	Bet       int64
	Folded    bool
}

// Layout maps each seat to its participant; an absent key means the seat is
// empty.
type Layout map[Seat]*Participant

// Resolve maps participants onto the four seats. The local player is always
// pinned to Bottom; everyone else fills Left, Top, Right in iteration order.
// If the local player is not among the participants (spectating, or
// mid-reconnect), Bottom stays empty. Participants beyond three non-local
// players are silently dropped from seating.
//
// The result is deterministic for a fixed input order. The upstream player
// collection is unordered by contract, so callers must not assume seat
// stability across updates beyond the Bottom pin.
func Resolve(localName string, participants []Participant) Layout {
	layout := make(Layout)
	nextGuest := 0
	for i := range participants {
		p := participants[i]
		if p.Name == localName && layout[Bottom] == nil {
			layout[Bottom] = &p
			continue
		}
		if nextGuest < len(guestSeats) {
			layout[guestSeats[nextGuest]] = &p
			nextGuest++
		}
	}
	return layout
}
