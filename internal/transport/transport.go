package transport

// Event is one inbound message, tagged with its kind. Events are delivered
// on a single channel in arrival order; the session's event loop consumes
// them one at a time.
type Event struct {
	Type string
	Data []byte
}

// Transport is the persistent connection to the table server. Connection
// lifecycle (handshake, reconnection) lives behind this boundary; the
// presentation layer only consumes ordered events and sends intents.
type Transport interface {
	// Events returns the inbound event channel. The channel is never
	// closed by the transport; callers stop via their own signal.
	Events() <-chan Event

	// Send publishes one outgoing message of the given type.
	Send(msgType string, payload interface{}) error

	Close() error
}

const eventBufferSize = 64
