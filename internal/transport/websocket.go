package transport

import (
	"context"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"nhooyr.io/websocket"
	"voyager.com/tableclient/internal/game"
	"voyager.com/tableclient/logging"
)

// WsTransport speaks the single-socket wire: every message is an Envelope
// {type, data} in both directions.
type WsTransport struct {
	logger *zerolog.Logger
	conn   *websocket.Conn
	events chan Event
	ctx    context.Context
	cancel context.CancelFunc
}

// DialWs connects to the table's websocket endpoint and starts the read
// loop.
func DialWs(ctx context.Context, url string, logger *zerolog.Logger) (*WsTransport, error) {
	if logger == nil {
		logger = logging.GetZeroLogger("transport::ws", nil)
	}
	logger.Info().Msgf("Connecting to websocket endpoint %s", url)
	conn, _, err := websocket.Dial(ctx, url, nil)
	if err != nil {
		return nil, errors.Wrapf(err, "Error connecting to websocket endpoint [%s]", url)
	}

	loopCtx, cancel := context.WithCancel(context.Background())
	t := &WsTransport{
		logger: logger,
		conn:   conn,
		events: make(chan Event, eventBufferSize),
		ctx:    loopCtx,
		cancel: cancel,
	}
	go t.readLoop()
	return t, nil
}

func (t *WsTransport) readLoop() {
	for {
		_, data, err := t.conn.Read(t.ctx)
		if err != nil {
			if t.ctx.Err() == nil {
				t.logger.Error().Err(err).Msg("Websocket read failed; stopping event delivery")
			}
			return
		}
		var env game.Envelope
		if err := json.Unmarshal(data, &env); err != nil {
			// A malformed frame is dropped; the next one is processed
			// normally.
			t.logger.Error().Err(err).Msgf("Could not unmarshal envelope [%s]", string(data))
			continue
		}
		t.events <- Event{Type: env.Type, Data: env.Data}
	}
}

func (t *WsTransport) Events() <-chan Event {
	return t.events
}

func (t *WsTransport) Send(msgType string, payload interface{}) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return errors.Wrapf(err, "Could not marshal %s payload", msgType)
	}
	env, err := json.Marshal(game.Envelope{Type: msgType, Data: data})
	if err != nil {
		return errors.Wrapf(err, "Could not marshal %s envelope", msgType)
	}
	err = t.conn.Write(t.ctx, websocket.MessageText, env)
	if err != nil {
		return errors.Wrapf(err, "Could not write %s message", msgType)
	}
	return nil
}

func (t *WsTransport) Close() error {
	t.cancel()
	return t.conn.Close(websocket.StatusNormalClosure, "client going away")
}
