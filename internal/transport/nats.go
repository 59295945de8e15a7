package transport

import (
	"fmt"

	jsoniter "github.com/json-iterator/go"
	natsgo "github.com/nats-io/nats.go"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"voyager.com/tableclient/internal/game"
	"voyager.com/tableclient/logging"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// NatsTransport consumes the table's NATS subjects. Public messages arrive
// on per-kind subjects; private state arrives on a session-keyed subject.
// All intents go out on the table's player subject wrapped in an Envelope.
type NatsTransport struct {
	logger    *zerolog.Logger
	nc        *natsgo.Conn
	tableCode string
	sessionID string
	events    chan Event
	subs      []*natsgo.Subscription
}

func stateSubject(code string) string {
	return fmt.Sprintf("table.%s.state", code)
}

func showdownSubject(code string) string {
	return fmt.Sprintf("table.%s.showdown", code)
}

func timerSubject(code string) string {
	return fmt.Sprintf("table.%s.timer", code)
}

func chatSubject(code string) string {
	return fmt.Sprintf("table.%s.chat", code)
}

func errorSubject(code string) string {
	return fmt.Sprintf("table.%s.error", code)
}

func privateSubject(code string, sessionID string) string {
	return fmt.Sprintf("table.%s.private.%s", code, sessionID)
}

func playerSubject(code string) string {
	return fmt.Sprintf("table.%s.player", code)
}

// NewNatsTransport connects to the NATS server and subscribes to the table
// subjects for the given session.
func NewNatsTransport(natsURL string, tableCode string, sessionID string, logger *zerolog.Logger) (*NatsTransport, error) {
	if logger == nil {
		logger = logging.GetZeroLogger("transport::nats", nil)
	}
	logger.Info().Str(logging.TableCodeKey, tableCode).
		Msgf("Connecting to NATS server at %s", natsURL)
	nc, err := natsgo.Connect(natsURL)
	if err != nil {
		return nil, errors.Wrapf(err, "Error connecting to NATS server [%s]", natsURL)
	}

	t := &NatsTransport{
		logger:    logger,
		nc:        nc,
		tableCode: tableCode,
		sessionID: sessionID,
		events:    make(chan Event, eventBufferSize),
	}

	subjects := map[string]string{
		game.MsgTableState: stateSubject(tableCode),
		game.MsgShowdown:   showdownSubject(tableCode),
		game.MsgTimer:      timerSubject(tableCode),
		game.MsgChat:       chatSubject(tableCode),
		game.MsgError:      errorSubject(tableCode),
		game.MsgPrivate:    privateSubject(tableCode, sessionID),
	}
	for msgType, subject := range subjects {
		mt := msgType
		sub, err := nc.Subscribe(subject, func(msg *natsgo.Msg) {
			t.events <- Event{Type: mt, Data: msg.Data}
		})
		if err != nil {
			nc.Close()
			return nil, errors.Wrapf(err, "Could not subscribe to subject [%s]", subject)
		}
		t.subs = append(t.subs, sub)
	}
	return t, nil
}

func (t *NatsTransport) Events() <-chan Event {
	return t.events
}

func (t *NatsTransport) Send(msgType string, payload interface{}) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return errors.Wrapf(err, "Could not marshal %s payload", msgType)
	}
	env, err := json.Marshal(game.Envelope{Type: msgType, Data: data})
	if err != nil {
		return errors.Wrapf(err, "Could not marshal %s envelope", msgType)
	}
	err = t.nc.Publish(playerSubject(t.tableCode), env)
	if err != nil {
		return errors.Wrapf(err, "Could not publish %s message", msgType)
	}
	return nil
}

func (t *NatsTransport) Close() error {
	for _, sub := range t.subs {
		if err := sub.Unsubscribe(); err != nil {
			t.logger.Warn().Err(err).Msg("Error while unsubscribing")
		}
	}
	t.nc.Close()
	return nil
}
