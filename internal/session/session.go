package session

import (
	"context"

	"github.com/looplab/fsm"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"
	"voyager.com/tableclient/internal/action"
	"voyager.com/tableclient/internal/game"
	"voyager.com/tableclient/internal/identity"
	"voyager.com/tableclient/internal/transport"
	"voyager.com/tableclient/internal/ui"
	"voyager.com/tableclient/internal/util"
	"voyager.com/tableclient/internal/view"
	"voyager.com/tableclient/logging"
)

const dedupeWindow = 10

// Config holds the configuration for one table session.
type Config struct {
	TableCode     string
	Name          string
	DeviceID      string
	ChatPerMinute int
	PrintStateMsg bool
}

// Session owns everything one connected client holds: the transport, the
// reconciler and its view, the render surface, and the turn state machine.
// All per-connection state lives here, including the bound-once flag for
// the action buttons. One session exists per connection and is discarded on
// disconnect.
type Session struct {
	logger *zerolog.Logger
	config Config

	transport  transport.Transport
	reconciler *view.Reconciler
	surface    ui.Surface
	store      identity.Store

	// turn state machine, gating duplicate action sends
	sm *fsm.FSM

	// actionsBound flips when the first public snapshot arrives; clicks
	// before that are ignored, and binding never happens twice.
	actionsBound bool
	actions      chan action.ButtonID
	chat         chan string
	chatLimiter  *rate.Limiter

	// Remember the most recent message IDs for deduplicating server pushes.
	serverLastMsgIDs *util.Queue

	joined bool
	end    chan bool
}

type flusher interface {
	Flush()
}

// NewSession wires a session from its collaborators. The transport is
// already connected; Start sends the join and begins the event loop.
func NewSession(conf Config, t transport.Transport, store identity.Store, surface ui.Surface, logger *zerolog.Logger) *Session {
	if logger == nil {
		l := logging.GetZeroLogger("session::session", nil).With().
			Str(logging.TableCodeKey, conf.TableCode).
			Str(logging.PlayerNameKey, conf.Name).Logger()
		logger = &l
	}
	chatPerMinute := conf.ChatPerMinute
	if chatPerMinute <= 0 {
		chatPerMinute = 20
	}
	s := &Session{
		logger:           logger,
		config:           conf,
		transport:        t,
		reconciler:       view.NewReconciler(conf.Name, logger),
		surface:          surface,
		store:            store,
		actions:          make(chan action.ButtonID, 4),
		chat:             make(chan string, 16),
		chatLimiter:      rate.NewLimiter(rate.Limit(float64(chatPerMinute)/60.0), 1),
		serverLastMsgIDs: util.NewQueue(dedupeWindow),
		end:              make(chan bool),
	}
	s.sm = fsm.NewFSM(
		SessionState__WATCHING,
		fsm.Events{
			{
				Name: SessionEvent__YOUR_TURN,
				Src:  []string{SessionState__WATCHING, SessionState__ACTED_WAITING_FOR_TURN},
				Dst:  SessionState__MY_TURN,
			},
			{
				Name: SessionEvent__SEND_ACTION,
				Src:  []string{SessionState__MY_TURN},
				Dst:  SessionState__ACTED_WAITING_FOR_TURN,
			},
			{
				Name: SessionEvent__TURN_PASSED,
				Src:  []string{SessionState__MY_TURN, SessionState__ACTED_WAITING_FOR_TURN},
				Dst:  SessionState__WATCHING,
			},
		},
		fsm.Callbacks{
			"enter_state": func(e *fsm.Event) { s.enterState(e) },
		},
	)
	return s
}

func (s *Session) enterState(e *fsm.Event) {
	if s.config.PrintStateMsg {
		s.logger.Info().Msgf("[%s] ===> [%s]", e.Src, e.Dst)
	}
}

func (s *Session) event(event string) {
	err := s.sm.Event(event)
	if err != nil {
		s.logger.Debug().Msgf("State machine ignored event %s: %s", event, err.Error())
	}
}

// View exposes the reconciled view for rendering and tests.
func (s *Session) View() *view.View {
	return s.reconciler.View()
}

// Start announces the player to the table and starts the event loop.
// The join message is sent exactly once per session.
func (s *Session) Start() error {
	if s.joined {
		return nil
	}
	err := s.transport.Send(game.MsgJoin, game.Join{Name: s.config.Name})
	if err != nil {
		return errors.Wrap(err, "Could not send join message")
	}
	s.joined = true
	go s.messageLoop()
	return nil
}

// Stop halts the event loop, clears the stored identity, and closes the
// transport. The session cannot be restarted.
func (s *Session) Stop() {
	close(s.end)
	if s.store != nil {
		if err := s.store.ClearName(context.Background()); err != nil {
			s.logger.Warn().Err(err).Msg("Could not clear stored identity")
		}
	}
	if err := s.transport.Close(); err != nil {
		s.logger.Warn().Err(err).Msg("Error while closing transport")
	}
}

// Click queues a button activation onto the session's event queue. Clicks
// arriving before the first public snapshot (buttons not yet bound) are
// dropped.
func (s *Session) Click(id action.ButtonID) {
	select {
	case s.actions <- id:
	default:
		// A full queue means the player is clicking faster than the loop
		// drains; extra clicks would only produce duplicate intents.
		s.logger.Debug().Msg("Dropping click: action queue full")
	}
}

// SendChat queues an outgoing chat line, throttled.
func (s *Session) SendChat(msg string) {
	if msg == "" {
		return
	}
	if !s.chatLimiter.Allow() {
		s.logger.Warn().Msg("Chat throttled")
		return
	}
	select {
	case s.chat <- msg:
	default:
		s.logger.Debug().Msg("Dropping chat: queue full")
	}
}

// messageLoop is the single cooperative event queue. Every inbound message
// and every local interaction is handled here, one at a time, so the view
// model needs no locking.
func (s *Session) messageLoop() {
	for {
		select {
		case <-s.end:
			return
		case ev := <-s.transport.Events():
			s.processEvent(ev)
		case id := <-s.actions:
			s.processClick(id)
		case msg := <-s.chat:
			s.processChatSend(msg)
		}
	}
}

func (s *Session) flush() {
	if f, ok := s.surface.(flusher); ok {
		f.Flush()
	}
}
