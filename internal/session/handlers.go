package session

import (
	jsoniter "github.com/json-iterator/go"
	"voyager.com/tableclient/internal/action"
	"voyager.com/tableclient/internal/game"
	"voyager.com/tableclient/internal/transport"
	"voyager.com/tableclient/internal/ui"
	"voyager.com/tableclient/logging"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// processEvent dispatches one inbound message. A failure to process one
// event never stops the loop; the message is logged and dropped.
func (s *Session) processEvent(ev transport.Event) {
	if s.config.PrintStateMsg {
		s.logger.Info().Str(logging.MsgTypeKey, ev.Type).
			Msgf("Received message %s", string(ev.Data))
	}
	switch ev.Type {
	case game.MsgTableState:
		s.onTableState(ev.Data)
	case game.MsgPrivate:
		s.onPrivate(ev.Data)
	case game.MsgShowdown:
		s.onShowdown(ev.Data)
	case game.MsgTimer:
		s.onTimer(ev.Data)
	case game.MsgChat:
		s.onChat(ev.Data)
	case game.MsgError:
		s.onError(ev.Data)
	default:
		s.logger.Debug().Str(logging.MsgTypeKey, ev.Type).Msg("Ignoring unknown message type")
	}
}

func (s *Session) onTableState(data []byte) {
	var msg game.TableState
	if err := json.Unmarshal(data, &msg); err != nil {
		s.logger.Error().Err(err).Msgf("Could not unmarshal state message [%s]", string(data))
		return
	}
	if msg.MessageID != "" {
		if s.serverLastMsgIDs.Contains(msg.MessageID) {
			s.logger.Debug().Msgf("Duplicate state message [%s]", msg.MessageID)
			return
		}
		s.serverLastMsgIDs.Push(msg.MessageID)
	}

	s.reconciler.OnState(&msg)
	s.bindActionsOnce()
	s.syncTurnState(true)
	s.render()
}

func (s *Session) onPrivate(data []byte) {
	var msg game.PrivateState
	if err := json.Unmarshal(data, &msg); err != nil {
		s.logger.Error().Err(err).Msgf("Could not unmarshal private message [%s]", string(data))
		return
	}
	s.reconciler.OnPrivate(&msg)
	s.render()
}

func (s *Session) onShowdown(data []byte) {
	var msg game.Showdown
	if err := json.Unmarshal(data, &msg); err != nil {
		s.logger.Error().Err(err).Msgf("Could not unmarshal showdown message [%s]", string(data))
		return
	}
	s.reconciler.OnShowdown(&msg)
	s.render()
}

func (s *Session) onTimer(data []byte) {
	var msg game.Timer
	if err := json.Unmarshal(data, &msg); err != nil {
		s.logger.Error().Err(err).Msgf("Could not unmarshal timer message [%s]", string(data))
		return
	}
	s.reconciler.OnTimer(&msg)
	s.syncTurnState(false)
	s.render()
}

// onChat appends to the transcript. The server may send either a structured
// {user, msg} payload or a plain announcement string.
func (s *Session) onChat(data []byte) {
	var msg game.Chat
	if err := json.Unmarshal(data, &msg); err == nil && msg.Msg != "" {
		s.appendChatLine(msg.User + ": " + msg.Msg)
		return
	}
	var plain string
	if err := json.Unmarshal(data, &plain); err == nil && plain != "" {
		s.appendChatLine(plain)
		return
	}
	s.logger.Debug().Msgf("Ignoring unrecognized chat payload [%s]", string(data))
}

func (s *Session) appendChatLine(line string) {
	if s.surface == nil || !s.surface.Has(ui.RegionChat) {
		return
	}
	s.surface.AppendLine(ui.RegionChat, line)
	s.flush()
}

// onError logs the server-reported problem. It is diagnostic only and never
// interrupts rendering.
func (s *Session) onError(data []byte) {
	var msg game.ErrorPayload
	if err := json.Unmarshal(data, &msg); err != nil {
		s.logger.Error().Msgf("Server error: %s", string(data))
		return
	}
	text := msg.Message
	if text == "" {
		text = msg.Chat
	}
	s.logger.Error().Msgf("Server error: %s", text)
}

// bindActionsOnce establishes the click bindings on the first public
// snapshot, and never again, no matter how many state messages arrive.
func (s *Session) bindActionsOnce() {
	if s.actionsBound {
		return
	}
	s.actionsBound = true
}

// syncTurnState keeps the turn state machine aligned with the most recent
// turn identity. An authoritative snapshot that still holds the turn on the
// local player after an action went out re-arms the turn: the server
// rejected or never saw the action, and the player must be able to act
// again. Timer ticks never re-arm, so a tick arriving right after a send
// cannot defeat the duplicate-send protection.
func (s *Session) syncTurnState(authoritative bool) {
	myTurn := s.View().IsMyTurn()
	state := s.sm.Current()
	switch {
	case myTurn && state == SessionState__WATCHING:
		s.event(SessionEvent__YOUR_TURN)
	case myTurn && authoritative && state == SessionState__ACTED_WAITING_FOR_TURN:
		s.event(SessionEvent__YOUR_TURN)
	case !myTurn && state != SessionState__WATCHING:
		s.event(SessionEvent__TURN_PASSED)
	}
}

func (s *Session) render() {
	if s.surface == nil {
		return
	}
	ui.Render(s.View(), s.surface)
	s.flush()
}

// processClick turns a button activation into an outgoing intent. Clicks
// are ignored before the buttons are bound, outside the player's turn, and
// after an action has already been sent for this turn.
func (s *Session) processClick(id action.ButtonID) {
	if !s.actionsBound {
		s.logger.Debug().Msg("Ignoring click: buttons not bound yet")
		return
	}
	if s.sm.Current() != SessionState__MY_TURN {
		s.logger.Debug().Msgf("Ignoring click in state %s", s.sm.Current())
		return
	}
	v := s.View()
	var caps game.ActionCapabilities
	if v.Private != nil {
		caps = v.Private.Options
	}
	intent, ok := action.Intent(id, caps)
	if !ok {
		return
	}
	if err := s.transport.Send(game.MsgAction, intent); err != nil {
		s.logger.Error().Err(err).Msgf("Could not send %s action", intent.Type)
		return
	}
	s.event(SessionEvent__SEND_ACTION)
}

func (s *Session) processChatSend(msg string) {
	err := s.transport.Send(game.MsgChat, game.Chat{User: s.config.Name, Msg: msg})
	if err != nil {
		s.logger.Error().Err(err).Msg("Could not send chat message")
	}
}
