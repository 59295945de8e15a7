package session

const (
	SessionState__WATCHING               string = "WATCHING"
	SessionState__MY_TURN                string = "MY_TURN"
	SessionState__ACTED_WAITING_FOR_TURN string = "ACTED_WAITING_FOR_TURN"

	SessionEvent__YOUR_TURN   string = "YOUR_TURN"
	SessionEvent__SEND_ACTION string = "SEND_ACTION"
	SessionEvent__TURN_PASSED string = "TURN_PASSED"
)
