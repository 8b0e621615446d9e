package domain

import "time"

// EventType represents the type of session event
type EventType string

const (
	EventStateChanged  EventType = "STATE_CHANGED"
	EventRoundStarted  EventType = "ROUND_STARTED"
	EventRevealStarted EventType = "REVEAL_STARTED"
	EventRoleRevealed  EventType = "ROLE_REVEALED"
	EventTimerTick     EventType = "TIMER_TICK"
	EventTimerExpired  EventType = "TIMER_EXPIRED"
	EventHintAdded     EventType = "HINT_ADDED"
	EventSessionReset  EventType = "SESSION_RESET"
	EventError         EventType = "ERROR"
)

// GameEvent represents something that happened in a session
type GameEvent struct {
	Type      EventType   `json:"type"`
	SessionID string      `json:"sessionId"`
	Payload   interface{} `json:"payload,omitempty"`
	Timestamp time.Time   `json:"timestamp"`
}

// NewEvent creates a new session event
func NewEvent(eventType EventType, sessionID string, payload interface{}) *GameEvent {
	return &GameEvent{
		Type:      eventType,
		SessionID: sessionID,
		Payload:   payload,
		Timestamp: time.Now(),
	}
}

// Payload types for different events

// TimerPayload is sent on every countdown tick
type TimerPayload struct {
	TimeLeft int  `json:"timeLeft"`
	Expired  bool `json:"expired"`
}

// HintPayload is sent when a discussion prompt is added
type HintPayload struct {
	Hint  string `json:"hint"`
	Count int    `json:"count"`
}

// ErrorPayload is sent when an asynchronous operation fails
type ErrorPayload struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
