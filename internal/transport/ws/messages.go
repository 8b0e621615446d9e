package ws

import (
	"time"

	"undercover/internal/app"
	"undercover/internal/domain"
)

// MessageType represents the type of WebSocket message
type MessageType string

// Client → Server message types
const (
	MsgPing     MessageType = "ping"
	MsgSnapshot MessageType = "snapshot"
)

// Server → Client message types
const (
	MsgConnected MessageType = "connected"
	MsgState     MessageType = "state"
	MsgTimer     MessageType = "timer"
	MsgHint      MessageType = "hint"
	MsgError     MessageType = "error"
	MsgPong      MessageType = "pong"
)

// ClientMessage represents a message from client to server
type ClientMessage struct {
	Type MessageType `json:"type"`
}

// ServerMessage represents a message from server to client
type ServerMessage struct {
	Type      MessageType `json:"type"`
	Payload   interface{} `json:"payload,omitempty"`
	Timestamp string      `json:"timestamp"`
}

// NewServerMessage creates a new server message with current timestamp
func NewServerMessage(msgType MessageType, payload interface{}) *ServerMessage {
	return &ServerMessage{
		Type:      msgType,
		Payload:   payload,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
}

// ConnectedPayload is the payload for connected message
type ConnectedPayload struct {
	ClientID  string       `json:"clientId"`
	SessionID string       `json:"sessionId"`
	State     app.Snapshot `json:"state"`
}

// StatePayload carries the session view after a transition
type StatePayload struct {
	Event domain.EventType `json:"event"`
	State interface{}      `json:"state"`
}

// ErrorPayload is the payload for error message
type ErrorPayload struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// messageForEvent maps a session event onto the wire message sent to devices
func messageForEvent(event *domain.GameEvent) *ServerMessage {
	switch event.Type {
	case domain.EventTimerTick:
		return NewServerMessage(MsgTimer, event.Payload)
	case domain.EventHintAdded:
		return NewServerMessage(MsgHint, event.Payload)
	case domain.EventError:
		return NewServerMessage(MsgError, event.Payload)
	default:
		return NewServerMessage(MsgState, &StatePayload{Event: event.Type, State: event.Payload})
	}
}
