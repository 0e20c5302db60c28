package game

import (
	"encoding/json"
	"fmt"
	"time"
)

// Message type for WebSocket communication between a board and the server.
type MessageType string

const (
	MsgTypeWatch   MessageType = "watch"   // Client wants to follow a board
	MsgTypePublish MessageType = "publish" // Client (the generator screen) pushes a new snapshot
	MsgTypeState   MessageType = "state"   // Server sends the latest snapshot of the board
	MsgTypeError   MessageType = "error"   // Server sends an error message
)

// WsMessage represents a WebSocket message.
type WsMessage struct {
	Type    MessageType     `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// NewWsMessage creates a new WsMessage with a marshaled payload.
func NewWsMessage(msgType MessageType, payload interface{}) (WsMessage, error) {
	if payload == nil {
		return WsMessage{Type: msgType}, nil
	}
	payloadBytes, err := json.Marshal(payload)
	if err != nil {
		return WsMessage{}, fmt.Errorf("failed to marshal payload: %w", err)
	}
	return WsMessage{
		Type:    msgType,
		Payload: payloadBytes,
	}, nil
}

// Parse unmarshals the message payload into one of the message types (WatchMessage, StateMessage, etc.)
func (m *WsMessage) Parse() (any, error) {
	var target any
	switch m.Type {
	case MsgTypeWatch:
		target = &WatchMessage{}
	case MsgTypePublish:
		target = &PublishMessage{}
	case MsgTypeState:
		target = &StateMessage{}
	case MsgTypeError:
		target = &ErrorMessage{}
	default:
		return nil, fmt.Errorf("unknown message type: %s", m.Type)
	}

	if len(m.Payload) == 0 {
		return target, nil
	}

	err := json.Unmarshal(m.Payload, target)
	return target, err
}

// BoardSnapshot is what a projector board shows: the shared batch and the display toggles.
type BoardSnapshot struct {
	BoardID     string    `json:"board_id"`
	Batch       *Batch    `json:"batch,omitempty"`
	ShowWinners bool      `json:"show_winners"`
	ShowHearts  bool      `json:"show_hearts"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// WatchMessage is the payload for MsgTypeWatch
type WatchMessage struct {
	BoardID string `json:"board_id"`
}

// PublishMessage is the payload for MsgTypePublish
type PublishMessage struct {
	Snapshot BoardSnapshot `json:"snapshot"`
}

// StateMessage is the payload for MsgTypeState
type StateMessage struct {
	Board BoardSnapshot `json:"board"`
}

// ErrorMessage is the payload for MsgTypeError
type ErrorMessage struct {
	Message string `json:"message"`
}
