package websocket

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/rocketscienceinc/chessmate-backend/internal/entity"
	"github.com/rocketscienceinc/chessmate-backend/internal/matchmaking"
)

var errMissingField = errors.New("missing required field")

// Message represents a WebSocket message with an action type and a payload.
type Message struct {
	Action  string          `json:"action"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// MovePayload is the inbound payload of the "move" action.
type MovePayload struct {
	Move *entity.Move `json:"move"`
}

// EventPayload is the outbound payload of every coordinator event.
type EventPayload struct {
	GameID string `json:"gameId,omitempty"`
	FEN    string `json:"fen,omitempty"`
	Color  string `json:"color,omitempty"`
	Status string `json:"status,omitempty"`
}

func encodeEvent(event matchmaking.Event) ([]byte, error) {
	payload, err := json.Marshal(EventPayload{
		GameID: event.GameID,
		FEN:    event.FEN,
		Color:  event.Color,
		Status: event.Status,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal payload: %w", err)
	}

	message, err := json.Marshal(Message{
		Action:  event.Action,
		Payload: payload,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal message: %w", err)
	}

	return message, nil
}
