package websocket

import (
	"encoding/json"
	"fmt"
)

func (that *Server) handleFindGame(playerID string, _ json.RawMessage) error {
	that.coordinator.FindGame(playerID)
	return nil
}

func (that *Server) handleCancelFind(playerID string, _ json.RawMessage) error {
	that.coordinator.CancelFind(playerID)
	return nil
}

func (that *Server) handleMove(playerID string, payload json.RawMessage) error {
	var payloadReq MovePayload

	if err := json.Unmarshal(payload, &payloadReq); err != nil {
		return fmt.Errorf("failed to unmarshal payload: %w", err)
	}

	if payloadReq.Move == nil {
		return fmt.Errorf("%w: move", errMissingField)
	}

	that.coordinator.MakeMove(playerID, *payloadReq.Move)

	return nil
}
