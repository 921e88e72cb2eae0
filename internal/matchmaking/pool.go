package matchmaking

import "github.com/rocketscienceinc/chessmate-backend/internal/apperror"

// WaitingPool holds at most one unmatched player awaiting an opponent.
// It is not safe for concurrent use on its own; the coordinator serializes
// all access.
type WaitingPool struct {
	waitingID string
}

func NewWaitingPool() *WaitingPool {
	return &WaitingPool{}
}

// Offer - stores the player as the sole waiting entry. Fails if any player
// is already waiting, which also closes the duplicate-queue self-match hole.
func (that *WaitingPool) Offer(playerID string) error {
	if that.waitingID != "" {
		return apperror.ErrAlreadyQueuedOrPlaying
	}

	that.waitingID = playerID

	return nil
}

// TakeIfPresent - atomically returns and clears the waiting entry.
func (that *WaitingPool) TakeIfPresent() (string, bool) {
	if that.waitingID == "" {
		return "", false
	}

	playerID := that.waitingID
	that.waitingID = ""

	return playerID, true
}

// Cancel - removes the waiting entry only if it is exactly this player.
// Safe to call redundantly.
func (that *WaitingPool) Cancel(playerID string) bool {
	if that.waitingID != playerID || playerID == "" {
		return false
	}

	that.waitingID = ""

	return true
}

func (that *WaitingPool) Contains(playerID string) bool {
	return playerID != "" && that.waitingID == playerID
}
