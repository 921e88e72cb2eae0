package apperror

import "errors"

var (
	ErrAlreadyQueuedOrPlaying = errors.New("player is already queued or playing")
	ErrDuplicateSession       = errors.New("player is already in a session")
	ErrNotYourTurn            = errors.New("it's not your turn")
	ErrIllegalMove            = errors.New("illegal move")
	ErrUnknownSession         = errors.New("session not found")
	ErrGameFinished           = errors.New("game is already finished")
)
