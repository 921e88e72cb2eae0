package rules

import (
	"fmt"

	"github.com/notnil/chess"
	"github.com/rocketscienceinc/chessmate-backend/internal/apperror"
	"github.com/rocketscienceinc/chessmate-backend/internal/entity"
)

const (
	methodCheckmate = "checkmate"
	methodStalemate = "stalemate"
)

// Engine answers legality and terminal-state questions about chess
// positions. Positions travel as FEN strings, so the engine itself is
// stateless and every call is a pure computation.
type Engine struct{}

func New() *Engine {
	return &Engine{}
}

// InitialFEN - returns the standard starting position.
func (that *Engine) InitialFEN() string {
	return chess.NewGame().Position().String()
}

// ApplyMove - applies the move to the position and returns the resulting
// FEN. Returns apperror.ErrIllegalMove if the move is not legal in the
// position.
func (that *Engine) ApplyMove(fen string, move entity.Move) (string, error) {
	game, err := gameFromFEN(fen)
	if err != nil {
		return "", err
	}

	parsed, err := chess.UCINotation{}.Decode(game.Position(), move.UCI())
	if err != nil {
		return "", fmt.Errorf("%w: %s", apperror.ErrIllegalMove, move.UCI())
	}

	if err = game.Move(parsed); err != nil {
		return "", fmt.Errorf("%w: %s", apperror.ErrIllegalMove, move.UCI())
	}

	return game.Position().String(), nil
}

// SideToMove - reports which color moves next in the position.
func (that *Engine) SideToMove(fen string) (string, error) {
	game, err := gameFromFEN(fen)
	if err != nil {
		return "", err
	}

	if game.Position().Turn() == chess.White {
		return entity.ColorWhite, nil
	}

	return entity.ColorBlack, nil
}

// TerminalStatus - reports whether the position ends the game. The side to
// move is the one checkmated, so the winner is the opposite color.
func (that *Engine) TerminalStatus(fen string) (entity.Outcome, error) {
	game, err := gameFromFEN(fen)
	if err != nil {
		return entity.Outcome{}, err
	}

	position := game.Position()

	switch position.Status() {
	case chess.Checkmate:
		winner := entity.ColorWhite
		if position.Turn() == chess.White {
			winner = entity.ColorBlack
		}

		return entity.Outcome{Over: true, Winner: winner, Method: methodCheckmate}, nil
	case chess.Stalemate:
		return entity.Outcome{Over: true, Method: methodStalemate}, nil
	}

	if game.Outcome() == chess.Draw {
		return entity.Outcome{Over: true, Method: drawMethodName(game.Method())}, nil
	}

	return entity.Outcome{}, nil
}

func gameFromFEN(fen string) (*chess.Game, error) {
	option, err := chess.FEN(fen)
	if err != nil {
		return nil, fmt.Errorf("failed to parse position: %w", err)
	}

	return chess.NewGame(option), nil
}

func drawMethodName(method chess.Method) string {
	switch method {
	case chess.InsufficientMaterial:
		return "insufficient material"
	case chess.FivefoldRepetition:
		return "fivefold repetition"
	case chess.SeventyFiveMoveRule:
		return "seventy-five move rule"
	default:
		return "drawn position"
	}
}
