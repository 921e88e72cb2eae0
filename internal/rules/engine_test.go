package rules

import (
	"testing"

	"github.com/rocketscienceinc/chessmate-backend/internal/apperror"
	"github.com/rocketscienceinc/chessmate-backend/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const startingFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// black king alone on h8, boxed in by the white queen and king
const stalemateFEN = "7k/5Q2/6K1/8/8/8/8/8 b - - 0 1"

func TestEngine_InitialFEN(t *testing.T) {
	// Given: a fresh engine
	engine := New()

	// Then: the initial position is the standard chess start
	assert.Equal(t, startingFEN, engine.InitialFEN())
}

func TestEngine_SideToMove(t *testing.T) {
	engine := New()

	t.Run("White moves first", func(t *testing.T) {
		// When: asking whose turn it is in the starting position
		side, err := engine.SideToMove(engine.InitialFEN())

		// Then: it should be white
		require.NoError(t, err)
		assert.Equal(t, entity.ColorWhite, side)
	})

	t.Run("Fails on garbage position", func(t *testing.T) {
		// When: asking about an unparseable position
		_, err := engine.SideToMove("not a position")

		// Then: it should return an error
		require.Error(t, err)
	})
}

func TestEngine_ApplyMove(t *testing.T) {
	engine := New()

	t.Run("A legal opening move flips the side to move", func(t *testing.T) {
		// Given: the starting position
		initial := engine.InitialFEN()

		// When: white plays e2e4
		newFEN, err := engine.ApplyMove(initial, entity.Move{From: "e2", To: "e4"})

		// Then: the position changed and black is to move
		require.NoError(t, err)
		assert.NotEqual(t, initial, newFEN)

		side, err := engine.SideToMove(newFEN)
		require.NoError(t, err)
		assert.Equal(t, entity.ColorBlack, side)
	})

	t.Run("An illegal move is rejected", func(t *testing.T) {
		// When: white tries to jump a pawn three squares
		_, err := engine.ApplyMove(engine.InitialFEN(), entity.Move{From: "e2", To: "e5"})

		// Then: the move is rejected as illegal
		assert.ErrorIs(t, err, apperror.ErrIllegalMove)
	})

	t.Run("A malformed move descriptor is rejected", func(t *testing.T) {
		// When: the move is not even a square pair
		_, err := engine.ApplyMove(engine.InitialFEN(), entity.Move{From: "zz", To: "??"})

		// Then: the move is rejected as illegal
		assert.ErrorIs(t, err, apperror.ErrIllegalMove)
	})

	t.Run("Promotion moves are accepted", func(t *testing.T) {
		// Given: a white pawn one step from the last rank
		fen := "8/P7/8/8/8/8/k6K/8 w - - 0 1"

		// When: the pawn promotes to a queen
		newFEN, err := engine.ApplyMove(fen, entity.Move{From: "a7", To: "a8", Promotion: "q"})

		// Then: the move is legal and black is to move
		require.NoError(t, err)

		side, err := engine.SideToMove(newFEN)
		require.NoError(t, err)
		assert.Equal(t, entity.ColorBlack, side)
	})
}

func TestEngine_TerminalStatus(t *testing.T) {
	engine := New()

	t.Run("The starting position is not terminal", func(t *testing.T) {
		// When: checking the starting position
		outcome, err := engine.TerminalStatus(engine.InitialFEN())

		// Then: the game is not over
		require.NoError(t, err)
		assert.False(t, outcome.Over)
	})

	t.Run("Fool's mate is a checkmate won by black", func(t *testing.T) {
		// Given: the fastest possible checkmate played from the start
		fen := engine.InitialFEN()
		moves := []entity.Move{
			{From: "f2", To: "f3"},
			{From: "e7", To: "e5"},
			{From: "g2", To: "g4"},
			{From: "d8", To: "h4"},
		}

		var err error
		for _, move := range moves {
			fen, err = engine.ApplyMove(fen, move)
			require.NoError(t, err)
		}

		// When: checking the final position
		outcome, err := engine.TerminalStatus(fen)

		// Then: black wins by checkmate
		require.NoError(t, err)
		assert.True(t, outcome.Over)
		assert.Equal(t, entity.ColorBlack, outcome.Winner)
		assert.Equal(t, "checkmate: black wins", outcome.Describe())
	})

	t.Run("A stalemated position is a draw", func(t *testing.T) {
		// When: checking a position where black has no legal move and no check
		outcome, err := engine.TerminalStatus(stalemateFEN)

		// Then: the game is drawn by stalemate
		require.NoError(t, err)
		assert.True(t, outcome.Over)
		assert.True(t, outcome.IsDraw())
		assert.Equal(t, "draw: stalemate", outcome.Describe())
	})
}
