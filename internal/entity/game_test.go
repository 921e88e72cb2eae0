package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGame(t *testing.T) {
	t.Run("Assigns white and black and marks the game ongoing", func(t *testing.T) {
		// Given: two unassigned players
		white := &Player{ID: "player1"}
		black := &Player{ID: "player2"}

		// When: creating a game
		game := NewGame("game-player1-player2", "some-fen", white, black)

		// Then: colors and game references are fixed on both players
		assert.Equal(t, StatusOngoing, game.Status)
		assert.Equal(t, "some-fen", game.FEN)
		assert.Equal(t, ColorWhite, white.Color)
		assert.Equal(t, ColorBlack, black.Color)
		assert.Equal(t, game.ID, white.GameID)
		assert.Equal(t, game.ID, black.GameID)
		assert.Len(t, game.Players, 2)
	})
}

func TestGame_PlayerColor(t *testing.T) {
	game := NewGame("g1", "fen", &Player{ID: "a"}, &Player{ID: "b"})

	t.Run("Returns the assigned color for a participant", func(t *testing.T) {
		// When: asking for each player's color
		colorA, okA := game.PlayerColor("a")
		colorB, okB := game.PlayerColor("b")

		// Then: the waiting player is white, the newcomer black
		require.True(t, okA)
		require.True(t, okB)
		assert.Equal(t, ColorWhite, colorA)
		assert.Equal(t, ColorBlack, colorB)
	})

	t.Run("Reports absence for a stranger", func(t *testing.T) {
		// When: asking for a player that is not in the game
		_, ok := game.PlayerColor("stranger")

		// Then: it should report absence
		assert.False(t, ok)
	})
}

func TestGame_Opponent(t *testing.T) {
	game := NewGame("g1", "fen", &Player{ID: "a"}, &Player{ID: "b"})

	t.Run("Returns the other participant", func(t *testing.T) {
		// When: asking for a's opponent
		opponent, ok := game.Opponent("a")

		// Then: it should be b
		require.True(t, ok)
		assert.Equal(t, "b", opponent.ID)
	})
}

func TestOutcome_Describe(t *testing.T) {
	t.Run("Describes a checkmate with the winning color", func(t *testing.T) {
		// Given: a checkmate outcome in white's favor
		outcome := Outcome{Over: true, Winner: ColorWhite, Method: "checkmate"}

		// Then: the description names the winner
		assert.Equal(t, "checkmate: white wins", outcome.Describe())
	})

	t.Run("Describes a draw with its method", func(t *testing.T) {
		// Given: a stalemate outcome
		outcome := Outcome{Over: true, Method: "stalemate"}

		assert.True(t, outcome.IsDraw())
		assert.Equal(t, "draw: stalemate", outcome.Describe())
	})

	t.Run("Describes nothing while the game is running", func(t *testing.T) {
		// Given: a position that is not terminal
		outcome := Outcome{}

		assert.Empty(t, outcome.Describe())
	})
}
