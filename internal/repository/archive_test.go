package repository

import (
	"testing"
	"time"

	"github.com/rocketscienceinc/chessmate-backend/internal/entity"
	"github.com/rocketscienceinc/chessmate-backend/testing/suite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGameArchive_Record(t *testing.T) {
	ctx, st := suite.New(t)

	archive := NewGameArchive(st.Storage)

	// Given: the record of a finished game
	record := &entity.GameRecord{
		GameID:     "game-a-b",
		White:      "a",
		Black:      "b",
		Winner:     entity.ColorBlack,
		Outcome:    "checkmate: black wins",
		FinalFEN:   "rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3",
		FinishedAt: time.Now().UTC().Truncate(time.Second),
	}

	// When: the record is archived
	err := archive.Record(ctx, record)

	// Then: no error should be returned
	require.NoError(t, err)
}

func TestGameArchive_GetByGameID(t *testing.T) {
	t.Run("GetByGameID_Success", func(t *testing.T) {
		ctx, st := suite.New(t)

		archive := NewGameArchive(st.Storage)

		// Given: an archived record
		record := &entity.GameRecord{
			GameID:     "game-a-b",
			White:      "a",
			Black:      "b",
			Outcome:    "draw: stalemate",
			FinalFEN:   "7k/5Q2/6K1/8/8/8/8/8 b - - 0 1",
			FinishedAt: time.Now().UTC().Truncate(time.Second),
		}
		require.NoError(t, archive.Record(ctx, record))

		// When: fetching it back by game id
		retrieved, err := archive.GetByGameID(ctx, record.GameID)

		// Then: the record round-trips unchanged
		require.NoError(t, err)
		assert.Equal(t, record, retrieved)
	})

	t.Run("GetByGameID_NotFound", func(t *testing.T) {
		ctx, st := suite.New(t)

		archive := NewGameArchive(st.Storage)

		// When: fetching a record that was never archived
		retrieved, err := archive.GetByGameID(ctx, "game-never-played")

		// Then: the dedicated sentinel is returned
		require.ErrorIs(t, err, ErrRecordNotFound)
		assert.Nil(t, retrieved)
	})
}
