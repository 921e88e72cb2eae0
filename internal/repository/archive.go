package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/rocketscienceinc/chessmate-backend/internal/entity"
)

var ErrRecordNotFound = errors.New("game record not found")

// GameArchive stores the results of finished games.
type GameArchive interface {
	Record(ctx context.Context, record *entity.GameRecord) error
	GetByGameID(ctx context.Context, gameID string) (*entity.GameRecord, error)
}

type dbArchive struct {
	client *redis.Client
}

func NewGameArchive(client *redis.Client) GameArchive {
	return &dbArchive{
		client: client,
	}
}

func (that *dbArchive) Record(ctx context.Context, record *entity.GameRecord) error {
	recordJSON, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to marshal game record: %w", err)
	}

	recordKey := "record:" + record.GameID
	if err = that.client.Set(ctx, recordKey, recordJSON, 0).Err(); err != nil {
		return fmt.Errorf("failed to set game record: %w", err)
	}

	return nil
}

func (that *dbArchive) GetByGameID(ctx context.Context, gameID string) (*entity.GameRecord, error) {
	recordKey := "record:" + gameID

	response, err := that.client.Get(ctx, recordKey).Result()

	if errors.Is(err, redis.Nil) {
		return nil, ErrRecordNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get game record by ID: %w", err)
	}

	var record entity.GameRecord
	if err = json.Unmarshal([]byte(response), &record); err != nil {
		return nil, fmt.Errorf("failed to unmarshal game record: %w", err)
	}

	return &record, nil
}
