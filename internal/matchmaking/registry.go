package matchmaking

import (
	"fmt"

	"github.com/rocketscienceinc/chessmate-backend/internal/apperror"
	"github.com/rocketscienceinc/chessmate-backend/internal/entity"
)

// SessionRegistry exclusively owns all live games. The player index makes
// disconnect teardown an O(1) lookup instead of a scan over every game.
// Not safe for concurrent use on its own; the coordinator serializes access.
type SessionRegistry struct {
	games    map[string]*entity.Game
	byPlayer map[string]string
}

func NewSessionRegistry() *SessionRegistry {
	return &SessionRegistry{
		games:    make(map[string]*entity.Game),
		byPlayer: make(map[string]string),
	}
}

// GameID - derives the game identifier from both player identities, so
// creation is idempotent and the id names its participants in logs.
func GameID(whiteID, blackID string) string {
	return fmt.Sprintf("game-%s-%s", whiteID, blackID)
}

// Create - pairs the players into a new ongoing game, whiteID as white and
// blackID as black. Fails if either player is already registered.
func (that *SessionRegistry) Create(whiteID, blackID, fen string) (*entity.Game, error) {
	if _, ok := that.byPlayer[whiteID]; ok {
		return nil, fmt.Errorf("%w: player %s", apperror.ErrDuplicateSession, whiteID)
	}

	if _, ok := that.byPlayer[blackID]; ok {
		return nil, fmt.Errorf("%w: player %s", apperror.ErrDuplicateSession, blackID)
	}

	game := entity.NewGame(GameID(whiteID, blackID), fen, &entity.Player{ID: whiteID}, &entity.Player{ID: blackID})

	that.games[game.ID] = game
	that.byPlayer[whiteID] = game.ID
	that.byPlayer[blackID] = game.ID

	return game, nil
}

// ByID - absence is a normal race, not an error.
func (that *SessionRegistry) ByID(gameID string) (*entity.Game, bool) {
	game, ok := that.games[gameID]
	return game, ok
}

func (that *SessionRegistry) ByPlayer(playerID string) (*entity.Game, bool) {
	gameID, ok := that.byPlayer[playerID]
	if !ok {
		return nil, false
	}

	return that.ByID(gameID)
}

// Remove - detaches both players and deletes the game. Idempotent.
func (that *SessionRegistry) Remove(gameID string) {
	game, ok := that.games[gameID]
	if !ok {
		return
	}

	for _, player := range game.Players {
		delete(that.byPlayer, player.ID)
	}

	delete(that.games, gameID)
}

func (that *SessionRegistry) Len() int {
	return len(that.games)
}
