package matchmaking

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/rocketscienceinc/chessmate-backend/internal/entity"
)

const archiveTimeout = 5 * time.Second

// Validator answers legality and terminal-state questions about positions.
// The coordinator never reasons about chess itself.
type Validator interface {
	InitialFEN() string
	ApplyMove(fen string, move entity.Move) (string, error)
	SideToMove(fen string) (string, error)
	TerminalStatus(fen string) (entity.Outcome, error)
}

// GameArchive persists finished game records.
type GameArchive interface {
	Record(ctx context.Context, record *entity.GameRecord) error
}

// Coordinator is the single serialization point for all matchmaking state.
// Every inbound event takes the one mutex for its whole check-and-mutate
// sequence, so two players racing on an empty pool can never both become
// the waiting player. Validator calls are pure and notifications are
// nonblocking sends, which keeps the critical section short.
//
// Late or inconsistent events (a move for a game that is already gone, a
// cancel from a player who never queued) are expected races and dropped
// without a reply; the absence of a response is the signal.
type Coordinator struct {
	logger   *slog.Logger
	rules    Validator
	archive  GameArchive
	notifier Notifier

	mu       sync.Mutex
	pool     *WaitingPool
	registry *SessionRegistry
}

func New(logger *slog.Logger, rules Validator, archive GameArchive) *Coordinator {
	return &Coordinator{
		logger:   logger,
		rules:    rules,
		archive:  archive,
		pool:     NewWaitingPool(),
		registry: NewSessionRegistry(),
	}
}

// SetNotifier - attaches the outbound event sink. The transport implements
// it, and the transport is constructed around the coordinator, hence the
// late binding.
func (that *Coordinator) SetNotifier(notifier Notifier) {
	that.notifier = notifier
}

// FindGame - queues the player, or pairs it with the waiting one. A player
// that is already waiting or already playing is ignored, so a player can
// never be matched against itself.
func (that *Coordinator) FindGame(playerID string) {
	log := that.logger.With("method", "FindGame", "playerID", playerID)

	that.mu.Lock()
	defer that.mu.Unlock()

	if _, ok := that.registry.ByPlayer(playerID); ok {
		log.Debug("ignoring find: player is already in a game")
		return
	}

	if that.pool.Contains(playerID) {
		log.Debug("ignoring find: player is already waiting")
		return
	}

	opponentID, ok := that.pool.TakeIfPresent()
	if !ok {
		if err := that.pool.Offer(playerID); err != nil {
			log.Debug("ignoring find", "error", err)
			return
		}

		that.notify(playerID, Event{Action: EventWaiting})
		log.Info("player is waiting for an opponent")

		return
	}

	// the player who waited gets white, the newcomer black
	game, err := that.registry.Create(opponentID, playerID, that.rules.InitialFEN())
	if err != nil {
		log.Error("failed to create game", "error", err)
		return
	}

	// two separate messages: each side gets its own color
	for _, player := range game.Players {
		that.notify(player.ID, Event{
			Action: EventGameStart,
			GameID: game.ID,
			FEN:    game.FEN,
			Color:  player.Color,
		})
	}

	log.Info("game created", "gameID", game.ID, "white", opponentID, "black", playerID)
}

// CancelFind - removes the player from the waiting pool. No effect if the
// player is not the current waiting entry.
func (that *Coordinator) CancelFind(playerID string) {
	log := that.logger.With("method", "CancelFind", "playerID", playerID)

	that.mu.Lock()
	defer that.mu.Unlock()

	if that.pool.Cancel(playerID) {
		log.Info("player canceled the search")
	}
}

// MakeMove - applies the player's move to its game. Off-turn and illegal
// moves are dropped without a state change; the proposing client reverts
// its own speculative board.
func (that *Coordinator) MakeMove(playerID string, move entity.Move) {
	log := that.logger.With("method", "MakeMove", "playerID", playerID)

	that.mu.Lock()
	defer that.mu.Unlock()

	game, ok := that.registry.ByPlayer(playerID)
	if !ok {
		log.Debug("ignoring move: player has no active game")
		return
	}

	log = log.With("gameID", game.ID)

	color, _ := game.PlayerColor(playerID)

	turn, err := that.rules.SideToMove(game.FEN)
	if err != nil {
		log.Error("failed to determine side to move", "error", err)
		return
	}

	if turn != color {
		log.Debug("ignoring move: not the player's turn", "color", color, "turn", turn)
		return
	}

	newFEN, err := that.rules.ApplyMove(game.FEN, move)
	if err != nil {
		log.Debug("ignoring illegal move", "error", err)
		return
	}

	game.FEN = newFEN

	for _, player := range game.Players {
		that.notify(player.ID, Event{Action: EventBoardUpdate, GameID: game.ID, FEN: newFEN})
	}

	outcome, err := that.rules.TerminalStatus(newFEN)
	if err != nil {
		log.Error("failed to determine terminal status", "error", err)
		return
	}

	if !outcome.Over {
		return
	}

	game.Status = entity.StatusFinished
	game.Winner = outcome.Winner

	for _, player := range game.Players {
		that.notify(player.ID, Event{Action: EventGameOver, GameID: game.ID, Status: outcome.Describe()})
	}

	that.registry.Remove(game.ID)
	that.archiveGame(game, outcome)

	log.Info("game finished", "status", outcome.Describe())
}

// Disconnect - clears whatever the player held: its waiting slot, or its
// game, in which case only the remaining player is notified.
func (that *Coordinator) Disconnect(playerID string) {
	log := that.logger.With("method", "Disconnect", "playerID", playerID)

	that.mu.Lock()
	defer that.mu.Unlock()

	if that.pool.Cancel(playerID) {
		log.Info("waiting player disconnected")
		return
	}

	game, ok := that.registry.ByPlayer(playerID)
	if !ok {
		return
	}

	that.registry.Remove(game.ID)

	if opponent, ok := game.Opponent(playerID); ok {
		that.notify(opponent.ID, Event{
			Action: EventOpponentLeft,
			GameID: game.ID,
			Status: "your opponent left the game",
		})
	}

	log.Info("player left an active game", "gameID", game.ID)
}

func (that *Coordinator) notify(playerID string, event Event) {
	if that.notifier == nil {
		return
	}

	that.notifier.Notify(playerID, event)
}

// archiveGame - writes the finished game record out-of-band, so the archive
// round-trip never runs inside the critical section.
func (that *Coordinator) archiveGame(game *entity.Game, outcome entity.Outcome) {
	if that.archive == nil {
		return
	}

	record := &entity.GameRecord{
		GameID:     game.ID,
		Winner:     outcome.Winner,
		Outcome:    outcome.Describe(),
		FinalFEN:   game.FEN,
		FinishedAt: time.Now().UTC(),
	}

	for _, player := range game.Players {
		if player.IsWhite() {
			record.White = player.ID
		} else {
			record.Black = player.ID
		}
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), archiveTimeout)
		defer cancel()

		if err := that.archive.Record(ctx, record); err != nil {
			that.logger.Error("failed to archive game", "gameID", record.GameID, "error", err)
		}
	}()
}
