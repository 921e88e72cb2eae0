package matchmaking

// Outbound event actions, mirrored one-to-one by the websocket protocol.
const (
	EventWaiting      = "waitingForOpponent"
	EventGameStart    = "gameStart"
	EventBoardUpdate  = "boardUpdate"
	EventGameOver     = "gameOver"
	EventOpponentLeft = "opponentLeft"
)

// Event is one outbound notification addressed to a single player.
// GameStart events carry a different Color per recipient, which is why the
// coordinator never broadcasts them as one message.
type Event struct {
	Action string
	GameID string
	FEN    string
	Color  string
	Status string
}

// Notifier delivers an event to one connected player. Implementations must
// not block: the coordinator calls Notify while holding its lock.
type Notifier interface {
	Notify(playerID string, event Event)
}
