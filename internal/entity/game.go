package entity

import "fmt"

const (
	StatusOngoing  = "ongoing"
	StatusFinished = "finished"

	ColorWhite = "w"
	ColorBlack = "b"
)

// Move is the client's move descriptor. Legality is decided by the rules
// engine, the move itself is opaque to the matchmaking core.
type Move struct {
	From      string `json:"from"`
	To        string `json:"to"`
	Promotion string `json:"promotion,omitempty"`
}

func (that Move) UCI() string {
	return that.From + that.To + that.Promotion
}

type Game struct {
	ID      string    `json:"id"`
	FEN     string    `json:"fen"`
	Status  string    `json:"status"`
	Winner  string    `json:"winner,omitempty"`
	Players []*Player `json:"players,omitempty"`
}

// NewGame - creates an ongoing game with white and black already assigned.
// Colors are fixed for the lifetime of the game.
func NewGame(id, fen string, white, black *Player) *Game {
	white.Color = ColorWhite
	white.GameID = id
	black.Color = ColorBlack
	black.GameID = id

	return &Game{
		ID:      id,
		FEN:     fen,
		Status:  StatusOngoing,
		Players: []*Player{white, black},
	}
}

func (that *Game) PlayerColor(playerID string) (string, bool) {
	for _, player := range that.Players {
		if player.ID == playerID {
			return player.Color, true
		}
	}

	return "", false
}

func (that *Game) Opponent(playerID string) (*Player, bool) {
	for _, player := range that.Players {
		if player.ID != playerID {
			return player, true
		}
	}

	return nil, false
}

func (that *Game) HasPlayer(playerID string) bool {
	_, ok := that.PlayerColor(playerID)
	return ok
}

func (that *Game) IsFinished() bool {
	return that.Status == StatusFinished
}

// Outcome describes the terminal status of a position as reported by the
// rules engine.
type Outcome struct {
	Over   bool
	Winner string // ColorWhite or ColorBlack on checkmate, empty on draw
	Method string // checkmate, stalemate, insufficient material, ...
}

func (that Outcome) IsDraw() bool {
	return that.Over && that.Winner == ""
}

// Describe - renders the outcome for the game over notification.
func (that Outcome) Describe() string {
	if !that.Over {
		return ""
	}

	if that.IsDraw() {
		return fmt.Sprintf("draw: %s", that.Method)
	}

	return fmt.Sprintf("%s: %s wins", that.Method, ColorName(that.Winner))
}

func ColorName(color string) string {
	if color == ColorWhite {
		return "white"
	}

	return "black"
}
