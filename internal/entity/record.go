package entity

import "time"

// GameRecord is the archived result of a finished game. Live games never
// leave process memory, only results are persisted.
type GameRecord struct {
	GameID     string    `json:"game_id"`
	White      string    `json:"white"`
	Black      string    `json:"black"`
	Winner     string    `json:"winner,omitempty"`
	Outcome    string    `json:"outcome"`
	FinalFEN   string    `json:"final_fen"`
	FinishedAt time.Time `json:"finished_at"`
}
