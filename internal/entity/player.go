package entity

type Player struct {
	ID     string `json:"id"`
	Color  string `json:"color,omitempty"`
	GameID string `json:"game_id,omitempty"`
}

func (that *Player) IsWhite() bool {
	return that.Color == ColorWhite
}
