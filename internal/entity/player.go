package entity

type Player struct {
	Name string `json:"name"`
	Mark Mark   `json:"mark"`
	Bot  bool   `json:"bot,omitempty"`
}

func NewHumanPlayer(name string, mark Mark) *Player {
	return &Player{Name: name, Mark: mark}
}

func NewBotPlayer(mark Mark) *Player {
	return &Player{Name: "bot", Mark: mark, Bot: true}
}

func (that *Player) IsBot() bool {
	return that.Bot
}
