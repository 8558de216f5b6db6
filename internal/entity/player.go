package entity

type Player struct {
	Name     string `json:"name"`
	Mark     Mark   `json:"mark"`
	Computer bool   `json:"computer,omitempty"`
}

func NewHumanPlayer(name string, mark Mark) *Player {
	return &Player{Name: name, Mark: mark}
}

func NewComputerPlayer(mark Mark) *Player {
	return &Player{Name: "computer", Mark: mark, Computer: true}
}

func (that *Player) IsComputer() bool {
	return that.Computer
}
