package entity

import (
	"errors"
	"fmt"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
)

const (
	StatusFinished = "finished"
	StatusOngoing  = "ongoing"

	WinnerX   = "X"
	WinnerO   = "O"
	WinnerTie = "-"
)

var ErrUnknownGameStatus = errors.New("unknown game status")

// Game is a single play session: one board, whose turn it is and how it ended.
type Game struct {
	ID      string    `json:"id"`
	Board   Board     `json:"board"`
	Turn    Mark      `json:"turn"`
	Winner  string    `json:"winner"`
	Status  string    `json:"status"`
	Players []*Player `json:"players,omitempty"`
}

func NewGame(id string, players ...*Player) *Game {
	return &Game{
		ID:      id,
		Turn:    PlayerX,
		Status:  StatusOngoing,
		Players: players,
	}
}

// DetermineGameResult - returns the winner symbol, WinnerTie for a full board or "" while the game continues.
func (that *Game) DetermineGameResult() string {
	switch {
	case that.Board.Winner(PlayerX):
		return WinnerX
	case that.Board.Winner(PlayerO):
		return WinnerO
	case that.Board.IsFull():
		return WinnerTie
	default:
		return ""
	}
}

func (that *Game) UpdateGameState() {
	switch winner := that.DetermineGameResult(); winner {
	// one player wins
	case WinnerX, WinnerO:
		that.Winner = winner
		that.Status = StatusFinished
		that.Turn = Empty
	// tie
	case WinnerTie:
		that.Winner = WinnerTie
		that.Status = StatusFinished
		that.Turn = Empty
	// game continue
	default:
		that.Status = StatusOngoing
	}
}

func (that *Game) IsFinished() bool {
	return that.Status == StatusFinished
}

func (that *Game) IsOngoing() bool {
	return that.Status == StatusOngoing
}

func (that *Game) IsDraw() bool {
	return that.IsFinished() && that.Winner == WinnerTie
}

func (that *Game) ConfirmOngoingState() error {
	switch {
	case that.IsFinished():
		return apperror.ErrGameFinished
	case that.IsOngoing():
		return nil
	default:
		return fmt.Errorf("%w: %s", ErrUnknownGameStatus, that.Status)
	}
}

func (that *Game) ComputerPlayer() *Player {
	for _, player := range that.Players {
		if player.IsComputer() {
			return player
		}
	}

	return nil
}

func (that *Game) HumanPlayer() *Player {
	for _, player := range that.Players {
		if !player.IsComputer() {
			return player
		}
	}

	return nil
}

// PlayerByMark - returns the player holding mark, or nil.
func (that *Game) PlayerByMark(mark Mark) *Player {
	for _, player := range that.Players {
		if player.Mark == mark {
			return player
		}
	}

	return nil
}
