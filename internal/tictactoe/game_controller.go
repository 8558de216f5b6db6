package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
)

// MakeTurn - applies mark at move, refreshes the game status and passes the turn.
func MakeTurn(gameInstance *entity.Game, mark entity.Mark, move entity.Move) error {
	if gameInstance.IsFinished() {
		return apperror.ErrGameFinished
	}

	if err := validateMove(gameInstance, mark, move); err != nil {
		return fmt.Errorf("invalid turn: %w", err)
	}

	if err := gameInstance.Board.Place(move.Row, move.Col, mark); err != nil {
		return fmt.Errorf("invalid turn: %w", err)
	}

	updateGameStatus(gameInstance, mark)

	return nil
}

// validateMove - checks if the move is valid.
func validateMove(gameInstance *entity.Game, mark entity.Mark, move entity.Move) error {
	if !move.Valid() {
		return fmt.Errorf("%w: %s", apperror.ErrInvalidCell, move)
	}

	if gameInstance.Turn != mark {
		return apperror.ErrNotYourTurn
	}

	if !gameInstance.Board.IsEmpty(move.Row, move.Col) {
		return apperror.ErrCellOccupied
	}

	return nil
}

// updateGameStatus - checks the game status after a move.
func updateGameStatus(gameInstance *entity.Game, mark entity.Mark) {
	gameInstance.UpdateGameState()

	if gameInstance.IsOngoing() {
		gameInstance.Turn = mark.Opponent()
	}
}
