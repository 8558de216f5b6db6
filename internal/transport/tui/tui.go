package tui

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
)

// Run - shows the board until the game is over and the player leaves, or ctx is cancelled.
func Run(model *Model) (*entity.Game, error) {
	program := tea.NewProgram(model,
		tea.WithContext(model.ctx),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	if _, err := program.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return model.Outcome(), fmt.Errorf("terminal ui failed: %w", err)
	}

	if err := model.Err(); err != nil {
		return model.Outcome(), fmt.Errorf("game stopped: %w", err)
	}

	return model.Outcome(), nil
}
