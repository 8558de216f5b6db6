package tui

import (
	"slices"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.AdaptiveColor{Light: "#4204b5", Dark: "#8f6afd"}).Render
	xStyle      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.AdaptiveColor{Light: "#bb0000", Dark: "#ff5f5f"}).Render
	oStyle      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.AdaptiveColor{Light: "#000000", Dark: "#ffffff"}).Render
	winStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.AdaptiveColor{Light: "#007e50", Dark: "#6afd76"}).Render
	borderStyle = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#414141", Dark: "#8f8f8f"}).Render
	noticeStyle = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#960000", Dark: "#fc7e7e"}).Render
	hintStyle   = lipgloss.NewStyle().Faint(true).Render
)

func (that *Model) View() string {
	var sb strings.Builder

	// header: exactly headerHeight lines
	sb.WriteString(titleStyle("Tic-Tac-Toe 3x3") + "\n")
	sb.WriteString(that.statusLine() + "\n")
	sb.WriteString("\n")

	sb.WriteString(that.renderBoard())

	sb.WriteString("\n")
	if that.notice != "" {
		sb.WriteString(noticeStyle(that.notice) + "\n")
	}

	if that.game.IsFinished() {
		sb.WriteString(hintStyle("Press any key or click to exit.") + "\n")
	} else {
		sb.WriteString(hintStyle("Click a cell or press 1-9. q quits.") + "\n")
	}

	return sb.String()
}

func (that *Model) statusLine() string {
	switch {
	case that.game.IsDraw():
		return "It's a draw!"
	case that.game.IsFinished():
		return markStyle(winnerMark(that.game), false)(that.game.Winner) + " wins!"
	case that.thinking:
		return "Computer " + markStyle(that.game.Turn, false)(that.game.Turn.String()) + " is thinking " + that.spinner.View()
	default:
		return "Your turn " + markStyle(that.game.Turn, false)(that.game.Turn.String())
	}
}

func (that *Model) renderBoard() string {
	var highlights []entity.Move
	if that.game.IsFinished() && !that.game.IsDraw() {
		highlights = that.game.Board.WinningLine(winnerMark(that.game))
	}

	cellWidth := max(that.grid.CellWidth, 1)
	cellHeight := max(that.grid.CellHeight, 1)
	middle := cellHeight / 2

	separator := borderStyle(strings.Repeat("─", cellWidth)+"┼"+strings.Repeat("─", cellWidth)+"┼"+strings.Repeat("─", cellWidth)) + "\n"

	var sb strings.Builder
	for row := range entity.BoardSize {
		for line := range cellHeight {
			for col := range entity.BoardSize {
				text := ""
				mark := that.game.Board.At(row, col)
				if line == middle && mark != entity.Empty {
					text = mark.String()
				}

				cell := lipgloss.PlaceHorizontal(cellWidth, lipgloss.Center, text)
				if text != "" {
					highlighted := slices.Contains(highlights, entity.Move{Row: row, Col: col})
					cell = strings.Replace(cell, text, markStyle(mark, highlighted)(text), 1)
				}

				sb.WriteString(cell)
				if col < entity.BoardSize-1 {
					sb.WriteString(borderStyle("│"))
				}
			}
			sb.WriteString("\n")
		}

		if row < entity.BoardSize-1 {
			sb.WriteString(separator)
		}
	}

	return sb.String()
}

func markStyle(mark entity.Mark, highlighted bool) func(strs ...string) string {
	switch {
	case highlighted:
		return winStyle
	case mark == entity.PlayerX:
		return xStyle
	default:
		return oStyle
	}
}

func winnerMark(game *entity.Game) entity.Mark {
	switch game.Winner {
	case entity.WinnerX:
		return entity.PlayerX
	case entity.WinnerO:
		return entity.PlayerO
	default:
		return entity.Empty
	}
}
