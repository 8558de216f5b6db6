package tui

import (
	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
)

// Grid maps terminal coordinates to board cells. Cells are CellWidth columns by CellHeight rows,
// separated by one-character borders; the board's top-left corner is at (Left, Top).
type Grid struct {
	CellWidth  int
	CellHeight int
	Left       int
	Top        int
}

// CellAt - returns the cell under (x, y). Borders and points outside the board hit nothing.
func (that Grid) CellAt(x, y int) (entity.Move, bool) {
	x -= that.Left
	y -= that.Top

	if x < 0 || y < 0 || that.CellWidth <= 0 || that.CellHeight <= 0 {
		return entity.Move{}, false
	}

	colPitch := that.CellWidth + 1
	rowPitch := that.CellHeight + 1

	if x%colPitch == that.CellWidth || y%rowPitch == that.CellHeight {
		return entity.Move{}, false
	}

	move := entity.Move{Row: y / rowPitch, Col: x / colPitch}
	if !move.Valid() {
		return entity.Move{}, false
	}

	return move, true
}

// Width - total width of the board in columns, borders included.
func (that Grid) Width() int {
	return entity.BoardSize*that.CellWidth + entity.BoardSize - 1
}
