package tui

import (
	"testing"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
	"github.com/stretchr/testify/assert"
)

func TestGrid_CellAt(t *testing.T) {
	grid := Grid{CellWidth: 5, CellHeight: 2, Left: 1, Top: 3}

	t.Run("Every point inside a cell maps to that cell", func(t *testing.T) {
		for row := range entity.BoardSize {
			for col := range entity.BoardSize {
				for dy := range grid.CellHeight {
					for dx := range grid.CellWidth {
						x := grid.Left + col*(grid.CellWidth+1) + dx
						y := grid.Top + row*(grid.CellHeight+1) + dy

						move, ok := grid.CellAt(x, y)

						assert.True(t, ok, "point (%d, %d)", x, y)
						assert.Equal(t, entity.Move{Row: row, Col: col}, move, "point (%d, %d)", x, y)
					}
				}
			}
		}
	})

	t.Run("Borders hit nothing", func(t *testing.T) {
		_, ok := grid.CellAt(grid.Left+grid.CellWidth, grid.Top)
		assert.False(t, ok, "vertical border")

		_, ok = grid.CellAt(grid.Left, grid.Top+grid.CellHeight)
		assert.False(t, ok, "horizontal border")
	})

	t.Run("Points outside the board hit nothing", func(t *testing.T) {
		for _, point := range [][2]int{
			{0, 3},
			{1, 2},
			{grid.Left + grid.Width(), grid.Top},
			{grid.Left, grid.Top + 3*(grid.CellHeight+1)},
		} {
			_, ok := grid.CellAt(point[0], point[1])
			assert.False(t, ok, "point %v", point)
		}
	})

	t.Run("Zero sized cells hit nothing", func(t *testing.T) {
		_, ok := Grid{}.CellAt(0, 0)
		assert.False(t, ok)
	})
}

func TestGrid_Width(t *testing.T) {
	assert.Equal(t, 29, Grid{CellWidth: 9}.Width())
}
