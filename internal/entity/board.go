package entity

import (
	"fmt"
	"strings"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
)

const BoardSize = 3

// Mark is the content of a single cell.
type Mark int8

const (
	Empty Mark = iota
	PlayerX
	PlayerO
)

const (
	emptySymbol = "-"
	xSymbol     = "X"
	oSymbol     = "O"
)

func (that Mark) String() string {
	switch that {
	case PlayerX:
		return xSymbol
	case PlayerO:
		return oSymbol
	default:
		return emptySymbol
	}
}

// Opponent - returns the other player's mark. Empty has no opponent.
func (that Mark) Opponent() Mark {
	switch that {
	case PlayerX:
		return PlayerO
	case PlayerO:
		return PlayerX
	default:
		return Empty
	}
}

// Move is a 0-indexed (row, col) coordinate on the board.
type Move struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func (that Move) Valid() bool {
	return that.Row >= 0 && that.Row < BoardSize && that.Col >= 0 && that.Col < BoardSize
}

// Index - returns the row-major cell index of the move.
func (that Move) Index() int {
	return that.Row*BoardSize + that.Col
}

func (that Move) String() string {
	return fmt.Sprintf("(%d, %d)", that.Row, that.Col)
}

func MoveFromIndex(idx int) Move {
	return Move{Row: idx / BoardSize, Col: idx % BoardSize}
}

// WinLines are the 3 rows, 3 columns and 2 diagonals of the board.
var WinLines = [8][3]Move{
	{{0, 0}, {0, 1}, {0, 2}},
	{{1, 0}, {1, 1}, {1, 2}},
	{{2, 0}, {2, 1}, {2, 2}},
	{{0, 0}, {1, 0}, {2, 0}},
	{{0, 1}, {1, 1}, {2, 1}},
	{{0, 2}, {1, 2}, {2, 2}},
	{{0, 0}, {1, 1}, {2, 2}},
	{{0, 2}, {1, 1}, {2, 0}},
}

// Board is the fixed 3x3 grid. The zero value is an empty board.
type Board struct {
	Cells [BoardSize][BoardSize]Mark `json:"cells"`
}

func NewBoard() *Board {
	return &Board{}
}

// ParseBoard - builds a board from 9 row-major symbols ("X", "O", "-" or ".").
// Whitespace and "/" separators are ignored.
func ParseBoard(s string) (*Board, error) {
	var symbols []rune
	for _, r := range s {
		switch r {
		case ' ', '\n', '\t', '/':
			continue
		}
		symbols = append(symbols, r)
	}

	if len(symbols) != BoardSize*BoardSize {
		return nil, fmt.Errorf("%w: want %d cells, got %d", apperror.ErrInvalidCell, BoardSize*BoardSize, len(symbols))
	}

	board := NewBoard()
	for i, r := range symbols {
		move := MoveFromIndex(i)
		switch r {
		case 'X', 'x':
			board.Cells[move.Row][move.Col] = PlayerX
		case 'O', 'o':
			board.Cells[move.Row][move.Col] = PlayerO
		case '-', '.':
		default:
			return nil, fmt.Errorf("%w: %q", apperror.ErrInvalidMark, r)
		}
	}

	return board, nil
}

// MustParseBoard - like ParseBoard but panics on malformed input.
func MustParseBoard(s string) *Board {
	board, err := ParseBoard(s)
	if err != nil {
		panic(err)
	}

	return board
}

func (that *Board) At(row, col int) Mark {
	if !(Move{Row: row, Col: col}).Valid() {
		return Empty
	}

	return that.Cells[row][col]
}

// IsEmpty - reports whether the cell holds no mark. Out of range cells are never empty.
func (that *Board) IsEmpty(row, col int) bool {
	if !(Move{Row: row, Col: col}).Valid() {
		return false
	}

	return that.Cells[row][col] == Empty
}

// Place - puts mark into an empty cell. The board is left untouched on error.
func (that *Board) Place(row, col int, mark Mark) error {
	if !(Move{Row: row, Col: col}).Valid() {
		return fmt.Errorf("%w: (%d, %d)", apperror.ErrInvalidCell, row, col)
	}

	if mark != PlayerX && mark != PlayerO {
		return fmt.Errorf("%w: %d", apperror.ErrInvalidMark, mark)
	}

	if that.Cells[row][col] != Empty {
		return apperror.ErrCellOccupied
	}

	that.Cells[row][col] = mark

	return nil
}

// Undo - clears a cell. Used by the search to take back tentative placements.
func (that *Board) Undo(row, col int) {
	if (Move{Row: row, Col: col}).Valid() {
		that.Cells[row][col] = Empty
	}
}

func (that *Board) IsFull() bool {
	for _, row := range that.Cells {
		for _, cell := range row {
			if cell == Empty {
				return false
			}
		}
	}

	return true
}

// Winner - reports whether mark occupies any complete line.
func (that *Board) Winner(mark Mark) bool {
	return that.WinningLine(mark) != nil
}

// WinningLine - returns the first line fully held by mark, or nil.
func (that *Board) WinningLine(mark Mark) []Move {
	if mark == Empty {
		return nil
	}

	for _, line := range WinLines {
		a, b, c := line[0], line[1], line[2]
		if that.Cells[a.Row][a.Col] == mark && that.Cells[b.Row][b.Col] == mark && that.Cells[c.Row][c.Col] == mark {
			return line[:]
		}
	}

	return nil
}

// IsTerminal - a board is terminal once either mark has a line or no empty cell remains.
func (that *Board) IsTerminal() bool {
	return that.Winner(PlayerX) || that.Winner(PlayerO) || that.IsFull()
}

// EmptyCells - returns the empty cells in row-major order.
func (that *Board) EmptyCells() []Move {
	moves := make([]Move, 0, BoardSize*BoardSize)
	for row := range BoardSize {
		for col := range BoardSize {
			if that.Cells[row][col] == Empty {
				moves = append(moves, Move{Row: row, Col: col})
			}
		}
	}

	return moves
}

// Count - returns the number of marked cells.
func (that *Board) Count() int {
	return BoardSize*BoardSize - len(that.EmptyCells())
}

// Key - compact row-major encoding, e.g. "X---O----".
func (that *Board) Key() string {
	var sb strings.Builder
	sb.Grow(BoardSize * BoardSize)

	for _, row := range that.Cells {
		for _, cell := range row {
			sb.WriteString(cell.String())
		}
	}

	return sb.String()
}

func (that *Board) String() string {
	var sb strings.Builder

	for i, row := range that.Cells {
		for j, cell := range row {
			sb.WriteString(" " + cell.String() + " ")
			if j < BoardSize-1 {
				sb.WriteString("|")
			}
		}
		sb.WriteString("\n")

		if i < BoardSize-1 {
			sb.WriteString("---+---+---\n")
		}
	}

	return sb.String()
}
