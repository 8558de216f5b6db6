package tictactoe

import (
	"fmt"
	"math"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
)

const (
	winScore  = 10
	drawScore = 0
)

// Result is the outcome of a root search. Move is meaningful only when Found is set.
type Result struct {
	Move  entity.Move
	Score int
	Found bool
	Nodes int
}

// Engine picks moves for its own mark by exhaustive minimax with alpha-beta pruning,
// assuming the opponent also plays perfectly.
type Engine struct {
	self     entity.Mark
	opponent entity.Mark
}

func NewEngine(self entity.Mark) *Engine {
	return &Engine{
		self:     self,
		opponent: self.Opponent(),
	}
}

func (that *Engine) Mark() entity.Mark {
	return that.self
}

// BestMove - returns the optimal move for the engine's mark, or false when the board is terminal.
// The board is used as scratch space and is restored before returning.
func (that *Engine) BestMove(board *entity.Board) (entity.Move, bool) {
	result := that.Search(board)

	return result.Move, result.Found
}

// Search - scores every empty cell in row-major order and keeps the first strictly best one.
func (that *Engine) Search(board *entity.Board) Result {
	if board.IsTerminal() {
		return Result{}
	}

	s := &search{
		board:    board,
		self:     that.self,
		opponent: that.opponent,
	}

	result := Result{Score: math.MinInt}
	for _, move := range board.EmptyCells() {
		score := s.try(move, that.self, func() int {
			return s.minimax(0, false, math.MinInt, math.MaxInt)
		})

		if score > result.Score {
			result.Score = score
			result.Move = move
			result.Found = true
		}
	}

	result.Nodes = s.nodes

	return result
}

// search holds the state of one root call. The board is shared by the whole tree.
type search struct {
	board    *entity.Board
	self     entity.Mark
	opponent entity.Mark
	nodes    int
}

// evaluate - returns the score of a terminal board. depth favours quick wins and slow losses.
func (that *search) evaluate(depth int) (int, bool) {
	switch {
	case that.board.Winner(that.opponent):
		return -winScore + depth, true
	case that.board.Winner(that.self):
		return winScore - depth, true
	case that.board.IsFull():
		return drawScore, true
	default:
		return 0, false
	}
}

func (that *search) minimax(depth int, maximizing bool, alpha, beta int) int {
	that.nodes++

	if score, terminal := that.evaluate(depth); terminal {
		return score
	}

	if maximizing {
		best := math.MinInt
		for _, move := range that.board.EmptyCells() {
			score := that.try(move, that.self, func() int {
				return that.minimax(depth+1, false, alpha, beta)
			})

			best = max(best, score)
			alpha = max(alpha, score)
			if beta <= alpha {
				break
			}
		}

		return best
	}

	best := math.MaxInt
	for _, move := range that.board.EmptyCells() {
		score := that.try(move, that.opponent, func() int {
			return that.minimax(depth+1, true, alpha, beta)
		})

		best = min(best, score)
		beta = min(beta, score)
		if beta <= alpha {
			break
		}
	}

	return best
}

// try - places mark at move for the duration of fn.
func (that *search) try(move entity.Move, mark entity.Mark, fn func() int) int {
	if err := that.board.Place(move.Row, move.Col, mark); err != nil {
		panic(fmt.Errorf("tentative placement at %s: %w", move, err))
	}
	defer that.board.Undo(move.Row, move.Col)

	return fn()
}
