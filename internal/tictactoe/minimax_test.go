package tictactoe

import (
	"math"
	"testing"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEngine_BestMove(t *testing.T) {
	t.Run("Blocks the opponent's diagonal", func(t *testing.T) {
		// Given: X one move away from the main diagonal and O to move
		board := entity.MustParseBoard("X-- -X- ---")
		engine := NewEngine(entity.PlayerO)

		// When: searching for the best move
		result := engine.Search(board)

		// Then: O blocks at the corner; X still forks afterwards, so the loss is only delayed
		require.True(t, result.Found)
		assert.Equal(t, entity.Move{Row: 2, Col: 2}, result.Move)
		assert.Equal(t, -winScore+3, result.Score)
	})

	t.Run("Takes an immediate win", func(t *testing.T) {
		// Given: O can complete the top row
		board := entity.MustParseBoard("OO- XX- --X")
		engine := NewEngine(entity.PlayerO)

		// When: searching for the best move
		result := engine.Search(board)

		// Then: the win at depth 0 is preferred over the block at (1, 2)
		require.True(t, result.Found)
		assert.Equal(t, entity.Move{Row: 0, Col: 2}, result.Move)
		assert.Equal(t, winScore, result.Score)
	})

	t.Run("Opening on an empty board", func(t *testing.T) {
		// Given: an empty board with the computer hypothetically moving first
		board := entity.NewBoard()
		engine := NewEngine(entity.PlayerO)

		// When: searching for the best move
		result := engine.Search(board)

		// Then: every opening draws, so the first cell in row-major order wins the tie
		require.True(t, result.Found)
		assert.Contains(t, []entity.Move{{Row: 0, Col: 0}, {Row: 0, Col: 2}, {Row: 1, Col: 1}, {Row: 2, Col: 0}, {Row: 2, Col: 2}}, result.Move)
		assert.Equal(t, entity.Move{Row: 0, Col: 0}, result.Move)
		assert.Equal(t, drawScore, result.Score)
	})

	t.Run("No move on a full board", func(t *testing.T) {
		board := entity.MustParseBoard("XOX XOO OXX")

		_, found := NewEngine(entity.PlayerO).BestMove(board)

		assert.False(t, found)
	})

	t.Run("No move once a line is complete", func(t *testing.T) {
		// Given: X already won but empty cells remain
		board := entity.MustParseBoard("XXX OO- ---")

		_, found := NewEngine(entity.PlayerO).BestMove(board)

		assert.False(t, found)
	})

	t.Run("Engine playing X uses the same rules", func(t *testing.T) {
		// Given: X can win in the middle row
		board := entity.MustParseBoard("O-O XX- ---")

		move, found := NewEngine(entity.PlayerX).BestMove(board)

		require.True(t, found)
		assert.Equal(t, entity.Move{Row: 1, Col: 2}, move)
	})
}

func TestEngine_SearchLeavesBoardUntouched(t *testing.T) {
	engine := NewEngine(entity.PlayerO)

	for _, board := range positionsWithOToMove(t) {
		// Given: a copy of the board before the search
		before := *board

		// When: searching
		engine.Search(board)

		// Then: the board is identical cell by cell
		require.Equal(t, before, *board, "board %s", before.Key())
	}
}

func TestEngine_Deterministic(t *testing.T) {
	engine := NewEngine(entity.PlayerO)

	for _, board := range positionsWithOToMove(t) {
		first := engine.Search(board)
		second := engine.Search(board)

		require.Equal(t, first, second, "board %s", board.Key())
	}
}

func TestEngine_MatchesUnprunedMinimax(t *testing.T) {
	engine := NewEngine(entity.PlayerO)

	for _, board := range positionsWithOToMove(t) {
		// Given: the reference result without pruning
		expectedMove, expectedScore, expectedNodes := referenceBestMove(board, entity.PlayerO)

		// When: searching with pruning
		result := engine.Search(board)

		// Then: the same move and score are chosen while visiting fewer nodes
		require.True(t, result.Found)
		assert.Equal(t, expectedMove, result.Move, "board %s", board.Key())
		assert.Equal(t, expectedScore, result.Score, "board %s", board.Key())
		assert.LessOrEqual(t, result.Nodes, expectedNodes, "board %s", board.Key())
	}
}

func TestEngine_PruningReducesNodes(t *testing.T) {
	// Given: a board with eight empty cells
	board := entity.MustParseBoard("X-- --- ---")

	// When: searching with and without pruning
	result := NewEngine(entity.PlayerO).Search(board)
	_, _, referenceNodes := referenceBestMove(board, entity.PlayerO)

	// Then: alpha-beta visits strictly fewer nodes
	assert.Less(t, result.Nodes, referenceNodes)
}

func TestEngine_NeverLosesAsSecondPlayer(t *testing.T) {
	engine := NewEngine(entity.PlayerO)
	visited := make(map[string]bool)

	var play func(board entity.Board)
	play = func(board entity.Board) {
		if visited[board.Key()] {
			return
		}
		visited[board.Key()] = true

		for _, humanMove := range board.EmptyCells() {
			next := board
			require.NoError(t, next.Place(humanMove.Row, humanMove.Col, entity.PlayerX))
			require.False(t, next.Winner(entity.PlayerX), "X won with %s:\n%s", humanMove, next.String())

			if next.IsFull() {
				continue
			}

			move, found := engine.BestMove(&next)
			require.True(t, found)
			require.NoError(t, next.Place(move.Row, move.Col, entity.PlayerO))

			if next.IsTerminal() {
				continue
			}

			play(next)
		}
	}

	play(entity.Board{})
}

func TestEngine_SelfPlayDraws(t *testing.T) {
	// Given: two engines, X moving first on an empty board
	engines := map[entity.Mark]*Engine{
		entity.PlayerX: NewEngine(entity.PlayerX),
		entity.PlayerO: NewEngine(entity.PlayerO),
	}
	game := entity.NewGame("self-play")

	// When: they play each other to the end
	for game.IsOngoing() {
		move, found := engines[game.Turn].BestMove(&game.Board)
		require.True(t, found)
		require.NoError(t, MakeTurn(game, game.Turn, move))
	}

	// Then: the game is a draw
	assert.True(t, game.IsDraw(), "final board:\n%s", game.Board.String())
}

func TestSearch_Evaluate(t *testing.T) {
	tests := []struct {
		name     string
		board    string
		depth    int
		score    int
		terminal bool
	}{
		{name: "opponent line", board: "XXX OO- ---", depth: 2, score: -8, terminal: true},
		{name: "own line", board: "OOO XX- X--", depth: 3, score: 7, terminal: true},
		{name: "draw", board: "XOX XOO OXX", depth: 5, score: 0, terminal: true},
		{name: "ongoing", board: "X-- -O- ---", depth: 1, terminal: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := &search{board: entity.MustParseBoard(tt.board), self: entity.PlayerO, opponent: entity.PlayerX}

			score, terminal := s.evaluate(tt.depth)

			assert.Equal(t, tt.terminal, terminal)
			if tt.terminal {
				assert.Equal(t, tt.score, score)
			}
		})
	}
}

// positionsWithOToMove - every non-terminal position after one X move, and after X, O, X.
func positionsWithOToMove(t *testing.T) []*entity.Board {
	t.Helper()

	seen := make(map[string]bool)
	var boards []*entity.Board

	add := func(board entity.Board) {
		if board.IsTerminal() || seen[board.Key()] {
			return
		}
		seen[board.Key()] = true
		boards = append(boards, &board)
	}

	empty := entity.Board{}
	for _, x1 := range empty.EmptyCells() {
		b1 := empty
		require.NoError(t, b1.Place(x1.Row, x1.Col, entity.PlayerX))
		add(b1)

		for _, o1 := range b1.EmptyCells() {
			b2 := b1
			require.NoError(t, b2.Place(o1.Row, o1.Col, entity.PlayerO))

			for _, x2 := range b2.EmptyCells() {
				b3 := b2
				require.NoError(t, b3.Place(x2.Row, x2.Col, entity.PlayerX))
				add(b3)
			}
		}
	}

	return boards
}

// referenceBestMove - plain minimax on copies of the board, no pruning.
func referenceBestMove(board *entity.Board, self entity.Mark) (entity.Move, int, int) {
	nodes := 0

	var minimax func(b entity.Board, depth int, maximizing bool) int
	minimax = func(b entity.Board, depth int, maximizing bool) int {
		nodes++

		switch {
		case b.Winner(self.Opponent()):
			return -winScore + depth
		case b.Winner(self):
			return winScore - depth
		case b.IsFull():
			return drawScore
		}

		best := math.MaxInt
		mark := self.Opponent()
		if maximizing {
			best = math.MinInt
			mark = self
		}

		for _, move := range b.EmptyCells() {
			child := b
			child.Cells[move.Row][move.Col] = mark

			score := minimax(child, depth+1, !maximizing)
			if maximizing {
				best = max(best, score)
			} else {
				best = min(best, score)
			}
		}

		return best
	}

	bestMove := entity.Move{}
	bestScore := math.MinInt
	for _, move := range board.EmptyCells() {
		child := *board
		child.Cells[move.Row][move.Col] = self

		if score := minimax(child, 0, false); score > bestScore {
			bestScore = score
			bestMove = move
		}
	}

	return bestMove, bestScore, nodes
}
