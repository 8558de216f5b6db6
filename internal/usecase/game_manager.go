package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/pkg"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/repository"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/tictactoe"
)

const humanPlayerName = "you"

type moveRepo interface {
	Get(ctx context.Context, key string) (entity.Move, error)
	Save(ctx context.Context, key string, move entity.Move) error
}

type moveSearcher interface {
	Mark() entity.Mark
	Search(board *entity.Board) tictactoe.Result
}

// GameManager drives one human against the search engine.
type GameManager struct {
	logger *slog.Logger

	engine   moveSearcher
	moveRepo moveRepo
}

// NewGameManager - moveRepo may be nil, in which case every computer move is searched.
func NewGameManager(logger *slog.Logger, engine moveSearcher, moveRepo moveRepo) *GameManager {
	return &GameManager{
		logger: logger.With("component", "game_manager"),

		engine:   engine,
		moveRepo: moveRepo,
	}
}

// NewGame - starts a session with the human on the engine's opposite mark.
func (that *GameManager) NewGame(_ context.Context) *entity.Game {
	computerMark := that.engine.Mark()

	game := entity.NewGame(
		pkg.GenerateGameID(),
		entity.NewHumanPlayer(humanPlayerName, computerMark.Opponent()),
		entity.NewComputerPlayer(computerMark),
	)

	that.logger.Info("game created", "gameID", game.ID, "computer", computerMark.String())

	return game
}

func (that *GameManager) PlayHuman(ctx context.Context, game *entity.Game, move entity.Move) error {
	human := game.HumanPlayer()
	if human == nil {
		return fmt.Errorf("game %s has no human player: %w", game.ID, apperror.ErrNotYourTurn)
	}

	return that.makeTurn(ctx, game, human.Mark, move)
}

func (that *GameManager) PlayComputer(ctx context.Context, game *entity.Game, move entity.Move) error {
	return that.makeTurn(ctx, game, that.engine.Mark(), move)
}

// ChooseComputerMove - returns the engine's move for board, served from the cache when possible.
// board is a copy, so the search never touches the caller's game.
func (that *GameManager) ChooseComputerMove(ctx context.Context, board entity.Board) (entity.Move, error) {
	log := that.logger.With("method", "ChooseComputerMove", "board", board.Key())

	if board.IsTerminal() {
		return entity.Move{}, apperror.ErrNoAvailableMoves
	}

	key := repository.MoveKey(that.engine.Mark(), &board)

	if move, ok := that.cachedMove(ctx, log, key, &board); ok {
		return move, nil
	}

	started := time.Now()
	result := that.engine.Search(&board)
	if !result.Found {
		return entity.Move{}, apperror.ErrNoAvailableMoves
	}

	log.Debug("search finished",
		"move", result.Move.String(),
		"score", result.Score,
		"nodes", result.Nodes,
		"elapsed", time.Since(started),
	)

	if that.moveRepo != nil {
		if err := that.moveRepo.Save(ctx, key, result.Move); err != nil {
			log.Warn("failed to cache move", "error", err)
		}
	}

	return result.Move, nil
}

func (that *GameManager) cachedMove(ctx context.Context, log *slog.Logger, key string, board *entity.Board) (entity.Move, bool) {
	if that.moveRepo == nil {
		return entity.Move{}, false
	}

	move, err := that.moveRepo.Get(ctx, key)
	switch {
	case errors.Is(err, repository.ErrMoveNotFound):
		return entity.Move{}, false
	case err != nil:
		log.Warn("failed to read cached move", "error", err)
		return entity.Move{}, false
	case !board.IsEmpty(move.Row, move.Col):
		log.Warn("cached move points at an occupied cell", "move", move.String())
		return entity.Move{}, false
	}

	log.Debug("cached move found", "move", move.String())

	return move, true
}

func (that *GameManager) makeTurn(_ context.Context, game *entity.Game, mark entity.Mark, move entity.Move) error {
	log := that.logger.With("method", "makeTurn", "gameID", game.ID)

	if err := tictactoe.MakeTurn(game, mark, move); err != nil {
		return fmt.Errorf("failed make turn: %w", err)
	}

	log.Info("turn made", "mark", mark.String(), "move", move.String())

	if game.IsFinished() {
		log.Info("game finished", "winner", game.Winner)
	}

	return nil
}
