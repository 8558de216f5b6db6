package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/config"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/repository"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/repository/storage"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/tictactoe"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/transport/tui"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/usecase"
)

var ErrAddrNotFound = errors.New("redis address string is empty")

// RunApp - runs one game in the terminal and returns once it is closed.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)

	go func() {
		select {
		case sig := <-sigs:
			log.Info("Received signal, shutting down", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	var moveRepo repository.MoveRepository

	if conf.Redis.Enabled {
		redisAddrString := conf.Redis.GetRedisAddr()
		if redisAddrString == "" {
			return ErrAddrNotFound
		}

		redisStorage, err := storage.New(ctx, redisAddrString)
		if err != nil {
			return fmt.Errorf("could not connect to redis storage: %w", err)
		}

		defer func() {
			if err = redisStorage.Close(); err != nil {
				log.Error("could not close redis storage", "error", err)
			}
		}()

		moveRepo = repository.NewMoveRepository(redisStorage, conf.Redis.TTL)
		log.Info("move cache enabled", "addr", redisAddrString, "ttl", conf.Redis.TTL)
	}

	engine := tictactoe.NewEngine(entity.PlayerO)

	manager := usecase.NewGameManager(logger, engine, moveRepo)

	game := manager.NewGame(ctx)

	grid := tui.Grid{CellWidth: conf.Grid.CellWidth, CellHeight: conf.Grid.CellHeight}
	model := tui.New(ctx, logger, manager, game, grid, conf.ComputerDelay)

	outcome, err := tui.Run(model)
	if err != nil {
		return fmt.Errorf("game UI error: %w", err)
	}

	if outcome.IsFinished() {
		log.Info("game over", "gameID", outcome.ID, "winner", outcome.Winner)
	} else {
		log.Info("game abandoned", "gameID", outcome.ID)
	}

	return nil
}
