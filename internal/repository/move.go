package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
)

var ErrMoveNotFound = errors.New("move not found")

// MoveRepository caches the best move found for a position.
type MoveRepository interface {
	Get(ctx context.Context, key string) (entity.Move, error)
	Save(ctx context.Context, key string, move entity.Move) error
}

type dbMove struct {
	client *redis.Client
	ttl    time.Duration
}

// NewMoveRepository - ttl of zero keeps entries forever.
func NewMoveRepository(client *redis.Client, ttl time.Duration) MoveRepository {
	return &dbMove{
		client: client,
		ttl:    ttl,
	}
}

// MoveKey - cache key of the best move for mark on board.
func MoveKey(mark entity.Mark, board *entity.Board) string {
	return mark.String() + ":" + board.Key()
}

func (that *dbMove) Save(ctx context.Context, key string, move entity.Move) error {
	moveJSON, err := json.Marshal(move)
	if err != nil {
		return fmt.Errorf("could not marshal move: %w", err)
	}

	err = that.client.Set(ctx, "move:"+key, moveJSON, that.ttl).Err()
	if err != nil {
		return fmt.Errorf("failed to set move: %w", err)
	}

	return nil
}

func (that *dbMove) Get(ctx context.Context, key string) (entity.Move, error) {
	response, err := that.client.Get(ctx, "move:"+key).Result()

	if errors.Is(err, redis.Nil) {
		return entity.Move{}, ErrMoveNotFound
	}

	if err != nil {
		return entity.Move{}, fmt.Errorf("failed to get move: %w", err)
	}

	var move entity.Move
	if err = json.Unmarshal([]byte(response), &move); err != nil {
		return entity.Move{}, fmt.Errorf("failed to unmarshal move: %w", err)
	}

	if !move.Valid() {
		return entity.Move{}, fmt.Errorf("cached move %s is out of range: %w", move, ErrMoveNotFound)
	}

	return move, nil
}
