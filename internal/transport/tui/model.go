package tui

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
)

// headerHeight is the number of lines View prints above the board.
const headerHeight = 3

type gameManager interface {
	PlayHuman(ctx context.Context, game *entity.Game, move entity.Move) error
	ChooseComputerMove(ctx context.Context, board entity.Board) (entity.Move, error)
	PlayComputer(ctx context.Context, game *entity.Game, move entity.Move) error
}

// computerTurnMsg fires once the pacing delay before the computer's move has elapsed.
type computerTurnMsg struct{}

type computerMoveMsg struct {
	move entity.Move
	err  error
}

// Model is the bubbletea model for one game. It owns input handling and rendering;
// all rules live behind gameManager.
type Model struct {
	ctx     context.Context
	logger  *slog.Logger
	manager gameManager

	game    *entity.Game
	grid    Grid
	delay   time.Duration
	spinner spinner.Model

	thinking bool
	notice   string
	err      error
}

func New(ctx context.Context, logger *slog.Logger, manager gameManager, game *entity.Game, grid Grid, delay time.Duration) *Model {
	s := spinner.New()
	s.Spinner = spinner.Points
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	grid.Top = headerHeight

	return &Model{
		ctx:     ctx,
		logger:  logger.With("component", "tui", "gameID", game.ID),
		manager: manager,
		game:    game,
		grid:    grid,
		delay:   delay,
		spinner: s,
	}
}

// Outcome - the game as it stood when the program ended.
func (that *Model) Outcome() *entity.Game {
	return that.game
}

// Err - the error that stopped the game early, if any.
func (that *Model) Err() error {
	return that.err
}

func (that *Model) Init() tea.Cmd {
	if that.isComputerTurn() {
		return that.startComputerTurn()
	}

	return nil
}

func (that *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return that.handleKey(msg)

	case tea.MouseMsg:
		return that.handleMouse(msg)

	case computerTurnMsg:
		return that, that.chooseComputerMove()

	case computerMoveMsg:
		return that.applyComputerMove(msg)

	case spinner.TickMsg:
		if !that.thinking {
			return that, nil
		}

		var cmd tea.Cmd
		that.spinner, cmd = that.spinner.Update(msg)
		return that, cmd
	}

	return that, nil
}

func (that *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q", "esc":
		return that, tea.Quit
	}

	if that.game.IsFinished() {
		return that, tea.Quit
	}

	keys := msg.String()
	if len(keys) == 1 && keys[0] >= '1' && keys[0] <= '9' {
		return that.humanMove(entity.MoveFromIndex(int(keys[0] - '1')))
	}

	return that, nil
}

func (that *Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return that, nil
	}

	if that.game.IsFinished() {
		return that, tea.Quit
	}

	move, ok := that.grid.CellAt(msg.X, msg.Y)
	if !ok {
		return that, nil
	}

	return that.humanMove(move)
}

func (that *Model) humanMove(move entity.Move) (tea.Model, tea.Cmd) {
	if that.thinking || that.isComputerTurn() {
		return that, nil
	}

	if err := that.manager.PlayHuman(that.ctx, that.game, move); err != nil {
		that.logger.Debug("human move rejected", "move", move.String(), "error", err)
		that.notice = rejectionNotice(err)
		return that, nil
	}

	that.notice = ""

	if that.game.IsFinished() {
		return that, nil
	}

	return that, that.startComputerTurn()
}

func (that *Model) startComputerTurn() tea.Cmd {
	that.thinking = true

	return tea.Batch(
		that.spinner.Tick,
		tea.Tick(that.delay, func(time.Time) tea.Msg {
			return computerTurnMsg{}
		}),
	)
}

// chooseComputerMove - runs the search off the event loop on a snapshot of the board.
func (that *Model) chooseComputerMove() tea.Cmd {
	ctx := that.ctx
	manager := that.manager
	board := that.game.Board

	return func() tea.Msg {
		move, err := manager.ChooseComputerMove(ctx, board)
		return computerMoveMsg{move: move, err: err}
	}
}

func (that *Model) applyComputerMove(msg computerMoveMsg) (tea.Model, tea.Cmd) {
	that.thinking = false

	if msg.err == nil {
		msg.err = that.manager.PlayComputer(that.ctx, that.game, msg.move)
	}

	if msg.err != nil {
		that.logger.Error("computer move failed", "error", msg.err)
		that.err = msg.err
		return that, tea.Quit
	}

	return that, nil
}

func (that *Model) isComputerTurn() bool {
	player := that.game.PlayerByMark(that.game.Turn)

	return player != nil && player.IsComputer()
}

func rejectionNotice(err error) string {
	switch {
	case errors.Is(err, apperror.ErrCellOccupied):
		return "That cell is taken."
	case errors.Is(err, apperror.ErrInvalidCell):
		return "That is not a cell."
	case errors.Is(err, apperror.ErrNotYourTurn):
		return "Wait for your turn."
	case errors.Is(err, apperror.ErrGameFinished):
		return "The game is over."
	default:
		return "Move rejected."
	}
}
