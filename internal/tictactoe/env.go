package tictactoe

import (
	"fmt"

	"github.com/guikarist/gym-tictactoe/internal/apperror"
	"github.com/guikarist/gym-tictactoe/internal/entity"
)

// Environment is the reset/step contract exposed to agents.
type Environment interface {
	Reset(start entity.Mark) (entity.Observation, error)
	Step(cell int) (entity.Observation, entity.Rewards, bool, error)
	Observe() entity.Observation
	AvailableActions() []int
}

type Option func(*Env)

// WithSymmetricalView recodes observations relative to the side to move.
func WithSymmetricalView(enabled bool) Option {
	return func(env *Env) {
		env.symmetricalView = enabled
	}
}

// WithActionMask attaches the free-cell mask to observations.
func WithActionMask(enabled bool) Option {
	return func(env *Env) {
		env.useActionMask = enabled
	}
}

// Env is a single tic-tac-toe environment. It is not safe for concurrent use.
type Env struct {
	symmetricalView bool
	useActionMask   bool

	board     entity.Board
	occupied  map[int]struct{}
	turn      entity.Mark
	startMark entity.Mark
	done      bool
	started   bool
}

var _ Environment = (*Env)(nil)

// NewEnv returns an environment that must be reset before the first step.
func NewEnv(opts ...Option) *Env {
	env := &Env{
		occupied: make(map[int]struct{}, entity.BoardSize),
	}

	for _, opt := range opts {
		opt(env)
	}

	return env
}

// Reset starts a new episode. EmptyCell selects entity.DefaultStartMark.
func (that *Env) Reset(start entity.Mark) (entity.Observation, error) {
	if start == entity.EmptyCell {
		start = entity.DefaultStartMark
	}

	if !start.IsPlayer() {
		return entity.Observation{}, fmt.Errorf("%w: start mark %s", apperror.ErrInvalidMark, start)
	}

	clear(that.occupied)
	that.board = entity.Board{}
	that.turn = start
	that.startMark = start
	that.done = false
	that.started = true

	return that.Observe(), nil
}

// Step places the current mark on cell. Once the episode is done every further step is a no-op
// returning the final observation and zero rewards.
func (that *Env) Step(cell int) (entity.Observation, entity.Rewards, bool, error) {
	if !that.started {
		return entity.Observation{}, entity.Rewards{}, false, apperror.ErrEnvNotReset
	}

	if that.done {
		return that.Observe(), entity.Rewards{}, true, nil
	}

	if err := that.validateMove(cell); err != nil {
		return entity.Observation{}, entity.Rewards{}, false, err
	}

	that.occupied[cell] = struct{}{}
	that.board[cell] = that.turn

	rewards := that.updateGameStatus()

	// the turn passes even on the final move
	that.turn = that.turn.Opponent()

	return that.Observe(), rewards, that.done, nil
}

// validateMove - checks if the move is valid.
func (that *Env) validateMove(cell int) error {
	if cell < 0 || cell >= entity.BoardSize {
		return fmt.Errorf("%w: cell %d is out of range", apperror.ErrInvalidMove, cell)
	}

	if _, ok := that.occupied[cell]; ok {
		return fmt.Errorf("%w: cell %d is already occupied", apperror.ErrInvalidMove, cell)
	}

	return nil
}

// updateGameStatus - checks the game status after a move and returns the rewards.
func (that *Env) updateGameStatus() entity.Rewards {
	status := CheckGameStatus(that.board)
	if !status.IsFinished() {
		return entity.Rewards{entity.NoReward, entity.NoReward}
	}

	that.done = true

	winner, ok := status.Winner()
	if !ok {
		return entity.Rewards{entity.NoReward, entity.NoReward}
	}

	if winner == that.startMark {
		return entity.Rewards{entity.WinReward, entity.LoseReward}
	}

	return entity.Rewards{entity.LoseReward, entity.WinReward}
}

// Observe builds the observation for the side currently holding the turn.
func (that *Env) Observe() entity.Observation {
	var observation entity.Observation

	for i, cell := range that.board {
		observation.Board[i] = that.encode(cell)
	}

	if that.useActionMask {
		observation.ActionMask = make([]bool, entity.BoardSize)
		for i := range observation.ActionMask {
			_, occupied := that.occupied[i]
			observation.ActionMask[i] = !occupied
		}
	}

	return observation
}

func (that *Env) encode(cell entity.Mark) int {
	if !that.symmetricalView {
		return cell.Code()
	}

	switch cell {
	case entity.EmptyCell:
		return entity.NullCode
	case that.turn:
		return entity.MyCode
	default:
		return entity.EnemyCode
	}
}

// AvailableActions returns the free cells in ascending order.
func (that *Env) AvailableActions() []int {
	actions := make([]int, 0, entity.BoardSize-len(that.occupied))
	for cell := 0; cell < entity.BoardSize; cell++ {
		if _, ok := that.occupied[cell]; !ok {
			actions = append(actions, cell)
		}
	}

	return actions
}

func (that *Env) Status() entity.Status {
	return CheckGameStatus(that.board)
}

func (that *Env) Board() entity.Board {
	return that.board
}

func (that *Env) Turn() entity.Mark {
	return that.turn
}

func (that *Env) StartMark() entity.Mark {
	return that.startMark
}

func (that *Env) IsDone() bool {
	return that.done
}

// Snapshot captures the environment state under the given id.
func (that *Env) Snapshot(id string) entity.Episode {
	return entity.Episode{
		ID:              id,
		Board:           that.board,
		Turn:            that.turn,
		StartMark:       that.startMark,
		Done:            that.done,
		SymmetricalView: that.symmetricalView,
		UseActionMask:   that.useActionMask,
	}
}

// Restore replaces the environment state with a snapshot. The occupied set is rebuilt from the
// board.
func (that *Env) Restore(episode entity.Episode) error {
	if !episode.Turn.IsPlayer() {
		return fmt.Errorf("%w: turn %s", apperror.ErrInvalidMark, episode.Turn)
	}

	if !episode.StartMark.IsPlayer() {
		return fmt.Errorf("%w: start mark %s", apperror.ErrInvalidMark, episode.StartMark)
	}

	for i, cell := range episode.Board {
		if !cell.Valid() {
			return fmt.Errorf("%w: cell %d", apperror.ErrInvalidMark, i)
		}
	}

	clear(that.occupied)
	for i, cell := range episode.Board {
		if cell != entity.EmptyCell {
			that.occupied[i] = struct{}{}
		}
	}

	that.board = episode.Board
	that.turn = episode.Turn
	that.startMark = episode.StartMark
	that.done = episode.Done
	that.symmetricalView = episode.SymmetricalView
	that.useActionMask = episode.UseActionMask
	that.started = true

	return nil
}
