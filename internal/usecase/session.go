package usecase

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/guikarist/gym-tictactoe/internal/entity"
	"github.com/guikarist/gym-tictactoe/internal/pkg"
	"github.com/guikarist/gym-tictactoe/internal/tictactoe"
)

type episodeRepo interface {
	CreateOrUpdate(ctx context.Context, episode *entity.Episode) error
	GetByID(ctx context.Context, id string) (*entity.Episode, error)
	DeleteByID(ctx context.Context, id string) error
}

// EnvOptions configures a new remote environment.
type EnvOptions struct {
	SymmetricalView bool
	UseActionMask   bool
	StartMark       entity.Mark
}

type StepResult struct {
	Observation entity.Observation `json:"observation"`
	Rewards     entity.Rewards     `json:"rewards"`
	Done        bool               `json:"done"`
}

// SessionManager serves environments whose state lives in the episode repository. Every call
// restores a private Env, applies one operation and stores the new snapshot.
type SessionManager struct {
	logger      *slog.Logger
	episodeRepo episodeRepo

	generateID func() (string, error)
}

func NewSessionManager(logger *slog.Logger, episodeRepo episodeRepo) *SessionManager {
	return &SessionManager{
		logger:      logger.With("component", "session"),
		episodeRepo: episodeRepo,
		generateID:  pkg.GenerateEpisodeID,
	}
}

// CreateEnv creates and resets a new environment.
func (that *SessionManager) CreateEnv(ctx context.Context, opts EnvOptions) (string, entity.Observation, error) {
	id, err := that.generateID()
	if err != nil {
		return "", entity.Observation{}, fmt.Errorf("failed generate episode id: %w", err)
	}

	env := tictactoe.NewEnv(
		tictactoe.WithSymmetricalView(opts.SymmetricalView),
		tictactoe.WithActionMask(opts.UseActionMask),
	)

	observation, err := env.Reset(opts.StartMark)
	if err != nil {
		return "", entity.Observation{}, fmt.Errorf("failed reset env: %w", err)
	}

	if err = that.saveEnv(ctx, id, env); err != nil {
		return "", entity.Observation{}, err
	}

	that.logger.Info("env created", "envID", id, "startMark", env.StartMark().String())

	return id, observation, nil
}

func (that *SessionManager) Reset(ctx context.Context, id string, start entity.Mark) (entity.Observation, error) {
	env, err := that.loadEnv(ctx, id)
	if err != nil {
		return entity.Observation{}, err
	}

	observation, err := env.Reset(start)
	if err != nil {
		return entity.Observation{}, fmt.Errorf("failed reset env: %w", err)
	}

	if err = that.saveEnv(ctx, id, env); err != nil {
		return entity.Observation{}, err
	}

	that.logger.Debug("env reset", "envID", id, "startMark", env.StartMark().String())

	return observation, nil
}

func (that *SessionManager) Step(ctx context.Context, id string, cell int) (*StepResult, error) {
	log := that.logger.With("method", "Step", "envID", id)

	env, err := that.loadEnv(ctx, id)
	if err != nil {
		return nil, err
	}

	// steps after the end change nothing, so there is nothing to store
	if env.IsDone() {
		observation, rewards, done, _ := env.Step(cell)
		return &StepResult{Observation: observation, Rewards: rewards, Done: done}, nil
	}

	mark := env.Turn()

	observation, rewards, done, err := env.Step(cell)
	if err != nil {
		return nil, fmt.Errorf("failed make step: %w", err)
	}

	if err = that.saveEnv(ctx, id, env); err != nil {
		return nil, err
	}

	log.Debug("step made", "mark", mark.String(), "cell", cell)

	if done {
		log.Info("episode finished", "status", env.Status().String(), "rewards", rewards)
	}

	return &StepResult{Observation: observation, Rewards: rewards, Done: done}, nil
}

func (that *SessionManager) Observe(ctx context.Context, id string) (entity.Observation, error) {
	env, err := that.loadEnv(ctx, id)
	if err != nil {
		return entity.Observation{}, err
	}

	return env.Observe(), nil
}

func (that *SessionManager) AvailableActions(ctx context.Context, id string) ([]int, error) {
	env, err := that.loadEnv(ctx, id)
	if err != nil {
		return nil, err
	}

	return env.AvailableActions(), nil
}

// Render writes the text board, with free cells numbered.
func (that *SessionManager) Render(ctx context.Context, id string, w io.Writer) error {
	env, err := that.loadEnv(ctx, id)
	if err != nil {
		return err
	}

	if err = env.Render(w, true); err != nil {
		return fmt.Errorf("failed render env: %w", err)
	}

	return nil
}

func (that *SessionManager) CloseEnv(ctx context.Context, id string) error {
	if err := that.episodeRepo.DeleteByID(ctx, id); err != nil {
		return fmt.Errorf("failed delete episode: %w", err)
	}

	that.logger.Info("env closed", "envID", id)

	return nil
}

func (that *SessionManager) loadEnv(ctx context.Context, id string) (*tictactoe.Env, error) {
	episode, err := that.episodeRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed get episode by id: %w", err)
	}

	env := tictactoe.NewEnv()
	if err = env.Restore(*episode); err != nil {
		return nil, fmt.Errorf("failed restore episode: %w", err)
	}

	return env, nil
}

func (that *SessionManager) saveEnv(ctx context.Context, id string, env *tictactoe.Env) error {
	episode := env.Snapshot(id)
	if err := that.episodeRepo.CreateOrUpdate(ctx, &episode); err != nil {
		return fmt.Errorf("failed update episode: %w", err)
	}

	return nil
}
