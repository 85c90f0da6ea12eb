package usecase

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/guikarist/gym-tictactoe/internal/apperror"
	"github.com/guikarist/gym-tictactoe/internal/entity"
	mockedUseCase "github.com/guikarist/gym-tictactoe/mocks/usecase"
)

var (
	errRedisDown    = errors.New("redis down")
	errStorageIsFull = errors.New("storage is full")
)

const (
	o = entity.PlayerO
	x = entity.PlayerX
	e = entity.EmptyCell
)

func newTestManager(t *testing.T) (*SessionManager, *mockedUseCase.MockepisodeRepo) {
	t.Helper()

	repo := mockedUseCase.NewMockepisodeRepo(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return NewSessionManager(logger, repo), repo
}

func TestSessionManager_CreateEnv(t *testing.T) {
	ctx := context.Background()

	t.Run("Creates and stores a reset env", func(t *testing.T) {
		// Given: a session manager with a repository accepting writes
		manager, repo := newTestManager(t)

		var saved *entity.Episode
		repo.EXPECT().
			CreateOrUpdate(mock.Anything, mock.AnythingOfType("*entity.Episode")).
			Run(func(_ context.Context, episode *entity.Episode) { saved = episode }).
			Return(nil).
			Once()

		// When: creating an env with default options
		id, observation, err := manager.CreateEnv(ctx, EnvOptions{})

		// Then: a fresh episode with O to move is stored under the returned id
		require.NoError(t, err)
		assert.NotEmpty(t, id)
		assert.Equal(t, [entity.BoardSize]int{}, observation.Board)
		assert.Nil(t, observation.ActionMask)

		require.NotNil(t, saved)
		assert.Equal(t, id, saved.ID)
		assert.Equal(t, entity.Board{}, saved.Board)
		assert.Equal(t, o, saved.Turn)
		assert.Equal(t, o, saved.StartMark)
		assert.False(t, saved.Done)
	})

	t.Run("Keeps the requested options", func(t *testing.T) {
		// Given: a session manager with a repository accepting writes
		manager, repo := newTestManager(t)

		var saved *entity.Episode
		repo.EXPECT().
			CreateOrUpdate(mock.Anything, mock.AnythingOfType("*entity.Episode")).
			Run(func(_ context.Context, episode *entity.Episode) { saved = episode }).
			Return(nil).
			Once()

		// When: creating an env where X starts with both view options on
		_, observation, err := manager.CreateEnv(ctx, EnvOptions{
			SymmetricalView: true,
			UseActionMask:   true,
			StartMark:       x,
		})

		// Then: the mask is returned and the options are stored
		require.NoError(t, err)
		assert.Equal(t, []bool{true, true, true, true, true, true, true, true, true}, observation.ActionMask)
		assert.Equal(t, x, saved.Turn)
		assert.Equal(t, x, saved.StartMark)
		assert.True(t, saved.SymmetricalView)
		assert.True(t, saved.UseActionMask)
	})

	t.Run("Each env gets its own id", func(t *testing.T) {
		manager, repo := newTestManager(t)

		repo.EXPECT().
			CreateOrUpdate(mock.Anything, mock.AnythingOfType("*entity.Episode")).
			Return(nil).
			Twice()

		first, _, err := manager.CreateEnv(ctx, EnvOptions{})
		require.NoError(t, err)

		second, _, err := manager.CreateEnv(ctx, EnvOptions{})
		require.NoError(t, err)

		assert.NotEqual(t, first, second)
	})

	t.Run("Rejects an invalid start mark", func(t *testing.T) {
		// Given: a session manager whose repository must not be touched
		manager, _ := newTestManager(t)

		// When: creating an env with an unknown start mark
		_, _, err := manager.CreateEnv(ctx, EnvOptions{StartMark: entity.Mark(5)})

		// Then: an invalid mark error is returned
		require.ErrorIs(t, err, apperror.ErrInvalidMark)
	})

	t.Run("Returns error when the repository fails", func(t *testing.T) {
		// Given: a repository that cannot store episodes
		manager, repo := newTestManager(t)

		repo.EXPECT().
			CreateOrUpdate(mock.Anything, mock.AnythingOfType("*entity.Episode")).
			Return(errStorageIsFull).
			Once()

		// When: creating an env
		id, _, err := manager.CreateEnv(ctx, EnvOptions{})

		// Then: the storage error is returned
		require.ErrorIs(t, err, errStorageIsFull)
		assert.Empty(t, id)
	})

	t.Run("Returns error when id generation fails", func(t *testing.T) {
		manager, _ := newTestManager(t)
		manager.generateID = func() (string, error) { return "", io.ErrUnexpectedEOF }

		_, _, err := manager.CreateEnv(ctx, EnvOptions{})

		require.ErrorIs(t, err, io.ErrUnexpectedEOF)
	})
}

func TestSessionManager_Step(t *testing.T) {
	ctx := context.Background()

	t.Run("Places the mark and passes the turn", func(t *testing.T) {
		// Given: a stored fresh episode
		manager, repo := newTestManager(t)

		repo.EXPECT().
			GetByID(mock.Anything, "env1").
			Return(&entity.Episode{ID: "env1", Turn: o, StartMark: o}, nil).
			Once()

		var saved *entity.Episode
		repo.EXPECT().
			CreateOrUpdate(mock.Anything, mock.AnythingOfType("*entity.Episode")).
			Run(func(_ context.Context, episode *entity.Episode) { saved = episode }).
			Return(nil).
			Once()

		// When: O plays the center
		result, err := manager.Step(ctx, "env1", 4)

		// Then: the board is updated and X is to move
		require.NoError(t, err)
		assert.False(t, result.Done)
		assert.Equal(t, entity.Rewards{0, 0}, result.Rewards)
		assert.Equal(t, entity.NoughtCode, result.Observation.Board[4])

		assert.Equal(t, "env1", saved.ID)
		assert.Equal(t, o, saved.Board[4])
		assert.Equal(t, x, saved.Turn)
	})

	t.Run("Winning move finishes the episode", func(t *testing.T) {
		// Given: O can complete the top row
		manager, repo := newTestManager(t)

		repo.EXPECT().
			GetByID(mock.Anything, "env1").
			Return(&entity.Episode{
				ID:        "env1",
				Board:     entity.Board{o, o, e, x, x, e, e, e, e},
				Turn:      o,
				StartMark: o,
			}, nil).
			Once()

		var saved *entity.Episode
		repo.EXPECT().
			CreateOrUpdate(mock.Anything, mock.AnythingOfType("*entity.Episode")).
			Run(func(_ context.Context, episode *entity.Episode) { saved = episode }).
			Return(nil).
			Once()

		// When: O plays cell 2
		result, err := manager.Step(ctx, "env1", 2)

		// Then: the starting side is rewarded and the finished episode is stored
		require.NoError(t, err)
		assert.True(t, result.Done)
		assert.Equal(t, entity.Rewards{entity.WinReward, entity.LoseReward}, result.Rewards)
		assert.True(t, saved.Done)
		assert.Equal(t, x, saved.Turn)
	})

	t.Run("Rewards are ordered by the starting side", func(t *testing.T) {
		// Given: X started and O can complete the top row
		manager, repo := newTestManager(t)

		repo.EXPECT().
			GetByID(mock.Anything, "env1").
			Return(&entity.Episode{
				ID:        "env1",
				Board:     entity.Board{o, o, e, x, x, e, x, e, e},
				Turn:      o,
				StartMark: x,
			}, nil).
			Once()
		repo.EXPECT().
			CreateOrUpdate(mock.Anything, mock.AnythingOfType("*entity.Episode")).
			Return(nil).
			Once()

		// When: O wins
		result, err := manager.Step(ctx, "env1", 2)

		// Then: the starting side X loses
		require.NoError(t, err)
		assert.Equal(t, entity.Rewards{entity.LoseReward, entity.WinReward}, result.Rewards)
	})

	t.Run("Step after the end is not stored", func(t *testing.T) {
		// Given: a finished episode
		manager, repo := newTestManager(t)

		repo.EXPECT().
			GetByID(mock.Anything, "env1").
			Return(&entity.Episode{
				ID:        "env1",
				Board:     entity.Board{o, o, o, x, x, e, e, e, e},
				Turn:      x,
				StartMark: o,
				Done:      true,
			}, nil).
			Once()

		// When: stepping again
		result, err := manager.Step(ctx, "env1", 5)

		// Then: zero rewards are returned and nothing is written
		require.NoError(t, err)
		assert.True(t, result.Done)
		assert.Equal(t, entity.Rewards{}, result.Rewards)
		assert.Equal(t, entity.NullCode, result.Observation.Board[5])
	})

	t.Run("Invalid move is not stored", func(t *testing.T) {
		// Given: cell 0 is taken
		manager, repo := newTestManager(t)

		repo.EXPECT().
			GetByID(mock.Anything, "env1").
			Return(&entity.Episode{ID: "env1", Board: entity.Board{o}, Turn: x, StartMark: o}, nil).
			Times(2)

		// When: X plays the taken cell and then a cell off the board
		_, occupiedErr := manager.Step(ctx, "env1", 0)
		_, rangeErr := manager.Step(ctx, "env1", 9)

		// Then: both fail as invalid moves
		require.ErrorIs(t, occupiedErr, apperror.ErrInvalidMove)
		require.ErrorIs(t, rangeErr, apperror.ErrInvalidMove)
	})

	t.Run("Unknown env", func(t *testing.T) {
		manager, repo := newTestManager(t)

		repo.EXPECT().
			GetByID(mock.Anything, "missing").
			Return((*entity.Episode)(nil), apperror.ErrEpisodeNotFound).
			Once()

		result, err := manager.Step(ctx, "missing", 0)

		require.ErrorIs(t, err, apperror.ErrEpisodeNotFound)
		assert.Nil(t, result)
	})

	t.Run("Corrupted episode", func(t *testing.T) {
		// Given: a stored episode with no side to move
		manager, repo := newTestManager(t)

		repo.EXPECT().
			GetByID(mock.Anything, "env1").
			Return(&entity.Episode{ID: "env1", StartMark: o}, nil).
			Once()

		// When: stepping
		_, err := manager.Step(ctx, "env1", 0)

		// Then: the restore error is returned
		require.ErrorIs(t, err, apperror.ErrInvalidMark)
	})

	t.Run("Returns error when saving fails", func(t *testing.T) {
		manager, repo := newTestManager(t)

		repo.EXPECT().
			GetByID(mock.Anything, "env1").
			Return(&entity.Episode{ID: "env1", Turn: o, StartMark: o}, nil).
			Once()
		repo.EXPECT().
			CreateOrUpdate(mock.Anything, mock.AnythingOfType("*entity.Episode")).
			Return(errRedisDown).
			Once()

		_, err := manager.Step(ctx, "env1", 0)

		require.ErrorIs(t, err, errRedisDown)
	})
}

func TestSessionManager_Reset(t *testing.T) {
	ctx := context.Background()

	t.Run("Clears the board and keeps the options", func(t *testing.T) {
		// Given: a finished episode with the action mask on
		manager, repo := newTestManager(t)

		repo.EXPECT().
			GetByID(mock.Anything, "env1").
			Return(&entity.Episode{
				ID:            "env1",
				Board:         entity.Board{o, o, o, x, x, e, e, e, e},
				Turn:          x,
				StartMark:     o,
				Done:          true,
				UseActionMask: true,
			}, nil).
			Once()

		var saved *entity.Episode
		repo.EXPECT().
			CreateOrUpdate(mock.Anything, mock.AnythingOfType("*entity.Episode")).
			Run(func(_ context.Context, episode *entity.Episode) { saved = episode }).
			Return(nil).
			Once()

		// When: resetting with X to start
		observation, err := manager.Reset(ctx, "env1", x)

		// Then: a fresh episode is stored
		require.NoError(t, err)
		assert.Equal(t, [entity.BoardSize]int{}, observation.Board)
		assert.Len(t, observation.ActionMask, entity.BoardSize)
		assert.Equal(t, entity.Board{}, saved.Board)
		assert.Equal(t, x, saved.Turn)
		assert.Equal(t, x, saved.StartMark)
		assert.False(t, saved.Done)
		assert.True(t, saved.UseActionMask)
	})

	t.Run("Unknown env", func(t *testing.T) {
		manager, repo := newTestManager(t)

		repo.EXPECT().
			GetByID(mock.Anything, "missing").
			Return((*entity.Episode)(nil), apperror.ErrEpisodeNotFound).
			Once()

		_, err := manager.Reset(ctx, "missing", o)

		require.ErrorIs(t, err, apperror.ErrEpisodeNotFound)
	})
}

func TestSessionManager_Queries(t *testing.T) {
	ctx := context.Background()

	stored := &entity.Episode{
		ID:              "env1",
		Board:           entity.Board{o, e, e, e, x, e, e, e, e},
		Turn:            o,
		StartMark:       o,
		SymmetricalView: true,
	}

	t.Run("Observe", func(t *testing.T) {
		manager, repo := newTestManager(t)
		repo.EXPECT().GetByID(mock.Anything, "env1").Return(stored, nil).Once()

		observation, err := manager.Observe(ctx, "env1")

		require.NoError(t, err)
		assert.Equal(t, [entity.BoardSize]int{1, 0, 0, 0, 2, 0, 0, 0, 0}, observation.Board)
	})

	t.Run("AvailableActions", func(t *testing.T) {
		manager, repo := newTestManager(t)
		repo.EXPECT().GetByID(mock.Anything, "env1").Return(stored, nil).Once()

		actions, err := manager.AvailableActions(ctx, "env1")

		require.NoError(t, err)
		assert.Equal(t, []int{1, 2, 3, 5, 6, 7, 8}, actions)
	})

	t.Run("Render", func(t *testing.T) {
		manager, repo := newTestManager(t)
		repo.EXPECT().GetByID(mock.Anything, "env1").Return(stored, nil).Once()

		var buf bytes.Buffer
		err := manager.Render(ctx, "env1", &buf)

		require.NoError(t, err)
		assert.Equal(t, "  O|1|2\n  -----\n  3|X|5\n  -----\n  6|7|8\nO's turn.\n\n", buf.String())
	})

	t.Run("Unknown env", func(t *testing.T) {
		manager, repo := newTestManager(t)
		repo.EXPECT().
			GetByID(mock.Anything, "missing").
			Return((*entity.Episode)(nil), apperror.ErrEpisodeNotFound).
			Times(3)

		_, observeErr := manager.Observe(ctx, "missing")
		_, actionsErr := manager.AvailableActions(ctx, "missing")
		renderErr := manager.Render(ctx, "missing", io.Discard)

		require.ErrorIs(t, observeErr, apperror.ErrEpisodeNotFound)
		require.ErrorIs(t, actionsErr, apperror.ErrEpisodeNotFound)
		require.ErrorIs(t, renderErr, apperror.ErrEpisodeNotFound)
	})
}

func TestSessionManager_CloseEnv(t *testing.T) {
	ctx := context.Background()

	t.Run("Deletes the episode", func(t *testing.T) {
		manager, repo := newTestManager(t)
		repo.EXPECT().DeleteByID(mock.Anything, "env1").Return(nil).Once()

		require.NoError(t, manager.CloseEnv(ctx, "env1"))
	})

	t.Run("Unknown env", func(t *testing.T) {
		manager, repo := newTestManager(t)
		repo.EXPECT().DeleteByID(mock.Anything, "missing").Return(apperror.ErrEpisodeNotFound).Once()

		require.ErrorIs(t, manager.CloseEnv(ctx, "missing"), apperror.ErrEpisodeNotFound)
	})
}
