package rest

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/guikarist/gym-tictactoe/internal/apperror"
	"github.com/guikarist/gym-tictactoe/internal/entity"
	"github.com/guikarist/gym-tictactoe/internal/usecase"
)

var errActionRequired = errors.New("action is required")

type EnvHandler interface {
	CreateEnv(ctx echo.Context) error
	ResetEnv(ctx echo.Context) error
	Step(ctx echo.Context) error
	Observe(ctx echo.Context) error
	AvailableActions(ctx echo.Context) error
	Render(ctx echo.Context) error
	CloseEnv(ctx echo.Context) error
}

type sessionUseCase interface {
	CreateEnv(ctx context.Context, opts usecase.EnvOptions) (string, entity.Observation, error)
	Reset(ctx context.Context, id string, start entity.Mark) (entity.Observation, error)
	Step(ctx context.Context, id string, cell int) (*usecase.StepResult, error)
	Observe(ctx context.Context, id string) (entity.Observation, error)
	AvailableActions(ctx context.Context, id string) ([]int, error)
	Render(ctx context.Context, id string, w io.Writer) error
	CloseEnv(ctx context.Context, id string) error
}

type createEnvRequest struct {
	SymmetricalView *bool       `json:"symmetrical_view"`
	UseActionMask   *bool       `json:"use_action_mask"`
	StartMark       entity.Mark `json:"start_mark"`
}

type createEnvResponse struct {
	EnvID       string             `json:"env_id"`
	Observation entity.Observation `json:"observation"`
}

type resetRequest struct {
	StartMark entity.Mark `json:"start_mark"`
}

type stepRequest struct {
	Action *int `json:"action"`
}

type observationResponse struct {
	Observation entity.Observation `json:"observation"`
}

type actionsResponse struct {
	Actions []int `json:"actions"`
}

type errorResponse struct {
	Error string `json:"error"`
}

type envHandler struct {
	logger *slog.Logger

	session  sessionUseCase
	defaults usecase.EnvOptions
}

// NewEnvHandler serves remote environments. Fields omitted from a create request fall back to
// defaults.
func NewEnvHandler(logger *slog.Logger, session sessionUseCase, defaults usecase.EnvOptions) EnvHandler {
	return &envHandler{
		logger:   logger.With("component", "rest"),
		session:  session,
		defaults: defaults,
	}
}

func (that *envHandler) CreateEnv(ctx echo.Context) error {
	var req createEnvRequest
	if err := ctx.Bind(&req); err != nil {
		return that.badRequest(ctx, err)
	}

	opts := that.defaults
	if req.SymmetricalView != nil {
		opts.SymmetricalView = *req.SymmetricalView
	}

	if req.UseActionMask != nil {
		opts.UseActionMask = *req.UseActionMask
	}

	if req.StartMark != entity.EmptyCell {
		opts.StartMark = req.StartMark
	}

	id, observation, err := that.session.CreateEnv(ctx.Request().Context(), opts)
	if err != nil {
		return that.fail(ctx, "CreateEnv", err)
	}

	return ctx.JSON(http.StatusCreated, createEnvResponse{EnvID: id, Observation: observation})
}

func (that *envHandler) ResetEnv(ctx echo.Context) error {
	var req resetRequest
	if err := ctx.Bind(&req); err != nil {
		return that.badRequest(ctx, err)
	}

	start := req.StartMark
	if start == entity.EmptyCell {
		start = that.defaults.StartMark
	}

	observation, err := that.session.Reset(ctx.Request().Context(), ctx.Param("id"), start)
	if err != nil {
		return that.fail(ctx, "ResetEnv", err)
	}

	return ctx.JSON(http.StatusOK, observationResponse{Observation: observation})
}

func (that *envHandler) Step(ctx echo.Context) error {
	var req stepRequest
	if err := ctx.Bind(&req); err != nil {
		return that.badRequest(ctx, err)
	}

	if req.Action == nil {
		return that.badRequest(ctx, errActionRequired)
	}

	result, err := that.session.Step(ctx.Request().Context(), ctx.Param("id"), *req.Action)
	if err != nil {
		return that.fail(ctx, "Step", err)
	}

	return ctx.JSON(http.StatusOK, result)
}

func (that *envHandler) Observe(ctx echo.Context) error {
	observation, err := that.session.Observe(ctx.Request().Context(), ctx.Param("id"))
	if err != nil {
		return that.fail(ctx, "Observe", err)
	}

	return ctx.JSON(http.StatusOK, observationResponse{Observation: observation})
}

func (that *envHandler) AvailableActions(ctx echo.Context) error {
	actions, err := that.session.AvailableActions(ctx.Request().Context(), ctx.Param("id"))
	if err != nil {
		return that.fail(ctx, "AvailableActions", err)
	}

	return ctx.JSON(http.StatusOK, actionsResponse{Actions: actions})
}

func (that *envHandler) Render(ctx echo.Context) error {
	var buf bytes.Buffer
	if err := that.session.Render(ctx.Request().Context(), ctx.Param("id"), &buf); err != nil {
		return that.fail(ctx, "Render", err)
	}

	return ctx.String(http.StatusOK, buf.String())
}

func (that *envHandler) CloseEnv(ctx echo.Context) error {
	if err := that.session.CloseEnv(ctx.Request().Context(), ctx.Param("id")); err != nil {
		return that.fail(ctx, "CloseEnv", err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

func (that *envHandler) badRequest(ctx echo.Context, err error) error {
	message := err.Error()

	// binding failures come back as *echo.HTTPError carrying the decoder message
	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		if text, ok := httpErr.Message.(string); ok {
			message = text
		}
	}

	return ctx.JSON(http.StatusBadRequest, errorResponse{Error: message})
}

func (that *envHandler) fail(ctx echo.Context, method string, err error) error {
	status := statusFromError(err)
	if status == http.StatusInternalServerError {
		that.logger.Error("request failed", "method", method, "envID", ctx.Param("id"), "error", err)
		return ctx.JSON(status, errorResponse{Error: http.StatusText(status)})
	}

	that.logger.Debug("request rejected", "method", method, "envID", ctx.Param("id"), "error", err)

	return ctx.JSON(status, errorResponse{Error: err.Error()})
}

func statusFromError(err error) int {
	switch {
	case errors.Is(err, apperror.ErrEpisodeNotFound):
		return http.StatusNotFound
	case errors.Is(err, apperror.ErrInvalidMove):
		return http.StatusUnprocessableEntity
	case errors.Is(err, apperror.ErrInvalidMark):
		return http.StatusBadRequest
	case errors.Is(err, apperror.ErrEnvNotReset):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
