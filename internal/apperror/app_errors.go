package apperror

import "errors"

var (
	ErrInvalidMove     = errors.New("invalid move")
	ErrEnvNotReset     = errors.New("environment is not reset")
	ErrInvalidMark     = errors.New("invalid mark")
	ErrEpisodeNotFound = errors.New("episode not found")
)
