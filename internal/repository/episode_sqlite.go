package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/guikarist/gym-tictactoe/internal/apperror"
	"github.com/guikarist/gym-tictactoe/internal/entity"
)

type sqliteEpisode struct {
	conn *sql.DB
	ttl  time.Duration
	now  func() time.Time
}

// NewSQLiteEpisodeRepository stores episodes as JSON rows of the episodes table. A zero ttl
// keeps them forever.
func NewSQLiteEpisodeRepository(conn *sql.DB, ttl time.Duration) EpisodeRepository {
	return &sqliteEpisode{
		conn: conn,
		ttl:  ttl,
		now:  time.Now,
	}
}

func (that *sqliteEpisode) CreateOrUpdate(ctx context.Context, episode *entity.Episode) error {
	episodeJSON, err := json.Marshal(episode)
	if err != nil {
		return fmt.Errorf("could not marshal episode: %w", err)
	}

	query := `INSERT INTO episodes (id, data, expires_at) VALUES (?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET data = excluded.data, expires_at = excluded.expires_at`

	_, err = that.conn.ExecContext(ctx, query, episode.ID, string(episodeJSON), that.expiresAt())
	if err != nil {
		return fmt.Errorf("can't save episode: %w", err)
	}

	return nil
}

func (that *sqliteEpisode) GetByID(ctx context.Context, id string) (*entity.Episode, error) {
	query := `SELECT data FROM episodes WHERE id = ? AND (expires_at = 0 OR expires_at > ?)`

	var data string

	err := that.conn.QueryRowContext(ctx, query, id, that.now().UnixNano()).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperror.ErrEpisodeNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("can't find episode: %w", err)
	}

	var episode entity.Episode
	if err = json.Unmarshal([]byte(data), &episode); err != nil {
		return nil, fmt.Errorf("failed to unmarshal episode: %w", err)
	}

	return &episode, nil
}

func (that *sqliteEpisode) DeleteByID(ctx context.Context, id string) error {
	query := `DELETE FROM episodes WHERE id = ? AND (expires_at = 0 OR expires_at > ?)`

	result, err := that.conn.ExecContext(ctx, query, id, that.now().UnixNano())
	if err != nil {
		return fmt.Errorf("can't delete episode: %w", err)
	}

	deleted, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("can't delete episode: %w", err)
	}

	if deleted == 0 {
		return apperror.ErrEpisodeNotFound
	}

	return nil
}

func (that *sqliteEpisode) expiresAt() int64 {
	if that.ttl <= 0 {
		return 0
	}

	return that.now().Add(that.ttl).UnixNano()
}
