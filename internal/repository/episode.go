package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/guikarist/gym-tictactoe/internal/apperror"
	"github.com/guikarist/gym-tictactoe/internal/entity"
)

const episodeKeyPrefix = "episode:"

type EpisodeRepository interface {
	CreateOrUpdate(ctx context.Context, episode *entity.Episode) error
	GetByID(ctx context.Context, id string) (*entity.Episode, error)
	DeleteByID(ctx context.Context, id string) error
}

type dbEpisode struct {
	client *redis.Client
	ttl    time.Duration
}

// NewEpisodeRepository stores episodes as JSON. A zero ttl keeps them forever.
func NewEpisodeRepository(client *redis.Client, ttl time.Duration) EpisodeRepository {
	return &dbEpisode{
		client: client,
		ttl:    ttl,
	}
}

func (that *dbEpisode) CreateOrUpdate(ctx context.Context, episode *entity.Episode) error {
	episodeJSON, err := json.Marshal(episode)
	if err != nil {
		return fmt.Errorf("could not marshal episode: %w", err)
	}

	err = that.client.Set(ctx, episodeKeyPrefix+episode.ID, episodeJSON, that.ttl).Err()
	if err != nil {
		return fmt.Errorf("failed to set episode: %w", err)
	}

	return nil
}

func (that *dbEpisode) GetByID(ctx context.Context, id string) (*entity.Episode, error) {
	response, err := that.client.Get(ctx, episodeKeyPrefix+id).Result()

	if errors.Is(err, redis.Nil) {
		return nil, apperror.ErrEpisodeNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get episode by id: %w", err)
	}

	var episode entity.Episode
	if err = json.Unmarshal([]byte(response), &episode); err != nil {
		return nil, fmt.Errorf("failed to unmarshal episode: %w", err)
	}

	return &episode, nil
}

func (that *dbEpisode) DeleteByID(ctx context.Context, id string) error {
	deleted, err := that.client.Del(ctx, episodeKeyPrefix+id).Result()
	if err != nil {
		return fmt.Errorf("failed to delete episode by id: %w", err)
	}

	if deleted == 0 {
		return apperror.ErrEpisodeNotFound
	}

	return nil
}
