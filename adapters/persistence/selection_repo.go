package persistence

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/khoahotran/resume-builder/internal/domain/selection"
	"github.com/khoahotran/resume-builder/pkg/apperror"
)

type redisSelectionRepo struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewRedisSelectionRepo stores selections with a sliding TTL: every Set renews it.
func NewRedisSelectionRepo(rdb *redis.Client, ttl time.Duration) selection.Repository {
	return &redisSelectionRepo{rdb: rdb, ttl: ttl}
}

func selectionKey(userID uuid.UUID) string {
	return "session:" + userID.String() + ":selection"
}

func (r *redisSelectionRepo) Get(ctx context.Context, userID uuid.UUID) (*selection.Selection, error) {
	raw, err := r.rdb.Get(ctx, selectionKey(userID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, apperror.NewInternal("failed to read selection", err)
	}

	var sel selection.Selection
	if err := json.Unmarshal(raw, &sel); err != nil {
		return nil, apperror.NewInternal("failed to decode selection", err)
	}
	return &sel, nil
}

func (r *redisSelectionRepo) Set(ctx context.Context, userID uuid.UUID, sel selection.Selection) error {
	raw, err := json.Marshal(sel)
	if err != nil {
		return apperror.NewInternal("failed to encode selection", err)
	}
	if err := r.rdb.Set(ctx, selectionKey(userID), raw, r.ttl).Err(); err != nil {
		return apperror.NewInternal("failed to store selection", err)
	}
	return nil
}

func (r *redisSelectionRepo) Clear(ctx context.Context, userID uuid.UUID) error {
	if err := r.rdb.Del(ctx, selectionKey(userID)).Err(); err != nil {
		return apperror.NewInternal("failed to clear selection", err)
	}
	return nil
}
