package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/khoahotran/resume-builder/internal/application/service"
	"github.com/khoahotran/resume-builder/pkg/apperror"
)

type redisExportCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewRedisExportCache(rdb *redis.Client, ttl time.Duration) service.ExportCache {
	return &redisExportCache{rdb: rdb, ttl: ttl}
}

func exportKey(resumeID uuid.UUID, key string) string {
	return "export:" + resumeID.String() + ":" + key
}

// exportIndexKey tracks every cached key of a resume so one update can drop them all.
func exportIndexKey(resumeID uuid.UUID) string {
	return "export:" + resumeID.String() + ":keys"
}

func (c *redisExportCache) Get(ctx context.Context, resumeID uuid.UUID, key string) ([]byte, bool, error) {
	pdf, err := c.rdb.Get(ctx, exportKey(resumeID, key)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, apperror.NewInternal("failed to read export cache", err)
	}
	return pdf, true, nil
}

func (c *redisExportCache) Set(ctx context.Context, resumeID uuid.UUID, key string, pdf []byte) error {
	full := exportKey(resumeID, key)
	index := exportIndexKey(resumeID)
	_, err := c.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, full, pdf, c.ttl)
		pipe.SAdd(ctx, index, full)
		pipe.Expire(ctx, index, c.ttl)
		return nil
	})
	if err != nil {
		return apperror.NewInternal("failed to write export cache", err)
	}
	return nil
}

func (c *redisExportCache) Invalidate(ctx context.Context, resumeID uuid.UUID) error {
	index := exportIndexKey(resumeID)
	keys, err := c.rdb.SMembers(ctx, index).Result()
	if err != nil {
		return apperror.NewInternal("failed to list export cache keys", err)
	}
	if err := c.rdb.Del(ctx, append(keys, index)...).Err(); err != nil {
		return apperror.NewInternal("failed to invalidate export cache", err)
	}
	return nil
}
