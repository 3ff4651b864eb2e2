package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sbilibin2017/gw-expense-tracker/internal/logger"
)

// ErrCacheMiss is returned when no reference is cached for a digest.
var ErrCacheMiss = errors.New("attachment reference not cached")

// AttachmentCacheRepository maps uploaded content digests to their stored references in Redis
type AttachmentCacheRepository struct {
	client *redis.Client
	exp    time.Duration // expiration duration for cached references
}

// NewAttachmentCacheRepository creates a new repository instance with optional TTL
func NewAttachmentCacheRepository(client *redis.Client, expiration time.Duration) *AttachmentCacheRepository {
	return &AttachmentCacheRepository{
		client: client,
		exp:    expiration,
	}
}

func attachmentKey(folder, digest string) string {
	return fmt.Sprintf("attachment:%s:%s", folder, digest)
}

// GetReference returns the reference cached for the content digest in folder.
func (r *AttachmentCacheRepository) GetReference(ctx context.Context, folder, digest string) (string, error) {
	key := attachmentKey(folder, digest)

	val, err := r.client.Get(ctx, key).Result()

	logger.Log.Infow(
		"redis get",
		"key", key,
		"result", val,
		"error", err,
	)

	if errors.Is(err, redis.Nil) {
		return "", ErrCacheMiss
	}
	if err != nil {
		return "", err
	}
	return val, nil
}

// SetReference caches ref for the content digest in folder.
func (r *AttachmentCacheRepository) SetReference(ctx context.Context, folder, digest, ref string) error {
	key := attachmentKey(folder, digest)
	err := r.client.Set(ctx, key, ref, r.exp).Err()

	logger.Log.Infow(
		"redis set",
		"key", key,
		"value", ref,
		"error", err,
	)

	return err
}
