// Package storage holds the optional redis cache for single-conversion
// results. Identical uploads with identical parameters are deterministic, so
// the encoded payload can be replayed without re-running the pipeline.
package storage

import (
	"context"
	"crypto/md5"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"image-convert/internal/config"
	"image-convert/internal/models"
	"image-convert/internal/services/processor"
)

const cacheKeyPrefix = "img_cache:"

// Cache stores converted-image payloads in redis with a TTL.
type Cache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewCache(cfg config.RedisConfig) *Cache {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	return &Cache{
		client: client,
		ttl:    cfg.CacheTTL,
	}
}

// Ping verifies connectivity; used by the health endpoint.
func (c *Cache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

// Key derives a stable cache key from the file content and every parameter
// that influences the output.
func (c *Cache) Key(data []byte, opts processor.Options) string {
	hash := md5.New()
	hash.Write(data)
	fmt.Fprintf(hash, "f=%s;q=%d;w=%d;h=%d;m=%t;wt=%s;wp=%s;wc=%s",
		opts.Format, opts.Quality, opts.MaxWidth, opts.MaxHeight,
		opts.KeepMetadata, opts.WatermarkText, opts.WatermarkAnchor, opts.WatermarkColor)
	return fmt.Sprintf("%s%x", cacheKeyPrefix, hash.Sum(nil))
}

// Get returns the cached payload, or nil on a miss.
func (c *Cache) Get(ctx context.Context, key string) (*models.ConvertedImage, error) {
	data, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, fmt.Errorf("cache get: %w", err)
	}

	var payload models.ConvertedImage
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, fmt.Errorf("cache decode: %w", err)
	}
	return &payload, nil
}

// Set stores the payload under key for the configured TTL.
func (c *Cache) Set(ctx context.Context, key string, payload *models.ConvertedImage) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("cache encode: %w", err)
	}
	return c.client.Set(ctx, key, data, c.ttl).Err()
}

// Close releases the redis connection.
func (c *Cache) Close() error {
	return c.client.Close()
}
