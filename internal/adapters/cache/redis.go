// Package cache provides a Redis-backed read-through cache for article
// details. Misses and storage errors degrade to repository reads; the cache
// is never authoritative.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/emrekoca/penmark/internal/core/domain"
	"github.com/emrekoca/penmark/internal/infrastructure/metrics"
	"github.com/redis/go-redis/v9"
)

const articleTTL = 5 * time.Minute

// RedisCache implements ports.ArticleCache.
type RedisCache struct {
	client *redis.Client
}

// NewRedisCache connects to Redis at addr.
func NewRedisCache(addr string, password string, db int) *RedisCache {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	return &RedisCache{client: rdb}
}

func articleKey(siteID string, lang domain.Language, slug string) string {
	return fmt.Sprintf("article:%s:%s:%s", siteID, lang, slug)
}

func (r *RedisCache) Get(ctx context.Context, siteID string, lang domain.Language, slug string) (*domain.Article, bool) {
	val, err := r.client.Get(ctx, articleKey(siteID, lang, slug)).Bytes()
	if err != nil {
		metrics.CacheOperations.WithLabelValues("miss").Inc()
		return nil, false
	}

	var article domain.Article
	if err := json.Unmarshal(val, &article); err != nil {
		metrics.CacheOperations.WithLabelValues("miss").Inc()
		return nil, false
	}
	metrics.CacheOperations.WithLabelValues("hit").Inc()
	return &article, true
}

func (r *RedisCache) Set(ctx context.Context, article *domain.Article) {
	data, err := json.Marshal(article)
	if err != nil {
		log.Printf("failed to marshal article for cache: %v", err)
		return
	}
	r.client.Set(ctx, articleKey(article.SiteID, article.Language, article.Slug), data, articleTTL)
}

func (r *RedisCache) Invalidate(ctx context.Context, siteID string, lang domain.Language, slug string) {
	r.client.Del(ctx, articleKey(siteID, lang, slug))
}

func (r *RedisCache) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}
