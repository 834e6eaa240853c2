// cache содержит блэклист access-токенов на базе Redis.
//
// Ключ — литеральное значение access-токена, TTL — окно, в течение которого
// токен должен отклоняться несмотря на валидную подпись и срок действия.
// Истечение ключей делегировано Redis; приложение ничего не поллит.
package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// TokenBlacklist — минимальный контракт блэклиста access-токенов.
type TokenBlacklist interface {
	// Add помещает токен в блэклист на ttl.
	// Ошибка записи фатальна для вызывающей операции отзыва:
	// вызывающий не должен считать токен отозванным, если запись не удалась.
	Add(ctx context.Context, token string, ttl time.Duration) error
	// Contains возвращает true, если токен присутствует в блэклисте.
	Contains(ctx context.Context, token string) (bool, error)
	// Remove удаляет токен из блэклиста (административный путь).
	Remove(ctx context.Context, token string) error
	// Close закрывает клиент Redis.
	Close() error
}

type redisBlacklist struct {
	rdb    *redis.Client
	prefix string
}

// NewRedisBlacklist создаёт клиент Redis из URL (например, redis://:pass@host:6379/0).
// Если prefix пустой — используется "wp:bl:".
func NewRedisBlacklist(redisURL, prefix string) (TokenBlacklist, error) {
	if prefix == "" {
		prefix = "wp:bl:"
	}

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, err
	}

	rdb := redis.NewClient(opt)

	// Fail-fast на старте.
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		return nil, err
	}

	return &redisBlacklist{rdb: rdb, prefix: prefix}, nil
}

func (c *redisBlacklist) key(token string) string { return c.prefix + token }

func (c *redisBlacklist) Add(ctx context.Context, token string, ttl time.Duration) error {
	if ttl <= 0 {
		// Остаточное время жизни уже исчерпано — запись бессмысленна.
		return nil
	}

	return c.rdb.Set(ctx, c.key(token), "1", ttl).Err()
}

func (c *redisBlacklist) Contains(ctx context.Context, token string) (bool, error) {
	n, err := c.rdb.Exists(ctx, c.key(token)).Result()
	if err != nil {
		return false, err
	}

	return n > 0, nil
}

func (c *redisBlacklist) Remove(ctx context.Context, token string) error {
	return c.rdb.Del(ctx, c.key(token)).Err()
}

func (c *redisBlacklist) Close() error { return c.rdb.Close() }
