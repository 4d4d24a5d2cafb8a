package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// keyPrefix отделяет ключи сервиса от чужих данных в общем Redis
const keyPrefix = "availability:"

// Redis кеш результатов поверх Redis.
// Используется, когда сервис работает в несколько реплик и нужен
// общий кеш; семантика та же, что у Memory (TTL, last-write-wins).
type Redis struct {
	client *redis.Client
}

// NewRedis создает Redis-кеш и проверяет соединение
func NewRedis(addr, password string, db int) (*Redis, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("cache: failed to connect to redis at %s: %w", addr, err)
	}

	return &Redis{client: client}, nil
}

// Close закрывает соединение с Redis
func (r *Redis) Close() error {
	return r.client.Close()
}

// Get возвращает payload по ключу; отсутствие ключа и любая ошибка
// Redis трактуются как промах (кеш не должен ломать путь чтения)
func (r *Redis) Get(ctx context.Context, key string) ([]byte, bool) {
	payload, err := r.client.Get(ctx, keyPrefix+key).Bytes()
	if err != nil {
		return nil, false
	}
	return payload, true
}

// Set сохраняет payload с заданным TTL
func (r *Redis) Set(ctx context.Context, key string, payload []byte, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	return r.client.Set(ctx, keyPrefix+key, payload, ttl).Err()
}

var _ Cache = (*Redis)(nil)
