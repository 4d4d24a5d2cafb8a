package cache

import (
	"context"
	"time"
)

// Cache интерфейс кеша результатов доступности.
// Записи иммутабельны и просто истекают по TTL; явной инвалидации нет -
// новая бронь может оставлять устаревший результат видимым до конца TTL,
// это принятый компромисс. Чтение после истечения TTL равносильно промаху.
type Cache interface {
	// Get возвращает сохраненный payload или ok=false при промахе
	Get(ctx context.Context, key string) ([]byte, bool)

	// Set сохраняет payload с заданным TTL (last-write-wins по ключу)
	Set(ctx context.Context, key string, payload []byte, ttl time.Duration) error
}
