package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/gokhangunesyou-cmd/qrmenu-sub001/internal/application/dto"
	"github.com/gokhangunesyou-cmd/qrmenu-sub001/internal/application/usecase"
	"github.com/gokhangunesyou-cmd/qrmenu-sub001/pkg/logger"
)

var _ usecase.MenuCache = (*RedisMenuCache)(nil)

// RedisMenuCache cache read-through del menú público sobre Redis. Es
// best-effort: cualquier falla de Redis se registra y la petición sigue
// contra la base de datos.
type RedisMenuCache struct {
	rdb *redis.Client
	ttl time.Duration
	log *logger.Logger
}

// NewRedisMenuCache construye el cache del menú público.
func NewRedisMenuCache(rdb *redis.Client, ttl time.Duration, log *logger.Logger) *RedisMenuCache {
	return &RedisMenuCache{rdb: rdb, ttl: ttl, log: log}
}

func menuKey(restaurantID int64) string {
	return fmt.Sprintf("menu:%d", restaurantID)
}

// Get devuelve el menú cacheado y true, o false si no hay entrada.
func (c *RedisMenuCache) Get(ctx context.Context, restaurantID int64) (*dto.MenuResponse, bool) {
	raw, err := c.rdb.Get(ctx, menuKey(restaurantID)).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.log.Warn().Err(err).Int64("restaurant_id", restaurantID).Msg("cache de menú: fallo en GET")
		}
		return nil, false
	}
	var menu dto.MenuResponse
	if err := json.Unmarshal(raw, &menu); err != nil {
		c.log.Warn().Err(err).Int64("restaurant_id", restaurantID).Msg("cache de menú: entrada corrupta")
		return nil, false
	}
	return &menu, true
}

// Set guarda el menú con el TTL configurado.
func (c *RedisMenuCache) Set(ctx context.Context, restaurantID int64, menu *dto.MenuResponse) {
	raw, err := json.Marshal(menu)
	if err != nil {
		c.log.Warn().Err(err).Int64("restaurant_id", restaurantID).Msg("cache de menú: fallo al serializar")
		return
	}
	if err := c.rdb.Set(ctx, menuKey(restaurantID), raw, c.ttl).Err(); err != nil {
		c.log.Warn().Err(err).Int64("restaurant_id", restaurantID).Msg("cache de menú: fallo en SET")
	}
}

// Invalidate borra la entrada del restaurante. Se llama tras cada escritura
// que cambia lo visible en el menú público.
func (c *RedisMenuCache) Invalidate(ctx context.Context, restaurantID int64) {
	if err := c.rdb.Del(ctx, menuKey(restaurantID)).Err(); err != nil {
		c.log.Warn().Err(err).Int64("restaurant_id", restaurantID).Msg("cache de menú: fallo al invalidar")
	}
}

// NoopMenuCache implementación nula para cuando Redis está deshabilitado
// (tests y entornos mínimos).
type NoopMenuCache struct{}

var _ usecase.MenuCache = NoopMenuCache{}

func (NoopMenuCache) Get(context.Context, int64) (*dto.MenuResponse, bool) { return nil, false }
func (NoopMenuCache) Set(context.Context, int64, *dto.MenuResponse)       {}
func (NoopMenuCache) Invalidate(context.Context, int64)                   {}
