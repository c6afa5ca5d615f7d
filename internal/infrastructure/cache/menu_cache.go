// Package cache implementa el caché de menús sobre Redis.
// Si no hay Redis configurado se usa la variante Noop y todas las
// lecturas resultan en miss.
package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/jhoicas/catalogo-api/internal/application/usecase"
	"github.com/jhoicas/catalogo-api/pkg/config"
)

const menuKeyPrefix = "menu:"

// RedisMenuCache guarda el menú compuesto de cada tenant serializado como JSON.
type RedisMenuCache struct {
	client *redis.Client
	ttl    time.Duration
}

var _ usecase.MenuCache = (*RedisMenuCache)(nil)

// NewRedis crea el caché y verifica la conexión con un ping.
func NewRedis(ctx context.Context, cfg config.RedisConfig) (*RedisMenuCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return &RedisMenuCache{
		client: client,
		ttl:    time.Duration(cfg.MenuTTLSec) * time.Second,
	}, nil
}

func menuKey(tenantID string) string {
	return menuKeyPrefix + tenantID
}

// Get retorna (nil, nil) cuando no hay entrada para el tenant.
func (c *RedisMenuCache) Get(ctx context.Context, tenantID string) ([]byte, error) {
	data, err := c.client.Get(ctx, menuKey(tenantID)).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get menú tenant %s: %w", tenantID, err)
	}
	return data, nil
}

func (c *RedisMenuCache) Set(ctx context.Context, tenantID string, data []byte) error {
	if err := c.client.Set(ctx, menuKey(tenantID), data, c.ttl).Err(); err != nil {
		return fmt.Errorf("set menú tenant %s: %w", tenantID, err)
	}
	return nil
}

func (c *RedisMenuCache) Invalidate(ctx context.Context, tenantID string) error {
	if err := c.client.Del(ctx, menuKey(tenantID)).Err(); err != nil {
		return fmt.Errorf("invalidar menú tenant %s: %w", tenantID, err)
	}
	return nil
}

// InvalidateAll borra las entradas de todos los tenants. Se usa tras una
// recarga completa del catálogo, donde no se conocen los tenants afectados
// de antemano.
func (c *RedisMenuCache) InvalidateAll(ctx context.Context) error {
	iter := c.client.Scan(ctx, 0, menuKeyPrefix+"*", 100).Iterator()
	for iter.Next(ctx) {
		if err := c.client.Del(ctx, iter.Val()).Err(); err != nil {
			return fmt.Errorf("invalidar %s: %w", iter.Val(), err)
		}
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("scan menús: %w", err)
	}
	return nil
}

// Close libera la conexión con Redis.
func (c *RedisMenuCache) Close() error {
	return c.client.Close()
}

// NoopMenuCache se usa cuando Redis no está configurado: cada Get es un
// miss y las escrituras se descartan.
type NoopMenuCache struct{}

var _ usecase.MenuCache = (*NoopMenuCache)(nil)

func (NoopMenuCache) Get(ctx context.Context, tenantID string) ([]byte, error) { return nil, nil }
func (NoopMenuCache) Set(ctx context.Context, tenantID string, data []byte) error {
	return nil
}
func (NoopMenuCache) Invalidate(ctx context.Context, tenantID string) error { return nil }
func (NoopMenuCache) InvalidateAll(ctx context.Context) error               { return nil }
