// Package cache implementa la caché de perfiles sobre Redis.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/jhoicas/tpv-panel-api/internal/domain/entity"
	"github.com/jhoicas/tpv-panel-api/internal/domain/repository"
	"github.com/jhoicas/tpv-panel-api/pkg/config"
)

var _ repository.ProfileCache = (*ProfileCache)(nil)

const profileKeyPrefix = "profile:"

// ProfileCache guarda el documento de perfil serializado en JSON con TTL.
type ProfileCache struct {
	client redis.UniversalClient
	ttl    time.Duration
}

// NewClient abre la conexión a Redis y verifica que responde.
func NewClient(ctx context.Context, cfg config.RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return client, nil
}

// NewProfileCache construye la caché. ttl <= 0 usa 5 minutos.
func NewProfileCache(client redis.UniversalClient, ttl time.Duration) *ProfileCache {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &ProfileCache{client: client, ttl: ttl}
}

// Get devuelve (perfil, true, nil) si está en caché y (nil, false, nil) si no.
func (c *ProfileCache) Get(ctx context.Context, userID string) (*entity.Profile, bool, error) {
	raw, err := c.client.Get(ctx, profileKey(userID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("cache get: %w", err)
	}
	var p entity.Profile
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, false, fmt.Errorf("cache decode: %w", err)
	}
	return &p, true, nil
}

// Set guarda el perfil con el TTL configurado.
func (c *ProfileCache) Set(ctx context.Context, p *entity.Profile) error {
	raw, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("cache encode: %w", err)
	}
	if err := c.client.Set(ctx, profileKey(p.UserID), raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("cache set: %w", err)
	}
	return nil
}

// Delete invalida el perfil del usuario.
func (c *ProfileCache) Delete(ctx context.Context, userID string) error {
	if err := c.client.Del(ctx, profileKey(userID)).Err(); err != nil {
		return fmt.Errorf("cache del: %w", err)
	}
	return nil
}

func profileKey(userID string) string {
	return profileKeyPrefix + userID
}
