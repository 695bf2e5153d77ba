package cache_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/tpv-panel-api/internal/domain/entity"
	"github.com/jhoicas/tpv-panel-api/internal/infrastructure/cache"
	"github.com/jhoicas/tpv-panel-api/pkg/config"
)

func TestProfileCache_Redis(t *testing.T) {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		t.Skip("set REDIS_ADDR para ejecutar este test")
	}
	ctx := context.Background()
	client, err := cache.NewClient(ctx, config.RedisConfig{Addr: addr})
	require.NoError(t, err)
	defer client.Close()

	c := cache.NewProfileCache(client, time.Minute)
	userID := "test-" + time.Now().Format("150405.000000")

	_, ok, err := c.Get(ctx, userID)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, c.Set(ctx, &entity.Profile{UserID: userID, Nombre: "Ana", NombreCajero: "Cajero"}))

	got, ok, err := c.Get(ctx, userID)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "Ana", got.Nombre)
	assert.Equal(t, "Cajero", got.NombreCajero)

	ttl, err := client.TTL(ctx, "profile:"+userID).Result()
	require.NoError(t, err)
	assert.Greater(t, ttl, time.Duration(0))

	require.NoError(t, c.Delete(ctx, userID))
	_, ok, err = c.Get(ctx, userID)
	require.NoError(t, err)
	assert.False(t, ok)
}
