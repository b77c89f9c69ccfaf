package repositories

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/felirami/neetme/internal/models"
)

func TestProfileCacheRepository(t *testing.T) {
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "redis:7.0-alpine",
		ExposedPorts: []string{"6379/tcp"},
		WaitingFor:   wait.ForListeningPort("6379/tcp"),
	}
	redisC, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	assert.NoError(t, err)
	defer redisC.Terminate(ctx)

	host, err := redisC.Host(ctx)
	assert.NoError(t, err)
	port, err := redisC.MappedPort(ctx, "6379")
	assert.NoError(t, err)

	rdb := redis.NewClient(&redis.Options{
		Addr: fmt.Sprintf("%s:%s", host, port.Port()),
	})
	defer rdb.Close()

	err = rdb.Ping(ctx).Err()
	assert.NoError(t, err)

	repo := NewProfileCacheRepository(rdb, 2*time.Second)

	view := &models.ProfileView{
		Username:    "alice",
		DisplayName: "Alice",
		Links: []models.LinkView{
			{ID: "1", Title: "GitHub", URL: "https://github.com/alice", BackgroundColor: "#181717"},
		},
	}

	t.Run("Set and Get", func(t *testing.T) {
		err := repo.Set(ctx, "alice", view)
		assert.NoError(t, err)

		got, err := repo.Get(ctx, "alice")
		assert.NoError(t, err)
		assert.Equal(t, view, got)
	})

	t.Run("Miss returns nil", func(t *testing.T) {
		got, err := repo.Get(ctx, "nobody")
		assert.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("Invalidate", func(t *testing.T) {
		err := repo.Set(ctx, "bob", view)
		assert.NoError(t, err)

		err = repo.Invalidate(ctx, "bob")
		assert.NoError(t, err)

		got, err := repo.Get(ctx, "bob")
		assert.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("Expires", func(t *testing.T) {
		err := repo.Set(ctx, "carol", view)
		assert.NoError(t, err)

		time.Sleep(3 * time.Second)

		got, err := repo.Get(ctx, "carol")
		assert.NoError(t, err)
		assert.Nil(t, got)
	})
}
