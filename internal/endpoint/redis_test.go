package endpoint_test

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	backend "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Iron-Ham/tripplan/internal/endpoint"
	"github.com/Iron-Ham/tripplan/internal/errors"
)

func newMiniredisClient(t *testing.T) (*miniredis.Miniredis, *backend.Client) {
	t.Helper()
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := backend.NewClient(&backend.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return mr, client
}

func TestRedisStore_Contract(t *testing.T) {
	runStoreContract(t, func(t *testing.T) endpoint.Store {
		_, client := newMiniredisClient(t)
		return endpoint.NewRedisStoreFromClient(client)
	})
}

func TestRedisStore_Key(t *testing.T) {
	ctx := context.Background()
	mr, client := newMiniredisClient(t)

	s := endpoint.NewRedisStoreFromClient(client, endpoint.WithPrefix("team:"))
	require.NoError(t, s.Save(ctx, "http://planner.internal/"))

	assert.Equal(t, "team:api_base", s.Key())
	got, err := mr.Get("team:api_base")
	require.NoError(t, err)
	assert.Equal(t, "http://planner.internal", got)

	assert.False(t, mr.Exists("tripplan:api_base"))
}

func TestRedisStore_Unavailable(t *testing.T) {
	ctx := context.Background()
	mr, client := newMiniredisClient(t)
	s := endpoint.NewRedisStoreFromClient(client)
	mr.Close()

	got, err := s.Load(ctx)
	require.Error(t, err)
	assert.Equal(t, endpoint.DefaultEndpoint, got)
	assert.ErrorIs(t, err, errors.ErrStoreUnavailable)

	err = s.Save(ctx, "http://x")
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrStoreUnavailable)
}
