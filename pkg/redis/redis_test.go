package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRedis(t *testing.T) (IRedis, *miniredis.Miniredis) {
	t.Helper()

	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	return NewFromClient(redis.NewClient(&redis.Options{Addr: mr.Addr()})), mr
}

func TestSetGetDelete(t *testing.T) {
	client, mr := newTestRedis(t)
	ctx := context.Background()

	require.NoError(t, client.Set(ctx, "conversation:u1", []byte(`{"turns":[]}`), time.Hour))

	got, err := client.Get(ctx, "conversation:u1")
	require.NoError(t, err)
	assert.JSONEq(t, `{"turns":[]}`, string(got))
	assert.Equal(t, time.Hour, mr.TTL("conversation:u1"))

	require.NoError(t, client.Delete(ctx, "conversation:u1"))
	_, err = client.Get(ctx, "conversation:u1")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGet_Expired(t *testing.T) {
	client, mr := newTestRedis(t)
	ctx := context.Background()

	require.NoError(t, client.Set(ctx, "k", []byte("v"), time.Minute))
	mr.FastForward(2 * time.Minute)

	_, err := client.Get(ctx, "k")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDelete_MissingKeyIsNotAnError(t *testing.T) {
	client, _ := newTestRedis(t)
	assert.NoError(t, client.Delete(context.Background(), "absent"))
}
