package assistantRepository

import (
	"AgriVision/internal/entity"
	redisPkg "AgriVision/pkg/redis"
	"context"
	"io"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepository(t *testing.T) (Repository, *miniredis.Miniredis) {
	t.Helper()

	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	store := redisPkg.NewFromClient(redis.NewClient(&redis.Options{Addr: mr.Addr()}))
	return New(store, logger), mr
}

func TestConversationRoundTrip(t *testing.T) {
	repo, mr := newTestRepository(t)
	ctx := context.Background()
	now := time.Date(2024, 11, 2, 9, 30, 0, 0, time.UTC)

	conversation := entity.ConversationContext{
		SessionID: "01HXYZ",
		Turns: []entity.ConversationTurn{
			{Role: entity.RoleUser, Content: "When should I irrigate wheat?", CreatedAt: now},
			{Role: entity.RoleAssistant, Content: "🌾 **Wheat Irrigation**: ...", Strategy: entity.StrategyKeyword, CreatedAt: now},
		},
		UpdatedAt: now,
	}

	require.NoError(t, repo.SaveConversation(ctx, "user-1", conversation, time.Hour))
	assert.True(t, mr.Exists("agrivision:conversation:user-1"))
	assert.Equal(t, time.Hour, mr.TTL("agrivision:conversation:user-1"))

	got, err := repo.GetConversation(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, conversation.SessionID, got.SessionID)
	require.Len(t, got.Turns, 2)
	assert.Equal(t, entity.StrategyKeyword, got.Turns[1].Strategy)
	assert.True(t, now.Equal(got.UpdatedAt))

	require.NoError(t, repo.DeleteConversation(ctx, "user-1"))
	_, err = repo.GetConversation(ctx, "user-1")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGetConversation_Missing(t *testing.T) {
	repo, _ := newTestRepository(t)

	_, err := repo.GetConversation(context.Background(), "nobody")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGetConversation_CorruptPayload(t *testing.T) {
	repo, mr := newTestRepository(t)
	require.NoError(t, mr.Set("agrivision:conversation:user-2", "{not json"))

	_, err := repo.GetConversation(context.Background(), "user-2")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGetConversation_StoreDown(t *testing.T) {
	repo, mr := newTestRepository(t)
	mr.Close()

	_, err := repo.GetConversation(context.Background(), "user-3")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotFound)
}

func TestConversationExpires(t *testing.T) {
	repo, mr := newTestRepository(t)
	ctx := context.Background()

	require.NoError(t, repo.SaveConversation(ctx, "user-4", entity.ConversationContext{SessionID: "s"}, time.Minute))
	mr.FastForward(2 * time.Minute)

	_, err := repo.GetConversation(ctx, "user-4")
	assert.ErrorIs(t, err, ErrNotFound)
}
