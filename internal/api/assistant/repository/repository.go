package assistantRepository

import (
	"AgriVision/internal/entity"
	"AgriVision/pkg/redis"
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"
)

var ErrNotFound = errors.New("conversation not found")

const keyPrefix = "agrivision:conversation:"

type Repository interface {
	GetConversation(ctx context.Context, userID string) (entity.ConversationContext, error)
	SaveConversation(ctx context.Context, userID string, conversation entity.ConversationContext, ttl time.Duration) error
	DeleteConversation(ctx context.Context, userID string) error
}

type repository struct {
	store redis.IRedis
	log   *logrus.Logger
}

func New(store redis.IRedis, log *logrus.Logger) Repository {
	return &repository{
		store: store,
		log:   log,
	}
}

func conversationKey(userID string) string {
	return keyPrefix + userID
}
