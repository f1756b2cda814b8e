package assistantRepository

import (
	"AgriVision/internal/entity"
	contextPkg "AgriVision/pkg/context"
	"AgriVision/pkg/redis"
	"context"
	"errors"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
)

func (r *repository) GetConversation(ctx context.Context, userID string) (entity.ConversationContext, error) {
	raw, err := r.store.Get(ctx, conversationKey(userID))
	if errors.Is(err, redis.ErrNotFound) {
		return entity.ConversationContext{}, ErrNotFound
	}
	if err != nil {
		return entity.ConversationContext{}, err
	}

	var conversation entity.ConversationContext
	if err := jsoniter.Unmarshal(raw, &conversation); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": contextPkg.GetRequestID(ctx),
			"user_id":    userID,
			"error":      err.Error(),
		}).Warn("Discarding unreadable conversation")
		return entity.ConversationContext{}, ErrNotFound
	}

	return conversation, nil
}

func (r *repository) SaveConversation(ctx context.Context, userID string, conversation entity.ConversationContext, ttl time.Duration) error {
	raw, err := jsoniter.Marshal(conversation)
	if err != nil {
		return err
	}

	if err := r.store.Set(ctx, conversationKey(userID), raw, ttl); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": contextPkg.GetRequestID(ctx),
			"user_id":    userID,
			"error":      err.Error(),
		}).Error("Failed to save conversation")
		return err
	}

	return nil
}

func (r *repository) DeleteConversation(ctx context.Context, userID string) error {
	return r.store.Delete(ctx, conversationKey(userID))
}
