package assistantService

import (
	"AgriVision/internal/api/assistant"
	assistantRepository "AgriVision/internal/api/assistant/repository"
	"AgriVision/internal/entity"
	contextPkg "AgriVision/pkg/context"
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
)

func (s *assistantService) Respond(ctx context.Context, query string, conversation entity.ConversationContext) (Reply, entity.ConversationContext, error) {
	if strings.TrimSpace(query) == "" {
		return Reply{}, conversation, assistant.ErrEmptyQuery
	}

	reply, next := s.router.Converse(ctx, query, conversation)
	return reply, next, nil
}

// Chat answers query inside the user's stored conversation. A store outage
// never blocks the answer, the turn is just not remembered.
func (s *assistantService) Chat(ctx context.Context, userID string, query string) (Reply, entity.ConversationContext, error) {
	requestID := contextPkg.GetRequestID(ctx)

	if strings.TrimSpace(query) == "" {
		return Reply{}, entity.ConversationContext{}, assistant.ErrEmptyQuery
	}

	conversation, err := s.conversationRepo.GetConversation(ctx, userID)
	if err != nil && !errors.Is(err, assistantRepository.ErrNotFound) {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"user_id":    userID,
			"error":      err.Error(),
		}).Warn("Failed to load conversation, starting a new one")
	}

	reply, next := s.router.Converse(ctx, query, conversation)

	if err := s.conversationRepo.SaveConversation(ctx, userID, next, s.cfg.SessionTTL); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"user_id":    userID,
			"error":      err.Error(),
		}).Warn("Failed to persist conversation")
	}

	s.log.WithFields(logrus.Fields{
		"request_id": requestID,
		"user_id":    userID,
		"strategy":   reply.Strategy,
		"turns":      len(next.Turns),
	}).Info("Assistant replied")

	return reply, next, nil
}

func (s *assistantService) GetConversation(ctx context.Context, userID string) (entity.ConversationContext, error) {
	conversation, err := s.conversationRepo.GetConversation(ctx, userID)
	if errors.Is(err, assistantRepository.ErrNotFound) {
		return entity.ConversationContext{}, assistant.ErrConversationNotFound
	}
	if err != nil {
		return entity.ConversationContext{}, fmt.Errorf("%w: %v", assistant.ErrConversationStore, err)
	}
	return conversation, nil
}

func (s *assistantService) ClearConversation(ctx context.Context, userID string) error {
	if err := s.conversationRepo.DeleteConversation(ctx, userID); err != nil {
		return fmt.Errorf("%w: %v", assistant.ErrConversationStore, err)
	}

	s.log.WithFields(logrus.Fields{
		"request_id": contextPkg.GetRequestID(ctx),
		"user_id":    userID,
	}).Info("Conversation cleared")
	return nil
}

func (s *assistantService) SpeechEnabled() bool {
	return s.tts != nil
}

func (s *assistantService) Synthesize(ctx context.Context, text string) ([]byte, error) {
	if s.tts == nil {
		return nil, assistant.ErrSpeechUnavailable
	}

	audio, err := s.tts.GenerateAudio(ctx, stripMarkdown(text))
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": contextPkg.GetRequestID(ctx),
			"error":      err.Error(),
		}).Error("Speech synthesis failed")
		return nil, fmt.Errorf("%w: %v", assistant.ErrSpeechFailed, err)
	}
	return audio, nil
}

// stripMarkdown drops the emphasis markers replies use so they are not read aloud.
func stripMarkdown(text string) string {
	return strings.TrimSpace(strings.NewReplacer("**", "", "__", "").Replace(text))
}
