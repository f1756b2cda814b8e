package assistantService

import (
	assistantRepository "AgriVision/internal/api/assistant/repository"
	"AgriVision/internal/entity"
	"AgriVision/pkg/audio"
	"context"

	"github.com/sirupsen/logrus"
)

type IAssistantService interface {
	Respond(ctx context.Context, query string, conversation entity.ConversationContext) (Reply, entity.ConversationContext, error)
	Chat(ctx context.Context, userID string, query string) (Reply, entity.ConversationContext, error)
	GetConversation(ctx context.Context, userID string) (entity.ConversationContext, error)
	ClearConversation(ctx context.Context, userID string) error
	Synthesize(ctx context.Context, text string) ([]byte, error)
	SpeechEnabled() bool
}

type assistantService struct {
	log              *logrus.Logger
	router           *Router
	conversationRepo assistantRepository.Repository
	tts              audio.ITTS
	cfg              Config
}

func NewAssistantService(
	log *logrus.Logger,
	router *Router,
	conversationRepo assistantRepository.Repository,
	tts audio.ITTS,
	cfg Config,
) IAssistantService {
	return &assistantService{
		log:              log,
		router:           router,
		conversationRepo: conversationRepo,
		tts:              tts,
		cfg:              cfg.withDefaults(),
	}
}
