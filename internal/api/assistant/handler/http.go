package assistantHandler

import (
	assistantService "AgriVision/internal/api/assistant/service"
	"AgriVision/internal/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
	"github.com/sirupsen/logrus"
)

type AssistantHandler struct {
	log              *logrus.Logger
	validator        *validator.Validate
	middleware       middleware.Middleware
	assistantService assistantService.IAssistantService
}

func New(
	log *logrus.Logger,
	validate *validator.Validate,
	middleware middleware.Middleware,
	as assistantService.IAssistantService,
) *AssistantHandler {
	return &AssistantHandler{
		log:              log,
		validator:        validate,
		middleware:       middleware,
		assistantService: as,
	}
}

func (h *AssistantHandler) Start(srv fiber.Router) {
	wsMiddleware := func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	}

	assistant := srv.Group("/assistant")

	assistant.Post("/respond", h.Respond)
	assistant.Post("/speech", h.Speech)

	assistant.Post("/chat", h.middleware.NewTokenMiddleware, h.Chat)
	assistant.Get("/chat", h.middleware.NewTokenMiddleware, h.GetConversation)
	assistant.Delete("/chat", h.middleware.NewTokenMiddleware, h.ClearConversation)

	assistant.Use("/ws", wsMiddleware)
	assistant.Get("/ws", websocket.New(h.handleWebSocket))
}
