package assistantHandler

import (
	"AgriVision/internal/api/assistant"
	"AgriVision/internal/entity"
	contextPkg "AgriVision/pkg/context"
	"AgriVision/pkg/handlerUtil"
	jwtPkg "AgriVision/pkg/jwt"
	"AgriVision/pkg/log"
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
)

// replyTimeout leaves room for the generative call, the local inference call
// and the directory lookup in sequence.
const replyTimeout = 45 * time.Second

func (h *AssistantHandler) Respond(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), replyTimeout)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	var req assistant.RespondRequest
	if err := ctx.BodyParser(&req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	if err := h.validator.Struct(req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	var conversation entity.ConversationContext
	if req.Conversation != nil {
		conversation = *req.Conversation
	}

	reply, next, err := h.assistantService.Respond(c, req.Query, conversation)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "assistant_respond")
	}

	return errHandler.HandleSuccess(ctx, fiber.StatusOK, assistant.ChatResponse{
		Text:         reply.Text,
		Strategy:     reply.Strategy,
		Conversation: next,
		Speak:        req.Speak && h.assistantService.SpeechEnabled(),
	})
}

func (h *AssistantHandler) Chat(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), replyTimeout)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	userData, err := jwtPkg.GetUserLoginData(ctx)
	if err != nil {
		return errHandler.HandleUnauthorized(ctx, requestID, "Unauthorized")
	}

	var req assistant.ChatRequest
	if err := ctx.BodyParser(&req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	if err := h.validator.Struct(req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	reply, conversation, err := h.assistantService.Chat(contextPkg.WithUserID(c, userData.ID), userData.ID, req.Query)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "assistant_chat")
	}

	return errHandler.HandleSuccess(ctx, fiber.StatusOK, assistant.ChatResponse{
		Text:         reply.Text,
		Strategy:     reply.Strategy,
		Conversation: conversation,
		Speak:        req.Speak && h.assistantService.SpeechEnabled(),
	})
}

func (h *AssistantHandler) GetConversation(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	userData, err := jwtPkg.GetUserLoginData(ctx)
	if err != nil {
		return errHandler.HandleUnauthorized(ctx, requestID, "Unauthorized")
	}

	conversation, err := h.assistantService.GetConversation(c, userData.ID)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "get_conversation")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, assistant.ConversationResponse{
			Conversation: conversation,
		})
	}
}

func (h *AssistantHandler) ClearConversation(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	userData, err := jwtPkg.GetUserLoginData(ctx)
	if err != nil {
		return errHandler.HandleUnauthorized(ctx, requestID, "Unauthorized")
	}

	if err := h.assistantService.ClearConversation(c, userData.ID); err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "clear_conversation")
	}

	return errHandler.HandleSuccess(ctx, fiber.StatusNoContent, nil)
}

func (h *AssistantHandler) Speech(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 30*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	var req assistant.SpeechRequest
	if err := ctx.BodyParser(&req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	if err := h.validator.Struct(req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	audio, err := h.assistantService.Synthesize(c, req.Text)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "synthesize_speech")
	}

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"bytes":      len(audio),
	}).Debug("Speech synthesized")

	ctx.Set(fiber.HeaderContentType, "audio/mpeg")
	return ctx.Status(fiber.StatusOK).Send(audio)
}
