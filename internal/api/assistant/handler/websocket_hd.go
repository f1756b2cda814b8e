package assistantHandler

import (
	"AgriVision/internal/api/assistant"
	"AgriVision/internal/entity"
	"AgriVision/internal/middleware"
	contextPkg "AgriVision/pkg/context"
	"context"
	"strings"
	"time"

	"github.com/gofiber/websocket/v2"
	jsoniter "github.com/json-iterator/go"
)

// handleWebSocket answers one query per text frame. The conversation lives
// only as long as the connection.
func (h *AssistantHandler) handleWebSocket(c *websocket.Conn) {
	requestID, _ := c.Locals(middleware.RequestIDKey).(string)
	baseCtx := contextPkg.WithRequestID(context.Background(), requestID)

	h.log.WithField("request_id", requestID).Info("Assistant WebSocket client connected")
	defer h.log.WithField("request_id", requestID).Info("Assistant WebSocket client disconnected")

	c.SetPingHandler(func(data string) error {
		if err := c.WriteControl(websocket.PongMessage, []byte(data), time.Now().Add(5*time.Second)); err != nil {
			h.log.Errorf("Error sending pong: %v", err)
		}
		return nil
	})

	maxReadTimeout := 5 * time.Minute
	var conversation entity.ConversationContext

	for {
		if err := c.SetReadDeadline(time.Now().Add(maxReadTimeout)); err != nil {
			h.log.Errorf("Error setting read deadline: %v", err)
			break
		}

		messageType, message, err := c.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				h.log.Errorf("Assistant WebSocket error: %v", err)
			}
			break
		}

		if messageType != websocket.TextMessage {
			h.log.Warnf("Received unexpected message type: %d", messageType)
			continue
		}

		msg := parseSocketMessage(message)
		if strings.TrimSpace(msg.Query) == "" {
			if err := c.WriteJSON(assistant.SocketError{Error: assistant.ErrEmptyQuery.Error()}); err != nil {
				break
			}
			continue
		}

		ctx, cancel := context.WithTimeout(baseCtx, replyTimeout)
		reply, next, err := h.assistantService.Respond(ctx, msg.Query, conversation)
		cancel()
		if err != nil {
			if writeErr := c.WriteJSON(assistant.SocketError{Error: err.Error()}); writeErr != nil {
				break
			}
			continue
		}
		conversation = next

		if err := c.SetWriteDeadline(time.Now().Add(10 * time.Second)); err != nil {
			h.log.Errorf("Error setting write deadline: %v", err)
			break
		}

		if err := c.WriteJSON(assistant.ChatResponse{
			Text:         reply.Text,
			Strategy:     reply.Strategy,
			Conversation: conversation,
			Speak:        msg.Speak && h.assistantService.SpeechEnabled(),
		}); err != nil {
			h.log.Errorf("Error writing JSON response: %v", err)
			break
		}

		if err := c.SetWriteDeadline(time.Time{}); err != nil {
			h.log.Errorf("Error resetting write deadline: %v", err)
			break
		}
	}
}

func parseSocketMessage(frame []byte) assistant.SocketMessage {
	var msg assistant.SocketMessage
	trimmed := strings.TrimSpace(string(frame))
	if strings.HasPrefix(trimmed, "{") && jsoniter.Unmarshal([]byte(trimmed), &msg) == nil {
		return msg
	}
	return assistant.SocketMessage{Query: trimmed}
}
