package assistant

import "AgriVision/internal/entity"

type RespondRequest struct {
	Query        string                      `json:"query" validate:"required,max=2000"`
	Conversation *entity.ConversationContext `json:"conversation,omitempty"`
	Speak        bool                        `json:"speak"`
}

type ChatRequest struct {
	Query string `json:"query" validate:"required,max=2000"`
	Speak bool   `json:"speak"`
}

// ChatResponse is shared by the REST endpoints and the websocket.
type ChatResponse struct {
	Text         string                     `json:"text"`
	Strategy     entity.StrategyName        `json:"strategy"`
	Conversation entity.ConversationContext `json:"conversation"`
	Speak        bool                       `json:"speak"`
}

type ConversationResponse struct {
	Conversation entity.ConversationContext `json:"conversation"`
}

type SpeechRequest struct {
	Text string `json:"text" validate:"required,max=2500"`
}

// SocketMessage is the JSON form of a websocket frame. Plain text frames are
// treated as a bare query.
type SocketMessage struct {
	Query string `json:"query"`
	Speak bool   `json:"speak"`
}

type SocketError struct {
	Error string `json:"error"`
}
