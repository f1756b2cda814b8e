package entity

import "time"

type StrategyName string

const (
	StrategyGenerative     StrategyName = "generative"
	StrategyLocalInference StrategyName = "local_inference"
	StrategyDatabase       StrategyName = "database"
	StrategyKeyword        StrategyName = "keyword"
	StrategyFallback       StrategyName = "fallback"
)

type ConversationRole string

const (
	RoleUser      ConversationRole = "user"
	RoleAssistant ConversationRole = "assistant"
)

type ConversationTurn struct {
	Role      ConversationRole `json:"role"`
	Content   string           `json:"content"`
	Strategy  StrategyName     `json:"strategy,omitempty"`
	CreatedAt time.Time        `json:"created_at"`
}

// ConversationContext is owned by the caller; the assistant returns an
// updated copy instead of keeping any state of its own.
type ConversationContext struct {
	SessionID string             `json:"session_id"`
	Turns     []ConversationTurn `json:"turns"`
	UpdatedAt time.Time          `json:"updated_at"`
}

func (c ConversationContext) LastReply() (ConversationTurn, bool) {
	for i := len(c.Turns) - 1; i >= 0; i-- {
		if c.Turns[i].Role == RoleAssistant {
			return c.Turns[i], true
		}
	}
	return ConversationTurn{}, false
}
