package assistantService

import (
	"AgriVision/internal/entity"
	"AgriVision/pkg/nlp"
	"context"
	"fmt"
	"strings"
)

const (
	GreetingResponse = "👋 Namaste! I'm AgriVision AI. I can help with: 🌾 Crops, 💧 Irrigation, " +
		"🌿 Pest control, 🏛️ Schemes, and more. Ask me anything!"
	unansweredResponse = "🤖 I'm here to support your farming! I don't have a specific answer for '%s' yet, " +
		"but you can try our AI prediction models in the sidebar for personalized recommendations on crops, irrigation, and yield."
)

var greetingKeywords = []string{"hello", "hi", "help", "namaste"}

type FallbackStrategy struct{}

func NewFallbackStrategy() *FallbackStrategy {
	return &FallbackStrategy{}
}

func (f *FallbackStrategy) Name() entity.StrategyName {
	return entity.StrategyFallback
}

func (f *FallbackStrategy) TryRespond(_ context.Context, query string) (string, error) {
	return f.Respond(query), nil
}

// Respond always produces text. Greetings are matched as whole words.
func (f *FallbackStrategy) Respond(query string) string {
	if _, ok := nlp.ContainsWord(nlp.Normalize(query), greetingKeywords); ok {
		return GreetingResponse
	}
	return UnansweredResponse(query)
}

func UnansweredResponse(query string) string {
	return fmt.Sprintf(unansweredResponse, strings.TrimSpace(query))
}
