package assistantService

import (
	"AgriVision/internal/api/assistant"
	"AgriVision/internal/entity"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newOfflineRouter(directory Directory) *Router {
	cfg := DefaultConfig()
	log := newTestLogger()
	return NewRouter(log, []Strategy{
		NewGenerativeStrategy("openai", nil, cfg),
		NewLocalInferenceStrategy(&fakeOllama{err: errUnreachable}, cfg),
		NewDatabaseStrategy(log, directory, cfg),
		NewKeywordStrategy(cfg),
	})
}

func TestRespond_IsTotal(t *testing.T) {
	failing := func(ctx context.Context, systemPrompt, prompt string, maxTokens int) (string, error) {
		return "", errors.New("401 unauthorized")
	}
	cfg := DefaultConfig()
	log := newTestLogger()
	router := NewRouter(log, []Strategy{
		NewGenerativeStrategy("openai", failing, cfg),
		NewLocalInferenceStrategy(&fakeOllama{err: errUnreachable}, cfg),
		NewDatabaseStrategy(log, &fakeDirectory{err: errors.New("db down")}, cfg),
		NewKeywordStrategy(cfg),
		&stubStrategy{name: "exploding", panic: true},
	})

	queries := []string{
		"", "   ", "?!", "xyz", "hello", "When should I irrigate wheat?",
		"Tell me about government schemes", "नमस्ते", strings.Repeat("a", 5000), "café soil",
	}
	for _, q := range queries {
		reply := router.Respond(context.Background(), q)
		assert.NotEmpty(t, strings.TrimSpace(reply.Text), "query %q", q)
		assert.NotEmpty(t, reply.Strategy, "query %q", q)
	}
}

func TestRespond_WheatIrrigationWithoutExternalServices(t *testing.T) {
	router := newOfflineRouter(seededDirectory())

	reply := router.Respond(context.Background(), "When should I irrigate wheat?")

	assert.Equal(t, entity.StrategyKeyword, reply.Strategy)
	assert.Equal(t, "🌾 **Wheat Irrigation**: "+cropAdvice["wheat"][TopicIrrigation], reply.Text)
}

func TestRespond_GovernmentSchemesSkipKeywordMatching(t *testing.T) {
	keyword := &stubStrategy{name: entity.StrategyKeyword, text: "should not be reached"}
	log := newTestLogger()
	router := NewRouter(log, []Strategy{
		NewDatabaseStrategy(log, seededDirectory(), DefaultConfig()),
		keyword,
	})

	reply := router.Respond(context.Background(), "Tell me about government schemes")

	assert.Equal(t, entity.StrategyDatabase, reply.Strategy)
	assert.Contains(t, reply.Text, "Pradhan Mantri Kisan Samman Nidhi (PM-KISAN)")
	assert.Zero(t, keyword.calls)
}

func TestRespond_HelloGetsGreeting(t *testing.T) {
	router := newOfflineRouter(&fakeDirectory{})

	reply := router.Respond(context.Background(), "hello")

	assert.Equal(t, entity.StrategyFallback, reply.Strategy)
	assert.Equal(t, GreetingResponse, reply.Text)
	assert.NotEqual(t, UnansweredResponse("hello"), reply.Text)
}

func TestRespond_UnmatchedQueryGetsRedirect(t *testing.T) {
	router := newOfflineRouter(&fakeDirectory{})

	reply := router.Respond(context.Background(), "how do tractors work")

	assert.Equal(t, entity.StrategyFallback, reply.Strategy)
	assert.Equal(t, UnansweredResponse("how do tractors work"), reply.Text)
}

func TestRespond_StrategyOrder(t *testing.T) {
	tests := []struct {
		name       string
		strategies []*stubStrategy
		want       entity.StrategyName
		wantCalls  []int
	}{
		{
			name: "first success wins",
			strategies: []*stubStrategy{
				{name: entity.StrategyGenerative, text: "from model"},
				{name: entity.StrategyKeyword, text: "from table"},
			},
			want:      entity.StrategyGenerative,
			wantCalls: []int{1, 0},
		},
		{
			name: "error falls through",
			strategies: []*stubStrategy{
				{name: entity.StrategyGenerative, err: assistant.ErrUpstreamUnavailable},
				{name: entity.StrategyLocalInference, err: assistant.ErrNoAnswer},
				{name: entity.StrategyKeyword, text: "from table"},
			},
			want:      entity.StrategyKeyword,
			wantCalls: []int{1, 1, 1},
		},
		{
			name: "blank text falls through",
			strategies: []*stubStrategy{
				{name: entity.StrategyGenerative, text: "  \n"},
				{name: entity.StrategyDatabase, text: "rows"},
			},
			want:      entity.StrategyDatabase,
			wantCalls: []int{1, 1},
		},
		{
			name: "panic falls through",
			strategies: []*stubStrategy{
				{name: entity.StrategyGenerative, panic: true},
				{name: entity.StrategyKeyword, text: "from table"},
			},
			want:      entity.StrategyKeyword,
			wantCalls: []int{1, 1},
		},
		{
			name: "everything fails",
			strategies: []*stubStrategy{
				{name: entity.StrategyGenerative, err: errors.New("timeout")},
				{name: entity.StrategyKeyword, err: assistant.ErrNoAnswer},
			},
			want:      entity.StrategyFallback,
			wantCalls: []int{1, 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			chain := make([]Strategy, 0, len(tt.strategies))
			for _, s := range tt.strategies {
				chain = append(chain, s)
			}

			reply := NewRouter(newTestLogger(), chain).Respond(context.Background(), "anything")
			assert.Equal(t, tt.want, reply.Strategy)

			for i, s := range tt.strategies {
				assert.Equal(t, tt.wantCalls[i], s.calls, "strategy %s", s.name)
			}
		})
	}
}

func TestRespond_BlankQuerySkipsStrategies(t *testing.T) {
	stub := &stubStrategy{name: entity.StrategyGenerative, text: "model text"}

	reply := NewRouter(newTestLogger(), []Strategy{stub}).Respond(context.Background(), "   ")

	assert.Equal(t, entity.StrategyFallback, reply.Strategy)
	assert.Zero(t, stub.calls)
}

func TestRespond_Idempotent(t *testing.T) {
	generate := func(ctx context.Context, systemPrompt, prompt string, maxTokens int) (string, error) {
		return "generated at " + time.Now().Format(time.RFC3339Nano), nil
	}
	cfg := DefaultConfig()
	log := newTestLogger()
	directory := seededDirectory()

	routers := map[string]*Router{
		"with generative": NewRouter(log, []Strategy{
			NewGenerativeStrategy("openai", generate, cfg),
			NewDatabaseStrategy(log, directory, cfg),
			NewKeywordStrategy(cfg),
		}),
		"offline": newOfflineRouter(directory),
	}

	queries := []string{"When should I irrigate wheat?", "Tell me about government schemes", "hello", "buy spray", "xyz"}

	for name, router := range routers {
		t.Run(name, func(t *testing.T) {
			for _, q := range queries {
				first := router.Respond(context.Background(), q)
				second := router.Respond(context.Background(), q)
				assert.Equal(t, first.Strategy, second.Strategy, "query %q", q)
				if first.Strategy != entity.StrategyGenerative {
					assert.Equal(t, first.Text, second.Text, "query %q", q)
				}
			}
		})
	}
}

func TestRouter_StrategiesSkipsUnconfigured(t *testing.T) {
	cfg := DefaultConfig()
	router := NewRouter(newTestLogger(), []Strategy{
		NewGenerativeStrategy("openai", nil, cfg),
		NewLocalInferenceStrategy(nil, cfg),
		NewDatabaseStrategy(newTestLogger(), nil, cfg),
		NewKeywordStrategy(cfg),
	})

	assert.Equal(t, []entity.StrategyName{entity.StrategyKeyword, entity.StrategyFallback}, router.Strategies())
}

func TestConverse(t *testing.T) {
	now := time.Date(2024, 11, 2, 9, 30, 0, 0, time.UTC)
	router := NewRouter(newTestLogger(), []Strategy{NewKeywordStrategy(DefaultConfig())},
		WithHistoryLimit(4), WithClock(func() time.Time { return now }))

	t.Run("starts a session", func(t *testing.T) {
		reply, next := router.Converse(context.Background(), "rice fertilizer", entity.ConversationContext{})

		assert.Equal(t, entity.StrategyKeyword, reply.Strategy)
		assert.NotEmpty(t, next.SessionID)
		require.Len(t, next.Turns, 2)
		assert.Equal(t, entity.RoleUser, next.Turns[0].Role)
		assert.Equal(t, "rice fertilizer", next.Turns[0].Content)
		assert.Equal(t, reply.Text, next.Turns[1].Content)
		assert.Equal(t, now, next.UpdatedAt)

		last, ok := next.LastReply()
		require.True(t, ok)
		assert.Equal(t, entity.StrategyKeyword, last.Strategy)
	})

	t.Run("caps history and leaves the input untouched", func(t *testing.T) {
		input := entity.ConversationContext{SessionID: "s-1"}
		for i := 0; i < 2; i++ {
			input.Turns = append(input.Turns,
				entity.ConversationTurn{Role: entity.RoleUser, Content: "old question"},
				entity.ConversationTurn{Role: entity.RoleAssistant, Content: "old answer"},
			)
		}
		original := append([]entity.ConversationTurn(nil), input.Turns...)

		_, next := router.Converse(context.Background(), "cotton harvest", input)

		assert.Equal(t, "s-1", next.SessionID)
		require.Len(t, next.Turns, 4)
		assert.Equal(t, "cotton harvest", next.Turns[2].Content)
		assert.Equal(t, original, input.Turns)
	})
}
