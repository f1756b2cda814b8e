package assistantService

import (
	"AgriVision/internal/api/assistant"
	"AgriVision/internal/entity"
	contextPkg "AgriVision/pkg/context"
	"AgriVision/pkg/metrics"
	"AgriVision/pkg/utils"
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

// Strategy is one way of answering a query. Returning assistant.ErrNoAnswer
// or any other error hands the query to the next strategy.
type Strategy interface {
	Name() entity.StrategyName
	TryRespond(ctx context.Context, query string) (string, error)
}

type Reply struct {
	Text     string              `json:"text"`
	Strategy entity.StrategyName `json:"strategy"`
}

// Router evaluates its strategies in order and always ends with the
// fallback, so Respond never fails.
type Router struct {
	log          *logrus.Logger
	strategies   []Strategy
	fallback     *FallbackStrategy
	historyLimit int
	utils        utils.IUtils
	now          func() time.Time
}

type RouterOption func(*Router)

func WithHistoryLimit(limit int) RouterOption {
	return func(r *Router) {
		if limit > 0 {
			r.historyLimit = limit
		}
	}
}

func WithClock(now func() time.Time) RouterOption {
	return func(r *Router) {
		r.now = now
	}
}

func NewRouter(log *logrus.Logger, strategies []Strategy, opts ...RouterOption) *Router {
	chain := make([]Strategy, 0, len(strategies))
	for _, s := range strategies {
		if s != nil {
			chain = append(chain, s)
		}
	}

	r := &Router{
		log:          log,
		strategies:   chain,
		fallback:     NewFallbackStrategy(),
		historyLimit: DefaultHistoryLimit,
		utils:        utils.New(),
		now:          time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Strategies lists the strategy names in evaluation order, fallback included.
func (r *Router) Strategies() []entity.StrategyName {
	names := make([]entity.StrategyName, 0, len(r.strategies)+1)
	for _, s := range r.strategies {
		names = append(names, s.Name())
	}
	return append(names, r.fallback.Name())
}

func (r *Router) Respond(ctx context.Context, query string) Reply {
	if strings.TrimSpace(query) != "" {
		for _, s := range r.strategies {
			text, err := r.try(ctx, s, query)
			if err != nil {
				r.logFallthrough(ctx, s.Name(), err)
				continue
			}
			if strings.TrimSpace(text) == "" {
				continue
			}

			metrics.AssistantReplies.WithLabelValues(string(s.Name())).Inc()
			return Reply{Text: text, Strategy: s.Name()}
		}
	}

	metrics.AssistantReplies.WithLabelValues(string(entity.StrategyFallback)).Inc()
	return Reply{Text: r.fallback.Respond(query), Strategy: entity.StrategyFallback}
}

// Converse answers query and returns conversation extended by the user turn
// and the reply. The caller's slice is never modified.
func (r *Router) Converse(ctx context.Context, query string, conversation entity.ConversationContext) (Reply, entity.ConversationContext) {
	reply := r.Respond(ctx, query)
	now := r.now()

	next := entity.ConversationContext{
		SessionID: conversation.SessionID,
		UpdatedAt: now,
	}
	if next.SessionID == "" {
		if id, err := r.utils.NewULIDFromTimestamp(now); err == nil {
			next.SessionID = id
		}
	}

	turns := make([]entity.ConversationTurn, 0, len(conversation.Turns)+2)
	turns = append(turns, conversation.Turns...)
	turns = append(turns,
		entity.ConversationTurn{Role: entity.RoleUser, Content: query, CreatedAt: now},
		entity.ConversationTurn{Role: entity.RoleAssistant, Content: reply.Text, Strategy: reply.Strategy, CreatedAt: now},
	)
	if len(turns) > r.historyLimit {
		turns = turns[len(turns)-r.historyLimit:]
	}
	next.Turns = turns

	return reply, next
}

func (r *Router) try(ctx context.Context, s Strategy, query string) (text string, err error) {
	start := time.Now()
	defer func() {
		if rec := recover(); rec != nil {
			text, err = "", fmt.Errorf("strategy %s panicked: %v", s.Name(), rec)
		}
		metrics.AssistantStrategyDuration.WithLabelValues(string(s.Name())).Observe(time.Since(start).Seconds())
	}()

	return s.TryRespond(ctx, query)
}

func (r *Router) logFallthrough(ctx context.Context, name entity.StrategyName, err error) {
	fields := logrus.Fields{
		"request_id": contextPkg.GetRequestID(ctx),
		"strategy":   name,
	}
	if errors.Is(err, assistant.ErrNoAnswer) {
		r.log.WithFields(fields).Debug("Strategy had no answer")
		return
	}

	metrics.AssistantStrategyFailures.WithLabelValues(string(name)).Inc()
	fields["error"] = err.Error()
	r.log.WithFields(fields).Warn("Strategy failed, falling through")
}
