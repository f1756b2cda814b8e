package assistant

import (
	"AgriVision/pkg/response"
	"errors"
)

var (
	// ErrNoAnswer is returned by a strategy that has nothing to say about a query.
	ErrNoAnswer = errors.New("strategy has no answer")
	// ErrUpstreamUnavailable wraps failures of the generative and local inference services.
	ErrUpstreamUnavailable = errors.New("upstream service unavailable")
)

var (
	ErrEmptyQuery           = response.NewError(400, "query must not be empty")
	ErrConversationNotFound = response.NewError(404, "conversation not found")
	ErrConversationStore    = response.NewError(503, "conversation store unavailable")
	ErrSpeechUnavailable    = response.NewError(503, "speech synthesis is not configured")
	ErrSpeechFailed         = response.NewError(502, "speech synthesis failed")
)
