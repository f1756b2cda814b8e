package config

import (
	assistantService "AgriVision/internal/api/assistant/service"
	"AgriVision/pkg/utils"
	"os"
	"strconv"
	"time"
)

// NewAssistantConfig overlays the ASSISTANT_* and GENERATIVE_* variables on
// the assistant defaults. Unparsable values keep the default.
func NewAssistantConfig() assistantService.Config {
	cfg := assistantService.DefaultConfig()

	if v, ok := envInt("GENERATIVE_MAX_TOKENS"); ok {
		cfg.MaxTokens = v
	}
	if v, ok := envDuration("GENERATIVE_TIMEOUT"); ok {
		cfg.GenerativeTimeout = v
	}
	if v, ok := envInt("ASSISTANT_HISTORY_LIMIT"); ok {
		cfg.HistoryLimit = v
	}
	if v, ok := envDuration("ASSISTANT_SESSION_TTL"); ok {
		cfg.SessionTTL = v
	}

	cfg.CropOrder = utils.SplitCSV(os.Getenv("ASSISTANT_CROP_ORDER"))
	cfg.TopicOrder = utils.SplitCSV(os.Getenv("ASSISTANT_TOPIC_ORDER"))

	return cfg
}

func envInt(key string) (int, bool) {
	v, err := strconv.Atoi(os.Getenv(key))
	if err != nil || v <= 0 {
		return 0, false
	}
	return v, true
}

func envDuration(key string) (time.Duration, bool) {
	v, err := time.ParseDuration(os.Getenv(key))
	if err != nil || v <= 0 {
		return 0, false
	}
	return v, true
}
