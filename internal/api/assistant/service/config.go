package assistantService

import "time"

const (
	DefaultSystemPrompt = "You are AgriVision, an expert agricultural AI assistant for Indian farmers. " +
		"Provide helpful, accurate, and concise farming advice in a friendly tone."
	DefaultLocalPromptTemplate = "You are AgriVision, an expert agricultural AI assistant. User asks: %s"

	DefaultMaxTokens         = 300
	DefaultGenerativeTimeout = 30 * time.Second
	DefaultSchemeLimit       = 3
	DefaultPreviewLimit      = 3
	DefaultDescriptionLimit  = 100
	DefaultHistoryLimit      = 20
	DefaultSessionTTL        = 24 * time.Hour
)

type Config struct {
	SystemPrompt        string
	LocalPromptTemplate string
	MaxTokens           int
	GenerativeTimeout   time.Duration

	// SchemeLimit is how many schemes the database strategy asks for,
	// PreviewLimit caps the pesticide and shop listings.
	SchemeLimit      int
	PreviewLimit     int
	DescriptionLimit int

	// CropOrder and TopicOrder move the named keyword sets to the front of
	// their tables. Unlisted sets keep their declaration order.
	CropOrder  []string
	TopicOrder []string

	HistoryLimit int
	SessionTTL   time.Duration
}

func DefaultConfig() Config {
	return Config{
		SystemPrompt:        DefaultSystemPrompt,
		LocalPromptTemplate: DefaultLocalPromptTemplate,
		MaxTokens:           DefaultMaxTokens,
		GenerativeTimeout:   DefaultGenerativeTimeout,
		SchemeLimit:         DefaultSchemeLimit,
		PreviewLimit:        DefaultPreviewLimit,
		DescriptionLimit:    DefaultDescriptionLimit,
		HistoryLimit:        DefaultHistoryLimit,
		SessionTTL:          DefaultSessionTTL,
	}
}

// withDefaults fills zero values so a partially built Config is usable.
func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if c.SystemPrompt == "" {
		c.SystemPrompt = d.SystemPrompt
	}
	if c.LocalPromptTemplate == "" {
		c.LocalPromptTemplate = d.LocalPromptTemplate
	}
	if c.MaxTokens <= 0 {
		c.MaxTokens = d.MaxTokens
	}
	if c.GenerativeTimeout <= 0 {
		c.GenerativeTimeout = d.GenerativeTimeout
	}
	if c.SchemeLimit <= 0 {
		c.SchemeLimit = d.SchemeLimit
	}
	if c.PreviewLimit <= 0 {
		c.PreviewLimit = d.PreviewLimit
	}
	if c.DescriptionLimit <= 0 {
		c.DescriptionLimit = d.DescriptionLimit
	}
	if c.HistoryLimit <= 0 {
		c.HistoryLimit = d.HistoryLimit
	}
	if c.SessionTTL <= 0 {
		c.SessionTTL = d.SessionTTL
	}
	return c
}
