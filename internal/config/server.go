package config

import (
	"AgriVision/database/postgres"
	assistantHandler "AgriVision/internal/api/assistant/handler"
	assistantRepository "AgriVision/internal/api/assistant/repository"
	assistantService "AgriVision/internal/api/assistant/service"
	directoryHandler "AgriVision/internal/api/directory/handler"
	directoryRepository "AgriVision/internal/api/directory/repository"
	directoryService "AgriVision/internal/api/directory/service"
	shopLocatorHandler "AgriVision/internal/api/shop_locator/handler"
	shopLocatorService "AgriVision/internal/api/shop_locator/service"
	"AgriVision/internal/middleware"
	"AgriVision/pkg/audio"
	"AgriVision/pkg/gemini"
	"AgriVision/pkg/ollama"
	"AgriVision/pkg/openai"
	"AgriVision/pkg/places"
	"AgriVision/pkg/redis"
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/jmoiron/sqlx"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
)

type ServerOption func(*Server) error

type Server struct {
	engine       *fiber.App
	db           *sqlx.DB
	log          *logrus.Logger
	middleware   middleware.Middleware
	validator    *validator.Validate
	handlers     []handler
	redisServer  redis.IRedis
	assistantCfg assistantService.Config
	provider     string
	generate     assistantService.GenerateFunc
	geminiClient gemini.IGemini
	ollamaClient ollama.IOllama
	placesClient places.IPlaces
	ttsClient    audio.ITTS
}

type handler interface {
	Start(srv fiber.Router)
}

func NewServer(options ...ServerOption) (*Server, error) {
	server := &Server{
		assistantCfg: assistantService.DefaultConfig(),
	}

	for _, option := range options {
		if err := option(server); err != nil {
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}

	if server.engine == nil {
		return nil, fmt.Errorf("fiber app is required")
	}
	if server.log == nil {
		return nil, fmt.Errorf("logger is required")
	}
	if server.middleware == nil {
		return nil, fmt.Errorf("middleware is required")
	}

	return server, nil
}

func WithFiber(fiberApp *fiber.App) ServerOption {
	return func(s *Server) error {
		s.engine = fiberApp
		return nil
	}
}

func WithLogger(logger *logrus.Logger) ServerOption {
	return func(s *Server) error {
		s.log = logger
		return nil
	}
}

func WithValidator(validator *validator.Validate) ServerOption {
	return func(s *Server) error {
		s.validator = validator
		return nil
	}
}

// WithDatabase connects to Postgres and, when DB_AUTO_MIGRATE=true, creates
// and seeds the directory tables.
func WithDatabase() ServerOption {
	return func(s *Server) error {
		db, err := postgres.New()
		if err != nil {
			if s.log != nil {
				s.log.Errorf("Failed to connect to database: %v", err)
			}
			return fmt.Errorf("failed to create database connection: %w", err)
		}
		s.db = db

		if os.Getenv("DB_AUTO_MIGRATE") == "true" {
			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()

			if err := postgres.Migrate(ctx, db); err != nil {
				return fmt.Errorf("failed to migrate database: %w", err)
			}
			if s.log != nil {
				s.log.Info("Database schema migrated")
			}
		}
		return nil
	}
}

func WithRedisServer(redisServer redis.IRedis) ServerOption {
	return func(s *Server) error {
		s.redisServer = redisServer
		return nil
	}
}

func WithAssistantConfig(cfg assistantService.Config) ServerOption {
	return func(s *Server) error {
		s.assistantCfg = cfg
		return nil
	}
}

// WithGenerativeProvider picks the remote model from GENERATIVE_PROVIDER. When
// unset, openai wins if both keys exist. A missing credential leaves the
// strategy out of the chain instead of failing startup.
func WithGenerativeProvider() ServerOption {
	return func(s *Server) error {
		provider := strings.ToLower(strings.TrimSpace(os.Getenv("GENERATIVE_PROVIDER")))
		if provider == "" {
			provider = "openai"
			if os.Getenv("OPENAI_API_KEY") == "" && os.Getenv("GEMINI_API_KEY") != "" {
				provider = "gemini"
			}
		}

		switch provider {
		case "openai":
			chat := openai.NewChatGPT()
			if chat == nil {
				s.warn("OPENAI_API_KEY not set, generative strategy disabled")
				return nil
			}
			s.provider, s.generate = provider, chat.Complete
		case "gemini":
			if os.Getenv("GEMINI_API_KEY") == "" {
				s.warn("GEMINI_API_KEY not set, generative strategy disabled")
				return nil
			}
			client, err := gemini.NewGeminiClient()
			if err != nil {
				if s.log != nil {
					s.log.Errorf("Failed to create Gemini client: %v", err)
				}
				return fmt.Errorf("failed to create Gemini client: %w", err)
			}
			s.geminiClient = client
			s.provider, s.generate = provider, client.GenerateText
		default:
			return fmt.Errorf("unknown GENERATIVE_PROVIDER %q", provider)
		}
		return nil
	}
}

// WithOllama enables local inference unless OLLAMA_ENABLED=false.
func WithOllama() ServerOption {
	return func(s *Server) error {
		if os.Getenv("OLLAMA_ENABLED") == "false" {
			return nil
		}
		s.ollamaClient = ollama.New(ollama.ConfigFromEnv())
		return nil
	}
}

func WithPlacesClient() ServerOption {
	return func(s *Server) error {
		if client := places.New(); client != nil {
			s.placesClient = client
		} else {
			s.warn("GOOGLE_PLACES_API_KEY not set, nearby search uses the directory only")
		}
		return nil
	}
}

func WithTTS() ServerOption {
	return func(s *Server) error {
		if client := audio.NewTTSFromEnv(); client != nil {
			s.ttsClient = client
		}
		return nil
	}
}

func WithMiddleware() ServerOption {
	return func(s *Server) error {
		if s.log == nil {
			return fmt.Errorf("logger must be initialized before middleware")
		}
		s.middleware = middleware.New(s.log)
		return nil
	}
}

func (s *Server) warn(msg string) {
	if s.log != nil {
		s.log.Warn(msg)
	}
}

func (s *Server) RegisterHandler() {
	// Directory Domain
	directoryRepo := directoryRepository.New(s.db, s.log)
	directoryServices := directoryService.NewDirectoryService(s.log, directoryRepo)
	directoryHandlers := directoryHandler.New(s.log, s.validator, s.middleware, directoryServices)

	// Assistant Domain
	router := assistantService.NewRouter(s.log, []assistantService.Strategy{
		assistantService.NewGenerativeStrategy(s.provider, s.generate, s.assistantCfg),
		assistantService.NewLocalInferenceStrategy(s.ollamaClient, s.assistantCfg),
		assistantService.NewDatabaseStrategy(s.log, directoryServices, s.assistantCfg),
		assistantService.NewKeywordStrategy(s.assistantCfg),
	}, assistantService.WithHistoryLimit(s.assistantCfg.HistoryLimit))

	conversationRepo := assistantRepository.New(s.redisServer, s.log)
	assistantServices := assistantService.NewAssistantService(s.log, router, conversationRepo, s.ttsClient, s.assistantCfg)
	assistantHandlers := assistantHandler.New(s.log, s.validator, s.middleware, assistantServices)

	s.log.WithFields(logrus.Fields{
		"strategies": router.Strategies(),
	}).Info("Assistant router ready")

	// Shop Locator Domain
	shopLocatorServices := shopLocatorService.NewShopLocatorService(s.log, directoryServices, s.placesClient)
	shopLocatorHandlers := shopLocatorHandler.New(s.log, s.middleware, shopLocatorServices)

	s.setupHealthCheck()
	s.handlers = append(s.handlers, assistantHandlers, directoryHandlers, shopLocatorHandlers)
}

func (s *Server) Run() error {
	s.engine.Use(s.middleware.NewRequestIDMiddleware())
	s.engine.Use(s.middleware.NewLoggingMiddleware())

	s.engine.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	router := s.engine.Group("/api/v1", s.middleware.NewRateLimiter)
	for _, h := range s.handlers {
		h.Start(router)
	}

	port := os.Getenv("APP_PORT")
	if port == "" {
		port = "3000"
	}

	return s.engine.Listen(fmt.Sprintf(":%s", port))
}

// Shutdown stops accepting requests and releases the backing clients.
func (s *Server) Shutdown(timeout time.Duration) error {
	err := s.engine.ShutdownWithTimeout(timeout)

	if s.geminiClient != nil {
		s.geminiClient.Close()
	}
	if s.redisServer != nil {
		if cerr := s.redisServer.Close(); cerr != nil {
			s.log.Errorf("Failed to close redis: %v", cerr)
		}
	}
	if s.db != nil {
		if cerr := s.db.Close(); cerr != nil {
			s.log.Errorf("Failed to close database: %v", cerr)
		}
	}

	return err
}

func (s *Server) setupHealthCheck() {
	s.engine.Get("/", func(ctx *fiber.Ctx) error {
		return ctx.JSON(fiber.Map{
			"message": "Server is Healthy!",
		})
	})
}
