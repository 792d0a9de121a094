package bootstrap

import (
	"fmt"

	"campus-chat-be/internal/config"
	"campus-chat-be/internal/controller"
	"campus-chat-be/internal/pkg/logger"
	"campus-chat-be/internal/repository/contract"
	"campus-chat-be/internal/repository/file"
	"campus-chat-be/internal/repository/implementation"
	"campus-chat-be/internal/repository/memory"
	"campus-chat-be/internal/repository/redisstore"
	"campus-chat-be/internal/service"
	"campus-chat-be/pkg/embedding"
	"campus-chat-be/pkg/llm/factory"
	"campus-chat-be/pkg/llm/gateway"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	ChatController     controller.IChatController
	ConfigController   controller.IConfigController
	DocumentController controller.IDocumentController
	FeedbackController controller.IFeedbackController
	SystemController   controller.ISystemController
	AuthController     controller.IAuthController

	Logger logger.ILogger
}

// NewContainer wires the whole dependency graph once at startup. db may be
// nil: the knowledge service then runs on the lexical snapshot store alone.
func NewContainer(db *gorm.DB, cfg *config.Config) (*Container, error) {
	// 1. Core facades
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// 2. Storage
	chunkStore, err := file.NewChunkStore(cfg.Storage.KnowledgeSnapshot)
	if err != nil {
		return nil, fmt.Errorf("knowledge snapshot: %w", err)
	}
	feedbackLog := file.NewFeedbackLog(cfg.Storage.FeedbackLog)
	documentRepo := file.NewDocumentRepository(cfg.Storage.DocumentsDir)

	var vectorRepo contract.ChunkRepository
	if db != nil {
		vectorRepo = implementation.NewChunkRepository(db)
	}

	sessionRepo, err := newSessionRepository(cfg)
	if err != nil {
		return nil, err
	}

	// 3. AI backends
	embedder := newEmbeddingProvider(cfg)

	provider, err := factory.NewLLMProvider(factory.Config{
		Provider:       cfg.Ai.LLMProvider,
		Model:          cfg.Ai.LLMModel,
		GroqAPIKey:     cfg.Keys.Groq,
		OpenAIAPIKey:   cfg.Keys.OpenAI,
		HuggingFaceKey: cfg.Keys.HuggingFace,
		HuggingFaceURL: cfg.Ai.HuggingFaceURL,
		OllamaBaseURL:  cfg.Ai.OllamaBaseURL,
	})
	if err != nil {
		return nil, err
	}
	gw := gateway.New(cfg.Ai.LLMProvider, provider, sysLogger)

	// 4. Services
	configService, err := service.NewCampusConfigService(cfg.Storage.CampusConfig, sysLogger)
	if err != nil {
		return nil, fmt.Errorf("campus config: %w", err)
	}
	knowledgeService := service.NewKnowledgeService(chunkStore, vectorRepo, embedder, sysLogger)
	chatbotService := service.NewChatbotService(sessionRepo, knowledgeService, gw, configService, feedbackLog, sysLogger)
	documentService := service.NewDocumentService(documentRepo, knowledgeService, sysLogger)
	feedbackService := service.NewFeedbackService(feedbackLog, sysLogger)
	authService := service.NewAuthService(cfg.Keys.AdminPassword, cfg.Keys.SecretKey, sysLogger)
	statsService := service.NewStatsService(chatbotService, knowledgeService, documentService)

	// 5. Controllers
	return &Container{
		ChatController:     controller.NewChatController(chatbotService),
		ConfigController:   controller.NewConfigController(configService, cfg.Keys.SecretKey, cfg.Storage.AssetsDir),
		DocumentController: controller.NewDocumentController(documentService, cfg.Keys.SecretKey),
		FeedbackController: controller.NewFeedbackController(feedbackService),
		SystemController:   controller.NewSystemController(statsService, gw.Name()),
		AuthController:     controller.NewAuthController(authService),
		Logger:             sysLogger,
	}, nil
}

func newSessionRepository(cfg *config.Config) (contract.SessionRepository, error) {
	if cfg.App.SessionBackend == "redis" {
		opts, err := redis.ParseURL(cfg.App.RedisURL)
		if err != nil {
			return nil, fmt.Errorf("redis url: %w", err)
		}
		return redisstore.NewSessionRepository(redis.NewClient(opts)), nil
	}
	return memory.NewSessionRepository(), nil
}

func newEmbeddingProvider(cfg *config.Config) embedding.EmbeddingProvider {
	switch cfg.Ai.EmbeddingProvider {
	case "gemini":
		return embedding.NewGeminiProvider(cfg.Keys.GoogleGemini)
	case "ollama":
		return embedding.NewOllamaProvider(cfg.Ai.OllamaBaseURL, cfg.Ai.OllamaEmbeddingModel)
	default:
		return nil
	}
}
