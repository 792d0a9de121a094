package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Storage  StorageConfig
	Keys     APIKeys
	Ai       AIConfig
}

type AppConfig struct {
	Port               string
	Environment        string
	LogFilePath        string
	CorsAllowedOrigins string
	RedisURL           string
	SessionBackend     string // "memory" or "redis"
}

type DatabaseConfig struct {
	Connection string
}

type StorageConfig struct {
	DocumentsDir      string
	AssetsDir         string
	KnowledgeSnapshot string
	FeedbackLog       string
	CampusConfig      string
}

type APIKeys struct {
	Groq          string
	OpenAI        string
	HuggingFace   string
	GoogleGemini  string
	SecretKey     string
	AdminPassword string
}

type AIConfig struct {
	LLMProvider          string // "groq", "openai", "huggingface", "ollama" or "none"
	LLMModel             string
	OllamaBaseURL        string
	HuggingFaceURL       string
	EmbeddingProvider    string // "gemini", "ollama" or "" (lexical only)
	OllamaEmbeddingModel string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, usage system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "3000"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "app.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
			RedisURL:           getEnv("REDIS_URL", "redis://localhost:6379"),
			SessionBackend:     getEnv("SESSION_BACKEND", "memory"),
		},
		Database: DatabaseConfig{
			Connection: getEnv("DB_CONNECTION_STRING", ""),
		},
		Storage: StorageConfig{
			DocumentsDir:      getEnv("DOCUMENTS_DIR", "documents"),
			AssetsDir:         getEnv("ASSETS_DIR", "assets"),
			KnowledgeSnapshot: getEnv("KNOWLEDGE_SNAPSHOT_PATH", "data/knowledge_base.json"),
			FeedbackLog:       getEnv("FEEDBACK_LOG_PATH", "data/feedback.jsonl"),
			CampusConfig:      getEnv("CAMPUS_CONFIG_PATH", "config/campus_config.json"),
		},
		Keys: APIKeys{
			Groq:          getEnv("GROQ_API_KEY", ""),
			OpenAI:        getEnv("OPENAI_API_KEY", ""),
			HuggingFace:   getEnv("HUGGINGFACE_API_KEY", ""),
			GoogleGemini:  getEnv("GOOGLE_GEMINI_API_KEY", ""),
			SecretKey:     getEnv("SECRET_KEY", "campus-chatbot-secret-key-change-me"),
			AdminPassword: getEnv("ADMIN_PASSWORD", ""),
		},
		Ai: AIConfig{
			LLMProvider:          getEnv("LLM_PROVIDER", "groq"),
			LLMModel:             getEnv("LLM_MODEL", ""),
			OllamaBaseURL:        getEnv("OLLAMA_BASE_URL", "http://localhost:11434"),
			HuggingFaceURL:       getEnv("HUGGINGFACE_API_URL", ""),
			EmbeddingProvider:    getEnv("EMBEDDING_PROVIDER", ""),
			OllamaEmbeddingModel: getEnv("OLLAMA_EMBEDDING_MODEL", "nomic-embed-text"),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
