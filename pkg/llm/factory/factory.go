package factory

import (
	"fmt"

	"campus-chat-be/pkg/llm"
	"campus-chat-be/pkg/llm/groq"
	"campus-chat-be/pkg/llm/huggingface"
	"campus-chat-be/pkg/llm/ollama"
	"campus-chat-be/pkg/llm/openai"
)

// Config carries everything any backend might need. Unused fields are ignored
// by the selected provider.
type Config struct {
	Provider       string // "groq", "openai", "huggingface", "ollama", "none"
	Model          string
	GroqAPIKey     string
	OpenAIAPIKey   string
	HuggingFaceKey string
	HuggingFaceURL string
	OllamaBaseURL  string
}

// NewLLMProvider selects exactly one backend at startup. "none" returns a nil
// provider, which the gateway treats as permanently unavailable.
func NewLLMProvider(cfg Config) (llm.LLMProvider, error) {
	switch cfg.Provider {
	case "groq":
		return groq.NewGroqProvider(cfg.GroqAPIKey, cfg.Model), nil
	case "openai":
		return openai.NewOpenAIProvider(cfg.OpenAIAPIKey, cfg.Model), nil
	case "huggingface":
		return huggingface.NewHuggingFaceProvider(cfg.HuggingFaceKey, cfg.HuggingFaceURL, cfg.Model), nil
	case "ollama":
		return ollama.NewOllamaProvider(cfg.OllamaBaseURL, cfg.Model), nil
	case "none", "":
		return nil, nil
	default:
		return nil, fmt.Errorf("unsupported LLM provider: %s", cfg.Provider)
	}
}
