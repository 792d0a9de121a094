package gateway

import (
	"context"
	"strings"
	"time"

	"campus-chat-be/internal/constant"
	"campus-chat-be/internal/pkg/logger"
	"campus-chat-be/pkg/llm"
)

const (
	healthCheckTimeout = 10 * time.Second
	requestTimeout     = 30 * time.Second
)

// Result is the outcome of a generation call. Degraded marks the fixed
// fallback sentence so tests can tell a failed call from a real answer; the
// HTTP contract never exposes the difference.
type Result struct {
	Text     string
	Degraded bool
}

// Gateway fronts the single configured provider. Any failure, from the
// startup health check to a malformed response body, collapses into the fixed
// fallback sentence. Callers never observe an error.
type Gateway struct {
	provider  llm.LLMProvider
	name      string
	available bool
	logger    logger.ILogger
}

// New performs one synchronous health check. If the provider is nil ("none")
// or the check fails, the gateway starts in the fallback state and stays
// there for the life of the process.
func New(name string, provider llm.LLMProvider, log logger.ILogger) *Gateway {
	g := &Gateway{
		provider: provider,
		name:     name,
		logger:   log,
	}

	if provider == nil {
		g.name = "fallback"
		log.Warn("llm-gateway", "No LLM provider configured, using templated fallback only", nil)
		return g
	}

	ctx, cancel := context.WithTimeout(context.Background(), healthCheckTimeout)
	defer cancel()

	if _, err := provider.Generate(ctx, "Hi", llm.WithMaxTokens(10)); err != nil {
		g.name = "fallback"
		log.Warn("llm-gateway", "Provider health check failed, demoting to fallback", map[string]interface{}{
			"provider": name,
			"error":    err.Error(),
		})
		return g
	}

	g.available = true
	log.Info("llm-gateway", "LLM provider initialized", map[string]interface{}{"provider": name})
	return g
}

// Name reports the active provider, or "fallback" after demotion.
func (g *Gateway) Name() string {
	return g.name
}

func (g *Gateway) IsAvailable() bool {
	return g.available
}

// Generate issues one bounded request. No retries: a single failure falls
// straight to the fallback sentence.
func (g *Gateway) Generate(ctx context.Context, prompt string, maxTokens int) Result {
	if !g.available {
		return Result{Text: constant.FallbackSentence, Degraded: true}
	}

	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	text, err := g.provider.Generate(ctx, prompt, llm.WithMaxTokens(maxTokens))
	if err != nil {
		g.logger.Warn("llm-gateway", "Generation failed, returning fallback", map[string]interface{}{
			"provider": g.name,
			"error":    err.Error(),
		})
		return Result{Text: constant.FallbackSentence, Degraded: true}
	}

	return Result{Text: strings.TrimSpace(text)}
}
