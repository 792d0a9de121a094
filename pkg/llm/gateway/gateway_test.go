package gateway

import (
	"context"
	"fmt"
	"testing"

	"campus-chat-be/internal/constant"
	"campus-chat-be/pkg/llm"

	"github.com/stretchr/testify/assert"
)

type stubProvider struct {
	reply   string
	failing bool
	calls   int
}

func (p *stubProvider) Chat(ctx context.Context, messages []llm.Message, opts ...llm.Option) (string, error) {
	return p.Generate(ctx, "", opts...)
}

func (p *stubProvider) Generate(ctx context.Context, prompt string, opts ...llm.Option) (string, error) {
	p.calls++
	if p.failing {
		return "", fmt.Errorf("connection refused")
	}
	return p.reply, nil
}

type nopLogger struct{}

func (nopLogger) Debug(module, message string, details map[string]interface{}) {}
func (nopLogger) Info(module, message string, details map[string]interface{})  {}
func (nopLogger) Warn(module, message string, details map[string]interface{})  {}
func (nopLogger) Error(module, message string, details map[string]interface{}) {}
func (nopLogger) Sync() error                                                  { return nil }

func TestGatewayHealthyProvider(t *testing.T) {
	p := &stubProvider{reply: "Sure, here is your answer about fees."}
	g := New("groq", p, nopLogger{})

	assert.True(t, g.IsAvailable())
	assert.Equal(t, "groq", g.Name())

	res := g.Generate(context.Background(), "hello", 100)
	assert.False(t, res.Degraded)
	assert.Equal(t, "Sure, here is your answer about fees.", res.Text)
}

func TestGatewayDemotesOnFailedHealthCheck(t *testing.T) {
	p := &stubProvider{failing: true}
	g := New("groq", p, nopLogger{})

	assert.False(t, g.IsAvailable())
	assert.Equal(t, "fallback", g.Name())

	res := g.Generate(context.Background(), "hello", 100)
	assert.True(t, res.Degraded)
	assert.Equal(t, constant.FallbackSentence, res.Text)

	// Only the health check reached the provider; a demoted gateway never
	// calls out again
	assert.Equal(t, 1, p.calls)
}

func TestGatewayNoneProvider(t *testing.T) {
	g := New("none", nil, nopLogger{})

	assert.False(t, g.IsAvailable())
	assert.Equal(t, "fallback", g.Name())
	assert.Equal(t, constant.FallbackSentence, g.Generate(context.Background(), "hi", 10).Text)
}

func TestGatewayAbsorbsRequestFailure(t *testing.T) {
	p := &stubProvider{reply: "ok, long enough to pass the health check"}
	g := New("groq", p, nopLogger{})
	assert.True(t, g.IsAvailable())

	p.failing = true
	res := g.Generate(context.Background(), "hello", 100)
	assert.True(t, res.Degraded)
	assert.Equal(t, constant.FallbackSentence, res.Text)

	// Health check + one generate, no retries
	assert.Equal(t, 2, p.calls)
}
