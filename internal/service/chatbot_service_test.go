package service

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"

	"campus-chat-be/internal/constant"
	"campus-chat-be/internal/dto"
	"campus-chat-be/internal/repository/file"
	"campus-chat-be/internal/repository/memory"
	"campus-chat-be/pkg/llm"
	"campus-chat-be/pkg/llm/gateway"
	"campus-chat-be/pkg/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Debug(module, message string, details map[string]interface{}) {}
func (nopLogger) Info(module, message string, details map[string]interface{})  {}
func (nopLogger) Warn(module, message string, details map[string]interface{})  {}
func (nopLogger) Error(module, message string, details map[string]interface{}) {}
func (nopLogger) Sync() error                                                  { return nil }

// echoProvider returns the prompt it received, so tests can inspect what the
// assembler sent. healthy=false makes every call fail.
type echoProvider struct {
	healthy    bool
	reply      string // when set, returned instead of the prompt
	lastPrompt string
}

func (p *echoProvider) Chat(ctx context.Context, history []llm.Message, opts ...llm.Option) (string, error) {
	return p.Generate(ctx, "", opts...)
}

func (p *echoProvider) Generate(ctx context.Context, prompt string, opts ...llm.Option) (string, error) {
	if !p.healthy {
		return "", fmt.Errorf("unreachable")
	}
	p.lastPrompt = prompt
	if p.reply != "" {
		return p.reply, nil
	}
	return prompt, nil
}

type chatbotFixture struct {
	service   IChatbotService
	sessions  *memory.SessionRepository
	knowledge IKnowledgeService
	config    ICampusConfigService
	provider  *echoProvider
}

func newChatbotFixture(t *testing.T, provider *echoProvider) *chatbotFixture {
	t.Helper()
	dir := t.TempDir()

	chunkStore, err := file.NewChunkStore(filepath.Join(dir, "knowledge_base.json"))
	require.NoError(t, err)
	feedbackLog := file.NewFeedbackLog(filepath.Join(dir, "feedback.jsonl"))

	configService, err := NewCampusConfigService(filepath.Join(dir, "campus_config.json"), nopLogger{})
	require.NoError(t, err)

	sessions := memory.NewSessionRepository()
	knowledge := NewKnowledgeService(chunkStore, nil, nil, nopLogger{})

	var gw *gateway.Gateway
	if provider == nil {
		gw = gateway.New("none", nil, nopLogger{})
	} else {
		gw = gateway.New("test", provider, nopLogger{})
	}

	return &chatbotFixture{
		service:   NewChatbotService(sessions, knowledge, gw, configService, feedbackLog, nopLogger{}),
		sessions:  sessions,
		knowledge: knowledge,
		config:    configService,
		provider:  provider,
	}
}

func TestRespondFallsToFeesTemplate(t *testing.T) {
	// Empty knowledge store, no provider: the fees template must come back
	f := newChatbotFixture(t, nil)

	res, err := f.service.Respond(context.Background(), &dto.ChatRequest{
		Message:   "What is the hostel fee?",
		SessionId: "s1",
	})
	require.NoError(t, err)

	assert.Equal(t, "fees", res.Intent)
	assert.False(t, res.HasContext)
	assert.Contains(t, res.Response, "Fee Information")
	assert.NotEmpty(t, res.MessageId)
	assert.Len(t, res.RelatedActions, 3)
}

func TestRespondUsesProviderAnswer(t *testing.T) {
	p := &echoProvider{healthy: true, reply: "The tuition fee is 5000 per semester, payable twice a year."}
	f := newChatbotFixture(t, p)

	res, err := f.service.Respond(context.Background(), &dto.ChatRequest{
		Message:   "How much is tuition?",
		SessionId: "s1",
	})
	require.NoError(t, err)

	assert.Equal(t, p.reply, res.Response)
	assert.Equal(t, "fees", res.Intent)
}

func TestRespondRejectsShortProviderOutput(t *testing.T) {
	// 20 characters or fewer after trimming is a non-answer
	p := &echoProvider{healthy: true, reply: "ok"}
	f := newChatbotFixture(t, p)

	res, err := f.service.Respond(context.Background(), &dto.ChatRequest{
		Message:   "What is the fee structure?",
		SessionId: "s1",
	})
	require.NoError(t, err)

	assert.Contains(t, res.Response, "Fee Information")
}

func TestRespondIncludesOnlyRecentTurns(t *testing.T) {
	p := &echoProvider{healthy: true}
	f := newChatbotFixture(t, p)
	ctx := context.Background()

	session := store.NewSession("s1", constant.MaxSessionTurns)
	for i := 1; i <= 5; i++ {
		session.Append(store.Turn{
			UserText: fmt.Sprintf("question-%d", i),
			BotText:  fmt.Sprintf("answer-%d", i),
		})
	}
	require.NoError(t, f.sessions.Save(ctx, session))

	_, err := f.service.Respond(ctx, &dto.ChatRequest{
		Message:   "one more question",
		SessionId: "s1",
	})
	require.NoError(t, err)

	assert.Contains(t, p.lastPrompt, "question-3")
	assert.Contains(t, p.lastPrompt, "question-5")
	assert.NotContains(t, p.lastPrompt, "question-1")
	assert.NotContains(t, p.lastPrompt, "question-2")
	assert.Contains(t, p.lastPrompt, "User Question: one more question")
}

func TestRespondDegradedWithContext(t *testing.T) {
	p := &echoProvider{healthy: true}
	f := newChatbotFixture(t, p)
	ctx := context.Background()

	_, err := f.knowledge.Insert(ctx, "The tuition fee is 5000 per semester", "fees", nil)
	require.NoError(t, err)

	// Provider dies after the health check
	p.healthy = false

	res, err := f.service.Respond(ctx, &dto.ChatRequest{
		Message:   "tuition fee",
		SessionId: "s1",
	})
	require.NoError(t, err)

	assert.True(t, res.HasContext)
	assert.Contains(t, res.Response, "Based on our university documents")
	assert.Contains(t, res.Response, "tuition fee")
}

func TestGeneralFallbackUsesUpdatedContacts(t *testing.T) {
	// Contacts changed via the config endpoint must show up in fallbacks
	// issued after the service was built
	f := newChatbotFixture(t, nil)
	ctx := context.Background()

	require.NoError(t, f.config.Update(map[string]interface{}{
		"campus_info": map[string]interface{}{
			"contact_email": "admin@acme.edu",
			"contact_phone": "+1-555-0100",
		},
	}))

	res, err := f.service.Respond(ctx, &dto.ChatRequest{Message: "hello there", SessionId: "s1"})
	require.NoError(t, err)

	assert.Equal(t, "general", res.Intent)
	assert.Contains(t, res.Response, "admin@acme.edu")
	assert.Contains(t, res.Response, "+1-555-0100")
}

func TestRespondAppendsTurn(t *testing.T) {
	f := newChatbotFixture(t, nil)
	ctx := context.Background()

	_, err := f.service.Respond(ctx, &dto.ChatRequest{Message: "library timings?", SessionId: "s9"})
	require.NoError(t, err)

	session, err := f.sessions.Get(ctx, "s9")
	require.NoError(t, err)
	require.NotNil(t, session)
	require.Len(t, session.History, 1)
	assert.Equal(t, "library timings?", session.History[0].UserText)
	assert.Equal(t, "library", session.History[0].Intent)
}

func TestStats(t *testing.T) {
	f := newChatbotFixture(t, nil)
	ctx := context.Background()

	_, err := f.service.Respond(ctx, &dto.ChatRequest{Message: "hello there", SessionId: "a"})
	require.NoError(t, err)
	_, err = f.service.Respond(ctx, &dto.ChatRequest{Message: "hello again", SessionId: "b"})
	require.NoError(t, err)

	stats, err := f.service.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, stats.TotalSessions)
	assert.Equal(t, 2, stats.TotalMessages)
	assert.Equal(t, "fallback", stats.LLMProvider)
	assert.False(t, stats.LLMAvailable)
}
