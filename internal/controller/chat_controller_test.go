package controller

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"campus-chat-be/internal/dto"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubChatbotService struct {
	lastReq *dto.ChatRequest
}

func (s *stubChatbotService) Respond(ctx context.Context, req *dto.ChatRequest) (*dto.ChatResponse, error) {
	s.lastReq = req
	return &dto.ChatResponse{
		MessageId:  "11111111-2222-3333-4444-555555555555",
		Response:   "stub answer",
		Intent:     "fees",
		HasContext: false,
		Timestamp:  time.Now(),
	}, nil
}

func (s *stubChatbotService) Stats(ctx context.Context) (*dto.ChatbotStats, error) {
	return &dto.ChatbotStats{}, nil
}

func newChatTestApp(svc *stubChatbotService) *fiber.App {
	app := fiber.New()
	NewChatController(svc).RegisterRoutes(app.Group("/api"))
	return app
}

func postChat(t *testing.T, app *fiber.App, body map[string]interface{}) (int, map[string]interface{}) {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest("POST", "/api/chat", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	var parsed map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&parsed))
	return resp.StatusCode, parsed
}

func TestChatEmptyMessageRejected(t *testing.T) {
	app := newChatTestApp(&stubChatbotService{})

	status, body := postChat(t, app, map[string]interface{}{"message": ""})
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "No message provided", body["message"])

	// Whitespace-only counts as empty
	status, _ = postChat(t, app, map[string]interface{}{"message": "   "})
	assert.Equal(t, fiber.StatusBadRequest, status)
}

func TestChatMessageLengthBoundary(t *testing.T) {
	svc := &stubChatbotService{}
	app := newChatTestApp(svc)

	// Exactly 500 characters passes
	status, _ := postChat(t, app, map[string]interface{}{
		"message":    strings.Repeat("a", 500),
		"session_id": "s1",
	})
	assert.Equal(t, fiber.StatusOK, status)

	// 501 characters is rejected
	status, body := postChat(t, app, map[string]interface{}{
		"message":    strings.Repeat("a", 501),
		"session_id": "s1",
	})
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "Message too long (max 500 characters)", body["message"])
}

func TestChatSuccess(t *testing.T) {
	svc := &stubChatbotService{}
	app := newChatTestApp(svc)

	status, body := postChat(t, app, map[string]interface{}{
		"message":    "What is the fee structure?",
		"session_id": "s1",
	})

	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "stub answer", body["response"])
	assert.Equal(t, "fees", body["intent"])
	assert.Equal(t, false, body["has_context"])
	assert.NotEmpty(t, body["message_id"])

	require.NotNil(t, svc.lastReq)
	assert.Equal(t, "s1", svc.lastReq.SessionId)
}

func TestChatTrimsMessage(t *testing.T) {
	svc := &stubChatbotService{}
	app := newChatTestApp(svc)

	status, _ := postChat(t, app, map[string]interface{}{
		"message": "  hello there  ",
	})

	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "hello there", svc.lastReq.Message)
}
