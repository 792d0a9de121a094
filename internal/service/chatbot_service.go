package service

import (
	"context"
	"fmt"
	"strings"
	"sync/atomic"
	"time"

	"campus-chat-be/internal/constant"
	"campus-chat-be/internal/dto"
	"campus-chat-be/internal/entity"
	"campus-chat-be/internal/pkg/logger"
	"campus-chat-be/internal/repository/contract"
	"campus-chat-be/pkg/llm/gateway"
	"campus-chat-be/pkg/rag/fallback"
	"campus-chat-be/pkg/rag/intent"
	"campus-chat-be/pkg/rag/prompt"
	"campus-chat-be/pkg/store"
	"campus-chat-be/pkg/utils"

	"github.com/google/uuid"
)

type IChatbotService interface {
	Respond(ctx context.Context, req *dto.ChatRequest) (*dto.ChatResponse, error)
	Stats(ctx context.Context) (*dto.ChatbotStats, error)
}

// chatbotService runs the retrieval-and-fallback pipeline: classify intent,
// pull at most 3 chunks scoped to it, assemble a prompt with the recent
// turns, call the gateway, and replace any non-answer with the templated
// response for the category.
type chatbotService struct {
	sessions   contract.SessionRepository
	knowledge  IKnowledgeService
	gateway    *gateway.Gateway
	config     ICampusConfigService
	feedback   contract.FeedbackRepository
	classifier *intent.Classifier
	responder  *fallback.Responder
	logger     logger.ILogger

	messageCount atomic.Int64
}

func NewChatbotService(
	sessions contract.SessionRepository,
	knowledge IKnowledgeService,
	gw *gateway.Gateway,
	config ICampusConfigService,
	feedback contract.FeedbackRepository,
	log logger.ILogger,
) IChatbotService {
	return &chatbotService{
		sessions:   sessions,
		knowledge:  knowledge,
		gateway:    gw,
		config:     config,
		feedback:   feedback,
		classifier: intent.NewClassifier(constant.Categories, constant.IntentKeywords),
		responder: fallback.NewResponder(func() (string, string) {
			return config.GetValue("campus_info", "contact_email"),
				config.GetValue("campus_info", "contact_phone")
		}),
		logger: log,
	}
}

func (s *chatbotService) systemPrompt() string {
	campusName := s.config.GetValue("campus_info", "name")
	if campusName == "" {
		campusName = "University"
	}
	botName := s.config.GetValue("chatbot_settings", "bot_name")
	if botName == "" {
		botName = "CampusBot"
	}

	return fmt.Sprintf(`You are %s, an AI assistant for %s.

Your role: Help students, faculty, and visitors with campus queries.

You can help with:
- Fee structure and payment details
- Exam schedules and academic calendar
- Hostel rules and accommodation
- Library services and timings
- General campus information

Guidelines:
1. Be friendly, professional, and helpful
2. Provide accurate information based on university documents
3. If unsure, suggest contacting the relevant department
4. Keep responses concise (2-4 sentences)
5. Format responses clearly with bullet points when needed
6. Always provide contact info when relevant

When you lack specific information, clearly state that and suggest alternatives.`, botName, campusName)
}

func (s *chatbotService) Respond(ctx context.Context, req *dto.ChatRequest) (*dto.ChatResponse, error) {
	sessionID := req.SessionId
	if sessionID == "" {
		sessionID = "default"
	}

	session, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session == nil {
		session = store.NewSession(sessionID, constant.MaxSessionTurns)
	}

	classified := s.classifier.Classify(req.Message)

	results, err := s.knowledge.Search(ctx, req.Message, classified, constant.MaxContextChunks)
	if err != nil {
		s.logger.Warn("chatbot", "Knowledge search failed, answering without context", map[string]interface{}{
			"error": err.Error(),
		})
		results = nil
	}
	hasContext := len(results) > 0

	p := prompt.NewBuilder(
		s.systemPrompt(),
		results,
		session.LastTurns(constant.MaxHistoryTurns),
		req.Message,
		constant.ChunkPreviewLen,
	).Build()

	responseText := s.generate(ctx, p, results, classified)

	session.Append(store.Turn{
		UserText:  req.Message,
		BotText:   responseText,
		Intent:    classified,
		Timestamp: time.Now(),
	})
	if err := s.sessions.Save(ctx, session); err != nil {
		s.logger.Warn("chatbot", "Failed to save session", map[string]interface{}{
			"session_id": sessionID,
			"error":      err.Error(),
		})
	}
	s.messageCount.Add(1)

	return &dto.ChatResponse{
		MessageId:      uuid.New().String(),
		Response:       responseText,
		Intent:         classified,
		HasContext:     hasContext,
		RelatedActions: relatedActions(classified),
		DepartmentInfo: s.config.GetDepartment(classified),
		Timestamp:      time.Now(),
	}, nil
}

// generate calls the provider once and accepts the output only if it is a
// real answer: non-empty after trimming and longer than 20 characters.
// Anything else falls to the templated response for the intent. No retries.
func (s *chatbotService) generate(ctx context.Context, promptText string, results []entity.SearchResult, classified string) string {
	result := s.gateway.Generate(ctx, promptText, constant.GenerateTokens)

	if !result.Degraded {
		if text := strings.TrimSpace(result.Text); len(text) > constant.MinUsableReplyLen {
			return text
		}
	}

	dept := s.department(classified)
	if len(results) > 0 {
		parts := make([]string, 0, len(results))
		for i, r := range results {
			content := utils.TruncateChars(r.Content, constant.ChunkPreviewLen)
			parts = append(parts, fmt.Sprintf("[Source %d]:\n%s", i+1, content))
		}
		return s.responder.WithContext(strings.Join(parts, "\n\n"), dept)
	}
	return s.responder.Template(classified, dept)
}

func (s *chatbotService) department(category string) *fallback.Department {
	info := s.config.GetDepartment(category)
	if info == nil {
		return nil
	}
	return &fallback.Department{
		Contact:  info.Contact,
		Phone:    info.Phone,
		Location: info.Location,
		Hours:    info.Hours,
	}
}

func relatedActions(category string) []dto.RelatedAction {
	actions := fallback.RelatedActions(category)
	out := make([]dto.RelatedAction, len(actions))
	for i, a := range actions {
		out[i] = dto.RelatedAction{Label: a.Label, Query: a.Query}
	}
	return out
}

func (s *chatbotService) Stats(ctx context.Context) (*dto.ChatbotStats, error) {
	totalSessions, err := s.sessions.Count(ctx)
	if err != nil {
		return nil, err
	}
	totalFeedback, err := s.feedback.Count()
	if err != nil {
		return nil, err
	}

	return &dto.ChatbotStats{
		TotalSessions: totalSessions,
		TotalMessages: int(s.messageCount.Load()),
		TotalFeedback: totalFeedback,
		LLMProvider:   s.gateway.Name(),
		LLMAvailable:  s.gateway.IsAvailable(),
	}, nil
}
