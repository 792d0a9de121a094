package service

import (
	"context"

	"campus-chat-be/internal/dto"
)

type IStatsService interface {
	Aggregate(ctx context.Context) (*dto.StatsResponse, error)
}

// statsService assembles the /api/stats payload from the chatbot, the
// knowledge store and the document listing.
type statsService struct {
	chatbot   IChatbotService
	knowledge IKnowledgeService
	documents IDocumentService
}

func NewStatsService(chatbot IChatbotService, knowledge IKnowledgeService, documents IDocumentService) IStatsService {
	return &statsService{
		chatbot:   chatbot,
		knowledge: knowledge,
		documents: documents,
	}
}

func (s *statsService) Aggregate(ctx context.Context) (*dto.StatsResponse, error) {
	chatbotStats, err := s.chatbot.Stats(ctx)
	if err != nil {
		return nil, err
	}

	byCategory, vectorEnabled := s.knowledge.Stats(ctx)
	totalChunks := 0
	for _, count := range byCategory {
		totalChunks += count
	}

	listing, err := s.documents.List(ctx)
	if err != nil {
		return nil, err
	}

	return &dto.StatsResponse{
		Chatbot: *chatbotStats,
		KnowledgeBase: dto.KnowledgeBaseStats{
			TotalDocuments: totalChunks,
			ByCategory:     byCategory,
			VectorEnabled:  vectorEnabled,
		},
		Documents: len(listing.Documents),
	}, nil
}
