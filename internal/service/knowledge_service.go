package service

import (
	"context"
	"fmt"
	"time"

	"campus-chat-be/internal/entity"
	"campus-chat-be/internal/pkg/logger"
	"campus-chat-be/internal/repository/contract"
	"campus-chat-be/pkg/embedding"
)

type IKnowledgeService interface {
	Insert(ctx context.Context, content, category string, metadata map[string]interface{}) (string, error)
	Search(ctx context.Context, query, category string, topK int) ([]entity.SearchResult, error)
	Stats(ctx context.Context) (map[string]int, bool)
}

// knowledgeService fronts two stores: the JSON snapshot lexical store, which
// is always present, and an optional pgvector-backed semantic store used when
// both a database and an embedding provider are configured. Semantic search
// failures degrade to lexical search, never to an error.
type knowledgeService struct {
	lexical  contract.LexicalChunkRepository
	vector   contract.ChunkRepository    // nil when no database
	embedder embedding.EmbeddingProvider // nil when no embedding provider
	logger   logger.ILogger
}

func NewKnowledgeService(
	lexical contract.LexicalChunkRepository,
	vector contract.ChunkRepository,
	embedder embedding.EmbeddingProvider,
	log logger.ILogger,
) IKnowledgeService {
	return &knowledgeService{
		lexical:  lexical,
		vector:   vector,
		embedder: embedder,
		logger:   log,
	}
}

func (s *knowledgeService) vectorEnabled() bool {
	return s.vector != nil && s.embedder != nil
}

// Insert writes the chunk to the lexical store and, when the semantic store
// is enabled, embeds and writes it there too. The chunk id is derived from
// the category and insert time.
func (s *knowledgeService) Insert(ctx context.Context, content, category string, metadata map[string]interface{}) (string, error) {
	chunk := &entity.Chunk{
		Id:       fmt.Sprintf("%s_%d", category, time.Now().UnixMicro()),
		Content:  content,
		Category: category,
		Metadata: metadata,
		AddedAt:  time.Now(),
	}

	if err := s.lexical.Insert([]*entity.Chunk{chunk}); err != nil {
		return "", err
	}

	if s.vectorEnabled() {
		resp, err := s.embedder.Generate(content, embedding.TaskRetrievalDocument)
		if err != nil {
			s.logger.Warn("knowledge", "Embedding failed, chunk stored lexically only", map[string]interface{}{
				"chunk_id": chunk.Id,
				"error":    err.Error(),
			})
			return chunk.Id, nil
		}
		if err := s.vector.CreateBulk(ctx, []*entity.Chunk{chunk}, [][]float32{resp.Embedding.Values}); err != nil {
			s.logger.Warn("knowledge", "Vector store insert failed, chunk stored lexically only", map[string]interface{}{
				"chunk_id": chunk.Id,
				"error":    err.Error(),
			})
		}
	}

	return chunk.Id, nil
}

// Search tries the semantic store first and silently falls back to lexical
// overlap on any failure.
func (s *knowledgeService) Search(ctx context.Context, query, category string, topK int) ([]entity.SearchResult, error) {
	if s.vectorEnabled() {
		results, err := s.searchSemantic(ctx, query, category, topK)
		if err == nil {
			return results, nil
		}
		s.logger.Warn("knowledge", "Semantic search failed, degrading to lexical", map[string]interface{}{
			"error": err.Error(),
		})
	}
	return s.lexical.Search(query, category, topK)
}

func (s *knowledgeService) searchSemantic(ctx context.Context, query, category string, topK int) ([]entity.SearchResult, error) {
	resp, err := s.embedder.Generate(query, embedding.TaskRetrievalQuery)
	if err != nil {
		return nil, err
	}

	scored, err := s.vector.SearchSimilar(ctx, resp.Embedding.Values, category, topK)
	if err != nil {
		return nil, err
	}

	results := make([]entity.SearchResult, len(scored))
	for i, sc := range scored {
		results[i] = entity.SearchResult{
			Content:  sc.Chunk.Content,
			Category: sc.Chunk.Category,
			Score:    sc.Similarity,
			Metadata: sc.Chunk.Metadata,
		}
	}
	return results, nil
}

// Stats returns per-category chunk counts and whether the semantic store is
// active. Vector counts are preferred; lexical counts are authoritative when
// the database is down.
func (s *knowledgeService) Stats(ctx context.Context) (map[string]int, bool) {
	if s.vectorEnabled() {
		if counts, err := s.vector.CountByCategory(ctx); err == nil {
			return counts, true
		}
	}
	return s.lexical.CountByCategory(), s.vectorEnabled()
}
