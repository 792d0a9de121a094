package contract

import (
	"context"

	"campus-chat-be/internal/entity"
)

// ScoredChunk wraps a Chunk with its cosine similarity to the query
type ScoredChunk struct {
	Chunk      *entity.Chunk
	Similarity float64 // 0.0 to 1.0 (1.0 = identical)
}

// ChunkRepository is the semantic (vector) knowledge store. It is only
// wired when both a database and an embedding provider are configured.
type ChunkRepository interface {
	CreateBulk(ctx context.Context, chunks []*entity.Chunk, embeddings [][]float32) error
	SearchSimilar(ctx context.Context, embedding []float32, category string, limit int) ([]*ScoredChunk, error)
	CountByCategory(ctx context.Context) (map[string]int, error)
}
