package contract

import "campus-chat-be/internal/entity"

// LexicalChunkRepository is the always-on keyword knowledge store backed
// by a JSON snapshot on disk. It serves as the fallback retrieval path
// when no vector store is configured or a semantic search fails.
type LexicalChunkRepository interface {
	Insert(chunks []*entity.Chunk) error
	Search(query, category string, limit int) ([]entity.SearchResult, error)
	CountByCategory() map[string]int
}
