package file

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"campus-chat-be/internal/entity"
	"campus-chat-be/internal/repository/contract"
)

// ChunkStore is the JSON snapshot knowledge store. All chunks live in
// memory grouped by category; every mutation rewrites the snapshot file
// via a temp file and an atomic rename so a crash mid-write never
// corrupts the store.
type ChunkStore struct {
	mu     sync.RWMutex
	path   string
	chunks map[string][]*entity.Chunk
}

func NewChunkStore(path string) (*ChunkStore, error) {
	s := &ChunkStore{
		path:   path,
		chunks: make(map[string][]*entity.Chunk),
	}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

var _ contract.LexicalChunkRepository = (*ChunkStore)(nil)

func (s *ChunkStore) load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to read knowledge snapshot: %w", err)
	}

	var snapshot map[string][]*entity.Chunk
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return fmt.Errorf("failed to parse knowledge snapshot: %w", err)
	}

	s.chunks = snapshot
	return nil
}

func (s *ChunkStore) save() error {
	data, err := json.MarshalIndent(s.chunks, "", "  ")
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return err
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, s.path)
}

func (s *ChunkStore) Insert(chunks []*entity.Chunk) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, c := range chunks {
		s.chunks[c.Category] = append(s.chunks[c.Category], c)
	}
	return s.save()
}

// Search scores each chunk by word overlap with the query:
// |query_words ∩ content_words| / |query_words|. Chunks with zero
// overlap are excluded; ties keep insertion order.
func (s *ChunkStore) Search(query, category string, limit int) ([]entity.SearchResult, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	queryWords := wordSet(query)
	if len(queryWords) == 0 {
		return []entity.SearchResult{}, nil
	}

	var candidates []*entity.Chunk
	if category != "" {
		candidates = s.chunks[category]
	} else {
		for _, cat := range sortedKeys(s.chunks) {
			candidates = append(candidates, s.chunks[cat]...)
		}
	}

	var results []entity.SearchResult
	for _, c := range candidates {
		contentWords := wordSet(c.Content)
		overlap := 0
		for w := range queryWords {
			if _, ok := contentWords[w]; ok {
				overlap++
			}
		}
		if overlap == 0 {
			continue
		}
		results = append(results, entity.SearchResult{
			Content:  c.Content,
			Category: c.Category,
			Score:    float64(overlap) / float64(len(queryWords)),
			Metadata: c.Metadata,
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})

	if limit > 0 && len(results) > limit {
		results = results[:limit]
	}
	return results, nil
}

func (s *ChunkStore) CountByCategory() map[string]int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	counts := make(map[string]int, len(s.chunks))
	for category, chunks := range s.chunks {
		counts[category] = len(chunks)
	}
	return counts
}

func wordSet(text string) map[string]struct{} {
	words := strings.Fields(strings.ToLower(text))
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}

func sortedKeys(m map[string][]*entity.Chunk) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
