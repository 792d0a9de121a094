package entity

import "time"

// Chunk is a bounded fragment of ingested document text tagged with a topic
// category. Chunks are immutable once stored.
type Chunk struct {
	Id       string
	Content  string
	Category string
	Metadata map[string]interface{}
	AddedAt  time.Time
}

// SearchResult is a scored chunk returned by a knowledge lookup. Higher score
// is better regardless of which backend produced it.
type SearchResult struct {
	Content  string                 `json:"content"`
	Category string                 `json:"category"`
	Score    float64                `json:"score"`
	Metadata map[string]interface{} `json:"metadata"`
}
