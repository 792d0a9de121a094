package mapper

import (
	"campus-chat-be/internal/entity"
	"campus-chat-be/internal/model"

	"github.com/pgvector/pgvector-go"
	"gorm.io/datatypes"
)

type ChunkMapper struct{}

func NewChunkMapper() *ChunkMapper {
	return &ChunkMapper{}
}

func (m *ChunkMapper) ToEntity(c *model.KnowledgeChunk) *entity.Chunk {
	if c == nil {
		return nil
	}

	return &entity.Chunk{
		Id:       c.ChunkId,
		Content:  c.Content,
		Category: c.Category,
		Metadata: map[string]interface{}(c.Metadata),
		AddedAt:  c.CreatedAt,
	}
}

func (m *ChunkMapper) ToModel(c *entity.Chunk, embedding []float32) *model.KnowledgeChunk {
	if c == nil {
		return nil
	}

	return &model.KnowledgeChunk{
		ChunkId:        c.Id,
		Content:        c.Content,
		Category:       c.Category,
		Metadata:       datatypes.JSONMap(c.Metadata),
		EmbeddingValue: pgvector.NewVector(embedding),
		CreatedAt:      c.AddedAt,
	}
}

func (m *ChunkMapper) ToEntities(chunks []*model.KnowledgeChunk) []*entity.Chunk {
	entities := make([]*entity.Chunk, len(chunks))
	for i, c := range chunks {
		entities[i] = m.ToEntity(c)
	}
	return entities
}
