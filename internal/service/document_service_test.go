package service

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"campus-chat-be/internal/constant"
	"campus-chat-be/internal/repository/file"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectCategory(t *testing.T) {
	feesText := strings.Repeat("fee tuition payment ", 3) // 9 keyword hits
	assert.Equal(t, "fees", detectCategory(feesText))

	// Below the threshold everything stays general
	assert.Equal(t, "general", detectCategory("fee tuition"))
	assert.Equal(t, "general", detectCategory("nothing relevant here"))

	hostelText := strings.Repeat("hostel mess warden ", 2)
	assert.Equal(t, "hostel", detectCategory(hostelText))
}

func TestDeleteDoesNotCascadeToChunks(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	documentRepo := file.NewDocumentRepository(filepath.Join(dir, "documents"))
	chunkStore, err := file.NewChunkStore(filepath.Join(dir, "knowledge_base.json"))
	require.NoError(t, err)
	knowledge := NewKnowledgeService(chunkStore, nil, nil, nopLogger{})
	svc := NewDocumentService(documentRepo, knowledge, nopLogger{})

	// Simulate an already-ingested document: raw file on disk plus chunks
	// in the store
	filename := "fees_20250101_120000_handbook.pdf"
	_, err = documentRepo.Save(filename, []byte("%PDF-1.4 dummy"))
	require.NoError(t, err)
	_, err = knowledge.Insert(ctx, "the late fee penalty is 100", "fees", map[string]interface{}{"source": filename})
	require.NoError(t, err)

	listing, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, listing.Documents, 1)
	assert.Equal(t, "fees", listing.Documents[0].Category)

	require.NoError(t, svc.Delete(ctx, filename))

	// Raw file gone, listing empty
	listing, err = svc.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, listing.Documents)
	_, err = os.Stat(filepath.Join(dir, "documents", filename))
	assert.True(t, os.IsNotExist(err))

	// Chunks survive: documents are append-only knowledge
	results, err := knowledge.Search(ctx, "late fee penalty", "fees", 3)
	require.NoError(t, err)
	assert.Len(t, results, 1)
}

func TestDeleteMissingDocument(t *testing.T) {
	dir := t.TempDir()

	documentRepo := file.NewDocumentRepository(filepath.Join(dir, "documents"))
	chunkStore, err := file.NewChunkStore(filepath.Join(dir, "knowledge_base.json"))
	require.NoError(t, err)
	svc := NewDocumentService(documentRepo, NewKnowledgeService(chunkStore, nil, nil, nopLogger{}), nopLogger{})

	err = svc.Delete(context.Background(), "ghost.pdf")
	assert.ErrorIs(t, err, constant.ErrNotFound)
}
