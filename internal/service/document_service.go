package service

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"regexp"
	"strings"
	"time"

	"campus-chat-be/internal/constant"
	"campus-chat-be/internal/dto"
	"campus-chat-be/internal/pkg/logger"
	"campus-chat-be/internal/repository/contract"
	"campus-chat-be/pkg/pdfext"
	"campus-chat-be/pkg/utils"
)

const (
	chunkSize    = 800
	chunkOverlap = 150
	minTextLen   = 50
)

var unsafeFilenameChars = regexp.MustCompile(`[^a-zA-Z0-9._-]`)

type IDocumentService interface {
	Upload(ctx context.Context, file *multipart.FileHeader, category string) (*dto.UploadDocumentResponse, error)
	List(ctx context.Context) (*dto.ListDocumentsResponse, error)
	Delete(ctx context.Context, filename string) error
}

// documentService ingests handbook PDFs: save the raw file, extract its
// text, auto-detect a category if none was given, split into overlapping
// chunks and feed them to the knowledge store. Deleting a document removes
// only the raw file; chunks already ingested stay in the store.
type documentService struct {
	documents contract.DocumentRepository
	knowledge IKnowledgeService
	logger    logger.ILogger
}

func NewDocumentService(
	documents contract.DocumentRepository,
	knowledge IKnowledgeService,
	log logger.ILogger,
) IDocumentService {
	return &documentService{
		documents: documents,
		knowledge: knowledge,
		logger:    log,
	}
}

func (s *documentService) Upload(ctx context.Context, file *multipart.FileHeader, category string) (*dto.UploadDocumentResponse, error) {
	category = constant.NormalizeCategory(category)

	src, err := file.Open()
	if err != nil {
		return nil, err
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		return nil, err
	}

	timestamp := time.Now().Format("20060102_150405")
	safeName := unsafeFilenameChars.ReplaceAllString(file.Filename, "_")
	filename := fmt.Sprintf("%s_%s_%s", category, timestamp, safeName)

	path, err := s.documents.Save(filename, data)
	if err != nil {
		return nil, err
	}

	text, err := pdfext.ExtractText(path)
	if err != nil || len(strings.TrimSpace(text)) < minTextLen {
		s.logger.Warn("documents", "Could not extract text from upload", map[string]interface{}{
			"filename": filename,
		})
		return &dto.UploadDocumentResponse{
			Status:  "error",
			Message: "Could not extract meaningful text from PDF",
		}, nil
	}

	if category == constant.CategoryGeneral {
		category = detectCategory(text)
	}

	chunks := utils.SplitParagraphs(text, chunkSize, chunkOverlap)

	docIds := make([]string, 0, len(chunks))
	for i, chunk := range chunks {
		id, err := s.knowledge.Insert(ctx, chunk, category, map[string]interface{}{
			"source":       filename,
			"chunk":        i + 1,
			"total_chunks": len(chunks),
			"processed_at": time.Now().Format(time.RFC3339),
		})
		if err != nil {
			return nil, err
		}
		docIds = append(docIds, id)
	}

	// Only the first few ids are echoed back; the full list can be large
	if len(docIds) > 5 {
		docIds = docIds[:5]
	}

	s.logger.Info("documents", "Document processed", map[string]interface{}{
		"filename": filename,
		"category": category,
		"chunks":   len(chunks),
	})

	return &dto.UploadDocumentResponse{
		Status:      "success",
		Message:     fmt.Sprintf("Successfully processed %d chunks from PDF", len(chunks)),
		Filename:    filename,
		Category:    category,
		Chunks:      len(chunks),
		DocumentIds: docIds,
	}, nil
}

// detectCategory scans the full text for category keywords; a category wins
// only if its keywords occur at least DocumentCategoryThreshold times.
func detectCategory(text string) string {
	lower := strings.ToLower(text)

	best := constant.CategoryGeneral
	bestScore := 0
	for _, category := range constant.Categories {
		keywords, ok := constant.DocumentKeywords[category]
		if !ok {
			continue
		}
		score := 0
		for _, kw := range keywords {
			score += strings.Count(lower, kw)
		}
		if score > bestScore {
			best = category
			bestScore = score
		}
	}

	if bestScore >= constant.DocumentCategoryThreshold {
		return best
	}
	return constant.CategoryGeneral
}

func (s *documentService) List(_ context.Context) (*dto.ListDocumentsResponse, error) {
	documents, err := s.documents.List()
	if err != nil {
		return nil, err
	}
	return &dto.ListDocumentsResponse{Documents: documents}, nil
}

func (s *documentService) Delete(_ context.Context, filename string) error {
	if err := s.documents.Delete(filename); err != nil {
		return err
	}
	s.logger.Info("documents", "Document deleted", map[string]interface{}{"filename": filename})
	return nil
}
