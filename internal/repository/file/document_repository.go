package file

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"campus-chat-be/internal/constant"
	"campus-chat-be/internal/entity"
	"campus-chat-be/internal/repository/contract"
)

// DocumentRepository stores the uploaded handbook PDFs on disk. The
// filename carries the category prefix so listing never needs a
// database: {category}_{timestamp}_{sanitized-name}.pdf
type DocumentRepository struct {
	dir string
}

func NewDocumentRepository(dir string) *DocumentRepository {
	return &DocumentRepository{dir: dir}
}

var _ contract.DocumentRepository = (*DocumentRepository)(nil)

func (r *DocumentRepository) Save(filename string, data []byte) (string, error) {
	if err := os.MkdirAll(r.dir, 0o755); err != nil {
		return "", err
	}
	path := filepath.Join(r.dir, filename)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", err
	}
	return path, nil
}

func (r *DocumentRepository) List() ([]entity.Document, error) {
	entries, err := os.ReadDir(r.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return []entity.Document{}, nil
		}
		return nil, err
	}

	documents := make([]entity.Document, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(strings.ToLower(e.Name()), ".pdf") {
			continue
		}
		info, err := e.Info()
		if err != nil {
			continue
		}

		category := constant.CategoryGeneral
		if idx := strings.Index(e.Name(), "_"); idx > 0 {
			category = constant.NormalizeCategory(e.Name()[:idx])
		}

		documents = append(documents, entity.Document{
			Filename:   e.Name(),
			Category:   category,
			SizeKB:     float64(info.Size()) / 1024.0,
			UploadedAt: info.ModTime(),
		})
	}

	// Newest first
	sort.Slice(documents, func(i, j int) bool {
		return documents[i].UploadedAt.After(documents[j].UploadedAt)
	})
	return documents, nil
}

func (r *DocumentRepository) Delete(filename string) error {
	// Reject anything trying to escape the documents directory
	if filepath.Base(filename) != filename {
		return constant.ErrNotFound
	}
	path := filepath.Join(r.dir, filename)
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return constant.ErrNotFound
		}
		return err
	}
	return os.Remove(path)
}

func (r *DocumentRepository) Path(filename string) string {
	return filepath.Join(r.dir, filename)
}
