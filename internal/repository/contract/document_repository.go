package contract

import "campus-chat-be/internal/entity"

// DocumentRepository manages the uploaded handbook PDFs on disk.
type DocumentRepository interface {
	Save(filename string, data []byte) (string, error)
	List() ([]entity.Document, error)
	Delete(filename string) error
	Path(filename string) string
}
