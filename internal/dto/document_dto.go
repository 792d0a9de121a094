package dto

import "campus-chat-be/internal/entity"

type UploadDocumentResponse struct {
	Status      string   `json:"status"`
	Message     string   `json:"message"`
	Filename    string   `json:"filename,omitempty"`
	Category    string   `json:"category,omitempty"`
	Chunks      int      `json:"chunks,omitempty"`
	DocumentIds []string `json:"document_ids,omitempty"`
}

type ListDocumentsResponse struct {
	Documents []entity.Document `json:"documents"`
}

type DeleteDocumentResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}
