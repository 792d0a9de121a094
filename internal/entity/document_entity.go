package entity

import "time"

// Document describes an uploaded PDF sitting in the documents directory.
// Deleting a document removes the file only; chunks already ingested from it
// stay in the knowledge store.
type Document struct {
	Filename   string    `json:"filename"`
	Category   string    `json:"category"`
	SizeKB     float64   `json:"size_kb"`
	UploadedAt time.Time `json:"uploaded_at"`
}
