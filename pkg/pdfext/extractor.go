package pdfext

import (
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
)

// ExtractText pulls plain text from a PDF file, page by page. Pages that
// cannot be decoded are skipped rather than failing the whole document.
func ExtractText(path string) (string, error) {
	file, reader, err := pdf.Open(path)
	if err != nil {
		return "", fmt.Errorf("open pdf: %w", err)
	}
	defer file.Close()

	var text strings.Builder
	totalPages := reader.NumPage()
	for i := 1; i <= totalPages; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		pageText, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		if pageText = strings.TrimSpace(pageText); pageText != "" {
			text.WriteString(pageText)
			text.WriteString("\n\n")
		}
	}

	if text.Len() == 0 {
		return "", fmt.Errorf("no text extracted from PDF")
	}

	return text.String(), nil
}
