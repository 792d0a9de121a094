package utils

import (
	"regexp"
	"strings"
)

var (
	multiNewline = regexp.MustCompile(`\n{3,}`)
	multiSpace   = regexp.MustCompile(` {2,}`)
)

// SplitParagraphs splits text into chunks of roughly chunkSize characters,
// accumulating whole paragraphs and carrying the last 30 words of the
// previous chunk into the next one when overlap > 0, so facts spanning a
// boundary stay retrievable.
func SplitParagraphs(text string, chunkSize int, overlap int) []string {
	text = multiNewline.ReplaceAllString(text, "\n\n")
	text = multiSpace.ReplaceAllString(text, " ")

	var paragraphs []string
	for _, p := range strings.Split(text, "\n\n") {
		if p = strings.TrimSpace(p); p != "" {
			paragraphs = append(paragraphs, p)
		}
	}

	var chunks []string
	var current strings.Builder

	for _, para := range paragraphs {
		if current.Len()+len(para) < chunkSize {
			current.WriteString(para)
			current.WriteString("\n\n")
			continue
		}

		carry := ""
		if current.Len() > 0 {
			chunks = append(chunks, strings.TrimSpace(current.String()))
			if overlap > 0 {
				carry = lastWords(current.String(), 30)
			}
		}

		current.Reset()
		if carry != "" {
			current.WriteString(carry)
			current.WriteString("\n\n")
		}
		current.WriteString(para)
		current.WriteString("\n\n")
	}

	if tail := strings.TrimSpace(current.String()); tail != "" {
		chunks = append(chunks, tail)
	}

	return chunks
}

func lastWords(s string, n int) string {
	words := strings.Fields(s)
	if len(words) > n {
		words = words[len(words)-n:]
	}
	return strings.Join(words, " ")
}
