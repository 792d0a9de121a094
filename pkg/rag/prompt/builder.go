package prompt

import (
	"fmt"
	"strings"

	"campus-chat-be/internal/entity"
	"campus-chat-be/pkg/store"
	"campus-chat-be/pkg/utils"
)

// Builder assembles the single prompt string sent to the provider: fixed
// instruction block, retrieved chunks, recent turns, then the new message.
type Builder struct {
	systemPrompt string
	results      []entity.SearchResult
	history      []store.Turn
	message      string

	chunkPreviewLen int
}

func NewBuilder(systemPrompt string, results []entity.SearchResult, history []store.Turn, message string, chunkPreviewLen int) *Builder {
	return &Builder{
		systemPrompt:    systemPrompt,
		results:         results,
		history:         history,
		message:         message,
		chunkPreviewLen: chunkPreviewLen,
	}
}

func (b *Builder) Build() string {
	var prompt strings.Builder

	prompt.WriteString(b.systemPrompt)
	prompt.WriteString("\n\n")

	b.writeRelevantInformation(&prompt)
	b.writeRecentConversation(&prompt)

	prompt.WriteString("User Question: ")
	prompt.WriteString(b.message)
	prompt.WriteString("\n\n")

	if len(b.results) > 0 {
		prompt.WriteString("Assistant Response (be helpful and concise):")
	} else {
		prompt.WriteString("Assistant Response:")
	}

	return prompt.String()
}

func (b *Builder) writeRelevantInformation(prompt *strings.Builder) {
	if len(b.results) == 0 {
		return
	}

	prompt.WriteString("Relevant Information from University Documents:\n")
	for i, r := range b.results {
		content := utils.TruncateChars(r.Content, b.chunkPreviewLen)
		prompt.WriteString(fmt.Sprintf("[Source %d]:\n%s", i+1, content))
		if i < len(b.results)-1 {
			prompt.WriteString("\n\n")
		}
	}
	prompt.WriteString("\n\n")
}

func (b *Builder) writeRecentConversation(prompt *strings.Builder) {
	prompt.WriteString("Recent Conversation:\n")
	for _, turn := range b.history {
		prompt.WriteString("User: ")
		prompt.WriteString(turn.UserText)
		prompt.WriteString("\nAssistant: ")
		prompt.WriteString(turn.BotText)
		prompt.WriteString("\n\n")
	}
}
