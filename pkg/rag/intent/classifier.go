package intent

import "strings"

// Classifier maps a free-text message to one topic category by keyword
// overlap. Pure function over a fixed table; no LLM involved.
type Classifier struct {
	order    []string
	keywords map[string][]string
}

// NewClassifier keeps the given category order for tie-breaking: on equal
// scores the earlier category wins.
func NewClassifier(order []string, keywords map[string][]string) *Classifier {
	return &Classifier{
		order:    order,
		keywords: keywords,
	}
}

// Classify counts how many of a category's keywords appear in the lower-cased
// message (substring match, so "examination" hits "exam") and returns the
// best-scoring category. A best score of zero yields the final category in
// the order, which is expected to be the catch-all ("general").
func (c *Classifier) Classify(message string) string {
	lower := strings.ToLower(message)

	best := c.order[len(c.order)-1]
	bestScore := 0
	for _, category := range c.order {
		score := 0
		for _, kw := range c.keywords[category] {
			if strings.Contains(lower, kw) {
				score++
			}
		}
		if score > bestScore {
			best = category
			bestScore = score
		}
	}

	return best
}
