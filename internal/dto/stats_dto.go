package dto

type ChatbotStats struct {
	TotalSessions int    `json:"total_sessions"`
	TotalMessages int    `json:"total_messages"`
	TotalFeedback int    `json:"total_feedback"`
	LLMProvider   string `json:"llm_provider"`
	LLMAvailable  bool   `json:"llm_available"`
}

type KnowledgeBaseStats struct {
	TotalDocuments int            `json:"total_documents"`
	ByCategory     map[string]int `json:"by_category"`
	VectorEnabled  bool           `json:"vector_enabled"`
}

type StatsResponse struct {
	Chatbot       ChatbotStats       `json:"chatbot"`
	KnowledgeBase KnowledgeBaseStats `json:"knowledge_base"`
	Documents     int                `json:"documents"`
}

type HealthResponse struct {
	Status      string `json:"status"`
	LLMProvider string `json:"llm_provider"`
	Timestamp   string `json:"timestamp"`
	Version     string `json:"version"`
}
