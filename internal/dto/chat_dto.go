package dto

import "time"

type ChatRequest struct {
	Message   string `json:"message" validate:"required,max=500"`
	SessionId string `json:"session_id"`
}

// RelatedAction is a suggested follow-up query shown alongside a response.
type RelatedAction struct {
	Label string `json:"label"`
	Query string `json:"query"`
}

// DepartmentInfo is the configured contact block for a category, if any.
type DepartmentInfo struct {
	Contact  string `json:"contact,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Location string `json:"location,omitempty"`
	Hours    string `json:"hours,omitempty"`
}

// QuickAction is a static shortcut button rendered by the chat frontend.
type QuickAction struct {
	Id    string `json:"id"`
	Label string `json:"label"`
	Query string `json:"query"`
	Icon  string `json:"icon"`
}

type ChatResponse struct {
	MessageId      string          `json:"message_id"`
	Response       string          `json:"response"`
	Intent         string          `json:"intent"`
	HasContext     bool            `json:"has_context"`
	RelatedActions []RelatedAction `json:"related_actions"`
	DepartmentInfo *DepartmentInfo `json:"department_info"`
	Timestamp      time.Time       `json:"timestamp"`
}
