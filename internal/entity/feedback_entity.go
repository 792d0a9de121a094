package entity

import "time"

// Feedback is a rating for a prior response, correlated to a Turn only by the
// shared message id (best effort, nothing enforced).
type Feedback struct {
	MessageId string    `json:"message_id"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment"`
	Timestamp time.Time `json:"timestamp"`
}
