package contract

import "campus-chat-be/internal/entity"

type FeedbackRepository interface {
	Append(feedback *entity.Feedback) error
	Count() (int, error)
}
