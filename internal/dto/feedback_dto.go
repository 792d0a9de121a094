package dto

type FeedbackRequest struct {
	MessageId string `json:"message_id" validate:"required"`
	Rating    int    `json:"rating" validate:"required,min=1,max=5"`
	Comment   string `json:"comment"`
}

type FeedbackResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}
