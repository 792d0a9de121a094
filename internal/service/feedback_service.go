package service

import (
	"time"

	"campus-chat-be/internal/dto"
	"campus-chat-be/internal/entity"
	"campus-chat-be/internal/pkg/logger"
	"campus-chat-be/internal/repository/contract"
)

type IFeedbackService interface {
	Record(req *dto.FeedbackRequest) error
}

type feedbackService struct {
	feedback contract.FeedbackRepository
	logger   logger.ILogger
}

func NewFeedbackService(feedback contract.FeedbackRepository, log logger.ILogger) IFeedbackService {
	return &feedbackService{
		feedback: feedback,
		logger:   log,
	}
}

func (s *feedbackService) Record(req *dto.FeedbackRequest) error {
	entry := &entity.Feedback{
		MessageId: req.MessageId,
		Rating:    req.Rating,
		Comment:   req.Comment,
		Timestamp: time.Now(),
	}
	if err := s.feedback.Append(entry); err != nil {
		s.logger.Error("feedback", "Failed to persist feedback", map[string]interface{}{
			"message_id": req.MessageId,
			"error":      err.Error(),
		})
		return err
	}
	return nil
}
