package service

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"unicode/utf8"

	"go.uber.org/zap"

	"dowry-calculator/internal/domain"
	"dowry-calculator/internal/email"
	"dowry-calculator/internal/metrics"
)

var (
	ErrFeedbackInvalid     = errors.New("feedback invalid")
	ErrFeedbackUnavailable = errors.New("feedback delivery unavailable")
)

const maxFeedbackLength = 4000

// FeedbackService reenvía los mensajes de "Contact Us" por correo. No los guarda.
type FeedbackService struct {
	logger *zap.Logger
	sender email.Sender
	to     string
}

func NewFeedbackService(logger *zap.Logger, sender email.Sender, to string) *FeedbackService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &FeedbackService{
		logger: logger,
		sender: sender,
		to:     strings.TrimSpace(to),
	}
}

func (s *FeedbackService) Submit(ctx context.Context, feedback domain.Feedback) error {
	feedback.Name = strings.TrimSpace(feedback.Name)
	feedback.Email = strings.TrimSpace(feedback.Email)
	feedback.Message = strings.TrimSpace(feedback.Message)

	if feedback.Message == "" || utf8.RuneCountInString(feedback.Message) > maxFeedbackLength {
		return ErrFeedbackInvalid
	}
	if feedback.Email != "" {
		if _, err := mail.ParseAddress(feedback.Email); err != nil {
			return ErrFeedbackInvalid
		}
	}
	if feedback.Name == "" {
		feedback.Name = "Anonymous"
	}

	if s.sender == nil || s.to == "" {
		metrics.FeedbackTotal.WithLabelValues("unavailable").Inc()
		return ErrFeedbackUnavailable
	}

	if err := s.sender.SendFeedback(ctx, s.to, feedback); err != nil {
		metrics.FeedbackTotal.WithLabelValues("failed").Inc()
		s.logger.Warn("feedback delivery failed", zap.Error(err))
		return fmt.Errorf("%w: %v", ErrFeedbackUnavailable, err)
	}
	metrics.FeedbackTotal.WithLabelValues("sent").Inc()
	return nil
}
