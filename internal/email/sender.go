package email

import (
	"context"
	"errors"

	"dowry-calculator/internal/domain"
)

// Sender define la interfaz para reenviar mensajes de contacto a los mantenedores.
type Sender interface {
	SendFeedback(ctx context.Context, toEmail string, feedback domain.Feedback) error
}

type disabledSender struct {
	reason string
}

func NewDisabledSender(reason string) Sender {
	return &disabledSender{reason: reason}
}

func (s *disabledSender) SendFeedback(_ context.Context, _ string, _ domain.Feedback) error {
	if s.reason == "" {
		return errors.New("email sender disabled")
	}
	return errors.New(s.reason)
}
