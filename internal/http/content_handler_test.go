package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"dowry-calculator/internal/domain"
	"dowry-calculator/internal/service"
)

type mockEmailSender struct {
	lastTo string
	err    error
}

func (m *mockEmailSender) SendFeedback(_ context.Context, toEmail string, _ domain.Feedback) error {
	m.lastTo = toEmail
	return m.err
}

func setupContentRouter(sender *mockEmailSender) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewContentHandler(zap.NewNop(), service.NewFeedbackService(zap.NewNop(), sender, "team@example.com"))
	r.GET("/content", h.GetContent)
	r.POST("/feedback", h.PostFeedback)
	return r
}

func TestGetContent(t *testing.T) {
	r := setupContentRouter(&mockEmailSender{})

	rec := performRequest(r, http.MethodGet, "/content", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	var content domain.PageContent
	if err := json.Unmarshal(rec.Body.Bytes(), &content); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if content.Disclaimer == "" || len(content.Testimonials) == 0 {
		t.Fatalf("expected disclaimer and testimonials, got %+v", content)
	}
}

func TestPostFeedback_Success(t *testing.T) {
	sender := &mockEmailSender{}
	r := setupContentRouter(sender)

	rec := performRequest(r, http.MethodPost, "/feedback", map[string]string{
		"name":    "Priya",
		"email":   "priya@example.com",
		"message": "Please add goats.",
	})
	if rec.Code != http.StatusAccepted {
		t.Fatalf("expected status 202, got %d", rec.Code)
	}
	if sender.lastTo != "team@example.com" {
		t.Fatalf("expected feedback relayed to maintainers")
	}
}

func TestPostFeedback_InvalidRequest(t *testing.T) {
	r := setupContentRouter(&mockEmailSender{})

	rec := performRequest(r, http.MethodPost, "/feedback", map[string]string{"email": "not-an-email", "message": "hi"})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rec.Code)
	}
	rec = performRequest(r, http.MethodPost, "/feedback", map[string]string{})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rec.Code)
	}
}

func TestPostFeedback_DeliveryUnavailable(t *testing.T) {
	r := setupContentRouter(&mockEmailSender{err: errors.New("smtp down")})

	rec := performRequest(r, http.MethodPost, "/feedback", map[string]string{"message": "hi"})
	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected status 503, got %d", rec.Code)
	}
}
