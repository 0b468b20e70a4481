package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"dowry-calculator/internal/domain"
	"dowry-calculator/internal/service"
)

// ContentHandler sirve los textos fijos de la página y el formulario de contacto.
type ContentHandler struct {
	logger      *zap.Logger
	feedbackSvc *service.FeedbackService
}

func NewContentHandler(logger *zap.Logger, feedbackSvc *service.FeedbackService) *ContentHandler {
	return &ContentHandler{
		logger:      logger,
		feedbackSvc: feedbackSvc,
	}
}

// GetContent maneja GET /content.
func (h *ContentHandler) GetContent(c *gin.Context) {
	c.JSON(http.StatusOK, service.PageContent())
}

// PostFeedback maneja POST /feedback.
func (h *ContentHandler) PostFeedback(c *gin.Context) {
	var req struct {
		Name    string `json:"name"`
		Email   string `json:"email" binding:"omitempty,email"`
		Message string `json:"message" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid feedback request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	err := h.feedbackSvc.Submit(c.Request.Context(), domain.Feedback{
		Name:    req.Name,
		Email:   req.Email,
		Message: req.Message,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrFeedbackInvalid):
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid feedback"})
		case errors.Is(err, service.ErrFeedbackUnavailable):
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "feedback delivery unavailable"})
		default:
			h.logger.Error("feedback failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not send feedback"})
		}
		return
	}

	c.JSON(http.StatusAccepted, gin.H{"status": "feedback_sent"})
}
