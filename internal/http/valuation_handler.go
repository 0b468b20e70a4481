package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"dowry-calculator/internal/metrics"
	"dowry-calculator/internal/service"
)

// ValuationHandler expone el cálculo de la tasación.
type ValuationHandler struct {
	logger       *zap.Logger
	valuationSvc *service.ValuationService
}

func NewValuationHandler(logger *zap.Logger, valuationSvc *service.ValuationService) *ValuationHandler {
	return &ValuationHandler{
		logger:       logger,
		valuationSvc: valuationSvc,
	}
}

// Predict maneja POST /api/predict.
func (h *ValuationHandler) Predict(c *gin.Context) {
	body, err := c.GetRawData()
	if err != nil {
		h.malformed(c, err)
		return
	}
	var raw map[string]any
	if err := json.Unmarshal(body, &raw); err != nil || raw == nil {
		if err == nil {
			err = errors.New("request body is not an object")
		}
		h.malformed(c, err)
		return
	}
	if err := validateShape(raw); err != nil {
		h.malformed(c, err)
		return
	}

	result, err := h.valuationSvc.Valuate(c.Request.Context(), raw)
	if err != nil {
		var verr *service.ValidationError
		switch {
		case errors.As(err, &verr):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "validation_error", "fields": verr.Fields})
			return
		case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
			h.logger.Info("valuation cancelled", zap.Error(err))
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "request cancelled"})
			return
		default:
			h.logger.Error("valuation failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to calculate dowry prediction"})
			return
		}
	}

	c.JSON(http.StatusOK, result)
}

// Stats maneja GET /stats.
func (h *ValuationHandler) Stats(c *gin.Context) {
	tally, err := h.valuationSvc.Stats(c.Request.Context())
	if err != nil {
		h.logger.Error("read stats failed", zap.Error(err))
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "stats unavailable"})
		return
	}
	c.JSON(http.StatusOK, tally)
}

func (h *ValuationHandler) malformed(c *gin.Context, err error) {
	metrics.ValuationsTotal.WithLabelValues(metrics.OutcomeMalformed).Inc()
	h.logger.Warn("invalid predict request", zap.Error(err))
	c.JSON(http.StatusBadRequest, gin.H{"error": "malformed_request"})
}
