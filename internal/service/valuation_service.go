package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"dowry-calculator/internal/domain"
	"dowry-calculator/internal/metrics"
)

// ValuationService coordina validación, scoring y contadores para una solicitud.
type ValuationService struct {
	logger *zap.Logger
	engine ScoringEngine
	rnd    RandSource
	tally  TallyStore
	delay  time.Duration
}

func NewValuationService(logger *zap.Logger, tally TallyStore, rnd RandSource, delay time.Duration) *ValuationService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if tally == nil {
		tally = NewMemoryTallyStore()
	}
	if rnd == nil {
		rnd = DefaultRandSource
	}
	if delay < 0 {
		delay = 0
	}
	return &ValuationService{
		logger: logger,
		engine: DefaultScoringEngine,
		rnd:    rnd,
		tally:  tally,
		delay:  delay,
	}
}

// Valuate valida el formulario crudo y calcula la tasación.
// Devuelve *ValidationError si algún campo es inválido; el error del contexto si se cancela durante la espera.
func (s *ValuationService) Valuate(ctx context.Context, raw map[string]any) (domain.ValuationResult, error) {
	input, err := ValidateSubmission(raw)
	if err != nil {
		var verr *ValidationError
		if errors.As(err, &verr) {
			metrics.ValuationsTotal.WithLabelValues(metrics.OutcomeInvalid).Inc()
			for field, fe := range verr.Fields {
				metrics.ValidationFailures.WithLabelValues(field, fe.Code).Inc()
			}
		}
		return domain.ValuationResult{}, err
	}

	if err := s.wait(ctx); err != nil {
		return domain.ValuationResult{}, err
	}

	result := s.engine.Score(input, s.rnd)

	if result.IsZero {
		metrics.ValuationsTotal.WithLabelValues(metrics.OutcomePriceless).Inc()
	} else {
		metrics.ValuationsTotal.WithLabelValues(metrics.OutcomePriced).Inc()
		metrics.ValuationAmount.Observe(result.Amount)
	}

	// Los contadores son accesorios: si Redis falla, la respuesta sale igual.
	if err := s.tally.Record(ctx, result.IsZero); err != nil {
		s.logger.Warn("tally record failed", zap.Error(err))
	}

	s.logger.Debug("valuation computed",
		zap.Bool("is_zero", result.IsZero),
		zap.Int("items", len(result.Items)),
	)
	return result, nil
}

// Stats devuelve los contadores anónimos acumulados.
func (s *ValuationService) Stats(ctx context.Context) (domain.Tally, error) {
	return s.tally.Snapshot(ctx)
}

// wait simula el "procesamiento del modelo" del formulario original. Con delay 0 no espera.
func (s *ValuationService) wait(ctx context.Context) error {
	if s.delay <= 0 {
		return nil
	}
	timer := time.NewTimer(s.delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
