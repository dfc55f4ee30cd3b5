package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"quickestimate/internal/domain/entities"
	"quickestimate/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

var (
	ErrRendererNotConfigured = errors.New("estimate renderer not configured")
	ErrRenderFailed          = errors.New("estimate rendering failed")
)

// IEstimateUseCase turns an estimate record into a rendered document.
//
// GeneratePDF returns the aggregated document alongside the bytes so callers
// can expose the estimate id without parsing the PDF.
type IEstimateUseCase interface {
	GeneratePDF(ctx context.Context, record entities.EstimateRecord) (entities.EstimateDocument, []byte, error)
}

type EstimateUseCase struct {
	renderer interfaces.IEstimateRenderer
	now      func() time.Time
	newID    func(time.Time) string
}

var _ IEstimateUseCase = (*EstimateUseCase)(nil)

type EstimateOption func(*EstimateUseCase)

// WithClock pins the issue time, mostly for tests.
func WithClock(now func() time.Time) EstimateOption {
	return func(u *EstimateUseCase) { u.now = now }
}

func WithIDGenerator(gen func(time.Time) string) EstimateOption {
	return func(u *EstimateUseCase) { u.newID = gen }
}

func NewEstimateUseCase(renderer interfaces.IEstimateRenderer, opts ...EstimateOption) *EstimateUseCase {
	u := &EstimateUseCase{renderer: renderer, now: time.Now, newID: NewEstimateID}
	for _, o := range opts {
		o(u)
	}
	return u
}

func (u *EstimateUseCase) GeneratePDF(ctx context.Context, record entities.EstimateRecord) (entities.EstimateDocument, []byte, error) {
	logger := log.Ctx(ctx).With().Str("component", "estimate.usecase").Logger()

	if u.renderer == nil {
		return entities.EstimateDocument{}, nil, ErrRendererNotConfigured
	}
	if err := ctx.Err(); err != nil {
		return entities.EstimateDocument{}, nil, err
	}

	issuedAt := u.now()
	doc := entities.NewEstimateDocument(record, u.newID(issuedAt), issuedAt)
	logger.Info().
		Str("estimate_id", doc.EstimateID).
		Int("items", len(doc.Rows)).
		Str("grand_total", doc.GrandTotal.StringFixed(2)).
		Msg("generate-pdf start")

	out, err := u.renderer.Render(doc)
	if err != nil {
		logger.Error().Err(err).Str("estimate_id", doc.EstimateID).Msg("generate-pdf render failed")
		return entities.EstimateDocument{}, nil, fmt.Errorf("%w: %w", ErrRenderFailed, err)
	}
	if len(out) == 0 {
		return entities.EstimateDocument{}, nil, fmt.Errorf("%w: empty document", ErrRenderFailed)
	}

	logger.Info().Str("estimate_id", doc.EstimateID).Int("bytes", len(out)).Msg("generate-pdf success")
	return doc, out, nil
}

// NewEstimateID builds EST-YYYYMMDD-HHMMSS-XXXXXXXX from the issue time and a
// random suffix, so ids issued within the same second still differ.
func NewEstimateID(t time.Time) string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:8])
	return fmt.Sprintf("EST-%s-%s", t.Format("20060102-150405"), suffix)
}
