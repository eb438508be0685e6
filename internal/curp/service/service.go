package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"curp/internal/curp"
	"curp/internal/curp/metrics"
	dErrors "curp/pkg/domain-errors"
	"curp/pkg/requestcontext"
)

const tracerName = "curp/internal/curp/service"

// CodeGenerator derives a code from a person record.
type CodeGenerator interface {
	Generate(p curp.PersonRecord) (curp.Code, error)
}

// Service runs code generation for request handlers, adding tracing,
// metrics and logging around the pure generator.
type Service struct {
	generator CodeGenerator
	logger    *slog.Logger
	metrics   *metrics.Metrics
	tracer    trace.Tracer
}

type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

func WithTracer(t trace.Tracer) Option {
	return func(s *Service) {
		s.tracer = t
	}
}

// New constructs a Service around generator.
func New(generator CodeGenerator, opts ...Option) (*Service, error) {
	if generator == nil {
		return nil, errors.New("code generator is required")
	}
	s := &Service{
		generator: generator,
		logger:    slog.Default(),
		tracer:    otel.Tracer(tracerName),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Generate derives a code for p. Validation failures carry
// dErrors.CodeValidation; anything else is reported as internal.
func (s *Service) Generate(ctx context.Context, p curp.PersonRecord) (curp.Code, error) {
	start := time.Now()
	defer s.metrics.ObserveGenerate(start)

	ctx, span := s.tracer.Start(ctx, "curp.Generate")
	defer span.End()

	code, err := s.generator.Generate(p)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		s.metrics.IncrementFailure(failureReason(err))
		if dErrors.HasCode(err, dErrors.CodeValidation) {
			return "", err
		}
		return "", dErrors.Wrap(err, dErrors.CodeInternal, "failed to generate code")
	}

	region, known := curp.LookupRegion(p.BirthState)
	s.metrics.IncrementRegionLookup(region)
	span.SetAttributes(
		attribute.String("curp.region", region),
		attribute.Bool("curp.region_known", known),
	)
	if !known {
		s.logger.DebugContext(ctx, "birth state not in region table",
			"request_id", requestcontext.RequestID(ctx),
			"birth_state", p.BirthState,
		)
	}

	s.metrics.IncrementGenerated()
	return code, nil
}

// Regions returns the region table ordered by name.
func (s *Service) Regions(_ context.Context) []curp.Region {
	return curp.Regions()
}

func failureReason(err error) string {
	switch {
	case errors.Is(err, curp.ErrInvalidBirthDate):
		return "invalid_birth_date"
	case errors.Is(err, curp.ErrInvalidGender):
		return "invalid_gender"
	default:
		return "internal"
	}
}
