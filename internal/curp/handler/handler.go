package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"curp/internal/curp"
	"curp/internal/platform/middleware"
	dErrors "curp/pkg/domain-errors"
	"curp/pkg/platform/httputil"
	"curp/pkg/requestcontext"
)

// LegacyErrorText replaces the code in folded error responses.
const LegacyErrorText = "Error generating CURP"

// Service defines the interface for code generation operations.
type Service interface {
	Generate(ctx context.Context, p curp.PersonRecord) (curp.Code, error)
	Regions(ctx context.Context) []curp.Region
}

// Handler wires code generation endpoints to the service.
type Handler struct {
	service    Service
	logger     *slog.Logger
	legacyFold bool
}

type Option func(*Handler)

// WithLegacyErrorFold answers failed generations with 200 and LegacyErrorText
// as the code, matching the original service's response shape.
func WithLegacyErrorFold(enabled bool) Option {
	return func(h *Handler) {
		h.legacyFold = enabled
	}
}

// New constructs a handler with its dependencies.
func New(service Service, logger *slog.Logger, opts ...Option) *Handler {
	h := &Handler{service: service, logger: logger}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Register mounts the endpoints on the router.
func (h *Handler) Register(r chi.Router) {
	r.With(middleware.ContentTypeJSON).Post("/generate_curp", h.HandleGenerate)
	r.Get("/regions", h.HandleRegions)
}

// HandleGenerate handles POST /generate_curp requests.
func (h *Handler) HandleGenerate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)
	start := time.Now()

	req, ok := httputil.DecodeAndPrepare[GenerateRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	code, err := h.service.Generate(ctx, req.Record())
	if err != nil {
		if dErrors.HasCode(err, dErrors.CodeValidation) {
			h.logger.WarnContext(ctx, "code generation rejected",
				"request_id", requestID,
				"error", err,
			)
		} else {
			h.logger.ErrorContext(ctx, "code generation failed",
				"request_id", requestID,
				"error", err,
			)
		}
		if h.legacyFold {
			httputil.WriteJSON(w, http.StatusOK, &GenerateResponse{CURP: LegacyErrorText})
			return
		}
		httputil.WriteError(w, err)
		return
	}

	h.logger.InfoContext(ctx, "code generated",
		"request_id", requestID,
		"region", code.Region(),
		"duration_ms", time.Since(start).Milliseconds(),
	)

	httputil.WriteJSON(w, http.StatusOK, &GenerateResponse{CURP: code.String()})
}

// HandleRegions handles GET /regions requests.
func (h *Handler) HandleRegions(w http.ResponseWriter, r *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, FromRegions(h.service.Regions(r.Context())))
}
