package httptransport

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"curp/internal/platform/config"
	"curp/internal/platform/metrics"
	"curp/internal/platform/middleware"
	dErrors "curp/pkg/domain-errors"
	"curp/pkg/platform/httputil"
	"curp/pkg/platform/middleware/metadata"
	"curp/pkg/platform/middleware/requesttime"
)

// Registrar mounts a module's routes on the router.
type Registrar interface {
	Register(r chi.Router)
}

// RouterDeps carries what NewRouter needs to build the public router.
type RouterDeps struct {
	Config   config.Server
	Logger   *slog.Logger
	Metrics  *metrics.Metrics
	Handlers []Registrar
}

// NewRouter wires the shared middleware chain, operational endpoints and the
// module handlers. Unmatched routes answer 404.
func NewRouter(deps RouterDeps) http.Handler {
	timeout := deps.Config.RequestTimeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	r := chi.NewRouter()
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestID)
	r.Use(requesttime.Middleware)
	r.Use(metadata.ClientMetadata)
	r.Use(middleware.Logger(deps.Logger))
	r.Use(middleware.Latency(deps.Metrics))
	r.Use(middleware.CORS(deps.Config.CORS))
	r.Use(middleware.Timeout(timeout))

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		httputil.WriteError(w, dErrors.New(dErrors.CodeNotFound, "route not found"))
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		httputil.WriteJSON(w, http.StatusMethodNotAllowed, httputil.ErrorResponse{Error: "method_not_allowed"})
	})

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		httputil.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	if deps.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", deps.Metrics.Handler())
	}

	for _, h := range deps.Handlers {
		h.Register(r)
	}
	return r
}
