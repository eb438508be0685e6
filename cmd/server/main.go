package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"curp/internal/curp"
	"curp/internal/curp/handler"
	curpMetrics "curp/internal/curp/metrics"
	"curp/internal/curp/service"
	"curp/internal/platform/config"
	"curp/internal/platform/httpserver"
	"curp/internal/platform/logger"
	"curp/internal/platform/metrics"
	httptransport "curp/internal/transport/http"
)

// main wires high-level dependencies, exposes the HTTP router, and keeps the
// server lifecycle small. Generation logic lives in internal/curp.
func main() {
	cfg := config.FromEnv()
	log := logger.New(cfg.LogLevel)
	slog.SetDefault(log)

	if err := run(cfg, log); err != nil {
		log.Error("server stopped with error", "error", err)
		os.Exit(1)
	}
}

func run(cfg config.Server, log *slog.Logger) error {
	m := metrics.New()

	generator := curp.NewGenerator(curp.WithStrictGender(cfg.Generation.StrictGender))
	svc, err := service.New(generator,
		service.WithLogger(log),
		service.WithMetrics(curpMetrics.New(m.Registerer())),
	)
	if err != nil {
		return err
	}

	router := httptransport.NewRouter(httptransport.RouterDeps{
		Config:  cfg,
		Logger:  log,
		Metrics: m,
		Handlers: []httptransport.Registrar{
			handler.New(svc, log, handler.WithLegacyErrorFold(cfg.Generation.LegacyErrorFold)),
		},
	})
	srv := httpserver.New(cfg.Addr, router)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("starting curp gateway",
			"addr", cfg.Addr,
			"allowed_origin", cfg.CORS.AllowedOrigin,
			"legacy_error_fold", cfg.Generation.LegacyErrorFold,
			"strict_gender", cfg.Generation.StrictGender,
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), config.ShutdownTimeout)
		defer cancel()
		log.Info("shutting down")
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}
