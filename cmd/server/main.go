package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-nutri-keeper/internal/adapter"
	"github.com/MKhiriev/go-nutri-keeper/internal/config"
	"github.com/MKhiriev/go-nutri-keeper/internal/handler"
	"github.com/MKhiriev/go-nutri-keeper/internal/handler/http"
	"github.com/MKhiriev/go-nutri-keeper/internal/logger"
	"github.com/MKhiriev/go-nutri-keeper/internal/metrics"
	"github.com/MKhiriev/go-nutri-keeper/internal/ratelimit"
	"github.com/MKhiriev/go-nutri-keeper/internal/server"
	"github.com/MKhiriev/go-nutri-keeper/internal/service"
	"github.com/MKhiriev/go-nutri-keeper/internal/store"
	"github.com/MKhiriev/go-nutri-keeper/internal/workers"
	"github.com/MKhiriev/go-nutri-keeper/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	log := logger.NewLogger("nutri-keeper-server")

	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if err = logger.SetLevel(cfg.App.LogLevel); err != nil {
		log.Warn().Err(err).Str("level", cfg.App.LogLevel).Msg("unknown log level, keeping debug")
	}
	build := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	if build.HasVersion() {
		cfg.App.Version = build.BuildVersion()
	}
	log.Info().
		Str("version", build.BuildVersion()).
		Str("date", build.BuildDate()).
		Str("commit", build.BuildCommit()).
		Msg("build info")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer stop()

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer storages.Close()

	adapters, err := newAdapters(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating adapters")
	}

	m := metrics.New()
	services, err := service.NewServices(storages, adapters, *cfg, m, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	perMinute := cfg.Server.RateLimitPerMinute
	if cfg.App.TestMode {
		perMinute = 0
	}
	registerLimiter := ratelimit.NewLimiter(perMinute)

	background := workers.NewWorkers(
		workers.NewLimiterCleanup(registerLimiter, cfg.Workers.LimiterCleanupInterval, cfg.Workers.LimiterIdleTTL, log.GetChildLogger()),
	)
	background.Run(ctx)

	handlers, err := handler.NewHandlers(services, http.Options{Metrics: m, RegisterLimiter: registerLimiter}, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	if err = srv.RunServer(); err != nil {
		log.Error().Err(err).Msg("server stopped with error")
	}

	stop()
	background.Wait()
	log.Info().Msg("bye")
}

// newAdapters picks the outbound integrations. Test mode logs verification
// links instead of sending mail; an empty LLM key leaves the ranker unset.
func newAdapters(ctx context.Context, cfg *config.StructuredConfig, log *logger.Logger) (service.Adapters, error) {
	var adapters service.Adapters

	if cfg.App.TestMode {
		adapters.Mailer = adapter.NewLogMailer(log)
	} else {
		mailer, err := adapter.NewSESMailer(ctx, cfg.Adapter.Mail)
		if err != nil {
			return adapters, err
		}
		adapters.Mailer = mailer
	}

	if cfg.Adapter.LLM.APIKey == "" {
		log.Info().Msg("LLM ranker disabled, llm mode uses the baseline scorer")
		return adapters, nil
	}

	ranker, err := adapter.NewLLMRanker(cfg.Adapter.LLM)
	if err != nil {
		return adapters, err
	}
	adapters.Ranker = ranker

	return adapters, nil
}
