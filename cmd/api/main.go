package main

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"

	"newsdesk/internal/common/pagination"
	hhttp "newsdesk/internal/handler/http"
	hnews "newsdesk/internal/handler/http/news"
	"newsdesk/internal/handler/http/requestid"
	pgRepo "newsdesk/internal/infra/adapter/persistence/postgres"
	"newsdesk/internal/infra/db"
	"newsdesk/internal/observability/logging"
	"newsdesk/internal/observability/tracing"
	"newsdesk/internal/repository"
	"newsdesk/internal/resilience/circuitbreaker"
	"newsdesk/internal/resilience/retry"
	newsUC "newsdesk/internal/usecase/news"
	"newsdesk/pkg/config"
)

func main() {
	logger := initLogger()
	database := initDatabase(logger)
	defer func() {
		if err := database.Close(); err != nil {
			logger.Error("failed to close database", slog.Any("error", err))
		}
	}()

	version := getVersion()
	handler, newsRepo := setupServer(logger, database, version)

	runServer(logger, handler, newsRepo, version)
}

// initLogger initializes the JSON logger and installs it as the default.
func initLogger() *slog.Logger {
	logger := logging.NewLogger()
	slog.SetDefault(logger)
	return logger
}

// initDatabase opens the connection pool and runs migrations.
// Migration is retried with backoff to ride out transient connection
// failures during orchestrated startup.
func initDatabase(logger *slog.Logger) *sql.DB {
	database := db.Open()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := retry.WithBackoff(ctx, retry.DBConfig(), func() error {
		return db.MigrateUp(database)
	}); err != nil {
		logger.Error("failed to migrate database", slog.Any("error", err))
		os.Exit(1)
	}
	return database
}

// getVersion returns the application version from environment or default.
func getVersion() string {
	return config.GetEnvString("VERSION", "dev")
}

// setupServer wires the repository, service, routes, and middleware chain.
func setupServer(logger *slog.Logger, database *sql.DB, version string) (http.Handler, repository.NewsRepository) {
	// Database calls go through a circuit breaker so a dead database fails
	// fast instead of stacking blocked requests.
	breaker := circuitbreaker.NewDBCircuitBreaker(database)
	newsRepo := pgRepo.NewNewsRepo(breaker)
	newsSvc := &newsUC.Service{Repo: newsRepo}

	paginationCfg := pagination.LoadFromEnv()

	mux := http.NewServeMux()
	hnews.Register(mux, newsSvc, paginationCfg, logger)

	mux.Handle("/health", &hhttp.HealthHandler{DB: database, Version: version})
	mux.Handle("/ready", &hhttp.ReadyHandler{DB: database})
	mux.Handle("/live", hhttp.LiveHandler{})
	mux.Handle("/metrics", hhttp.MetricsHandler())

	return applyMiddleware(logger, mux), newsRepo
}

// applyMiddleware wraps the handler with the middleware chain.
// Order (outermost first): Tracing -> Request ID -> IP Rate Limit ->
// Recovery -> Logging -> Body Limit -> Timeout -> Metrics.
func applyMiddleware(logger *slog.Logger, handler http.Handler) http.Handler {
	rateLimit := config.GetEnvInt("RATE_LIMIT_PER_MINUTE", 300)
	requestTimeout := config.GetEnvDuration("REQUEST_TIMEOUT", 30*time.Second)
	maxBodyBytes := int64(config.GetEnvInt("MAX_BODY_BYTES", 1<<20))

	chain := handler
	chain = hhttp.MetricsMiddleware(chain)
	chain = hhttp.Timeout(requestTimeout)(chain)
	chain = hhttp.LimitRequestBody(maxBodyBytes)(chain)
	chain = hhttp.Logging(logger)(chain)
	chain = hhttp.Recover(logger)(chain)
	chain = hhttp.NewRateLimiter(rateLimit, time.Minute).Limit(chain)
	chain = requestid.Middleware(chain)
	chain = tracing.Middleware(chain)

	return chain
}

// startNewsTotalRefresher periodically refreshes the news_total gauge.
func startNewsTotalRefresher(ctx context.Context, repo repository.NewsRepository, logger *slog.Logger) {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for {
		start := time.Now()
		count, err := repo.Count(ctx)
		if err != nil {
			logger.Warn("failed to refresh news total", slog.Any("error", err))
		} else {
			hhttp.RecordDBQuery("count_news", time.Since(start))
			hhttp.UpdateNewsTotal(count)
		}

		select {
		case <-ticker.C:
		case <-ctx.Done():
			return
		}
	}
}

// runServer starts the HTTP server and handles graceful shutdown.
func runServer(logger *slog.Logger, handler http.Handler, newsRepo repository.NewsRepository, version string) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go startNewsTotalRefresher(ctx, newsRepo, logger)

	addr := config.GetEnvString("HTTP_ADDR", ":8080")
	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second, // Slowloris protection
		BaseContext: func(_ net.Listener) context.Context {
			return ctx
		},
	}

	go func() {
		logger.Info("server starting",
			slog.String("addr", addr),
			slog.String("version", version))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed", slog.Any("error", err))
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down server...")

	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown failed", slog.Any("error", err))
	}
	logger.Info("server stopped")
}
