package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/daisyflemming/textsearch/internal/analytics"
	"github.com/daisyflemming/textsearch/internal/indexer/index"
	"github.com/daisyflemming/textsearch/internal/loader"
	"github.com/daisyflemming/textsearch/internal/searcher/cache"
	"github.com/daisyflemming/textsearch/internal/searcher/executor"
	"github.com/daisyflemming/textsearch/internal/searcher/handler"
	"github.com/daisyflemming/textsearch/pkg/config"
	"github.com/daisyflemming/textsearch/pkg/health"
	"github.com/daisyflemming/textsearch/pkg/kafka"
	"github.com/daisyflemming/textsearch/pkg/logger"
	"github.com/daisyflemming/textsearch/pkg/metrics"
	"github.com/daisyflemming/textsearch/pkg/middleware"
	pkgredis "github.com/daisyflemming/textsearch/pkg/redis"
)

func main() {
	configPath := flag.String("config", "configs/development.yaml", "path to config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}
	logger.Setup(cfg.Logging.Level, cfg.Logging.Format)
	slog.Info("starting text search service", "port", cfg.Server.Port, "document", cfg.Document.Path)

	var m *metrics.Metrics
	if cfg.Metrics.Enabled {
		m = metrics.New()
	}

	// The index must be fully built before the listener binds; once
	// published it is immutable and served without locking.
	document, err := loader.Load(cfg.Document.Path)
	if err != nil {
		slog.Error("failed to load document", "error", err)
		os.Exit(1)
	}
	buildStart := time.Now()
	idx := index.Build(document)
	buildDuration := time.Since(buildStart)
	slog.Info("index built",
		"words", idx.WordCount(),
		"document_bytes", len(document),
		"duration", buildDuration,
	)
	if m != nil {
		m.IndexedWords.Set(float64(idx.WordCount()))
		m.DocumentBytes.Set(float64(len(document)))
		m.IndexBuildSeconds.Set(buildDuration.Seconds())
	}

	var resultCache *cache.ResultCache
	redisClient, err := pkgredis.NewClient(cfg.Redis)
	if err != nil {
		slog.Warn("redis unavailable, result caching disabled", "error", err)
	} else {
		defer redisClient.Close()
		resultCache = cache.New(redisClient, cfg.Redis)
		slog.Info("result cache enabled", "addr", cfg.Redis.Addr, "ttl", cfg.Redis.CacheTTL)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var collector *analytics.Collector
	if cfg.Kafka.Enabled() {
		producer := kafka.NewProducer(cfg.Kafka, cfg.Kafka.SearchEventTopic)
		defer producer.Close()
		collector = analytics.NewCollector(producer, 10000)
		collector.Start(ctx)
		defer collector.Close()
		slog.Info("search analytics enabled", "topic", cfg.Kafka.SearchEventTopic)
	}

	checker := health.NewChecker()
	checker.Register("index", func(ctx context.Context) health.ComponentHealth {
		return health.ComponentHealth{
			Status:  health.StatusUp,
			Message: fmt.Sprintf("%d words indexed", idx.WordCount()),
		}
	})
	checker.Register("redis", func(ctx context.Context) health.ComponentHealth {
		if redisClient == nil {
			return health.ComponentHealth{Status: health.StatusDegraded, Message: "not configured"}
		}
		if err := redisClient.Ping(ctx); err != nil {
			return health.ComponentHealth{Status: health.StatusDegraded, Message: err.Error()}
		}
		return health.ComponentHealth{Status: health.StatusUp}
	})

	exec := executor.New(idx)
	h := handler.New(exec, resultCache, collector, m, cfg.Search)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/v1/search", h.Search)
	mux.HandleFunc("GET /api/v1/document", h.Document)
	mux.HandleFunc("GET /api/v1/cache/stats", h.CacheStats)
	mux.HandleFunc("POST /api/v1/cache/invalidate", h.CacheInvalidate)
	mux.HandleFunc("GET /health/live", checker.LiveHandler())
	mux.HandleFunc("GET /health/ready", checker.ReadyHandler())

	var chain http.Handler = mux
	if m != nil {
		chain = middleware.Metrics(m)(chain)
	}
	chain = middleware.Timeout(cfg.Server.WriteTimeout)(chain)
	chain = middleware.RequestID(chain)

	if cfg.Metrics.Enabled {
		shutdownMetrics := metrics.StartServer(cfg.Metrics.Port)
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
			defer cancel()
			if err := shutdownMetrics(shutdownCtx); err != nil {
				slog.Error("metrics server shutdown error", "error", err)
			}
		}()
	}

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      chain,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		<-ctx.Done()
		slog.Info("shutdown signal received")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			slog.Error("server shutdown error", "error", err)
		}
	}()

	slog.Info("search service listening", "addr", server.Addr)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		slog.Error("server error", "error", err)
		os.Exit(1)
	}
	slog.Info("search service stopped")
}
