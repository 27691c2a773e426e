// Package handler exposes keyword-in-context search over HTTP.
package handler

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/daisyflemming/textsearch/internal/analytics"
	"github.com/daisyflemming/textsearch/internal/searcher/cache"
	"github.com/daisyflemming/textsearch/internal/searcher/executor"
	"github.com/daisyflemming/textsearch/pkg/config"
	"github.com/daisyflemming/textsearch/pkg/logger"
	"github.com/daisyflemming/textsearch/pkg/metrics"
)

// Handler serves the search API. Cache, collector, and metrics are all
// optional; a nil value disables that concern.
type Handler struct {
	executor  *executor.Executor
	cache     *cache.ResultCache
	collector *analytics.Collector
	metrics   *metrics.Metrics
	cfg       config.SearchConfig
	logger    *slog.Logger
}

// New builds a Handler around a query executor.
func New(exec *executor.Executor, resultCache *cache.ResultCache, collector *analytics.Collector, m *metrics.Metrics, cfg config.SearchConfig) *Handler {
	return &Handler{
		executor:  exec,
		cache:     resultCache,
		collector: collector,
		metrics:   m,
		cfg:       cfg,
		logger:    slog.Default().With("component", "search-handler"),
	}
}

// Search handles GET /api/v1/search?q=<word>&context=<n>. An unknown word is
// a 200 with zero matches, not an error.
func (h *Handler) Search(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	ctx := r.Context()
	log := logger.FromContext(ctx)

	word := r.URL.Query().Get("q")
	if word == "" {
		h.countQuery("invalid")
		h.writeError(w, http.StatusBadRequest, "query parameter 'q' is required")
		return
	}
	if h.cfg.MaxQueryLength > 0 && len(word) > h.cfg.MaxQueryLength {
		h.countQuery("invalid")
		h.writeError(w, http.StatusBadRequest,
			fmt.Sprintf("query word exceeds %d characters", h.cfg.MaxQueryLength))
		return
	}

	contextWords := h.cfg.DefaultContextWords
	if raw := r.URL.Query().Get("context"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			h.countQuery("invalid")
			h.writeError(w, http.StatusBadRequest, "context must be an integer")
			return
		}
		if parsed < 0 {
			parsed = 0
		}
		if parsed > h.cfg.MaxContextWords {
			parsed = h.cfg.MaxContextWords
		}
		contextWords = parsed
	}

	var result *executor.Result
	cacheHit := false
	if h.cache != nil {
		result, cacheHit = h.cache.GetOrCompute(ctx, word, contextWords, func() *executor.Result {
			return h.executor.Execute(word, contextWords)
		})
	} else {
		result = h.executor.Execute(word, contextWords)
	}

	latency := time.Since(start)
	log.Info("search completed",
		"query", word,
		"context_words", contextWords,
		"matches", result.TotalMatches,
		"cache_hit", cacheHit,
		"latency_ms", latency.Milliseconds(),
	)

	if h.metrics != nil {
		outcome := "match"
		if result.TotalMatches == 0 {
			outcome = "zero_result"
		}
		h.countQuery(outcome)
		cacheStatus := "bypass"
		if h.cache != nil {
			cacheStatus = "miss"
			if cacheHit {
				cacheStatus = "hit"
			}
		}
		h.metrics.SearchLatency.WithLabelValues(cacheStatus).Observe(latency.Seconds())
		h.metrics.ContextsReturned.Observe(float64(result.TotalMatches))
		if h.cache != nil {
			if cacheHit {
				h.metrics.CacheHitsTotal.Inc()
			} else {
				h.metrics.CacheMissesTotal.Inc()
			}
		}
	}

	if h.collector != nil {
		eventType := analytics.EventSearch
		if result.TotalMatches == 0 {
			eventType = analytics.EventZeroResult
		}
		h.collector.Track(analytics.SearchEvent{
			Type:         eventType,
			Query:        word,
			ContextWords: contextWords,
			Matches:      result.TotalMatches,
			LatencyMs:    latency.Milliseconds(),
			CacheHit:     cacheHit,
			Timestamp:    time.Now().UTC(),
			RequestID:    logger.RequestID(ctx),
		})
	}

	h.writeJSON(w, http.StatusOK, result)
}

// Document handles GET /api/v1/document with index statistics.
func (h *Handler) Document(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]any{
		"word_count":     h.executor.WordCount(),
		"document_bytes": h.executor.DocumentLength(),
	})
}

// CacheStats handles GET /api/v1/cache/stats.
func (h *Handler) CacheStats(w http.ResponseWriter, r *http.Request) {
	if h.cache == nil {
		h.writeJSON(w, http.StatusOK, map[string]string{"status": "disabled"})
		return
	}
	hits, misses := h.cache.Stats()
	total := hits + misses
	var hitRate float64
	if total > 0 {
		hitRate = float64(hits) / float64(total) * 100
	}
	h.writeJSON(w, http.StatusOK, map[string]any{
		"hits":     hits,
		"misses":   misses,
		"total":    total,
		"hit_rate": fmt.Sprintf("%.1f%%", hitRate),
	})
}

// CacheInvalidate handles POST /api/v1/cache/invalidate.
func (h *Handler) CacheInvalidate(w http.ResponseWriter, r *http.Request) {
	if h.cache == nil {
		h.writeError(w, http.StatusServiceUnavailable, "caching is disabled")
		return
	}
	if err := h.cache.Invalidate(r.Context()); err != nil {
		h.logger.Error("cache invalidation failed", "error", err)
		h.writeError(w, http.StatusInternalServerError, "cache invalidation failed")
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]string{"status": "invalidated"})
}

func (h *Handler) countQuery(outcome string) {
	if h.metrics != nil {
		h.metrics.SearchQueriesTotal.WithLabelValues(outcome).Inc()
	}
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Error("failed to write response", "error", err)
	}
}

func (h *Handler) writeError(w http.ResponseWriter, status int, message string) {
	h.writeJSON(w, status, map[string]string{"error": message})
}
