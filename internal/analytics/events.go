package analytics

import "time"

// EventType classifies a search analytics event.
type EventType string

const (
	EventSearch     EventType = "search"
	EventZeroResult EventType = "zero_result"
)

// SearchEvent records one served query for offline analytics.
type SearchEvent struct {
	Type         EventType `json:"type"`
	Query        string    `json:"query"`
	ContextWords int       `json:"context_words"`
	Matches      int       `json:"matches"`
	LatencyMs    int64     `json:"latency_ms"`
	CacheHit     bool      `json:"cache_hit"`
	Timestamp    time.Time `json:"timestamp"`
	RequestID    string    `json:"request_id"`
}
