// Package executor answers keyword-in-context queries against a built index.
package executor

import (
	"log/slog"
	"strings"

	"github.com/daisyflemming/textsearch/internal/indexer/index"
)

// Result is the full answer to one query, as served (and cached) by the
// search service.
type Result struct {
	Query        string   `json:"query"`
	ContextWords int      `json:"context_words"`
	TotalMatches int      `json:"total_matches"`
	Contexts     []string `json:"contexts"`
}

// Executor performs pure reads of a frozen index. It holds no mutable state,
// so a single Executor serves concurrent queries.
type Executor struct {
	index  *index.Index
	logger *slog.Logger
}

// New wraps an already-built index.
func New(idx *index.Index) *Executor {
	return &Executor{
		index:  idx,
		logger: slog.Default().With("component", "query-executor"),
	}
}

// Search returns one context string per occurrence of queryWord in the
// document, in document order. Matching is case-insensitive; hash-bucket
// candidates whose actual text differs from queryWord are collisions and are
// skipped. Each context spans contextWords words on either side of the
// match, clamped to the document bounds; a window that reaches the last word
// runs to the literal end of the document. An unknown word returns an empty
// slice, never an error. Negative contextWords is clamped to zero.
func (e *Executor) Search(queryWord string, contextWords int) []string {
	if contextWords < 0 {
		contextWords = 0
	}
	contexts := []string{}
	for _, rank := range e.index.Ranks(queryWord) {
		if !strings.EqualFold(e.index.WordAt(rank), queryWord) {
			// hash collision with a different word
			continue
		}
		startRank := max(rank-contextWords, 0)
		endRank := min(rank+contextWords, e.index.WordCount()-1)
		contexts = append(contexts, e.index.Slice(startRank, endRank))
	}
	return contexts
}

// Execute runs Search and packages the answer as a Result.
func (e *Executor) Execute(queryWord string, contextWords int) *Result {
	contexts := e.Search(queryWord, contextWords)
	e.logger.Debug("query executed",
		"query", queryWord,
		"context_words", contextWords,
		"matches", len(contexts),
	)
	return &Result{
		Query:        queryWord,
		ContextWords: max(contextWords, 0),
		TotalMatches: len(contexts),
		Contexts:     contexts,
	}
}

// WordCount reports the number of indexed words, for stats endpoints.
func (e *Executor) WordCount() int {
	return e.index.WordCount()
}

// DocumentLength reports the document size in bytes, for stats endpoints.
func (e *Executor) DocumentLength() int {
	return len(e.index.Document())
}
