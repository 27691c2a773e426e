// Package index builds and holds the immutable keyword index over a single
// document: a per-rank offset table and a hash-keyed occurrence map.
package index

import (
	"github.com/daisyflemming/textsearch/internal/indexer/hash"
	"github.com/daisyflemming/textsearch/internal/indexer/tokenizer"
)

// Span is the half-open character range [Start, End) of one word in the
// document.
type Span struct {
	Start int
	End   int
}

// Index is the frozen result of a single tokenization pass. Every word token
// gets a rank (0, 1, 2, … in reading order); spans records each rank's
// character range and buckets maps a word hash to the ascending ranks of the
// words sharing it. Nothing is mutated after Build returns, so an Index is
// safe for concurrent readers without locking.
type Index struct {
	document  string
	hasher    *hash.Hasher
	spans     []Span
	buckets   map[int64][]int
	wordCount int
}

// Build tokenizes document in one left-to-right pass and returns the
// completed Index. It never fails for well-formed string input.
func Build(document string) *Index {
	idx := &Index{
		document: document,
		hasher:   hash.New(),
		buckets:  make(map[int64][]int),
	}
	sc := tokenizer.NewScanner(document)
	offset := 0
	for {
		tok, ok := sc.Next()
		if !ok {
			break
		}
		if tok.Kind == tokenizer.Word {
			key := idx.hasher.Sum(tok.Text)
			idx.buckets[key] = append(idx.buckets[key], idx.wordCount)
			idx.spans = append(idx.spans, Span{Start: offset, End: offset + tok.Len()})
			idx.wordCount++
		}
		offset += tok.Len()
	}
	return idx
}

// Document returns the full document text.
func (x *Index) Document() string {
	return x.document
}

// WordCount returns the number of indexed words.
func (x *Index) WordCount() int {
	return x.wordCount
}

// Ranks returns the occurrence ranks whose words share word's hash, in
// ascending order. The bucket may contain colliding words; callers must
// verify each rank with WordAt before treating it as a match. The returned
// slice is shared and must not be modified.
func (x *Index) Ranks(word string) []int {
	return x.buckets[x.hasher.Sum(word)]
}

// WordAt returns the exact document text of the word at the given rank.
func (x *Index) WordAt(rank int) string {
	s := x.spans[rank]
	return x.document[s.Start:s.End]
}

// Slice returns the document substring from the start of the word at
// startRank through the end of the word at endRank. When endRank is the last
// rank the slice extends to the end of the document, so trailing punctuation
// after the final word is included.
func (x *Index) Slice(startRank, endRank int) string {
	start := x.spans[startRank].Start
	if endRank == x.wordCount-1 {
		return x.document[start:]
	}
	return x.document[start:x.spans[endRank].End]
}
