package benchmark

import (
	"strings"
	"testing"

	"github.com/daisyflemming/textsearch/internal/indexer/hash"
	"github.com/daisyflemming/textsearch/internal/indexer/tokenizer"
)

var sampleTexts = map[string]string{
	"short":  "The quick brown fox jumps over the lazy dog",
	"medium": strings.Repeat("Keyword-in-context search returns every occurrence of a word with its neighbours. ", 8),
	"long":   strings.Repeat("Tokenization splits the document into alternating word and separator runs, preserving offsets exactly. ", 200),
}

func BenchmarkTokenize(b *testing.B) {
	for name, text := range sampleTexts {
		b.Run(name, func(b *testing.B) {
			b.ReportAllocs()
			b.SetBytes(int64(len(text)))
			for i := 0; i < b.N; i++ {
				sc := tokenizer.NewScanner(text)
				for {
					if _, ok := sc.Next(); !ok {
						break
					}
				}
			}
		})
	}
}

func BenchmarkHash(b *testing.B) {
	h := hash.New()
	words := []string{
		"a", "fox", "quick", "don't",
		"infrastructure", "keyword",
		strings.Repeat("counter", 5),
	}
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		sum := h.Sum(words[i%len(words)])
		_ = sum
	}
}
