package executor

import (
	"strings"
	"sync"
	"testing"

	"github.com/daisyflemming/textsearch/internal/indexer/index"
)

func newExecutor(doc string) *Executor {
	return New(index.Build(doc))
}

func equalSlices(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestSearchContextWindows(t *testing.T) {
	exec := newExecutor("The quick brown fox. The quick fox jumps.")

	tests := []struct {
		name    string
		word    string
		context int
		want    []string
	}{
		{"one word of context", "quick", 1, []string{"The quick brown", "The quick fox"}},
		{"no context", "quick", 0, []string{"quick", "quick"}},
		{"window clamps at document start", "The", 2, []string{"The quick brown", "brown fox. The quick fox"}},
		{"window reaching last word runs to document end", "fox", 1, []string{"brown fox. The", "quick fox jumps."}},
		{"huge context returns whole document", "brown", 100, []string{"The quick brown fox. The quick fox jumps."}},
		{"unknown word", "missing", 3, []string{}},
		{"negative context clamps to zero", "jumps", -4, []string{"jumps."}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := exec.Search(tt.word, tt.context)
			if !equalSlices(got, tt.want) {
				t.Errorf("Search(%q, %d) = %q, want %q", tt.word, tt.context, got, tt.want)
			}
		})
	}
}

func TestSearchLastWordIncludesTrailingPunctuation(t *testing.T) {
	exec := newExecutor("end.")
	got := exec.Search("end", 5)
	if !equalSlices(got, []string{"end."}) {
		t.Errorf("Search(\"end\", 5) = %q, want [\"end.\"]", got)
	}
}

func TestSearchEmptyDocument(t *testing.T) {
	exec := newExecutor("")
	for _, word := range []string{"anything", "", "the"} {
		if got := exec.Search(word, 3); len(got) != 0 {
			t.Errorf("Search(%q, 3) on empty document = %q", word, got)
		}
	}
}

func TestSearchCaseInsensitive(t *testing.T) {
	exec := newExecutor("The quick brown fox. The quick fox jumps.")
	for _, q := range []string{"quick", "QUICK", "Quick", "qUiCk"} {
		got := exec.Search(q, 0)
		if len(got) != 2 {
			t.Fatalf("Search(%q, 0) returned %d matches, want 2", q, len(got))
		}
		for _, m := range got {
			if !strings.EqualFold(m, q) {
				t.Errorf("Search(%q, 0) returned %q", q, m)
			}
		}
	}
}

func TestSearchZeroContextMatchesOccurrenceCount(t *testing.T) {
	doc := "a b a c a b a"
	exec := newExecutor(doc)
	if got := exec.Search("a", 0); len(got) != 4 {
		t.Errorf("Search(\"a\", 0) = %q, want 4 matches", got)
	}
	if got := exec.Search("b", 0); len(got) != 2 {
		t.Errorf("Search(\"b\", 0) = %q, want 2 matches", got)
	}
}

func TestSearchFiltersHashCollisions(t *testing.T) {
	// "ea" and "0b" hash to the same key (58) under the polynomial hash,
	// so each lands in the other's bucket. Exact-text verification must
	// keep them apart.
	exec := newExecutor("ea met 0b, then 0b met ea.")

	got := exec.Search("ea", 0)
	if !equalSlices(got, []string{"ea", "ea"}) {
		t.Errorf("Search(\"ea\", 0) = %q, want only the two ea occurrences", got)
	}
	got = exec.Search("0b", 0)
	if !equalSlices(got, []string{"0b", "0b"}) {
		t.Errorf("Search(\"0b\", 0) = %q, want only the two 0b occurrences", got)
	}
}

func TestSearchGrowingContextNeverShrinks(t *testing.T) {
	exec := newExecutor("one two three four five six seven eight nine ten")
	prev := exec.Search("five", 0)
	for k := 1; k <= 6; k++ {
		got := exec.Search("five", k)
		if len(got) != len(prev) {
			t.Fatalf("match count changed between k=%d and k=%d", k-1, k)
		}
		for i := range got {
			if len(got[i]) < len(prev[i]) {
				t.Errorf("context %d shrank from %q (k=%d) to %q (k=%d)", i, prev[i], k-1, got[i], k)
			}
			if !strings.Contains(got[i], prev[i]) {
				t.Errorf("context %d at k=%d does not contain the k=%d context", i, k, k-1)
			}
		}
		prev = got
	}
}

func TestExecuteResult(t *testing.T) {
	exec := newExecutor("The quick brown fox. The quick fox jumps.")
	result := exec.Execute("quick", 1)
	if result.Query != "quick" || result.ContextWords != 1 {
		t.Errorf("Execute echoed query %q context %d", result.Query, result.ContextWords)
	}
	if result.TotalMatches != 2 || len(result.Contexts) != 2 {
		t.Errorf("Execute returned %d/%d matches, want 2", result.TotalMatches, len(result.Contexts))
	}
	empty := exec.Execute("missing", 1)
	if empty.TotalMatches != 0 || empty.Contexts == nil {
		t.Errorf("Execute for unknown word: %+v, want zero matches with non-nil contexts", empty)
	}
}

func TestSearchConcurrentReaders(t *testing.T) {
	exec := newExecutor("The quick brown fox. The quick fox jumps.")
	want := exec.Search("quick", 1)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				if got := exec.Search("quick", 1); !equalSlices(got, want) {
					t.Errorf("concurrent Search returned %q", got)
					return
				}
			}
		}()
	}
	wg.Wait()
}
