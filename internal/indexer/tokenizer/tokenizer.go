// Package tokenizer splits a document into an alternating sequence of word
// and separator tokens. A word is a maximal run of ASCII letters, digits,
// and apostrophes; a separator is a maximal run of everything else.
// Concatenating the emitted tokens in order reproduces the input exactly,
// which is what lets the index reconstruct character offsets.
package tokenizer

// Kind classifies a token.
type Kind int

const (
	Word Kind = iota
	Separator
)

// Token is a single word or separator run.
type Token struct {
	Text string
	Kind Kind
}

// Len returns the token's length in bytes. Word characters are ASCII, so
// byte offsets and character offsets agree for every word boundary; any
// multi-byte rune falls entirely inside a separator run.
func (t Token) Len() int {
	return len(t.Text)
}

// Scanner lazily walks a document from left to right. It is single-use and
// not restartable; create a new Scanner to walk the document again.
type Scanner struct {
	text string
	pos  int
}

// NewScanner returns a Scanner positioned at the start of text.
func NewScanner(text string) *Scanner {
	return &Scanner{text: text}
}

// Next returns the next token and true, or a zero Token and false once the
// document is exhausted. An empty document yields no tokens.
func (s *Scanner) Next() (Token, bool) {
	if s.pos >= len(s.text) {
		return Token{}, false
	}
	start := s.pos
	word := isWordByte(s.text[s.pos])
	for s.pos < len(s.text) && isWordByte(s.text[s.pos]) == word {
		s.pos++
	}
	kind := Separator
	if word {
		kind = Word
	}
	return Token{Text: s.text[start:s.pos], Kind: kind}, true
}

func isWordByte(c byte) bool {
	return c >= 'a' && c <= 'z' ||
		c >= 'A' && c <= 'Z' ||
		c >= '0' && c <= '9' ||
		c == '\''
}
