// Package hash implements the polynomial rolling hash used as the index key
// for normalized words, after https://cp-algorithms.com/string/string-hashing.html.
package hash

const (
	base    = 53
	modulus = 1_000_000_009

	// Powers of base precomputed at construction; words rarely exceed
	// this length.
	precomputed = 20
)

// Hasher computes deterministic, collision-prone hashes of case-normalized
// words. It is immutable after New and safe for concurrent use.
type Hasher struct {
	pows [precomputed]int64
}

// New returns a Hasher with its power table filled in.
func New() *Hasher {
	h := &Hasher{}
	h.pows[0] = 1
	for i := 1; i < precomputed; i++ {
		h.pows[i] = h.pows[i-1] * base % modulus
	}
	return h
}

// Sum lowercases word and accumulates sum(value[i] * base^i) mod modulus,
// where value maps a character c to c-'a'+1. Digits and apostrophes yield
// negative values under the same formula; that is intentional, the hash only
// has to be deterministic, not well-distributed. Powers beyond the
// precomputed table are extended per call rather than cached, so Sum never
// mutates the Hasher. The result is normalized to [0, modulus).
func (h *Hasher) Sum(word string) int64 {
	var sum int64
	pow := int64(1)
	for i := 0; i < len(word); i++ {
		if i < precomputed {
			pow = h.pows[i]
		} else {
			pow = pow * base % modulus
		}
		c := word[i]
		if c >= 'A' && c <= 'Z' {
			c += 'a' - 'A'
		}
		sum = (sum + (int64(c)-'a'+1)*pow) % modulus
	}
	if sum < 0 {
		sum += modulus
	}
	return sum
}
