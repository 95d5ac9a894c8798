package text

import "strings"

// Rules holds the normalization rule set: the article stop list and the
// ASCII delimiter table. Build it once at startup and share it; it is
// read-only after construction.
type Rules struct {
	articles map[string]struct{}
	delim    [128]bool
}

const (
	asciiWhitespace  = " \t\n\v\f\r"
	asciiPunctuation = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"

	// nbsp is the Unicode non-breaking space, common in answers copied
	// out of scraped HTML.
	nbsp = '\u00a0'
)

// DefaultRules returns the standard SQuAD-style rule set: English
// articles plus ASCII whitespace and punctuation as delimiters.
func DefaultRules() *Rules {
	r := &Rules{
		articles: map[string]struct{}{
			"the": {},
			"a":   {},
			"an":  {},
		},
	}
	for _, c := range asciiWhitespace + asciiPunctuation {
		r.delim[c] = true
	}
	return r
}

// isDelim reports whether r is an ASCII whitespace or punctuation rune.
func (rs *Rules) isDelim(r rune) bool {
	return r < 128 && rs.delim[r]
}

// Normalize canonicalizes a raw answer string:
//  1. lowercase
//  2. fold non-breaking spaces into ordinary spaces
//  3. trim leading/trailing ASCII whitespace and punctuation
//  4. drop article tokens ("the", "a", "an") and rejoin with single spaces
//
// Normalize is deterministic and idempotent; an empty input yields an
// empty output.
func (rs *Rules) Normalize(s string) string {
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, string(nbsp), " ")
	s = strings.TrimFunc(s, rs.isDelim)

	fields := strings.Fields(s)
	kept := fields[:0]
	for _, f := range fields {
		if _, stop := rs.articles[f]; stop {
			continue
		}
		kept = append(kept, f)
	}
	return strings.Join(kept, " ")
}

// Tokenize normalizes a raw answer and splits it into a bag of tokens.
// Unlike the trim in Normalize, every interior ASCII whitespace or
// punctuation character acts as a delimiter, so "mid-19th century"
// yields {mid, 19th, century}. Empty fragments are discarded. The result
// maps each distinct token to its occurrence count.
func (rs *Rules) Tokenize(s string) map[string]int {
	s = rs.Normalize(s)
	split := strings.FieldsFunc(s, rs.isDelim)

	bag := make(map[string]int, len(split))
	for _, tok := range split {
		bag[tok]++
	}
	return bag
}

// BagSize returns the total token count of a bag (with multiplicity).
func BagSize(bag map[string]int) int {
	n := 0
	for _, c := range bag {
		n += c
	}
	return n
}

// BagOverlap returns the size of the multiset intersection of two bags:
// the sum over tokens of the smaller of the two counts.
func BagOverlap(a, b map[string]int) int {
	// Iterate the smaller bag.
	if len(b) < len(a) {
		a, b = b, a
	}
	n := 0
	for tok, ca := range a {
		if cb, ok := b[tok]; ok {
			if cb < ca {
				n += cb
			} else {
				n += ca
			}
		}
	}
	return n
}
