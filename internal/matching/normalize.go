package matching

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// stopWords are dropped before fuzzy token comparison. They never block a match.
var stopWords = map[string]bool{
	"the": true, "a": true, "an": true, "of": true, "at": true, "by": true,
	"in": true, "on": true, "and": true, "de": true, "del": true, "la": true,
	"le": true, "el": true, "les": true,
	"hotel": true, "hotels": true, "resort": true, "inn": true, "suites": true,
	"airport": true, "international": true, "intl": true,
	"station": true, "terminal": true, "restaurant": true,
}

// NormalizeName lower-cases, strips diacritics and replaces punctuation with spaces
func NormalizeName(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	stripped, _, err := transform.String(t, s)
	if err != nil {
		stripped = s
	}

	var b strings.Builder
	b.Grow(len(stripped))
	for _, r := range strings.ToLower(stripped) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
		case r == '\'' || r == '’':
			// "O'Hare" -> "ohare"
		default:
			b.WriteRune(' ')
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

// Tokenize splits a normalized name into words
func Tokenize(s string) []string {
	return strings.Fields(NormalizeName(s))
}

// significantTokens drops stop words and de-duplicates
func significantTokens(s string) []string {
	seen := make(map[string]bool)
	var out []string
	for _, tok := range Tokenize(s) {
		if stopWords[tok] || seen[tok] {
			continue
		}
		seen[tok] = true
		out = append(out, tok)
	}
	return out
}

// containsPhrase reports whether needle appears in haystack on word boundaries
func containsPhrase(haystack, needle string) bool {
	return strings.Contains(" "+haystack+" ", " "+needle+" ")
}
