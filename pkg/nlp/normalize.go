package nlp

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Normalize lower-cases text, folds accents and turns punctuation into
// single spaces so keyword tables can be matched with plain containment.
func Normalize(text string) string {
	text = strings.ToLower(text)

	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, text)
	if err != nil {
		folded = text
	}

	folded = strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsSpace(r) {
			return r
		}
		return ' '
	}, folded)

	return strings.Join(strings.Fields(folded), " ")
}

// ContainsAny reports the first keyword that occurs as a substring of the
// normalized text. Keywords are checked in slice order.
func ContainsAny(normalized string, keywords []string) (string, bool) {
	for _, k := range keywords {
		if k != "" && strings.Contains(normalized, k) {
			return k, true
		}
	}
	return "", false
}

// ContainsWord is the whole-token variant of ContainsAny, used where short
// keywords ("hi") would otherwise match inside unrelated words.
func ContainsWord(normalized string, keywords []string) (string, bool) {
	tokens := make(map[string]struct{})
	for _, tok := range strings.Fields(normalized) {
		tokens[tok] = struct{}{}
	}
	for _, k := range keywords {
		if _, ok := tokens[k]; ok {
			return k, true
		}
	}
	return "", false
}
