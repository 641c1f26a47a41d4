// Package normalize implements the text-normalization and agglutinative
// suffix-stripping layer (C2) that every higher parser in this module
// builds on: ascii-folding, apostrophe unification, collision-phrase
// preprocessing, and origin/destination suffix detection.
package normalize

import "strings"

var foldReplacer = strings.NewReplacer(
	"ç", "c", "Ç", "c",
	"ğ", "g", "Ğ", "g",
	"ı", "i", "İ", "i",
	"ö", "o", "Ö", "o",
	"ş", "s", "Ş", "s",
	"ü", "u", "Ü", "u",
)

var apostropheReplacer = strings.NewReplacer(
	"‘", "'",
	"’", "'",
	"`", "'",
)

// collisionPhrases replaces known multi-word phrases with a single
// placeholder token before tokenization, so a word that would otherwise
// collide with a province or vehicle term (e.g. "van" inside "panel van")
// never reaches the location resolver as a bare token.
var collisionPhrases = []struct {
	phrase      string
	replacement string
}{
	{"panel van", "panelvan"},
	{"ne zaman", "nezaman"},
}

// ToASCII lowercases s, folds Turkish letters to their ascii equivalents,
// and unifies every apostrophe variant to a plain '\''.
func ToASCII(s string) string {
	s = strings.ToLower(s)
	s = foldReplacer.Replace(s)
	s = apostropheReplacer.Replace(s)
	return s
}

// Preprocess runs the full C2 preprocessing chain over a raw utterance:
// ascii-fold, collision-phrase substitution, then collapsing of
// "city APOSTROPHE suffix" and "city SPACE suffix" pairs into single
// tokens so the suffix stripper sees one word instead of two.
func Preprocess(s string) string {
	s = ToASCII(s)
	for _, cp := range collisionPhrases {
		s = strings.ReplaceAll(s, cp.phrase, cp.replacement)
	}
	s = collapseApostropheSuffix(s)
	s = collapseSpaceSuffix(s)
	return s
}

// collapseSpaceSuffix turns "ankara ya" into "ankaraya" by merging a
// bare recognized suffix word into its preceding word, so a driver who
// typed the suffix as a separate word doesn't lose the origin/destination
// signal to tokenization.
func collapseSpaceSuffix(s string) string {
	fields := strings.Fields(s)
	if len(fields) < 2 {
		return s
	}
	merged := make([]string, 0, len(fields))
	for _, f := range fields {
		if len(merged) > 0 && isBareSuffix(f) {
			merged[len(merged)-1] += f
			continue
		}
		merged = append(merged, f)
	}
	return strings.Join(merged, " ")
}

func isBareSuffix(token string) bool {
	for _, suf := range allSuffixesLongestFirst() {
		if token == suf {
			return true
		}
	}
	return false
}

// collapseApostropheSuffix turns "kayseri'den" into "kayseriden" by
// dropping apostrophes that sit directly before a recognized suffix.
func collapseApostropheSuffix(s string) string {
	if !strings.Contains(s, "'") {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	runes := []rune(s)
	for i := 0; i < len(runes); i++ {
		if runes[i] == '\'' {
			rest := string(runes[i+1:])
			if hasRecognizedSuffixPrefix(rest) {
				continue
			}
		}
		b.WriteRune(runes[i])
	}
	return b.String()
}

func hasRecognizedSuffixPrefix(rest string) bool {
	for _, suf := range allSuffixesLongestFirst() {
		if strings.HasPrefix(rest, suf) {
			return true
		}
	}
	return false
}

// Tokenize splits already-preprocessed text on whitespace, commas, and
// hyphen-family characters (-, –, —), dropping empty tokens.
func Tokenize(s string) []string {
	s = strings.Map(func(r rune) rune {
		switch r {
		case ',', '-', '–', '—', '/':
			return ' '
		}
		return r
	}, s)
	fields := strings.Fields(s)
	return fields
}
