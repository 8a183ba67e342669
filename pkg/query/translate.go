package query

import "strings"

// TranslateQuery rewrites English legal vocabulary in the query into its
// German counterpart. Queries without any English indicator word are
// returned unchanged, which keeps German queries that share Latin-script
// substrings from being mangled. Substitution runs longest phrase first
// on whole-word boundaries and is deterministic for a fixed table.
func TranslateQuery(q string) string {
	if !looksEnglish(q) {
		return q
	}

	translated := q
	for _, sub := range tables.substitutions {
		translated = sub.pattern.ReplaceAllString(translated, sub.replacement)
	}
	return translated
}

// looksEnglish scans the lowercased query for English legal-domain
// indicator words. A closed word list, not language detection.
func looksEnglish(q string) bool {
	lower := strings.ToLower(q)
	words := strings.FieldsFunc(lower, func(r rune) bool {
		return r == ' ' || r == '\t' || r == '\n' || r == ',' || r == '.' || r == '?' || r == '!'
	})
	wordSet := make(map[string]struct{}, len(words))
	for _, w := range words {
		wordSet[w] = struct{}{}
	}
	for _, indicator := range tables.englishIndicators {
		if _, ok := wordSet[indicator]; ok {
			return true
		}
	}
	return false
}
