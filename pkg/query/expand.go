package query

import "strings"

// ExpandTerms derives additional topic-specific search terms from the
// query. Each expansion table entry fires when one of its triggers
// occurs as a substring of the lowercased query and contributes a fixed
// list of domain terms. Purely additive; the result is empty when no
// trigger fires.
func ExpandTerms(q string) []string {
	lower := strings.ToLower(q)

	var terms []string
	for _, entry := range tables.expansions {
		for _, trigger := range entry.Triggers {
			if strings.Contains(lower, trigger) {
				terms = append(terms, entry.Terms...)
				break
			}
		}
	}
	return dedupeStrings(terms)
}
