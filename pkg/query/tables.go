// Package query turns a raw legal question into a prioritized list of
// search terms. It detects structured legal citations, corrects common
// lay misconceptions about which provision governs a topic, translates
// English legal vocabulary into German and expands topic keywords into
// statute references.
package query

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	_ "embed"

	"github.com/goccy/go-yaml"
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

//go:embed tables.yaml
var tablesYAML []byte

// ConceptEntry maps a lay phrase to the provisions that actually govern
// the topic, together with a user-facing explanation.
type ConceptEntry struct {
	Phrase      string   `yaml:"phrase"`
	Terms       []string `yaml:"terms"`
	Explanation string   `yaml:"explanation"`
}

// ExpansionEntry derives additional search terms when one of its
// triggers occurs in the query.
type ExpansionEntry struct {
	Topic    string   `yaml:"topic"`
	Triggers []string `yaml:"triggers"`
	Terms    []string `yaml:"terms"`
}

type translationEntry struct {
	EN string `yaml:"en"`
	DE string `yaml:"de"`
}

type tableFile struct {
	EnglishIndicators []string           `yaml:"english_indicators"`
	Translations      []translationEntry `yaml:"translations"`
	Concepts          []ConceptEntry     `yaml:"concepts"`
	Expansions        []ExpansionEntry   `yaml:"expansions"`
}

// tables holds the parsed lookup tables. Populated once at package init
// and never mutated afterwards.
type lookupTables struct {
	englishIndicators []string

	// translations preserves the file order; substitutions holds the
	// same entries compiled and sorted longest-first with ties broken
	// by file order, which is the order substitution must run in.
	translations  *orderedmap.OrderedMap[string, string]
	substitutions []substitution

	concepts   []ConceptEntry
	expansions []ExpansionEntry
}

var tables = mustLoadTables(tablesYAML)

func mustLoadTables(raw []byte) *lookupTables {
	t, err := loadTables(raw)
	if err != nil {
		panic(fmt.Sprintf("query: invalid embedded tables: %v", err))
	}
	return t
}

func loadTables(raw []byte) (*lookupTables, error) {
	var file tableFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("parsing tables: %w", err)
	}

	t := &lookupTables{
		englishIndicators: make([]string, 0, len(file.EnglishIndicators)),
		translations:      orderedmap.New[string, string](),
		concepts:          file.Concepts,
		expansions:        file.Expansions,
	}

	for _, ind := range file.EnglishIndicators {
		t.englishIndicators = append(t.englishIndicators, strings.ToLower(ind))
	}

	for _, entry := range file.Translations {
		key := strings.ToLower(strings.TrimSpace(entry.EN))
		if key == "" || entry.DE == "" {
			return nil, fmt.Errorf("translation entry %q -> %q is incomplete", entry.EN, entry.DE)
		}
		t.translations.Set(key, entry.DE)
	}

	for i, c := range t.concepts {
		if c.Phrase == "" || len(c.Terms) == 0 {
			return nil, fmt.Errorf("concept entry %d is incomplete", i)
		}
		t.concepts[i].Phrase = strings.ToLower(c.Phrase)
	}

	t.substitutions = compileSubstitutions(t.translations)
	return t, nil
}

// substitution is one precompiled translation rule. The pattern matches
// the English phrase on whole-word boundaries, case-insensitively.
type substitution struct {
	pattern     *regexp.Regexp
	replacement string
}

// compileSubstitutions orders the translation entries longest phrase
// first. Ties keep the original table order so repeated runs substitute
// identically.
func compileSubstitutions(m *orderedmap.OrderedMap[string, string]) []substitution {
	subs := make([]substitution, 0, m.Len())
	for pair := m.Oldest(); pair != nil; pair = pair.Next() {
		subs = append(subs, substitution{
			pattern:     regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(pair.Key) + `\b`),
			replacement: pair.Value,
		})
	}
	sort.SliceStable(subs, func(i, j int) bool {
		return len(subs[i].pattern.String()) > len(subs[j].pattern.String())
	})
	return subs
}
