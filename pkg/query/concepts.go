package query

import "strings"

// Correction is the outcome of the concept-correction stage: search
// terms pointing at the governing provisions plus explanations the
// caller can surface to the user.
type Correction struct {
	Terms        []string
	Explanations []string
}

// misconceptionRule fires when every marker occurs in the lowercased
// query. Unlike the phrase table, a rule needs several independent
// textual markers to co-occur before it corrects anything.
type misconceptionRule struct {
	markers     []string
	anyOf       []string
	terms       []string
	explanation string
}

var misconceptionRules = []misconceptionRule{
	{
		// § 16 SGB II covers Eingliederungsleistungen; users citing it
		// for benefit applications mean § 37 SGB II.
		markers: []string{"§ 16", "sgb ii"},
		anyOf:   []string{"antrag", "beantragen"},
		terms:   []string{"§ 37 SGB II", "Antragserfordernis"},
		explanation: "§ 16 SGB II regelt Eingliederungsleistungen, nicht die Antragstellung. " +
			"Das Antragserfordernis für Leistungen steht in § 37 SGB II.",
	},
	{
		// The Überprüfungsantrag lives in SGB X, not SGB II, but lay
		// queries routinely cite "§ 44 SGB II".
		markers: []string{"§ 44", "sgb ii"},
		anyOf:   []string{"überprüfung", "rückwirkend", "nachzahlung"},
		terms:   []string{"§ 44 SGB X", "Überprüfungsantrag"},
		explanation: "Der Überprüfungsantrag richtet sich nach § 44 SGB X, nicht nach § 44 SGB II. " +
			"§ 44 SGB II betrifft die Veränderung von Ansprüchen.",
	},
	{
		// Full sanctions are gone since BVerfG, 1 BvL 7/16.
		markers: []string{"sanktion"},
		anyOf:   []string{"100", "hundert", "komplett gestrichen", "ganz gestrichen"},
		terms:   []string{"§ 31a SGB II", "Leistungsminderung Höhe"},
		explanation: "Leistungsminderungen sind seit dem Urteil des Bundesverfassungsgerichts " +
			"(1 BvL 7/16) auf höchstens 30 Prozent des Regelbedarfs begrenzt, § 31a SGB II.",
	},
}

// CorrectConcepts maps known lay or incorrect phrasings in the query to
// the statutory concepts that actually govern the topic. Matching is
// substring containment on the lowercased query. Returned terms are
// deduplicated and filtered to a useful minimum length; both slices may
// be empty.
func CorrectConcepts(q string) Correction {
	lower := strings.ToLower(q)

	var c Correction
	for _, entry := range tables.concepts {
		if !strings.Contains(lower, entry.Phrase) {
			continue
		}
		c.Terms = append(c.Terms, entry.Terms...)
		c.Explanations = append(c.Explanations, entry.Explanation)
	}

	for _, rule := range misconceptionRules {
		if !rule.matches(lower) {
			continue
		}
		c.Terms = append(c.Terms, rule.terms...)
		c.Explanations = append(c.Explanations, rule.explanation)
	}

	c.Terms = filterShort(dedupeStrings(c.Terms), 3)
	c.Explanations = dedupeStrings(c.Explanations)
	return c
}

func (r misconceptionRule) matches(lower string) bool {
	for _, marker := range r.markers {
		if !strings.Contains(lower, marker) {
			return false
		}
	}
	if len(r.anyOf) == 0 {
		return true
	}
	for _, marker := range r.anyOf {
		if strings.Contains(lower, marker) {
			return true
		}
	}
	return false
}

func filterShort(values []string, minLen int) []string {
	out := values[:0]
	for _, v := range values {
		if len([]rune(v)) >= minLen {
			out = append(out, v)
		}
	}
	return out
}
