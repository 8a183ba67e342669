package query

import "strings"

// Origin records how a candidate term was derived from the query.
type Origin string

const (
	// OriginLegalReference marks terms from the reference extractor.
	OriginLegalReference Origin = "legal-reference"
	// OriginConceptCorrection marks terms from the concept corrector.
	OriginConceptCorrection Origin = "concept-correction"
	// OriginTranslation marks a query rewritten from English.
	OriginTranslation Origin = "translation"
	// OriginExpansion marks terms from the topic expander.
	OriginExpansion Origin = "expansion"
	// OriginOriginal marks the unmodified user query.
	OriginOriginal Origin = "original"
)

// Tier is the coarse relevance bucket a term is searched under. Results
// found by higher tiers outrank lower ones before fuzzy ranking runs.
type Tier int

const (
	// TierLow covers expansions and the plain query.
	TierLow Tier = iota + 1
	// TierMedium covers corrected concepts.
	TierMedium
	// TierHigh covers structured legal references.
	TierHigh
)

func (t Tier) String() string {
	switch t {
	case TierHigh:
		return "high"
	case TierMedium:
		return "medium"
	default:
		return "low"
	}
}

// CandidateTerm is one search string derived from a query.
type CandidateTerm struct {
	Value  string
	Origin Origin
	Tier   Tier
}

// Caps on external calls per tier. Low additionally covers the original
// query, so its cap is one higher than the expansion share.
const (
	maxHighTerms   = 3
	maxMediumTerms = 2
	maxLowTerms    = 3
)

// Plan is the complete term-derivation result for one query: the
// prioritized candidate terms, the corrective explanations collected on
// the way and the (possibly translated) query text used for ranking.
type Plan struct {
	Terms        []CandidateTerm
	Explanations []string
	Translated   string
}

// BuildPlan runs the full derivation for a raw query: translation,
// reference extraction, concept correction and topic expansion. The
// returned terms are deduplicated case-insensitively, at least three
// characters long, ordered by tier and capped per tier to bound external
// call volume.
func BuildPlan(raw string) Plan {
	translated := TranslateQuery(raw)

	queryOrigin := OriginOriginal
	if translated != raw {
		queryOrigin = OriginTranslation
	}

	correction := CorrectConcepts(translated)

	var candidates []CandidateTerm
	for _, ref := range ExtractReferences(translated) {
		candidates = append(candidates, CandidateTerm{Value: ref, Origin: OriginLegalReference, Tier: TierHigh})
	}
	for _, term := range correction.Terms {
		candidates = append(candidates, CandidateTerm{Value: term, Origin: OriginConceptCorrection, Tier: tierFor(OriginConceptCorrection, term)})
	}
	candidates = append(candidates, CandidateTerm{Value: translated, Origin: queryOrigin, Tier: TierLow})
	for _, term := range ExpandTerms(translated) {
		candidates = append(candidates, CandidateTerm{Value: term, Origin: OriginExpansion, Tier: tierFor(OriginExpansion, term)})
	}

	return Plan{
		Terms:        capTerms(dedupeTerms(candidates)),
		Explanations: correction.Explanations,
		Translated:   translated,
	}
}

// tierFor assigns the tier by origin, with one exception: a derived term
// that is itself a structured legal reference is searched at high
// priority no matter where it came from.
func tierFor(origin Origin, value string) Tier {
	if looksLikeReference(value) {
		return TierHigh
	}
	switch origin {
	case OriginLegalReference:
		return TierHigh
	case OriginConceptCorrection:
		return TierMedium
	default:
		return TierLow
	}
}

func looksLikeReference(value string) bool {
	return paragraphRe.MatchString(value) || articleRe.MatchString(value)
}

// dedupeTerms removes duplicate values case-insensitively with collapsed
// whitespace. The highest-tier occurrence wins; for equal tiers the
// first one does. Terms shorter than three characters are dropped.
func dedupeTerms(terms []CandidateTerm) []CandidateTerm {
	best := make(map[string]int, len(terms))
	out := make([]CandidateTerm, 0, len(terms))

	for _, term := range terms {
		normalized := whitespaceRe.ReplaceAllString(strings.TrimSpace(term.Value), " ")
		if len([]rune(normalized)) < 3 {
			continue
		}
		term.Value = normalized

		key := strings.ToLower(normalized)
		if idx, ok := best[key]; ok {
			if term.Tier > out[idx].Tier {
				out[idx] = term
			}
			continue
		}
		best[key] = len(out)
		out = append(out, term)
	}
	return out
}

// capTerms orders terms by tier descending (stable within a tier) and
// truncates each tier to its cap.
func capTerms(terms []CandidateTerm) []CandidateTerm {
	byTier := map[Tier][]CandidateTerm{}
	for _, term := range terms {
		byTier[term.Tier] = append(byTier[term.Tier], term)
	}

	capped := make([]CandidateTerm, 0, maxHighTerms+maxMediumTerms+maxLowTerms)
	capped = append(capped, truncateTerms(byTier[TierHigh], maxHighTerms)...)
	capped = append(capped, truncateTerms(byTier[TierMedium], maxMediumTerms)...)
	capped = append(capped, truncateTerms(byTier[TierLow], maxLowTerms)...)
	return capped
}

func truncateTerms(terms []CandidateTerm, limit int) []CandidateTerm {
	if len(terms) > limit {
		return terms[:limit]
	}
	return terms
}
