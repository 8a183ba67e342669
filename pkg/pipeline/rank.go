package pipeline

import (
	"math"
	"sort"
	"strings"

	"github.com/hbollon/go-edlib"
)

// Relative weight of each matched field when scoring a document against
// the query.
const (
	titleWeight   = 0.4
	matchWeight   = 0.4
	contentWeight = 0.2
)

// thresholdFloor is the laxest the requested threshold is allowed to
// get raised to. Legal prose is verbose; strict fuzzy thresholds miss
// valid hits, so anything stricter than 0.6 is widened to it. The
// threshold follows the distance convention (0 = exact match required,
// 1 = match anything); display scores are inverted so higher is better.
const thresholdFloor = 0.6

// fallbackScore marks results that survived only through the
// priority-order fallback, not through fuzzy matching.
const fallbackScore = 0.1

// Rank deduplicates, priority-sorts and fuzzy re-ranks candidate
// documents against the original query.
//
// Duplicates share a document identity key; the first occurrence wins,
// which is the highest-tier copy because the searcher appends results in
// priority order. Fuzzy scores weight the document title, the matched
// snippet labels and the snippet text. If fuzzy matching rejects every
// candidate the top priority-sorted documents are returned with a
// sentinel low-confidence score instead: a non-empty candidate pool is
// never silently discarded. The result is truncated to limit.
func Rank(results []RankedResult, queryText string, threshold float64, limit int) []RankedResult {
	deduped := dedupeByIdentity(results)
	sortByTier(deduped)

	minSimilarity := 1.0 - math.Max(clamp01(threshold), thresholdFloor)

	scored := make([]RankedResult, 0, len(deduped))
	for _, r := range deduped {
		score := fuzzyScore(queryText, r)
		if score < minSimilarity {
			continue
		}
		r.Score = score
		scored = append(scored, r)
	}

	if len(scored) == 0 && len(deduped) > 0 {
		scored = deduped
		for i := range scored {
			scored[i].Score = fallbackScore
		}
	}

	// Tier stays the primary order; fuzzy scores only reorder within a
	// tier.
	sort.SliceStable(scored, func(i, j int) bool {
		if scored[i].Term.Tier != scored[j].Term.Tier {
			return scored[i].Term.Tier > scored[j].Term.Tier
		}
		return scored[i].Score > scored[j].Score
	})

	if limit > 0 && len(scored) > limit {
		scored = scored[:limit]
	}
	return scored
}

// dedupeByIdentity drops later occurrences of the same document
// identity key, keeping input order.
func dedupeByIdentity(results []RankedResult) []RankedResult {
	seen := make(map[string]struct{}, len(results))
	out := make([]RankedResult, 0, len(results))
	for _, r := range results {
		key := r.Document.IdentityKey()
		if key == "" {
			out = append(out, r)
			continue
		}
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, r)
	}
	return out
}

// sortByTier stable-sorts by priority tier descending, preserving term
// order within a tier.
func sortByTier(results []RankedResult) {
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Term.Tier > results[j].Term.Tier
	})
}

// fuzzyScore computes the weighted similarity of one document to the
// query: title, best snippet label and best snippet text. Every part is
// in [0,1] with 1 meaning identical.
func fuzzyScore(queryText string, r RankedResult) float64 {
	titleSim := textSimilarity(queryText, r.Document.Title())

	var bestName, bestText float64
	for _, match := range r.TextMatches {
		if sim := textSimilarity(queryText, match.Name); sim > bestName {
			bestName = sim
		}
		if sim := textSimilarity(queryText, match.Text); sim > bestText {
			bestText = sim
		}
	}

	return titleWeight*titleSim + matchWeight*bestName + contentWeight*bestText
}

// textSimilarity blends 2-gram cosine similarity with word-level Jaccard
// similarity, weighting the n-gram signal higher. Case-insensitive.
func textSimilarity(a, b string) float64 {
	if a == "" || b == "" {
		return 0
	}
	a = strings.ToLower(a)
	b = strings.ToLower(b)

	cosine := float64(edlib.CosineSimilarity(a, b, 2))
	jaccard := float64(edlib.JaccardSimilarity(a, b, 0))
	return 0.7*cosine + 0.3*jaccard
}

func clamp01(v float64) float64 {
	return math.Min(1, math.Max(0, v))
}
