package query

import (
	"strings"
	"testing"
)

func TestBuildPlanTierCaps(t *testing.T) {
	// Reference-heavy query: derivation must still respect the per-tier
	// caps on external call volume.
	plan := BuildPlan("§ 31 SGB II, § 31a SGB II, § 32 SGB II und § 44 SGB X bei Sanktion und Kürzung wegen Überprüfungsantrag")

	var high, medium, low int
	for _, term := range plan.Terms {
		switch term.Tier {
		case TierHigh:
			high++
		case TierMedium:
			medium++
		default:
			low++
		}
	}

	if high > 3 {
		t.Errorf("got %d high-tier terms, cap is 3", high)
	}
	if medium > 2 {
		t.Errorf("got %d medium-tier terms, cap is 2", medium)
	}
	if low > 3 {
		t.Errorf("got %d low-tier terms, cap is 3", low)
	}
}

func TestBuildPlanTierOrdering(t *testing.T) {
	plan := BuildPlan("§ 32 SGB II Termin verpasst")

	lastTier := TierHigh
	for _, term := range plan.Terms {
		if term.Tier > lastTier {
			t.Fatalf("term %q (tier %s) appears after tier %s", term.Value, term.Tier, lastTier)
		}
		lastTier = term.Tier
	}
	if len(plan.Terms) == 0 || plan.Terms[0].Tier != TierHigh {
		t.Fatalf("expected a high-tier term first, got %+v", plan.Terms)
	}
}

func TestBuildPlanExpansionReferenceIsHighTier(t *testing.T) {
	// The appointment-miss expansion yields "§ 32 SGB II"; a derived
	// term that is itself a citation searches at high priority.
	plan := BuildPlan("Termin Jobcenter verpassen Konsequenzen")

	var found *CandidateTerm
	for i, term := range plan.Terms {
		if term.Value == "§ 32 SGB II" {
			found = &plan.Terms[i]
			break
		}
	}
	if found == nil {
		t.Fatalf("plan %v does not contain %q", plan.Terms, "§ 32 SGB II")
	}
	if found.Tier != TierHigh {
		t.Errorf("tier = %s, want high", found.Tier)
	}
	if found.Origin != OriginExpansion {
		t.Errorf("origin = %s, want %s", found.Origin, OriginExpansion)
	}
}

func TestBuildPlanDeduplicatesCaseInsensitively(t *testing.T) {
	plan := BuildPlan("SGB II sgb ii SGB  II")

	seen := map[string]int{}
	for _, term := range plan.Terms {
		seen[strings.ToLower(term.Value)]++
	}
	for value, count := range seen {
		if count > 1 {
			t.Errorf("term %q appears %d times after deduplication", value, count)
		}
	}
}

func TestBuildPlanMinimumTermLength(t *testing.T) {
	plan := BuildPlan("Kündigung AO")
	for _, term := range plan.Terms {
		if len([]rune(term.Value)) < 3 {
			t.Errorf("term %q is below the minimum length", term.Value)
		}
	}
}

func TestBuildPlanKeepsOriginalQuery(t *testing.T) {
	plan := BuildPlan("Welche Rechte habe ich als Mieter?")

	for _, term := range plan.Terms {
		if term.Value == "Welche Rechte habe ich als Mieter?" {
			if term.Origin != OriginOriginal {
				t.Errorf("origin = %s, want %s", term.Origin, OriginOriginal)
			}
			return
		}
	}
	t.Fatalf("plan %v does not contain the original query", plan.Terms)
}

func TestBuildPlanTranslatedQueryOrigin(t *testing.T) {
	plan := BuildPlan("unemployment benefit for my family")

	if plan.Translated == "unemployment benefit for my family" {
		t.Fatalf("expected the query to be translated, got %q", plan.Translated)
	}
	for _, term := range plan.Terms {
		if term.Value == plan.Translated {
			if term.Origin != OriginTranslation {
				t.Errorf("origin = %s, want %s", term.Origin, OriginTranslation)
			}
			return
		}
	}
	t.Fatalf("plan %v does not contain the translated query %q", plan.Terms, plan.Translated)
}
