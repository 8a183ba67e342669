package query

import (
	"slices"
	"testing"
)

func TestExpandTerms(t *testing.T) {
	tests := []struct {
		name      string
		query     string
		wantTerms []string
		wantEmpty bool
	}{
		{
			name:      "missed appointment trigger",
			query:     "Termin Jobcenter verpassen Konsequenzen",
			wantTerms: []string{"§ 32 SGB II", "Meldeversäumnis"},
		},
		{
			name:      "sanction trigger",
			query:     "Wie hoch fällt die Kürzung aus?",
			wantTerms: []string{"§ 31 SGB II", "Leistungsminderung"},
		},
		{
			name:      "benefit name trigger",
			query:     "Wie hoch ist das Bürgergeld 2025?",
			wantTerms: []string{"SGB II", "Regelbedarf"},
		},
		{
			name:      "housing trigger",
			query:     "Das Jobcenter zahlt meine Miete nicht voll",
			wantTerms: []string{"§ 22 SGB II", "Kosten der Unterkunft"},
		},
		{
			name:      "no trigger fires",
			query:     "Patentanmeldung beim DPMA",
			wantEmpty: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExpandTerms(tt.query)

			if tt.wantEmpty {
				if len(got) != 0 {
					t.Fatalf("ExpandTerms(%q) = %v, want empty", tt.query, got)
				}
				return
			}
			for _, term := range tt.wantTerms {
				if !slices.Contains(got, term) {
					t.Errorf("ExpandTerms(%q) = %v, missing %q", tt.query, got, term)
				}
			}
		})
	}
}

func TestExpandTermsAdditiveOnly(t *testing.T) {
	// Two topics triggered at once contribute both term lists, deduplicated.
	got := ExpandTerms("Termin versäumt, droht eine Sanktion?")

	for _, term := range []string{"§ 32 SGB II", "§ 31 SGB II"} {
		if !slices.Contains(got, term) {
			t.Errorf("ExpandTerms = %v, missing %q", got, term)
		}
	}

	seen := map[string]struct{}{}
	for _, term := range got {
		if _, dup := seen[term]; dup {
			t.Errorf("duplicate expansion term %q", term)
		}
		seen[term] = struct{}{}
	}
}
