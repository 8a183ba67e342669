package query

import (
	"strings"
	"testing"
)

func TestTranslateQuery(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  string
	}{
		{
			name:  "german query passes through unchanged",
			query: "Was regelt § 242 StGB?",
			want:  "Was regelt § 242 StGB?",
		},
		{
			name:  "german with latin-script overlap is not mangled",
			query: "Termin beim Jobcenter verpasst, was nun?",
			want:  "Termin beim Jobcenter verpasst, was nun?",
		},
		{
			name:  "multi-word phrase wins over its constituents",
			query: "Can my unemployment benefit be cut?",
			want:  "Can my Bürgergeld be cut?",
		},
		{
			name:  "single word translation",
			query: "How do I file an appeal?",
			want:  "How do I file an Widerspruch?",
		},
		{
			name:  "several phrases in one query",
			query: "My landlord sent a notice of termination before the deadline",
			want:  "My Vermieter sent a Kündigung before the Frist",
		},
		{
			name:  "missed appointment maps to the term of art",
			query: "missed appointment at the job center",
			want:  "Meldeversäumnis at the Jobcenter",
		},
		{
			name:  "word boundaries protect substrings",
			query: "the courts rental court decision",
			want:  "the courts rental Gericht decision",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TranslateQuery(tt.query); got != tt.want {
				t.Errorf("TranslateQuery(%q) = %q, want %q", tt.query, got, tt.want)
			}
		})
	}
}

func TestTranslateQueryDeterministic(t *testing.T) {
	query := "Can I appeal a sanction for a missed appointment?"
	first := TranslateQuery(query)
	for i := 0; i < 10; i++ {
		if got := TranslateQuery(query); got != first {
			t.Fatalf("run %d: TranslateQuery(%q) = %q, want stable %q", i, query, got, first)
		}
	}
	if first == query {
		t.Fatalf("expected %q to be translated", query)
	}
	if !strings.Contains(first, "Meldeversäumnis") {
		t.Errorf("TranslateQuery(%q) = %q, want the missed-appointment term of art", query, first)
	}
}
