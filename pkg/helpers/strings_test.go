package helpers

import "testing"

func TestIsEmpty(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"", true},
		{"   ", true},
		{"\t\n", true},
		{"SGB II", false},
		{" § 32 ", false},
	}
	for _, tt := range tests {
		if got := IsEmpty(tt.input); got != tt.want {
			t.Errorf("IsEmpty(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestDefaultString(t *testing.T) {
	tests := []struct {
		name    string
		options []string
		want    string
	}{
		{"first non-empty wins", []string{"", "Meldeversäumnis", "Titel"}, "Meldeversäumnis"},
		{"whitespace skipped", []string{"  ", "Titel"}, "Titel"},
		{"all empty", []string{"", "  "}, ""},
		{"no options", nil, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DefaultString(tt.options...); got != tt.want {
				t.Errorf("DefaultString(%v) = %q, want %q", tt.options, got, tt.want)
			}
		})
	}
}
