//nolint:testpackage // using package name 'fuzzy' to access unexported fields for testing
package fuzzy

import (
	"testing"
)

func TestFindSuggestionsBest(t *testing.T) {

	tests := []struct {
		name       string
		input      string
		candidates []string
		expected   string
	}{
		{
			name:       "exact match excluded",
			input:      "help",
			candidates: []string{"help", "version", "verbose"},
			expected:   "",
		},
		{
			name:       "simple typo",
			input:      "hep",
			candidates: []string{"help", "version", "verbose"},
			expected:   "help",
		},
		{
			name:       "transposed letters",
			input:      "moed",
			candidates: []string{"mode", "verbose"},
			expected:   "mode",
		},
		{
			name:       "no good match",
			input:      "xyz",
			candidates: []string{"help", "version", "verbose"},
			expected:   "",
		},
		{
			name:       "too short",
			input:      "x",
			candidates: []string{"help", "version"},
			expected:   "",
		},
		{
			name:       "case insensitive",
			input:      "HEP",
			candidates: []string{"help", "version"},
			expected:   "help",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ""
			if got := FindSuggestions(tt.input, tt.candidates, 2, 1); len(got) > 0 {
				result = got[0]
			}
			if result != tt.expected {
				t.Errorf("FindSuggestions(%q, %v) = %q, want %q", tt.input, tt.candidates, result, tt.expected)
			}
		})
	}
}

func TestMatcher_RankOrder(t *testing.T) {
	matches := NewMatcher(2).Rank("hep", []string{"deep", "help", "heap", "version"})
	if len(matches) != 3 {
		t.Fatalf("Expected 3 matches, got %d: %v", len(matches), matches)
	}
	if matches[2].Value != "deep" {
		t.Errorf("Expected the distance-2 candidate last, got %v", matches)
	}
	for i := 1; i < len(matches); i++ {
		if matches[i].Score > matches[i-1].Score {
			t.Errorf("Matches not sorted by score: %v", matches)
		}
	}
}

func TestMatcher_RankDeduplicates(t *testing.T) {
	matches := NewMatcher(2).Rank("hep", []string{"help", "help"})
	if len(matches) != 1 {
		t.Errorf("Expected duplicates collapsed, got %v", matches)
	}
}

func TestDistance(t *testing.T) {
	m := NewMatcher(3)

	tests := []struct {
		a, b string
		want int
	}{
		{"", "abc", 3},
		{"abc", "", 3},
		{"mode", "mode", 0},
		{"mode", "modes", 1},
		{"kitten", "sitting", 3},
	}
	for _, tt := range tests {
		if got := m.distance(tt.a, tt.b); got != tt.want {
			t.Errorf("distance(%q, %q) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}

	short := NewMatcher(1)
	if got := short.distance("abcdef", "a"); got != 2 {
		t.Errorf("Expected early exit at maxDistance+1, got %d", got)
	}
}

func TestFindSuggestions(t *testing.T) {
	got := FindSuggestions("hep", []string{"help", "heap", "deep"}, 2, 2)
	if len(got) != 2 || got[0] != "help" || got[1] != "heap" {
		t.Errorf("FindSuggestions = %v, want [help heap]", got)
	}

	if got := FindSuggestions("verbsoe", []string{"verbose", "version"}, 2, 1); len(got) != 1 || got[0] != "verbose" {
		t.Errorf("FindSuggestions = %v, want [verbose]", got)
	}
	if got := FindSuggestions("zzz", []string{"verbose"}, 2, 3); len(got) != 0 {
		t.Errorf("FindSuggestions = %v, want none", got)
	}
}
