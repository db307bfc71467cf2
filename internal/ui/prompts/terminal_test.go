package prompts

import (
	"slices"
	"testing"
)

func TestSuggestCommand(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"", shellCommands},
		{"b", []string{"balance"}},
		{"D", []string{"deposit"}},
		{"zz", nil},
	}
	for _, tt := range tests {
		if got := suggestCommand(tt.in); !slices.Equal(got, tt.want) {
			t.Fatalf("suggestCommand(%q)=%v want=%v", tt.in, got, tt.want)
		}
	}
}
