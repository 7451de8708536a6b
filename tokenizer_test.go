package valuepath

import (
	"reflect"
	"testing"
)

// TestTokenizeBasic tests segment splitting across the supported grammar
func TestTokenizeBasic(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		expected []string
	}{
		{
			name:     "simple property",
			path:     "user.name",
			expected: []string{"user", "name"},
		},
		{
			name:     "array index",
			path:     "Items[0].Name",
			expected: []string{"Items", "0", "Name"},
		},
		{
			name:     "quoted literal with dot",
			path:     `["my.key"].value`,
			expected: []string{"my.key", "value"},
		},
		{
			name:     "single-quoted literal",
			path:     `['my key'].value`,
			expected: []string{"my key", "value"},
		},
		{
			name:     "redundant dots folded away",
			path:     "..Name..",
			expected: []string{"Name"},
		},
		{
			name:     "consecutive dots mid-path",
			path:     "a..b",
			expected: []string{"a", "b"},
		},
		{
			name:     "empty path",
			path:     "",
			expected: nil,
		},
		{
			name:     "empty bracket folded away",
			path:     "a[].b",
			expected: []string{"a", "b"},
		},
		{
			name:     "stray close bracket skipped",
			path:     "]a.b",
			expected: []string{"a", "b"},
		},
		{
			name:     "bracket body kept verbatim",
			path:     "a[not a number]",
			expected: []string{"a", "not a number"},
		},
		{
			name:     "nested indices",
			path:     "matrix[1][2]",
			expected: []string{"matrix", "1", "2"},
		},
		{
			name:     "literal containing brackets",
			path:     `["a[0].b"]`,
			expected: []string{"a[0].b"},
		},
		{
			name:     "escaped quote inside literal",
			path:     `["say \"hi\""]`,
			expected: []string{`say "hi"`},
		},
		{
			name:     "escape copies any character",
			path:     `["a\\b"]`,
			expected: []string{`a\b`},
		},
		{
			name:     "unterminated literal consumes to end",
			path:     `["unfinished`,
			expected: []string{"unfinished"},
		},
		{
			name:     "literal without following bracket",
			path:     `["key"x`,
			expected: []string{"key", "x"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Tokenize(tt.path)
			if len(got) == 0 && len(tt.expected) == 0 {
				return
			}
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("Tokenize(%q) = %v, want %v", tt.path, got, tt.expected)
			}
		})
	}
}

// TestTokenizeSegmentsAreOpaque verifies segments carry no interpretation:
// numeric-looking bracket bodies come back as plain strings.
func TestTokenizeSegmentsAreOpaque(t *testing.T) {
	got := Tokenize("a[007].b")
	want := []string{"a", "007", "b"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Tokenize preserved leading zeros incorrectly: got %v, want %v", got, want)
	}
}
