package models

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func texts(labels []LabelItem) []string {
	out := make([]string, len(labels))
	for i, l := range labels {
		out[i] = l.Text
	}
	return out
}

func TestParseLabels(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{name: "empty", input: "", want: []string{}},
		{name: "whitespace only", input: "   ", want: []string{}},
		{name: "separators only", input: " ; ;; ", want: []string{}},
		{name: "trims and drops empty", input: "a; b ;;c", want: []string{"a", "b", "c"}},
		{name: "single", input: "ops", want: []string{"ops"}},
		{name: "keeps duplicates and order", input: "x;y;x", want: []string{"x", "y", "x"}},
		{name: "inner spaces kept", input: " team a ; prod ", want: []string{"team a", "prod"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseLabels(tt.input)
			require.NotNil(t, got)
			assert.Equal(t, tt.want, texts(got))
		})
	}
}

func TestFormatLabelsForInput(t *testing.T) {
	assert.Equal(t, "a; b", FormatLabelsForInput([]LabelItem{{Text: "a"}, {Text: "b"}}))
	assert.Equal(t, "", FormatLabelsForInput(nil))
	assert.Equal(t, "solo", FormatLabelsForInput([]LabelItem{{Text: "solo"}}))
}

func TestLabels_RoundTripIsIdempotent(t *testing.T) {
	inputs := []string{"", "a", " a ;b;; c ", "x; x; x", ";;;", "one;two three ; four"}
	for _, in := range inputs {
		once := FormatLabelsForInput(ParseLabels(in))
		twice := FormatLabelsForInput(ParseLabels(once))
		assert.Equal(t, once, twice, "input %q", in)
	}

	normalized := []LabelItem{{Text: "a"}, {Text: "b c"}, {Text: "a"}}
	assert.Equal(t, normalized, ParseLabels(FormatLabelsForInput(normalized)))
}

func TestParseLabels_NeverReturnsBlankText(t *testing.T) {
	for _, l := range ParseLabels(" ;\t; a ;\n;b") {
		assert.NotEmpty(t, strings.TrimSpace(l.Text))
		assert.Equal(t, strings.TrimSpace(l.Text), l.Text)
	}
}
