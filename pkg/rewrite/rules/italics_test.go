package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yaklabco/rn2md/pkg/rewrite"
)

func TestItalicsRule(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "single pair",
			input: "some //emphasized// text",
			want:  "some _emphasized_ text",
		},
		{
			name:  "two pairs",
			input: "a //b// c //d// e",
			want:  "a _b_ c _d_ e",
		},
		{
			name:  "odd trailing delimiter ignored",
			input: "//one// and // alone",
			want:  "_one_ and // alone",
		},
		{
			name:  "single delimiter untouched",
			input: "half // open",
			want:  "half // open",
		},
		{
			name:  "no delimiters",
			input: "plain text",
			want:  "plain text",
		},
		{
			name:  "pair inside markdown link target suppressed",
			input: "[x](http://a//b)",
			want:  "[x](http://a//b)",
		},
		{
			name:  "scheme slashes of a url suppressed",
			input: "see http://example.com //really//",
			want:  "see http://example.com _really_",
		},
		{
			name:  "pair inside inline code suppressed",
			input: "run `cp //src //dst` now",
			want:  "run `cp //src //dst` now",
		},
		{
			name:  "empty line",
			input: "",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, rewrite.Apply(NewItalicsRule(), tt.input))
		})
	}
}
