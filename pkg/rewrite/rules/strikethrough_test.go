package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yaklabco/rn2md/pkg/rewrite"
)

func TestStrikethroughRule(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "single pair",
			input: "this is --done-- now",
			want:  "this is ~~done~~ now",
		},
		{
			name:  "two pairs",
			input: "--a-- and --b--",
			want:  "~~a~~ and ~~b~~",
		},
		{
			name:  "odd trailing delimiter ignored",
			input: "--done-- but -- left",
			want:  "~~done~~ but -- left",
		},
		{
			name:  "inside inline code suppressed",
			input: "flag `--verbose --debug` stays",
			want:  "flag `--verbose --debug` stays",
		},
		{
			name:  "no delimiters",
			input: "nothing here",
			want:  "nothing here",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, rewrite.Apply(NewStrikethroughRule(), tt.input))
		})
	}
}
