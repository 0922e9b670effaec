package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yaklabco/rn2md/pkg/rewrite"
)

func TestImageRule(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "jpg image",
			input: `[""file:///pics/cat"".jpg]`,
			want:  `![](file:///pics/cat.jpg)`,
		},
		{
			name:  "png image in text",
			input: `before [""file://shot"".png] after`,
			want:  `before ![](file://shot.png) after`,
		},
		{
			name:  "gif and tif",
			input: `[""file://a"".gif] [""file://b"".tif]`,
			want:  `![](file://a.gif) ![](file://b.tif)`,
		},
		{
			name:  "unsupported extension untouched",
			input: `[""file://doc"".pdf]`,
			want:  `[""file://doc"".pdf]`,
		},
		{
			name:  "non-file scheme untouched",
			input: `[""http://pic"".jpg]`,
			want:  `[""http://pic"".jpg]`,
		},
		{
			name:  "no image",
			input: "nothing to embed",
			want:  "nothing to embed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, rewrite.Apply(NewImageRule(), tt.input))
		})
	}
}
