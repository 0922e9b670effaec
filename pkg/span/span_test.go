package span

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIntersects(t *testing.T) {
	tests := []struct {
		name string
		a    Span
		b    Span
		want bool
	}{
		{
			name: "overlapping ranges",
			a:    Span{Lo: 0, Hi: 5},
			b:    Span{Lo: 3, Hi: 8},
			want: true,
		},
		{
			name: "disjoint ranges",
			a:    Span{Lo: 0, Hi: 2},
			b:    Span{Lo: 5, Hi: 8},
			want: false,
		},
		{
			name: "touching at endpoint counts",
			a:    Span{Lo: 0, Hi: 3},
			b:    Span{Lo: 3, Hi: 6},
			want: true,
		},
		{
			name: "contained range",
			a:    Span{Lo: 2, Hi: 4},
			b:    Span{Lo: 0, Hi: 10},
			want: true,
		},
		{
			name: "zero-width span at boundary",
			a:    Span{Lo: 3, Hi: 3},
			b:    Span{Lo: 0, Hi: 3},
			want: true,
		},
		{
			name: "zero-width span outside",
			a:    Span{Lo: 7, Hi: 7},
			b:    Span{Lo: 0, Hi: 3},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Intersects(tt.a, tt.b))
			assert.Equal(t, tt.want, Intersects(tt.b, tt.a), "intersection must be symmetric")
		})
	}
}

func TestWholeLine(t *testing.T) {
	assert.Equal(t, Span{Lo: 0, Hi: 5}, WholeLine("hello"))
	assert.Equal(t, Span{Lo: 0, Hi: 0}, WholeLine(""))
}

func TestOf(t *testing.T) {
	s := Span{Lo: 2, Hi: 5}
	assert.Equal(t, "llo", s.Of("hello!"))
	assert.Equal(t, 3, s.Len())
}
