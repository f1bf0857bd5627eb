package layout

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"
)

func TestConstraint_Apply(t *testing.T) {
	type tc struct {
		base     Constraint
		props    LayoutProps
		natural  SizeF
		expected SizeF
	}

	tests := map[string]tc{
		"declared size becomes ideal": {
			base:     Bounded(SizeF{Width: 200, Height: 100}),
			props:    LayoutProps{Width: Px(50), Height: Px(30)},
			natural:  SizeF{Width: 10, Height: 10},
			expected: SizeF{Width: 50, Height: 30},
		},
		"percent resolves against reference": {
			base:     Bounded(SizeF{Width: 200, Height: 100}),
			props:    LayoutProps{Width: Percent(50), Height: Percent(10)},
			expected: SizeF{Width: 100, Height: 10},
		},
		"natural size capped by max": {
			base:     Bounded(SizeF{Width: 200, Height: 100}),
			natural:  SizeF{Width: 300, Height: 20},
			expected: SizeF{Width: 200, Height: 20},
		},
		"min beats declared": {
			base:     Bounded(SizeF{Width: 200, Height: 100}),
			props:    LayoutProps{Width: Px(20), MinWidth: Px(40)},
			expected: SizeF{Width: 40},
		},
		"declared max narrows range": {
			base:     Bounded(SizeF{Width: 200, Height: 100}),
			props:    LayoutProps{MaxWidth: Px(60)},
			natural:  SizeF{Width: 150, Height: 10},
			expected: SizeF{Width: 60, Height: 10},
		},
		"parent ideal wins over declared size": {
			base:     Exact(SizeF{Width: 80, Height: 40}),
			props:    LayoutProps{Width: Px(20), Height: Px(20)},
			expected: SizeF{Width: 80, Height: 40},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got := tt.base.Apply(&tt.props).Resolve(tt.natural)
			if got != tt.expected {
				t.Errorf("Resolve() = %+v, want %+v", got, tt.expected)
			}
		})
	}
}

func TestConstraint_ApplyNilProps(t *testing.T) {
	c := Bounded(SizeF{Width: 10, Height: 10})
	if got := c.Apply(nil); got != c {
		t.Errorf("Apply(nil) = %+v, want %+v", got, c)
	}
}

func TestConstraint_Deflate(t *testing.T) {
	c := Exact(SizeF{Width: 100, Height: 50}).Deflate(EdgeTRBL(5, 10, 5, 10))

	assert.Equal(t, SizeF{Width: 80, Height: 40}, c.MaxSize)
	assert.True(t, c.SelfIdealSize.HasWidth)
	assert.Equal(t, float32(80), c.SelfIdealSize.Width)
	assert.Equal(t, float32(40), c.SelfIdealSize.Height)
}

func TestConstraint_Unbounded(t *testing.T) {
	c := Unbounded()
	assert.True(t, c.MaxSize.IsInfinite())
	if _, ok := Percent(50).Resolve(c.PercentReference.Width); ok {
		t.Error("percent of an unbounded reference resolved")
	}
	assert.Equal(t, float32(12), c.Resolve(SizeF{Width: 12, Height: 3}).Width)
	assert.False(t, math32.IsInf(c.Resolve(SizeF{Width: 12, Height: 3}).Height, 0))
}
