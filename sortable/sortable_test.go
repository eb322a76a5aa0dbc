package sortable

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInt(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		a    Int
		b    Int
		cmp  int
	}{
		{name: "less", a: 1, b: 2, cmp: -1},
		{name: "equal", a: 7, b: 7, cmp: 0},
		{name: "greater", a: 10, b: -10, cmp: 1},
		{name: "zero values", a: 0, b: 0, cmp: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.cmp, tt.a.Compare(tt.b))
			assert.Equal(t, tt.cmp == 0, tt.a.Equals(tt.b))
			assert.Equal(t, tt.cmp < 0, tt.a.LessThan(tt.b))
			assert.Equal(t, tt.cmp < 0, Less(tt.a, tt.b))
		})
	}
}

func TestByte(t *testing.T) {
	t.Parallel()

	assert.Negative(t, Byte('a').Compare(Byte('b')))
	assert.Zero(t, Byte('z').Compare(Byte('z')))
	assert.Positive(t, Byte(255).Compare(Byte(0)))
	assert.True(t, Byte('a').LessThan(Byte('b')))
	assert.True(t, Byte('q').Equals(Byte('q')))
}

func TestString(t *testing.T) {
	t.Parallel()

	assert.Negative(t, String("apple").Compare(String("banana")))
	assert.Zero(t, String("").Compare(String("")))
	assert.Positive(t, String("b").Compare(String("a")))
	assert.False(t, String("a").Equals(String("A")))
	assert.True(t, String("A").LessThan(String("a")))
}

func TestFloat(t *testing.T) {
	t.Parallel()

	t.Run("ordinary values", func(t *testing.T) {
		t.Parallel()

		assert.Negative(t, Float(1.5).Compare(Float(2.5)))
		assert.Zero(t, Float(3).Compare(Float(3)))
		assert.Positive(t, Float(-1).Compare(Float(-2)))
	})

	t.Run("NaN sorts first and equals itself", func(t *testing.T) {
		t.Parallel()

		nan := Float(math.NaN())

		assert.Negative(t, nan.Compare(Float(math.Inf(-1))))
		assert.True(t, nan.Equals(nan))
		assert.True(t, nan.LessThan(Float(0)))
	})
}

func TestNatural(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		a    Natural
		b    Natural
		cmp  int
	}{
		{name: "numeric runs compare by value", a: "file2", b: "file10", cmp: -1},
		{name: "identical strings", a: "v1.2", b: "v1.2", cmp: 0},
		{name: "plain text", a: "beta", b: "alpha", cmp: 1},
		{name: "numbers alone", a: "100", b: "20", cmp: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.cmp, tt.a.Compare(tt.b))
			assert.Equal(t, -tt.cmp, tt.b.Compare(tt.a))
			assert.Equal(t, tt.cmp == 0, tt.a.Equals(tt.b))
		})
	}
}

func TestNatural_Ambiguous(t *testing.T) {
	t.Parallel()

	a, b := Natural("a01"), Natural("a1")

	assert.Equal(t, -b.Compare(a), a.Compare(b))
	assert.NotZero(t, a.Compare(b))
	assert.Equal(t, a.Compare(b) < 0, a.LessThan(b))
}
