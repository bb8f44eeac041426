package duration

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTypeQuarterLength(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		want *big.Rat
	}{
		{"duplex-maxima", big.NewRat(64, 1)},
		{"whole", big.NewRat(4, 1)},
		{"quarter", big.NewRat(1, 1)},
		{"eighth", big.NewRat(1, 2)},
		{"1024th", big.NewRat(1, 256)},
		{"zero", big.NewRat(0, 1)},
	}
	for _, tc := range tests {
		ql, err := TypeQuarterLength(tc.name)
		require.NoError(t, err)
		assert.Zero(t, tc.want.Cmp(ql), "type %s", tc.name)
	}

	_, err := TypeQuarterLength("hemidemisemiquaver")
	var unknownErr *UnknownTypeError
	require.ErrorAs(t, err, &unknownErr)
}

func TestClosestTypeAtOrBelow(t *testing.T) {
	t.Parallel()

	tests := []struct {
		ql       *big.Rat
		wantType string
		exact    bool
	}{
		{big.NewRat(2, 1), "half", true},
		{big.NewRat(5, 2), "half", false},
		{big.NewRat(64, 1), "duplex-maxima", true},
		{big.NewRat(100, 1), "duplex-maxima", false},
		{big.NewRat(1, 256), "1024th", true},
		{big.NewRat(2, 3), "eighth", false},
		{big.NewRat(0, 1), TypeZero, true},
	}
	for _, tc := range tests {
		gotType, exact, err := ClosestTypeAtOrBelow(tc.ql)
		require.NoError(t, err, "ql %s", tc.ql.RatString())
		assert.Equal(t, tc.wantType, gotType)
		assert.Equal(t, tc.exact, exact)
	}
}

func TestClosestTypeOutOfRange(t *testing.T) {
	t.Parallel()

	var invalidErr *InvalidLengthError

	// above twice the largest type
	_, _, err := ClosestTypeAtOrBelow(big.NewRat(129, 1))
	require.ErrorAs(t, err, &invalidErr)

	// below the smallest type
	_, _, err = ClosestTypeAtOrBelow(big.NewRat(1, 512))
	require.ErrorAs(t, err, &invalidErr)

	// negative
	_, _, err = ClosestTypeAtOrBelow(big.NewRat(-1, 1))
	require.ErrorAs(t, err, &invalidErr)
}

func TestNextLargerType(t *testing.T) {
	t.Parallel()

	larger, err := NextLargerType("quarter")
	require.NoError(t, err)
	assert.Equal(t, "half", larger)

	larger, err = NextLargerType("duplex-maxima")
	require.NoError(t, err)
	assert.Equal(t, TypeUnexpressible, larger)

	_, err = NextLargerType("bogus")
	var unknownErr *UnknownTypeError
	require.ErrorAs(t, err, &unknownErr)
}

func TestNextSmallerType(t *testing.T) {
	t.Parallel()

	smaller, err := NextSmallerType("quarter")
	require.NoError(t, err)
	assert.Equal(t, "eighth", smaller)

	smaller, err = NextSmallerType("1024th")
	require.NoError(t, err)
	assert.Equal(t, TypeUnexpressible, smaller)
}

func TestDotMultiplier(t *testing.T) {
	t.Parallel()

	tests := []struct {
		dots int
		want *big.Rat
	}{
		{0, big.NewRat(1, 1)},
		{1, big.NewRat(3, 2)},
		{2, big.NewRat(7, 4)},
		{3, big.NewRat(15, 8)},
		{4, big.NewRat(31, 16)},
	}
	for _, tc := range tests {
		assert.Zero(t, tc.want.Cmp(DotMultiplier(tc.dots)), "dots %d", tc.dots)
	}
}

// The multiplier must grow with every added dot but never reach a doubling.
func TestDotMultiplierMonotonic(t *testing.T) {
	t.Parallel()

	two := big.NewRat(2, 1)
	prev := big.NewRat(0, 1)
	for dots := 0; dots <= 10; dots++ {
		m := DotMultiplier(dots)
		require.Equal(t, 1, m.Cmp(prev), "dots %d", dots)
		require.Equal(t, -1, m.Cmp(two), "dots %d", dots)
		prev = m
	}
}

func TestDotGroupMultiplier(t *testing.T) {
	t.Parallel()

	// medieval shorthand: two groups of one dot each compound to 9/4
	got := dotGroupMultiplier([]int{1, 1})
	assert.Zero(t, big.NewRat(9, 4).Cmp(got))
}

func TestValidType(t *testing.T) {
	t.Parallel()

	assert.True(t, ValidType("breve"))
	assert.True(t, ValidType(TypeZero))
	assert.False(t, ValidType(TypeComplex))
	assert.False(t, ValidType(TypeUnexpressible))
	assert.False(t, ValidType("crotchet"))
}
