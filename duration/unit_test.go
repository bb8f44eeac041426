package duration

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUnit(t *testing.T) {
	t.Parallel()

	half, err := NewUnit("half")
	require.NoError(t, err)
	assert.Equal(t, "half", half.GetType())
	assert.Equal(t, 0, half.GetDots())
	assert.Zero(t, big.NewRat(2, 1).Cmp(half.GetQuarterLength()))

	_, err = NewUnit("minim")
	var unknownErr *UnknownTypeError
	require.ErrorAs(t, err, &unknownErr)

	_, err = NewUnitWithDots("half", -1)
	require.Error(t, err)
}

func TestUnitQuarterLengthFromNotation(t *testing.T) {
	t.Parallel()

	// dotted half: 2 * 3/2
	dotted, err := NewUnitWithDots("half", 1)
	require.NoError(t, err)
	assert.Zero(t, big.NewRat(3, 1).Cmp(dotted.GetQuarterLength()))

	// triplet quarter: 1 * 2/3
	quarter, err := NewUnit("quarter")
	require.NoError(t, err)
	trip, err := NewTupletForType(3, 2, "quarter")
	require.NoError(t, err)
	quarter.AppendTuplet(trip)
	assert.Zero(t, big.NewRat(2, 3).Cmp(quarter.GetQuarterLength()))

	// mutating notation invalidates the cached length
	require.NoError(t, dotted.SetDots(2))
	assert.Zero(t, big.NewRat(7, 2).Cmp(dotted.GetQuarterLength()))
	require.NoError(t, dotted.SetType("whole"))
	assert.Zero(t, big.NewRat(7, 1).Cmp(dotted.GetQuarterLength()))
}

func TestUnitNotationFromQuarterLength(t *testing.T) {
	t.Parallel()

	// a notatable length adopts the decomposed notation
	half, err := NewUnitFromQuarterLength(big.NewRat(3, 1))
	require.NoError(t, err)
	assert.Equal(t, "half", half.GetType())
	assert.Equal(t, 1, half.GetDots())

	// a tuplet length adopts the matched tuplet
	trip, err := NewUnitFromQuarterLength(big.NewRat(2, 3))
	require.NoError(t, err)
	assert.Equal(t, "quarter", trip.GetType())
	require.Len(t, trip.GetTuplets(), 1)
	assert.Zero(t, big.NewRat(2, 3).Cmp(trip.GetQuarterLength()))

	// a tied length cannot be one unit
	tied, err := NewUnitFromQuarterLength(big.NewRat(5, 2))
	require.NoError(t, err)
	assert.Equal(t, TypeUnexpressible, tied.GetType())
	assert.Equal(t, 0, tied.GetDots())
	assert.Empty(t, tied.GetTuplets())
	assert.Zero(t, big.NewRat(5, 2).Cmp(tied.GetQuarterLength()))

	_, err = NewUnitFromQuarterLength(big.NewRat(-1, 1))
	var invalidErr *InvalidLengthError
	require.ErrorAs(t, err, &invalidErr)
}

func TestUnitSetQuarterLength(t *testing.T) {
	t.Parallel()

	u, err := NewUnit("quarter")
	require.NoError(t, err)
	require.NoError(t, u.SetQuarterLength(big.NewRat(2, 1)))
	assert.Equal(t, "half", u.GetType())
}

func TestUnitUnlinked(t *testing.T) {
	t.Parallel()

	u, err := NewUnit("breve")
	require.NoError(t, err)
	u.SetLinked(false)
	require.False(t, u.IsLinked())

	// unlinked lengths are independent; the type stays as written
	require.NoError(t, u.SetQuarterLength(big.NewRat(1, 1)))
	assert.Equal(t, "breve", u.GetType())
	assert.Zero(t, big.NewRat(1, 1).Cmp(u.GetQuarterLength()))

	linked, err := NewUnit("breve")
	require.NoError(t, err)
	assert.False(t, u.Equal(linked), "unlinked disagreement must break equality")
}

func TestUnitDotGroups(t *testing.T) {
	t.Parallel()

	u, err := NewUnit("half")
	require.NoError(t, err)
	require.NoError(t, u.SetDotGroups([]int{1, 1}))
	assert.Zero(t, big.NewRat(9, 2).Cmp(u.GetQuarterLength()))

	require.Error(t, u.SetDotGroups([]int{1, -1}))
}

func TestUnitEqual(t *testing.T) {
	t.Parallel()

	a, err := NewUnitWithDots("half", 1)
	require.NoError(t, err)
	b, err := NewUnitWithDots("half", 1)
	require.NoError(t, err)
	c, err := NewUnitWithDots("half", 2)
	require.NoError(t, err)

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
	assert.False(t, a.Equal(nil))
}

func TestUnitCopy(t *testing.T) {
	t.Parallel()

	orig, err := NewUnitWithDots("quarter", 1)
	require.NoError(t, err)
	dup := orig.Copy()
	require.NoError(t, dup.SetDots(2))

	assert.Equal(t, 1, orig.GetDots())
	assert.Equal(t, 2, dup.GetDots())
}

func TestZeroUnit(t *testing.T) {
	t.Parallel()

	z := ZeroUnit()
	assert.True(t, z.IsZero())
	assert.Zero(t, z.GetQuarterLength().Sign())
	assert.Equal(t, TypeZero, z.String())
}

func TestUnitString(t *testing.T) {
	t.Parallel()

	dotted, err := NewUnitWithDots("half", 2)
	require.NoError(t, err)
	assert.Equal(t, "double dotted half", dotted.String())

	quarter, err := NewUnit("quarter")
	require.NoError(t, err)
	trip, err := NewTupletForType(3, 2, "quarter")
	require.NoError(t, err)
	quarter.AppendTuplet(trip)
	assert.Equal(t, "quarter (3:2 quarter)", quarter.String())
}
