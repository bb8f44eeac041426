package duration

import (
	"fmt"
	"math/big"
)

// InvalidLengthError reports a quarter length the engine refuses to notate:
// negative values, values above two duplex-maxima, or values below the
// smallest defined type.
type InvalidLengthError struct {
	QuarterLength *big.Rat
}

func (e *InvalidLengthError) Error() string {
	if e.QuarterLength == nil {
		return "cannot notate a nil quarter length"
	}
	return fmt.Sprintf("cannot notate quarter length %s", e.QuarterLength.RatString())
}

// UnknownTypeError reports a type name outside the defined table.
type UnknownTypeError struct {
	Type string
}

func (e *UnknownTypeError) Error() string {
	return fmt.Sprintf("unknown duration type %q", e.Type)
}

// ImmutableTupletError reports a mutation attempt on a frozen tuplet.
type ImmutableTupletError struct {
	Op string
}

func (e *ImmutableTupletError) Error() string {
	return fmt.Sprintf("cannot %s: tuplet is frozen", e.Op)
}

// DecompositionOverflowError reports a quarter length that would need more
// tied components than the configured ceiling. Partial holds the components
// produced before the engine gave up.
type DecompositionOverflowError struct {
	QuarterLength *big.Rat
	Partial       []*Unit
	Max           int
}

func (e *DecompositionOverflowError) Error() string {
	return fmt.Sprintf("quarter length %s needs more than %d tied components",
		e.QuarterLength.RatString(), e.Max)
}

// ComplexDurationError reports an attempt to treat a multi-component Duration
// as if it had a single type, dot count or tuplet list.
type ComplexDurationError struct {
	Op         string
	Components int
}

func (e *ComplexDurationError) Error() string {
	return fmt.Sprintf("cannot %s on a duration with %d components: manipulate the components directly",
		e.Op, e.Components)
}
