package duration

import (
	"math/big"

	"golang.org/x/exp/slices"
)

// Sentinel type names that sit outside the ordinal table.
const (
	// TypeZero is the type of a zero-length duration.
	TypeZero = "zero"

	// TypeUnexpressible marks a length that cannot be written as a single unit,
	// and is also returned when an ordinal query walks off the end of the table.
	TypeUnexpressible = "unexpressible"

	// TypeComplex is reported by a Duration holding more than one component.
	TypeComplex = "complex"
)

// typeEntry maps a notated type name to its quarter length.
type typeEntry struct {
	name          string
	quarterLength *big.Rat
}

// durationTypes is the closed set of notatable types, ordered by quarter
// length descending. It is initialized once and treated as read-only.
var durationTypes = []typeEntry{
	{"duplex-maxima", big.NewRat(64, 1)},
	{"maxima", big.NewRat(32, 1)},
	{"longa", big.NewRat(16, 1)},
	{"breve", big.NewRat(8, 1)},
	{"whole", big.NewRat(4, 1)},
	{"half", big.NewRat(2, 1)},
	{"quarter", big.NewRat(1, 1)},
	{"eighth", big.NewRat(1, 2)},
	{"16th", big.NewRat(1, 4)},
	{"32nd", big.NewRat(1, 8)},
	{"64th", big.NewRat(1, 16)},
	{"128th", big.NewRat(1, 32)},
	{"256th", big.NewRat(1, 64)},
	{"512th", big.NewRat(1, 128)},
	{"1024th", big.NewRat(1, 256)},
}

// maxNotatableQuarterLength is the hard upper bound for decomposition: twice
// the largest defined type, i.e. two tied duplex-maxima.
var maxNotatableQuarterLength = big.NewRat(128, 1)

// ordinalOf returns the position of a type in the descending table, or -1 for
// names outside the table (including the sentinels).
func ordinalOf(name string) int {
	return slices.IndexFunc(durationTypes, func(e typeEntry) bool {
		return e.name == name
	})
}

// ValidType reports whether name is a notatable type or the zero sentinel.
func ValidType(name string) bool {
	return name == TypeZero || ordinalOf(name) >= 0
}

// TypeQuarterLength returns the quarter length of a notated type.
func TypeQuarterLength(name string) (*big.Rat, error) {
	if name == TypeZero {
		return new(big.Rat), nil
	}
	if i := ordinalOf(name); i >= 0 {
		return new(big.Rat).Set(durationTypes[i].quarterLength), nil
	}
	return nil, &UnknownTypeError{Type: name}
}

// ClosestTypeAtOrBelow returns the type whose quarter length is the largest
// value at or below ql, along with whether the match is exact. Lengths above
// two duplex-maxima or below the smallest defined type cannot be notated.
func ClosestTypeAtOrBelow(ql *big.Rat) (string, bool, error) {
	if ql.Sign() == 0 {
		return TypeZero, true, nil
	}
	if ql.Sign() < 0 || ql.Cmp(maxNotatableQuarterLength) > 0 {
		return "", false, &InvalidLengthError{QuarterLength: ql}
	}
	for _, e := range durationTypes {
		switch e.quarterLength.Cmp(ql) {
		case 0:
			return e.name, true, nil
		case -1:
			return e.name, false, nil
		}
	}
	return "", false, &InvalidLengthError{QuarterLength: ql}
}

// NextLargerType returns the type one ordinal above the given one, or the
// unexpressible sentinel at the top of the range.
func NextLargerType(name string) (string, error) {
	i := ordinalOf(name)
	if i < 0 {
		return "", &UnknownTypeError{Type: name}
	}
	if i == 0 {
		return TypeUnexpressible, nil
	}
	return durationTypes[i-1].name, nil
}

// NextSmallerType returns the type one ordinal below the given one, or the
// unexpressible sentinel at the bottom of the range.
func NextSmallerType(name string) (string, error) {
	i := ordinalOf(name)
	if i < 0 {
		return "", &UnknownTypeError{Type: name}
	}
	if i == len(durationTypes)-1 {
		return TypeUnexpressible, nil
	}
	return durationTypes[i+1].name, nil
}

// DotMultiplier returns the length multiplier for a dot count:
// 1 + 1/2 + 1/4 + ... + 2^-dots. Negative counts are treated as zero.
func DotMultiplier(dots int) *big.Rat {
	if dots < 0 {
		dots = 0
	}
	num := new(big.Int).Lsh(big.NewInt(1), uint(dots)+1)
	num.Sub(num, big.NewInt(1))
	den := new(big.Int).Lsh(big.NewInt(1), uint(dots))
	return new(big.Rat).SetFrac(num, den)
}

// dotGroupMultiplier returns the combined multiplier of a dot group, the rare
// notation where each group of dots applies on top of the previous one.
func dotGroupMultiplier(groups []int) *big.Rat {
	out := big.NewRat(1, 1)
	for _, g := range groups {
		out.Mul(out, DotMultiplier(g))
	}
	return out
}
