package duration

import "math/big"

// QL builds an exact quarter length from a numerator and denominator.
func QL(num, den int64) *big.Rat {
	return big.NewRat(num, den)
}

// QLFromFloat converts a floating point quarter length to an exact rational.
// Floats are a display convenience for callers; the engine itself only works
// on exact values. Returns nil for NaN or infinities.
func QLFromFloat(f float64) *big.Rat {
	return new(big.Rat).SetFloat64(f)
}

// withinTolerance reports whether a and b differ by less than tol.
func withinTolerance(a, b, tol *big.Rat) bool {
	diff := new(big.Rat).Sub(a, b)
	return diff.Abs(diff).Cmp(tol) < 0
}
