package config

import (
	"math/big"
)

// GetConfig returns the current configuration
func GetConfig() Config {
	val, _ := NewConfig()
	return val
}

// Config represents options that tune the global behavior of the decomposition engine
type Config struct {
	// TupletTolerance is the grain used when testing tuplet candidates against a
	// quarter length. It exists to absorb representation error from callers that
	// pass approximated values (e.g. 0.3333333 instead of an exact 1/3); exact
	// rational input should rarely trip it.
	TupletTolerance *big.Rat

	// RemainderEpsilon is the grain below which a tied remainder is discarded as
	// rounding noise. The default is the quarter length of the smallest notatable
	// type (a 1024th note).
	RemainderEpsilon *big.Rat

	// MaxDots is the largest dot count searched for a dotted match
	MaxDots int

	// MaxComponents bounds how many tied components a single quarter length may
	// decompose into before the engine gives up
	MaxComponents int
}

// Create a new Config object with reasonable defaults for real usage
func NewConfig() (Config, error) {
	return Config{
		TupletTolerance:  big.NewRat(1, 100000),
		RemainderEpsilon: big.NewRat(1, 256),
		MaxDots:          4,
		MaxComponents:    6,
	}, nil
}
