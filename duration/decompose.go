package duration

import (
	"math/big"

	"github.com/sirupsen/logrus"

	"github.com/cuthbertLab/quaver/config"
	"github.com/cuthbertLab/quaver/logger"
)

// tupletNumerators are the ratios searched when matching tuplet candidates.
// Nested and dotted tuplets are not searched directly; the lengths they cover
// are reached by the tied-remainder loop instead.
var tupletNumerators = []int{3, 5, 7, 11, 13}

// Decomposer turns arbitrary rational quarter lengths into sequences of
// notatable units. It holds no mutable state, so one instance is safe to use
// from multiple goroutines.
type Decomposer struct {
	cfg config.Config
	log *logrus.Entry
}

// NewDecomposer creates a Decomposer with the given engine configuration.
func NewDecomposer(cfg config.Config) *Decomposer {
	return &Decomposer{
		cfg: cfg,
		log: logger.GetProjectLogger(),
	}
}

var defaultEngine = NewDecomposer(config.GetConfig())

// Decompose runs the engine with the default configuration.
func Decompose(ql *big.Rat) ([]*Unit, error) {
	return defaultEngine.Decompose(ql)
}

// Decompose produces the shortest sequence of notatable units whose lengths
// sum to ql. Matching proceeds cheapest first: exact type, then dotted type,
// then tuplet, because each successive form can notate more lengths but reads
// heavier on the page. Anything else becomes a tied sequence, bounded by the
// configured component ceiling.
func (d *Decomposer) Decompose(ql *big.Rat) ([]*Unit, error) {
	if ql == nil || ql.Sign() < 0 {
		return nil, &InvalidLengthError{QuarterLength: ql}
	}
	if ql.Sign() == 0 {
		return []*Unit{ZeroUnit()}, nil
	}

	var units []*Unit
	remaining := new(big.Rat).Set(ql)

	for {
		typeName, exact, err := ClosestTypeAtOrBelow(remaining)
		if err != nil {
			return nil, err
		}

		if exact {
			unit, err := NewUnit(typeName)
			if err != nil {
				return nil, err
			}
			return append(units, unit), nil
		}

		if dots, dottedType, ok := d.MatchDotted(remaining); ok {
			unit, err := NewUnitWithDots(dottedType, dots)
			if err != nil {
				return nil, err
			}
			return append(units, unit), nil
		}

		// A tuplet divides a larger unit into smaller pieces, so the search
		// base is one notch above the closest type. At the top of the table
		// there is no larger type to divide.
		if larger, _ := NextLargerType(typeName); larger != TypeUnexpressible {
			if matches := d.matchTupletForTypes(remaining, 1, []string{larger}); len(matches) > 0 {
				unit, err := NewUnit(larger)
				if err != nil {
					return nil, err
				}
				unit.AppendTuplet(matches[0])
				d.log.Debugf("Matched tuplet %s for quarter length %s", matches[0], remaining.RatString())
				return append(units, unit), nil
			}
		}

		// Nothing notates this length as one unit: tie off the largest type
		// that fits and keep going with the remainder.
		head, err := NewUnit(typeName)
		if err != nil {
			return nil, err
		}
		units = append(units, head)

		headQL, err := TypeQuarterLength(typeName)
		if err != nil {
			return nil, err
		}
		remaining = new(big.Rat).Sub(remaining, headQL)
		if remaining.Sign() < 0 {
			// ClosestTypeAtOrBelow guarantees the head never exceeds the
			// remaining length.
			panic("duration: tied component exceeds the remaining length")
		}
		if remaining.Cmp(d.cfg.RemainderEpsilon) < 0 {
			if remaining.Sign() > 0 {
				d.log.Debugf("Discarding sub-grain remainder %s while decomposing %s",
					remaining.RatString(), ql.RatString())
			}
			return units, nil
		}
		if len(units) >= d.cfg.MaxComponents {
			return nil, &DecompositionOverflowError{
				QuarterLength: new(big.Rat).Set(ql),
				Partial:       units,
				Max:           d.cfg.MaxComponents,
			}
		}
	}
}

// MatchDotted searches dot counts from zero up to the configured maximum for
// a dotted type whose length equals ql exactly. The smallest dot count wins.
func (d *Decomposer) MatchDotted(ql *big.Rat) (int, string, bool) {
	for dots := 0; dots <= d.cfg.MaxDots; dots++ {
		base := new(big.Rat).Quo(ql, DotMultiplier(dots))
		typeName, exact, err := ClosestTypeAtOrBelow(base)
		if err == nil && exact && typeName != TypeZero {
			return dots, typeName, true
		}
	}
	return 0, "", false
}

// MatchTuplet returns up to maxResults tuplet candidates that reproduce ql
// within the configured tolerance, smallest base type first so the smallest
// notatable unit wins ties.
func (d *Decomposer) MatchTuplet(ql *big.Rat, maxResults int) []*Tuplet {
	return d.matchTupletForTypes(ql, maxResults, nil)
}

// matchTupletForTypes runs the bounded tuplet search over the given base
// types, or over the whole table (smallest first) when none are given.
func (d *Decomposer) matchTupletForTypes(ql *big.Rat, maxResults int, typeNames []string) []*Tuplet {
	if len(typeNames) == 0 {
		typeNames = make([]string, 0, len(durationTypes))
		for i := len(durationTypes) - 1; i >= 0; i-- {
			typeNames = append(typeNames, durationTypes[i].name)
		}
	}

	var out []*Tuplet
	for _, typeName := range typeNames {
		base, err := TypeQuarterLength(typeName)
		if err != nil {
			continue
		}
		for _, numerator := range tupletNumerators {
			for m := 1; m < numerator; m++ {
				candidate := new(big.Rat).Mul(base, big.NewRat(int64(m), int64(numerator)))
				if !withinTolerance(candidate, ql, d.cfg.TupletTolerance) {
					continue
				}
				t, err := NewTupletForType(numerator, m, typeName)
				if err != nil {
					continue
				}
				out = append(out, t)
				if len(out) >= maxResults {
					return out
				}
			}
		}
	}
	return out
}
