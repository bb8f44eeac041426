package duration

import (
	"fmt"
	"math/big"
)

// Placement values for where a tuplet bracket begins and ends.
const (
	TupletStart = "start"
	TupletStop  = "stop"
)

// Tuplet expresses a notation ratio: numberNotesActual notes are played in
// the time normally occupied by numberNotesNormal notes of a base duration.
// Once a tuplet has been attached to a Unit it is frozen: the ratio and base
// durations can no longer change, so multiple units (and concurrent readers)
// may safely share one instance.
type Tuplet struct {
	numberNotesActual int
	numberNotesNormal int
	durationActual    *Unit
	durationNormal    *Unit
	placement         string
	frozen            bool
}

// NewTuplet creates a tuplet ratio over the conventional eighth-note bases.
func NewTuplet(actual, normal int) (*Tuplet, error) {
	return NewTupletForType(actual, normal, "eighth")
}

// NewTupletForType creates a tuplet ratio where both base durations are the
// named type.
func NewTupletForType(actual, normal int, typeName string) (*Tuplet, error) {
	if actual < 1 || normal < 1 {
		return nil, fmt.Errorf("tuplet ratio must be positive, got %d:%d", actual, normal)
	}
	durActual, err := NewUnit(typeName)
	if err != nil {
		return nil, err
	}
	durNormal, err := NewUnit(typeName)
	if err != nil {
		return nil, err
	}
	// warm the base length caches so a frozen tuplet is read-only and can be
	// shared across units without copying
	durActual.GetQuarterLength()
	durNormal.GetQuarterLength()
	return &Tuplet{
		numberNotesActual: actual,
		numberNotesNormal: normal,
		durationActual:    durActual,
		durationNormal:    durNormal,
	}, nil
}

// GetRatio returns the actual and normal note counts.
func (t *Tuplet) GetRatio() (int, int) {
	return t.numberNotesActual, t.numberNotesNormal
}

// Multiplier returns the scaling a unit of this tuplet applies to its written
// duration: (normal notes * normal length) / (actual notes * actual length).
func (t *Tuplet) Multiplier() *big.Rat {
	normal := new(big.Rat).Mul(big.NewRat(int64(t.numberNotesNormal), 1), t.durationNormal.GetQuarterLength())
	actual := new(big.Rat).Mul(big.NewRat(int64(t.numberNotesActual), 1), t.durationActual.GetQuarterLength())
	return normal.Quo(normal, actual)
}

// TotalLength returns the quarter length the whole tuplet group occupies:
// the normal note count times the normal base duration.
func (t *Tuplet) TotalLength() *big.Rat {
	return new(big.Rat).Mul(big.NewRat(int64(t.numberNotesNormal), 1), t.durationNormal.GetQuarterLength())
}

// SetRatio replaces the actual and normal note counts.
func (t *Tuplet) SetRatio(actual, normal int) error {
	if t.frozen {
		return &ImmutableTupletError{Op: "set ratio"}
	}
	if actual < 1 || normal < 1 {
		return fmt.Errorf("tuplet ratio must be positive, got %d:%d", actual, normal)
	}
	t.numberNotesActual = actual
	t.numberNotesNormal = normal
	return nil
}

// SetDurationType replaces both base durations with the named type.
func (t *Tuplet) SetDurationType(typeName string) error {
	if t.frozen {
		return &ImmutableTupletError{Op: "set duration type"}
	}
	durActual, err := NewUnit(typeName)
	if err != nil {
		return err
	}
	durNormal, err := NewUnit(typeName)
	if err != nil {
		return err
	}
	durActual.GetQuarterLength()
	durNormal.GetQuarterLength()
	t.durationActual = durActual
	t.durationNormal = durNormal
	return nil
}

// GetPlacement returns where this tuplet sits in its bracket ("start",
// "stop", or empty for a middle member).
func (t *Tuplet) GetPlacement() string {
	return t.placement
}

// SetPlacement marks this tuplet as the start or stop of its bracket.
// Placement is presentation state, not part of the frozen ratio, so it stays
// settable after attachment.
func (t *Tuplet) SetPlacement(placement string) error {
	switch placement {
	case "", TupletStart, TupletStop:
		t.placement = placement
		return nil
	default:
		return fmt.Errorf("unknown tuplet placement %q", placement)
	}
}

// Freeze makes the ratio and base durations immutable.
func (t *Tuplet) Freeze() {
	t.frozen = true
}

// IsFrozen reports whether the tuplet has been frozen.
func (t *Tuplet) IsFrozen() bool {
	return t.frozen
}

// Equal reports whether two tuplets carry the same ratio, base durations and
// placement.
func (t *Tuplet) Equal(other *Tuplet) bool {
	if other == nil {
		return false
	}
	return t.numberNotesActual == other.numberNotesActual &&
		t.numberNotesNormal == other.numberNotesNormal &&
		t.placement == other.placement &&
		t.durationActual.Equal(other.durationActual) &&
		t.durationNormal.Equal(other.durationNormal)
}

func (t *Tuplet) String() string {
	return fmt.Sprintf("%d:%d %s", t.numberNotesActual, t.numberNotesNormal, t.durationNormal.GetType())
}
