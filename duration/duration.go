package duration

import (
	"fmt"
	"math/big"
	"strings"
)

// Duration is an ordered sequence of notatable units, the composite view a
// note holds. A Duration owns its components exclusively: constructors and
// mutators copy incoming units so that no two Durations share one.
type Duration struct {
	components []*Unit
}

// NewDuration creates a Duration with the conventional default of a single
// quarter note.
func NewDuration() *Duration {
	unit, err := NewUnit("quarter")
	if err != nil {
		panic(err)
	}
	return &Duration{components: []*Unit{unit}}
}

// NewDurationFromType creates a single-component Duration of the named type.
func NewDurationFromType(typeName string) (*Duration, error) {
	unit, err := NewUnit(typeName)
	if err != nil {
		return nil, err
	}
	return &Duration{components: []*Unit{unit}}, nil
}

// NewDurationFromQuarterLength creates a Duration by decomposing the given
// quarter length.
func NewDurationFromQuarterLength(ql *big.Rat) (*Duration, error) {
	d := &Duration{}
	if err := d.SetQuarterLength(ql); err != nil {
		return nil, err
	}
	return d, nil
}

// NewDurationFromComponents creates a Duration holding copies of the given
// units.
func NewDurationFromComponents(units []*Unit) *Duration {
	d := &Duration{}
	d.SetComponents(units)
	return d
}

// GetQuarterLength returns the sum of the component lengths. The sum is
// always authoritative, even after direct component manipulation.
func (d *Duration) GetQuarterLength() *big.Rat {
	total := new(big.Rat)
	for _, u := range d.components {
		total.Add(total, u.GetQuarterLength())
	}
	return total
}

// SetQuarterLength decomposes ql and replaces the component structure with
// the result, discarding any prior structure.
func (d *Duration) SetQuarterLength(ql *big.Rat) error {
	units, err := Decompose(ql)
	if err != nil {
		return err
	}
	d.components = units
	return nil
}

// GetType returns "zero" for an empty Duration, the single component's type,
// or "complex" when there is more than one component.
func (d *Duration) GetType() string {
	switch len(d.components) {
	case 0:
		return TypeZero
	case 1:
		return d.components[0].GetType()
	default:
		return TypeComplex
	}
}

// GetDots returns the dot count of the single component.
func (d *Duration) GetDots() (int, error) {
	if len(d.components) != 1 {
		return 0, &ComplexDurationError{Op: "read dots", Components: len(d.components)}
	}
	return d.components[0].GetDots(), nil
}

// GetTuplets returns the tuplets of the single component.
func (d *Duration) GetTuplets() ([]*Tuplet, error) {
	if len(d.components) != 1 {
		return nil, &ComplexDurationError{Op: "read tuplets", Components: len(d.components)}
	}
	return d.components[0].GetTuplets(), nil
}

// SetType sets the type of the single component, creating one on an empty
// Duration.
func (d *Duration) SetType(typeName string) error {
	switch len(d.components) {
	case 0:
		unit, err := NewUnit(typeName)
		if err != nil {
			return err
		}
		d.components = []*Unit{unit}
		return nil
	case 1:
		return d.components[0].SetType(typeName)
	default:
		return &ComplexDurationError{Op: "set type", Components: len(d.components)}
	}
}

// SetDots sets the dot count of the single component.
func (d *Duration) SetDots(dots int) error {
	if len(d.components) != 1 {
		return &ComplexDurationError{Op: "set dots", Components: len(d.components)}
	}
	return d.components[0].SetDots(dots)
}

// SetTuplets replaces the tuplets of the single component, freezing each one.
func (d *Duration) SetTuplets(tuplets []*Tuplet) error {
	if len(d.components) != 1 {
		return &ComplexDurationError{Op: "set tuplets", Components: len(d.components)}
	}
	d.components[0].SetTuplets(tuplets)
	return nil
}

// GetComponents returns copies of the component units.
func (d *Duration) GetComponents() []*Unit {
	out := make([]*Unit, len(d.components))
	for i, u := range d.components {
		out[i] = u.Copy()
	}
	return out
}

// SetComponents replaces the component list with copies of the given units.
// Keeping the sum invariant is now the caller's concern: the quarter length
// is recomputed from the components on the next read.
func (d *Duration) SetComponents(units []*Unit) {
	d.components = make([]*Unit, len(units))
	for i, u := range units {
		d.components[i] = u.Copy()
	}
}

// NumComponents returns the number of component units.
func (d *Duration) NumComponents() int {
	return len(d.components)
}

// AddDurationUnit appends a copy of the unit to the component list.
func (d *Duration) AddDurationUnit(u *Unit) {
	d.components = append(d.components, u.Copy())
}

// AddDuration appends copies of another Duration's components.
func (d *Duration) AddDuration(other *Duration) {
	for _, u := range other.components {
		d.components = append(d.components, u.Copy())
	}
}

// AugmentOrDiminish scales the total quarter length by a positive scalar and
// re-decomposes. The components are never scaled individually, since scaling
// changes which types match exactly. With inPlace false the receiver is left
// untouched and a scaled copy is returned.
func (d *Duration) AugmentOrDiminish(scalar *big.Rat, inPlace bool) (*Duration, error) {
	if scalar == nil || scalar.Sign() <= 0 {
		return nil, fmt.Errorf("augment/diminish scalar must be positive, got %v", scalar)
	}
	target := d
	if !inPlace {
		target = d.Copy()
	}
	scaled := new(big.Rat).Mul(d.GetQuarterLength(), scalar)
	if err := target.SetQuarterLength(scaled); err != nil {
		return nil, err
	}
	return target, nil
}

// Consolidate re-decomposes the Duration from its summed quarter length
// alone. This is lossy: a deliberate choice of where a tie was split is
// replaced by the engine's canonical split.
func (d *Duration) Consolidate() error {
	return d.SetQuarterLength(d.GetQuarterLength())
}

// Expand partitions the Duration across bar lines by carving off chunks of
// the target quarter length (a whole note when target is nil). Each chunk and
// the final remainder are decomposed independently.
func (d *Duration) Expand(target *big.Rat) ([]*Duration, error) {
	if target == nil {
		target = big.NewRat(4, 1)
	}
	if target.Sign() <= 0 {
		return nil, fmt.Errorf("expansion target must be positive, got %s", target.RatString())
	}

	var out []*Duration
	remaining := d.GetQuarterLength()
	for remaining.Cmp(target) >= 0 {
		chunk, err := NewDurationFromQuarterLength(target)
		if err != nil {
			return nil, err
		}
		out = append(out, chunk)
		remaining = new(big.Rat).Sub(remaining, target)
	}
	if remaining.Sign() > 0 || len(out) == 0 {
		tail, err := NewDurationFromQuarterLength(remaining)
		if err != nil {
			return nil, err
		}
		out = append(out, tail)
	}
	return out, nil
}

// Copy returns an independent copy of the Duration.
func (d *Duration) Copy() *Duration {
	return NewDurationFromComponents(d.components)
}

func (d *Duration) String() string {
	if len(d.components) == 0 {
		return TypeZero
	}
	parts := make([]string, len(d.components))
	for i, u := range d.components {
		parts[i] = u.String()
	}
	return strings.Join(parts, " tied to ")
}
