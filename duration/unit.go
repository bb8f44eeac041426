package duration

import (
	"fmt"
	"math/big"
	"strings"
)

// groundTruth records which side of a unit currently owns its value. The
// other side is recomputed on demand, so the two views can never silently
// drift apart.
type groundTruth int

const (
	// truthNotation means type, dots and tuplets are authoritative and the
	// quarter length is derived.
	truthNotation groundTruth = iota

	// truthQuarterLength means the quarter length is authoritative and the
	// notation is derived by decomposition.
	truthQuarterLength
)

// Unit is the atomic notatable duration: one type, a dot count (or the rare
// dot group) and zero or more tuplets. A single Unit can never represent a
// tie; lengths that need one decompose into a multi-component Duration.
//
// Units are not safe for concurrent mutation; the getters cache the derived
// view on the receiver. Typical usage gives each unit a single owner.
type Unit struct {
	typ       string
	dots      int
	dotGroups []int
	tuplets   []*Tuplet

	// linked ties the quarter length to the notation. When false the quarter
	// length is set independently and the type information goes stale, an
	// escape hatch for non-standard notations.
	linked bool

	truth  groundTruth
	synced bool
	ql     *big.Rat
}

// NewUnit creates a linked unit of the named type with no dots.
func NewUnit(typeName string) (*Unit, error) {
	if !ValidType(typeName) {
		return nil, &UnknownTypeError{Type: typeName}
	}
	return &Unit{typ: typeName, linked: true, truth: truthNotation}, nil
}

// NewUnitWithDots creates a linked unit of the named type with a dot count.
func NewUnitWithDots(typeName string, dots int) (*Unit, error) {
	if dots < 0 {
		return nil, fmt.Errorf("dot count must be non-negative, got %d", dots)
	}
	u, err := NewUnit(typeName)
	if err != nil {
		return nil, err
	}
	u.dots = dots
	return u, nil
}

// NewUnitFromQuarterLength creates a unit whose notation is derived lazily
// from the given quarter length.
func NewUnitFromQuarterLength(ql *big.Rat) (*Unit, error) {
	if ql == nil || ql.Sign() < 0 {
		return nil, &InvalidLengthError{QuarterLength: ql}
	}
	return &Unit{
		linked: true,
		truth:  truthQuarterLength,
		ql:     new(big.Rat).Set(ql),
	}, nil
}

// ZeroUnit returns the zero-duration sentinel unit.
func ZeroUnit() *Unit {
	return &Unit{
		typ:    TypeZero,
		linked: true,
		truth:  truthNotation,
		synced: true,
		ql:     new(big.Rat),
	}
}

// syncNotation derives type, dots and tuplets from the quarter length when
// the quarter length is the ground truth. A length that decomposes into more
// than one component cannot be a single unit and becomes unexpressible.
func (u *Unit) syncNotation() {
	if u.truth != truthQuarterLength || u.synced || !u.linked {
		return
	}
	u.synced = true

	units, err := Decompose(u.ql)
	if err != nil || len(units) != 1 {
		u.typ = TypeUnexpressible
		u.dots = 0
		u.dotGroups = nil
		u.tuplets = nil
		return
	}
	match := units[0]
	u.typ = match.typ
	u.dots = match.dots
	u.dotGroups = match.dotGroups
	u.tuplets = match.tuplets
}

// notationQuarterLength computes table[type] * dot multiplier * tuplet
// multipliers. Only called for types validated at set time.
func (u *Unit) notationQuarterLength() *big.Rat {
	base, err := TypeQuarterLength(u.typ)
	if err != nil {
		return new(big.Rat)
	}
	out := new(big.Rat).Set(base)
	if len(u.dotGroups) > 0 {
		out.Mul(out, dotGroupMultiplier(u.dotGroups))
	} else {
		out.Mul(out, DotMultiplier(u.dots))
	}
	for _, t := range u.tuplets {
		out.Mul(out, t.Multiplier())
	}
	return out
}

// GetType returns the unit's notated type, deriving it from the quarter
// length if needed.
func (u *Unit) GetType() string {
	u.syncNotation()
	return u.typ
}

// GetDots returns the unit's dot count.
func (u *Unit) GetDots() int {
	u.syncNotation()
	return u.dots
}

// GetDotGroups returns the unit's dot groups, if the rare dot-group notation
// is in use.
func (u *Unit) GetDotGroups() []int {
	u.syncNotation()
	return append([]int(nil), u.dotGroups...)
}

// GetTuplets returns the unit's tuplets.
func (u *Unit) GetTuplets() []*Tuplet {
	u.syncNotation()
	return append([]*Tuplet(nil), u.tuplets...)
}

// GetQuarterLength returns the unit's quarter length, recomputing it from the
// notation when the notation is the ground truth and the unit is linked.
func (u *Unit) GetQuarterLength() *big.Rat {
	if u.truth == truthNotation && !u.synced {
		if u.linked {
			u.ql = u.notationQuarterLength()
		} else if u.ql == nil {
			u.ql = new(big.Rat)
		}
		u.synced = true
	}
	return new(big.Rat).Set(u.ql)
}

// SetType replaces the unit's type and makes the notation authoritative.
func (u *Unit) SetType(typeName string) error {
	if !ValidType(typeName) {
		return &UnknownTypeError{Type: typeName}
	}
	u.syncNotation()
	u.typ = typeName
	u.truth = truthNotation
	u.synced = false
	return nil
}

// SetDots replaces the unit's dot count and makes the notation authoritative.
func (u *Unit) SetDots(dots int) error {
	if dots < 0 {
		return fmt.Errorf("dot count must be non-negative, got %d", dots)
	}
	u.syncNotation()
	u.dots = dots
	u.dotGroups = nil
	u.truth = truthNotation
	u.synced = false
	return nil
}

// SetDotGroups replaces the unit's dot groups.
func (u *Unit) SetDotGroups(groups []int) error {
	for _, g := range groups {
		if g < 0 {
			return fmt.Errorf("dot count must be non-negative, got %d", g)
		}
	}
	u.syncNotation()
	u.dotGroups = append([]int(nil), groups...)
	u.truth = truthNotation
	u.synced = false
	return nil
}

// AppendTuplet freezes the tuplet and attaches it to the unit.
func (u *Unit) AppendTuplet(t *Tuplet) {
	u.syncNotation()
	t.Freeze()
	u.tuplets = append(u.tuplets, t)
	u.truth = truthNotation
	u.synced = false
}

// SetTuplets replaces the unit's tuplets, freezing each one.
func (u *Unit) SetTuplets(tuplets []*Tuplet) {
	u.syncNotation()
	for _, t := range tuplets {
		t.Freeze()
	}
	u.tuplets = append([]*Tuplet(nil), tuplets...)
	u.truth = truthNotation
	u.synced = false
}

// SetQuarterLength replaces the unit's quarter length and makes it
// authoritative; the notation is re-derived on the next read.
func (u *Unit) SetQuarterLength(ql *big.Rat) error {
	if ql == nil || ql.Sign() < 0 {
		return &InvalidLengthError{QuarterLength: ql}
	}
	u.ql = new(big.Rat).Set(ql)
	u.truth = truthQuarterLength
	u.synced = false
	return nil
}

// SetLinked ties or unties the quarter length from the notation.
func (u *Unit) SetLinked(linked bool) {
	u.linked = linked
}

// IsLinked reports whether the quarter length is tied to the notation.
func (u *Unit) IsLinked() bool {
	return u.linked
}

// IsZero reports whether this is the zero-duration sentinel.
func (u *Unit) IsZero() bool {
	return u.GetType() == TypeZero
}

// Equal reports whether two units agree on type, dots, tuplets and quarter
// length. The length is checked as well because unlinked units can carry a
// length that disagrees with their notation.
func (u *Unit) Equal(other *Unit) bool {
	if other == nil {
		return false
	}
	if u.GetType() != other.GetType() || u.GetDots() != other.GetDots() {
		return false
	}
	uTuplets, oTuplets := u.GetTuplets(), other.GetTuplets()
	if len(uTuplets) != len(oTuplets) {
		return false
	}
	for i := range uTuplets {
		if !uTuplets[i].Equal(oTuplets[i]) {
			return false
		}
	}
	return u.GetQuarterLength().Cmp(other.GetQuarterLength()) == 0
}

// Copy returns an independent copy of the unit. Attached tuplets are frozen,
// so the copy shares them rather than duplicating.
func (u *Unit) Copy() *Unit {
	out := *u
	if u.ql != nil {
		out.ql = new(big.Rat).Set(u.ql)
	}
	out.dotGroups = append([]int(nil), u.dotGroups...)
	out.tuplets = append([]*Tuplet(nil), u.tuplets...)
	return &out
}

func (u *Unit) String() string {
	name := u.GetType()
	if name == TypeZero || name == TypeUnexpressible {
		return name
	}
	var sb strings.Builder
	sb.WriteString(dotName(u.GetDots()))
	sb.WriteString(name)
	for _, t := range u.GetTuplets() {
		sb.WriteString(fmt.Sprintf(" (%s)", t))
	}
	return sb.String()
}

func dotName(dots int) string {
	switch dots {
	case 0:
		return ""
	case 1:
		return "dotted "
	case 2:
		return "double dotted "
	case 3:
		return "triple dotted "
	default:
		return fmt.Sprintf("%d-dotted ", dots)
	}
}
