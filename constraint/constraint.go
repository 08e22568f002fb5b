// Package constraint models a single linear constraint over two variables;
//
//	a1·x1 + a2·x2 {≤,=,≥} b
//
// A Constraint is an immutable value; a Problem owns an ordered list of them.
package constraint

import (
	"fmt"
	"math"
)

// Eps is the numerical tolerance applied to satisfaction tests and to the
// degeneracy checks on coefficients.
const Eps = 1e-10

// Kind is the relation of a constraint: ≤, = or ≥. The set is closed.
type Kind uint8

const (
	LE Kind = iota
	EQ
	GE
)

// glyphs used for display and serialization; the mapping to Kind is 1:1.
var kindGlyphs = [...]string{LE: "≤", EQ: "=", GE: "≥"}

func (k Kind) String() string {
	if int(k) >= len(kindGlyphs) {
		return "unknown"
	}
	return kindGlyphs[k]
}

// MarshalText implements encoding.TextMarshaler; a Kind serializes to its glyph.
func (k Kind) MarshalText() ([]byte, error) {
	if int(k) >= len(kindGlyphs) {
		return nil, fmt.Errorf("unknown constraint kind %d", uint8(k))
	}
	return []byte(kindGlyphs[k]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. Only the three glyphs
// are accepted; anything else is an error.
func (k *Kind) UnmarshalText(text []byte) error {
	for kind, glyph := range kindGlyphs {
		if string(text) == glyph {
			*k = Kind(kind)
			return nil
		}
	}
	return fmt.Errorf("unknown constraint kind %q", string(text))
}

// Constraint is the inequality or equality a1·x1 + a2·x2 {≤,=,≥} b.
type Constraint struct {
	A1, A2, B float64
	Kind      Kind
}

// New returns the constraint a1·x1 + a2·x2 {kind} b.
func New(a1, a2, b float64, kind Kind) Constraint {
	return Constraint{A1: a1, A2: a2, B: b, Kind: kind}
}

// IsSatisfied reports whether (x1, x2) satisfies the constraint within Eps.
func (c Constraint) IsSatisfied(x1, x2 float64) bool {
	return c.IsSatisfiedWithin(x1, x2, Eps)
}

// IsSatisfiedWithin reports whether (x1, x2) satisfies the constraint within
// the given tolerance.
func (c Constraint) IsSatisfiedWithin(x1, x2, eps float64) bool {
	v := c.A1*x1 + c.A2*x2
	switch c.Kind {
	case LE:
		return v <= c.B+eps
	case EQ:
		return math.Abs(v-c.B) <= eps
	default: // GE
		return v >= c.B-eps
	}
}

// IsDegenerate reports whether both coefficients are ≈0; a degenerate
// constraint has no boundary line and contributes no intersection.
func (c Constraint) IsDegenerate() bool {
	return math.Abs(c.A1) < Eps && math.Abs(c.A2) < Eps
}

// BoundaryPoints returns the two endpoints of the boundary line
// a1·x1 + a2·x2 = b clipped to the x1 range [x1Min, x1Max], as parallel
// coordinate slices. Both slices are empty when the constraint is degenerate,
// or when the line is vertical and falls outside the range. The line may
// exit the visible x2 range; clipping in x2 is the caller's concern.
func (c Constraint) BoundaryPoints(x1Min, x1Max float64) (x1s, x2s []float64) {
	if math.Abs(c.A2) < Eps {
		if math.Abs(c.A1) < Eps {
			return nil, nil
		}
		// vertical line x1 = b/a1
		x1 := c.B / c.A1
		if x1 < x1Min || x1 > x1Max {
			return nil, nil
		}
		return []float64{x1, x1}, []float64{x1Min, x1Max}
	}
	return []float64{x1Min, x1Max}, []float64{
		(c.B - c.A1*x1Min) / c.A2,
		(c.B - c.A1*x1Max) / c.A2,
	}
}

func (c Constraint) String() string {
	return fmt.Sprintf("%v·x1 + %v·x2 %s %v", c.A1, c.A2, c.Kind, c.B)
}
