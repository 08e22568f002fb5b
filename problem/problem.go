// Package problem holds a two-variable linear program: a linear objective
// c1·x1 + c2·x2 to maximize and an ordered list of constraints. It exposes
// the geometric queries the graphical method is built on; the optimum itself
// is derived by the solver package.
package problem

import (
	"math"

	"github.com/bits-and-blooms/bitset"
	"github.com/solvelab/planlp/constraint"
)

// Problem is a two-variable LP. The zero value is usable; New sets the
// objective coefficients.
//
// Problem caches the corner points discovered by the last FindCornerPoints
// call. Any mutation marks the cache stale; Corners reports staleness so
// callers decide when to pay for a recomputation.
type Problem struct {
	c1, c2      float64
	constraints []constraint.Constraint

	corners []CornerPoint
	dirty   bool
}

// New returns a Problem maximizing c1·x1 + c2·x2, with no constraints.
func New(c1, c2 float64) *Problem {
	return &Problem{c1: c1, c2: c2}
}

// SetObjective replaces the objective coefficients.
func (p *Problem) SetObjective(c1, c2 float64) {
	p.c1 = c1
	p.c2 = c2
	p.dirty = true
}

// Objective returns the objective coefficients (c1, c2).
func (p *Problem) Objective() (c1, c2 float64) {
	return p.c1, p.c2
}

// AddConstraint appends the constraint a1·x1 + a2·x2 {kind} b.
func (p *Problem) AddConstraint(a1, a2, b float64, kind constraint.Kind) {
	p.constraints = append(p.constraints, constraint.New(a1, a2, b, kind))
	p.dirty = true
}

// RemoveConstraint removes the constraint at index i. An out-of-range index
// is silently ignored; corner-point references by index become stale either
// way and must be recomputed.
func (p *Problem) RemoveConstraint(i int) {
	if i < 0 || i >= len(p.constraints) {
		return
	}
	p.constraints = append(p.constraints[:i], p.constraints[i+1:]...)
	p.dirty = true
}

// ReplaceConstraints swaps in a whole new constraint list. This is the commit
// operation for hosts that rebuild the list on edits; constraints are copied.
func (p *Problem) ReplaceConstraints(cs []constraint.Constraint) {
	p.constraints = append(p.constraints[:0:0], cs...)
	p.dirty = true
}

// Constraints returns a copy of the constraint list, in insertion order.
func (p *Problem) Constraints() []constraint.Constraint {
	return append([]constraint.Constraint(nil), p.constraints...)
}

// Constraint returns the constraint at index i.
func (p *Problem) Constraint(i int) constraint.Constraint {
	return p.constraints[i]
}

// NbConstraints returns the number of constraints.
func (p *Problem) NbConstraints() int {
	return len(p.constraints)
}

// ObjectiveValue evaluates the objective at (x1, x2).
func (p *Problem) ObjectiveValue(x1, x2 float64) float64 {
	return p.c1*x1 + p.c2*x2
}

// Gradient returns the objective gradient (c1, c2), the direction of
// steepest increase.
func (p *Problem) Gradient() (float64, float64) {
	return p.c1, p.c2
}

// IsFeasible reports whether (x1, x2) satisfies every constraint. An empty
// constraint set is vacuously feasible.
func (p *Problem) IsFeasible(x1, x2 float64) bool {
	for _, c := range p.constraints {
		if !c.IsSatisfied(x1, x2) {
			return false
		}
	}
	return true
}

// ActiveSet returns the indices of the constraints whose boundary line
// passes through (x1, x2), i.e. that hold with equality there. At a vertex
// where more than two boundaries meet, this is the full tight set, not just
// the pair that produced the corner point.
func (p *Problem) ActiveSet(x1, x2 float64) *bitset.BitSet {
	active := bitset.New(uint(len(p.constraints)))
	for i, c := range p.constraints {
		if math.Abs(c.A1*x1+c.A2*x2-c.B) <= constraint.Eps {
			active.Set(uint(i))
		}
	}
	return active
}

// MoveInGradientDirection returns the point one step of the given size away
// from (x1, x2) along the unit gradient, or the unit anti-gradient when
// antiGradient is set. A gradient of norm below Eps moves nothing. The result
// is not checked for feasibility; that is the caller's responsibility.
func (p *Problem) MoveInGradientDirection(x1, x2, step float64, antiGradient bool) (float64, float64) {
	g1, g2 := p.c1, p.c2
	if antiGradient {
		g1, g2 = -g1, -g2
	}

	norm := math.Hypot(g1, g2)
	if norm < constraint.Eps {
		return x1, x2
	}

	return x1 + step*g1/norm, x2 + step*g2/norm
}
