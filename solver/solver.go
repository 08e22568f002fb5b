// Package solver derives the optimum of a two-variable LP from its corner
// points, and offers the boundedness heuristic and initial-point suggestion
// the graphical method needs around it.
package solver

import (
	"errors"
	"math"
	"time"

	"github.com/solvelab/planlp/constraint"
	"github.com/solvelab/planlp/logger"
	"github.com/solvelab/planlp/problem"
)

var (
	// ErrEmptyFeasibleRegion is returned when the problem has no corner
	// points: the feasible region is empty, or has no finite vertex set
	// (the unbounded case included). A normal outcome, not a crash.
	ErrEmptyFeasibleRegion = errors.New("empty feasible region: no corner points")

	// ErrNoFeasiblePoint is returned by SuggestInitialPoint when neither a
	// corner point nor a feasible grid sample exists.
	ErrNoFeasiblePoint = errors.New("no feasible point found")
)

// Solution is the optimum reported by FindOptimalSolution: the maximizing
// vertex, the objective value there, and the indices of the two constraints
// whose boundary lines form the vertex.
type Solution struct {
	X1, X2      float64
	Value       float64
	Constraints [2]int
}

// Solver computes solutions for a Problem. It holds a reference, not a copy;
// mutations of the Problem are visible to subsequent calls.
type Solver struct {
	p *problem.Problem
}

// New returns a Solver over the given problem.
func New(p *problem.Problem) *Solver {
	return &Solver{p: p}
}

// FindOptimalSolution recomputes the corner points and returns the one
// maximizing the objective. Ties are broken by enumeration order: the first
// corner point achieving the maximum wins, so the reported contributing
// constraint pair is stable for degenerate optima.
func (s *Solver) FindOptimalSolution() (Solution, error) {
	log := logger.Logger()
	start := time.Now()

	corners := s.p.FindCornerPoints()
	if len(corners) == 0 {
		return Solution{}, ErrEmptyFeasibleRegion
	}

	best := corners[0]
	bestValue := s.p.ObjectiveValue(best.X1, best.X2)
	for _, c := range corners[1:] {
		if v := s.p.ObjectiveValue(c.X1, c.X2); v > bestValue {
			best, bestValue = c, v
		}
	}

	log.Debug().
		Int("nbCorners", len(corners)).
		Float64("value", bestValue).
		Dur("took", time.Since(start)).
		Msg("solved LP")

	return Solution{
		X1:          best.X1,
		X2:          best.X2,
		Value:       bestValue,
		Constraints: best.Constraints,
	}, nil
}

// IsBounded reports whether the feasible region is bounded, using an
// axis-aligned heuristic: each axis must carry at least one lower and one
// upper bound among the constraints involving that axis alone. The check is
// necessary but not sufficient; a region enclosed by rotated constraints
// only is reported unbounded. That is the intended contract, not a defect.
func (s *Solver) IsBounded() bool {
	var x1Lower, x1Upper, x2Lower, x2Upper bool

	for _, c := range s.p.Constraints() {
		if math.Abs(c.A2) < constraint.Eps {
			lower, upper := axisBounds(c.A1, c.Kind)
			x1Lower = x1Lower || lower
			x1Upper = x1Upper || upper
		}
		if math.Abs(c.A1) < constraint.Eps {
			lower, upper := axisBounds(c.A2, c.Kind)
			x2Lower = x2Lower || lower
			x2Upper = x2Upper || upper
		}
	}

	return x1Lower && x1Upper && x2Lower && x2Upper
}

// axisBounds classifies a single-variable constraint a·x {≤,≥} b as a lower
// or upper bound on x, from the sign of a and the relation kind.
func axisBounds(a float64, kind constraint.Kind) (lower, upper bool) {
	switch {
	case a > 0 && kind == constraint.LE:
		return false, true
	case a > 0 && kind == constraint.GE:
		return true, false
	case a < 0 && kind == constraint.LE:
		return true, false
	case a < 0 && kind == constraint.GE:
		return false, true
	}
	return false, false
}

// gridSize and gridSpan define the fallback probe of SuggestInitialPoint:
// gridSize samples per axis, evenly spaced over [0, gridSpan].
const (
	gridSize = 20
	gridSpan = 10.0
)

// SuggestInitialPoint returns a feasible starting point: the first corner
// point when any exist, otherwise the first feasible sample of a row-major
// 20×20 grid over [0,10]². ErrNoFeasiblePoint when the probe finds nothing.
func (s *Solver) SuggestInitialPoint() (x1, x2 float64, err error) {
	if corners := s.p.FindCornerPoints(); len(corners) > 0 {
		return corners[0].X1, corners[0].X2, nil
	}

	for i := 0; i < gridSize; i++ {
		for j := 0; j < gridSize; j++ {
			x1 := gridSpan * float64(i) / (gridSize - 1)
			x2 := gridSpan * float64(j) / (gridSize - 1)
			if s.p.IsFeasible(x1, x2) {
				return x1, x2, nil
			}
		}
	}

	return 0, 0, ErrNoFeasiblePoint
}
