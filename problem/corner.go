package problem

import (
	"math"

	"github.com/solvelab/planlp/constraint"
)

// detEps is the determinant threshold below which a pair of boundary lines
// is treated as parallel or coincident and skipped.
const detEps = 1e-10

// CornerPoint is a vertex of the feasible region: the intersection of the
// boundary lines of the two constraints whose indices it records. Indices
// are weak references into the Problem's constraint list and go stale when
// the list changes.
type CornerPoint struct {
	X1, X2      float64
	Constraints [2]int
}

// FindCornerPoints enumerates the vertices of the feasible region.
//
// For every pair (i, j) with i < j, it solves the 2×2 system formed by the
// two boundary lines; an intersection is kept only if it is feasible for the
// full constraint set. Pairs are enumerated in lexicographic order and the
// result preserves that order. A vertex where three or more boundaries meet
// appears once per contributing pair; callers wanting geometric uniqueness
// must deduplicate (see plot.Region).
//
// The result replaces the cached corner-point list and is also returned.
func (p *Problem) FindCornerPoints() []CornerPoint {
	n := len(p.constraints)
	corners := make([]CornerPoint, 0, n)

	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			x1, x2, ok := intersect(p.constraints[i], p.constraints[j])
			if !ok {
				continue
			}
			if p.IsFeasible(x1, x2) {
				corners = append(corners, CornerPoint{X1: x1, X2: x2, Constraints: [2]int{i, j}})
			}
		}
	}

	p.corners = corners
	p.dirty = false
	return corners
}

// Corners returns the cached corner-point list and whether it is fresh,
// i.e. no mutation happened since the last FindCornerPoints call.
func (p *Problem) Corners() ([]CornerPoint, bool) {
	return p.corners, !p.dirty
}

// intersect solves
//
//	[a1_i a2_i] [x1]   [b_i]
//	[a1_j a2_j] [x2] = [b_j]
//
// by Cramer's rule. ok is false when the determinant magnitude is below
// detEps (parallel or coincident lines, no unique intersection).
func intersect(ci, cj constraint.Constraint) (x1, x2 float64, ok bool) {
	det := ci.A1*cj.A2 - ci.A2*cj.A1
	if math.Abs(det) < detEps {
		return 0, 0, false
	}
	x1 = (ci.B*cj.A2 - ci.A2*cj.B) / det
	x2 = (ci.A1*cj.B - ci.B*cj.A1) / det
	return x1, x2, true
}
