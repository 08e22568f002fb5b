// Package plot computes the geometric primitives a presentation layer draws:
// constraint boundary segments, the feasible-region polygon, objective level
// lines and the gradient arrow. No rendering happens here; everything is
// plain coordinates.
package plot

import (
	"math"
	"sort"

	"github.com/bits-and-blooms/bitset"
	"github.com/solvelab/planlp/constraint"
	"github.com/solvelab/planlp/problem"
)

// Point is a point in problem coordinates.
type Point struct {
	X1, X2 float64
}

// Line is a segment between two points.
type Line struct {
	From, To Point
}

// Window is the visible x1/x2 range lines are clipped against.
type Window struct {
	X1Min, X1Max float64
	X2Min, X2Max float64
}

// ConstraintLines returns one boundary segment per constraint, clipped to
// the window's x1 range. Degenerate constraints and vertical lines outside
// the window produce no segment; the indices of constraints that did are
// returned alongside.
func ConstraintLines(p *problem.Problem, w Window) ([]Line, []int) {
	var lines []Line
	var indices []int
	for i, c := range p.Constraints() {
		x1s, x2s := c.BoundaryPoints(w.X1Min, w.X1Max)
		if len(x1s) != 2 {
			continue
		}
		lines = append(lines, Line{
			From: Point{X1: x1s[0], X2: x2s[0]},
			To:   Point{X1: x1s[1], X2: x2s[1]},
		})
		indices = append(indices, i)
	}
	return lines, indices
}

// LevelLine returns the segment of the objective level line through the
// given point, clipped to the window. ok is false when the gradient is ≈0
// and no level line exists.
func LevelLine(p *problem.Problem, through Point, w Window) (Line, bool) {
	g1, g2 := p.Gradient()
	if math.Abs(g1) < constraint.Eps && math.Abs(g2) < constraint.Eps {
		return Line{}, false
	}

	// c1·x1 + c2·x2 = value
	value := p.ObjectiveValue(through.X1, through.X2)

	if math.Abs(g1) < constraint.Eps {
		// horizontal line x2 = const
		return Line{
			From: Point{X1: w.X1Min, X2: through.X2},
			To:   Point{X1: w.X1Max, X2: through.X2},
		}, true
	}
	if math.Abs(g2) < constraint.Eps {
		// vertical line x1 = const
		return Line{
			From: Point{X1: through.X1, X2: w.X2Min},
			To:   Point{X1: through.X1, X2: w.X2Max},
		}, true
	}

	return Line{
		From: Point{X1: w.X1Min, X2: (value - g1*w.X1Min) / g2},
		To:   Point{X1: w.X1Max, X2: (value - g1*w.X1Max) / g2},
	}, true
}

// GradientArrow returns the segment from at along the unit gradient, scaled
// by scale. ok is false when the gradient is ≈0.
func GradientArrow(p *problem.Problem, at Point, scale float64) (Line, bool) {
	g1, g2 := p.Gradient()
	norm := math.Hypot(g1, g2)
	if norm < constraint.Eps {
		return Line{}, false
	}
	return Line{
		From: at,
		To:   Point{X1: at.X1 + scale*g1/norm, X2: at.X2 + scale*g2/norm},
	}, true
}

// Vertex is a unique feasible-region vertex together with the indices of
// every constraint tight at it, for labeling.
type Vertex struct {
	Point
	Active *bitset.BitSet
}

// Region returns the feasible region's unique vertices in counter-clockwise
// order around their centroid, ready to be drawn as a polygon. Corner points
// coinciding within Eps collapse into one vertex. The cached corner list is
// reused when fresh, recomputed otherwise.
func Region(p *problem.Problem) []Vertex {
	corners, fresh := p.Corners()
	if !fresh {
		corners = p.FindCornerPoints()
	}

	var unique []Point
	for _, c := range corners {
		seen := false
		for _, q := range unique {
			if math.Abs(q.X1-c.X1) <= constraint.Eps && math.Abs(q.X2-c.X2) <= constraint.Eps {
				seen = true
				break
			}
		}
		if !seen {
			unique = append(unique, Point{X1: c.X1, X2: c.X2})
		}
	}
	if len(unique) == 0 {
		return nil
	}

	var cx, cy float64
	for _, q := range unique {
		cx += q.X1
		cy += q.X2
	}
	cx /= float64(len(unique))
	cy /= float64(len(unique))

	sort.SliceStable(unique, func(i, j int) bool {
		return math.Atan2(unique[i].X2-cy, unique[i].X1-cx) < math.Atan2(unique[j].X2-cy, unique[j].X1-cx)
	})

	vertices := make([]Vertex, len(unique))
	for i, q := range unique {
		vertices[i] = Vertex{Point: q, Active: p.ActiveSet(q.X1, q.X2)}
	}
	return vertices
}
