// Package planlp solves two-variable linear programming problems by the
// graphical method: corner-point enumeration over pairwise constraint-line
// intersections, feasibility filtering and objective maximization.
//
// The packages of interest are:
//   - constraint: a single linear inequality/equality over (x1, x2)
//   - problem: objective + ordered constraint set, corner-point enumeration
//   - solver: optimal vertex, boundedness heuristic, initial-point suggestion
//   - parser, encoding, storage, plot: collaborators around the core
package planlp

import (
	"github.com/blang/semver/v4"
)

var Version = semver.MustParse("0.2.1")
