// Package parser turns free-text linear expressions into problem inputs.
//
// It is a thin collaborator in front of the core: expressions look like
// "2x1 + 3x2" and constraint lines like "x1 + 2x2 <= 10" (ASCII relations or
// the glyphs ≤, =, ≥). Malformed objectives yield zero coefficients and
// malformed constraint lines are skipped; the core only ever receives
// well-formed numeric tuples.
package parser

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/solvelab/planlp/constraint"
	"github.com/solvelab/planlp/problem"
)

// ParseObjective extracts (c1, c2) from an expression of the form
// "c1*x1 + c2*x2". Missing terms default to zero; a term without an explicit
// coefficient counts as ±1. Any malformed term makes the whole expression
// parse as (0, 0) rather than fail.
func ParseObjective(text string) (c1, c2 float64) {
	c1, c2, err := parseLinear(text)
	if err != nil {
		return 0, 0
	}
	return c1, c2
}

// relations in probe order; "<=" and ">=" must be tried before "=".
var relations = []struct {
	token string
	kind  constraint.Kind
}{
	{"<=", constraint.LE},
	{">=", constraint.GE},
	{"≤", constraint.LE},
	{"≥", constraint.GE},
	{"=", constraint.EQ},
}

// ParseConstraint extracts a constraint from a line of the form
// "a1*x1 + a2*x2 {<=,=,>=} b". An error means the line should be skipped.
func ParseConstraint(text string) (constraint.Constraint, error) {
	for _, rel := range relations {
		left, right, found := strings.Cut(text, rel.token)
		if !found {
			continue
		}

		a1, a2, err := parseLinear(left)
		if err != nil {
			return constraint.Constraint{}, err
		}
		b, err := strconv.ParseFloat(strings.TrimSpace(right), 64)
		if err != nil {
			return constraint.Constraint{}, fmt.Errorf("right-hand side of %q: %w", text, err)
		}
		return constraint.New(a1, a2, b, rel.kind), nil
	}
	return constraint.Constraint{}, fmt.Errorf("no relation (<=, =, >=) in %q", text)
}

// ParseProblem builds a problem from an objective expression and
// newline-separated constraint lines. Empty and malformed lines are skipped.
func ParseProblem(objective, constraints string) *problem.Problem {
	c1, c2 := ParseObjective(objective)
	p := problem.New(c1, c2)

	for _, line := range strings.Split(constraints, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		c, err := ParseConstraint(line)
		if err != nil {
			continue
		}
		p.AddConstraint(c.A1, c.A2, c.B, c.Kind)
	}
	return p
}

// parseLinear extracts the x1 and x2 coefficients from a linear expression.
// Terms without a variable (free constants) are ignored.
func parseLinear(text string) (c1, c2 float64, err error) {
	text = strings.ReplaceAll(text, " ", "")
	text = strings.ReplaceAll(text, "*", "")

	for _, term := range splitTerms(text) {
		switch {
		case strings.Contains(term, "x1"):
			c, err := parseCoefficient(strings.Replace(term, "x1", "", 1))
			if err != nil {
				return 0, 0, err
			}
			c1 = c
		case strings.Contains(term, "x2"):
			c, err := parseCoefficient(strings.Replace(term, "x2", "", 1))
			if err != nil {
				return 0, 0, err
			}
			c2 = c
		}
	}
	return c1, c2, nil
}

// splitTerms splits "2x1-3x2+1" into ["2x1", "-3x2", "+1"], keeping signs
// attached to their terms.
func splitTerms(text string) []string {
	var terms []string
	current := strings.Builder{}
	for i, r := range text {
		if (r == '+' || r == '-') && i > 0 {
			terms = append(terms, current.String())
			current.Reset()
		}
		current.WriteRune(r)
	}
	if current.Len() > 0 {
		terms = append(terms, current.String())
	}
	return terms
}

func parseCoefficient(s string) (float64, error) {
	switch s {
	case "", "+":
		return 1, nil
	case "-":
		return -1, nil
	}
	return strconv.ParseFloat(s, 64)
}
