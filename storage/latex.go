package storage

import (
	"fmt"
	"io"
	"os"

	"github.com/solvelab/planlp/constraint"
	"github.com/solvelab/planlp/problem"
)

var latexRelations = map[constraint.Kind]string{
	constraint.LE: `\leq`,
	constraint.EQ: `=`,
	constraint.GE: `\geq`,
}

// ExportLaTeX writes the problem as a standalone amsmath document: the
// objective as an equation, the constraints as an align block.
func ExportLaTeX(w io.Writer, p *problem.Problem) error {
	c1, c2 := p.Objective()
	cs := p.Constraints()

	var err error
	write := func(format string, args ...interface{}) {
		if err == nil {
			_, err = fmt.Fprintf(w, format, args...)
		}
	}

	write("\\documentclass{article}\n")
	write("\\usepackage{amsmath}\n")
	write("\\begin{document}\n\n")

	write("\\section*{Linear programming problem}\n\n")
	write("\\subsection*{Objective function}\n\n")
	write("\\begin{equation}\n")
	write("f(x_1, x_2) = %vx_1 + %vx_2 \\to \\max\n", c1, c2)
	write("\\end{equation}\n\n")

	if len(cs) > 0 {
		write("\\subsection*{Constraints}\n\n")
		write("\\begin{align}\n")
		for i, c := range cs {
			write("%vx_1 + %vx_2 %s %v", c.A1, c.A2, latexRelations[c.Kind], c.B)
			if i < len(cs)-1 {
				write(" \\\\\n")
			} else {
				write("\n")
			}
		}
		write("\\end{align}\n\n")
	}

	write("\\end{document}\n")
	return err
}

// ExportLaTeXFile writes the LaTeX export to path.
func ExportLaTeXFile(path string, p *problem.Problem) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return ExportLaTeX(f, p)
}
