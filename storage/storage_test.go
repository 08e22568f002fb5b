package storage

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/solvelab/planlp/constraint"
	"github.com/solvelab/planlp/problem"
	"github.com/stretchr/testify/require"
)

func sample() *problem.Problem {
	p := problem.New(2, 3)
	p.AddConstraint(1, 0, 4, constraint.LE)
	p.AddConstraint(0, 1, 4, constraint.LE)
	p.AddConstraint(1, 0, 0, constraint.GE)
	p.AddConstraint(0, 1, 0, constraint.GE)
	return p
}

func TestSaveLoadRoundTrip(t *testing.T) {
	assert := require.New(t)
	dir := t.TempDir()

	for _, name := range []string{"problem.json", "problem.yaml", "problem.lp"} {
		path := filepath.Join(dir, name)
		assert.NoError(Save(path, sample()), name)

		got, err := Load(path)
		assert.NoError(err, name)

		c1, c2 := got.Objective()
		assert.Equal(2.0, c1, name)
		assert.Equal(3.0, c2, name)
		assert.Empty(cmp.Diff(sample().Constraints(), got.Constraints()), name)
	}
}

func TestUnsupportedExtension(t *testing.T) {
	assert := require.New(t)
	dir := t.TempDir()

	assert.Error(Save(filepath.Join(dir, "problem.txt"), sample()))
	_, err := Load(filepath.Join(dir, "problem.txt"))
	assert.Error(err)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
}

func TestExportLaTeX(t *testing.T) {
	assert := require.New(t)

	var buf bytes.Buffer
	assert.NoError(ExportLaTeX(&buf, sample()))

	out := buf.String()
	assert.Contains(out, `\documentclass{article}`)
	assert.Contains(out, `\usepackage{amsmath}`)
	assert.Contains(out, `f(x_1, x_2) = 2x_1 + 3x_2 \to \max`)
	assert.Contains(out, `1x_1 + 0x_2 \leq 4`)
	assert.Contains(out, `1x_1 + 0x_2 \geq 0`)
	assert.Contains(out, `\end{document}`)
}

func TestExportLaTeXFile(t *testing.T) {
	assert := require.New(t)
	path := filepath.Join(t.TempDir(), "problem.tex")

	assert.NoError(ExportLaTeXFile(path, sample()))
	assert.FileExists(path)
}
