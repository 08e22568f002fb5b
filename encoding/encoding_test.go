package encoding

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/solvelab/planlp/constraint"
	"github.com/solvelab/planlp/problem"
	"github.com/stretchr/testify/require"
)

// sameProblem compares objective coefficients and the ordered constraint
// tuples of two problems.
func sameProblem(a, b *problem.Problem) bool {
	ac1, ac2 := a.Objective()
	bc1, bc2 := b.Objective()
	return ac1 == bc1 && ac2 == bc2 && cmp.Equal(a.Constraints(), b.Constraints())
}

func sample() *problem.Problem {
	p := problem.New(2, 3)
	p.AddConstraint(1, 0, 4, constraint.LE)
	p.AddConstraint(0, 1, 4, constraint.LE)
	p.AddConstraint(1.5, -2.25, 0, constraint.EQ)
	p.AddConstraint(0, 1, 0, constraint.GE)
	return p
}

func TestRoundTrip(t *testing.T) {
	assert := require.New(t)

	codecs := []struct {
		name   string
		encode func(io.Writer, *problem.Problem) error
		decode func(io.Reader) (*problem.Problem, error)
	}{
		{"cbor", Serialize, Deserialize},
		{"json", EncodeJSON, DecodeJSON},
		{"yaml", EncodeYAML, DecodeYAML},
	}

	for _, codec := range codecs {
		var buf bytes.Buffer
		assert.NoError(codec.encode(&buf, sample()), codec.name)

		got, err := codec.decode(&buf)
		assert.NoError(err, codec.name)
		assert.True(sameProblem(sample(), got), codec.name)
	}
}

func TestRoundTripProperty(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100

	kinds := []constraint.Kind{constraint.LE, constraint.EQ, constraint.GE}

	properties := gopter.NewProperties(parameters)
	properties.Property("deserialize(serialize(problem)) == problem", prop.ForAll(
		func(c1, c2, a1, a2, b float64, kindIdx uint8) bool {
			p := problem.New(c1, c2)
			p.AddConstraint(a1, a2, b, kinds[int(kindIdx)%len(kinds)])

			var buf bytes.Buffer
			if err := Serialize(&buf, p); err != nil {
				return false
			}
			got, err := Deserialize(&buf)
			return err == nil && sameProblem(p, got)
		},
		gen.Float64Range(-1e6, 1e6),
		gen.Float64Range(-1e6, 1e6),
		gen.Float64Range(-1e6, 1e6),
		gen.Float64Range(-1e6, 1e6),
		gen.Float64Range(-1e6, 1e6),
		gen.UInt8(),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}

func TestJSONLayout(t *testing.T) {
	assert := require.New(t)

	var buf bytes.Buffer
	assert.NoError(EncodeJSON(&buf, sample()))

	out := buf.String()
	assert.Contains(out, `"c1": 2`)
	assert.Contains(out, `"c2": 3`)
	assert.Contains(out, `"kind": "≤"`)
	assert.Contains(out, `"kind": "="`)
	assert.Contains(out, `"kind": "≥"`)
}

func TestDecodeRejectsUnknownGlyph(t *testing.T) {
	in := `{"version":"0.2.1","c1":1,"c2":1,"constraints":[{"a1":1,"a2":0,"b":4,"kind":"<="}]}`
	_, err := DecodeJSON(strings.NewReader(in))
	require.Error(t, err)
}

func TestDecodeRejectsBadVersion(t *testing.T) {
	in := `{"version":"not-semver","c1":1,"c2":1,"constraints":[]}`
	_, err := DecodeJSON(strings.NewReader(in))
	require.Error(t, err)
}
