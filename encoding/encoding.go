// Package encoding offers (de)serialization APIs for planlp problems.
//
// The binary format is CBOR and carries the planlp version in a header; JSON
// and YAML codecs share the same record layout, with constraint kinds stored
// as their glyphs (≤, =, ≥).
package encoding

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/blang/semver/v4"
	"github.com/fxamacker/cbor/v2"
	"github.com/solvelab/planlp"
	"github.com/solvelab/planlp/constraint"
	"github.com/solvelab/planlp/logger"
	"github.com/solvelab/planlp/problem"
	"gopkg.in/yaml.v3"
)

// problemData is the serialized form of a Problem, shared by all codecs.
type problemData struct {
	Version     string           `cbor:"version" json:"version" yaml:"version"`
	C1          float64          `cbor:"c1" json:"c1" yaml:"c1"`
	C2          float64          `cbor:"c2" json:"c2" yaml:"c2"`
	Constraints []constraintData `cbor:"constraints" json:"constraints" yaml:"constraints"`
}

type constraintData struct {
	A1   float64 `cbor:"a1" json:"a1" yaml:"a1"`
	A2   float64 `cbor:"a2" json:"a2" yaml:"a2"`
	B    float64 `cbor:"b" json:"b" yaml:"b"`
	Kind string  `cbor:"kind" json:"kind" yaml:"kind"`
}

var encMode cbor.EncMode

func init() {
	var err error
	encMode, err = cbor.CanonicalEncOptions().EncMode()
	if err != nil {
		panic(err)
	}
}

func toData(p *problem.Problem) (problemData, error) {
	c1, c2 := p.Objective()
	data := problemData{
		Version:     planlp.Version.String(),
		C1:          c1,
		C2:          c2,
		Constraints: make([]constraintData, 0, p.NbConstraints()),
	}
	for _, c := range p.Constraints() {
		glyph, err := c.Kind.MarshalText()
		if err != nil {
			return problemData{}, err
		}
		data.Constraints = append(data.Constraints, constraintData{
			A1: c.A1, A2: c.A2, B: c.B, Kind: string(glyph),
		})
	}
	return data, nil
}

func fromData(data problemData) (*problem.Problem, error) {
	if err := checkVersion(data.Version); err != nil {
		return nil, err
	}

	p := problem.New(data.C1, data.C2)
	for _, c := range data.Constraints {
		var kind constraint.Kind
		if err := kind.UnmarshalText([]byte(c.Kind)); err != nil {
			return nil, err
		}
		p.AddConstraint(c.A1, c.A2, c.B, kind)
	}
	return p, nil
}

// checkVersion parses the version header and warns on a mismatch with the
// binary; mismatches are not fatal, the record layout is stable.
func checkVersion(v string) error {
	objectVersion, err := semver.Parse(v)
	if err != nil {
		return fmt.Errorf("when parsing planlp version: %w", err)
	}
	if planlp.Version.Compare(objectVersion) != 0 {
		log := logger.Logger()
		log.Warn().Str("binary", planlp.Version.String()).Str("object", objectVersion.String()).Msg("planlp version (binary) mismatch with problem record. there are no guarantees on compatibility")
	}
	return nil
}

// Serialize writes the problem to w in CBOR.
func Serialize(w io.Writer, p *problem.Problem) error {
	data, err := toData(p)
	if err != nil {
		return err
	}
	return encMode.NewEncoder(w).Encode(data)
}

// Deserialize reads a CBOR-encoded problem from r.
func Deserialize(r io.Reader) (*problem.Problem, error) {
	var data problemData
	if err := cbor.NewDecoder(r).Decode(&data); err != nil {
		return nil, err
	}
	return fromData(data)
}

// EncodeJSON writes the problem to w as indented JSON.
func EncodeJSON(w io.Writer, p *problem.Problem) error {
	data, err := toData(p)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "    ")
	return enc.Encode(data)
}

// DecodeJSON reads a JSON-encoded problem from r.
func DecodeJSON(r io.Reader) (*problem.Problem, error) {
	var data problemData
	if err := json.NewDecoder(r).Decode(&data); err != nil {
		return nil, err
	}
	return fromData(data)
}

// EncodeYAML writes the problem to w as YAML.
func EncodeYAML(w io.Writer, p *problem.Problem) error {
	data, err := toData(p)
	if err != nil {
		return err
	}
	enc := yaml.NewEncoder(w)
	defer enc.Close()
	return enc.Encode(data)
}

// DecodeYAML reads a YAML-encoded problem from r.
func DecodeYAML(r io.Reader) (*problem.Problem, error) {
	var data problemData
	if err := yaml.NewDecoder(r).Decode(&data); err != nil {
		return nil, err
	}
	return fromData(data)
}
