// Package storage persists problems to disk and exports them to static
// formats. The serialization format is chosen by file extension: .json,
// .yaml/.yml, or .lp for the CBOR binary form.
package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/solvelab/planlp/encoding"
	"github.com/solvelab/planlp/problem"
)

// Save writes the problem to path, in the format implied by its extension.
func Save(path string, p *problem.Problem) error {
	encode, err := encoderFor(path)
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return encode(f, p)
}

// Load reads a problem from path, in the format implied by its extension.
func Load(path string) (*problem.Problem, error) {
	decode, err := decoderFor(path)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return decode(f)
}

func encoderFor(path string) (func(io.Writer, *problem.Problem) error, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return encoding.EncodeJSON, nil
	case ".yaml", ".yml":
		return encoding.EncodeYAML, nil
	case ".lp":
		return encoding.Serialize, nil
	}
	return nil, fmt.Errorf("unsupported problem file extension %q", filepath.Ext(path))
}

func decoderFor(path string) (func(io.Reader) (*problem.Problem, error), error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return encoding.DecodeJSON, nil
	case ".yaml", ".yml":
		return encoding.DecodeYAML, nil
	case ".lp":
		return encoding.Deserialize, nil
	}
	return nil, fmt.Errorf("unsupported problem file extension %q", filepath.Ext(path))
}
