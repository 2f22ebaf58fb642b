package parser

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/GoSim-25-26J-441/pipeline-parser/internal/pipeline/domain"
	"gopkg.in/yaml.v3"
)

func ParseJSONBytes(b []byte) (*domain.Pipeline, error) {
	var d Document
	dec := json.NewDecoder(bytes.NewReader(b))
	if err := dec.Decode(&d); err != nil {
		return nil, fmt.Errorf("%w: decode json: %v", domain.ErrInvalidPipeline, err)
	}
	if err := ExpectEOF(dec); err != nil {
		return nil, fmt.Errorf("%w: decode json: %v", domain.ErrInvalidPipeline, err)
	}
	return finish(&d)
}

var ErrTrailingData = errors.New("unexpected data after top-level JSON value")

// ExpectEOF fails unless dec has nothing left but whitespace.
func ExpectEOF(dec *json.Decoder) error {
	if _, err := dec.Token(); err != io.EOF {
		return ErrTrailingData
	}
	return nil
}

// CheckSingleJSON reports whether b holds exactly one JSON value.
func CheckSingleJSON(b []byte) error {
	dec := json.NewDecoder(bytes.NewReader(b))
	var v json.RawMessage
	if err := dec.Decode(&v); err != nil {
		return err
	}
	return ExpectEOF(dec)
}

func ParseYAMLBytes(b []byte) (*domain.Pipeline, error) {
	var d Document
	if err := yaml.Unmarshal(b, &d); err != nil {
		return nil, fmt.Errorf("%w: decode yaml: %v", domain.ErrInvalidPipeline, err)
	}
	return finish(&d)
}

// ParseFile reads a pipeline from path, picking the decoder by extension.
func ParseFile(path string) (*domain.Pipeline, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return ParseJSONBytes(b)
	case ".yaml", ".yml":
		return ParseYAMLBytes(b)
	default:
		return nil, fmt.Errorf("%w: %q", domain.ErrUnsupportedFormat, filepath.Ext(path))
	}
}

func finish(d *Document) (*domain.Pipeline, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}
	return d.ToPipeline(), nil
}
