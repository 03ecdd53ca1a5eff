package loader

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// yamlLoader implements the Loader interface for YAML files
type yamlLoader struct {
	source []byte
}

// NewYamlLoader creates a new YAML configuration loader
func NewYamlLoader(source []byte) *yamlLoader {
	return &yamlLoader{source: source}
}

// LoadDocument parses the YAML source, rejecting unknown keys.
func (l *yamlLoader) LoadDocument() (*Document, error) {
	if len(l.source) == 0 {
		return nil, fmt.Errorf("no source data provided to loader")
	}

	var doc Document
	decoder := yaml.NewDecoder(bytes.NewReader(l.source))
	decoder.KnownFields(true)
	if err := decoder.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse YAML config: %w", err)
	}
	if err := doc.CheckVersion(); err != nil {
		return nil, err
	}
	return &doc, nil
}
