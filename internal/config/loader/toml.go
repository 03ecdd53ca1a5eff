package loader

import (
	"bytes"
	"fmt"

	"github.com/pelletier/go-toml/v2"
)

// tomlLoader implements the Loader interface for TOML files
type tomlLoader struct {
	source []byte
}

// NewTomlLoader creates a new TOML configuration loader
func NewTomlLoader(source []byte) *tomlLoader {
	return &tomlLoader{source: source}
}

// LoadDocument parses the TOML source. Unknown tables and keys are rejected
// so that typos do not silently fall back to defaults.
func (l *tomlLoader) LoadDocument() (*Document, error) {
	if len(l.source) == 0 {
		return nil, fmt.Errorf("no source data provided to loader")
	}

	var doc Document
	decoder := toml.NewDecoder(bytes.NewReader(l.source))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&doc); err != nil {
		return nil, fmt.Errorf("failed to parse TOML config: %w", err)
	}
	if err := doc.CheckVersion(); err != nil {
		return nil, err
	}
	return &doc, nil
}
