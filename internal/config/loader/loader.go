// Package loader reads launcher config files and dotenv overlays into flat key/value maps.
package loader

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/atlanticdynamic/crlauncher/internal/config/errz"
)

type LoaderFunc func([]byte) Loader

// Loader decodes one config file format.
type Loader interface {
	// LoadDocument parses the source into a Document.
	LoadDocument() (*Document, error)
}

// NewLoaderFromBytes creates a new Loader with the provided bytes
func NewLoaderFromBytes(data []byte, lodFunc LoaderFunc) (Loader, error) {
	if len(data) == 0 {
		return nil, errz.ErrNoSourceProvided
	}
	return lodFunc(data), nil
}

// ForExtension returns the LoaderFunc for a file extension such as ".toml".
func ForExtension(ext string) (LoaderFunc, error) {
	switch strings.ToLower(ext) {
	case ".toml":
		return func(b []byte) Loader { return NewTomlLoader(b) }, nil
	case ".yaml", ".yml":
		return func(b []byte) Loader { return NewYamlLoader(b) }, nil
	default:
		return nil, fmt.Errorf("%w: '%s'", errz.ErrUnsupportedExtension, ext)
	}
}

// NewLoaderFromFilePath creates a new Loader from a file path, picking the
// format from the file extension.
func NewLoaderFromFilePath(filePath string) (Loader, error) {
	lodFunc, err := ForExtension(filepath.Ext(filePath))
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file '%s': %w", filePath, err)
	}

	l, err := NewLoaderFromBytes(data, lodFunc)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", err, filePath)
	}
	return l, nil
}

// LoadFile reads a config file and returns its values keyed by environment name.
func LoadFile(filePath string) (map[string]string, error) {
	l, err := NewLoaderFromFilePath(filePath)
	if err != nil {
		return nil, err
	}

	doc, err := l.LoadDocument()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filePath, err)
	}

	values, err := doc.Values()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filePath, err)
	}
	return values, nil
}
