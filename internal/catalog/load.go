package catalog

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Format names a catalog document encoding.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

//go:embed default.yaml
var defaultDocument []byte

// DefaultSource labels the embedded catalog in logs and errors.
const DefaultSource = "builtin"

type document struct {
	Menu []*Node `yaml:"menu" toml:"menu"`
}

// FormatFromPath picks the document format from a file extension. JSON is
// decoded by the YAML parser.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml", ".json":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	default:
		return "", fmt.Errorf("unsupported catalog extension %q (want .yaml, .yml, .json or .toml)", filepath.Ext(path))
	}
}

// Parse decodes a catalog document and validates it.
func Parse(data []byte, format Format) (*Catalog, error) {
	var doc document
	switch format {
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode yaml catalog: %w", err)
		}
	case FormatTOML:
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode toml catalog: %w", err)
		}
	default:
		return nil, fmt.Errorf("unknown catalog format %q", format)
	}
	if len(doc.Menu) == 0 {
		return nil, fmt.Errorf("%w: no menu entries", ErrInvalidCatalog)
	}
	return New(doc.Menu)
}

// Load reads and parses a catalog file.
func Load(path string) (*Catalog, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	cat, err := Parse(data, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cat, nil
}

// Default returns the built-in catalog. It is authored alongside the code, so
// a decode failure is a programming error.
func Default() *Catalog {
	cat, err := Parse(defaultDocument, FormatYAML)
	if err != nil {
		panic(fmt.Sprintf("builtin catalog: %v", err))
	}
	return cat
}

// LoadOrDefault loads path, or returns the built-in catalog when path is empty.
// The second return value names the source that was used.
func LoadOrDefault(path string) (*Catalog, string, error) {
	if strings.TrimSpace(path) == "" {
		return Default(), DefaultSource, nil
	}
	cat, err := Load(path)
	if err != nil {
		return nil, path, err
	}
	return cat, path, nil
}
