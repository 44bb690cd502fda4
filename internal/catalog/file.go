package catalog

import (
	_ "embed"
	"fmt"
	"io"
	"os"

	"github.com/meltforce/fitplan/internal/models"
	"gopkg.in/yaml.v3"
)

//go:embed default_catalog.yaml
var defaultCatalogYAML []byte

// fileFormat is the on-disk YAML layout of a catalog file.
type fileFormat struct {
	Exercises []models.ExerciseDefinition `yaml:"exercises"`
}

// Parse decodes a catalog YAML document into definitions without building a
// snapshot. Used by importers that store definitions elsewhere.
func Parse(r io.Reader) ([]models.ExerciseDefinition, error) {
	var f fileFormat
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		if err == io.EOF {
			return nil, fmt.Errorf("catalog file is empty")
		}
		return nil, fmt.Errorf("parsing catalog: %w", err)
	}
	return f.Exercises, nil
}

// LoadFile reads a catalog YAML file and builds a snapshot.
func LoadFile(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening catalog file: %w", err)
	}
	defer f.Close()

	defs, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return New(defs)
}

// Default returns the catalog bundled with the binary.
func Default() *Catalog {
	var f fileFormat
	if err := yaml.Unmarshal(defaultCatalogYAML, &f); err != nil {
		panic(fmt.Sprintf("embedded catalog: %v", err))
	}
	c, err := New(f.Exercises)
	if err != nil {
		panic(fmt.Sprintf("embedded catalog: %v", err))
	}
	return c
}
