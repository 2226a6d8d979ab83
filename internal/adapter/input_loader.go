package adapter

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	m "github.com/jacquemi-bbp/NeuroTS/internal/model"
)

// InputLoader reads the growth inputs from disk.
type InputLoader interface {
	LoadParameters(path m.Path) (m.InputParameters, error)
	LoadDistributions(path m.Path) (m.InputDistributions, error)
}

type fileInputLoader struct{}

// NewInputLoader returns a loader for YAML and JSON input files.
func NewInputLoader() InputLoader {
	return &fileInputLoader{}
}

func (l *fileInputLoader) LoadParameters(path m.Path) (m.InputParameters, error) {
	var params m.InputParameters
	if err := decodeFile(path, &params); err != nil {
		return m.InputParameters{}, err
	}

	return params, nil
}

func (l *fileInputLoader) LoadDistributions(path m.Path) (m.InputDistributions, error) {
	var distr m.InputDistributions
	if err := decodeFile(path, &distr); err != nil {
		return m.InputDistributions{}, err
	}

	return distr, nil
}

// decodeFile decodes YAML, and JSON through its YAML superset.
func decodeFile(path m.Path, out interface{}) error {
	data, err := os.ReadFile(string(path))
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}

	return nil
}
