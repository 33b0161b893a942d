package dataset

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Meta is sidecar display metadata for a dataset: per-column labels
// and units. A label may carry its units inline ("Weight(kg)"); label
// derivation splits that form downstream.
type Meta struct {
	Columns map[string]ColumnMeta `yaml:"columns"`
}

// ColumnMeta is the metadata for a single column.
type ColumnMeta struct {
	Label string `yaml:"label"`
	Units string `yaml:"units"`
}

// ReadMeta decodes sidecar metadata from YAML.
func ReadMeta(r io.Reader) (*Meta, error) {
	var m Meta
	dec := yaml.NewDecoder(r)
	if err := dec.Decode(&m); err != nil {
		return nil, fmt.Errorf("dataset: decoding metadata: %w", err)
	}
	return &m, nil
}

// ReadMetaFile decodes sidecar metadata from a YAML file.
func ReadMetaFile(path string) (*Meta, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("dataset: %w", err)
	}
	defer func() { _ = f.Close() }()
	return ReadMeta(f)
}

// ApplyMeta copies labels and units onto matching columns. Entries for
// unknown columns are ignored.
func (d *Dataset) ApplyMeta(m *Meta) {
	if m == nil {
		return
	}
	for name, cm := range m.Columns {
		c, ok := d.cols[name]
		if !ok {
			continue
		}
		if cm.Label != "" {
			c.Label = cm.Label
		}
		if cm.Units != "" {
			c.Units = cm.Units
		}
	}
}
