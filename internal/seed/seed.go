// Package seed loads the reference access network the dashboard starts with.
package seed

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"github.com/Beenod004/Networkfault/internal/models"
	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var defaultDataset []byte

// Dataset is a complete dashboard state: entities in store order plus box positions.
type Dataset struct {
	Devices   []models.Device         `yaml:"devices"`
	Links     []models.Link           `yaml:"links"`
	Faults    []models.Fault          `yaml:"faults"`
	Positions []models.DevicePosition `yaml:"positions"`
}

// Default returns the embedded reference dataset.
func Default() (*Dataset, error) {
	ds, err := Parse(defaultDataset)
	if err != nil {
		return nil, fmt.Errorf("embedded seed: %w", err)
	}
	return ds, nil
}

// Load reads a dataset from path, or the embedded one when path is empty.
func Load(path string) (*Dataset, error) {
	if strings.TrimSpace(path) == "" {
		return Default()
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file %s: %w", path, err)
	}
	ds, err := Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("seed file %s: %w", path, err)
	}
	return ds, nil
}

// Parse decodes and validates a YAML dataset.
func Parse(raw []byte) (*Dataset, error) {
	var ds Dataset
	if err := yaml.Unmarshal(raw, &ds); err != nil {
		return nil, fmt.Errorf("unmarshal seed: %w", err)
	}
	if err := ds.Validate(); err != nil {
		return nil, err
	}
	return &ds, nil
}

// Validate checks id uniqueness and that every position names a known device.
// Links with unknown endpoints are tolerated, the same as at runtime.
func (ds *Dataset) Validate() error {
	devices := make(map[string]struct{}, len(ds.Devices))
	for _, d := range ds.Devices {
		if d.ID == "" {
			return fmt.Errorf("device %q has no id", d.Name)
		}
		if _, dup := devices[d.ID]; dup {
			return fmt.Errorf("duplicate device id %s", d.ID)
		}
		devices[d.ID] = struct{}{}
	}

	links := make(map[string]struct{}, len(ds.Links))
	for _, l := range ds.Links {
		if _, dup := links[l.ID]; dup || l.ID == "" {
			return fmt.Errorf("invalid or duplicate link id %q", l.ID)
		}
		links[l.ID] = struct{}{}
	}

	faults := make(map[string]struct{}, len(ds.Faults))
	for _, f := range ds.Faults {
		if _, dup := faults[f.ID]; dup || f.ID == "" {
			return fmt.Errorf("invalid or duplicate fault id %q", f.ID)
		}
		faults[f.ID] = struct{}{}
	}

	for _, p := range ds.Positions {
		if _, ok := devices[p.ID]; !ok {
			return fmt.Errorf("position for unknown device %s", p.ID)
		}
	}
	return nil
}
