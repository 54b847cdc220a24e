// Package scenario holds named sets of market inputs: the built-in
// scenarios and those read from YAML, TOML or JSON files.
package scenario

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/contactkeval/bs-parity/internal/pricing"
)

// Scenario is a named set of market inputs for one option.
type Scenario struct {
	Name       string  `json:"name" yaml:"name" toml:"name"`
	Spot       float64 `json:"spot" yaml:"spot" toml:"spot"`                   // S
	Strike     float64 `json:"strike" yaml:"strike" toml:"strike"`             // X
	Rate       float64 `json:"rate" yaml:"rate" toml:"rate"`                   // r, annual, continuous
	Expiry     float64 `json:"expiry" yaml:"expiry" toml:"expiry"`             // T, years
	Volatility float64 `json:"volatility" yaml:"volatility" toml:"volatility"` // sigma, annual
}

// File is the on-disk layout of a scenario file.
type File struct {
	Scenarios []Scenario `json:"scenarios" yaml:"scenarios" toml:"scenarios"`
}

// Inputs converts s to pricing inputs.
func (s Scenario) Inputs() pricing.Inputs {
	return pricing.Inputs{
		Spot:       s.Spot,
		Strike:     s.Strike,
		Rate:       s.Rate,
		Expiry:     s.Expiry,
		Volatility: s.Volatility,
	}
}

// Defaults returns the two built-in scenarios. The first one is what the
// CLI prices when no config is given.
func Defaults() []Scenario {
	return []Scenario{
		{Name: "A", Spot: 42.35, Strike: 42, Rate: 0.038, Expiry: 6.0 / 12.0, Volatility: math.Sqrt(0.12)},
		{Name: "B", Spot: 52.25, Strike: 48, Rate: 0.057, Expiry: 7.0 / 12.0, Volatility: math.Sqrt(0.12)},
	}
}

// Load reads scenarios from path. The format follows the extension:
// .yaml/.yml, .toml or .json.
func Load(path string) ([]Scenario, error) {
	path = os.ExpandEnv(path)

	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scenario file: %w", err)
	}

	var f File
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(b, &f)
	case ".toml":
		_, err = toml.Decode(string(b), &f)
	case ".json":
		err = json.Unmarshal(b, &f)
	default:
		return nil, fmt.Errorf("unsupported scenario file extension %q", ext)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	if err := f.applyDefaults(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return f.Scenarios, nil
}

// applyDefaults names unnamed scenarios and rejects empty or ambiguous files.
// Input values are not validated here; the pricer reports domain errors.
func (f *File) applyDefaults() error {
	if len(f.Scenarios) == 0 {
		return fmt.Errorf("no scenarios defined")
	}
	seen := make(map[string]bool, len(f.Scenarios))
	for i := range f.Scenarios {
		s := &f.Scenarios[i]
		s.Name = strings.TrimSpace(s.Name)
		if s.Name == "" {
			s.Name = fmt.Sprintf("scenario-%d", i+1)
		}
		if seen[s.Name] {
			return fmt.Errorf("duplicate scenario name %q", s.Name)
		}
		seen[s.Name] = true
	}
	return nil
}

// Find returns the scenario called name.
func Find(list []Scenario, name string) (Scenario, error) {
	for _, s := range list {
		if s.Name == name {
			return s, nil
		}
	}
	return Scenario{}, fmt.Errorf("scenario %q not found", name)
}
