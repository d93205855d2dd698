package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// processorFile mirrors ProcessorConfig with optional fields so that a
// settings file can override single keys of a default processor.
type processorFile struct {
	Enabled             *bool             `yaml:"enabled"`
	Weight              *float64          `yaml:"weight"`
	ConfidenceThreshold *float64          `yaml:"confidence_threshold"`
	MinLength           *int              `yaml:"min_length"`
	MaxLength           *int              `yaml:"max_length"`
	Settings            map[string]string `yaml:"settings"`
}

func (f processorFile) apply(p ProcessorConfig) ProcessorConfig {
	if f.Enabled != nil {
		p.Enabled = *f.Enabled
	}
	if f.Weight != nil {
		p.Weight = *f.Weight
	}
	if f.ConfidenceThreshold != nil {
		p.ConfidenceThreshold = *f.ConfidenceThreshold
	}
	if f.MinLength != nil {
		p.MinLength = *f.MinLength
	}
	if f.MaxLength != nil {
		p.MaxLength = *f.MaxLength
	}
	if len(f.Settings) > 0 {
		p = p.Clone()
		if p.Settings == nil {
			p.Settings = make(map[string]string, len(f.Settings))
		}
		for k, v := range f.Settings {
			p.Settings[k] = v
		}
	}
	return p
}

// Load reads YAML settings from path over the defaults and validates them.
func Load(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read settings %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes YAML settings over the defaults and validates them.
// Processor entries override only the keys they set.
func Parse(data []byte) (*Settings, error) {
	s := DefaultSettings()
	if err := yaml.Unmarshal(data, s); err != nil {
		return nil, fmt.Errorf("failed to parse settings: %w", err)
	}

	var file struct {
		Processors map[string]processorFile `yaml:"processors"`
	}
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse processors: %w", err)
	}
	s.Processors = DefaultProcessors()
	for name, f := range file.Processors {
		base, ok := s.Processors[name]
		if !ok {
			base = ProcessorConfig{Enabled: true, Weight: 1.0}
		}
		s.Processors[name] = f.apply(base)
	}

	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// Marshal encodes settings as YAML.
func Marshal(s *Settings) ([]byte, error) {
	return yaml.Marshal(s)
}
