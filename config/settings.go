// Package config loads the round-configuration knobs MARS needs to
// construct a core and scheduler: CORESIZE, MAXCYCLES, MAXPROCESSES,
// MAXLENGTH, MINDISTANCE, and the read/write windows (spec.md §6).
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Settings mirrors spec.md §6's named constants, loadable from YAML.
type Settings struct {
	CoreSize     int `yaml:"coresize"`
	MaxCycles    int `yaml:"maxcycles"`
	MaxProcesses int `yaml:"maxprocesses"`
	MaxLength    int `yaml:"maxlength"`
	MinDistance  int `yaml:"mindistance"`
	ReadLimit    int `yaml:"readlimit"`
	WriteLimit   int `yaml:"writelimit"`
}

// Default returns spec.md §6's standard '94 settings.
func Default() Settings {
	return Settings{
		CoreSize:     8000,
		MaxCycles:    80000,
		MaxProcesses: 8000,
		MaxLength:    100,
		MinDistance:  100,
		ReadLimit:    8000,
		WriteLimit:   8000,
	}
}

// Load reads Settings from a YAML file at path, starting from Default
// so a file only needs to override the fields it cares about. A read or
// write limit the file leaves unset (or sets to 0) defaults to the
// loaded CoreSize.
func Load(path string) (Settings, error) {
	s := Default()
	s.ReadLimit, s.WriteLimit = 0, 0
	data, err := os.ReadFile(path)
	if err != nil {
		return Settings{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Settings{}, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if s.ReadLimit == 0 {
		s.ReadLimit = s.CoreSize
	}
	if s.WriteLimit == 0 {
		s.WriteLimit = s.CoreSize
	}
	if err := s.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// Validate reports the first constraint from spec.md §4.5/§6 that s
// violates: positive sizes, and read/write limits dividing CoreSize
// evenly (any positive divisor of CoreSize is accepted).
func (s Settings) Validate() error {
	if s.CoreSize <= 0 {
		return fmt.Errorf("config: coresize must be positive, got %d", s.CoreSize)
	}
	if s.MaxLength <= 0 || s.MaxLength > s.CoreSize {
		return fmt.Errorf("config: maxlength must be in (0, coresize], got %d", s.MaxLength)
	}
	if s.MinDistance <= 0 {
		return fmt.Errorf("config: mindistance must be positive, got %d", s.MinDistance)
	}
	if s.ReadLimit <= 0 || s.CoreSize%s.ReadLimit != 0 {
		return fmt.Errorf("config: readlimit must divide coresize, got %d", s.ReadLimit)
	}
	if s.WriteLimit <= 0 || s.CoreSize%s.WriteLimit != 0 {
		return fmt.Errorf("config: writelimit must divide coresize, got %d", s.WriteLimit)
	}
	if s.MaxProcesses <= 0 {
		return fmt.Errorf("config: maxprocesses must be positive, got %d", s.MaxProcesses)
	}
	return nil
}
