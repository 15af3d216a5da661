// Package checker discovers doc comments in Go source trees and runs the
// docstring parser over them, turning parse failures into findings suitable
// for lint output.
package checker

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Config controls which files are checked and how strict the checks are.
// It is loaded from .docstr.yml; flags may override individual fields.
type Config struct {
	Paths             []string `yaml:"paths" validate:"required,min=1,dive,required"`
	RequireParamTypes bool     `yaml:"require_param_types"`
	CheckReferences   bool     `yaml:"check_references"`
	ExcludeFiles      []string `yaml:"exclude_files"`
	Verbose           bool     `yaml:"verbose"`
}

// DefaultConfig returns the configuration applied when no config file exists.
func DefaultConfig() Config {
	return Config{
		Paths:           []string{"."},
		CheckReferences: true,
	}
}

// validate is a shared validator instance for config structs.
var validate = validator.New()

// LoadConfig reads and validates a YAML config file. A missing file is not
// an error; the defaults are returned.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}
	if err := validate.Struct(&cfg); err != nil {
		return cfg, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}
