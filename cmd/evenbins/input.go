package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// partitionInput is the file read by `evenbins partition`.
type partitionInput struct {
	Weights    []float64 `yaml:"weights" validate:"required,min=1"`
	Partitions int       `yaml:"partitions" validate:"gte=0"`
}

// binInput is the file read by `evenbins bin`. Exactly one of Values and
// Flags must be present, matching Labels in length.
type binInput struct {
	Labels []int     `yaml:"labels" validate:"required,min=1,dive,gte=0"`
	Values []float64 `yaml:"values" validate:"required_without=Flags,excluded_with=Flags"`
	Flags  []bool    `yaml:"flags" validate:"required_without=Values"`
}

// readInput decodes a YAML (or JSON) file into v and validates it.
func readInput(path string, v any) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}
	if err = yaml.Unmarshal(raw, v); err != nil {
		return fmt.Errorf("parsing input %s: %w", path, err)
	}
	if err = validate.Struct(v); err != nil {
		return fmt.Errorf("invalid input %s: %w", path, err)
	}

	return nil
}

// writeYAML prints v as a YAML document.
func writeYAML(a *app, v any) error {
	enc := yaml.NewEncoder(a.out)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encoding result: %w", err)
	}

	return enc.Close()
}
