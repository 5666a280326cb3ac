package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// runFile is the optional YAML run file passed with --config.
// Flags given on the command line take precedence over its values.
type runFile struct {
	Threshold *float64 `yaml:"threshold"`
	Workers   *int     `yaml:"workers"`
	Symmetric *bool    `yaml:"symmetric"`
	Format    *string  `yaml:"format"`
	LogLevel  *string  `yaml:"log_level"`
}

func loadRunFile(path string) (runFile, error) {
	var rf runFile
	if path == "" {
		return rf, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return rf, fmt.Errorf("open run file: %w", err)
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(&rf); err != nil && !errors.Is(err, io.EOF) {
		return rf, fmt.Errorf("parse run file %s: %w", path, err)
	}
	return rf, nil
}
