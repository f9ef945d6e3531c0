// Released under an MIT license. See LICENSE.

// Package config loads the YAML configuration file.
package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// T (config) holds settings that are not given on the command line.
type T struct {
	Continuation string   `yaml:"continuation"`
	History      string   `yaml:"history"`
	MaxDepth     int      `yaml:"max-depth"`
	Preload      []string `yaml:"preload"`
	Prompt       string   `yaml:"prompt"`
	Trace        bool     `yaml:"trace"`
}

// Default returns the settings used when there is no configuration file.
func Default() *T {
	return &T{
		Continuation: "  ",
		History:      home(".lisp_history.db"),
		Prompt:       "> ",
	}
}

// Path returns the default location of the configuration file.
func Path() string {
	return home(".lisp.yaml")
}

// Load reads the configuration file at path. A missing file is not an
// error: the defaults are returned.
func Load(path string) (*T, error) {
	c, err := Read(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}

	return c, err
}

// Read reads the configuration file at path, which must exist. Settings
// missing from the file keep their defaults. Unrecognized keys are an error.
func Read(path string) (*T, error) {
	c := Default()

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	d := yaml.NewDecoder(f)
	d.KnownFields(true)

	err = d.Decode(c)
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return c, nil
}

func home(name string) string {
	dir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}

	return filepath.Join(dir, name)
}
