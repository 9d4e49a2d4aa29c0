// Package config loads shapegen settings from a YAML file.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/rubiojr/shapegen/compiler"
)

// FileName is the config file looked up in the working directory when no
// path is given.
const FileName = "shapegen.yaml"

// DefaultSuffix is appended to the base name of each output file.
const DefaultSuffix = "-ti"

// Config holds the settings shared by the command line and the config file.
// Command-line flags take precedence over file values.
type Config struct {
	Suffix          string `yaml:"suffix"`
	OutDir          string `yaml:"outDir"`
	Verbose         bool   `yaml:"verbose"`
	Jobs            int    `yaml:"jobs"`
	ChangedOnly     bool   `yaml:"changedOnly"`
	DeferredWrapper string `yaml:"deferredWrapper"`
}

// Default returns the settings used when no config file exists.
func Default() *Config {
	c := &Config{DeferredWrapper: compiler.DefaultDeferredWrapper}
	applyDefaults(c)
	return c
}

// Load reads a config file. An empty path looks for FileName in the
// working directory and falls back to Default when it does not exist.
func Load(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		path = FileName
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}
	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// Parse decodes YAML config data. Unknown keys are rejected. Keys left out
// keep their Default value; an explicit empty deferredWrapper disables
// unwrapping.
func Parse(data []byte) (*Config, error) {
	c := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if c.Jobs < 0 {
		return nil, fmt.Errorf("parsing config: jobs must not be negative, got %d", c.Jobs)
	}
	applyDefaults(c)
	return c, nil
}

// applyDefaults replaces zero values that have no meaning of their own.
func applyDefaults(c *Config) {
	if c.Suffix == "" {
		c.Suffix = DefaultSuffix
	}
	if c.Jobs == 0 {
		c.Jobs = 1
	}
}

// Options returns the compiler options the config selects.
func (c *Config) Options() compiler.Options {
	return compiler.Options{DeferredWrapper: c.DeferredWrapper}
}
