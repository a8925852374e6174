// Package config loads tallycat defaults from a YAML file.
//
// A configuration file looks like:
//
//	mode: row
//	count: NA
//	select: c1:c3
//	name: rowcount
//	append: true
//	workers: 4
//	format: table
//	limit: 0
//
// Every key is optional; absent keys keep the values of Default. Unknown
// keys are rejected.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/vegasq/tallycat/count"
	"github.com/vegasq/tallycat/frame"
	"github.com/vegasq/tallycat/output"
)

// Counting modes.
const (
	ModeRow = "row"
	ModeCol = "col"
)

// Config holds the settings of a tallycat run.
type Config struct {
	Mode    string `yaml:"mode"`
	Count   string `yaml:"count"`
	Select  string `yaml:"select"`
	Name    string `yaml:"name"`
	Append  bool   `yaml:"append"`
	Workers int    `yaml:"workers"`
	Format  string `yaml:"format"`
	Limit   int    `yaml:"limit"`
}

// Default returns the built-in configuration: count missing cells per row
// over all columns, append the counts and write JSON Lines.
func Default() Config {
	return Config{
		Mode:    ModeRow,
		Count:   "NA",
		Select:  "",
		Name:    count.DefaultName,
		Append:  true,
		Workers: 1,
		Format:  "jsonl",
		Limit:   0,
	}
}

// Load reads a YAML configuration file on top of Default and validates
// the result.
func Load(path string) (Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config: %w", err)
	}

	cfg, err := Parse(b)
	if err != nil {
		return Config{}, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML configuration data on top of Default and validates
// the result.
func Parse(data []byte) (Config, error) {
	cfg := Default()

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, err
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks that every setting has a usable value.
func (c Config) Validate() error {
	if c.Mode != ModeRow && c.Mode != ModeCol {
		return fmt.Errorf("mode must be %q or %q, got %q", ModeRow, ModeCol, c.Mode)
	}
	if _, err := count.ParseTarget(c.Count); err != nil {
		return fmt.Errorf("count: %w", err)
	}
	if _, err := frame.ParseSelection(c.Select); err != nil {
		return fmt.Errorf("select: %w", err)
	}
	if c.Workers < 0 {
		return fmt.Errorf("workers must be non-negative, got %d", c.Workers)
	}
	if c.Limit < 0 {
		return fmt.Errorf("limit must be non-negative, got %d", c.Limit)
	}
	if !validFormat(c.Format) {
		return fmt.Errorf("unsupported format %q", c.Format)
	}
	return nil
}

func validFormat(name string) bool {
	for _, f := range output.Formats {
		if f == name {
			return true
		}
	}
	return false
}

// Options converts the configuration into count options.
func (c Config) Options() (count.Options, error) {
	target, err := count.ParseTarget(c.Count)
	if err != nil {
		return count.Options{}, fmt.Errorf("count: %w", err)
	}
	sel, err := frame.ParseSelection(c.Select)
	if err != nil {
		return count.Options{}, fmt.Errorf("select: %w", err)
	}

	return count.Options{
		Select:  sel,
		Target:  target,
		Name:    c.Name,
		Append:  c.Append,
		Workers: c.Workers,
	}, nil
}
