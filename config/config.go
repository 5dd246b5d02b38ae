// Package config loads editor settings from TOML, layering a user file over
// built-in defaults.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"reflect"

	"github.com/pelletier/go-toml/v2"

	"github.com/alek3y/exa/buffer"
)

const defaultTOML = `
[buffer.newline]
detect = true
use_crlf = false

[pane.linenumbers]
enable = true
suffix = "|"
background = "#282a2e"
foreground = "#808281"
`

type Config struct {
	Buffer BufferConfig `toml:"buffer"`
	Pane   PaneConfig   `toml:"pane"`
}

type BufferConfig struct {
	Newline NewlineConfig `toml:"newline"`
}

// NewlineConfig picks the line ending. UseCRLF only applies when Detect is
// off.
type NewlineConfig struct {
	Detect  bool `toml:"detect"`
	UseCRLF bool `toml:"use_crlf"`
}

type PaneConfig struct {
	LineNumbers LineNumbersConfig `toml:"linenumbers"`
}

type LineNumbersConfig struct {
	Enable     bool   `toml:"enable"`
	Suffix     string `toml:"suffix"`
	Background string `toml:"background"`
	Foreground string `toml:"foreground"`
}

// ParseError reports malformed TOML.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("config: parse %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Defaults returns a fresh copy of the built-in settings tree.
func Defaults() map[string]any {
	tree, err := parseTree("<defaults>", []byte(defaultTOML))
	if err != nil {
		panic(err)
	}
	return tree
}

// Default returns the built-in settings.
func Default() *Config {
	c, err := decode(Defaults())
	if err != nil {
		panic(err)
	}
	return c
}

// Merge layers src over dst in place. Tables merge recursively; a value
// already in dst is replaced only by a value of the same type; keys missing
// from dst are added.
func Merge(dst, src map[string]any) {
	for key, changed := range src {
		current, ok := dst[key]
		if !ok {
			dst[key] = changed
			continue
		}
		if table, ok := current.(map[string]any); ok {
			if sub, ok := changed.(map[string]any); ok {
				Merge(table, sub)
			}
			continue
		}
		if reflect.TypeOf(current) == reflect.TypeOf(changed) {
			dst[key] = changed
		}
	}
}

// Parse merges data over the defaults.
func Parse(data []byte) (*Config, error) {
	return parse("<input>", data)
}

// Load merges the file at path over the defaults. A missing file yields the
// defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	return parse(path, data)
}

// DefaultPath returns the per-user config file location.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("config: locate config dir: %w", err)
	}
	return filepath.Join(dir, "exa", "config.toml"), nil
}

// BufferOptions maps the newline settings onto buffer options.
func (c *Config) BufferOptions() buffer.Options {
	nl := c.Buffer.Newline
	switch {
	case nl.Detect:
		return buffer.Options{Newline: buffer.NewlineDetect}
	case nl.UseCRLF:
		return buffer.Options{Newline: buffer.NewlineCRLF}
	default:
		return buffer.Options{Newline: buffer.NewlineLF}
	}
}

func parse(source string, data []byte) (*Config, error) {
	user, err := parseTree(source, data)
	if err != nil {
		return nil, err
	}
	tree := Defaults()
	Merge(tree, user)
	return decode(tree)
}

func parseTree(source string, data []byte) (map[string]any, error) {
	tree := map[string]any{}
	if err := toml.Unmarshal(data, &tree); err != nil {
		return nil, &ParseError{Path: source, Err: err}
	}
	return tree, nil
}

func decode(tree map[string]any) (*Config, error) {
	data, err := toml.Marshal(tree)
	if err != nil {
		return nil, fmt.Errorf("config: encode settings: %w", err)
	}
	var c Config
	if err := toml.NewDecoder(bytes.NewReader(data)).Decode(&c); err != nil {
		return nil, fmt.Errorf("config: decode settings: %w", err)
	}
	return &c, nil
}
