// Package config holds the settings of the front-end. Settings are decoded
// from TOML or YAML content handed over by the caller.
package config

import (
	"errors"
	"fmt"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Format represents the configuration content format
type Format int

const (
	// FormatTOML represents TOML format (default)
	FormatTOML Format = iota

	// FormatYAML represents YAML format
	FormatYAML
)

// String returns the string representation of the format
func (f Format) String() string {
	switch f {
	case FormatTOML:
		return "toml"
	case FormatYAML:
		return "yaml"
	default:
		return "unknown"
	}
}

const (
	ResultLeft  = "left"
	ResultWiden = "widen"
)

var (
	ErrUnknownFormat     = errors.New("unknown configuration format")
	ErrInvalidResultType = errors.New("invalid result_type")
)

// Parser configures a single parse.
type Parser struct {
	// FileName is only used to label rendered diagnostics.
	FileName string `toml:"file_name" yaml:"file_name"`
	// ResultType is "left" (an operation takes its left operand's type) or
	// "widen" (float wins over int).
	ResultType string `toml:"result_type" yaml:"result_type"`
	// CallExpressions allows function calls as operands, not only as
	// statements. Off by default.
	CallExpressions bool `toml:"call_expressions" yaml:"call_expressions"`
	// Color styles rendered diagnostics for a terminal.
	Color bool `toml:"color" yaml:"color"`
}

type Config struct {
	Parser Parser `toml:"parser" yaml:"parser"`
}

// Default returns the configuration used when the caller provides none.
func Default() Config {
	return Config{
		Parser: Parser{
			FileName:        "<input>",
			ResultType:      ResultLeft,
			CallExpressions: false,
			Color:           false,
		},
	}
}

// Parse decodes content on top of the defaults, keys missing from content
// keep their default value.
func Parse(content []byte, format Format) (Config, error) {
	cfg := Default()

	switch format {
	case FormatTOML:
		if err := toml.Unmarshal(content, &cfg); err != nil {
			return Config{}, fmt.Errorf("failed to parse TOML config: %w", err)
		}
	case FormatYAML:
		if err := yaml.Unmarshal(content, &cfg); err != nil {
			return Config{}, fmt.Errorf("failed to parse YAML config: %w", err)
		}
	default:
		return Config{}, fmt.Errorf("%w: %d", ErrUnknownFormat, int(format))
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func FromTOML(content []byte) (Config, error) {
	return Parse(content, FormatTOML)
}

func FromYAML(content []byte) (Config, error) {
	return Parse(content, FormatYAML)
}

func (c Config) Validate() error {
	return c.Parser.Validate()
}

func (p Parser) Validate() error {
	switch p.ResultType {
	case ResultLeft, ResultWiden:
		return nil
	default:
		return fmt.Errorf("%w: %q, expected %q or %q", ErrInvalidResultType, p.ResultType, ResultLeft, ResultWiden)
	}
}
