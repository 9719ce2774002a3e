package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/katalvlaran/circuittrace/frontier"
	"github.com/katalvlaran/circuittrace/present"
)

// ErrInvalidConfig wraps every decoding or validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config holds the settings of one run.
type Config struct {
	Discipline string
	Output     string
	LogLevel   string
	LogFormat  string
	MaxStates  int
	Prune      bool
	ReachCheck bool
}

// Default returns depth-first search, text output, info-level text logs,
// no state limit, no pruning and no reachability pre-check.
func Default() Config {
	return Config{
		Discipline: "stack",
		Output:     "text",
		LogLevel:   "info",
		LogFormat:  "text",
	}
}

// hclFile is the decoding schema; pointers distinguish absent attributes.
type hclFile struct {
	Discipline *string `hcl:"discipline,optional"`
	Output     *string `hcl:"output,optional"`
	LogLevel   *string `hcl:"log_level,optional"`
	LogFormat  *string `hcl:"log_format,optional"`
	MaxStates  *int    `hcl:"max_states,optional"`
	Prune      *bool   `hcl:"prune,optional"`
	ReachCheck *bool   `hcl:"reachability_check,optional"`
}

// LoadFile reads and decodes the HCL file at path on top of Default.
func LoadFile(path string) (*Config, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(src, path)
}

// Parse decodes HCL source on top of Default and validates the result.
// filename is only used in diagnostics.
func Parse(src []byte, filename string) (*Config, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("%w: parse %s: %w", ErrInvalidConfig, filename, diags)
	}

	var raw hclFile
	diags = gohcl.DecodeBody(file.Body, nil, &raw)
	if diags.HasErrors() {
		return nil, fmt.Errorf("%w: decode %s: %w", ErrInvalidConfig, filename, diags)
	}

	cfg := Default()
	setString(&cfg.Discipline, raw.Discipline)
	setString(&cfg.Output, raw.Output)
	setString(&cfg.LogLevel, raw.LogLevel)
	setString(&cfg.LogFormat, raw.LogFormat)
	if raw.MaxStates != nil {
		cfg.MaxStates = *raw.MaxStates
	}
	if raw.Prune != nil {
		cfg.Prune = *raw.Prune
	}
	if raw.ReachCheck != nil {
		cfg.ReachCheck = *raw.ReachCheck
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return &cfg, nil
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = strings.ToLower(strings.TrimSpace(*v))
	}
}

// Validate checks every enumerated setting.
func (c *Config) Validate() error {
	if _, err := frontier.ParseDiscipline(c.Discipline); err != nil {
		return fmt.Errorf("%w: discipline: %w", ErrInvalidConfig, err)
	}
	if _, err := present.New(c.Output); err != nil {
		return fmt.Errorf("%w: output: %w", ErrInvalidConfig, err)
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: log_level must be 'debug', 'info', 'warn', or 'error', got %q", ErrInvalidConfig, c.LogLevel)
	}
	switch c.LogFormat {
	case "text", "json":
	default:
		return fmt.Errorf("%w: log_format must be 'text' or 'json', got %q", ErrInvalidConfig, c.LogFormat)
	}
	if c.MaxStates < 0 {
		return fmt.Errorf("%w: max_states cannot be negative (%d)", ErrInvalidConfig, c.MaxStates)
	}
	return nil
}
