package config

import (
	"slices"

	"github.com/arthur-debert/actdeck/pkg/errors"
)

// Sort orders accepted by console.sort
const (
	SortByName         = "name"
	SortByRegistration = "registration"
)

// OutputFormats lists the values accepted by output.format
var OutputFormats = []string{"auto", "term", "text", "json", "yaml", "toml", "xml"}

// Config is the fully merged actdeck configuration
type Config struct {
	Logging Logging `koanf:"logging"`
	Console Console `koanf:"console"`
	Output  Output  `koanf:"output"`
	Actions Actions `koanf:"actions"`
}

// Logging configures log verbosity
type Logging struct {
	Verbosity int `koanf:"verbosity"`
}

// Console configures the interactive console
type Console struct {
	Sort      string `koanf:"sort"`
	Builtins  bool   `koanf:"builtins"`
	Prompt    string `koanf:"prompt"`
	AssumeYes bool   `koanf:"assume_yes"`
}

// Output configures list rendering
type Output struct {
	Format string `koanf:"format"`
}

// Actions lists the action definition files loaded at startup
type Actions struct {
	Files []string `koanf:"files"`
}

// Validate checks enumerated values and ranges
func (c *Config) Validate() error {
	if c.Logging.Verbosity < 0 {
		return errors.Newf(errors.ErrConfigInvalid, "logging.verbosity must not be negative, got %d", c.Logging.Verbosity)
	}

	if c.Console.Sort != SortByName && c.Console.Sort != SortByRegistration {
		return errors.Newf(errors.ErrConfigInvalid, "console.sort must be %q or %q, got %q",
			SortByName, SortByRegistration, c.Console.Sort).
			WithDetail("key", "console.sort")
	}

	if !slices.Contains(OutputFormats, c.Output.Format) {
		return errors.Newf(errors.ErrConfigInvalid, "output.format must be one of %v, got %q",
			OutputFormats, c.Output.Format).
			WithDetail("key", "output.format")
	}

	return nil
}
