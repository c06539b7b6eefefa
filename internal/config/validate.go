package config

import (
	"errors"
	"fmt"
	"unicode/utf8"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateOutput(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	if err := c.validateCharacters(); err != nil {
		return err
	}
	if err := c.validateSeries(); err != nil {
		return err
	}
	return c.validateMacros()
}

func (c *Config) validateOutput() error {
	switch c.Output.Layout {
	case LayoutTitles, LayoutEpisodes:
	default:
		return fmt.Errorf("output.layout must be %q or %q, got %q", LayoutTitles, LayoutEpisodes, c.Output.Layout)
	}
	if c.Output.DirectoryFilename == "" {
		return errors.New("output.directory_filename must be set")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be \"console\" or \"json\", got %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be one of debug, info, warn, error; got %q", c.Logging.Level)
	}
	return nil
}

func (c *Config) validateCharacters() error {
	switch c.Characters.Policy {
	case PolicyLeadingPair, PolicyFirstOnly:
		return nil
	default:
		return fmt.Errorf("characters.policy must be %q or %q, got %q", PolicyLeadingPair, PolicyFirstOnly, c.Characters.Policy)
	}
}

func (c *Config) validateSeries() error {
	if len(c.Series) == 0 {
		return errors.New("at least one [[series]] entry is required")
	}
	seen := make(map[string]struct{}, len(c.Series))
	for i, s := range c.Series {
		if utf8.RuneCountInString(s.Code) != 1 {
			return fmt.Errorf("series[%d].code must be a single character, got %q", i, s.Code)
		}
		if s.Name == "" {
			return fmt.Errorf("series[%d].name must be set", i)
		}
		if _, dup := seen[s.Code]; dup {
			return fmt.Errorf("series[%d].code %q is duplicated", i, s.Code)
		}
		seen[s.Code] = struct{}{}
	}
	return nil
}

func (c *Config) validateMacros() error {
	for name, members := range c.Macros {
		if len(members) == 0 {
			return fmt.Errorf("macros.%s must list at least one character", name)
		}
	}
	return nil
}
