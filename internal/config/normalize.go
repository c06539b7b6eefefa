package config

import (
	"fmt"
	"os"
	"strings"
)

func (c *Config) normalize() error {
	c.normalizeOutput()
	if err := c.normalizeLogging(); err != nil {
		return err
	}
	c.normalizeCharacters()
	c.normalizeSeries()
	c.normalizeMacros()
	return nil
}

func (c *Config) normalizeOutput() {
	c.Output.Layout = strings.ToLower(strings.TrimSpace(c.Output.Layout))
	if c.Output.Layout == "" {
		c.Output.Layout = defaultLayout
	}
	c.Output.DirectoryFilename = strings.TrimSpace(c.Output.DirectoryFilename)
	if c.Output.DirectoryFilename == "" {
		c.Output.DirectoryFilename = defaultDirectoryFilename
	}
}

func (c *Config) normalizeLogging() error {
	if value, ok := os.LookupEnv("HOLOCRON_LOG_LEVEL"); ok && strings.TrimSpace(value) != "" {
		c.Logging.Level = value
	}
	if value, ok := os.LookupEnv("HOLOCRON_LOG_FORMAT"); ok && strings.TrimSpace(value) != "" {
		c.Logging.Format = value
	}
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
	if strings.TrimSpace(c.Logging.File) != "" {
		var err error
		if c.Logging.File, err = expandPath(strings.TrimSpace(c.Logging.File)); err != nil {
			return fmt.Errorf("logging.file: %w", err)
		}
	}
	return nil
}

func (c *Config) normalizeCharacters() {
	c.Characters.Policy = strings.ToLower(strings.TrimSpace(c.Characters.Policy))
	if c.Characters.Policy == "" {
		c.Characters.Policy = defaultPolicy
	}
	c.Characters.Main = trimNames(c.Characters.Main)
	c.Characters.Side = trimNames(c.Characters.Side)
}

func (c *Config) normalizeSeries() {
	if len(c.Series) == 0 {
		c.Series = defaultSeries()
		return
	}
	for i := range c.Series {
		c.Series[i].Code = strings.ToUpper(strings.TrimSpace(c.Series[i].Code))
		c.Series[i].Name = strings.TrimSpace(c.Series[i].Name)
	}
}

func (c *Config) normalizeMacros() {
	if c.Macros == nil {
		c.Macros = defaultMacros()
		return
	}
	normalized := make(map[string][]string, len(c.Macros))
	for name, members := range c.Macros {
		key := strings.TrimSpace(name)
		if key == "" {
			continue
		}
		normalized[key] = trimNames(members)
	}
	c.Macros = normalized
}

func trimNames(names []string) []string {
	out := make([]string, 0, len(names))
	for _, name := range names {
		if trimmed := strings.TrimSpace(name); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
