package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pelletier/go-toml/v2"

	"holocron/internal/config"
)

func TestLoadDefaultConfigWithoutFile(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)

	cfg, resolved, exists, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if exists {
		t.Fatal("expected config file to be absent in temp HOME")
	}
	wantPath := filepath.Join(tempHome, ".config", "holocron", "config.toml")
	if resolved != wantPath {
		t.Fatalf("unexpected resolved path: got %q want %q", resolved, wantPath)
	}
	if cfg.Output.Layout != config.LayoutTitles {
		t.Fatalf("unexpected layout: %q", cfg.Output.Layout)
	}
	if cfg.Output.DirectoryFilename != "data.json" {
		t.Fatalf("unexpected directory filename: %q", cfg.Output.DirectoryFilename)
	}
	if cfg.Characters.Policy != config.PolicyLeadingPair {
		t.Fatalf("unexpected policy: %q", cfg.Characters.Policy)
	}
	if len(cfg.Series) != 4 {
		t.Fatalf("expected 4 default series, got %d", len(cfg.Series))
	}
	if got := cfg.DefaultSeries(); got.Code != "C" || got.ChronologicalOffset != 2000 {
		t.Fatalf("unexpected default series: %+v", got)
	}
	if got := cfg.Macros["Batch"]; len(got) != 5 || got[0] != "Hunter" {
		t.Fatalf("unexpected Batch macro: %v", got)
	}
	if cfg.Logging.Format != "console" || cfg.Logging.Level != "info" {
		t.Fatalf("unexpected logging defaults: %+v", cfg.Logging)
	}
}

func TestLoadCustomPathReplacesSeriesTable(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "holocron.toml")

	type payload struct {
		Output struct {
			Layout string `toml:"layout"`
		} `toml:"output"`
		Characters struct {
			Policy string   `toml:"policy"`
			Main   []string `toml:"main"`
		} `toml:"characters"`
		Series []config.Series `toml:"series"`
	}
	custom := payload{}
	custom.Output.Layout = " Episodes "
	custom.Characters.Policy = "FIRST-ONLY"
	custom.Characters.Main = []string{" Ahsoka ", "", "Rex"}
	custom.Series = []config.Series{{Code: "m", Name: "The Mandalorian", ChronologicalOffset: 9000}}
	data, err := toml.Marshal(custom)
	if err != nil {
		t.Fatalf("marshal custom config: %v", err)
	}
	if err := os.WriteFile(configPath, data, 0o644); err != nil {
		t.Fatalf("write custom config: %v", err)
	}

	cfg, resolved, exists, err := config.Load(configPath)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists {
		t.Fatal("expected exists to be true")
	}
	if resolved != configPath {
		t.Fatalf("unexpected resolved path: got %q want %q", resolved, configPath)
	}
	if cfg.Output.Layout != config.LayoutEpisodes {
		t.Fatalf("expected normalized layout, got %q", cfg.Output.Layout)
	}
	if cfg.Characters.Policy != config.PolicyFirstOnly {
		t.Fatalf("expected normalized policy, got %q", cfg.Characters.Policy)
	}
	if strings.Join(cfg.Characters.Main, "|") != "Ahsoka|Rex" {
		t.Fatalf("expected trimmed main list, got %v", cfg.Characters.Main)
	}
	if len(cfg.Series) != 1 || cfg.Series[0].Code != "M" || cfg.Series[0].ChronologicalOffset != 9000 {
		t.Fatalf("expected series table to be replaced, got %+v", cfg.Series)
	}
	if len(cfg.Characters.Side) == 0 {
		t.Fatal("expected side list to keep defaults")
	}
}

func TestLoadRejectsUnknownKeys(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "holocron.toml")
	if err := os.WriteFile(configPath, []byte("[output]\nlayuot = \"titles\"\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, _, _, err := config.Load(configPath); err == nil {
		t.Fatal("expected error for misspelled key")
	}
}

func TestEnvOverridesLogging(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("HOLOCRON_LOG_LEVEL", "DEBUG")
	t.Setenv("HOLOCRON_LOG_FORMAT", "json")

	cfg, _, _, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("expected level from env, got %q", cfg.Logging.Level)
	}
	if cfg.Logging.Format != "json" {
		t.Errorf("expected format from env, got %q", cfg.Logging.Format)
	}
}

func TestCreateSample(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "sample.toml")
	if err := config.CreateSample(path); err != nil {
		t.Fatalf("CreateSample failed: %v", err)
	}

	cfg, _, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("sample config does not load: %v", err)
	}
	if !exists {
		t.Fatal("expected sample to exist")
	}
	if len(cfg.Series) != 4 || cfg.Series[3].Name != "Star Wars Rebels" {
		t.Fatalf("unexpected series from sample: %+v", cfg.Series)
	}
	if cfg.Series[0] != config.Default().Series[0] {
		t.Fatalf("sample disagrees with defaults: %+v", cfg.Series[0])
	}
}

func TestValidateDetectsInvalidValues(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*config.Config)
	}{
		{"layout", func(c *config.Config) { c.Output.Layout = "flat" }},
		{"format", func(c *config.Config) { c.Logging.Format = "xml" }},
		{"level", func(c *config.Config) { c.Logging.Level = "verbose" }},
		{"policy", func(c *config.Config) { c.Characters.Policy = "random" }},
		{"empty series", func(c *config.Config) { c.Series = nil }},
		{"long code", func(c *config.Config) { c.Series[0].Code = "CW" }},
		{"missing name", func(c *config.Config) { c.Series[1].Name = "" }},
		{"duplicate code", func(c *config.Config) { c.Series[1].Code = "C" }},
		{"empty macro", func(c *config.Config) { c.Macros["Crew"] = nil }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := config.Default()
			tc.mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Fatal("expected validation error")
			}
		})
	}

	cfg := config.Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("defaults should validate: %v", err)
	}
}

func TestEnsureDirectoriesCreatesLogDir(t *testing.T) {
	cfg := config.Default()
	cfg.Logging.File = filepath.Join(t.TempDir(), "logs", "holocron.log")
	if err := cfg.EnsureDirectories(); err != nil {
		t.Fatalf("EnsureDirectories failed: %v", err)
	}
	if info, err := os.Stat(filepath.Dir(cfg.Logging.File)); err != nil || !info.IsDir() {
		t.Fatalf("expected log directory to exist: %v", err)
	}
}
