package testsupport

import (
	"path/filepath"
	"testing"

	"holocron/internal/catalog"
	"holocron/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*configBuilder)

type configBuilder struct {
	t       testing.TB
	baseDir string
	cfg     *config.Config
}

// NewConfig produces a default config whose log file lives in a unique temp
// directory per test. It applies any provided options.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfgVal := config.Default()
	cfgVal.Logging.File = filepath.Join(base, "logs", "holocron.log")

	builder := &configBuilder{
		t:       t,
		baseDir: base,
		cfg:     &cfgVal,
	}

	for _, opt := range opts {
		opt(builder)
	}

	return builder.cfg
}

// WithLayout overrides the output layout on the test config.
func WithLayout(layout string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Output.Layout = layout
	}
}

// WithPolicy overrides the character classification policy.
func WithPolicy(policy string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Characters.Policy = policy
	}
}

// WithSeries replaces the series table.
func WithSeries(series ...config.Series) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Series = append([]config.Series(nil), series...)
	}
}

// MustCatalog builds the catalog for cfg or fails the test.
func MustCatalog(t testing.TB, cfg *config.Config) *catalog.Catalog {
	t.Helper()

	cat, err := catalog.FromConfig(cfg)
	if err != nil {
		t.Fatalf("catalog.FromConfig: %v", err)
	}
	return cat
}
