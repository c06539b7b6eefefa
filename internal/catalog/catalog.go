package catalog

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"

	"holocron/internal/config"
)

// ErrUnknownSeriesCode indicates an episode id prefix (or --series selector)
// that is not a key of the series offset table.
var ErrUnknownSeriesCode = errors.New("unknown series code")

// Series is one entry of the series offset table.
type Series struct {
	Code   string
	Name   string
	Offset int
}

// Catalog holds the static lookup tables used while annotating rows. A Catalog
// is never mutated after New returns, so it can be shared freely.
type Catalog struct {
	series []Series
	byCode map[string]Series
	macros map[string][]string
	main   map[string]struct{}
	side   map[string]struct{}
}

// New validates and freezes the provided tables. The first series is the default.
func New(series []Series, macros map[string][]string, main, side []string) (*Catalog, error) {
	if len(series) == 0 {
		return nil, errors.New("catalog: at least one series is required")
	}
	c := &Catalog{
		series: make([]Series, 0, len(series)),
		byCode: make(map[string]Series, len(series)),
		macros: make(map[string][]string, len(macros)),
		main:   nameSet(main),
		side:   nameSet(side),
	}
	for _, s := range series {
		if utf8.RuneCountInString(s.Code) != 1 {
			return nil, fmt.Errorf("catalog: series code %q must be a single character", s.Code)
		}
		if strings.TrimSpace(s.Name) == "" {
			return nil, fmt.Errorf("catalog: series %q has no name", s.Code)
		}
		if _, dup := c.byCode[s.Code]; dup {
			return nil, fmt.Errorf("catalog: duplicate series code %q", s.Code)
		}
		c.byCode[s.Code] = s
		c.series = append(c.series, s)
	}
	for name, members := range macros {
		expanded := make([]string, len(members))
		copy(expanded, members)
		c.macros[name] = expanded
	}
	return c, nil
}

// FromConfig builds the catalog from loaded configuration.
func FromConfig(cfg *config.Config) (*Catalog, error) {
	if cfg == nil {
		return nil, errors.New("catalog: config is required")
	}
	series := make([]Series, 0, len(cfg.Series))
	for _, s := range cfg.Series {
		series = append(series, Series{Code: s.Code, Name: s.Name, Offset: s.ChronologicalOffset})
	}
	return New(series, cfg.Macros, cfg.Characters.Main, cfg.Characters.Side)
}

// Lookup resolves a series code.
func (c *Catalog) Lookup(code string) (Series, error) {
	s, ok := c.byCode[code]
	if !ok {
		return Series{}, fmt.Errorf("%w: %q", ErrUnknownSeriesCode, code)
	}
	return s, nil
}

// LookupID resolves the series from the first character of an episode id.
func (c *Catalog) LookupID(id string) (Series, error) {
	r, size := utf8.DecodeRuneInString(id)
	if size == 0 || r == utf8.RuneError {
		return Series{}, fmt.Errorf("%w: episode id %q has no series prefix", ErrUnknownSeriesCode, id)
	}
	return c.Lookup(string(r))
}

// Default returns the first series of the table.
func (c *Catalog) Default() Series {
	return c.series[0]
}

// Series returns a copy of the series table in configured order.
func (c *Catalog) Series() []Series {
	out := make([]Series, len(c.series))
	copy(out, c.series)
	return out
}

// Expand returns the members of a macro group. The returned slice is a copy.
func (c *Catalog) Expand(name string) ([]string, bool) {
	members, ok := c.macros[name]
	if !ok {
		return nil, false
	}
	out := make([]string, len(members))
	copy(out, members)
	return out, true
}

// IsMain reports whether name is in the main-tier set.
func (c *Catalog) IsMain(name string) bool {
	_, ok := c.main[norm.NFC.String(name)]
	return ok
}

// IsSide reports whether name is in the side-tier set.
func (c *Catalog) IsSide(name string) bool {
	_, ok := c.side[norm.NFC.String(name)]
	return ok
}

func nameSet(names []string) map[string]struct{} {
	set := make(map[string]struct{}, len(names))
	for _, name := range names {
		set[norm.NFC.String(name)] = struct{}{}
	}
	return set
}
