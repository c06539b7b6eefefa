package annotate

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"holocron/internal/catalog"
)

// Policy selects how unknown leading names are classified.
type Policy string

const (
	// PolicyLeadingPair buckets unknown names as main until a known main
	// character appears, and at most the first two names qualify that way.
	PolicyLeadingPair Policy = "leading-pair"
	// PolicyFirstOnly buckets only the first name as main unless the name is
	// in the main-tier set.
	PolicyFirstOnly Policy = "first-only"
)

// ParsePolicy validates a policy name.
func ParsePolicy(value string) (Policy, error) {
	switch p := Policy(strings.ToLower(strings.TrimSpace(value))); p {
	case PolicyLeadingPair, PolicyFirstOnly:
		return p, nil
	default:
		return "", fmt.Errorf("unknown character policy %q (want %q or %q)", value, PolicyLeadingPair, PolicyFirstOnly)
	}
}

// Annotator turns raw rows into episode records. It holds no per-row state.
type Annotator struct {
	catalog *catalog.Catalog
	policy  Policy
	forced  *catalog.Series
}

// Option configures an Annotator.
type Option func(*Annotator) error

// WithPolicy selects the character classification policy.
func WithPolicy(p Policy) Option {
	return func(a *Annotator) error {
		parsed, err := ParsePolicy(string(p))
		if err != nil {
			return err
		}
		a.policy = parsed
		return nil
	}
}

// WithSeries annotates every row under the given series code instead of the
// series named by each id prefix.
func WithSeries(code string) Option {
	return func(a *Annotator) error {
		series, err := a.catalog.Lookup(code)
		if err != nil {
			return err
		}
		a.forced = &series
		return nil
	}
}

// New constructs an Annotator over an immutable catalog.
func New(cat *catalog.Catalog, opts ...Option) (*Annotator, error) {
	if cat == nil {
		return nil, errors.New("annotate: catalog is required")
	}
	a := &Annotator{catalog: cat, policy: PolicyLeadingPair}
	for _, opt := range opts {
		if err := opt(a); err != nil {
			return nil, err
		}
	}
	return a, nil
}

// Policy reports the active classification policy.
func (a *Annotator) Policy() Policy { return a.policy }

// Annotate resolves the row's series and annotates it.
func (a *Annotator) Annotate(row Row) (Episode, error) {
	series, err := a.SeriesFor(row[ColumnID])
	if err != nil {
		return Episode{}, err
	}
	return a.AnnotateRow(row, series)
}

// SeriesFor returns the forced series, or the series keyed by the id prefix.
func (a *Annotator) SeriesFor(id string) (catalog.Series, error) {
	if a.forced != nil {
		return *a.forced, nil
	}
	return a.catalog.LookupID(id)
}

// AnnotateRow builds the episode record for one row under the given series.
// Unrecognized columns are ignored; missing columns keep their defaults.
func (a *Annotator) AnnotateRow(row Row, series catalog.Series) (Episode, error) {
	ep := NewEpisode()
	ep.Series = series.Name

	for key, value := range row {
		switch key {
		case ColumnID:
			ep.ID = value
		case ColumnChronological:
			n, err := strconv.Atoi(strings.TrimSpace(value))
			if err != nil {
				return Episode{}, fmt.Errorf("%w: chronological %q", ErrMalformedNumber, value)
			}
			ep.Chronological = n + series.Offset
		case ColumnTags:
			ep.Tags = SplitTags(value)
		case ColumnCharacters:
			ep.Characters = a.SplitCharacters(value)
		case ColumnRecommended:
			ep.Recommended = SplitList(value)
		case ColumnRelevance:
			ep.Relevance = SplitList(value)
		case ColumnImportance:
			ep.Importance = Coerce(value)
		case ColumnRelease:
			ep.Release = Coerce(value)
		case ColumnNumber:
			ep.Number = Coerce(value)
		case ColumnTitle:
			ep.Title = Coerce(value)
		case ColumnName:
			if _, hasTitle := row[ColumnTitle]; !hasTitle {
				ep.Title = Coerce(value)
			}
		case ColumnArc:
			ep.Arc = Coerce(value)
		case ColumnPhase:
			ep.Phase = Coerce(value)
		}
	}
	return ep, nil
}

// SplitList splits a comma separated list, trimming each element. Order and
// duplicates are preserved; the empty string yields an empty list.
func SplitList(raw string) []string {
	if raw == "" {
		return []string{}
	}
	parts := strings.Split(raw, ",")
	for i, part := range parts {
		parts[i] = strings.TrimSpace(part)
	}
	return parts
}

// SplitTags treats the first list element as the primary tag. Without a comma
// the raw value, untrimmed, is the primary tag.
func SplitTags(raw string) Tags {
	if !strings.Contains(raw, ",") {
		return Tags{Primary: raw, Secondary: []string{}}
	}
	parts := SplitList(raw)
	return Tags{Primary: parts[0], Secondary: parts[1:]}
}

// SplitCharacters splits, expands macros, and classifies a character list.
func (a *Annotator) SplitCharacters(raw string) Characters {
	return Classify(a.ExpandMacros(SplitList(raw)), a.catalog, a.policy)
}

// ExpandMacros replaces macro names with their members in place, one level deep.
func (a *Annotator) ExpandMacros(names []string) []string {
	out := make([]string, 0, len(names))
	for _, name := range names {
		if members, ok := a.catalog.Expand(name); ok {
			out = append(out, members...)
			continue
		}
		out = append(out, name)
	}
	return out
}

// Classify buckets each name into exactly one of main, side, or extra, keeping
// input order within each bucket.
func Classify(names []string, cat *catalog.Catalog, policy Policy) Characters {
	chars := Characters{Main: []string{}, Side: []string{}, Extra: []string{}}
	sawMain := false
	for i, name := range names {
		switch {
		case cat.IsMain(name):
			chars.Main = append(chars.Main, name)
			sawMain = true
		case policy == PolicyFirstOnly && i == 0:
			chars.Main = append(chars.Main, name)
		case policy == PolicyLeadingPair && !sawMain:
			chars.Main = append(chars.Main, name)
			if i == 1 {
				sawMain = true
			}
		case cat.IsSide(name):
			chars.Side = append(chars.Side, name)
		default:
			chars.Extra = append(chars.Extra, name)
		}
	}
	return chars
}
