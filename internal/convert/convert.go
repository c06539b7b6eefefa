package convert

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"holocron/internal/annotate"
	"holocron/internal/catalog"
	"holocron/internal/config"
	"holocron/internal/csvsource"
	"holocron/internal/logging"
	"holocron/internal/publish"
)

const defaultDirectoryFilename = "data.json"

// Options describes one conversion run.
type Options struct {
	// Input is a metadata file or a directory of them.
	Input string
	// Output overrides the derived artifact path; "-" writes to Stdout.
	Output string
	// Layout is config.LayoutTitles or config.LayoutEpisodes.
	Layout string
	// SeriesCode forces every row into one series instead of the id prefix.
	SeriesCode string
	Policy     annotate.Policy
	// DirectoryFilename names the artifact written inside an input directory.
	DirectoryFilename string

	Catalog *catalog.Catalog
	Stdout  io.Writer
	Logger  *slog.Logger
}

// SeriesCount is the number of episodes converted for one series.
type SeriesCount struct {
	Code     string
	Name     string
	Episodes int
}

// Summary reports what a successful run produced.
type Summary struct {
	RunID    string
	Layout   string
	Inputs   []string
	Output   string
	Episodes int
	Series   []SeriesCount
	Bytes    int
	Elapsed  time.Duration
}

// TitlesDocument is the aggregate layout: every episode with its series inlined.
type TitlesDocument struct {
	Titles []annotate.Episode `json:"titles"`
}

// SeriesDocument is the single-series layout.
type SeriesDocument struct {
	Name     string             `json:"name"`
	Episodes []annotate.Episode `json:"episodes"`
}

// Run converts the configured inputs and publishes one document. Nothing is
// written unless every row of every input annotates cleanly.
func Run(ctx context.Context, opts Options) (*Summary, error) {
	started := time.Now()
	if err := opts.normalize(); err != nil {
		return nil, err
	}

	runID := uuid.NewString()
	logger := logging.NewComponentLogger(opts.Logger, "convert").With(logging.String(logging.FieldRunID, runID))

	summary, err := run(ctx, opts, runID, logger)
	if err != nil {
		logging.ErrorWithContext(logger, "conversion failed", "conversion_failed",
			logging.String("error_kind", Kind(err)),
			logging.String(logging.FieldErrorHint, hintFor(err)),
			logging.Error(err),
		)
		return nil, err
	}
	summary.Elapsed = time.Since(started)
	logger.Info("conversion completed",
		logging.String(logging.FieldEventType, "conversion_completed"),
		logging.String("output", summary.Output),
		logging.Int("episodes", summary.Episodes),
		logging.Int("bytes", summary.Bytes),
		logging.Duration("elapsed", summary.Elapsed),
	)
	return summary, nil
}

func run(ctx context.Context, opts Options, runID string, logger *slog.Logger) (*Summary, error) {
	inputs, err := csvsource.Discover(opts.Input, opts.DirectoryFilename)
	if err != nil {
		return nil, err
	}
	output := inputs.Output
	if opts.Output != "" {
		output = opts.Output
	}

	annotator, err := newAnnotator(opts)
	if err != nil {
		return nil, err
	}

	logger.Info("conversion started",
		logging.String(logging.FieldEventType, "conversion_started"),
		logging.String("input", inputs.Root),
		logging.Int("files", len(inputs.Files)),
		logging.String("layout", opts.Layout),
		logging.String("policy", string(annotator.Policy())),
	)

	c := newCollector(opts.Catalog)
	for _, file := range inputs.Files {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if err := c.readFile(ctx, file, annotator, logger); err != nil {
			return nil, err
		}
	}

	doc, err := buildDocument(opts, annotator, c.episodes)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	written, err := publish.New(opts.Stdout, logger).WriteJSON(ctx, output, doc)
	if err != nil {
		return nil, err
	}

	return &Summary{
		RunID:    runID,
		Layout:   opts.Layout,
		Inputs:   inputs.Files,
		Output:   output,
		Episodes: len(c.episodes),
		Series:   c.counts(),
		Bytes:    written,
	}, nil
}

func (o *Options) normalize() error {
	if o.Catalog == nil {
		cfg := config.Default()
		cat, err := catalog.FromConfig(&cfg)
		if err != nil {
			return err
		}
		o.Catalog = cat
	}
	o.Layout = strings.ToLower(strings.TrimSpace(o.Layout))
	if o.Layout == "" {
		o.Layout = config.LayoutTitles
	}
	switch o.Layout {
	case config.LayoutTitles, config.LayoutEpisodes:
	default:
		return wrap(ErrValidation, "options", "layout "+o.Layout+" is not titles or episodes", nil)
	}
	if strings.TrimSpace(o.Input) == "" {
		return wrap(ErrValidation, "options", "input path is required", nil)
	}
	if o.Policy == "" {
		o.Policy = annotate.PolicyLeadingPair
	}
	o.SeriesCode = strings.ToUpper(strings.TrimSpace(o.SeriesCode))
	if o.DirectoryFilename == "" {
		o.DirectoryFilename = defaultDirectoryFilename
	}
	return nil
}

// newAnnotator forces the series when one was named, and in the single-series
// layout falls back to the catalog default.
func newAnnotator(opts Options) (*annotate.Annotator, error) {
	annotatorOpts := []annotate.Option{annotate.WithPolicy(opts.Policy)}
	code := opts.SeriesCode
	if code == "" && opts.Layout == config.LayoutEpisodes {
		code = opts.Catalog.Default().Code
	}
	if code != "" {
		annotatorOpts = append(annotatorOpts, annotate.WithSeries(code))
	}
	return annotate.New(opts.Catalog, annotatorOpts...)
}

func buildDocument(opts Options, annotator *annotate.Annotator, episodes []annotate.Episode) (any, error) {
	if opts.Layout == config.LayoutTitles {
		return TitlesDocument{Titles: episodes}, nil
	}
	series, err := annotator.SeriesFor("")
	if err != nil {
		return nil, err
	}
	for i := range episodes {
		episodes[i].Series = ""
	}
	return SeriesDocument{Name: series.Name, Episodes: episodes}, nil
}

type collector struct {
	catalog  *catalog.Catalog
	episodes []annotate.Episode
	byCode   map[string]int
}

func newCollector(cat *catalog.Catalog) *collector {
	return &collector{
		catalog:  cat,
		episodes: []annotate.Episode{},
		byCode:   make(map[string]int),
	}
}

func (c *collector) readFile(ctx context.Context, path string, annotator *annotate.Annotator, logger *slog.Logger) error {
	source := filepath.Base(path)
	fileLogger := logger.With(logging.String(logging.FieldSource, source))
	before := len(c.episodes)

	err := csvsource.ReadFile(ctx, path, func(rec csvsource.Record) error {
		row := annotate.Row(rec.Values)
		id := row[annotate.ColumnID]
		series, err := annotator.SeriesFor(id)
		if err != nil {
			return &annotate.RowError{Source: source, Line: rec.Line, EpisodeID: id, Err: err}
		}
		ep, err := annotator.AnnotateRow(row, series)
		if err != nil {
			return &annotate.RowError{Source: source, Line: rec.Line, EpisodeID: id, Err: err}
		}
		c.episodes = append(c.episodes, ep)
		c.byCode[series.Code]++
		fileLogger.Debug("episode annotated",
			logging.String(logging.FieldEpisodeID, ep.ID),
			logging.String(logging.FieldSeries, series.Code),
			logging.Int("line", rec.Line),
		)
		return nil
	})
	if err != nil {
		return err
	}
	fileLogger.Info("input read", logging.Int("episodes", len(c.episodes)-before))
	return nil
}

// counts lists per-series totals in catalog order, skipping empty series.
func (c *collector) counts() []SeriesCount {
	out := make([]SeriesCount, 0, len(c.byCode))
	for _, series := range c.catalog.Series() {
		n := c.byCode[series.Code]
		if n == 0 {
			continue
		}
		out = append(out, SeriesCount{Code: series.Code, Name: series.Name, Episodes: n})
	}
	return out
}

func hintFor(err error) string {
	var rowErr *annotate.RowError
	switch Kind(err) {
	case KindUnknownSeriesCode:
		if errors.As(err, &rowErr) {
			return "check the id prefix in " + rowErr.Source + " or pass --series"
		}
		return "run `holocron series` to list known codes"
	case KindMalformedNumber:
		return "chronological must be a whole number"
	case KindLocked:
		return "another conversion is writing the same output; retry when it finishes"
	case KindIO:
		return "check that the input exists and the output directory is writable"
	case KindValidation:
		return "check command flags and config values"
	default:
		return "check logs for details"
	}
}
