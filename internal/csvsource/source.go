package csvsource

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// ErrIO marks unreadable inputs and unusable input paths.
var ErrIO = errors.New("io error")

const (
	// Delimiter separates fields in episode metadata files.
	Delimiter = ';'
	inputExt  = ".csv"
	outputExt = ".json"
	utf8BOM   = "\ufeff"
)

// Inputs is the resolved set of files for one conversion.
type Inputs struct {
	// Root is the path the user supplied, made absolute.
	Root string
	// Directory reports whether Root is a directory of inputs.
	Directory bool
	// Files lists the input files in processing order.
	Files []string
	// Output is the default artifact path for these inputs.
	Output string
}

// Discover resolves a file or directory into the inputs to convert. A directory
// contributes every *.csv file it directly contains, sorted by name, and
// produces directoryFilename inside it. A single file produces a sibling with
// its extension replaced by .json.
func Discover(path, directoryFilename string) (Inputs, error) {
	abs, err := filepath.Abs(strings.TrimSpace(path))
	if err != nil {
		return Inputs{}, fmt.Errorf("%w: resolve %q: %w", ErrIO, path, err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return Inputs{}, fmt.Errorf("%w: inspect input %q: %w", ErrIO, abs, err)
	}

	if !info.IsDir() {
		if strings.EqualFold(filepath.Ext(abs), outputExt) {
			return Inputs{}, fmt.Errorf("%w: input %q would be overwritten by its own output", ErrIO, abs)
		}
		return Inputs{
			Root:   abs,
			Files:  []string{abs},
			Output: strings.TrimSuffix(abs, filepath.Ext(abs)) + outputExt,
		}, nil
	}

	entries, err := os.ReadDir(abs)
	if err != nil {
		return Inputs{}, fmt.Errorf("%w: read directory %q: %w", ErrIO, abs, err)
	}
	files := make([]string, 0, len(entries))
	for _, entry := range entries {
		if !entry.Type().IsRegular() || !strings.EqualFold(filepath.Ext(entry.Name()), inputExt) {
			continue
		}
		files = append(files, filepath.Join(abs, entry.Name()))
	}
	if len(files) == 0 {
		return Inputs{}, fmt.Errorf("%w: no %s files in %q", ErrIO, inputExt, abs)
	}
	return Inputs{
		Root:      abs,
		Directory: true,
		Files:     files,
		Output:    filepath.Join(abs, directoryFilename),
	}, nil
}

// Record is one data row keyed by header column.
type Record struct {
	Source string
	Line   int
	Values map[string]string
}

// Location renders the record position as file:line.
func (r Record) Location() string {
	return fmt.Sprintf("%s:%d", filepath.Base(r.Source), r.Line)
}

// ReadFile streams the rows of one delimited file to fn in source order. The
// first line is the header. Rows shorter than the header omit the missing
// columns; surplus cells are dropped. Reading stops at the first error from
// fn, the reader, or ctx.
func ReadFile(ctx context.Context, path string, fn func(Record) error) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("%w: open %q: %w", ErrIO, path, err)
	}
	defer f.Close()
	return Read(ctx, f, path, fn)
}

// Read is ReadFile over an arbitrary reader; source labels records.
func Read(ctx context.Context, r io.Reader, source string, fn func(Record) error) error {
	reader := csv.NewReader(r)
	reader.Comma = Delimiter
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	header, err := readHeader(reader)
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return fmt.Errorf("%w: read header of %q: %w", ErrIO, source, err)
	}

	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("%w: read %q: %w", ErrIO, source, err)
		}
		line, _ := reader.FieldPos(0)
		values := make(map[string]string, len(header))
		for idx, name := range header {
			if idx >= len(row) {
				break
			}
			values[name] = row[idx]
		}
		if err := fn(Record{Source: source, Line: line, Values: values}); err != nil {
			return err
		}
	}
}

func readHeader(r *csv.Reader) ([]string, error) {
	row, err := r.Read()
	if err != nil {
		return nil, err
	}
	header := make([]string, len(row))
	for idx, name := range row {
		if idx == 0 {
			name = strings.TrimPrefix(name, utf8BOM)
		}
		header[idx] = strings.TrimSpace(name)
	}
	return header, nil
}
