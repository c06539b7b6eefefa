package annotate

import (
	"errors"
	"fmt"
	"strings"

	"holocron/internal/catalog"
)

var (
	// ErrMalformedNumber marks a chronological value that does not parse as an integer.
	ErrMalformedNumber = errors.New("malformed number")
	// ErrUnknownSeriesCode marks a series code missing from the offset table.
	ErrUnknownSeriesCode = catalog.ErrUnknownSeriesCode
)

// RowError locates a row annotation failure in its input.
type RowError struct {
	Source    string
	Line      int
	EpisodeID string
	Err       error
}

func (e *RowError) Error() string {
	var b strings.Builder
	if e.Source != "" {
		b.WriteString(e.Source)
		if e.Line > 0 {
			fmt.Fprintf(&b, ":%d", e.Line)
		}
		b.WriteString(": ")
	}
	if e.EpisodeID != "" {
		b.WriteString("episode ")
		b.WriteString(e.EpisodeID)
		b.WriteString(": ")
	}
	if e.Err != nil {
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

func (e *RowError) Unwrap() error { return e.Err }

// ErrorKind classifies the failure for structured logging.
func (e *RowError) ErrorKind() string {
	switch {
	case errors.Is(e.Err, ErrUnknownSeriesCode):
		return "unknown_series_code"
	case errors.Is(e.Err, ErrMalformedNumber):
		return "malformed_number"
	default:
		return "row_error"
	}
}
