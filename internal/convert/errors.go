package convert

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"holocron/internal/annotate"
	"holocron/internal/csvsource"
	"holocron/internal/publish"
)

var (
	// ErrValidation marks unusable run options.
	ErrValidation = errors.New("validation error")
)

// Error kinds reported by Kind.
const (
	KindValidation        = "validation"
	KindIO                = "io"
	KindLocked            = "locked"
	KindCanceled          = "canceled"
	KindUnknownSeriesCode = "unknown_series_code"
	KindMalformedNumber   = "malformed_number"
	KindRow               = "row_error"
	KindInternal          = "internal"
)

// wrap tags err with marker and a stage/operation detail so callers can both
// read and classify the failure.
func wrap(marker error, stage, operation string, err error) error {
	detail := buildDetail(stage, operation)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", marker, detail, err)
	}
	return fmt.Errorf("%w: %s", marker, detail)
}

// Kind classifies a run failure for structured logs and exit diagnostics.
func Kind(err error) string {
	var rowErr *annotate.RowError
	switch {
	case err == nil:
		return ""
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return KindCanceled
	case errors.As(err, &rowErr):
		switch rowErr.ErrorKind() {
		case "unknown_series_code":
			return KindUnknownSeriesCode
		case "malformed_number":
			return KindMalformedNumber
		default:
			return KindRow
		}
	case errors.Is(err, annotate.ErrUnknownSeriesCode):
		return KindUnknownSeriesCode
	case errors.Is(err, publish.ErrLocked):
		return KindLocked
	case errors.Is(err, csvsource.ErrIO), errors.Is(err, publish.ErrIO):
		return KindIO
	case errors.Is(err, ErrValidation):
		return KindValidation
	default:
		return KindInternal
	}
}

func buildDetail(parts ...string) string {
	kept := make([]string, 0, len(parts))
	for _, part := range parts {
		if part = strings.TrimSpace(part); part != "" {
			kept = append(kept, part)
		}
	}
	if len(kept) == 0 {
		return "conversion failure"
	}
	return strings.Join(kept, ": ")
}
