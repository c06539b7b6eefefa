package publish

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
	"golang.org/x/sys/unix"

	"holocron/internal/logging"
)

// Stdout is the output path that routes the document to the publisher's
// stdout writer instead of a file.
const Stdout = "-"

const (
	indent   = "  "
	fileMode = 0o644
)

var (
	// ErrIO marks output paths that cannot be written.
	ErrIO = errors.New("io error")
	// ErrLocked reports a concurrent writer holding the output lock.
	ErrLocked = errors.New("output is locked by another writer")
)

// Publisher writes JSON documents atomically.
type Publisher struct {
	stdout io.Writer
	logger *slog.Logger
}

// New constructs a publisher. A nil stdout falls back to os.Stdout.
func New(stdout io.Writer, logger *slog.Logger) *Publisher {
	if stdout == nil {
		stdout = os.Stdout
	}
	return &Publisher{
		stdout: stdout,
		logger: logging.NewComponentLogger(logger, "publish"),
	}
}

// Encode renders v as two-space indented JSON with a trailing newline.
// Non-ASCII text and HTML-significant characters are written verbatim.
func Encode(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", indent)
	if err := enc.Encode(v); err != nil {
		return nil, fmt.Errorf("encode json: %w", err)
	}
	return buf.Bytes(), nil
}

// WriteJSON encodes v and writes it to path, or to stdout when path is "-".
// It returns the number of bytes written.
func (p *Publisher) WriteJSON(ctx context.Context, path string, v any) (int, error) {
	data, err := Encode(v)
	if err != nil {
		return 0, err
	}
	if path == Stdout {
		n, err := p.stdout.Write(data)
		if err != nil {
			return n, fmt.Errorf("%w: write stdout: %w", ErrIO, err)
		}
		return n, nil
	}
	if err := WriteFile(ctx, path, data); err != nil {
		return 0, err
	}
	p.logger.Debug("output published",
		logging.String("path", path),
		logging.Int("bytes", len(data)),
	)
	return len(data), nil
}

// WriteFile replaces path with data so readers see either the previous
// content or the complete new content. The write holds an exclusive lock on
// path+".lock" for its duration; a lock held elsewhere fails with ErrLocked.
func WriteFile(ctx context.Context, path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := CheckWritable(dir); err != nil {
		return err
	}
	if info, err := os.Stat(path); err == nil && info.IsDir() {
		return fmt.Errorf("%w: output %q is a directory", ErrIO, path)
	}

	lock := flock.New(path + ".lock")
	ok, err := lock.TryLock()
	if err != nil {
		return fmt.Errorf("%w: acquire output lock: %w", ErrIO, err)
	}
	if !ok {
		return fmt.Errorf("%w: %s", ErrLocked, path)
	}
	defer func() {
		_ = lock.Unlock()
	}()

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("%w: create temp file: %w", ErrIO, err)
	}
	tmpName := tmp.Name()
	committed := false
	defer func() {
		if !committed {
			_ = tmp.Close()
			_ = os.Remove(tmpName)
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		return fmt.Errorf("%w: write temp file: %w", ErrIO, err)
	}
	if err := tmp.Sync(); err != nil {
		return fmt.Errorf("%w: sync temp file: %w", ErrIO, err)
	}
	if err := tmp.Chmod(fileMode); err != nil {
		return fmt.Errorf("%w: chmod temp file: %w", ErrIO, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("%w: close temp file: %w", ErrIO, err)
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("%w: replace %q: %w", ErrIO, path, err)
	}
	committed = true
	return nil
}

// CheckWritable verifies that dir exists, is a directory, and accepts new
// entries.
func CheckWritable(dir string) error {
	info, err := os.Stat(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: output directory %q does not exist", ErrIO, dir)
		}
		return fmt.Errorf("%w: stat output directory: %w", ErrIO, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%w: %q is not a directory", ErrIO, dir)
	}
	if err := unix.Access(dir, unix.W_OK|unix.X_OK); err != nil {
		return fmt.Errorf("%w: output directory %q is not writable: %w", ErrIO, dir, err)
	}
	return nil
}
