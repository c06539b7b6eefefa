package annotate

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

type scalarKind uint8

const (
	kindString scalarKind = iota
	kindInt
	kindFloat
)

// Scalar is a best-effort typed column value: exactly one of integer, float, or
// string. The zero value is the empty string.
type Scalar struct {
	kind scalarKind
	i    int64
	f    float64
	s    string
}

// Int returns an integer scalar.
func Int(v int64) Scalar { return Scalar{kind: kindInt, i: v} }

// Float returns a float scalar.
func Float(v float64) Scalar { return Scalar{kind: kindFloat, f: v} }

// String returns a string scalar.
func String(v string) Scalar { return Scalar{kind: kindString, s: v} }

// Coerce applies the column sniffing rules: a non-empty run of ASCII digits is
// an integer; a value that becomes such a run after dropping one '.' is a
// float; anything else is kept verbatim. Negative numbers and exponents stay
// strings. Digit runs that overflow int64 also stay strings.
func Coerce(raw string) Scalar {
	if isDigits(raw) {
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return String(raw)
		}
		return Int(n)
	}
	if strings.Contains(raw, ".") && isDigits(strings.Replace(raw, ".", "", 1)) {
		f, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return String(raw)
		}
		return Float(f)
	}
	return String(raw)
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// IsInt reports whether the scalar holds an integer.
func (s Scalar) IsInt() bool { return s.kind == kindInt }

// IsFloat reports whether the scalar holds a float.
func (s Scalar) IsFloat() bool { return s.kind == kindFloat }

// IsString reports whether the scalar holds a string.
func (s Scalar) IsString() bool { return s.kind == kindString }

// Int64 returns the integer value; false when the scalar is not an integer.
func (s Scalar) Int64() (int64, bool) { return s.i, s.kind == kindInt }

// Float64 returns the float value; false when the scalar is not a float.
func (s Scalar) Float64() (float64, bool) { return s.f, s.kind == kindFloat }

// String renders the scalar the way it appears in JSON, without quotes for strings.
func (s Scalar) String() string {
	switch s.kind {
	case kindInt:
		return strconv.FormatInt(s.i, 10)
	case kindFloat:
		return formatFloat(s.f)
	default:
		return s.s
	}
}

// Floats always carry a fractional part so they never decode back as integers.
func formatFloat(f float64) string {
	out := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.ContainsAny(out, ".eE") {
		out += ".0"
	}
	return out
}

func (s Scalar) MarshalJSON() ([]byte, error) {
	switch s.kind {
	case kindInt, kindFloat:
		return []byte(s.String()), nil
	default:
		var buf bytes.Buffer
		enc := json.NewEncoder(&buf)
		enc.SetEscapeHTML(false)
		if err := enc.Encode(s.s); err != nil {
			return nil, err
		}
		return bytes.TrimRight(buf.Bytes(), "\n"), nil
	}
}

func (s *Scalar) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return fmt.Errorf("annotate: empty scalar")
	}
	if trimmed[0] == '"' {
		var v string
		if err := json.Unmarshal(trimmed, &v); err != nil {
			return err
		}
		*s = String(v)
		return nil
	}
	literal := string(trimmed)
	if !strings.ContainsAny(literal, ".eE") {
		n, err := strconv.ParseInt(literal, 10, 64)
		if err != nil {
			return fmt.Errorf("annotate: decode integer scalar %q: %w", literal, err)
		}
		*s = Int(n)
		return nil
	}
	f, err := strconv.ParseFloat(literal, 64)
	if err != nil {
		return fmt.Errorf("annotate: decode float scalar %q: %w", literal, err)
	}
	*s = Float(f)
	return nil
}
