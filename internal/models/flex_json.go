package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// FlexFloat accepts both native JSON numbers and string-encoded numbers.
// The analytics backend serialises SQL NUMERIC aggregates (ROUND(...)) as either,
// depending on the driver path, so every percentage field uses this type.
type FlexFloat float64

// UnmarshalJSON implements flexible decoding: 61.25, "61.25" and "" are all accepted.
// JSON null leaves the value untouched, which keeps pointer fields nil.
func (f *FlexFloat) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		return nil
	}

	// Fast path: native number
	var n float64
	if err := json.Unmarshal(data, &n); err == nil {
		*f = FlexFloat(n)
		return nil
	}

	s, err := unquote(data)
	if err != nil {
		return fmt.Errorf("flex float: %w", err)
	}
	if s == "" {
		*f = 0
		return nil
	}
	parsed, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("flex float %q: %w", s, err)
	}
	*f = FlexFloat(parsed)
	return nil
}

// Float returns the value as a float64.
func (f FlexFloat) Float() float64 { return float64(f) }

// FlexInt accepts integers, floats with no fractional loss ("28.0") and strings.
// Counts coming back from SUM() over NUMERIC columns arrive as "12" or 12.0.
type FlexInt int64

func (i *FlexInt) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		return nil
	}

	var n float64
	if err := json.Unmarshal(data, &n); err == nil {
		*i = FlexInt(n)
		return nil
	}

	s, err := unquote(data)
	if err != nil {
		return fmt.Errorf("flex int: %w", err)
	}
	if s == "" {
		*i = 0
		return nil
	}
	// ParseFloat handles "28.5" -> truncate to int
	parsed, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("flex int %q: %w", s, err)
	}
	*i = FlexInt(parsed)
	return nil
}

// Int returns the value as an int.
func (i FlexInt) Int() int { return int(i) }

func unquote(data []byte) (string, error) {
	if len(data) < 2 || data[0] != '"' {
		return "", fmt.Errorf("unexpected token %s", truncate(string(data), 32))
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return "", err
	}
	return strings.TrimSpace(s), nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
