package utils

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

var (
	ErrNull      = errors.New("must not be null")
	ErrNotNumber = errors.New("must be a number")
	ErrNotInt    = errors.New("must be an integer")
	ErrNotString = errors.New("must be a string")
)

// ParseObject decodes a JSON object into its raw members. Anything other
// than an object (array, scalar, malformed input) is an error.
func ParseObject(input []byte) (map[string]json.RawMessage, error) {
	trimmed := bytes.TrimSpace(input)
	if len(trimmed) == 0 {
		return nil, fmt.Errorf("empty input")
	}
	if trimmed[0] != '{' {
		return nil, fmt.Errorf("expected a JSON object, got: %s", truncateString(string(trimmed), 40))
	}

	var obj map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &obj); err != nil {
		return nil, fmt.Errorf("failed to parse JSON: %w", err)
	}
	return obj, nil
}

// CoerceFloat accepts a JSON number or a string holding one
func CoerceFloat(raw json.RawMessage) (float64, error) {
	raw = bytes.TrimSpace(raw)
	if isNull(raw) {
		return 0, ErrNull
	}

	var s string
	if json.Unmarshal(raw, &s) == nil {
		v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
			return 0, ErrNotNumber
		}
		return v, nil
	}

	var v float64
	if err := json.Unmarshal(raw, &v); err != nil {
		return 0, ErrNotNumber
	}
	return v, nil
}

// CoerceInt accepts a JSON number, truncated toward zero, or a string
// holding a base-10 integer.
func CoerceInt(raw json.RawMessage) (int, error) {
	raw = bytes.TrimSpace(raw)
	if isNull(raw) {
		return 0, ErrNull
	}

	var s string
	if json.Unmarshal(raw, &s) == nil {
		v, err := strconv.Atoi(strings.TrimSpace(s))
		if err != nil {
			return 0, ErrNotInt
		}
		return v, nil
	}

	var v float64
	if err := json.Unmarshal(raw, &v); err != nil {
		return 0, ErrNotInt
	}
	t := math.Trunc(v)
	if t > math.MaxInt32 || t < math.MinInt32 {
		return 0, ErrNotInt
	}
	return int(t), nil
}

// CoerceString accepts only a JSON string
func CoerceString(raw json.RawMessage) (string, error) {
	raw = bytes.TrimSpace(raw)
	if isNull(raw) {
		return "", ErrNull
	}

	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", ErrNotString
	}
	return s, nil
}

func isNull(raw json.RawMessage) bool {
	return len(raw) == 0 || bytes.Equal(raw, []byte("null"))
}

// truncateString truncates a string to maxLen characters
func truncateString(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
