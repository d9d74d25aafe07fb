package tools

import (
	"fmt"
	"strings"

	"github.com/spf13/cast"
)

// ReadString reads a string argument, trimming whitespace.
func ReadString(args map[string]any, key string, required bool) (string, error) {
	v, ok := args[key]
	if !ok || v == nil {
		if required {
			return "", fmt.Errorf("parameter %q is required", key)
		}
		return "", nil
	}
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("parameter %q must be a string", key)
	}
	s = strings.TrimSpace(s)
	if required && s == "" {
		return "", fmt.Errorf("parameter %q is required", key)
	}
	return s, nil
}

// ReadLimit reads an optional numeric argument, coercing JSON numbers and
// numeric strings, and clamps it to [1, max]. A missing argument yields 0 so
// the platform layer applies its own default.
func ReadLimit(args map[string]any, key string, max int) (int, error) {
	v, ok := args[key]
	if !ok || v == nil {
		return 0, nil
	}
	n, err := cast.ToIntE(v)
	if err != nil {
		return 0, fmt.Errorf("parameter %q must be a number", key)
	}
	if n < 1 {
		return 1, nil
	}
	if n > max {
		return max, nil
	}
	return n, nil
}
