package toolapi

import (
	"fmt"

	"github.com/coreprobe/sysmon/errs"
)

// params is the decoded JSON arguments object a tool handler works with.
type params map[string]any

func requiredString(p params, key string) (string, error) {
	v, ok := p[key]
	if !ok || v == nil {
		return "", fmt.Errorf("%w: missing required parameter %q", errs.ErrInvalidArgument, key)
	}
	s, ok := v.(string)
	if !ok || s == "" {
		return "", fmt.Errorf("%w: parameter %q must be a non-empty string", errs.ErrInvalidArgument, key)
	}
	return s, nil
}

func optionalString(p params, key, def string) string {
	v, ok := p[key]
	if !ok || v == nil {
		return def
	}
	s, ok := v.(string)
	if !ok {
		return def
	}
	return s
}

func requiredInt(p params, key string) (int, error) {
	v, ok := p[key]
	if !ok || v == nil {
		return 0, fmt.Errorf("%w: missing required parameter %q", errs.ErrInvalidArgument, key)
	}
	f, ok := v.(float64)
	if !ok {
		return 0, fmt.Errorf("%w: parameter %q must be an integer", errs.ErrInvalidArgument, key)
	}
	return int(f), nil
}

func requiredInt64(p params, key string) (int64, error) {
	v, ok := p[key]
	if !ok || v == nil {
		return 0, fmt.Errorf("%w: missing required parameter %q", errs.ErrInvalidArgument, key)
	}
	f, ok := v.(float64)
	if !ok {
		return 0, fmt.Errorf("%w: parameter %q must be an integer", errs.ErrInvalidArgument, key)
	}
	return int64(f), nil
}

func optionalInt64(p params, key string, def int64) int64 {
	v, ok := p[key]
	if !ok || v == nil {
		return def
	}
	f, ok := v.(float64)
	if !ok {
		return def
	}
	return int64(f)
}

func optionalBool(p params, key string, def bool) bool {
	v, ok := p[key]
	if !ok || v == nil {
		return def
	}
	b, ok := v.(bool)
	if !ok {
		return def
	}
	return b
}
