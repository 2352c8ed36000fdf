package tools

import (
	"encoding/json"
	"fmt"
	"math"
	"sort"
	"strings"
)

// Args wraps the raw argument map of a tool call with typed accessors.
// Accessors report wrong types as errors instead of silently coercing.
type Args map[string]interface{}

// Has reports whether key is present with a non-empty value.
func (a Args) Has(key string) bool {
	v, ok := a[key]
	if !ok || v == nil {
		return false
	}
	if s, isString := v.(string); isString {
		return strings.TrimSpace(s) != ""
	}
	return true
}

// String returns a required, non-empty string argument.
func (a Args) String(key string) (string, error) {
	if !a.Has(key) {
		return "", fmt.Errorf("missing required argument: %s", key)
	}
	s, ok := a[key].(string)
	if !ok {
		return "", fmt.Errorf("argument %s must be a string, got %T", key, a[key])
	}
	return s, nil
}

// OptionalString returns a string argument or "" when it is absent.
func (a Args) OptionalString(key string) (string, error) {
	v, ok := a[key]
	if !ok || v == nil {
		return "", nil
	}
	s, isString := v.(string)
	if !isString {
		return "", fmt.Errorf("argument %s must be a string, got %T", key, v)
	}
	return s, nil
}

// Int returns an integer argument or def when it is absent. JSON numbers
// arrive as float64 and must be integral.
func (a Args) Int(key string, def int) (int, error) {
	v, ok := a[key]
	if !ok || v == nil {
		return def, nil
	}
	switch n := v.(type) {
	case int:
		return n, nil
	case int64:
		if n < math.MinInt || n > math.MaxInt {
			return 0, fmt.Errorf("argument %s is out of range", key)
		}
		return int(n), nil
	case float64:
		if n != math.Trunc(n) {
			return 0, fmt.Errorf("argument %s must be an integer, got %v", key, n)
		}
		if n < math.MinInt || n >= -float64(math.MinInt) {
			return 0, fmt.Errorf("argument %s is out of range", key)
		}
		return int(n), nil
	case json.Number:
		i, err := n.Int64()
		if err != nil {
			return 0, fmt.Errorf("argument %s must be an integer: %w", key, err)
		}
		if i < math.MinInt || i > math.MaxInt {
			return 0, fmt.Errorf("argument %s is out of range", key)
		}
		return int(i), nil
	default:
		return 0, fmt.Errorf("argument %s must be an integer, got %T", key, v)
	}
}

// Bool returns a boolean argument or def when it is absent.
func (a Args) Bool(key string, def bool) (bool, error) {
	v, ok := a[key]
	if !ok || v == nil {
		return def, nil
	}
	b, isBool := v.(bool)
	if !isBool {
		return false, fmt.Errorf("argument %s must be a boolean, got %T", key, v)
	}
	return b, nil
}

// StringSlice returns a list of strings. An absent key yields nil.
func (a Args) StringSlice(key string) ([]string, error) {
	v, ok := a[key]
	if !ok || v == nil {
		return nil, nil
	}
	switch list := v.(type) {
	case []string:
		return list, nil
	case []interface{}:
		out := make([]string, 0, len(list))
		for i, item := range list {
			s, isString := item.(string)
			if !isString {
				return nil, fmt.Errorf("argument %s[%d] must be a string, got %T", key, i, item)
			}
			out = append(out, s)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("argument %s must be an array of strings, got %T", key, v)
	}
}

// StringMap returns an object argument whose values are all strings.
// An absent key yields nil.
func (a Args) StringMap(key string) (map[string]string, error) {
	v, ok := a[key]
	if !ok || v == nil {
		return nil, nil
	}
	switch m := v.(type) {
	case map[string]string:
		return m, nil
	case map[string]interface{}:
		out := make(map[string]string, len(m))
		for k, item := range m {
			s, isString := item.(string)
			if !isString {
				return nil, fmt.Errorf("argument %s.%s must be a string, got %T", key, k, item)
			}
			out[k] = s
		}
		return out, nil
	default:
		return nil, fmt.Errorf("argument %s must be an object, got %T", key, v)
	}
}

// Object returns an object argument as-is. An absent key yields nil.
func (a Args) Object(key string) (map[string]interface{}, error) {
	v, ok := a[key]
	if !ok || v == nil {
		return nil, nil
	}
	m, isMap := v.(map[string]interface{})
	if !isMap {
		return nil, fmt.Errorf("argument %s must be an object, got %T", key, v)
	}
	return m, nil
}

// ExactlyOne checks that exactly one of keys is present and returns it.
func (a Args) ExactlyOne(keys ...string) (string, error) {
	var present []string
	for _, key := range keys {
		if a.Has(key) {
			present = append(present, key)
		}
	}
	if len(present) == 1 {
		return present[0], nil
	}
	if len(present) == 0 {
		return "", fmt.Errorf("need exactly one of %s", joinAlternatives(keys))
	}
	sort.Strings(present)
	return "", fmt.Errorf("need exactly one of %s, got %s", joinAlternatives(keys), strings.Join(present, " and "))
}

func joinAlternatives(keys []string) string {
	switch len(keys) {
	case 0:
		return ""
	case 1:
		return keys[0]
	default:
		return strings.Join(keys[:len(keys)-1], ", ") + " or " + keys[len(keys)-1]
	}
}
