package config

import (
	"fmt"
	"math"
	"slices"
	"strconv"

	"github.com/agnivade/levenshtein"
)

// Kind is the value type a registered key accepts.
type Kind int

const (
	KindBool Kind = iota
	KindInt
	KindString
)

func (k Kind) String() string {
	switch k {
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindString:
		return "string"
	}
	return "unknown"
}

// keySpec describes one registered setting. min and max bound int
// values; out-of-range assignments are clamped, not rejected.
type keySpec struct {
	kind     Kind
	def      any
	min, max int
	usage    string
}

// registry is the closed set of keys the document accepts.
var registry = map[string]keySpec{
	"ui.color":                 {kind: KindBool, def: true, usage: "render menus with ANSI colors"},
	"ui.unicode":               {kind: KindBool, def: true, usage: "render menus with unicode glyphs"},
	"ui.menu.idle_seconds":     {kind: KindInt, def: 120, min: 1, max: 86400, usage: "seconds of silence before a menu cancels itself"},
	"personality.sass_level":   {kind: KindInt, def: 7, min: 0, max: 10, usage: "how much attitude responses carry (0-10)"},
	"personality.catchphrases": {kind: KindBool, def: true, usage: "sprinkle catchphrases into command output"},
	"metrics.enabled":          {kind: KindBool, def: true, usage: "sample system metrics for the menu footer"},
}

// Keys returns every registered key, sorted.
func Keys() []string {
	keys := make([]string, 0, len(registry))
	for k := range registry {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// Default returns the registered default for key.
func Default(key string) (any, error) {
	spec, ok := registry[key]
	if !ok {
		return nil, unknownKey(key)
	}
	return spec.def, nil
}

// Usage returns the one-line description for key, or "" for unknown
// keys.
func Usage(key string) string {
	return registry[key].usage
}

func unknownKey(key string) error {
	if near := nearest(key); near != "" {
		return fmt.Errorf("%w: %q (did you mean %q?)", ErrUnknownKey, key, near)
	}
	return fmt.Errorf("%w: %q", ErrUnknownKey, key)
}

// nearest finds the registered key closest to the given one, ignoring
// far-off matches where a suggestion would only confuse.
func nearest(key string) string {
	best, score := "", math.MaxInt
	for _, k := range Keys() {
		if d := levenshtein.ComputeDistance(key, k); d < score {
			score, best = d, k
		}
	}
	if score <= 5 {
		return best
	}
	return ""
}

// coerce converts value to the spec's kind. JSON numbers arrive as
// float64 and CLI arguments as strings; both are accepted.
func coerce(spec keySpec, value any) (any, error) {
	switch spec.kind {
	case KindBool:
		switch v := value.(type) {
		case bool:
			return v, nil
		case string:
			b, err := strconv.ParseBool(v)
			if err != nil {
				return nil, fmt.Errorf("not a bool: %q", v)
			}
			return b, nil
		}
	case KindInt:
		switch v := value.(type) {
		case int:
			return clampInt(spec, v), nil
		case float64:
			if v != math.Trunc(v) {
				return nil, fmt.Errorf("not an integer: %v", v)
			}
			return clampInt(spec, int(v)), nil
		case string:
			n, err := strconv.Atoi(v)
			if err != nil {
				return nil, fmt.Errorf("not an integer: %q", v)
			}
			return clampInt(spec, n), nil
		}
	case KindString:
		if v, ok := value.(string); ok {
			return v, nil
		}
	}
	return nil, fmt.Errorf("cannot use %T as %s", value, spec.kind)
}

func clampInt(spec keySpec, n int) int {
	if n < spec.min {
		return spec.min
	}
	if n > spec.max {
		return spec.max
	}
	return n
}
