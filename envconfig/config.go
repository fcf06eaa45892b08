// Package envconfig reads rick-assistant configuration from RICK_*
// environment variables. Environment values always win over the config
// file; unset variables fall back to the defaults documented here.
package envconfig

import (
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// Var returns an environment variable stripped of surrounding
// whitespace and quotes.
func Var(key string) string {
	return strings.Trim(strings.TrimSpace(os.Getenv(key)), "\"'")
}

// Bool returns a function that reads k as a boolean, defaulting to false.
func Bool(k string) func() bool {
	withDefault := BoolWithDefault(k)
	return func() bool {
		return withDefault(false)
	}
}

// BoolWithDefault returns a function that reads k as a boolean with a
// caller-supplied default. A set-but-unparseable value counts as true,
// matching the convention that exporting the variable at all opts in.
func BoolWithDefault(k string) func(defaultValue bool) bool {
	return func(defaultValue bool) bool {
		if s := Var(k); s != "" {
			b, err := strconv.ParseBool(s)
			if err != nil {
				return true
			}
			return b
		}
		return defaultValue
	}
}

// String returns a function that reads k verbatim.
func String(k string) func() string {
	return func() string {
		return Var(k)
	}
}

// Uint returns a function that reads key as an unsigned integer with a
// default, warning on unparseable values.
func Uint(key string, defaultValue uint) func() uint {
	return func() uint {
		if s := Var(key); s != "" {
			if n, err := strconv.ParseUint(s, 10, 64); err != nil {
				slog.Warn("invalid environment variable, using default", "key", key, "value", s, "default", defaultValue)
			} else {
				return uint(n)
			}
		}
		return defaultValue
	}
}

// Duration returns a function that reads key as a time.Duration,
// accepting either a duration string ("90s", "2m") or a bare integer in
// the given unit. Negative values mean no limit.
func Duration(key string, defaultValue time.Duration, unit time.Duration) func() time.Duration {
	return func() time.Duration {
		d := defaultValue
		if s := Var(key); s != "" {
			if parsed, err := time.ParseDuration(s); err == nil {
				d = parsed
			} else if n, err := strconv.ParseInt(s, 10, 64); err == nil {
				d = time.Duration(n) * unit
			}
		}

		if d < 0 {
			return time.Duration(math.MaxInt64)
		}
		return d
	}
}

// LogLevel returns the slog level. Configurable via RICK_DEBUG:
// unset or 0/false is INFO, 1/true is DEBUG, 2 is TRACE.
func LogLevel() slog.Level {
	level := slog.LevelInfo
	if s := Var("RICK_DEBUG"); s != "" {
		if b, _ := strconv.ParseBool(s); b {
			level = slog.LevelDebug
		} else if i, _ := strconv.ParseInt(s, 10, 64); i != 0 {
			level = slog.Level(i * -4)
		}
	}

	return level
}

// StateDir returns the directory holding the config file and logs.
// Configurable via RICK_HOME. Default: $HOME/.rick_assistant
func StateDir() string {
	if s := Var("RICK_HOME"); s != "" {
		return s
	}

	home, err := os.UserHomeDir()
	if err != nil {
		// No home directory at all. Fall back to the working
		// directory rather than refusing to start.
		return ".rick_assistant"
	}

	return filepath.Join(home, ".rick_assistant")
}

var (
	// Color forces color output on or off, overriding terminal
	// detection. Configurable via RICK_COLOR.
	Color = BoolWithDefault("RICK_COLOR")

	// Unicode forces unicode glyphs on or off, overriding locale
	// detection. Configurable via RICK_UNICODE.
	Unicode = BoolWithDefault("RICK_UNICODE")

	// SassLevel overrides the configured personality intensity (0-10).
	// The out-of-range default means "no override".
	// Configurable via RICK_PERSONALITY.
	SassLevel = Uint("RICK_PERSONALITY", 11)

	// MenuIdle is how long a menu waits on silent input before
	// cancelling itself. Bare integers are seconds; negative means
	// wait forever. Configurable via RICK_MENU_IDLE. Default: 2m
	MenuIdle = Duration("RICK_MENU_IDLE", 2*time.Minute, time.Second)

	// KeyTimeout bounds a single raw read. Bare integers are
	// milliseconds. Configurable via RICK_KEY_TIMEOUT. Default: 150ms
	KeyTimeout = Duration("RICK_KEY_TIMEOUT", 150*time.Millisecond, time.Millisecond)
)

// EnvVar describes one environment variable for help output.
type EnvVar struct {
	Name        string
	Value       any
	Description string
}

// AsMap returns every supported variable with its current value.
func AsMap() map[string]EnvVar {
	return map[string]EnvVar{
		"RICK_DEBUG":       {"RICK_DEBUG", LogLevel(), "Show additional debug information (e.g. RICK_DEBUG=1)"},
		"RICK_HOME":        {"RICK_HOME", StateDir(), "Directory for the config file and logs (default \"~/.rick_assistant\")"},
		"RICK_COLOR":       {"RICK_COLOR", Var("RICK_COLOR"), "Force color output on or off, overriding detection"},
		"RICK_UNICODE":     {"RICK_UNICODE", Var("RICK_UNICODE"), "Force unicode glyphs on or off, overriding locale detection"},
		"RICK_PERSONALITY": {"RICK_PERSONALITY", Var("RICK_PERSONALITY"), "Override the configured sass level (0-10)"},
		"RICK_MENU_IDLE":   {"RICK_MENU_IDLE", MenuIdle(), "How long a menu waits on silent input before cancelling (default \"2m\")"},
		"RICK_KEY_TIMEOUT": {"RICK_KEY_TIMEOUT", KeyTimeout(), "Upper bound for a single key read (default \"150ms\")"},
	}
}
