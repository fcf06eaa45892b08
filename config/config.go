// Package config persists user settings as a JSON document under the
// state directory. Keys are registered up front with a kind and a
// default, so the document never accumulates entries nothing reads.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/google/uuid"

	"github.com/mmadalone/rick-assistant/envconfig"
)

// ErrUnknownKey is returned for keys outside the registry.
var ErrUnknownKey = errors.New("config: unknown key")

const currentVersion = 1

type document struct {
	ID       string         `json:"id"`
	Version  int            `json:"version"`
	Settings map[string]any `json:"settings"`
}

// Config is the handle to the settings document. The zero value reads
// from the state directory; Path overrides the file location (mainly
// for testing).
type Config struct {
	Path string

	mu  sync.Mutex
	doc *document
}

func (c *Config) path() string {
	if c.Path != "" {
		return c.Path
	}
	return filepath.Join(envconfig.StateDir(), "config.json")
}

// legacyPath is the flat settings file older releases wrote.
func (c *Config) legacyPath() string {
	return filepath.Join(filepath.Dir(c.path()), "settings.json")
}

// Load reads the document from disk, replacing any cached state.
func (c *Config) Load() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.doc = nil
	return c.load()
}

// Get returns the stored value for key, or its default when unset.
func (c *Config) Get(key string) (any, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	spec, ok := registry[key]
	if !ok {
		return nil, unknownKey(key)
	}
	if err := c.ensure(); err != nil {
		return nil, err
	}
	if v, ok := c.doc.Settings[key]; ok {
		return v, nil
	}
	return spec.def, nil
}

func (c *Config) Bool(key string) (bool, error) {
	v, err := c.Get(key)
	if err != nil {
		return false, err
	}
	b, ok := v.(bool)
	if !ok {
		return false, fmt.Errorf("config: %s is not a bool", key)
	}
	return b, nil
}

func (c *Config) Int(key string) (int, error) {
	v, err := c.Get(key)
	if err != nil {
		return 0, err
	}
	n, ok := v.(int)
	if !ok {
		return 0, fmt.Errorf("config: %s is not an int", key)
	}
	return n, nil
}

// IsSet reports whether the file carries an explicit value for key,
// as opposed to the registered default.
func (c *Config) IsSet(key string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.ensure(); err != nil {
		return false
	}
	_, ok := c.doc.Settings[key]
	return ok
}

// Set stores a value for key after coercing it to the registered
// kind. The change is in memory until Save.
func (c *Config) Set(key string, value any) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	spec, ok := registry[key]
	if !ok {
		return unknownKey(key)
	}
	coerced, err := coerce(spec, value)
	if err != nil {
		return fmt.Errorf("config: set %s: %w", key, err)
	}
	if err := c.ensure(); err != nil {
		return err
	}
	c.doc.Settings[key] = coerced
	return nil
}

// Unset removes the explicit value for key, reverting it to the
// default.
func (c *Config) Unset(key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := registry[key]; !ok {
		return unknownKey(key)
	}
	if err := c.ensure(); err != nil {
		return err
	}
	delete(c.doc.Settings, key)
	return nil
}

// ID returns the per-install identifier, minting and persisting one
// on first use.
func (c *Config) ID() (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.ensure(); err != nil {
		return "", err
	}
	if c.doc.ID == "" {
		u, err := uuid.NewV7()
		if err != nil {
			return "", fmt.Errorf("mint install id: %w", err)
		}
		c.doc.ID = u.String()
		if err := c.save(); err != nil {
			return "", err
		}
	}
	return c.doc.ID, nil
}

// Save writes the document to disk.
func (c *Config) Save() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.ensure(); err != nil {
		return err
	}
	return c.save()
}

func (c *Config) ensure() error {
	if c.doc != nil {
		return nil
	}
	return c.load()
}

func (c *Config) load() error {
	path := c.path()
	b, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		c.doc = &document{Version: currentVersion, Settings: map[string]any{}}
		c.migrateLegacy()
		return nil
	}
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}

	var doc document
	if err := json.Unmarshal(b, &doc); err != nil {
		// A broken file must not brick the CLI. Keep the bytes for
		// inspection and start over from defaults.
		bad := path + ".bad"
		if renameErr := os.Rename(path, bad); renameErr == nil {
			slog.Warn("config file unreadable, starting from defaults", "error", err, "preserved", bad)
		} else {
			slog.Warn("config file unreadable, starting from defaults", "error", err)
		}
		c.doc = &document{Version: currentVersion, Settings: map[string]any{}}
		return nil
	}

	if doc.Settings == nil {
		doc.Settings = map[string]any{}
	}
	doc.Version = currentVersion
	c.doc = &doc
	c.normalize()
	return nil
}

// normalize coerces loaded values to their registered kinds and drops
// anything the registry does not know.
func (c *Config) normalize() {
	for key, v := range c.doc.Settings {
		spec, ok := registry[key]
		if !ok {
			slog.Warn("dropping unknown config key", "key", key)
			delete(c.doc.Settings, key)
			continue
		}
		coerced, err := coerce(spec, v)
		if err != nil {
			slog.Warn("dropping config value of the wrong type", "key", key, "error", err)
			delete(c.doc.Settings, key)
			continue
		}
		c.doc.Settings[key] = coerced
	}
}

// legacyNames maps the old flat settings.json fields onto registered
// keys.
var legacyNames = map[string]string{
	"color":        "ui.color",
	"unicode":      "ui.unicode",
	"menu_timeout": "ui.menu.idle_seconds",
	"sass_level":   "personality.sass_level",
	"catchphrases": "personality.catchphrases",
}

// migrateLegacy lifts values from the old settings.json into a fresh
// document. Runs only when no config.json exists yet; the old file is
// left in place.
func (c *Config) migrateLegacy() {
	b, err := os.ReadFile(c.legacyPath())
	if err != nil {
		return
	}

	var old map[string]any
	if err := json.Unmarshal(b, &old); err != nil {
		slog.Warn("legacy settings.json unreadable, ignoring", "error", err)
		return
	}

	var moved int
	for oldKey, newKey := range legacyNames {
		v, ok := old[oldKey]
		if !ok {
			continue
		}
		coerced, err := coerce(registry[newKey], v)
		if err != nil {
			slog.Warn("skipping legacy setting", "key", oldKey, "error", err)
			continue
		}
		c.doc.Settings[newKey] = coerced
		moved++
	}

	if moved > 0 {
		slog.Info("migrated settings from settings.json", "keys", moved)
		if err := c.save(); err != nil {
			slog.Warn("could not persist migrated settings", "error", err)
		}
	}
}

// save writes the document atomically with owner-only permissions.
// Callers hold the mutex.
func (c *Config) save() error {
	if c.doc.ID == "" {
		if u, err := uuid.NewV7(); err == nil {
			c.doc.ID = u.String()
		}
	}

	path := c.path()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	b, err := json.MarshalIndent(c.doc, "", "  ")
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), "config-*.json")
	if err != nil {
		return fmt.Errorf("stage config: %w", err)
	}
	defer os.Remove(tmp.Name())

	if err := tmp.Chmod(0o600); err != nil {
		tmp.Close()
		return err
	}
	if _, err := tmp.Write(b); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}

	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("commit config: %w", err)
	}
	return nil
}
