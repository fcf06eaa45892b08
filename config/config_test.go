package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func testConfig(t *testing.T) *Config {
	t.Helper()
	return &Config{Path: filepath.Join(t.TempDir(), "config.json")}
}

func TestDefaults(t *testing.T) {
	c := testConfig(t)

	color, err := c.Bool("ui.color")
	require.NoError(t, err)
	require.True(t, color)

	sass, err := c.Int("personality.sass_level")
	require.NoError(t, err)
	require.Equal(t, 7, sass)

	require.False(t, c.IsSet("ui.color"))
}

func TestSetSaveRoundtrip(t *testing.T) {
	c := testConfig(t)

	// CLI arguments arrive as strings and coerce to the key's kind.
	require.NoError(t, c.Set("personality.sass_level", "9"))
	require.NoError(t, c.Set("ui.unicode", false))
	require.NoError(t, c.Save())

	info, err := os.Stat(c.Path)
	require.NoError(t, err)
	require.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	fresh := &Config{Path: c.Path}
	sass, err := fresh.Int("personality.sass_level")
	require.NoError(t, err)
	require.Equal(t, 9, sass)

	unicode, err := fresh.Bool("ui.unicode")
	require.NoError(t, err)
	require.False(t, unicode)
	require.True(t, fresh.IsSet("ui.unicode"))
}

func TestIntClamping(t *testing.T) {
	c := testConfig(t)

	require.NoError(t, c.Set("personality.sass_level", "42"))
	sass, err := c.Int("personality.sass_level")
	require.NoError(t, err)
	require.Equal(t, 10, sass)

	require.NoError(t, c.Set("ui.menu.idle_seconds", 0))
	idle, err := c.Int("ui.menu.idle_seconds")
	require.NoError(t, err)
	require.Equal(t, 1, idle)
}

func TestSetRejectsWrongKind(t *testing.T) {
	c := testConfig(t)
	require.Error(t, c.Set("ui.color", "perhaps"))
	require.Error(t, c.Set("personality.sass_level", "high"))
	require.Error(t, c.Set("personality.sass_level", 7.5))
}

func TestUnknownKeySuggestion(t *testing.T) {
	c := testConfig(t)

	_, err := c.Get("personality.sasslevel")
	require.ErrorIs(t, err, ErrUnknownKey)
	require.Contains(t, err.Error(), `did you mean "personality.sass_level"`)

	err = c.Set("ui.colour", true)
	require.ErrorIs(t, err, ErrUnknownKey)
	require.Contains(t, err.Error(), `did you mean "ui.color"`)

	// Nothing close: no suggestion rather than a misleading one.
	_, err = c.Get("zzzzzzzzzzzzzzzz")
	require.ErrorIs(t, err, ErrUnknownKey)
	require.NotContains(t, err.Error(), "did you mean")
}

func TestUnset(t *testing.T) {
	c := testConfig(t)
	require.NoError(t, c.Set("ui.color", false))
	require.True(t, c.IsSet("ui.color"))

	require.NoError(t, c.Unset("ui.color"))
	require.False(t, c.IsSet("ui.color"))

	color, err := c.Bool("ui.color")
	require.NoError(t, err)
	require.True(t, color)

	require.ErrorIs(t, c.Unset("nope"), ErrUnknownKey)
}

func TestCorruptFilePreserved(t *testing.T) {
	c := testConfig(t)
	garbage := []byte("{ not json")
	require.NoError(t, os.WriteFile(c.Path, garbage, 0o600))

	require.NoError(t, c.Load())

	// Back to defaults, with the broken bytes kept for inspection.
	color, err := c.Bool("ui.color")
	require.NoError(t, err)
	require.True(t, color)

	kept, err := os.ReadFile(c.Path + ".bad")
	require.NoError(t, err)
	require.Equal(t, garbage, kept)
}

func TestLoadDropsForeignEntries(t *testing.T) {
	c := testConfig(t)
	doc := map[string]any{
		"id":      "test",
		"version": 1,
		"settings": map[string]any{
			"ui.color":               "perhaps", // wrong type
			"totally.unknown":        true,
			"personality.sass_level": 4,
		},
	}
	b, err := json.Marshal(doc)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(c.Path, b, 0o600))

	require.NoError(t, c.Load())

	color, err := c.Bool("ui.color")
	require.NoError(t, err)
	require.True(t, color) // dropped value reverts to default
	require.False(t, c.IsSet("ui.color"))

	sass, err := c.Int("personality.sass_level")
	require.NoError(t, err)
	require.Equal(t, 4, sass)
}

func TestLegacyMigration(t *testing.T) {
	dir := t.TempDir()
	legacy := map[string]any{
		"sass_level": 3,
		"unicode":    false,
		"color":      true,
		"leftover":   "ignored",
	}
	b, err := json.Marshal(legacy)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "settings.json"), b, 0o600))

	c := &Config{Path: filepath.Join(dir, "config.json")}
	sass, err := c.Int("personality.sass_level")
	require.NoError(t, err)
	require.Equal(t, 3, sass)

	unicode, err := c.Bool("ui.unicode")
	require.NoError(t, err)
	require.False(t, unicode)

	// Migration persists immediately.
	_, err = os.Stat(filepath.Join(dir, "config.json"))
	require.NoError(t, err)

	// Once config.json exists the legacy file is never consulted
	// again.
	changed, _ := json.Marshal(map[string]any{"sass_level": 9})
	require.NoError(t, os.WriteFile(filepath.Join(dir, "settings.json"), changed, 0o600))

	fresh := &Config{Path: filepath.Join(dir, "config.json")}
	sass, err = fresh.Int("personality.sass_level")
	require.NoError(t, err)
	require.Equal(t, 3, sass)
}

func TestInstallID(t *testing.T) {
	c := testConfig(t)

	id, err := c.ID()
	require.NoError(t, err)
	require.Len(t, id, 36)

	// Stable across handles.
	fresh := &Config{Path: c.Path}
	again, err := fresh.ID()
	require.NoError(t, err)
	require.Equal(t, id, again)
}

func TestSaveCreatesStateDir(t *testing.T) {
	c := &Config{Path: filepath.Join(t.TempDir(), "deep", "nested", "config.json")}
	require.NoError(t, c.Set("ui.color", false))
	require.NoError(t, c.Save())

	_, err := os.Stat(c.Path)
	require.NoError(t, err)
}

func TestRegistryHelpers(t *testing.T) {
	keys := Keys()
	require.True(t, slices.IsSorted(keys))
	for _, k := range []string{"ui.color", "ui.unicode", "ui.menu.idle_seconds", "personality.sass_level", "personality.catchphrases", "metrics.enabled"} {
		require.Contains(t, keys, k)
	}

	def, err := Default("personality.sass_level")
	require.NoError(t, err)
	require.Equal(t, 7, def)

	_, err = Default("bogus")
	require.ErrorIs(t, err, ErrUnknownKey)

	for _, k := range keys {
		require.NotEmpty(t, Usage(k), "usage missing for %s", k)
		require.False(t, strings.ContainsAny(Usage(k), "\n"), "multi-line usage for %s", k)
	}
}
