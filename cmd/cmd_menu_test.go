package cmd

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/mmadalone/rick-assistant/config"
	"github.com/mmadalone/rick-assistant/menu"
	"github.com/mmadalone/rick-assistant/terminal"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	return &config.Config{Path: filepath.Join(t.TempDir(), "config.json")}
}

// muteDetection pins every probe input so detection comes out all-off.
func muteDetection(t *testing.T) {
	t.Helper()
	t.Setenv("NO_COLOR", "")
	t.Setenv("COLORTERM", "")
	t.Setenv("TERM", "dumb")
	t.Setenv("LC_ALL", "C")
	t.Setenv("RICK_COLOR", "")
	t.Setenv("RICK_UNICODE", "")
}

func TestDetectCapsLayersConfig(t *testing.T) {
	muteDetection(t)
	cfg := testConfig(t)

	caps := detectCaps(cfg)
	require.False(t, caps.Color)
	require.False(t, caps.Unicode)

	// A stored preference beats detection.
	require.NoError(t, cfg.Set("ui.color", true))
	require.NoError(t, cfg.Set("ui.unicode", true))
	caps = detectCaps(cfg)
	require.True(t, caps.Color)
	require.True(t, caps.Unicode)

	// The environment beats the stored preference.
	t.Setenv("RICK_COLOR", "0")
	caps = detectCaps(cfg)
	require.False(t, caps.Color)
	require.True(t, caps.Unicode)
}

func TestMenuIdlePrecedence(t *testing.T) {
	t.Setenv("RICK_MENU_IDLE", "")
	cfg := testConfig(t)

	// Registry default with nothing stored.
	require.Equal(t, 120*time.Second, menuIdle(cfg))

	require.NoError(t, cfg.Set("ui.menu.idle_seconds", 30))
	require.Equal(t, 30*time.Second, menuIdle(cfg))

	t.Setenv("RICK_MENU_IDLE", "5")
	require.Equal(t, 5*time.Second, menuIdle(cfg))
}

func TestToggleFlipsAndPersists(t *testing.T) {
	muteDetection(t)
	cfg := testConfig(t)
	u := &menuUI{cfg: cfg, caps: terminal.Capabilities{Width: 80, Height: 24}}

	require.NoError(t, u.toggle("ui.color"))

	// ui.color defaults to true, so one toggle stores false, and the
	// capability snapshot follows.
	on, err := cfg.Bool("ui.color")
	require.NoError(t, err)
	require.False(t, on)
	require.False(t, u.caps.Color)

	fresh := &config.Config{Path: cfg.Path}
	on, err = fresh.Bool("ui.color")
	require.NoError(t, err)
	require.False(t, on)
}

func TestToggleItemGlyphs(t *testing.T) {
	cfg := testConfig(t)
	u := &menuUI{cfg: cfg}
	st := menu.NewStyle(terminal.Capabilities{Unicode: true})

	require.Equal(t, "☑ Color output", u.toggleItem(st, "Color output", "ui.color"))
	require.NoError(t, cfg.Set("ui.color", false))
	require.Equal(t, "☐ Color output", u.toggleItem(st, "Color output", "ui.color"))
}

func TestStatusProvider(t *testing.T) {
	line := statusProvider()
	require.Contains(t, line, "CPU: ")
	require.Contains(t, line, " | Up: ")
}
