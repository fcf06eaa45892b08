package terminal

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/containerd/console"
	"golang.org/x/term"

	"github.com/mmadalone/rick-assistant/envconfig"
)

// Viewport sanity ranges. Probes outside these snap to the defaults
// rather than the nearest bound; a 3-column "terminal" is a broken
// probe, not a narrow window.
const (
	MinWidth  = 40
	MaxWidth  = 500
	MinHeight = 10
	MaxHeight = 200

	DefaultWidth  = 80
	DefaultHeight = 24
)

// sizeProbeBudget caps how long Detect waits on the device size query.
const sizeProbeBudget = 200 * time.Millisecond

// Capabilities is one snapshot of what the terminal can do. Width and
// Height are always within the sanity ranges above.
type Capabilities struct {
	Color   bool
	Unicode bool
	Width   int
	Height  int
}

// Detect probes the terminal and environment. It never fails; every
// probe has a documented fallback. RICK_COLOR and RICK_UNICODE
// override the detected values.
func Detect() Capabilities {
	caps := Capabilities{
		Color:   envconfig.Color(detectColor()),
		Unicode: envconfig.Unicode(detectUnicode()),
	}
	caps.Width, caps.Height = WindowSize()
	return caps
}

// RefreshSize re-probes the viewport, for use after a resize
// notification. It reports whether the dimensions changed.
func (c *Capabilities) RefreshSize() bool {
	w, h := WindowSize()
	changed := w != c.Width || h != c.Height
	c.Width, c.Height = w, h
	return changed
}

// colorTerms are terminal families assumed to support at least 8
// colors even without a color hint in $TERM.
var colorTerms = []string{
	"xterm",
	"screen",
	"tmux",
	"rxvt",
	"vt100",
	"vt220",
	"linux",
	"cygwin",
	"putty",
	"alacritty",
	"kitty",
	"wezterm",
	"foot",
	"ghostty",
}

func detectColor() bool {
	if envconfig.Var("NO_COLOR") != "" {
		return false
	}

	if s := envconfig.Var("COLORTERM"); s == "truecolor" || s == "24bit" {
		return true
	}

	termName := envconfig.Var("TERM")
	if termName == "" || termName == "dumb" {
		return false
	}
	for _, known := range colorTerms {
		if termName == known || strings.HasPrefix(termName, known+"-") {
			return true
		}
	}
	return strings.Contains(termName, "color") || strings.Contains(termName, "ansi")
}

// detectUnicode checks the locale variables in POSIX precedence order
// for a UTF-8 charset marker.
func detectUnicode() bool {
	for _, key := range []string{"LC_ALL", "LC_CTYPE", "LANG"} {
		if s := envconfig.Var(key); s != "" {
			s = strings.ToUpper(s)
			return strings.Contains(s, "UTF-8") || strings.Contains(s, "UTF8")
		}
	}
	return false
}

// WindowSize returns the viewport dimensions, always within the sanity
// ranges. Probe order: device ioctl, console query, COLUMNS/LINES,
// hard defaults. The device probes run under a fixed budget so a hung
// query cannot stall the caller.
func WindowSize() (int, int) {
	w, h := probeSize(os.Stdout)
	if w <= 0 || h <= 0 {
		w, h = envSize()
	}
	return clampSize(w, h)
}

func probeSize(f *os.File) (int, int) {
	type dims struct{ w, h int }
	ch := make(chan dims, 1)

	go func() {
		if w, h, err := term.GetSize(int(f.Fd())); err == nil {
			ch <- dims{w, h}
			return
		}
		if c, err := console.ConsoleFromFile(f); err == nil {
			if sz, err := c.Size(); err == nil {
				ch <- dims{int(sz.Width), int(sz.Height)}
				return
			}
		}
		ch <- dims{}
	}()

	select {
	case d := <-ch:
		return d.w, d.h
	case <-time.After(sizeProbeBudget):
		return 0, 0
	}
}

func envSize() (int, int) {
	w, _ := strconv.Atoi(envconfig.Var("COLUMNS"))
	h, _ := strconv.Atoi(envconfig.Var("LINES"))
	if w <= 0 {
		w = DefaultWidth
	}
	if h <= 0 {
		h = DefaultHeight
	}
	return w, h
}

func clampSize(w, h int) (int, int) {
	if w < MinWidth || w > MaxWidth {
		w = DefaultWidth
	}
	if h < MinHeight || h > MaxHeight {
		h = DefaultHeight
	}
	return w, h
}
