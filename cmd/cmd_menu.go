package cmd

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/mmadalone/rick-assistant/config"
	"github.com/mmadalone/rick-assistant/envconfig"
	"github.com/mmadalone/rick-assistant/menu"
	"github.com/mmadalone/rick-assistant/personality"
	"github.com/mmadalone/rick-assistant/readline"
	"github.com/mmadalone/rick-assistant/sysinfo"
	"github.com/mmadalone/rick-assistant/terminal"
	"github.com/mmadalone/rick-assistant/version"
)

func newMenuCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "menu",
		Short: "Open the interactive menu",
		Args:  cobra.ExactArgs(0),
		RunE:  MenuHandler,
	}
}

// MenuHandler drives the nested menu screens. Each screen is one
// engine invocation; transitions between screens happen here.
func MenuHandler(cmd *cobra.Command, args []string) error {
	// A panic mid-frame can leave a control sequence half written,
	// which the guard's own release bytes cannot undo.
	defer func() {
		if r := recover(); r != nil {
			terminal.EmergencyReset(os.Stdout)
			panic(r)
		}
	}()

	cfg := &config.Config{}
	if err := cfg.Load(); err != nil {
		return err
	}

	// While a menu owns the screen, log lines go to the state dir
	// instead of stderr.
	if logFile, err := redirectLogs(); err == nil {
		defer logFile.Close()
	}

	ui := &menuUI{
		cfg:  cfg,
		caps: detectCaps(cfg),
		idle: menuIdle(cfg),
	}
	return ui.top(cmd.Context())
}

// menuUI carries what every screen needs: the config handle, one
// capability snapshot, and the idle budget.
type menuUI struct {
	cfg  *config.Config
	caps terminal.Capabilities
	idle time.Duration
}

// open runs one screen and returns its selection.
func (u *menuUI) open(title string, items []string) (int, error) {
	m := &menu.Menu{
		Title: title,
		Items: items,
		Caps:  &u.caps,
		Idle:  u.idle,
	}
	if on, err := u.cfg.Bool("metrics.enabled"); err == nil && on {
		m.Status = statusProvider
	}
	return m.Run()
}

// statusProvider feeds the footer. Each sample gets its own budget so
// a stuck probe only freezes the text, never the menu.
func statusProvider() string {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	return sysinfo.StatusLine(sysinfo.Sample(ctx))
}

func (u *menuUI) top(ctx context.Context) error {
	for {
		sel, err := u.open("Rick Assistant", []string{
			"Settings",
			"System Status",
			"Personality",
			"About",
			"Exit",
		})
		if err != nil {
			return err
		}

		switch sel {
		case 0:
			err = u.settings()
		case 1:
			err = u.status(ctx)
		case 2:
			err = u.personality()
		case 3:
			err = u.about()
		default:
			// Exit item or cancel.
			return nil
		}
		if err != nil {
			return err
		}
	}
}

func (u *menuUI) settings() error {
	for {
		st := menu.NewStyle(u.caps)
		items := []string{
			u.toggleItem(st, "Color output", "ui.color"),
			u.toggleItem(st, "Unicode glyphs", "ui.unicode"),
			u.toggleItem(st, "Status metrics", "metrics.enabled"),
			"Menu idle: " + u.idleLabel(),
			"Back",
		}

		sel, err := u.open("Settings", items)
		if err != nil {
			return err
		}

		switch sel {
		case 0:
			err = u.toggle("ui.color")
		case 1:
			err = u.toggle("ui.unicode")
		case 2:
			err = u.toggle("metrics.enabled")
		case 3:
			err = u.editIdle()
		default:
			return nil
		}
		if err != nil {
			return err
		}
	}
}

func (u *menuUI) personality() error {
	for {
		st := menu.NewStyle(u.caps)
		sass, err := u.cfg.Int("personality.sass_level")
		if err != nil {
			return err
		}
		items := []string{
			u.toggleItem(st, "Catchphrases", "personality.catchphrases"),
			fmt.Sprintf("Sass level: %d", sass),
			"Preview",
			"Back",
		}

		sel, err := u.open("Personality", items)
		if err != nil {
			return err
		}

		switch sel {
		case 0:
			err = u.toggle("personality.catchphrases")
		case 1:
			err = u.sassLevel()
		case 2:
			err = u.preview()
		default:
			return nil
		}
		if err != nil {
			return err
		}
	}
}

// sassLevel is a radio list over the eleven levels; the selected
// index is the level itself.
func (u *menuUI) sassLevel() error {
	current, err := u.cfg.Int("personality.sass_level")
	if err != nil {
		return err
	}

	st := menu.NewStyle(u.caps)
	items := make([]string, 0, 11)
	for n := 0; n <= 10; n++ {
		glyph := st.Glyph(menu.SymRadioOff)
		if n == current {
			glyph = st.Glyph(menu.SymRadioOn)
		}
		items = append(items, fmt.Sprintf("%s %d", glyph, n))
	}

	sel, err := u.open("Sass level", items)
	if err != nil || sel == menu.NoSelection {
		return err
	}
	if err := u.cfg.Set("personality.sass_level", sel); err != nil {
		return err
	}
	return u.cfg.Save()
}

func (u *menuUI) status(ctx context.Context) error {
	sctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	snap := sysinfo.Sample(sctx)

	var b strings.Builder
	writeStatusTable(&b, snap)
	return u.pause(b.String())
}

func (u *menuUI) preview() error {
	speaker := personality.New(u.cfg)
	moods := []personality.Mood{
		personality.Greeting,
		personality.Confirm,
		personality.Cancel,
		personality.Error,
		personality.Status,
	}

	var b strings.Builder
	for _, mood := range moods {
		fmt.Fprintf(&b, "%-10s %s\n", mood.String(), speaker.Line(mood))
	}
	return u.pause(b.String())
}

func (u *menuUI) about() error {
	st := menu.NewStyle(u.caps)
	id, err := u.cfg.ID()
	if err != nil {
		id = "--"
	}

	var b strings.Builder
	fmt.Fprintln(&b, st.Colorize(menu.PaintTitle, "Rick Assistant "+version.Version))
	fmt.Fprintf(&b, "install id   %s\n", id)
	fmt.Fprintf(&b, "state dir    %s\n", envconfig.StateDir())
	fmt.Fprintf(&b, "terminal     %dx%d color=%t unicode=%t\n",
		u.caps.Width, u.caps.Height, u.caps.Color, u.caps.Unicode)
	return u.pause(b.String())
}

// toggleItem renders a checkbox line for a bool key.
func (u *menuUI) toggleItem(st menu.Style, label, key string) string {
	on, _ := u.cfg.Bool(key)
	glyph := st.Glyph(menu.SymCheckOff)
	if on {
		glyph = st.Glyph(menu.SymCheckOn)
	}
	return glyph + " " + label
}

// toggle flips a bool key and persists it. Appearance keys change how
// the next screen draws, so the snapshot is refreshed.
func (u *menuUI) toggle(key string) error {
	on, err := u.cfg.Bool(key)
	if err != nil {
		return err
	}
	if err := u.cfg.Set(key, !on); err != nil {
		return err
	}
	if err := u.cfg.Save(); err != nil {
		return err
	}
	u.caps = detectCaps(u.cfg)
	return nil
}

func (u *menuUI) idleLabel() string {
	n, err := u.cfg.Int("ui.menu.idle_seconds")
	if err != nil {
		return "--"
	}
	return strconv.Itoa(n) + "s"
}

// editIdle opens the inline editor for the idle seconds. Interrupt
// and end-of-input abandon the edit.
func (u *menuUI) editIdle() error {
	current, err := u.cfg.Int("ui.menu.idle_seconds")
	if err != nil {
		return err
	}

	rl, err := readline.New(readline.Prompt{
		Prompt:      "Idle seconds> ",
		Placeholder: strconv.Itoa(current),
	})
	if err != nil {
		return err
	}

	line, err := rl.Readline()
	switch {
	case errors.Is(err, readline.ErrInterrupt), errors.Is(err, io.EOF):
		return nil
	case err != nil:
		return err
	}
	if line == "" {
		return nil
	}

	if err := u.cfg.Set("ui.menu.idle_seconds", line); err != nil {
		return u.pause(err.Error() + "\n")
	}
	if err := u.cfg.Save(); err != nil {
		return err
	}
	u.idle = menuIdle(u.cfg)
	return nil
}

// pause shows text on the restored screen and waits for Enter before
// the next menu clears it.
func (u *menuUI) pause(text string) error {
	fmt.Print(text)
	fmt.Print("\nPress Enter to go back ")
	if _, err := bufio.NewReader(os.Stdin).ReadString('\n'); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

// detectCaps layers stored ui preferences between probe results and
// the environment overrides.
func detectCaps(cfg *config.Config) terminal.Capabilities {
	caps := terminal.Detect()
	if cfg.IsSet("ui.color") {
		if v, err := cfg.Bool("ui.color"); err == nil {
			caps.Color = envconfig.Color(v)
		}
	}
	if cfg.IsSet("ui.unicode") {
		if v, err := cfg.Bool("ui.unicode"); err == nil {
			caps.Unicode = envconfig.Unicode(v)
		}
	}
	return caps
}

// menuIdle resolves the idle budget: RICK_MENU_IDLE when set, the
// stored seconds otherwise.
func menuIdle(cfg *config.Config) time.Duration {
	if envconfig.Var("RICK_MENU_IDLE") != "" {
		return envconfig.MenuIdle()
	}
	if n, err := cfg.Int("ui.menu.idle_seconds"); err == nil {
		return time.Duration(n) * time.Second
	}
	return envconfig.MenuIdle()
}

// redirectLogs points slog at the state dir for the duration of the
// menu, keeping log lines off the raw screen.
func redirectLogs() (*os.File, error) {
	dir := envconfig.StateDir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	logFile, err := os.OpenFile(filepath.Join(dir, "rick.log"), os.O_APPEND|os.O_WRONLY|os.O_CREATE, 0o644)
	if err != nil {
		return nil, err
	}

	handler := slog.NewTextHandler(logFile, &slog.HandlerOptions{
		Level:     envconfig.LogLevel(),
		AddSource: true,
		ReplaceAttr: func(_ []string, attr slog.Attr) slog.Attr {
			if attr.Key == slog.SourceKey {
				source := attr.Value.Any().(*slog.Source)
				source.File = filepath.Base(source.File)
			}
			return attr
		},
	})
	slog.SetDefault(slog.New(handler))
	return logFile, nil
}
