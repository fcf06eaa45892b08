package terminal

import (
	"errors"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"sync/atomic"
	"syscall"

	"golang.org/x/term"
)

var (
	// ErrMenuActive means another guard currently owns raw mode.
	ErrMenuActive = errors.New("terminal: menu already active")

	// ErrNotTerminal means stdin is not attached to a terminal.
	ErrNotTerminal = errors.New("terminal: stdin is not a terminal")
)

// menuActive is the process-wide ownership flag: at most one live
// guard per process.
var menuActive atomic.Bool

// tty abstracts the device operations the guard needs so tests can run
// against an in-memory double.
type tty interface {
	Raw() error
	Restore() error
	Writer() io.Writer
}

// stdioTTY is the real terminal on stdin/stdout.
type stdioTTY struct {
	state *term.State
}

func (t *stdioTTY) Raw() error {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return ErrNotTerminal
	}
	state, err := term.MakeRaw(fd)
	if err != nil {
		return err
	}
	t.state = state
	return nil
}

func (t *stdioTTY) Restore() error {
	if t.state == nil {
		return nil
	}
	return term.Restore(int(os.Stdin.Fd()), t.state)
}

func (t *stdioTTY) Writer() io.Writer { return os.Stdout }

// Guard owns raw terminal mode from Acquire until Release. Release is
// the single path back to cooked mode and runs on every exit: normal
// return, error, or a delivered signal.
type Guard struct {
	t       tty
	screen  bool
	once    sync.Once
	resized atomic.Bool
	sigCh   chan os.Signal
	winchCh chan os.Signal
	done    chan struct{}
}

// Acquire switches the terminal to raw mode, hides the cursor, and
// installs the signal watcher. A second acquisition while a guard is
// live is rejected with ErrMenuActive.
func Acquire() (*Guard, error) {
	return acquire(&stdioTTY{}, true)
}

// AcquireLine takes raw mode for inline editing. It shares the
// ownership flag and signal safety with Acquire but leaves the screen
// contents and cursor visibility alone on both ends, so an editor can
// run in the middle of normal output.
func AcquireLine() (*Guard, error) {
	return acquire(&stdioTTY{}, false)
}

func acquire(t tty, screen bool) (*Guard, error) {
	if !menuActive.CompareAndSwap(false, true) {
		return nil, ErrMenuActive
	}

	if err := t.Raw(); err != nil {
		menuActive.Store(false)
		return nil, err
	}

	g := &Guard{
		t:       t,
		screen:  screen,
		sigCh:   make(chan os.Signal, 1),
		winchCh: make(chan os.Signal, 1),
		done:    make(chan struct{}),
	}
	if screen {
		HideCursor(t.Writer())
	}

	signal.Notify(g.sigCh, syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP, syscall.SIGQUIT)
	notifyResize(g.winchCh)
	go g.watch()

	return g, nil
}

// watch routes termination signals through Release so the terminal is
// sane before the process dies, and records resize notifications for
// the controller to pick up.
func (g *Guard) watch() {
	for {
		select {
		case <-g.done:
			return
		case <-g.winchCh:
			g.resized.Store(true)
		case sig := <-g.sigCh:
			slog.Debug("signal received, restoring terminal", "signal", sig)
			g.Release()
			os.Exit(1)
		}
	}
}

// Resized reports and clears a pending resize notification.
func (g *Guard) Resized() bool {
	return g.resized.Swap(false)
}

// Writer is where guarded output goes.
func (g *Guard) Writer() io.Writer {
	return g.t.Writer()
}

// Release restores the previous terminal mode and, for a full-screen
// guard, shows the cursor and clears the screen. Only the first call
// acts; later calls are no-ops.
func (g *Guard) Release() {
	g.once.Do(func() {
		close(g.done)
		signal.Stop(g.sigCh)
		signal.Stop(g.winchCh)

		g.t.Restore()
		if g.screen {
			w := g.t.Writer()
			ShowCursor(w)
			ResetStyle(w)
			ClearScreen(w)
		}

		menuActive.Store(false)
	})
}
