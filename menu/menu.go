// Package menu implements the interactive selection screens: a
// single-level list navigator over a raw-mode terminal, invoked once
// per screen, with the caller owning transitions between nested menus.
package menu

import (
	"errors"
	"io"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/mmadalone/rick-assistant/envconfig"
	"github.com/mmadalone/rick-assistant/terminal"
)

// NoSelection is the index returned when a menu ends without a pick.
const NoSelection = -1

// ErrNoItems rejects a menu with nothing to select.
var ErrNoItems = errors.New("menu: no items")

// Menu is one selectable screen. Items arrive pre-formatted; the menu
// does not interpret their text.
type Menu struct {
	Title string
	Items []string

	// Status, when set, supplies the footer metrics line. It is
	// sampled on its own goroutine: a slow provider keeps showing its
	// previous value and the render path never waits on it.
	Status func() string

	// Caps, when set, replaces detection. Callers driving several
	// screens in a row detect once and share the snapshot.
	Caps *terminal.Capabilities

	// Idle, when positive, replaces the RICK_MENU_IDLE cancel budget.
	Idle time.Duration
}

// Run is the one-shot form of (*Menu).Run.
func Run(title string, items []string) (int, error) {
	m := &Menu{Title: title, Items: items}
	return m.Run()
}

// Run detects capabilities, takes the terminal, and drives the
// selection loop. It returns the picked index, or NoSelection when the
// menu was cancelled (Escape, q, or the idle budget running out).
func (m *Menu) Run() (int, error) {
	// Caller-contract check happens before any terminal state change.
	if len(m.Items) == 0 {
		return NoSelection, ErrNoItems
	}

	caps := terminal.Detect()
	if m.Caps != nil {
		caps = *m.Caps
	}

	g, err := terminal.Acquire()
	if err != nil {
		return NoSelection, err
	}

	return m.run(g, terminal.NewDecoder(terminal.Stdin()), caps)
}

// session is the slice of the terminal guard the loop needs; tests
// substitute an in-memory double.
type session interface {
	Writer() io.Writer
	Resized() bool
	Release()
}

// keyReader is satisfied by *terminal.Decoder.
type keyReader interface {
	ReadKey(timeout time.Duration) terminal.KeyEvent
}

type loopState int

const (
	running loopState = iota
	selected
	cancelled
)

func (m *Menu) run(s session, keys keyReader, caps terminal.Capabilities) (int, error) {
	defer s.Release()

	readTimeout := envconfig.KeyTimeout()
	if readTimeout <= 0 {
		readTimeout = 150 * time.Millisecond
	}
	idle := m.Idle
	if idle <= 0 {
		idle = envconfig.MenuIdle()
	}
	maxSilent := silentBudget(idle, readTimeout)

	status := newStatusFeed(m.Status)
	defer status.stop()

	r := newRenderer(s.Writer(), caps, m)
	sel, max := 0, len(m.Items)-1
	state := running
	silent := 0

	r.draw(sel)
	r.footer(status.current())

	for state == running {
		ev := keys.ReadKey(readTimeout)

		if ev.Key == terminal.KeyTimeout {
			silent++
			if silent >= maxSilent {
				// Nothing readable for the whole idle budget: the
				// stream is gone or the user left. Cancel instead of
				// spinning forever.
				slog.Debug("idle budget exhausted", "reads", silent)
				state = cancelled
				break
			}
		} else {
			silent = 0
		}

		act, target := actionFor(ev, sel, max)
		switch act {
		case MoveUp:
			if sel == 0 {
				sel = max
			} else {
				sel--
			}
		case MoveDown:
			if sel == max {
				sel = 0
			} else {
				sel++
			}
		case JumpTo:
			sel = target
		case Select:
			state = selected
		case Cancel:
			state = cancelled
		}

		if state != running {
			break
		}

		if s.Resized() {
			caps.RefreshSize()
			r.reset(caps)
		}
		r.draw(sel)
		r.footer(status.current())
	}

	if state == selected {
		return sel, nil
	}
	return NoSelection, nil
}

// silentBudget converts the idle limit into a consecutive-timeout
// count, with sane bounds at both ends.
func silentBudget(idle, readTimeout time.Duration) int {
	if idle <= 0 {
		return 1
	}
	n := idle / readTimeout
	if n < 1 {
		return 1
	}
	if n > 1<<20 {
		return 1 << 20
	}
	return int(n)
}

// statusInterval is how often the footer collaborator is sampled.
const statusInterval = 2 * time.Second

// statusFeed samples the footer collaborator off the render path. The
// loop reads whatever snapshot is current and never waits.
type statusFeed struct {
	val  atomic.Value
	done chan struct{}
}

func newStatusFeed(fn func() string) *statusFeed {
	f := &statusFeed{done: make(chan struct{})}
	f.val.Store("")
	if fn == nil {
		return f
	}

	go func() {
		for {
			f.val.Store(fn())
			select {
			case <-f.done:
				return
			case <-time.After(statusInterval):
			}
		}
	}()
	return f
}

func (f *statusFeed) current() string {
	s, _ := f.val.Load().(string)
	return s
}

func (f *statusFeed) stop() {
	close(f.done)
}
