package terminal

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"
)

type fakeTTY struct {
	rawCalls     int
	restoreCalls int
	rawErr       error
	out          bytes.Buffer
}

func (f *fakeTTY) Raw() error {
	f.rawCalls++
	return f.rawErr
}

func (f *fakeTTY) Restore() error {
	f.restoreCalls++
	return nil
}

func (f *fakeTTY) Writer() io.Writer { return &f.out }

func TestGuardSingleOwnership(t *testing.T) {
	first := &fakeTTY{}
	g, err := acquire(first, true)
	if err != nil {
		t.Fatalf("first acquire: %v", err)
	}

	if _, err := acquire(&fakeTTY{}, true); !errors.Is(err, ErrMenuActive) {
		t.Errorf("second acquire: expected ErrMenuActive, got %v", err)
	}

	g.Release()

	next, err := acquire(&fakeTTY{}, true)
	if err != nil {
		t.Fatalf("acquire after release: %v", err)
	}
	next.Release()
}

func TestGuardReleaseExactlyOnce(t *testing.T) {
	f := &fakeTTY{}
	g, err := acquire(f, true)
	if err != nil {
		t.Fatalf("acquire: %v", err)
	}

	g.Release()
	g.Release()
	g.Release()

	if f.restoreCalls != 1 {
		t.Errorf("expected exactly one restore, got %d", f.restoreCalls)
	}
}

func TestGuardRawFailureClearsFlag(t *testing.T) {
	broken := &fakeTTY{rawErr: errors.New("ioctl failed")}
	if _, err := acquire(broken, true); err == nil {
		t.Fatal("expected acquire to fail")
	}
	if broken.restoreCalls != 0 {
		t.Error("failed acquire must not restore")
	}

	// The ownership flag must not leak from the failed attempt.
	g, err := acquire(&fakeTTY{}, true)
	if err != nil {
		t.Fatalf("acquire after failed attempt: %v", err)
	}
	g.Release()
}

func TestGuardScreenSequences(t *testing.T) {
	f := &fakeTTY{}
	g, err := acquire(f, true)
	if err != nil {
		t.Fatalf("acquire: %v", err)
	}

	if !strings.Contains(f.out.String(), "\x1b[?25l") {
		t.Error("acquire should hide the cursor")
	}

	g.Release()

	out := f.out.String()
	for _, seq := range []string{"\x1b[?25h", "\x1b[0m", "\x1b[2J"} {
		if !strings.Contains(out, seq) {
			t.Errorf("release output missing %q", seq)
		}
	}
	if f.restoreCalls != 1 {
		t.Errorf("expected one restore, got %d", f.restoreCalls)
	}
}

// A line-mode guard restores the terminal without touching the screen:
// the editor's output has to survive the release.
func TestGuardLineModeLeavesScreenAlone(t *testing.T) {
	f := &fakeTTY{}
	g, err := acquire(f, false)
	if err != nil {
		t.Fatalf("acquire: %v", err)
	}
	g.Release()

	if out := f.out.String(); out != "" {
		t.Errorf("expected no screen writes, got %q", out)
	}
	if f.restoreCalls != 1 {
		t.Errorf("expected one restore, got %d", f.restoreCalls)
	}
}

// Full-screen and line guards contend for the same ownership flag.
func TestGuardModesShareOwnership(t *testing.T) {
	g, err := acquire(&fakeTTY{}, false)
	if err != nil {
		t.Fatalf("acquire: %v", err)
	}
	defer g.Release()

	if _, err := acquire(&fakeTTY{}, true); !errors.Is(err, ErrMenuActive) {
		t.Errorf("expected ErrMenuActive across modes, got %v", err)
	}
}
