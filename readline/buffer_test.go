package readline

import (
	"bytes"
	"strings"
	"testing"
)

func newTestBuffer() (*Buffer, *bytes.Buffer) {
	out := &bytes.Buffer{}
	return NewBuffer(&Prompt{Prompt: "> "}, out), out
}

func typeString(b *Buffer, s string) {
	for _, r := range s {
		b.Add(r)
	}
}

func TestBufferInsertAtCursor(t *testing.T) {
	b, _ := newTestBuffer()
	typeString(b, "hello")
	if b.String() != "hello" || b.Pos != 5 {
		t.Fatalf("got %q pos %d", b.String(), b.Pos)
	}

	b.MoveToStart()
	b.Add('X')
	if b.String() != "Xhello" || b.Pos != 1 {
		t.Errorf("got %q pos %d", b.String(), b.Pos)
	}

	b.MoveToEnd()
	b.Add('!')
	if b.String() != "Xhello!" {
		t.Errorf("got %q", b.String())
	}
}

func TestBufferRemoveAndDelete(t *testing.T) {
	b, _ := newTestBuffer()
	typeString(b, "abc")

	b.Remove()
	if b.String() != "ab" {
		t.Errorf("after backspace: %q", b.String())
	}

	b.MoveToStart()
	b.Delete()
	if b.String() != "b" || b.Pos != 0 {
		t.Errorf("after delete: %q pos %d", b.String(), b.Pos)
	}

	// Both are no-ops at their respective edges.
	b.Remove()
	b.MoveToEnd()
	b.Delete()
	if b.String() != "b" {
		t.Errorf("edge ops changed the line: %q", b.String())
	}
}

func TestBufferKillOps(t *testing.T) {
	b, _ := newTestBuffer()
	typeString(b, "one two three")
	b.DeleteWord()
	if b.String() != "one two " {
		t.Errorf("after ctrl+w: %q", b.String())
	}

	typeString(b, "x")
	b.MoveLeft()
	b.MoveLeft()
	b.DeleteRemaining()
	if b.String() != "one two" {
		t.Errorf("after ctrl+k: %q", b.String())
	}

	b.MoveToEnd()
	b.DeleteBefore()
	if b.String() != "" || b.Pos != 0 {
		t.Errorf("after ctrl+u: %q pos %d", b.String(), b.Pos)
	}
}

func TestBufferWordMovement(t *testing.T) {
	b, _ := newTestBuffer()
	typeString(b, "one two")

	b.MoveLeftWord()
	if b.Pos != 4 {
		t.Errorf("expected cursor at word start, got %d", b.Pos)
	}
	b.Add('X')
	if b.String() != "one Xtwo" {
		t.Errorf("got %q", b.String())
	}

	b.MoveToStart()
	b.MoveRightWord()
	if b.Pos != 3 {
		t.Errorf("expected cursor before space, got %d", b.Pos)
	}
}

func TestBufferWideRunes(t *testing.T) {
	b, out := newTestBuffer()
	typeString(b, "a世b")

	if b.DisplaySize() != 4 {
		t.Errorf("expected display width 4, got %d", b.DisplaySize())
	}

	out.Reset()
	b.MoveLeft() // over 'b'
	b.MoveLeft() // over the double-width rune
	if got := out.String(); got != "\x1b[1D\x1b[2D" {
		t.Errorf("cursor math ignored rune width: %q", got)
	}
}

func TestBufferReplace(t *testing.T) {
	b, _ := newTestBuffer()
	typeString(b, "old line")
	b.Replace([]rune("new"))
	if b.String() != "new" || b.Pos != 3 {
		t.Errorf("got %q pos %d", b.String(), b.Pos)
	}

	b.Replace(nil)
	if !b.IsEmpty() {
		t.Errorf("expected empty buffer, got %q", b.String())
	}
}

func TestBufferRedraw(t *testing.T) {
	b, out := newTestBuffer()
	typeString(b, "value")
	b.MoveLeft()

	out.Reset()
	b.Redraw()
	got := out.String()
	if !strings.HasPrefix(got, "\r\x1b[K> value") {
		t.Errorf("unexpected redraw %q", got)
	}
	// The cursor ends one cell left of the line end.
	if !strings.HasSuffix(got, "\x1b[1D") {
		t.Errorf("cursor not restored: %q", got)
	}
}
