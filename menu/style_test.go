package menu

import (
	"strings"
	"testing"

	"github.com/mmadalone/rick-assistant/terminal"
)

func TestGlyph(t *testing.T) {
	unicode := NewStyle(terminal.Capabilities{Unicode: true})
	ascii := NewStyle(terminal.Capabilities{Unicode: false})

	cases := []struct {
		sym            Symbol
		unicode, ascii string
	}{
		{SymArrow, "❯", ">"},
		{SymCheckOn, "☑", "[x]"},
		{SymRadioOff, "○", "( )"},
		{SymBullet, "•", "*"},
		{SymEllipsis, "…", "..."},
		{SymSeparator, "─", "-"},
		{SymCornerTL, "╭", "+"},
	}

	for _, tt := range cases {
		if g := unicode.Glyph(tt.sym); g != tt.unicode {
			t.Errorf("unicode glyph %v: expected %q, got %q", tt.sym, tt.unicode, g)
		}
		if g := ascii.Glyph(tt.sym); g != tt.ascii {
			t.Errorf("ascii glyph %v: expected %q, got %q", tt.sym, tt.ascii, g)
		}
	}
}

// Symbols outside the table still resolve to a printable glyph
// instead of an empty string.
func TestGlyphUnknownSymbol(t *testing.T) {
	unknown := Symbol(99)
	if g := NewStyle(terminal.Capabilities{Unicode: true}).Glyph(unknown); g != "─" {
		t.Errorf("expected line fallback, got %q", g)
	}
	if g := NewStyle(terminal.Capabilities{}).Glyph(unknown); g != "-" {
		t.Errorf("expected ascii line fallback, got %q", g)
	}
}

func TestColorize(t *testing.T) {
	color := NewStyle(terminal.Capabilities{Color: true})
	plain := NewStyle(terminal.Capabilities{Color: false})

	got := color.Colorize(PaintSelected, "pick me")
	if !strings.HasPrefix(got, "\x1b[1;32m") || !strings.HasSuffix(got, "\x1b[0m") {
		t.Errorf("expected SGR wrapped string, got %q", got)
	}
	if !strings.Contains(got, "pick me") {
		t.Errorf("payload lost: %q", got)
	}

	if got := plain.Colorize(PaintSelected, "pick me"); got != "pick me" {
		t.Errorf("expected passthrough without color, got %q", got)
	}
	if got := color.Colorize(Paint(42), "pick me"); got != "pick me" {
		t.Errorf("expected passthrough for unknown paint, got %q", got)
	}
}
