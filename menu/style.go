package menu

import (
	"github.com/mmadalone/rick-assistant/terminal"
)

// Symbol names a logical glyph independent of the active charset.
type Symbol int

const (
	SymArrow Symbol = iota
	SymCheckOn
	SymCheckOff
	SymRadioOn
	SymRadioOff
	SymBullet
	SymEllipsis
	SymSeparator
	SymVLine
	SymCornerTL
	SymCornerTR
	SymCornerBL
	SymCornerBR
)

// symbolClass buckets symbols for the fallback applied when a glyph
// table has no entry for a value.
type symbolClass int

const (
	classArrow symbolClass = iota
	classMark
	classLine
)

func (s Symbol) class() symbolClass {
	switch s {
	case SymArrow:
		return classArrow
	case SymCheckOn, SymCheckOff, SymRadioOn, SymRadioOff, SymBullet, SymEllipsis:
		return classMark
	default:
		return classLine
	}
}

var unicodeGlyphs = map[Symbol]string{
	SymArrow:     "❯",
	SymCheckOn:   "☑",
	SymCheckOff:  "☐",
	SymRadioOn:   "◉",
	SymRadioOff:  "○",
	SymBullet:    "•",
	SymEllipsis:  "…",
	SymSeparator: "─",
	SymVLine:     "│",
	SymCornerTL:  "╭",
	SymCornerTR:  "╮",
	SymCornerBL:  "╰",
	SymCornerBR:  "╯",
}

var asciiGlyphs = map[Symbol]string{
	SymArrow:     ">",
	SymCheckOn:   "[x]",
	SymCheckOff:  "[ ]",
	SymRadioOn:   "(*)",
	SymRadioOff:  "( )",
	SymBullet:    "*",
	SymEllipsis:  "...",
	SymSeparator: "-",
	SymVLine:     "|",
	SymCornerTL:  "+",
	SymCornerTR:  "+",
	SymCornerBL:  "+",
	SymCornerBR:  "+",
}

// Paint names a logical color role.
type Paint int

const (
	PaintTitle Paint = iota
	PaintSelected
	PaintDim
	PaintError
	PaintStatus
)

const ansiReset = "\x1b[0m"

var paints = map[Paint]string{
	PaintTitle:    "\x1b[1;36m",
	PaintSelected: "\x1b[1;32m",
	PaintDim:      "\x1b[90m",
	PaintError:    "\x1b[1;31m",
	PaintStatus:   "\x1b[33m",
}

// Style resolves logical symbols and colors against one capability
// snapshot. The zero value renders plain ASCII with no color.
type Style struct {
	caps terminal.Capabilities
}

func NewStyle(caps terminal.Capabilities) Style {
	return Style{caps: caps}
}

// Glyph returns the terminal-appropriate rendering of s. A value
// missing from the active table resolves through its category default;
// the result is never empty.
func (st Style) Glyph(s Symbol) string {
	table := asciiGlyphs
	if st.caps.Unicode {
		table = unicodeGlyphs
	}
	if g, ok := table[s]; ok && g != "" {
		return g
	}

	switch s.class() {
	case classArrow:
		if st.caps.Unicode {
			return "→"
		}
		return "->"
	case classMark:
		if st.caps.Unicode {
			return "•"
		}
		return "*"
	default:
		if st.caps.Unicode {
			return "─"
		}
		return "-"
	}
}

// Colorize wraps s in the ANSI sequence for p when color is available,
// otherwise the text passes through unmodified.
func (st Style) Colorize(p Paint, s string) string {
	if !st.caps.Color {
		return s
	}
	code, ok := paints[p]
	if !ok {
		return s
	}
	return code + s + ansiReset
}
