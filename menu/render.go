package menu

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/mmadalone/rick-assistant/terminal"
)

// headerRows is the line count above the first item: title, separator.
// Partial redraw depends on this when computing item row offsets.
const headerRows = 2

// renderState tracks what is on screen between frames.
type renderState struct {
	prev      int
	curr      int
	needsFull bool
}

type renderer struct {
	w         io.Writer
	caps      terminal.Capabilities
	style     Style
	title     string
	items     []string
	hasStatus bool

	state  renderState
	status string
}

func newRenderer(w io.Writer, caps terminal.Capabilities, m *Menu) *renderer {
	return &renderer{
		w:         w,
		caps:      caps,
		style:     NewStyle(caps),
		title:     m.Title,
		items:     m.Items,
		hasStatus: m.Status != nil,
		state:     renderState{needsFull: true},
	}
}

// reset rebinds the renderer to a fresh capability snapshot and forces
// the next frame to be a full redraw.
func (r *renderer) reset(caps terminal.Capabilities) {
	r.caps = caps
	r.style = NewStyle(caps)
	r.state.needsFull = true
}

// draw brings the screen up to date with the given selection, choosing
// between a full redraw and the two-line partial path. Nothing is
// written when neither the selection nor the layout changed.
func (r *renderer) draw(sel int) {
	prev := r.state.curr
	r.state.prev = prev
	r.state.curr = sel

	if r.state.needsFull {
		r.full(sel)
		r.state.needsFull = false
		return
	}
	if prev != sel {
		r.partial(prev, sel)
	}
}

func (r *renderer) full(sel int) {
	terminal.ClearScreen(r.w)

	fmt.Fprint(r.w, r.centered(r.style.Colorize(PaintTitle, r.title), r.title), "\r\n")
	fmt.Fprint(r.w, strings.Repeat(r.style.Glyph(SymSeparator), r.caps.Width), "\r\n")

	for i := range r.items {
		fmt.Fprint(r.w, r.itemLine(i, i == sel), "\r\n")
	}

	fmt.Fprint(r.w, "\r\n")
	fmt.Fprint(r.w, r.style.Colorize(PaintDim, r.legend()))

	if r.hasStatus {
		fmt.Fprint(r.w, "\r\n")
		r.writeStatus(r.status)
	}
}

// partial rewrites only the lines that lost and gained the highlight.
func (r *renderer) partial(prev, curr int) {
	terminal.MoveCursor(r.w, r.itemRow(prev), 1)
	terminal.ClearLine(r.w)
	fmt.Fprint(r.w, r.itemLine(prev, false))

	terminal.MoveCursor(r.w, r.itemRow(curr), 1)
	terminal.ClearLine(r.w)
	fmt.Fprint(r.w, r.itemLine(curr, true))
}

// footer rewrites the status line when its text changed. An empty
// snapshot renders the placeholder until the collaborator delivers.
func (r *renderer) footer(text string) {
	if !r.hasStatus {
		return
	}
	if text == "" {
		text = r.style.Glyph(SymEllipsis)
	}
	if text == r.status {
		return
	}
	r.status = text

	terminal.MoveCursor(r.w, r.statusRow(), 1)
	terminal.ClearLine(r.w)
	r.writeStatus(text)
}

func (r *renderer) writeStatus(text string) {
	if text == "" {
		text = r.style.Glyph(SymEllipsis)
	}
	fmt.Fprint(r.w, r.style.Colorize(PaintStatus, text))
}

// itemRow maps an item index to its 1-based screen row.
func (r *renderer) itemRow(i int) int {
	return headerRows + 1 + i
}

func (r *renderer) legendRow() int {
	return headerRows + len(r.items) + 2
}

func (r *renderer) statusRow() int {
	return r.legendRow() + 1
}

func (r *renderer) itemLine(i int, selected bool) string {
	if selected {
		return "  " + r.style.Colorize(PaintSelected, r.style.Glyph(SymArrow)+" "+r.items[i])
	}
	return "    " + r.items[i]
}

func (r *renderer) legend() string {
	sep := " | "
	if r.caps.Unicode {
		sep = " · "
	}
	parts := []string{"up/down move", "enter select", "esc cancel"}
	if len(r.items) <= 10 {
		parts = append(parts, "0-9 jump")
	}
	return strings.Join(parts, sep)
}

// centered pads styled so that plain sits in the middle of the
// viewport. The two arguments are the same text with and without
// escape sequences; width math must ignore the invisible bytes.
func (r *renderer) centered(styled, plain string) string {
	pad := (r.caps.Width - runewidth.StringWidth(plain)) / 2
	if pad < 0 {
		pad = 0
	}
	return strings.Repeat(" ", pad) + styled
}
