package terminal

import (
	"fmt"
	"io"
)

// Pre-allocated control sequences for the hot render path.
var (
	csiCursorHide  = []byte("\x1b[?25l")
	csiCursorShow  = []byte("\x1b[?25h")
	csiClearScreen = []byte("\x1b[2J")
	csiCursorHome  = []byte("\x1b[H")
	csiClearLine   = []byte("\x1b[2K")
	csiSGRReset    = []byte("\x1b[0m")
)

func HideCursor(w io.Writer) {
	w.Write(csiCursorHide)
}

func ShowCursor(w io.Writer) {
	w.Write(csiCursorShow)
}

// ClearScreen wipes the display and homes the cursor.
func ClearScreen(w io.Writer) {
	w.Write(csiClearScreen)
	w.Write(csiCursorHome)
}

// ClearLine wipes the line the cursor is on without moving it.
func ClearLine(w io.Writer) {
	w.Write(csiClearLine)
}

// MoveCursor positions the cursor at 1-based row, col.
func MoveCursor(w io.Writer, row, col int) {
	fmt.Fprintf(w, "\x1b[%d;%dH", row, col)
}

func ResetStyle(w io.Writer) {
	w.Write(csiSGRReset)
}

// EmergencyReset forces the screen back to a usable state without a
// guard, for panic paths where no restore state survives.
func EmergencyReset(w io.Writer) {
	w.Write(csiSGRReset)
	w.Write(csiCursorShow)
	w.Write(csiClearScreen)
	w.Write(csiCursorHome)
}
