package readline

import "fmt"

const (
	CharNull      = 0
	CharLineStart = 1
	CharBackward  = 2
	CharInterrupt = 3
	CharDelete    = 4
	CharLineEnd   = 5
	CharForward   = 6
	CharCtrlH     = 8
	CharTab       = 9
	CharCtrlJ     = 10
	CharKill      = 11
	CharCtrlL     = 12
	CharEnter     = 13
	CharNext      = 14
	CharPrev      = 16
	CharCtrlU     = 21
	CharCtrlW     = 23
	CharEsc       = 27
	CharSpace     = 32
	CharBackspace = 127
)

const (
	CursorBOL  = "\r"
	ClearToEOL = "\x1b[K"

	ColorGrey    = "\x1b[38;5;245m"
	ColorDefault = "\x1b[0m"
)

func CursorLeftN(n int) string {
	if n <= 0 {
		return ""
	}
	return fmt.Sprintf("\x1b[%dD", n)
}

func CursorRightN(n int) string {
	if n <= 0 {
		return ""
	}
	return fmt.Sprintf("\x1b[%dC", n)
}
