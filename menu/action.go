package menu

import "github.com/mmadalone/rick-assistant/terminal"

// Action is one navigation step derived from a key event.
type Action int

const (
	Noop Action = iota
	MoveUp
	MoveDown
	JumpTo
	Select
	Cancel
)

// actionFor maps a key event onto a navigation action for a menu whose
// last index is max. Pure: the returned target is the JumpTo index and
// echoes current for every other action. Digits address items
// directly; a digit past the end degrades to Noop so the selection
// stays put.
func actionFor(ev terminal.KeyEvent, current, max int) (Action, int) {
	switch ev.Key {
	case terminal.KeyUp:
		return MoveUp, current
	case terminal.KeyDown:
		return MoveDown, current
	case terminal.KeyEnter, terminal.KeySpace:
		return Select, current
	case terminal.KeyEscape:
		return Cancel, current
	case terminal.KeyChar:
		switch {
		case ev.Ch == 'q' || ev.Ch == 'Q':
			return Cancel, current
		case ev.Ch >= '0' && ev.Ch <= '9':
			i := int(ev.Ch - '0')
			if i > max {
				return Noop, current
			}
			return JumpTo, i
		}
	}
	return Noop, current
}
