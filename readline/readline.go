// Package readline implements the inline value editor: a raw-mode
// single-line edit loop with cursor movement, kill keys, and session
// history. It shares the terminal package's escape sequence table and
// raw-mode guard, so an editor and a menu can never fight over the
// terminal.
package readline

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-runewidth"

	"github.com/mmadalone/rick-assistant/terminal"
)

// Prompt configures the line editor. Placeholder is shown dimmed while
// the line is empty.
type Prompt struct {
	Prompt      string
	Placeholder string
}

func (p *Prompt) prompt() string {
	return p.Prompt
}

// Instance reads lines from the terminal one Readline call at a time.
type Instance struct {
	Prompt *Prompt

	reader  *bufio.Reader
	history *History
}

func New(prompt Prompt) (*Instance, error) {
	return &Instance{
		Prompt:  &prompt,
		reader:  bufio.NewReader(os.Stdin),
		history: NewHistory(),
	}, nil
}

func (i *Instance) HistoryEnable() {
	i.history.Enabled = true
}

func (i *Instance) HistoryDisable() {
	i.history.Enabled = false
}

// Readline takes the terminal into raw mode, reads one line, and
// restores it. Ctrl+C aborts with ErrInterrupt; Ctrl+D on an empty
// line reports io.EOF.
func (i *Instance) Readline() (string, error) {
	g, err := terminal.AcquireLine()
	if err != nil {
		return "", err
	}
	defer g.Release()

	return i.edit(NewBuffer(i.Prompt, g.Writer()))
}

func (i *Instance) edit(buf *Buffer) (string, error) {
	buf.Redraw()

	// saved holds the in-progress line while history navigation is
	// showing older entries.
	var saved []rune

	for {
		if buf.IsEmpty() {
			if ph := i.Prompt.Placeholder; ph != "" {
				fmt.Fprint(buf.out, ColorGrey+ph+CursorLeftN(runewidth.StringWidth(ph))+ColorDefault)
			}
		}

		r, _, err := i.reader.ReadRune()
		if err != nil {
			return "", io.EOF
		}

		if buf.IsEmpty() {
			fmt.Fprint(buf.out, ClearToEOL)
		}

		switch r {
		case CharNull:
		case CharEsc:
			if err := i.readEscape(buf, &saved); err != nil {
				return "", err
			}
		case CharInterrupt:
			fmt.Fprint(buf.out, "\r\n")
			return "", ErrInterrupt
		case CharEnter, CharCtrlJ:
			buf.MoveToEnd()
			fmt.Fprint(buf.out, "\r\n")
			output := buf.String()
			if output != "" {
				i.history.Add(output)
			}
			return output, nil
		case CharBackspace, CharCtrlH:
			buf.Remove()
		case CharDelete:
			if buf.IsEmpty() {
				fmt.Fprint(buf.out, "\r\n")
				return "", io.EOF
			}
			buf.Delete()
		case CharLineStart:
			buf.MoveToStart()
		case CharLineEnd:
			buf.MoveToEnd()
		case CharBackward:
			buf.MoveLeft()
		case CharForward:
			buf.MoveRight()
		case CharPrev:
			i.historyPrev(buf, &saved)
		case CharNext:
			i.historyNext(buf, &saved)
		case CharKill:
			buf.DeleteRemaining()
		case CharCtrlU:
			buf.DeleteBefore()
		case CharCtrlL:
			buf.Redraw()
		case CharTab:
		default:
			if r >= CharSpace {
				buf.Add(r)
			}
		}
	}
}

// seqMax bounds escape sequence accumulation so a malformed stream
// cannot grow the buffer without limit.
const seqMax = 16

// readEscape consumes the remainder of an escape sequence and applies
// the key it names. Unknown sequences are dropped.
func (i *Instance) readEscape(buf *Buffer, saved *[]rune) error {
	r, _, err := i.reader.ReadRune()
	if err != nil {
		return io.EOF
	}

	switch r {
	case '[':
		seq := make([]byte, 0, 8)
		for len(seq) < seqMax {
			r, _, err := i.reader.ReadRune()
			if err != nil {
				return io.EOF
			}
			seq = append(seq, byte(r))
			if !isSeqParam(byte(r)) {
				break
			}
		}
		if ev, ok := terminal.LookupCSI(string(seq)); ok {
			i.applyKey(ev, buf, saved)
		}
	case 'O':
		r, _, err := i.reader.ReadRune()
		if err != nil {
			return io.EOF
		}
		if ev, ok := terminal.LookupSS3(string(r)); ok {
			i.applyKey(ev, buf, saved)
		}
	case 'b':
		buf.MoveLeftWord()
	case 'f':
		buf.MoveRightWord()
	case CharBackspace:
		buf.DeleteWord()
	}
	return nil
}

func isSeqParam(b byte) bool {
	return (b >= '0' && b <= '9') || b == ';'
}

func (i *Instance) applyKey(ev terminal.KeyEvent, buf *Buffer, saved *[]rune) {
	switch ev.Key {
	case terminal.KeyUp:
		i.historyPrev(buf, saved)
	case terminal.KeyDown:
		i.historyNext(buf, saved)
	case terminal.KeyLeft:
		buf.MoveLeft()
	case terminal.KeyRight:
		buf.MoveRight()
	case terminal.KeyHome:
		buf.MoveToStart()
	case terminal.KeyEnd:
		buf.MoveToEnd()
	case terminal.KeyDelete:
		buf.Delete()
	}
}

func (i *Instance) historyPrev(buf *Buffer, saved *[]rune) {
	if i.history.Pos > 0 {
		if i.history.Pos == i.history.Size() {
			*saved = []rune(buf.String())
		}
		buf.Replace([]rune(i.history.Prev()))
	}
}

func (i *Instance) historyNext(buf *Buffer, saved *[]rune) {
	if i.history.Pos < i.history.Size() {
		buf.Replace([]rune(i.history.Next()))
		if i.history.Pos == i.history.Size() {
			buf.Replace(*saved)
		}
	}
}
