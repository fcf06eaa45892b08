package readline

import (
	"fmt"
	"io"

	"github.com/emirpasic/gods/v2/lists/arraylist"
	"github.com/mattn/go-runewidth"
)

// Buffer is the edit line: a rune list plus the cursor position in it.
// Every mutation repaints the affected screen region on out, keeping
// the display and the list in lockstep.
type Buffer struct {
	Pos    int
	Buf    *arraylist.List[rune]
	Prompt *Prompt

	out io.Writer
}

func NewBuffer(prompt *Prompt, out io.Writer) *Buffer {
	return &Buffer{
		Buf:    arraylist.New[rune](),
		Prompt: prompt,
		out:    out,
	}
}

func (b *Buffer) IsEmpty() bool {
	return b.Buf.Empty()
}

func (b *Buffer) String() string {
	return b.StringN(0)
}

// StringN returns the runes from index n to the end.
func (b *Buffer) StringN(n int) string {
	var s string
	for i := n; i < b.Buf.Size(); i++ {
		c, _ := b.Buf.Get(i)
		s += string(c)
	}
	return s
}

// DisplaySize is the rendered width of the whole line.
func (b *Buffer) DisplaySize() int {
	return b.widthBetween(0, b.Buf.Size())
}

func (b *Buffer) widthBetween(from, to int) int {
	var sum int
	for i := from; i < to; i++ {
		if r, ok := b.Buf.Get(i); ok {
			sum += runewidth.RuneWidth(r)
		}
	}
	return sum
}

func (b *Buffer) Add(r rune) {
	if b.Pos == b.Buf.Size() {
		b.Buf.Add(r)
		b.Pos++
		fmt.Fprintf(b.out, "%c", r)
		return
	}

	b.Buf.Insert(b.Pos, r)
	b.Pos++
	fmt.Fprintf(b.out, "%c", r)
	b.drawRemaining()
}

// Remove deletes the rune before the cursor.
func (b *Buffer) Remove() {
	if b.Pos == 0 {
		return
	}
	r, _ := b.Buf.Get(b.Pos - 1)
	b.Buf.Remove(b.Pos - 1)
	b.Pos--
	fmt.Fprint(b.out, CursorLeftN(runewidth.RuneWidth(r)))
	b.drawRemaining()
}

// Delete deletes the rune under the cursor.
func (b *Buffer) Delete() {
	if b.Pos >= b.Buf.Size() {
		return
	}
	b.Buf.Remove(b.Pos)
	b.drawRemaining()
}

// DeleteBefore drops everything left of the cursor.
func (b *Buffer) DeleteBefore() {
	if b.Pos == 0 {
		return
	}
	fmt.Fprint(b.out, CursorLeftN(b.widthBetween(0, b.Pos)))
	for b.Pos > 0 {
		b.Buf.Remove(0)
		b.Pos--
	}
	b.drawRemaining()
}

// DeleteRemaining drops everything from the cursor to the end.
func (b *Buffer) DeleteRemaining() {
	for b.Buf.Size() > b.Pos {
		b.Buf.Remove(b.Pos)
	}
	fmt.Fprint(b.out, ClearToEOL)
}

// DeleteWord removes trailing spaces and then the word before the
// cursor.
func (b *Buffer) DeleteWord() {
	var foundNonspace bool
	for b.Pos > 0 {
		v, _ := b.Buf.Get(b.Pos - 1)
		if v == ' ' {
			if foundNonspace {
				break
			}
		} else {
			foundNonspace = true
		}
		b.Remove()
	}
}

func (b *Buffer) MoveLeft() {
	if b.Pos == 0 {
		return
	}
	r, _ := b.Buf.Get(b.Pos - 1)
	b.Pos--
	fmt.Fprint(b.out, CursorLeftN(runewidth.RuneWidth(r)))
}

func (b *Buffer) MoveRight() {
	if b.Pos >= b.Buf.Size() {
		return
	}
	r, _ := b.Buf.Get(b.Pos)
	b.Pos++
	fmt.Fprint(b.out, CursorRightN(runewidth.RuneWidth(r)))
}

func (b *Buffer) MoveLeftWord() {
	var foundNonspace bool
	for b.Pos > 0 {
		v, _ := b.Buf.Get(b.Pos - 1)
		if v == ' ' {
			if foundNonspace {
				break
			}
		} else {
			foundNonspace = true
		}
		b.MoveLeft()
	}
}

func (b *Buffer) MoveRightWord() {
	for b.Pos < b.Buf.Size() {
		b.MoveRight()
		if v, _ := b.Buf.Get(b.Pos); v == ' ' {
			break
		}
	}
}

func (b *Buffer) MoveToStart() {
	if b.Pos == 0 {
		return
	}
	fmt.Fprint(b.out, CursorLeftN(b.widthBetween(0, b.Pos)))
	b.Pos = 0
}

func (b *Buffer) MoveToEnd() {
	if b.Pos >= b.Buf.Size() {
		return
	}
	fmt.Fprint(b.out, CursorRightN(b.widthBetween(b.Pos, b.Buf.Size())))
	b.Pos = b.Buf.Size()
}

// Replace swaps the whole line, used when history navigation lands on
// an entry.
func (b *Buffer) Replace(rs []rune) {
	b.MoveToStart()
	fmt.Fprint(b.out, ClearToEOL)
	b.Buf.Clear()
	b.Pos = 0
	for _, r := range rs {
		b.Add(r)
	}
}

// Redraw repaints the prompt and line from column one and puts the
// cursor back where it was.
func (b *Buffer) Redraw() {
	fmt.Fprint(b.out, CursorBOL+ClearToEOL+b.Prompt.prompt())
	fmt.Fprint(b.out, b.String())
	fmt.Fprint(b.out, CursorLeftN(b.widthBetween(b.Pos, b.Buf.Size())))
}

// drawRemaining repaints from the cursor to the end of the line and
// returns the cursor to its position.
func (b *Buffer) drawRemaining() {
	tail := b.StringN(b.Pos)
	fmt.Fprint(b.out, ClearToEOL+tail)
	fmt.Fprint(b.out, CursorLeftN(b.widthBetween(b.Pos, b.Buf.Size())))
}
