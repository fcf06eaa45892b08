package terminal

import "time"

// escapeTimeout is how long the decoder waits after ESC for sequence
// continuation bytes. A lone Escape press and the first byte of an
// arrow sequence are identical; only the follow-up timing tells them
// apart.
const escapeTimeout = 50 * time.Millisecond

// maxSequence bounds CSI accumulation so a hostile stream cannot grow
// the scan without limit.
const maxSequence = 16

// byteSource delivers single raw input bytes with a bounded wait.
// ok is false when the wait elapsed with nothing readable.
type byteSource interface {
	ReadByte(timeout time.Duration) (b byte, ok bool, err error)
}

// Decoder turns a raw byte stream into key events. It never returns an
// error: malformed escape sequences degrade to KeyEscape and a dead
// stream degrades to KeyTimeout, which the caller's retry budget turns
// into a cancel.
type Decoder struct {
	src        byteSource
	escTimeout time.Duration
}

func NewDecoder(src byteSource) *Decoder {
	return &Decoder{src: src, escTimeout: escapeTimeout}
}

// ReadKey waits up to timeout for the next keystroke.
func (d *Decoder) ReadKey(timeout time.Duration) KeyEvent {
	b, ok, err := d.src.ReadByte(timeout)
	if err != nil || !ok {
		return KeyEvent{Key: KeyTimeout}
	}

	switch {
	case b == 0x1b:
		return d.readEscape()
	case b == '\r' || b == '\n':
		return KeyEvent{Key: KeyEnter}
	case b == '\t':
		return KeyEvent{Key: KeyTab}
	case b == 0x7f || b == 0x08:
		return KeyEvent{Key: KeyBackspace}
	case b == ' ':
		return KeyEvent{Key: KeySpace}
	case b == 0x03:
		// Ctrl+C arrives as a plain byte in raw mode. Treat it as
		// Escape so the menu stays cancellable.
		return KeyEvent{Key: KeyEscape}
	case b > 0x20 && b < 0x7f:
		return KeyEvent{Key: KeyChar, Ch: b}
	}

	return KeyEvent{Key: KeyUnrecognized, Ch: b}
}

// readEscape disambiguates a lone Escape press from the start of a
// CSI/SS3 sequence by waiting briefly for a continuation byte.
func (d *Decoder) readEscape() KeyEvent {
	b, ok, err := d.src.ReadByte(d.escTimeout)
	if err != nil || !ok {
		return KeyEvent{Key: KeyEscape}
	}

	switch b {
	case '[':
		return d.readCSI()
	case 'O':
		return d.readSS3()
	}

	// ESC plus anything else (alt-modified chord, stray byte): fold to
	// Escape so an unmapped chord can never wedge navigation.
	return KeyEvent{Key: KeyEscape}
}

// readCSI accumulates the sequence body until a terminator byte, then
// resolves it against the static table. Unknown or truncated sequences
// resolve to Escape.
func (d *Decoder) readCSI() KeyEvent {
	var seq [maxSequence]byte
	n := 0

	for n < maxSequence {
		b, ok, err := d.src.ReadByte(d.escTimeout)
		if err != nil || !ok {
			return KeyEvent{Key: KeyEscape}
		}
		seq[n] = b
		n++

		// Digits and ';' keep accumulating; anything else ends the
		// sequence.
		if !isCSIParam(b) {
			break
		}
	}

	if ev, ok := lookupCSI(seq[:n]); ok {
		return ev
	}
	return KeyEvent{Key: KeyEscape}
}

func (d *Decoder) readSS3() KeyEvent {
	b, ok, err := d.src.ReadByte(d.escTimeout)
	if err != nil || !ok {
		return KeyEvent{Key: KeyEscape}
	}
	if ev, ok := lookupSS3([]byte{b}); ok {
		return ev
	}
	return KeyEvent{Key: KeyEscape}
}

func isCSIParam(b byte) bool {
	return (b >= '0' && b <= '9') || b == ';'
}
