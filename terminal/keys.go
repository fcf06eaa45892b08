package terminal

// Key identifies a decoded keystroke.
type Key uint8

const (
	KeyNone Key = iota
	KeyChar // printable byte, see KeyEvent.Ch

	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyEnter
	KeyEscape
	KeyTab
	KeyShiftTab
	KeyBackspace
	KeySpace
	KeyHome
	KeyEnd
	KeyInsert
	KeyDelete
	KeyPageUp
	KeyPageDown

	KeyFunction // F1-F12, see KeyEvent.Fn

	// KeyTimeout means no byte arrived within the read timeout. It is
	// distinct from KeyEscape so callers can tell "nothing typed yet"
	// from "user pressed Escape".
	KeyTimeout

	// KeyUnrecognized covers stray bytes with no mapping, e.g. bare
	// control characters. Unknown escape sequences never produce it;
	// they resolve to KeyEscape so navigation cannot wedge.
	KeyUnrecognized
)

// KeyEvent is one decoded keystroke. Ch is set for KeyChar, Fn for
// KeyFunction.
type KeyEvent struct {
	Key Key
	Ch  byte
	Fn  int
}

// escapeSequence maps the bytes after an introducer to a key event.
type escapeSequence struct {
	seq string
	ev  KeyEvent
}

// CSI sequences: the bytes after ESC [.
var csiSequences = []escapeSequence{
	// Arrows
	{"A", KeyEvent{Key: KeyUp}},
	{"B", KeyEvent{Key: KeyDown}},
	{"C", KeyEvent{Key: KeyRight}},
	{"D", KeyEvent{Key: KeyLeft}},
	{"Z", KeyEvent{Key: KeyShiftTab}},

	// Modified arrows (xterm ESC [ 1 ; mod X) collapse to the plain
	// arrow; the menu has no modifier-aware bindings.
	{"1;2A", KeyEvent{Key: KeyUp}},
	{"1;2B", KeyEvent{Key: KeyDown}},
	{"1;2C", KeyEvent{Key: KeyRight}},
	{"1;2D", KeyEvent{Key: KeyLeft}},
	{"1;3A", KeyEvent{Key: KeyUp}},
	{"1;3B", KeyEvent{Key: KeyDown}},
	{"1;3C", KeyEvent{Key: KeyRight}},
	{"1;3D", KeyEvent{Key: KeyLeft}},
	{"1;5A", KeyEvent{Key: KeyUp}},
	{"1;5B", KeyEvent{Key: KeyDown}},
	{"1;5C", KeyEvent{Key: KeyRight}},
	{"1;5D", KeyEvent{Key: KeyLeft}},

	// Navigation
	{"H", KeyEvent{Key: KeyHome}},
	{"F", KeyEvent{Key: KeyEnd}},
	{"1~", KeyEvent{Key: KeyHome}},
	{"2~", KeyEvent{Key: KeyInsert}},
	{"3~", KeyEvent{Key: KeyDelete}},
	{"4~", KeyEvent{Key: KeyEnd}},
	{"5~", KeyEvent{Key: KeyPageUp}},
	{"6~", KeyEvent{Key: KeyPageDown}},
	{"7~", KeyEvent{Key: KeyHome}},
	{"8~", KeyEvent{Key: KeyEnd}},

	// Function keys (xterm)
	{"11~", KeyEvent{Key: KeyFunction, Fn: 1}},
	{"12~", KeyEvent{Key: KeyFunction, Fn: 2}},
	{"13~", KeyEvent{Key: KeyFunction, Fn: 3}},
	{"14~", KeyEvent{Key: KeyFunction, Fn: 4}},
	{"15~", KeyEvent{Key: KeyFunction, Fn: 5}},
	{"17~", KeyEvent{Key: KeyFunction, Fn: 6}},
	{"18~", KeyEvent{Key: KeyFunction, Fn: 7}},
	{"19~", KeyEvent{Key: KeyFunction, Fn: 8}},
	{"20~", KeyEvent{Key: KeyFunction, Fn: 9}},
	{"21~", KeyEvent{Key: KeyFunction, Fn: 10}},
	{"23~", KeyEvent{Key: KeyFunction, Fn: 11}},
	{"24~", KeyEvent{Key: KeyFunction, Fn: 12}},
}

// SS3 sequences: the byte after ESC O.
var ss3Sequences = []escapeSequence{
	{"A", KeyEvent{Key: KeyUp}},
	{"B", KeyEvent{Key: KeyDown}},
	{"C", KeyEvent{Key: KeyRight}},
	{"D", KeyEvent{Key: KeyLeft}},
	{"H", KeyEvent{Key: KeyHome}},
	{"F", KeyEvent{Key: KeyEnd}},
	{"P", KeyEvent{Key: KeyFunction, Fn: 1}},
	{"Q", KeyEvent{Key: KeyFunction, Fn: 2}},
	{"R", KeyEvent{Key: KeyFunction, Fn: 3}},
	{"S", KeyEvent{Key: KeyFunction, Fn: 4}},
}

var (
	csiMap = buildSequenceMap(csiSequences)
	ss3Map = buildSequenceMap(ss3Sequences)
)

func buildSequenceMap(seqs []escapeSequence) map[string]KeyEvent {
	m := make(map[string]KeyEvent, len(seqs))
	for _, s := range seqs {
		m[s.seq] = s.ev
	}
	return m
}

// lookupCSI resolves an accumulated CSI body. The string([]byte)
// conversion inside the map access does not allocate.
func lookupCSI(seq []byte) (KeyEvent, bool) {
	ev, ok := csiMap[string(seq)]
	return ev, ok
}

func lookupSS3(seq []byte) (KeyEvent, bool) {
	ev, ok := ss3Map[string(seq)]
	return ev, ok
}

// LookupCSI resolves the body of a CSI sequence, the bytes after
// "\x1b[" up to and including the final byte. Callers that read the
// terminal themselves share the decoder's table through this.
func LookupCSI(seq string) (KeyEvent, bool) {
	ev, ok := csiMap[seq]
	return ev, ok
}

// LookupSS3 resolves the byte following "\x1bO".
func LookupSS3(seq string) (KeyEvent, bool) {
	ev, ok := ss3Map[seq]
	return ev, ok
}
