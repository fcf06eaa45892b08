package readline

import "errors"

// ErrInterrupt is returned when the user aborts the edit with Ctrl+C.
var ErrInterrupt = errors.New("readline: interrupt")
