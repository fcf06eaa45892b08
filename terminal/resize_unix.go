//go:build unix

package terminal

import (
	"os"
	"os/signal"

	"golang.org/x/sys/unix"
)

func notifyResize(ch chan<- os.Signal) {
	signal.Notify(ch, unix.SIGWINCH)
}
