//go:build unix

package terminal

import (
	"io"
	"os"
	"time"

	"golang.org/x/sys/unix"
)

// fdSource reads single bytes from a file descriptor, using poll(2) to
// bound each wait. Burst reads (pasted escape sequences) are buffered
// and drained byte by byte.
type fdSource struct {
	fd   int
	buf  [64]byte
	r, w int
}

// Stdin returns a byte source over standard input.
func Stdin() *fdSource {
	return &fdSource{fd: int(os.Stdin.Fd())}
}

func (s *fdSource) ReadByte(timeout time.Duration) (byte, bool, error) {
	if s.r < s.w {
		b := s.buf[s.r]
		s.r++
		return b, true, nil
	}

	deadline := time.Now().Add(timeout)
	for {
		remaining := time.Until(deadline)
		if remaining < 0 {
			remaining = 0
		}
		ms := int(remaining / time.Millisecond)
		if ms == 0 && remaining > 0 {
			ms = 1
		}

		fds := []unix.PollFd{{Fd: int32(s.fd), Events: unix.POLLIN}}
		n, err := unix.Poll(fds, ms)
		if err != nil {
			if err == unix.EINTR {
				continue
			}
			return 0, false, err
		}
		if n == 0 {
			return 0, false, nil
		}

		rn, err := unix.Read(s.fd, s.buf[:])
		if err != nil {
			if err == unix.EINTR || err == unix.EAGAIN {
				continue
			}
			return 0, false, err
		}
		if rn == 0 {
			return 0, false, io.EOF
		}

		s.r, s.w = 1, rn
		return s.buf[0], true, nil
	}
}
