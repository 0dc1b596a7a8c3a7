//go:build !windows

package term

import (
	"time"

	"golang.org/x/sys/unix"
)

// Poll reports whether fd has a byte available to read right now, using a
// zero-timeout select. The editor core uses this to drain a burst of
// already-arrived keypresses before paying for a redraw.
func Poll(fd int) (bool, error) {
	var rfds unix.FdSet
	rfds.Set(fd)
	tv := unix.Timeval{Sec: 0, Usec: 0}
	n, err := unix.Select(fd+1, &rfds, nil, nil, &tv)
	if err != nil {
		if err == unix.EINTR {
			return false, nil
		}
		return false, err
	}
	return n > 0, nil
}

// PollTimeout is like Poll but waits up to d before giving up; used by the
// cursor-position query, which must wait for a reply but should not hang
// forever if the terminal never answers.
func PollTimeout(fd int, d time.Duration) (bool, error) {
	var rfds unix.FdSet
	rfds.Set(fd)
	tv := unix.Timeval{
		Sec:  int64(d / time.Second),
		Usec: int64((d % time.Second) / time.Microsecond),
	}
	n, err := unix.Select(fd+1, &rfds, nil, nil, &tv)
	if err != nil {
		if err == unix.EINTR {
			return false, nil
		}
		return false, err
	}
	return n > 0, nil
}
