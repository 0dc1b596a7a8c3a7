//go:build !windows

package term

import "golang.org/x/sys/unix"

const defaultWidth = 80

// Width queries the terminal width via the platform window-size ioctl,
// defaulting to 80 columns on failure.
func Width(fd int) int {
	ws, err := unix.IoctlGetWinsize(fd, unix.TIOCGWINSZ)
	if err != nil || ws.Col == 0 {
		return defaultWidth
	}
	return int(ws.Col)
}
