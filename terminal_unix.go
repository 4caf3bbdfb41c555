//go:build linux || darwin || freebsd || netbsd || openbsd || dragonfly

package ditherpunk

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// TerminalSize returns the columns and lines of the terminal attached to fd.
func TerminalSize(fd int) (cols, lines int, err error) {
	ws, err := unix.IoctlGetWinsize(fd, unix.TIOCGWINSZ)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %v", ErrNoTerminal, err)
	}
	return int(ws.Col), int(ws.Row), nil
}
