//go:build !(linux || darwin || freebsd || netbsd || openbsd || dragonfly)

package ditherpunk

// TerminalSize is not supported on this platform.
func TerminalSize(fd int) (cols, lines int, err error) {
	return 0, 0, ErrNoTerminal
}
