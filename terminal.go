package ditherpunk

import (
	"errors"
	"fmt"
	"io"
)

// ErrNoTerminal is returned by TerminalSize when the size cannot be queried.
var ErrNoTerminal = errors.New("ditherpunk: not a terminal")

// Terminal repositions output between animation frames.
type Terminal interface {
	ResetCursor(rows int)
	ShowCursor(show bool)
}

type Xterm struct {
	Writer io.Writer
}

// ResetCursor moves the cursor to the start of the line and up rows lines.
func (term *Xterm) ResetCursor(rows int) {
	if rows <= 0 {
		fmt.Fprint(term.Writer, "\033[999D")
		return
	}
	fmt.Fprintf(term.Writer, "\033[999D\033[%dA", rows)
}

func (term *Xterm) ShowCursor(show bool) {
	if show {
		io.WriteString(term.Writer, "\033[?12l\033[?25h")
	} else {
		io.WriteString(term.Writer, "\033[?25l")
	}
}
