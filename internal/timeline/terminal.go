package timeline

import (
	"io"
	"os"
	"strconv"
	"strings"

	"git.lost.host/meutraa/apex/internal/game"
	"golang.org/x/term"
)

// Terminal batches escape sequences and writes them once per frame.
type Terminal struct {
	Out *os.File

	buffer       strings.Builder
	restoreState *term.State
}

func NewTerminal() *Terminal {
	return &Terminal{Out: os.Stdout}
}

// Init switches to the alternate buffer in raw mode.
func (r *Terminal) Init() error {
	if term.IsTerminal(int(r.Out.Fd())) {
		state, err := term.MakeRaw(int(r.Out.Fd()))
		if nil != err {
			return err
		}
		r.restoreState = state
	}
	r.buffer.WriteString("\033[?1049h") // alternate buffer
	r.buffer.WriteString("\033[?25l")   // hide cursor
	r.buffer.WriteString("\033[2J")
	return r.Flush()
}

func (r *Terminal) Deinit() error {
	r.buffer.WriteString("\033[?1049l")
	r.buffer.WriteString("\033[?25h")
	if err := r.Flush(); nil != err {
		return err
	}
	if nil == r.restoreState {
		return nil
	}
	return term.Restore(int(r.Out.Fd()), r.restoreState)
}

// Size is the terminal size, 80x24 when it cannot be read.
func (r *Terminal) Size() (columns, rows int) {
	columns, rows, err := term.GetSize(int(r.Out.Fd()))
	if nil != err || columns <= 0 || rows <= 0 {
		return 80, 24
	}
	return columns, rows
}

// Fill writes message at row and column, both starting at 1, clearing the
// rest of the line.
func (r *Terminal) Fill(row, column int, message string) {
	writePosition(&r.buffer, row, column)
	r.buffer.WriteString(message)
	r.buffer.WriteString("\033[K")
}

// FillColor writes message in a 24 bit foreground color without touching
// the rest of the line.
func (r *Terminal) FillColor(row, column int, c game.Color, message string) {
	red, green, blue, _ := c.RGBA8()
	writePosition(&r.buffer, row, column)
	r.buffer.WriteString("\033[38;2;")
	r.buffer.WriteString(strconv.Itoa(int(red)))
	r.buffer.WriteString(";")
	r.buffer.WriteString(strconv.Itoa(int(green)))
	r.buffer.WriteString(";")
	r.buffer.WriteString(strconv.Itoa(int(blue)))
	r.buffer.WriteString("m")
	r.buffer.WriteString(message)
	r.buffer.WriteString("\033[0m")
}

func writePosition(b *strings.Builder, row, column int) {
	b.WriteString("\033[")
	b.WriteString(strconv.Itoa(row))
	b.WriteString(";")
	b.WriteString(strconv.Itoa(column))
	b.WriteString("H")
}

func (r *Terminal) Flush() error {
	return r.flushTo(r.Out)
}

func (r *Terminal) flushTo(w io.Writer) error {
	defer r.buffer.Reset()
	_, err := io.WriteString(w, r.buffer.String())
	return err
}
