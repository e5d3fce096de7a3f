package monitor

import (
	"bufio"
	"io"

	"github.com/muesli/termenv"
)

// Surface is a cursor-addressed terminal. Rows and columns are 1-based.
// The terminal's single saved-cursor slot means SaveCursor/RestoreCursor
// pairs must never overlap.
type Surface interface {
	MoveTo(row, col int)
	Write(text string)
	SaveCursor()
	RestoreCursor()
	ClearLine()
	ClearScreen()
	Flush() error
}

// ANSISurface renders Surface calls as ANSI escape sequences through a
// termenv Output. Writes are buffered until Flush.
type ANSISurface struct {
	buf *bufio.Writer
	out *termenv.Output
	err error
}

// NewANSISurface returns a Surface writing to w.
func NewANSISurface(w io.Writer, opts ...termenv.OutputOption) *ANSISurface {
	buf := bufio.NewWriter(w)
	return &ANSISurface{
		buf: buf,
		out: termenv.NewOutput(buf, opts...),
	}
}

func (s *ANSISurface) MoveTo(row, col int) {
	s.out.MoveCursor(row, col)
}

func (s *ANSISurface) Write(text string) {
	if s.err != nil {
		return
	}
	if _, err := s.out.WriteString(text); err != nil {
		s.err = err
	}
}

func (s *ANSISurface) SaveCursor() {
	s.out.SaveCursorPosition()
}

func (s *ANSISurface) RestoreCursor() {
	s.out.RestoreCursorPosition()
}

func (s *ANSISurface) ClearLine() {
	s.out.ClearLine()
}

func (s *ANSISurface) ClearScreen() {
	s.out.ClearScreen()
}

// Flush pushes buffered output to the terminal and reports the first write
// error seen since the surface was created.
func (s *ANSISurface) Flush() error {
	if s.err != nil {
		return s.err
	}
	if err := s.buf.Flush(); err != nil {
		s.err = err
	}
	return s.err
}
