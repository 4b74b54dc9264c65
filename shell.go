package quotex

import (
	"io"
	"strings"
)

// ShellQuote renders a string as a POSIX shell single-quoted word. A shell
// parses the result back to exactly the original string when it is used as
// one command-line argument.
//
// Everything passes through verbatim inside single quotes except the single
// quote itself, which becomes '\'' (close, escaped quote, reopen):
//
//	ShellQuote("hi'there").String() == `'hi'\''there'`
type ShellQuote string

func (s ShellQuote) String() string {
	var sb strings.Builder
	sb.Grow(len(s) + 2)
	_, _ = s.WriteTo(&sb)
	return sb.String()
}

// WriteTo implements io.WriterTo.
func (s ShellQuote) WriteTo(w io.Writer) (int64, error) {
	f := acquireFormatter(w, NoColorPalette())
	defer releaseFormatter(f)
	err := s.render(f)
	return f.n, err
}

func (s ShellQuote) render(f *formatter) error {
	seg, rest, more := strings.Cut(string(s), "'")
	if err := f.writeQuote('\''); err != nil {
		return err
	}
	if err := f.writeString(seg); err != nil {
		return err
	}
	for more {
		seg, rest, more = strings.Cut(rest, "'")
		if err := f.writeEscape(`'\''`); err != nil {
			return err
		}
		if err := f.writeString(seg); err != nil {
			return err
		}
	}
	return f.writeQuote('\'')
}
