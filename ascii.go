package quotex

import (
	"io"
	"strings"
)

// ASCIIQuote owns a value and renders its bytes double-quoted: '"' becomes
// \", bytes 0x20 through 0x7e are written as is, everything else becomes
// \xHH. Newline is written as \x0a and backslash is not escaped; this is a
// narrower policy than CEscape and callers rely on the exact output.
type ASCIIQuote[T Bytes] struct {
	v T
}

// ASCIIQuoteOf wraps v.
func ASCIIQuoteOf[T Bytes](v T) ASCIIQuote[T] {
	return ASCIIQuote[T]{v: v}
}

// Get returns the wrapped value.
func (a ASCIIQuote[T]) Get() T {
	return a.v
}

func (a ASCIIQuote[T]) String() string {
	var sb strings.Builder
	sb.Grow(len(a.v) + 2)
	_, _ = a.WriteTo(&sb)
	return sb.String()
}

// GoString makes %#v print the quoted form as well.
func (a ASCIIQuote[T]) GoString() string {
	return a.String()
}

// WriteTo implements io.WriterTo.
func (a ASCIIQuote[T]) WriteTo(w io.Writer) (int64, error) {
	f := acquireFormatter(w, NoColorPalette())
	defer releaseFormatter(f)
	err := a.render(f)
	return f.n, err
}

func (a ASCIIQuote[T]) render(f *formatter) error {
	v := a.v
	if err := f.writeQuote('"'); err != nil {
		return err
	}
	for i := 0; i < len(v); i++ {
		c := v[i]
		var err error
		switch {
		case c == '"':
			err = f.writeEscape(`\"`)
		case c >= 0x20 && c <= 0x7e:
			err = f.writeByte(c)
		default:
			err = f.writeHexEscape(c)
		}
		if err != nil {
			return err
		}
	}
	return f.writeQuote('"')
}
