package quotex

import (
	"io"
	"strings"
)

// CEscape renders bytes as printable ASCII suitable for a C string literal
// body or a log line. No surrounding quotes are added.
//
// Letters, digits, space and the punctuation ~!@#$%^&*()_+`-={}|\[]:;'<>,.?/
// are written as themselves, '"' becomes \", newline becomes \n, and every
// other byte becomes \xHH with lowercase hex digits.
//
// CEscape is a string type so it can be used as a map key and ordered; use
// CEscapeBytes to build one from a byte slice.
type CEscape string

// CEscapeBytes returns a CEscape holding a copy of b.
func CEscapeBytes(b []byte) CEscape {
	return CEscape(b)
}

// cEscapeSafe reports which bytes CEscape writes unescaped.
var cEscapeSafe = func() (t [256]bool) {
	for c := 'a'; c <= 'z'; c++ {
		t[c] = true
	}
	for c := 'A'; c <= 'Z'; c++ {
		t[c] = true
	}
	for c := '0'; c <= '9'; c++ {
		t[c] = true
	}
	for _, c := range []byte(" ~!@#$%^&*()_+`-={}|\\[]:;'<>,.?/") {
		t[c] = true
	}
	return t
}()

// Compare orders escapes by their underlying bytes.
func (c CEscape) Compare(o CEscape) int {
	return strings.Compare(string(c), string(o))
}

func (c CEscape) String() string {
	var sb strings.Builder
	sb.Grow(len(c))
	_, _ = c.WriteTo(&sb)
	return sb.String()
}

// WriteTo implements io.WriterTo.
func (c CEscape) WriteTo(w io.Writer) (int64, error) {
	f := acquireFormatter(w, NoColorPalette())
	defer releaseFormatter(f)
	err := c.render(f)
	return f.n, err
}

func (c CEscape) render(f *formatter) error {
	s := string(c)
	last := 0
	for i := 0; i < len(s); i++ {
		b := s[i]
		if cEscapeSafe[b] {
			continue
		}
		if err := f.writeString(s[last:i]); err != nil {
			return err
		}
		var err error
		switch b {
		case '"':
			err = f.writeEscape(`\"`)
		case '\n':
			err = f.writeEscape(`\n`)
		default:
			err = f.writeHexEscape(b)
		}
		if err != nil {
			return err
		}
		last = i + 1
	}
	return f.writeString(s[last:])
}
