package quotex

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/mattn/go-isatty"
)

// Options controls highlighted rendering through Render and Sprint. Plain
// String and WriteTo calls never colour their output.
type Options struct {
	// Palette selects the colour palette by name (see PaletteNames). Empty
	// selects "default"; "none" disables colouring.
	Palette string
	// ForceColor enables colouring even when the writer is not a terminal.
	ForceColor bool
}

// DefaultOptions holds the fallback render configuration.
var DefaultOptions = &Options{}

// Renderer is implemented by every formatting type in this package. The
// render hook is unexported so values nest inside a Join, or get
// highlighted by Render, through one shared write path.
type Renderer interface {
	fmt.Stringer
	io.WriterTo
	render(f *formatter) error
}

// Render writes v to w. When w is a terminal (or opts.ForceColor is set)
// quote characters, escape sequences and join separators are highlighted
// using the selected palette. Otherwise the output is byte-identical to
// v.String(). A write error stops the render and is returned unchanged.
func Render(w io.Writer, v Renderer, opts *Options) error {
	if opts == nil {
		opts = DefaultOptions
	}
	pal, err := resolvePalette(opts, shouldColor(w, opts))
	if err != nil {
		return err
	}
	f := acquireFormatter(w, pal)
	defer releaseFormatter(f)
	return v.render(f)
}

// Sprint is like Render but returns the output as a string. Since the
// destination is never a terminal, colour is only applied with
// opts.ForceColor.
func Sprint(v Renderer, opts *Options) (string, error) {
	var sb strings.Builder
	if err := Render(&sb, v, opts); err != nil {
		return "", err
	}
	return sb.String(), nil
}

func shouldColor(w io.Writer, opts *Options) bool {
	if opts != nil && strings.EqualFold(strings.TrimSpace(opts.Palette), paletteNoneName) {
		return false
	}
	if opts != nil && opts.ForceColor {
		return true
	}
	fw, ok := w.(interface{ Fd() uintptr })
	if !ok {
		return false
	}
	fd := fw.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// writeValue renders one join item or separator. Stringers and Formatters
// go through fmt before io.WriterTo is considered, and a seekable WriterTo
// is rewound afterwards, so buffers and readers are not drained.
func writeValue(f *formatter, v any) error {
	switch x := v.(type) {
	case Renderer:
		return x.render(f)
	case string:
		return f.writeString(x)
	case []byte:
		return f.writeBytes(x)
	case rune:
		n := utf8.EncodeRune(f.scratch[:], x)
		return f.writeBytes(f.scratch[:n])
	case byte:
		return f.writeByte(x)
	case fmt.Stringer, fmt.Formatter:
		_, err := fmt.Fprint(f, x)
		return err
	case io.WriterTo:
		sk, ok := x.(io.Seeker)
		if !ok {
			_, err := x.WriteTo(f)
			return err
		}
		pos, err := sk.Seek(0, io.SeekCurrent)
		if err != nil {
			return err
		}
		_, err = x.WriteTo(f)
		if _, serr := sk.Seek(pos, io.SeekStart); err == nil {
			err = serr
		}
		return err
	default:
		_, err := fmt.Fprint(f, x)
		return err
	}
}
