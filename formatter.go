package quotex

import (
	"io"

	"pkt.systems/quotex/internal/ansi"
)

const lowerHex = "0123456789abcdef"

// formatter is the single write path shared by every renderer. It stops at
// the first failed write and reports that error unchanged.
type formatter struct {
	w       io.Writer
	bw      io.ByteWriter
	sw      io.StringWriter
	pal     ColorPalette
	n       int64
	byteBuf [1]byte
	scratch [64]byte
}

func (f *formatter) reset(w io.Writer, pal ColorPalette) {
	f.w = w
	f.pal = pal
	f.n = 0
	if w == nil {
		f.bw = nil
		f.sw = nil
		return
	}
	if bw, ok := w.(io.ByteWriter); ok {
		f.bw = bw
	} else {
		f.bw = nil
	}
	if sw, ok := w.(io.StringWriter); ok {
		f.sw = sw
	} else {
		f.sw = nil
	}
}

func (f *formatter) clear() {
	f.w = nil
	f.bw = nil
	f.sw = nil
	f.pal = ColorPalette{}
	f.n = 0
}

// Write lets arbitrary values (join items rendered through fmt or
// io.WriterTo) share the byte count and error path.
func (f *formatter) Write(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	n, err := f.w.Write(p)
	f.n += int64(n)
	return n, err
}

func (f *formatter) writeBytes(b []byte) error {
	_, err := f.Write(b)
	return err
}

func (f *formatter) writeString(s string) error {
	if s == "" {
		return nil
	}
	var (
		n   int
		err error
	)
	if f.sw != nil {
		n, err = f.sw.WriteString(s)
	} else {
		n, err = io.WriteString(f.w, s)
	}
	f.n += int64(n)
	return err
}

func (f *formatter) writeByte(b byte) error {
	if f.bw != nil {
		if err := f.bw.WriteByte(b); err != nil {
			return err
		}
	} else {
		f.byteBuf[0] = b
		if _, err := f.w.Write(f.byteBuf[:]); err != nil {
			return err
		}
	}
	f.n++
	return nil
}

func (f *formatter) writeStyledString(style string, s string) error {
	if style != "" {
		if err := f.writeString(style); err != nil {
			return err
		}
	}
	if err := f.writeString(s); err != nil {
		return err
	}
	if style != "" {
		return f.writeString(ansi.Reset)
	}
	return nil
}

func (f *formatter) writeStyledByte(style string, b byte) error {
	if style != "" {
		if err := f.writeString(style); err != nil {
			return err
		}
	}
	if err := f.writeByte(b); err != nil {
		return err
	}
	if style != "" {
		return f.writeString(ansi.Reset)
	}
	return nil
}

func (f *formatter) writeQuote(b byte) error {
	return f.writeStyledByte(f.pal.Quote, b)
}

func (f *formatter) writeEscape(s string) error {
	return f.writeStyledString(f.pal.Escape, s)
}

// writeHexEscape writes \xHH for b.
func (f *formatter) writeHexEscape(b byte) error {
	f.scratch[0] = '\\'
	f.scratch[1] = 'x'
	f.scratch[2] = lowerHex[b>>4]
	f.scratch[3] = lowerHex[b&0x0f]
	if f.pal.Escape != "" {
		return f.writeStyledString(f.pal.Escape, string(f.scratch[:4]))
	}
	return f.writeBytes(f.scratch[:4])
}

// startStyle and endStyle bracket output produced by someone else, such as
// a join separator rendered through fmt.
func (f *formatter) startStyle(style string) error {
	if style == "" {
		return nil
	}
	return f.writeString(style)
}

func (f *formatter) endStyle(style string) error {
	if style == "" {
		return nil
	}
	return f.writeString(ansi.Reset)
}
