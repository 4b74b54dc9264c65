package quotex

import (
	"bytes"
	"errors"
)

var errWrite = errors.New("write err")

type noStringWriter struct {
	buf bytes.Buffer
}

func (w *noStringWriter) Write(p []byte) (int, error) {
	return w.buf.Write(p)
}

func (w *noStringWriter) String() string {
	return w.buf.String()
}

type stringWriter struct {
	buf bytes.Buffer
}

func (w *stringWriter) Write(p []byte) (int, error) {
	return w.buf.Write(p)
}

func (w *stringWriter) WriteString(s string) (int, error) {
	return w.buf.WriteString(s)
}

func (w *stringWriter) String() string {
	return w.buf.String()
}

type byteWriter struct {
	buf bytes.Buffer
}

func (w *byteWriter) Write(p []byte) (int, error) {
	return w.buf.Write(p)
}

func (w *byteWriter) WriteByte(b byte) error {
	return w.buf.WriteByte(b)
}

func (w *byteWriter) String() string {
	return w.buf.String()
}

// fdWriter pretends to be a file whose descriptor is never a terminal.
type fdWriter struct {
	buf bytes.Buffer
}

func (w *fdWriter) Write(p []byte) (int, error) {
	return w.buf.Write(p)
}

func (w *fdWriter) Fd() uintptr {
	return 1 << 20
}

type errWriter struct{}

func (errWriter) Write(_ []byte) (int, error) {
	return 0, errWrite
}

type errStringWriter struct{}

func (errStringWriter) Write(_ []byte) (int, error) {
	return 0, errWrite
}

func (errStringWriter) WriteString(_ string) (int, error) {
	return 0, errors.New("write string err")
}

type errByteWriter struct {
	buf bytes.Buffer
}

func (w *errByteWriter) Write(p []byte) (int, error) {
	return w.buf.Write(p)
}

func (w *errByteWriter) WriteByte(_ byte) error {
	return errors.New("write byte err")
}

// limitWriter accepts limit bytes and fails every write after that,
// keeping whatever fit.
type limitWriter struct {
	limit int
	buf   bytes.Buffer
}

func (w *limitWriter) Write(p []byte) (int, error) {
	room := w.limit - w.buf.Len()
	if room >= len(p) {
		return w.buf.Write(p)
	}
	if room > 0 {
		w.buf.Write(p[:room])
	} else {
		room = 0
	}
	return room, errWrite
}

func (w *limitWriter) String() string {
	return w.buf.String()
}

type discardStringByteWriter struct{}

func (discardStringByteWriter) Write(p []byte) (int, error) {
	return len(p), nil
}

func (discardStringByteWriter) WriteString(s string) (int, error) {
	return len(s), nil
}

func (discardStringByteWriter) WriteByte(_ byte) error {
	return nil
}

// allBytes returns every byte value once, in order.
func allBytes() []byte {
	b := make([]byte, 256)
	for i := range b {
		b[i] = byte(i)
	}
	return b
}
