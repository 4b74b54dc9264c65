package quotex

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"pkt.systems/jpact"
)

// EachCompactJSON reads a stream of concatenated JSON documents from r,
// compacts each one and passes it to fn in input order. The slice handed to
// fn is reused and only valid until fn returns. An error from fn stops the
// stream and is returned as is; malformed JSON is reported with a
// "compact json" prefix.
func EachCompactJSON(r io.Reader, fn func(doc []byte) error) error {
	vr := acquireValueReader(r)
	defer releaseValueReader(vr)

	var buf bytes.Buffer
	for {
		if err := vr.Start(); err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
		buf.Reset()
		if err := jpact.CompactWriter(&buf, vr, 0); err != nil {
			return fmt.Errorf("compact json: %w", err)
		}
		if err := fn(buf.Bytes()); err != nil {
			return err
		}
		vr.Reset()
	}
}

// valueReader exposes exactly one JSON value from the underlying scanner
// and reports io.EOF at its end, so each document can be compacted on its
// own.
type valueReader struct {
	scanner scanner

	started bool
	done    bool
	mode    valueMode
	depth   int
	inStr   bool
	escape  bool
	pending byte
	hasPend bool
}

type valueMode int

const (
	modeScalar valueMode = iota
	modeString
	modeStruct
)

func (v *valueReader) Reset() {
	v.started = false
	v.done = false
	v.mode = modeScalar
	v.depth = 0
	v.inStr = false
	v.escape = false
	v.hasPend = false
	v.pending = 0
}

func (v *valueReader) Start() error {
	if v.started {
		return nil
	}
	b, err := v.scanner.readNonSpace()
	if err != nil {
		return err
	}
	v.started = true
	v.pending = b
	v.hasPend = true
	switch b {
	case '{', '[':
		v.mode = modeStruct
		v.depth = 1
	case '"':
		v.mode = modeString
		v.inStr = true
	default:
		v.mode = modeScalar
	}
	return nil
}

func (v *valueReader) Read(p []byte) (int, error) {
	if v.done {
		return 0, io.EOF
	}
	if !v.started {
		if err := v.Start(); err != nil {
			return 0, err
		}
	}
	if len(p) == 0 {
		return 0, nil
	}

	n := 0
	for n < len(p) {
		b, err := v.nextByte()
		if err != nil {
			if errors.Is(err, io.EOF) {
				if n == 0 {
					return 0, io.EOF
				}
				return n, nil
			}
			return n, err
		}
		p[n] = b
		n++
	}
	return n, nil
}

func (v *valueReader) nextByte() (byte, error) {
	if v.done {
		return 0, io.EOF
	}
	if v.hasPend {
		v.hasPend = false
		return v.pending, nil
	}

	switch v.mode {
	case modeString, modeStruct:
		b, err := v.scanner.readByte()
		if err != nil {
			return 0, err
		}
		if v.inStr {
			switch {
			case v.escape:
				v.escape = false
			case b == '\\':
				v.escape = true
			case b == '"':
				v.inStr = false
				if v.mode == modeString {
					v.done = true
				}
			}
			return b, nil
		}
		switch b {
		case '"':
			v.inStr = true
		case '{', '[':
			v.depth++
		case '}', ']':
			v.depth--
			if v.depth == 0 {
				v.done = true
			}
		}
		return b, nil
	default:
		b, err := v.scanner.peekByte()
		if err != nil {
			if errors.Is(err, io.EOF) {
				v.done = true
				return 0, io.EOF
			}
			return 0, err
		}
		if isTerminator(b) {
			v.done = true
			return 0, io.EOF
		}
		b, _ = v.scanner.readByte()
		return b, nil
	}
}

type scanner struct {
	r   io.Reader
	buf [4096]byte
	pos int
	n   int
}

func (s *scanner) Reset(r io.Reader) {
	s.r = r
	s.pos = 0
	s.n = 0
}

func (s *scanner) fill() error {
	n, err := s.r.Read(s.buf[:])
	if n == 0 {
		if err == nil {
			return io.EOF
		}
		return err
	}
	s.pos = 0
	s.n = n
	return nil
}

func (s *scanner) readByte() (byte, error) {
	if s.pos >= s.n {
		if err := s.fill(); err != nil {
			return 0, err
		}
	}
	b := s.buf[s.pos]
	s.pos++
	return b, nil
}

func (s *scanner) peekByte() (byte, error) {
	if s.pos >= s.n {
		if err := s.fill(); err != nil {
			return 0, err
		}
	}
	return s.buf[s.pos], nil
}

func (s *scanner) skipSpace() error {
	for {
		b, err := s.peekByte()
		if err != nil {
			return err
		}
		if b > ' ' {
			return nil
		}
		_, _ = s.readByte()
	}
}

func (s *scanner) readNonSpace() (byte, error) {
	if err := s.skipSpace(); err != nil {
		return 0, err
	}
	return s.readByte()
}

func isTerminator(b byte) bool {
	return b <= ' ' || b == ',' || b == '}' || b == ']'
}
