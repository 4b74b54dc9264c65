package quotex

import (
	"io"
	"strings"
)

// Bytes is the set of types whose byte view the wrappers can render.
type Bytes interface {
	~[]byte | ~string
}

// Hex owns a value and renders its bytes as lowercase hexadecimal digit
// pairs, high nibble first, with no separators. Apart from its textual form
// it stands in for the wrapped value: Get reads it, Set and Ptr change it.
// Mutation through Set or Ptr follows ordinary single-owner rules; a Hex is
// not safe for concurrent mutation.
type Hex[T Bytes] struct {
	v T
}

// HexOf wraps v.
func HexOf[T Bytes](v T) Hex[T] {
	return Hex[T]{v: v}
}

// Get returns the wrapped value.
func (h Hex[T]) Get() T {
	return h.v
}

// Set replaces the wrapped value.
func (h *Hex[T]) Set(v T) {
	h.v = v
}

// Ptr returns a pointer to the wrapped value for in-place edits.
func (h *Hex[T]) Ptr() *T {
	return &h.v
}

func (h Hex[T]) String() string {
	var sb strings.Builder
	sb.Grow(2 * len(h.v))
	_, _ = h.WriteTo(&sb)
	return sb.String()
}

// GoString makes %#v print the hex form as well.
func (h Hex[T]) GoString() string {
	return h.String()
}

// WriteTo implements io.WriterTo.
func (h Hex[T]) WriteTo(w io.Writer) (int64, error) {
	f := acquireFormatter(w, NoColorPalette())
	defer releaseFormatter(f)
	err := h.render(f)
	return f.n, err
}

func (h Hex[T]) render(f *formatter) error {
	v := h.v
	j := 0
	for i := 0; i < len(v); i++ {
		c := v[i]
		f.scratch[j] = lowerHex[c>>4]
		f.scratch[j+1] = lowerHex[c&0x0f]
		j += 2
		if j == len(f.scratch) {
			if err := f.writeBytes(f.scratch[:j]); err != nil {
				return err
			}
			j = 0
		}
	}
	return f.writeBytes(f.scratch[:j])
}
