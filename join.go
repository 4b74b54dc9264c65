package quotex

import (
	"io"
	"iter"
	"slices"
	"strings"
)

// Join renders a sequence of items, writing each item's text immediately
// followed by the separator's text. The separator is also written after the
// last item, so JoinSlice(" ", []int{1, 2, 3}) renders as "1 2 3 ". Callers
// depend on the trailing separator; do not trim it here.
//
// Items and the separator follow the same rules. Renderers are written
// through their render hook, so quoting types nest. Strings and byte slices
// are written verbatim, and a rune or byte is written as the character it
// holds: JoinWith(' ', ...) separates with a space rather than "32", and
// JoinSlice("", []rune{'a', 'b'}) renders as "ab". Values implementing
// fmt.Stringer or fmt.Formatter go through fmt.Fprint. Remaining
// io.WriterTo values are written with WriteTo; when they also implement
// io.Seeker (strings.Reader, bytes.Reader) their position is restored
// afterwards. Everything else goes through fmt.Fprint. A WriterTo that
// consumes itself and cannot seek, such as a bufio.Reader, is drained by
// the first render.
//
// The factory is called once per render, so every render sees a freshly
// produced sequence.
type Join[S, T any] struct {
	sep   S
	items func() iter.Seq[T]
}

// JoinWith builds a Join from a separator and a sequence factory. A nil
// factory renders as the empty string.
func JoinWith[S, T any](sep S, items func() iter.Seq[T]) Join[S, T] {
	return Join[S, T]{sep: sep, items: items}
}

// JoinSlice builds a Join over a slice. The slice is read on every render,
// not copied.
func JoinSlice[S, T any](sep S, items []T) Join[S, T] {
	return JoinWith(sep, func() iter.Seq[T] {
		return slices.Values(items)
	})
}

func (j Join[S, T]) String() string {
	var sb strings.Builder
	_, _ = j.WriteTo(&sb)
	return sb.String()
}

// WriteTo implements io.WriterTo. The first failing item, separator or
// write stops the render; output already written stays written.
func (j Join[S, T]) WriteTo(w io.Writer) (int64, error) {
	f := acquireFormatter(w, NoColorPalette())
	defer releaseFormatter(f)
	err := j.render(f)
	return f.n, err
}

func (j Join[S, T]) render(f *formatter) error {
	if j.items == nil {
		return nil
	}
	for item := range j.items() {
		if err := writeValue(f, item); err != nil {
			return err
		}
		if err := f.startStyle(f.pal.Separator); err != nil {
			return err
		}
		if err := writeValue(f, j.sep); err != nil {
			return err
		}
		if err := f.endStyle(f.pal.Separator); err != nil {
			return err
		}
	}
	return nil
}
