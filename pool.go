package quotex

import (
	"io"
	"sync"
)

var formatterPool = sync.Pool{
	New: func() any {
		return &formatter{}
	},
}

func acquireFormatter(w io.Writer, pal ColorPalette) *formatter {
	f := formatterPool.Get().(*formatter)
	f.reset(w, pal)
	return f
}

func releaseFormatter(f *formatter) {
	if f == nil {
		return
	}
	f.clear()
	formatterPool.Put(f)
}

var valueReaderPool = sync.Pool{
	New: func() any {
		return &valueReader{}
	},
}

func acquireValueReader(r io.Reader) *valueReader {
	v := valueReaderPool.Get().(*valueReader)
	v.scanner.Reset(r)
	v.Reset()
	return v
}

func releaseValueReader(v *valueReader) {
	if v == nil {
		return
	}
	v.scanner.Reset(nil)
	v.Reset()
	valueReaderPool.Put(v)
}
