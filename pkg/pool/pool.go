// Package pool reuses render buffers and gzip writers on the request path.
package pool

import (
	"bytes"
	"compress/gzip"
	"io"
	"sync"
)

// maxBufferSize caps the buffers kept for reuse. A rendered homepage is well
// under this.
const maxBufferSize = 256 * 1024

var buffers = sync.Pool{
	New: func() any {
		return new(bytes.Buffer)
	},
}

// GetBuffer returns an empty buffer from the pool.
func GetBuffer() *bytes.Buffer {
	buf := buffers.Get().(*bytes.Buffer)
	buf.Reset()
	return buf
}

// PutBuffer returns buf to the pool. Callers must not keep references to
// buf.Bytes() afterwards.
func PutBuffer(buf *bytes.Buffer) {
	if buf == nil || buf.Cap() > maxBufferSize {
		return
	}
	buffers.Put(buf)
}

var gzipWriters = sync.Pool{
	New: func() any {
		return gzip.NewWriter(io.Discard)
	},
}

// GetGzipWriter returns a gzip writer reset to write to w.
func GetGzipWriter(w io.Writer) *gzip.Writer {
	gz := gzipWriters.Get().(*gzip.Writer)
	gz.Reset(w)
	return gz
}

// PutGzipWriter returns gz to the pool. It must already be closed.
func PutGzipWriter(gz *gzip.Writer) {
	if gz == nil {
		return
	}
	gz.Reset(io.Discard)
	gzipWriters.Put(gz)
}
