package server

import (
	"compress/gzip"
	"fmt"
	"net/http"
	"runtime/debug"
	"strings"

	"github.com/windmill-labs/windmill-homepage/pkg/logging"
	"github.com/windmill-labs/windmill-homepage/pkg/metrics"
	"github.com/windmill-labs/windmill-homepage/pkg/pool"
)

// Middleware wraps a handler.
type Middleware func(http.Handler) http.Handler

// Chain applies middlewares so the first one is outermost.
func Chain(h http.Handler, mws ...Middleware) http.Handler {
	for i := len(mws) - 1; i >= 0; i-- {
		h = mws[i](h)
	}
	return h
}

// Recovery turns handler panics into 500 responses.
func Recovery(m *metrics.Metrics) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if rec == http.ErrAbortHandler {
					panic(rec)
				}
				if m != nil {
					m.Panics.Inc()
				}
				logging.L(r.Context()).Error("handler panic",
					logging.String("panic", fmt.Sprint(rec)),
					logging.String("stack", string(debug.Stack())),
				)
				http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			}()

			next.ServeHTTP(w, r)
		})
	}
}

// Compress gzips responses for clients that accept it. Websocket upgrades
// pass through untouched.
func Compress() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Add("Vary", "Accept-Encoding")
			if !strings.Contains(r.Header.Get("Accept-Encoding"), "gzip") ||
				strings.EqualFold(r.Header.Get("Upgrade"), "websocket") {
				next.ServeHTTP(w, r)
				return
			}

			gzw := &gzipResponseWriter{ResponseWriter: w}
			defer gzw.Close()

			next.ServeHTTP(gzw, r)
		})
	}
}

// gzipResponseWriter starts compressing on the first body write, so empty
// responses such as 304 stay empty.
type gzipResponseWriter struct {
	http.ResponseWriter
	gz *gzip.Writer
}

func (w *gzipResponseWriter) start() {
	if w.gz != nil {
		return
	}
	h := w.ResponseWriter.Header()
	h.Del("Content-Length")
	h.Set("Content-Encoding", "gzip")
	weakenETag(h)
	w.gz = pool.GetGzipWriter(w.ResponseWriter)
}

func (w *gzipResponseWriter) WriteHeader(status int) {
	// a 304 must carry the validator the gzip 200 would have sent
	weakenETag(w.ResponseWriter.Header())
	if status >= http.StatusOK && status != http.StatusNoContent && status != http.StatusNotModified {
		w.start()
	}
	w.ResponseWriter.WriteHeader(status)
}

func (w *gzipResponseWriter) Write(b []byte) (int, error) {
	w.start()
	return w.gz.Write(b)
}

func (w *gzipResponseWriter) Close() error {
	if w.gz == nil {
		return nil
	}
	err := w.gz.Close()
	pool.PutGzipWriter(w.gz)
	w.gz = nil
	return err
}

func (w *gzipResponseWriter) Unwrap() http.ResponseWriter {
	return w.ResponseWriter
}

// weakenETag marks a strong ETag weak, since the compressed bytes differ from
// the identity representation it was computed for.
func weakenETag(h http.Header) {
	if etag := h.Get("ETag"); etag != "" && !strings.HasPrefix(etag, "W/") {
		h.Set("ETag", "W/"+etag)
	}
}
