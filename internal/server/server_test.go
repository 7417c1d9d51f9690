package server

import (
	"compress/gzip"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/windmill-labs/windmill-homepage/internal/content"
	"github.com/windmill-labs/windmill-homepage/internal/site"
	"github.com/windmill-labs/windmill-homepage/internal/website"
	"github.com/windmill-labs/windmill-homepage/pkg/logging"
	"github.com/windmill-labs/windmill-homepage/pkg/metrics"
)

var srcAttr = regexp.MustCompile(`\ssrc="([^"]+)"`)

func newTestServer(t *testing.T) (*Server, *metrics.Metrics) {
	t.Helper()

	static := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(static, "logo.svg"), []byte("<svg/>"), 0o644))

	m := metrics.NewMetrics("test")
	srv := New(Options{StaticDir: static, Version: "test", Metrics: m})

	snap, err := site.New(website.DefaultPageConfig(), m).Build(context.Background(), content.Default())
	require.NoError(t, err)
	srv.Swap(snap)
	return srv, m
}

func do(t *testing.T, h http.Handler, req *http.Request) *http.Response {
	t.Helper()
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w.Result()
}

func TestHomeServesSnapshot(t *testing.T) {
	srv, m := newTestServer(t)

	resp := do(t, srv.Handler(), httptest.NewRequest(http.MethodGet, "/", nil))
	body, _ := io.ReadAll(resp.Body)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "text/html; charset=utf-8", resp.Header.Get("Content-Type"))
	assert.Equal(t, srv.Snapshot().ETag, resp.Header.Get("ETag"))
	assert.NotEmpty(t, resp.Header.Get(logging.RequestIDHeader))
	assert.Equal(t, string(srv.Snapshot().HTML), string(body))
	assert.Equal(t, 1.0, m.Requests.Values()["home"])
}

func TestHomeNotModified(t *testing.T) {
	srv, _ := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("If-None-Match", srv.Snapshot().ETag)
	req.Header.Set("Accept-Encoding", "gzip")
	resp := do(t, srv.Handler(), req)
	body, _ := io.ReadAll(resp.Body)

	assert.Equal(t, http.StatusNotModified, resp.StatusCode)
	assert.Empty(t, body)
	assert.Empty(t, resp.Header.Get("Content-Encoding"))
}

func TestHomeGzip(t *testing.T) {
	srv, _ := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	resp := do(t, srv.Handler(), req)

	require.Equal(t, "gzip", resp.Header.Get("Content-Encoding"))
	assert.Empty(t, resp.Header.Get("Content-Length"))
	assert.Equal(t, "W/"+srv.Snapshot().ETag, resp.Header.Get("ETag"))

	zr, err := gzip.NewReader(resp.Body)
	require.NoError(t, err)
	body, err := io.ReadAll(zr)
	require.NoError(t, err)
	assert.Equal(t, string(srv.Snapshot().HTML), string(body))
}

func TestHomeGzipRevalidates(t *testing.T) {
	srv, _ := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	etag := do(t, srv.Handler(), req).Header.Get("ETag")
	require.True(t, strings.HasPrefix(etag, "W/"), etag)

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	req.Header.Set("If-None-Match", etag)
	resp := do(t, srv.Handler(), req)

	assert.Equal(t, http.StatusNotModified, resp.StatusCode)
	assert.Equal(t, etag, resp.Header.Get("ETag"))
}

func TestETagMatch(t *testing.T) {
	tests := []struct {
		header string
		want   bool
	}{
		{"", false},
		{`"abc"`, true},
		{`W/"abc"`, true},
		{`"old", W/"abc"`, true},
		{`"old"`, false},
		{"*", true},
	}

	for _, tt := range tests {
		t.Run(tt.header, func(t *testing.T) {
			assert.Equal(t, tt.want, etagMatch(tt.header, `"abc"`))
		})
	}
}

func TestHomeAssetsResolve(t *testing.T) {
	static := t.TempDir()
	srv := New(Options{StaticDir: static, Version: "test"})

	snap, err := site.New(website.DefaultPageConfig(), nil).Build(context.Background(), content.Default())
	require.NoError(t, err)
	srv.Swap(snap)

	srcs := srcAttr.FindAllStringSubmatch(string(snap.HTML), -1)
	require.NotEmpty(t, srcs)
	for _, m := range srcs {
		src := m[1]
		require.True(t, strings.HasPrefix(src, "/static/"), "asset %s is outside the static route", src)

		file := filepath.Join(static, filepath.FromSlash(strings.TrimPrefix(src, "/static/")))
		require.NoError(t, os.MkdirAll(filepath.Dir(file), 0o755))
		require.NoError(t, os.WriteFile(file, []byte("x"), 0o644))

		resp := do(t, srv.Handler(), httptest.NewRequest(http.MethodGet, src, nil))
		assert.Equal(t, http.StatusOK, resp.StatusCode, src)
	}
}

func TestHomeBeforeFirstRender(t *testing.T) {
	srv := New(Options{})

	resp := do(t, srv.Handler(), httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)

	resp = do(t, srv.Handler(), httptest.NewRequest(http.MethodGet, "/readyz", nil))
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
}

func TestUnknownPathIsNotFound(t *testing.T) {
	srv, _ := newTestServer(t)

	resp := do(t, srv.Handler(), httptest.NewRequest(http.MethodGet, "/nope", nil))
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestFeaturesJSON(t *testing.T) {
	srv, _ := newTestServer(t)

	resp := do(t, srv.Handler(), httptest.NewRequest(http.MethodGet, "/api/features", nil))
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))

	var got content.Catalog
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	if diff := cmp.Diff(*srv.Snapshot().Catalog, got); diff != "" {
		t.Errorf("catalog mismatch (-want +got):\n%s", diff)
	}
}

func TestFeaturesMsgPack(t *testing.T) {
	srv, _ := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/features", nil)
	req.Header.Set("Accept", "application/msgpack")
	resp := do(t, srv.Handler(), req)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/msgpack", resp.Header.Get("Content-Type"))

	var got content.Catalog
	require.NoError(t, msgpack.NewDecoder(resp.Body).Decode(&got))
	require.Len(t, got.Features, 9)
	assert.Equal(t, srv.Snapshot().Catalog.Features[0].Name, got.Features[0].Name)
}

func TestHealthAndMetrics(t *testing.T) {
	srv, _ := newTestServer(t)
	h := srv.Handler()

	resp := do(t, h, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp = do(t, h, httptest.NewRequest(http.MethodGet, "/readyz", nil))
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp = do(t, h, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), `test_render_total{result="ok"} 1`)
	assert.Contains(t, string(body), `test_features 9`)
}

func TestStatic(t *testing.T) {
	srv, _ := newTestServer(t)

	resp := do(t, srv.Handler(), httptest.NewRequest(http.MethodGet, "/static/logo.svg", nil))
	body, _ := io.ReadAll(resp.Body)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "<svg/>", string(body))
}

func TestRecoveryCountsPanics(t *testing.T) {
	srv, m := newTestServer(t)
	srv.Handle("GET /boom", "boom", http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))

	resp := do(t, srv.Handler(), httptest.NewRequest(http.MethodGet, "/boom", nil))
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.Equal(t, 1.0, m.Panics.Value())
}

func TestSwapReplacesPage(t *testing.T) {
	srv, _ := newTestServer(t)
	old := srv.Snapshot()

	cat := content.Default()
	cat.Eyebrow = "Swapped"
	snap, err := site.New(website.DefaultPageConfig(), nil).Build(context.Background(), cat)
	require.NoError(t, err)
	srv.Swap(snap)

	resp := do(t, srv.Handler(), httptest.NewRequest(http.MethodGet, "/", nil))
	body, _ := io.ReadAll(resp.Body)
	assert.True(t, strings.Contains(string(body), "Swapped"))
	assert.NotEqual(t, old.ETag, resp.Header.Get("ETag"))
}

func TestNegotiate(t *testing.T) {
	tests := []struct {
		accept string
		want   string
	}{
		{"", "json"},
		{"*/*", "json"},
		{"application/json", "json"},
		{"application/msgpack", "msgpack"},
		{"text/html, application/x-msgpack;q=0.9", "msgpack"},
		{"application/json, application/msgpack", "json"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Negotiate(tt.accept).Name(), "accept %q", tt.accept)
	}
}
