// Package devserver reloads the homepage content while it is being edited and
// tells open browsers to refresh.
package devserver

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"time"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/windmill-labs/windmill-homepage/internal/content"
	"github.com/windmill-labs/windmill-homepage/internal/site"
	"github.com/windmill-labs/windmill-homepage/pkg/logging"
	"github.com/windmill-labs/windmill-homepage/pkg/metrics"
)

// ReloadPath is where browsers open the reload socket.
const ReloadPath = "/_dev/reload"

// Publisher receives every successfully rendered snapshot.
type Publisher interface {
	Swap(*site.Snapshot)
}

// Config configures the development server.
type Config struct {
	// ContentFile is the catalog being edited; empty means the built-in one
	// with no watching
	ContentFile string
	Debounce    time.Duration
	Site        *site.Site
	Publisher   Publisher
	Logger      logging.Logger
	Metrics     *metrics.Metrics
}

// DevServer rebuilds the page on content changes. A failed rebuild keeps the
// last good page published and pushes the error to the browser overlay.
type DevServer struct {
	config Config
	hub    *Hub

	mu      sync.RWMutex
	lastErr error
}

// New creates a development server and adds the reload client to the
// site's scripts.
func New(config Config) *DevServer {
	if config.Logger == nil {
		config.Logger = logging.NopLogger{}
	}
	if config.Debounce <= 0 {
		config.Debounce = 150 * time.Millisecond
	}
	config.Site.Scripts = append(config.Site.Scripts, ReloadScript())

	return &DevServer{config: config, hub: NewHub()}
}

// Hub returns the reload socket handler.
func (ds *DevServer) Hub() *Hub {
	return ds.hub
}

// Reload loads the catalog, renders it and publishes the result.
func (ds *DevServer) Reload(ctx context.Context) error {
	start := time.Now()
	snap, err := ds.rebuild(ctx)

	ds.mu.Lock()
	ds.lastErr = err
	ds.mu.Unlock()

	if ds.config.Metrics != nil {
		ds.config.Metrics.Reloads.Inc(site.Result(err))
	}

	if err != nil {
		ds.config.Logger.Error("reload failed, keeping last good page", logging.Err(err))
		ds.hub.Broadcast(Message{Type: MessageError, Error: err.Error()})
		return err
	}

	ds.config.Publisher.Swap(snap)
	ds.config.Logger.Info("content reloaded",
		logging.Int("features", snap.Features),
		logging.Duration("duration", time.Since(start)),
		logging.Int("clients", ds.hub.Clients()),
	)
	ds.hub.Broadcast(Message{Type: MessageReload})
	return nil
}

func (ds *DevServer) rebuild(ctx context.Context) (*site.Snapshot, error) {
	cat, err := content.Load(ds.config.ContentFile)
	if err != nil {
		return nil, err
	}
	return ds.config.Site.Build(ctx, cat)
}

// Err returns the error of the last reload, if it failed.
func (ds *DevServer) Err() error {
	ds.mu.RLock()
	defer ds.mu.RUnlock()
	return ds.lastErr
}

// Run renders once and then watches the content file until ctx is cancelled.
// The first render may fail; the page appears once the file is fixed.
func (ds *DevServer) Run(ctx context.Context) error {
	_ = ds.Reload(ctx)
	if ds.config.ContentFile == "" {
		<-ctx.Done()
		return nil
	}
	return watchFile(ctx, ds.config.ContentFile, ds.config.Debounce, ds.config.Logger, func() {
		_ = ds.Reload(ctx)
	})
}

// Routes registers the reload socket and the error endpoint.
func (ds *DevServer) Routes(handle func(pattern, name string, h http.Handler)) {
	handle("GET "+ReloadPath, "dev_reload", ds.hub)
	handle("GET /_dev/error", "dev_error", http.HandlerFunc(ds.handleError))
}

func (ds *DevServer) handleError(w http.ResponseWriter, r *http.Request) {
	err := ds.Err()
	if err == nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusInternalServerError)
	json.NewEncoder(w).Encode(map[string]string{"error": err.Error()})
}

// Close disconnects all browsers.
func (ds *DevServer) Close() error {
	return ds.hub.Close()
}

// ReloadScript is the browser side of the reload socket: it refreshes on
// reload and shows an overlay on error.
func ReloadScript() g.Node {
	return h.Script(g.Raw(reloadClient))
}

const reloadClient = `(function () {
  var overlayId = "dev-error-overlay";
  function hideOverlay() {
    var el = document.getElementById(overlayId);
    if (el) el.remove();
  }
  function showOverlay(msg) {
    hideOverlay();
    var el = document.createElement("div");
    el.id = overlayId;
    el.setAttribute("role", "alert");
    el.style.cssText = "position:fixed;inset:0;z-index:9999;background:rgba(15,15,35,.92);color:#eee;padding:2rem;font-family:ui-monospace,monospace;overflow:auto";
    var title = document.createElement("h1");
    title.textContent = "Content error";
    title.style.color = "#e74c3c";
    var pre = document.createElement("pre");
    pre.textContent = msg;
    pre.style.whiteSpace = "pre-wrap";
    el.appendChild(title);
    el.appendChild(pre);
    document.body.appendChild(el);
  }
  function connect() {
    var proto = location.protocol === "https:" ? "wss://" : "ws://";
    var ws = new WebSocket(proto + location.host + "` + ReloadPath + `");
    ws.onmessage = function (ev) {
      var msg = JSON.parse(ev.data);
      if (msg.type === "reload") location.reload();
      if (msg.type === "error") showOverlay(msg.error);
    };
    ws.onclose = function () { setTimeout(connect, 1000); };
  }
  connect();
})();`
