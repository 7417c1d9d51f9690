package devserver

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"
)

// Message types pushed to browsers.
const (
	MessageReload = "reload"
	MessageError  = "error"
)

// Message is one notification on the reload socket.
type Message struct {
	Type  string `json:"type"`
	Error string `json:"error,omitempty"`
}

const writeTimeout = 5 * time.Second

// Hub fans reload notifications out to connected browsers.
type Hub struct {
	mu      sync.Mutex
	clients map[chan Message]struct{}
	last    *Message
	closed  bool
	done    chan struct{}
	wg      sync.WaitGroup
}

// NewHub creates an empty hub.
func NewHub() *Hub {
	return &Hub{
		clients: make(map[chan Message]struct{}),
		done:    make(chan struct{}),
	}
}

// ServeHTTP upgrades the request and streams messages until the browser
// goes away or the hub closes. A browser that connects while the content is
// broken gets the error straight away.
func (hub *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	hub.mu.Lock()
	if hub.closed {
		hub.mu.Unlock()
		http.Error(w, "shutting down", http.StatusServiceUnavailable)
		return
	}
	hub.wg.Add(1)
	hub.mu.Unlock()
	defer hub.wg.Done()

	conn, err := websocket.Accept(w, r, nil)
	if err != nil {
		return
	}
	defer conn.CloseNow()

	send := hub.register()
	defer hub.unregister(send)

	ctx := conn.CloseRead(r.Context())
	for {
		select {
		case <-ctx.Done():
			return
		case <-hub.done:
			conn.Close(websocket.StatusGoingAway, "server shutting down")
			return
		case msg := <-send:
			wctx, cancel := context.WithTimeout(ctx, writeTimeout)
			err := wsjson.Write(wctx, conn, msg)
			cancel()
			if err != nil {
				return
			}
		}
	}
}

func (hub *Hub) register() chan Message {
	send := make(chan Message, 4)
	hub.mu.Lock()
	defer hub.mu.Unlock()
	hub.clients[send] = struct{}{}
	if hub.last != nil && hub.last.Type == MessageError {
		send <- *hub.last
	}
	return send
}

func (hub *Hub) unregister(send chan Message) {
	hub.mu.Lock()
	defer hub.mu.Unlock()
	delete(hub.clients, send)
}

// Broadcast queues msg for every client. Slow clients drop messages rather
// than block the reload loop.
func (hub *Hub) Broadcast(msg Message) {
	hub.mu.Lock()
	defer hub.mu.Unlock()
	hub.last = &msg
	for send := range hub.clients {
		select {
		case send <- msg:
		default:
		}
	}
}

// Clients returns the number of connected browsers.
func (hub *Hub) Clients() int {
	hub.mu.Lock()
	defer hub.mu.Unlock()
	return len(hub.clients)
}

// Close disconnects every browser and waits for their handlers to return.
func (hub *Hub) Close() error {
	hub.mu.Lock()
	if hub.closed {
		hub.mu.Unlock()
		return nil
	}
	hub.closed = true
	close(hub.done)
	hub.mu.Unlock()

	hub.wg.Wait()
	return nil
}
