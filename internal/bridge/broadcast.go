package bridge

import (
	"encoding/json"
	"log"
	"net/http"
	"net/url"
	"strings"
	"sync"

	"github.com/gorilla/websocket"

	"github.com/verte-zerg/tuitap/internal/practice"
)

type client struct {
	conn *websocket.Conn
	send chan []byte
}

func newClient(conn *websocket.Conn) *client {
	c := &client{
		conn: conn,
		send: make(chan []byte, 64),
	}
	go c.writePump()
	return c
}

func (c *client) writePump() {
	defer c.conn.Close()
	for msg := range c.send {
		if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
			return
		}
	}
}

func (c *client) close() {
	close(c.send)
}

// Broadcaster fans trainer events out to connected host clients. Notify is
// called from the UI loop and never blocks on the network.
type Broadcaster struct {
	mu      sync.RWMutex
	clients map[*client]bool
	last    SessionPayload
	maxTaps int

	allowedOrigins map[string]bool
}

// NewBroadcaster returns a broadcaster for sessions of maxTaps attempts.
// allowedOrigins extends the default same-host origin check.
func NewBroadcaster(maxTaps int, allowedOrigins []string) *Broadcaster {
	b := &Broadcaster{
		clients:        make(map[*client]bool),
		maxTaps:        maxTaps,
		last:           SessionPayload{MaxTaps: maxTaps},
		allowedOrigins: make(map[string]bool),
	}
	for _, origin := range allowedOrigins {
		if trimmed := strings.TrimSpace(origin); trimmed != "" {
			b.allowedOrigins[trimmed] = true
		}
	}
	return b
}

// Notify implements practice.Listener.
func (b *Broadcaster) Notify(ev practice.Event) {
	msg, ok := messageFor(ev, b.maxTaps)
	if !ok {
		return
	}
	b.mu.Lock()
	b.last = sessionPayload(ev.SessionID, ev.Session, b.maxTaps)
	b.mu.Unlock()
	b.broadcast(msg)
}

// Handler serves the websocket endpoint at /ws.
func (b *Broadcaster) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", b.handleWS)
	return mux
}

func (b *Broadcaster) handleWS(w http.ResponseWriter, r *http.Request) {
	upgrader := websocket.Upgrader{
		CheckOrigin: b.checkOrigin,
	}
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("ws upgrade error: %v", err)
		return
	}

	c := b.AddClient(conn)
	log.Printf("bridge client connected: %s (%d total)", r.RemoteAddr, b.ClientCount())

	go func() {
		defer func() {
			b.RemoveClient(c)
			log.Printf("bridge client disconnected: %s", r.RemoteAddr)
		}()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}

func (b *Broadcaster) checkOrigin(r *http.Request) bool {
	origin := r.Header.Get("Origin")
	if origin == "" {
		return true
	}
	if b.allowedOrigins[origin] {
		return true
	}
	parsed, err := url.Parse(origin)
	if err != nil {
		return false
	}
	return parsed.Host == r.Host
}

// AddClient registers conn and sends it the current session snapshot.
func (b *Broadcaster) AddClient(conn *websocket.Conn) *client {
	c := newClient(conn)

	b.mu.Lock()
	defer b.mu.Unlock()
	b.clients[c] = true

	data, err := json.Marshal(Message{Type: MsgSnapshot, Payload: b.last})
	if err != nil {
		log.Printf("bridge marshal error: %v", err)
		return c
	}
	select {
	case c.send <- data:
	default:
		// Client too slow, drop the snapshot
	}
	return c
}

// RemoveClient unregisters c and closes its connection.
func (b *Broadcaster) RemoveClient(c *client) {
	b.mu.Lock()
	if _, ok := b.clients[c]; ok {
		delete(b.clients, c)
		c.close()
	}
	b.mu.Unlock()
}

// ClientCount returns the number of connected clients.
func (b *Broadcaster) ClientCount() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.clients)
}

// Close disconnects every client.
func (b *Broadcaster) Close() {
	b.mu.Lock()
	for c := range b.clients {
		delete(b.clients, c)
		c.close()
	}
	b.mu.Unlock()
}

func (b *Broadcaster) broadcast(msg Message) {
	data, err := json.Marshal(msg)
	if err != nil {
		log.Printf("bridge marshal error: %v", err)
		return
	}

	var slow []*client
	b.mu.RLock()
	for c := range b.clients {
		select {
		case c.send <- data:
		default:
			slow = append(slow, c)
		}
	}
	b.mu.RUnlock()

	for _, c := range slow {
		// Client can't keep up, disconnect it
		log.Printf("bridge client too slow, disconnecting")
		b.RemoveClient(c)
	}
}
