package live

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/atrium-ui/atrium/pkg/metric"
)

// connectedClients tracks clients across all hubs in the process.
var connectedClients = promauto.NewGauge(prometheus.GaugeOpts{
	Namespace: "atrium",
	Subsystem: "live",
	Name:      "clients",
	Help:      "Number of connected live stream clients",
})

const (
	defaultInterval = 5 * time.Second
	writeWait       = 10 * time.Second

	// clientBuffer is the per-client frame queue. A client that lets
	// this many frames pile up is dropped.
	clientBuffer = 8
)

// Frame is the JSON message sent to clients on every tick.
type Frame struct {
	At      time.Time       `json:"at"`
	Metrics []metric.Metric `json:"metrics"`
	Error   string          `json:"error,omitempty"`
}

// HubConfig configures a Hub.
type HubConfig struct {
	// Interval between source polls. Defaults to 5s.
	Interval time.Duration

	// Logger for connection lifecycle events. Defaults to slog.Default().
	Logger *slog.Logger

	// CheckOrigin overrides the upgrade origin check. Defaults to
	// same-origin (the gorilla default).
	CheckOrigin func(*http.Request) bool
}

// Hub fans metric snapshots out to connected WebSocket clients.
type Hub struct {
	source   metric.Source
	interval time.Duration
	logger   *slog.Logger
	upgrader websocket.Upgrader

	mu      sync.Mutex
	clients map[*client]struct{}
	done    chan struct{}
	started bool
	stopped bool
	wg      sync.WaitGroup
}

type client struct {
	conn *websocket.Conn
	send chan []byte
}

// NewHub creates a hub polling the given source.
func NewHub(source metric.Source, cfg HubConfig) *Hub {
	if cfg.Interval <= 0 {
		cfg.Interval = defaultInterval
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	return &Hub{
		source:   source,
		interval: cfg.Interval,
		logger:   cfg.Logger,
		upgrader: websocket.Upgrader{CheckOrigin: cfg.CheckOrigin},
		clients:  make(map[*client]struct{}),
		done:     make(chan struct{}),
	}
}

// Start launches the broadcast loop. It is a no-op if already started.
func (h *Hub) Start() {
	h.mu.Lock()
	if h.started || h.stopped {
		h.mu.Unlock()
		return
	}
	h.started = true
	h.mu.Unlock()

	h.wg.Add(1)
	go h.loop()
}

// Stop shuts down the broadcast loop and disconnects all clients.
func (h *Hub) Stop() {
	h.mu.Lock()
	if h.stopped {
		h.mu.Unlock()
		return
	}
	h.stopped = true
	started := h.started
	clients := make([]*client, 0, len(h.clients))
	for c := range h.clients {
		clients = append(clients, c)
	}
	h.clients = make(map[*client]struct{})
	h.mu.Unlock()

	connectedClients.Sub(float64(len(clients)))
	close(h.done)
	for _, c := range clients {
		close(c.send)
	}
	if started {
		h.wg.Wait()
	}
}

// ClientCount returns the number of connected clients.
func (h *Hub) ClientCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

// Broadcast polls the source once and sends the frame to every client.
// The broadcast loop calls this on each tick; it can also be called
// directly to push an immediate update.
func (h *Hub) Broadcast() {
	frame := Frame{At: time.Now()}
	ms, err := h.source.Fetch()
	if err != nil {
		frame.Error = err.Error()
	} else {
		frame.Metrics = ms
	}

	data, err := json.Marshal(frame)
	if err != nil {
		h.logger.Error("live frame marshal failed", "error", err)
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	for c := range h.clients {
		select {
		case c.send <- data:
		default:
			// Slow client. Drop it so the rest keep flowing.
			delete(h.clients, c)
			close(c.send)
			connectedClients.Dec()
			h.logger.Warn("dropping slow live client",
				"remote", c.conn.RemoteAddr())
		}
	}
}

// Handler returns the HTTP handler that upgrades connections and
// registers them with the hub.
func (h *Hub) Handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := h.upgrader.Upgrade(w, r, nil)
		if err != nil {
			h.logger.Error("websocket upgrade failed", "error", err)
			return
		}

		c := &client{conn: conn, send: make(chan []byte, clientBuffer)}

		h.mu.Lock()
		if h.stopped {
			h.mu.Unlock()
			conn.Close()
			return
		}
		h.clients[c] = struct{}{}
		h.mu.Unlock()

		connectedClients.Inc()
		h.logger.Debug("live client connected", "remote", conn.RemoteAddr())

		go h.writePump(c)
		go h.readPump(c)
	})
}

func (h *Hub) loop() {
	defer h.wg.Done()

	ticker := time.NewTicker(h.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			h.Broadcast()
		case <-h.done:
			return
		}
	}
}

// writePump drains the client's send queue onto the wire.
func (h *Hub) writePump(c *client) {
	defer c.conn.Close()

	for data := range c.send {
		c.conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := c.conn.WriteMessage(websocket.TextMessage, data); err != nil {
			h.remove(c)
			return
		}
	}

	// Queue closed by Stop or a slow-client drop.
	c.conn.SetWriteDeadline(time.Now().Add(writeWait))
	c.conn.WriteMessage(
		websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
	)
}

// readPump discards inbound messages and detects disconnects.
func (h *Hub) readPump(c *client) {
	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			h.remove(c)
			return
		}
	}
}

// remove unregisters a client; safe to call from both pumps.
func (h *Hub) remove(c *client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.clients[c]; ok {
		delete(h.clients, c)
		close(c.send)
		connectedClients.Dec()
	}
}
