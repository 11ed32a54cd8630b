package livecaption

import (
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

const (
	writeTimeout  = 10 * time.Second
	clientBacklog = 64
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(*http.Request) bool { return true },
}

type client struct {
	conn *websocket.Conn
	send chan Caption
}

type stream struct {
	window  *Window
	clients map[*client]struct{}
}

// Hub routes captions to websocket subscribers grouped by room and language.
// Each stream keeps its own rolling window so late subscribers receive
// recent context on connect.
type Hub struct {
	mu         sync.Mutex
	windowSize int
	streams    map[string]*stream
	logger     *slog.Logger
}

// NewHub returns a hub whose per-stream windows hold windowSize captions.
func NewHub(windowSize int, logger *slog.Logger) *Hub {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Hub{
		windowSize: windowSize,
		streams:    make(map[string]*stream),
		logger:     logger,
	}
}

func streamKey(room, language string) string {
	return room + "\x00" + language
}

func (h *Hub) streamFor(room, language string) *stream {
	key := streamKey(room, language)
	s, ok := h.streams[key]
	if !ok {
		s = &stream{
			window:  NewWindow(h.windowSize),
			clients: make(map[*client]struct{}),
		}
		h.streams[key] = s
	}
	return s
}

// Publish records a caption in its stream window and queues it to every
// subscriber. Subscribers that cannot keep up are dropped.
func (h *Hub) Publish(caption Caption) {
	h.mu.Lock()
	s := h.streamFor(caption.Room, caption.Language)
	s.window.Add(caption)
	stale := make([]*client, 0)
	for c := range s.clients {
		select {
		case c.send <- caption:
		default:
			stale = append(stale, c)
			delete(s.clients, c)
		}
	}
	h.mu.Unlock()

	for _, c := range stale {
		close(c.send)
		h.logger.Warn("dropping slow caption subscriber",
			slog.String("room", caption.Room),
			slog.String("language", caption.Language))
	}
}

// Window returns the rolling window for a room and language pair, creating
// it when absent.
func (h *Hub) Window(room, language string) *Window {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.streamFor(room, language).window
}

// ServeStream upgrades the request to a websocket and streams captions for
// the given room and language until the peer disconnects. The current window
// contents are replayed first.
func (h *Hub) ServeStream(w http.ResponseWriter, r *http.Request, room, language string) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warn("websocket upgrade failed", slog.String("error", err.Error()))
		return
	}

	c := &client{conn: conn, send: make(chan Caption, clientBacklog)}

	h.mu.Lock()
	s := h.streamFor(room, language)
	replay := s.window.Snapshot()
	s.clients[c] = struct{}{}
	h.mu.Unlock()

	go h.writeLoop(c, replay)
	h.readLoop(c, room, language)
}

func (h *Hub) writeLoop(c *client, replay []Caption) {
	defer c.conn.Close()
	for _, caption := range replay {
		if err := h.writeCaption(c, caption); err != nil {
			return
		}
	}
	for caption := range c.send {
		if err := h.writeCaption(c, caption); err != nil {
			return
		}
	}
	deadline := time.Now().Add(writeTimeout)
	_ = c.conn.WriteControl(websocket.CloseMessage, nil, deadline)
}

func (h *Hub) writeCaption(c *client, caption Caption) error {
	if err := c.conn.SetWriteDeadline(time.Now().Add(writeTimeout)); err != nil {
		return err
	}
	return c.conn.WriteJSON(caption)
}

// readLoop drains the connection so close frames and pings are processed,
// then unregisters the client.
func (h *Hub) readLoop(c *client, room, language string) {
	defer func() {
		h.mu.Lock()
		s := h.streams[streamKey(room, language)]
		if s != nil {
			if _, ok := s.clients[c]; ok {
				delete(s.clients, c)
				close(c.send)
			}
		}
		h.mu.Unlock()
		c.conn.Close()
	}()
	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			return
		}
	}
}
