package websocket

import (
	"encoding/json"
	"net/http"
	"sync"

	"costr/internal/logger"
	"costr/internal/theme"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
)

// Event names pushed to clients
const (
	EventStorage = "storage"
	EventTheme   = "theme"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// The API only listens for the local UI
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// Event is the envelope of every message sent to clients
type Event struct {
	Event string      `json:"event"`
	Data  interface{} `json:"data"`
}

// ThemeData is the payload of a theme event
type ThemeData struct {
	Colors    theme.Theme       `json:"colors"`
	Variables map[string]string `json:"variables"`
}

// Client represents a single connected WebSocket client
type Client struct {
	Hub  *Hub
	Conn *websocket.Conn
	Send chan []byte
}

// Hub maintains the set of active clients and broadcasts messages to the clients
type Hub struct {
	clients    map[*Client]bool
	broadcast  chan []byte
	register   chan *Client
	unregister chan *Client
	log        *logrus.Logger

	mu        sync.Mutex
	lastTheme []byte // replayed to clients that connect later
}

// NewHub initializes a new WS Hub instance
func NewHub(log *logrus.Logger) *Hub {
	return &Hub{
		broadcast:  make(chan []byte, 64),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		clients:    make(map[*Client]bool),
		log:        log,
	}
}

// Run starts the core dispatch loop for WebSocket events
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.clients[client] = true
			h.mu.Lock()
			last := h.lastTheme
			h.mu.Unlock()
			if last != nil {
				client.Send <- last
			}
			h.log.WithField("clients", len(h.clients)).Info("WebSocket client connected")
		case client := <-h.unregister:
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.Send)
				h.log.WithField("clients", len(h.clients)).Info("WebSocket client disconnected")
			}
		case message := <-h.broadcast:
			for client := range h.clients {
				select {
				case client.Send <- message:
				default:
					close(client.Send)
					delete(h.clients, client)
				}
			}
		}
	}
}

// Publish queues an event for every client. It never blocks; events are
// dropped with a warning when the queue is full.
func (h *Hub) Publish(event string, data interface{}) {
	payload, err := json.Marshal(Event{Event: event, Data: data})
	if err != nil {
		logger.LogError(h.log, "websocket", "Publish", event, nil, err)
		return
	}
	h.enqueue(event, payload)
}

// PublishStorageChange tells clients that the collection stored under key changed
func (h *Hub) PublishStorageChange(key string) {
	h.Publish(EventStorage, map[string]string{"key": key})
}

// ApplyTheme broadcasts the theme and keeps it for clients that connect later
func (h *Hub) ApplyTheme(t theme.Theme) {
	payload, err := json.Marshal(Event{
		Event: EventTheme,
		Data:  ThemeData{Colors: t, Variables: t.CSSVariables()},
	})
	if err != nil {
		logger.LogError(h.log, "websocket", "ApplyTheme", EventTheme, nil, err)
		return
	}

	h.mu.Lock()
	h.lastTheme = payload
	h.mu.Unlock()

	h.enqueue(EventTheme, payload)
}

func (h *Hub) enqueue(event string, payload []byte) {
	select {
	case h.broadcast <- payload:
	default:
		logger.LogWarn(h.log, "websocket", "Publish", event, "broadcast queue full, event dropped")
	}
}

// writePump handles writing messages from the Hub to the WebSocket connection
func (c *Client) writePump() {
	defer func() {
		_ = c.Conn.Close()
	}()
	for message := range c.Send {
		if err := c.Conn.WriteMessage(websocket.TextMessage, message); err != nil {
			return
		}
	}
	_ = c.Conn.WriteMessage(websocket.CloseMessage, []byte{})
}

// readPump pumps messages from the WebSocket connection to the hub
func (c *Client) readPump() {
	defer func() {
		c.Hub.unregister <- c
		_ = c.Conn.Close()
	}()
	for {
		// Clients never send anything meaningful; reading detects the close
		_, _, err := c.Conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				logger.LogWarn(c.Hub.log, "websocket", "readPump", c.Conn.RemoteAddr().String(), err.Error())
			}
			break
		}
	}
}

// ServeWs handles websocket requests from the peer
func ServeWs(hub *Hub, c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		logger.LogWarn(hub.log, "websocket", "ServeWs", c.ClientIP(), "upgrade failed: "+err.Error())
		return
	}
	client := &Client{Hub: hub, Conn: conn, Send: make(chan []byte, 256)}
	client.Hub.register <- client

	// Allow collection of memory referenced by the caller by doing all work in new goroutines
	go client.writePump()
	go client.readPump()
}
