package server

import (
	"encoding/json"
	"net/http"

	"github.com/civiceye/civiceye/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// Event is a state-change notification fanned out to connected clients. The
// type names on the wire are propertyCreated, reportCreated and
// taxNoticeCreated.
type Event map[string]interface{}

func PropertyCreatedEvent(property *models.Property) Event {
	return Event{"type": "propertyCreated", "property": property}
}

func ReportCreatedEvent(report *models.Report) Event {
	return Event{"type": "reportCreated", "report": report}
}

func TaxNoticeCreatedEvent(notice *models.TaxNotice) Event {
	return Event{"type": "taxNoticeCreated", "taxNotice": notice}
}

type client struct {
	id   uuid.UUID
	conn *websocket.Conn
	send chan []byte
}

// Hub fans events out to connected websocket clients. Delivery is best
// effort and at most once: a client whose send buffer is full is dropped,
// and nothing is queued for clients that are not connected.
type Hub struct {
	clients    map[*client]bool
	register   chan *client
	unregister chan *client
	broadcast  chan []byte
	log        zerolog.Logger
}

func NewHub(log zerolog.Logger) *Hub {
	return &Hub{
		clients:    make(map[*client]bool),
		register:   make(chan *client),
		unregister: make(chan *client),
		broadcast:  make(chan []byte, 256),
		log:        log,
	}
}

func (h *Hub) Run() {
	for {
		select {
		case c := <-h.register:
			h.clients[c] = true
			h.log.Debug().Str("client_id", c.id.String()).Msg("websocket client connected")
		case c := <-h.unregister:
			if _, ok := h.clients[c]; ok {
				delete(h.clients, c)
				close(c.send)
				h.log.Debug().Str("client_id", c.id.String()).Msg("websocket client disconnected")
			}
		case message := <-h.broadcast:
			for c := range h.clients {
				select {
				case c.send <- message:
				default:
					// Slow client; drop it rather than block the hub.
					delete(h.clients, c)
					close(c.send)
				}
			}
		}
	}
}

// Broadcast queues an event for delivery. It never blocks the caller: if the
// hub is saturated the event is dropped and logged.
func (h *Hub) Broadcast(event Event) {
	payload, err := json.Marshal(event)
	if err != nil {
		h.log.Error().Err(err).Msg("marshaling broadcast event")
		return
	}
	select {
	case h.broadcast <- payload:
	default:
		h.log.Warn().Msg("broadcast channel full, dropping event")
	}
}

func (c *client) writePump(h *Hub) {
	defer c.conn.Close()
	for message := range c.send {
		if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
			return
		}
	}
}

func (c *client) readPump(h *Hub) {
	defer func() {
		h.unregister <- c
		c.conn.Close()
	}()
	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (s *Server) handleWebSocket() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		conn, err := upgrader.Upgrade(ctx.Writer, ctx.Request, nil)
		if err != nil {
			s.Logger.Warn().Err(err).Msg("websocket upgrade failed")
			return
		}
		c := &client{
			id:   uuid.New(),
			conn: conn,
			send: make(chan []byte, 16),
		}
		s.Hub.register <- c
		go c.writePump(s.Hub)
		go c.readPump(s.Hub)
	}
}
