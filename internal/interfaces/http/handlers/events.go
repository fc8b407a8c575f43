package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
	"github.com/your-org/storefront-client/internal/domain/cart"
	"github.com/your-org/storefront-client/internal/domain/session"
	"github.com/your-org/storefront-client/internal/store"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = (pongWait * 9) / 10
)

// EventsHandler streams store changes to views over a websocket
type EventsHandler struct {
	store    *store.Store
	logger   *logrus.Logger
	upgrader websocket.Upgrader
}

// NewEventsHandler creates a new events handler. allowOrigin decides which
// browser origins may connect.
func NewEventsHandler(st *store.Store, logger *logrus.Logger, allowOrigin func(origin string) bool) *EventsHandler {
	return &EventsHandler{
		store:  st,
		logger: logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				origin := r.Header.Get("Origin")
				return origin == "" || allowOrigin == nil || allowOrigin(origin)
			},
		},
	}
}

// EventMessage is one pushed change. Views refetch what they render when
// the kind concerns them.
type EventMessage struct {
	Kind    store.EventKind `json:"kind"`
	Version uint64          `json:"version"`
	Session session.Session `json:"session"`
	Gate    session.Gate    `json:"gate"`
	Cart    cart.Totals     `json:"cart"`
}

func newEventMessage(kind store.EventKind, snap store.Snapshot) EventMessage {
	return EventMessage{
		Kind:    kind,
		Version: snap.Version,
		Session: snap.Session,
		Gate:    snap.Gate,
		Cart:    snap.Cart.Totals(),
	}
}

// Stream handles GET /events. The current state is sent first, followed by
// one message per committed change; a slow client only skips intermediate
// versions.
func (h *EventsHandler) Stream(c *gin.Context) {
	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.WithError(err).Warn("Websocket upgrade failed")
		return
	}
	defer conn.Close()

	events, unsubscribe := h.store.Subscribe()
	defer unsubscribe()

	// The reader only watches for the client going away.
	closed := make(chan struct{})
	go func() {
		defer close(closed)
		conn.SetReadLimit(512)
		_ = conn.SetReadDeadline(time.Now().Add(pongWait))
		conn.SetPongHandler(func(string) error {
			return conn.SetReadDeadline(time.Now().Add(pongWait))
		})
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	if err := h.write(conn, newEventMessage(store.EventSession, h.store.Snapshot())); err != nil {
		return
	}

	for {
		select {
		case ev := <-events:
			if err := h.write(conn, newEventMessage(ev.Kind, ev.Snapshot)); err != nil {
				h.logger.WithError(err).Debug("Event client write failed")
				return
			}
		case <-ticker.C:
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		case <-closed:
			return
		case <-c.Request.Context().Done():
			return
		}
	}
}

func (h *EventsHandler) write(conn *websocket.Conn, msg EventMessage) error {
	_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
	return conn.WriteJSON(msg)
}
