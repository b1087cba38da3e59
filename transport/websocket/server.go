package websocket

import (
	"log"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/wordgrid/hangman-server/api"
)

const (
	// Time allowed to write a response to the peer.
	writeWait = 10 * time.Second

	// Maximum message size allowed from peer.
	maxMessageSize = 64 * 1024
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		// The protocol carries no credentials; origin checks add nothing
		return true
	},
}

// Server serves the lobby protocol over WebSocket connections
type Server struct {
	dispatcher *api.Dispatcher
}

// NewServer creates a WebSocket transport backed by the dispatcher
func NewServer(dispatcher *api.Dispatcher) *Server {
	return &Server{dispatcher: dispatcher}
}

// ServeHTTP upgrades the request and runs the per-connection loop
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("WebSocket upgrade failed: %v", err)
		return
	}
	defer conn.Close()

	playerID := uuid.NewString()
	log.Printf("New WebSocket connection from %s (player %s)", conn.RemoteAddr(), playerID)

	conn.SetReadLimit(maxMessageSize)

	for {
		messageType, data, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("WebSocket error: %v", err)
			}
			break
		}
		if messageType != websocket.TextMessage {
			continue
		}

		response := s.dispatcher.Dispatch(r.Context(), playerID, data)

		conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := conn.WriteMessage(websocket.TextMessage, response); err != nil {
			log.Printf("WebSocket write error: %v", err)
			break
		}
	}

	log.Printf("WebSocket connection from %s closed", conn.RemoteAddr())
}
