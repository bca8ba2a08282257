// Package server runs the bubble field headless and streams snapshots to
// browser overlays over websockets.
package server

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/olivier-w/driftwall/internal/sim"
)

const (
	tickHz         = 60
	clientBuffer   = 8
	maxClients     = 100
	welcomeTimeout = 5 * time.Second
)

// Server owns a Field and a client set. The field is confined to the Run
// goroutine; the client map is the only shared state and sits behind a
// mutex.
type Server struct {
	field    *sim.Field
	upgrader websocket.Upgrader

	mu      sync.Mutex
	clients map[*websocket.Conn]chan []byte

	quit chan struct{}
	done chan struct{}
}

// New sizes the simulated container; browsers scale the coordinates to
// their own viewport.
func New(width, height float64, cfg sim.Config) *Server {
	return &Server{
		field: sim.New(width, height, cfg),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
		clients: make(map[*websocket.Conn]chan []byte),
		quit:    make(chan struct{}),
		done:    make(chan struct{}),
	}
}

// Run drives the simulation until Close. Frames tick at 60Hz; a wire frame
// goes out only when the field publishes a fresh snapshot.
func (s *Server) Run() {
	defer close(s.done)
	ticker := time.NewTicker(time.Second / tickHz)
	defer ticker.Stop()

	lastGen := s.field.Generation()
	for {
		select {
		case <-s.quit:
			s.field.Close()
			return
		case <-ticker.C:
			s.field.Frame()
			if gen := s.field.Generation(); gen != lastGen {
				lastGen = gen
				s.broadcast()
			}
		}
	}
}

func (s *Server) broadcast() {
	frame := frameFromSnapshots(s.field.Tick(), s.field.Snapshots())
	data, err := json.Marshal(frame)
	if err != nil {
		log.Printf("marshal frame: %v", err)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for conn, ch := range s.clients {
		select {
		case ch <- data:
		default:
			// Slow consumer: drop the frame, never the connection.
			log.Printf("client %s too slow, dropping frame", conn.RemoteAddr())
		}
	}
}

// ServeHTTP upgrades a websocket client, greets it, and pumps frames until
// it disconnects.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("upgrade failed: %v", err)
		return
	}

	width, height := s.field.Size()
	hello, err := json.Marshal(welcome{Type: "welcome", TickHz: tickHz, Width: width, Height: height})
	if err != nil {
		conn.Close()
		return
	}
	conn.SetWriteDeadline(time.Now().Add(welcomeTimeout))
	if err := conn.WriteMessage(websocket.TextMessage, hello); err != nil {
		conn.Close()
		return
	}
	conn.SetWriteDeadline(time.Time{})

	ch := make(chan []byte, clientBuffer)
	s.mu.Lock()
	if len(s.clients) >= maxClients {
		s.mu.Unlock()
		log.Print("max clients reached")
		conn.Close()
		return
	}
	s.clients[conn] = ch
	s.mu.Unlock()
	log.Printf("client connected: %s", conn.RemoteAddr())

	go writePump(conn, ch)

	// Read loop exists only to notice the close.
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}

	s.mu.Lock()
	delete(s.clients, conn)
	s.mu.Unlock()
	close(ch)
	conn.Close()
	log.Printf("client disconnected: %s", conn.RemoteAddr())
}

func writePump(conn *websocket.Conn, ch <-chan []byte) {
	for data := range ch {
		if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
			log.Printf("write failed: %v", err)
			return
		}
	}
}

// Close stops the simulation loop and hangs up every client.
func (s *Server) Close() {
	close(s.quit)
	<-s.done

	s.mu.Lock()
	defer s.mu.Unlock()
	for conn := range s.clients {
		conn.Close()
	}
}
