package tcp

import (
	"bufio"
	"context"
	"log"
	"net"
	"sync"

	"github.com/google/uuid"
	"github.com/wordgrid/hangman-server/api"
)

// maxRequestSize bounds a single framed request line
const maxRequestSize = 64 * 1024

// Server accepts TCP connections and serves the request/response protocol
type Server struct {
	addr       string
	dispatcher *api.Dispatcher

	listener net.Listener
	ctx      context.Context
	cancel   context.CancelFunc
	wg       sync.WaitGroup

	mu    sync.Mutex
	conns map[net.Conn]struct{}
}

// NewServer creates a TCP server bound to addr once started
func NewServer(addr string, dispatcher *api.Dispatcher) *Server {
	return &Server{
		addr:       addr,
		dispatcher: dispatcher,
		conns:      make(map[net.Conn]struct{}),
	}
}

// Start binds the listener and begins accepting connections
func (s *Server) Start() error {
	ln, err := net.Listen("tcp", s.addr)
	if err != nil {
		return err
	}

	s.listener = ln
	s.ctx, s.cancel = context.WithCancel(context.Background())

	s.wg.Add(1)
	go s.acceptLoop()

	log.Printf("TCP server listening on %s", ln.Addr())
	return nil
}

// Addr returns the bound listener address; valid after Start
func (s *Server) Addr() net.Addr {
	return s.listener.Addr()
}

// Stop closes the listener and all live connections and waits for every
// connection handler to finish.
func (s *Server) Stop() {
	if s.cancel != nil {
		s.cancel()
	}
	if s.listener != nil {
		s.listener.Close()
	}

	s.mu.Lock()
	for conn := range s.conns {
		conn.Close()
	}
	s.mu.Unlock()

	s.wg.Wait()
	log.Printf("TCP server stopped")
}

func (s *Server) acceptLoop() {
	defer s.wg.Done()

	for {
		conn, err := s.listener.Accept()
		if err != nil {
			// Listener closed during shutdown
			select {
			case <-s.ctx.Done():
				return
			default:
			}
			log.Printf("Accept error: %v", err)
			return
		}

		s.track(conn)
		s.wg.Add(1)
		go s.handleConn(conn)
	}
}

// handleConn runs the per-connection request loop. The player identity is
// derived from the connection and lives exactly as long as it does.
func (s *Server) handleConn(conn net.Conn) {
	defer s.wg.Done()
	defer s.untrack(conn)
	defer conn.Close()

	playerID := uuid.NewString()
	log.Printf("New connection from %s (player %s)", conn.RemoteAddr(), playerID)

	scanner := bufio.NewScanner(conn)
	scanner.Buffer(make([]byte, 0, 4096), maxRequestSize)

	writer := bufio.NewWriter(conn)

	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}

		response := s.dispatcher.Dispatch(s.ctx, playerID, line)
		if _, err := writer.Write(append(response, '\n')); err != nil {
			log.Printf("Write error for %s: %v", conn.RemoteAddr(), err)
			return
		}
		if err := writer.Flush(); err != nil {
			log.Printf("Flush error for %s: %v", conn.RemoteAddr(), err)
			return
		}
	}

	if err := scanner.Err(); err != nil {
		log.Printf("Read error for %s: %v", conn.RemoteAddr(), err)
	}
	log.Printf("Connection from %s closed", conn.RemoteAddr())
}

func (s *Server) track(conn net.Conn) {
	s.mu.Lock()
	s.conns[conn] = struct{}{}
	s.mu.Unlock()
}

func (s *Server) untrack(conn net.Conn) {
	s.mu.Lock()
	delete(s.conns, conn)
	s.mu.Unlock()
}
