// Command hangman-server starts the multiplayer hangman lobby server.
//
// It supports two modes:
//  1. "serve" (default) – runs the TCP lobby server, plus an HTTP listener
//     exposing the same protocol over WebSocket at /ws and an /mcp endpoint
//  2. "mcp" – runs an MCP stdio server; it proxies to an existing lobby
//     server or spins up an internal one if none is given
//
// Flags control host/ports, the word list directory, lobby expiry, and
// debug logging.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	mcpserver "github.com/mark3labs/mcp-go/server"
	"github.com/urfave/cli/v3"
	"github.com/wordgrid/hangman-server/api"
	"github.com/wordgrid/hangman-server/game/service"
	"github.com/wordgrid/hangman-server/game/session"
	"github.com/wordgrid/hangman-server/game/words"
	"github.com/wordgrid/hangman-server/transport/mcp"
	"github.com/wordgrid/hangman-server/transport/tcp"
	"github.com/wordgrid/hangman-server/transport/websocket"
)

// Version information
const (
	Version = "1.0.0"
	AppName = "Multiplayer Hangman Server"
)

func main() {
	// Load .env file if it exists (ignore error if not found)
	if err := godotenv.Load(); err != nil {
		if !os.IsNotExist(err) {
			log.Printf("Warning: Error loading .env file: %v", err)
		}
	} else {
		log.Println("Loaded environment variables from .env file")
	}

	cmd := &cli.Command{
		Name:    "hangman-server",
		Usage:   AppName,
		Version: Version,
		Flags:   serveFlags(),
		Action:  runServe,
		Commands: []*cli.Command{
			{
				Name:   "serve",
				Usage:  "Run the TCP lobby server with WebSocket and MCP HTTP endpoints (default)",
				Flags:  serveFlags(),
				Action: runServe,
			},
			{
				Name:  "mcp",
				Usage: "Run an MCP stdio server proxying to a lobby server",
				Flags: append([]cli.Flag{
					&cli.StringFlag{
						Name:    "server-addr",
						Usage:   "Address of an existing lobby server; empty starts an internal one",
						Sources: cli.EnvVars("HANGMAN_SERVER_ADDR"),
					},
				}, serveFlags()...),
				Action: runStdioMCP,
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

// serveFlags returns a fresh flag set; the default action and the serve
// command each need their own copy.
func serveFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "host",
			Value:   "localhost",
			Usage:   "Host to bind both listeners to",
			Sources: cli.EnvVars("HANGMAN_HOST"),
		},
		&cli.IntFlag{
			Name:    "port",
			Value:   5555,
			Usage:   "TCP lobby server port",
			Sources: cli.EnvVars("HANGMAN_PORT"),
		},
		&cli.IntFlag{
			Name:    "http-port",
			Value:   8080,
			Usage:   "HTTP port for WebSocket and MCP endpoints",
			Sources: cli.EnvVars("HANGMAN_HTTP_PORT"),
		},
		&cli.StringFlag{
			Name:    "words-dir",
			Usage:   "Directory of word list JSON files layered over the built-in categories",
			Sources: cli.EnvVars("WORDS_DIR"),
		},
		&cli.DurationFlag{
			Name:    "lobby-ttl",
			Usage:   "Remove lobbies idle for longer than this (0 keeps them forever)",
			Sources: cli.EnvVars("HANGMAN_LOBBY_TTL"),
		},
		&cli.BoolFlag{
			Name:  "debug",
			Usage: "Enable debug logging",
		},
	}
}

// initializeServices wires the word bank, lobby manager, and game service.
// It also starts a background cleanup routine when a lobby TTL is set.
func initializeServices(ctx context.Context, cmd *cli.Command) (service.GameService, error) {
	var bank *words.Bank
	var err error

	if dir := cmd.String("words-dir"); dir != "" {
		bank, err = words.NewBankFromDir(dir)
		if err != nil {
			return nil, fmt.Errorf("failed to load word lists: %w", err)
		}
		log.Printf("Loaded word lists from %s (%d categories)", dir, len(bank.Categories()))
	} else {
		bank = words.NewBank()
	}

	manager := session.NewManager()

	if ttl := cmd.Duration("lobby-ttl"); ttl > 0 {
		go lobbyCleanupRoutine(ctx, manager, ttl)
	}

	return service.NewGameService(manager, bank), nil
}

// lobbyCleanupRoutine periodically removes lobbies that have not been
// accessed within the retention window.
func lobbyCleanupRoutine(ctx context.Context, manager *session.Manager, ttl time.Duration) {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			removed := manager.CleanupExpired(ttl)
			if removed > 0 {
				log.Printf("Cleaned up %d expired lobbies", removed)
			}
		}
	}
}

// runServe starts the TCP lobby server and the HTTP listener, then blocks
// until a shutdown signal arrives.
func runServe(ctx context.Context, cmd *cli.Command) error {
	if cmd.Bool("debug") {
		log.SetFlags(log.LstdFlags | log.Lshortfile)
	} else {
		log.SetFlags(log.LstdFlags)
	}

	log.Printf("Starting %s v%s", AppName, Version)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	gameService, err := initializeServices(ctx, cmd)
	if err != nil {
		return err
	}
	dispatcher := api.NewDispatcher(gameService)

	// TCP lobby server
	tcpAddr := fmt.Sprintf("%s:%d", cmd.String("host"), cmd.Int("port"))
	tcpServer := tcp.NewServer(tcpAddr, dispatcher)
	if err := tcpServer.Start(); err != nil {
		return fmt.Errorf("failed to start lobby server: %w", err)
	}

	// HTTP listener: WebSocket transport, health check, and MCP endpoint
	httpAddr := fmt.Sprintf("%s:%d", cmd.String("host"), cmd.Int("http-port"))
	mcpClient := mcp.NewClient(tcpAddr)
	defer mcpClient.Close()

	router := mux.NewRouter()
	router.Handle("/ws", websocket.NewServer(dispatcher))
	router.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		fmt.Fprintln(w, "ok")
	}).Methods(http.MethodGet)
	router.HandleFunc("/mcp", func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		if err != nil {
			http.Error(w, "Failed to read request", http.StatusBadRequest)
			return
		}
		defer r.Body.Close()

		response := mcpClient.GetMCPServer().HandleMessage(r.Context(), body)

		w.Header().Set("Content-Type", "application/json")
		responseData, err := json.Marshal(response)
		if err != nil {
			http.Error(w, "Failed to marshal response", http.StatusInternalServerError)
			return
		}
		w.Write(responseData)
	}).Methods(http.MethodPost)

	httpServer := &http.Server{
		Addr:         httpAddr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Handle shutdown signals
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()

		log.Printf("Lobby server listening on %s", tcpServer.Addr())
		log.Printf("WebSocket: ws://%s/ws", httpAddr)
		log.Printf("MCP endpoint: http://%s/mcp", httpAddr)

		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("HTTP server failed: %v", err)
		}
	}()

	// Wait for shutdown signal
	sig := <-stop
	log.Printf("Received signal: %v. Shutting down...", sig)
	cancel()

	tcpServer.Stop()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Printf("HTTP server shutdown error: %v", err)
	}

	wg.Wait()
	log.Println("Server stopped")
	return nil
}

// runStdioMCP runs an MCP stdio server. It proxies to the lobby server
// named by --server-addr; without one it starts an internal lobby server
// on a random loopback port and targets that.
func runStdioMCP(ctx context.Context, cmd *cli.Command) error {
	// Stdout carries the MCP protocol; logs must go to stderr only
	log.SetOutput(os.Stderr)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	serverAddr := cmd.String("server-addr")
	if serverAddr == "" {
		log.Println("No lobby server given, starting internal server")

		gameService, err := initializeServices(ctx, cmd)
		if err != nil {
			return err
		}

		internal := tcp.NewServer("127.0.0.1:0", api.NewDispatcher(gameService))
		if err := internal.Start(); err != nil {
			return fmt.Errorf("failed to start internal lobby server: %w", err)
		}
		defer internal.Stop()

		serverAddr = internal.Addr().String()
		log.Printf("Internal lobby server listening on %s", serverAddr)
	}

	mcpClient := mcp.NewClient(serverAddr)
	defer mcpClient.Close()

	log.Printf("MCP stdio server ready (lobby server at %s)", serverAddr)

	if err := mcpserver.ServeStdio(mcpClient.GetMCPServer()); err != nil {
		return fmt.Errorf("MCP stdio server error: %w", err)
	}
	return nil
}
