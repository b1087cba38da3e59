package service

import (
	"context"
	"time"

	"github.com/wordgrid/hangman-server/game/engine"
)

// GameService defines all lobby and game operations exposed to transports.
// playerID is the connection-derived identifier of the requesting client.
type GameService interface {
	// Lobby management
	CreateLobby(ctx context.Context, playerID, name string) (*LobbyInfo, error)
	JoinLobby(ctx context.Context, playerID, code, name string) (*LobbyInfo, error)
	LobbyStatus(ctx context.Context, code string) (*engine.LobbyStatus, error)

	// Game operations
	StartGame(ctx context.Context, playerID, code string) error
	SetCategory(ctx context.Context, playerID, code, category string) (*engine.GameStateView, error)
	Guess(ctx context.Context, playerID, code, letter string) (*engine.GameStateView, error)

	// Game state
	GameState(ctx context.Context, code string) (*engine.GameStateView, error)

	// Word bank
	ListCategories(ctx context.Context) ([]string, error)
}

// LobbyManager defines lobby registry operations
type LobbyManager interface {
	Create(hostID, hostName string) (string, *engine.Game, error)
	Get(code string) (*engine.Game, error)
	Join(code, playerID, name string) (*engine.Game, error)
	Count() int
	CleanupExpired(maxAge time.Duration) int
}

// WordBank supplies candidate words per category
type WordBank interface {
	WordFor(category string) (string, error)
	Categories() []string
}
