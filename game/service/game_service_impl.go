package service

import (
	"context"
	"strings"

	"github.com/wordgrid/hangman-server/game/engine"
)

// gameServiceImpl implements the GameService interface
type gameServiceImpl struct {
	lobbies LobbyManager
	words   WordBank
}

// NewGameService creates a new game service instance
func NewGameService(lobbies LobbyManager, words WordBank) GameService {
	return &gameServiceImpl{
		lobbies: lobbies,
		words:   words,
	}
}

// CreateLobby creates a new lobby with the requesting player as host
func (s *gameServiceImpl) CreateLobby(ctx context.Context, playerID, name string) (*LobbyInfo, error) {
	code, _, err := s.lobbies.Create(playerID, name)
	if err != nil {
		return nil, err
	}
	return &LobbyInfo{LobbyCode: code}, nil
}

// JoinLobby adds the requesting player to an existing lobby
func (s *gameServiceImpl) JoinLobby(ctx context.Context, playerID, code, name string) (*LobbyInfo, error) {
	if _, err := s.lobbies.Join(code, playerID, name); err != nil {
		return nil, err
	}
	return &LobbyInfo{LobbyCode: strings.ToUpper(strings.TrimSpace(code))}, nil
}

// LobbyStatus reports the waiting-screen summary for a lobby
func (s *gameServiceImpl) LobbyStatus(ctx context.Context, code string) (*engine.LobbyStatus, error) {
	game, err := s.lobbies.Get(code)
	if err != nil {
		return nil, err
	}

	status := game.Status()
	return &status, nil
}

// StartGame verifies that the requesting player may start the game right
// now. The actual transition happens in SetCategory, once the host has
// picked a category; the split mirrors the two-step start flow of clients
// (start button first, category screen second).
func (s *gameServiceImpl) StartGame(ctx context.Context, playerID, code string) error {
	game, err := s.lobbies.Get(code)
	if err != nil {
		return err
	}
	return game.CanStart(playerID)
}

// SetCategory draws a word from the chosen category and moves the game
// into play. Subject to the same authorization as StartGame.
func (s *gameServiceImpl) SetCategory(ctx context.Context, playerID, code, category string) (*engine.GameStateView, error) {
	game, err := s.lobbies.Get(code)
	if err != nil {
		return nil, err
	}

	if err := game.CanStart(playerID); err != nil {
		return nil, err
	}

	word, err := s.words.WordFor(category)
	if err != nil {
		return nil, err
	}

	if err := game.Start(playerID, category, word); err != nil {
		return nil, err
	}

	view := game.Snapshot()
	return &view, nil
}

// Guess submits a letter guess for the requesting player
func (s *gameServiceImpl) Guess(ctx context.Context, playerID, code, letter string) (*engine.GameStateView, error) {
	game, err := s.lobbies.Get(code)
	if err != nil {
		return nil, err
	}

	view, _, err := game.Guess(playerID, strings.ToUpper(strings.TrimSpace(letter)))
	if err != nil {
		return nil, err
	}
	return &view, nil
}

// GameState returns the current view of a lobby's game
func (s *gameServiceImpl) GameState(ctx context.Context, code string) (*engine.GameStateView, error) {
	game, err := s.lobbies.Get(code)
	if err != nil {
		return nil, err
	}

	view := game.Snapshot()
	return &view, nil
}

// ListCategories returns the available word categories
func (s *gameServiceImpl) ListCategories(ctx context.Context) ([]string, error) {
	return s.words.Categories(), nil
}
