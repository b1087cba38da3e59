package session

import (
	"crypto/rand"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/wordgrid/hangman-server/game/engine"
)

var (
	ErrLobbyNotFound  = errors.New("invalid lobby code")
	ErrAlreadyInLobby = errors.New("player is already in a lobby")
)

const (
	codeLength  = 6
	codeCharset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
)

// Manager is the process-wide registry of active lobbies
type Manager struct {
	lobbies map[string]*engine.Game
	members map[string]string // player ID -> lobby code
	mu      sync.RWMutex
}

// NewManager creates an empty lobby registry
func NewManager() *Manager {
	return &Manager{
		lobbies: make(map[string]*engine.Game),
		members: make(map[string]string),
	}
}

// Create creates a new lobby with hostID as its host and first player and
// returns the freshly generated lobby code.
func (m *Manager) Create(hostID, hostName string) (string, *engine.Game, error) {
	game, err := engine.NewGame(hostID, hostName)
	if err != nil {
		return "", nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, joined := m.members[hostID]; joined {
		return "", nil, ErrAlreadyInLobby
	}

	// Retry until the generated code is not in use. Collisions are rare
	// with 36^6 codes but must never be silently tolerated.
	var code string
	for {
		code, err = generateCode()
		if err != nil {
			return "", nil, fmt.Errorf("failed to generate lobby code: %w", err)
		}
		if _, exists := m.lobbies[code]; !exists {
			break
		}
	}

	m.lobbies[code] = game
	m.members[hostID] = code
	return code, game, nil
}

// Get retrieves the lobby for a code. Lookups are case-insensitive.
func (m *Manager) Get(code string) (*engine.Game, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	game, exists := m.lobbies[normalizeCode(code)]
	if !exists {
		return nil, ErrLobbyNotFound
	}
	return game, nil
}

// Join adds a player to the lobby identified by code. A player can be a
// member of at most one lobby at a time.
func (m *Manager) Join(code string, playerID, name string) (*engine.Game, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	game, exists := m.lobbies[normalizeCode(code)]
	if !exists {
		return nil, ErrLobbyNotFound
	}
	if _, joined := m.members[playerID]; joined {
		return nil, ErrAlreadyInLobby
	}

	if err := game.AddPlayer(playerID, name); err != nil {
		return nil, err
	}

	m.members[playerID] = normalizeCode(code)
	return game, nil
}

// List returns the codes of all active lobbies
func (m *Manager) List() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	codes := make([]string, 0, len(m.lobbies))
	for code := range m.lobbies {
		codes = append(codes, code)
	}
	return codes
}

// Count returns the number of active lobbies
func (m *Manager) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.lobbies)
}

// CleanupExpired removes lobbies that have not been touched within maxAge
// and releases their players' memberships. It returns the number of
// lobbies removed. Codes of removed lobbies become available for reuse.
func (m *Manager) CleanupExpired(maxAge time.Duration) int {
	m.mu.Lock()
	defer m.mu.Unlock()

	cutoff := time.Now().Add(-maxAge)
	removed := 0

	for code, game := range m.lobbies {
		if game.LastAccessedAt().Before(cutoff) {
			delete(m.lobbies, code)
			removed++
		}
	}

	if removed > 0 {
		for playerID, code := range m.members {
			if _, exists := m.lobbies[code]; !exists {
				delete(m.members, playerID)
			}
		}
	}

	return removed
}

// generateCode produces a random 6-character code from [A-Z0-9]
func generateCode() (string, error) {
	buf := make([]byte, codeLength)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}

	code := make([]byte, codeLength)
	for i, b := range buf {
		code[i] = codeCharset[int(b)%len(codeCharset)]
	}
	return string(code), nil
}

func normalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
