package session

import (
	"strings"
	"sync"
	"testing"
	"time"
)

func TestManager_Create(t *testing.T) {
	manager := NewManager()

	code, game, err := manager.Create("host-1", "Alice")
	if err != nil {
		t.Fatalf("Failed to create lobby: %v", err)
	}

	if len(code) != 6 {
		t.Errorf("Expected 6-character lobby code, got %q", code)
	}
	for _, r := range code {
		if !strings.ContainsRune("ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789", r) {
			t.Errorf("Lobby code %q contains invalid character %q", code, r)
		}
	}

	status := game.Status()
	if status.PlayerCount != 1 {
		t.Errorf("Expected 1 player in a fresh lobby, got %d", status.PlayerCount)
	}
	if game.HostID() != "host-1" {
		t.Errorf("Expected creator to be the host, got %q", game.HostID())
	}
	if manager.Count() != 1 {
		t.Errorf("Expected 1 active lobby, got %d", manager.Count())
	}
}

func TestManager_Create_HostAlreadyInLobby(t *testing.T) {
	manager := NewManager()

	if _, _, err := manager.Create("host-1", "Alice"); err != nil {
		t.Fatalf("Failed to create first lobby: %v", err)
	}
	if _, _, err := manager.Create("host-1", "Alice"); err != ErrAlreadyInLobby {
		t.Errorf("Expected ErrAlreadyInLobby, got %v", err)
	}
}

func TestManager_Get(t *testing.T) {
	manager := NewManager()

	code, created, err := manager.Create("host-1", "Alice")
	if err != nil {
		t.Fatalf("Failed to create lobby: %v", err)
	}

	game, err := manager.Get(code)
	if err != nil {
		t.Fatalf("Failed to get lobby: %v", err)
	}
	if game != created {
		t.Error("Expected Get to return the created game")
	}

	// Lookups are case-insensitive
	if _, err := manager.Get(strings.ToLower(code)); err != nil {
		t.Errorf("Expected lowercase lookup to succeed, got %v", err)
	}
}

func TestManager_Get_UnknownCode(t *testing.T) {
	manager := NewManager()

	if _, err := manager.Get("NOPE42"); err != ErrLobbyNotFound {
		t.Errorf("Expected ErrLobbyNotFound, got %v", err)
	}
}

func TestManager_Join(t *testing.T) {
	manager := NewManager()

	code, game, err := manager.Create("host-1", "Alice")
	if err != nil {
		t.Fatalf("Failed to create lobby: %v", err)
	}

	joined, err := manager.Join(code, "player-2", "Bob")
	if err != nil {
		t.Fatalf("Failed to join lobby: %v", err)
	}
	if joined != game {
		t.Error("Expected Join to return the joined game")
	}
	if game.Status().PlayerCount != 2 {
		t.Errorf("Expected 2 players after join, got %d", game.Status().PlayerCount)
	}
}

func TestManager_Join_Errors(t *testing.T) {
	manager := NewManager()
	code, _, err := manager.Create("host-1", "Alice")
	if err != nil {
		t.Fatalf("Failed to create lobby: %v", err)
	}

	t.Run("unknown code", func(t *testing.T) {
		if _, err := manager.Join("ZZZZZZ", "player-2", "Bob"); err != ErrLobbyNotFound {
			t.Errorf("Expected ErrLobbyNotFound, got %v", err)
		}
	})

	t.Run("already in a lobby", func(t *testing.T) {
		if _, err := manager.Join(code, "player-2", "Bob"); err != nil {
			t.Fatalf("First join failed: %v", err)
		}
		if _, err := manager.Join(code, "player-2", "Bob"); err != ErrAlreadyInLobby {
			t.Errorf("Expected ErrAlreadyInLobby, got %v", err)
		}
	})
}

func TestManager_ConcurrentCreate_UniqueCodes(t *testing.T) {
	manager := NewManager()

	const n = 100
	codes := make(chan string, n)
	var wg sync.WaitGroup

	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			code, _, err := manager.Create(
				"host-"+string(rune('A'+i%26))+string(rune('0'+i/26)), "Player")
			if err != nil {
				t.Errorf("Concurrent create failed: %v", err)
				return
			}
			codes <- code
		}(i)
	}
	wg.Wait()
	close(codes)

	seen := make(map[string]bool)
	for code := range codes {
		if seen[code] {
			t.Fatalf("Duplicate lobby code issued: %q", code)
		}
		seen[code] = true
	}
	if len(seen) != n {
		t.Errorf("Expected %d unique codes, got %d", n, len(seen))
	}
}

func TestManager_CleanupExpired(t *testing.T) {
	manager := NewManager()

	code, _, err := manager.Create("host-1", "Alice")
	if err != nil {
		t.Fatalf("Failed to create lobby: %v", err)
	}

	// Nothing is stale yet
	if removed := manager.CleanupExpired(time.Hour); removed != 0 {
		t.Errorf("Expected no lobbies removed, got %d", removed)
	}

	// A zero max age makes everything stale
	time.Sleep(2 * time.Millisecond)
	if removed := manager.CleanupExpired(time.Millisecond); removed != 1 {
		t.Errorf("Expected 1 lobby removed, got %d", removed)
	}
	if _, err := manager.Get(code); err != ErrLobbyNotFound {
		t.Errorf("Expected removed lobby to be gone, got %v", err)
	}

	// Membership is released with the lobby
	if _, _, err := manager.Create("host-1", "Alice"); err != nil {
		t.Errorf("Expected host to be free to create again, got %v", err)
	}
}

func TestGenerateCode_Shape(t *testing.T) {
	for i := 0; i < 200; i++ {
		code, err := generateCode()
		if err != nil {
			t.Fatalf("generateCode failed: %v", err)
		}
		if len(code) != 6 {
			t.Fatalf("Expected length 6, got %q", code)
		}
		for _, r := range code {
			if !strings.ContainsRune(codeCharset, r) {
				t.Fatalf("Code %q contains invalid character %q", code, r)
			}
		}
	}
}
