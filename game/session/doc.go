// Package session provides lobby registration for multiplayer hangman.
//
// The session package implements:
//   - Thread-safe lobby storage and retrieval by lobby code
//   - Collision-free 6-character lobby code generation
//   - Player membership tracking (one lobby per player at a time)
//   - Optional expiry of idle lobbies
//
// Core Types:
//
// Manager is the process-wide registry mapping lobby codes to games. It is
// the single place where concurrent lobby creation and lookup are
// serialized; the per-game lock inside engine.Game covers everything that
// happens after a lookup.
//
// Lobby Codes:
//
// Lobbies use 6-character codes drawn from [A-Z0-9], generated with
// cryptographic randomness. Generation explicitly retries until a code not
// currently in use is produced, so two concurrent creations can never be
// issued the same code. Lookups are case-insensitive.
//
// Usage:
//
//	manager := session.NewManager()
//
//	code, game, err := manager.Create(hostID, "Alice")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	game, err = manager.Get(code)
//	err = manager.Join(code, playerID, "Bob")
package session
