// Package engine provides the core game logic for multiplayer hangman.
//
// The engine package implements the per-lobby state machine including:
//   - Player roster and join-order turn rotation
//   - Letter guessing, wrong-guess counting, and win/loss detection
//   - Phase transitions (waiting -> in_progress -> finished)
//   - Masked-word snapshots safe to expose to clients
//
// Core Types:
//
// Game is the authoritative state for one lobby. All mutating and reading
// methods take the game's internal lock, so a single Game may be shared by
// any number of connection handlers. GameStateView is the read-only
// projection sent over the wire; it never contains unguessed letters in
// clear form.
//
// Concurrency:
//
// Two players guessing "simultaneously" are serialized by the game lock:
// the loser of the race observes ErrNotYourTurn because the first guess
// already advanced the turn. State is never partially updated.
//
// Usage:
//
//	game, err := engine.NewGame(hostID, "Alice")
//	if err != nil {
//		log.Fatal(err)
//	}
//	game.AddPlayer(otherID, "Bob")
//
//	if err := game.Start(hostID, "Fruits", "APPLE"); err != nil {
//		log.Fatal(err)
//	}
//
//	view, correct, err := game.Guess(hostID, "A")
package engine
