// Package service defines the game service layer for multiplayer hangman.
//
// The service package provides:
//   - The GameService interface consumed by every transport
//   - Orchestration between the lobby registry and the word bank
//   - The small result types returned to the request dispatcher
//
// Architecture:
//
// GameService is the only entry point transports use; it hides the lobby
// registry and word bank behind the LobbyManager and WordBank interfaces
// declared here, which keeps transports testable with lightweight mocks.
// Locking lives below this layer: the registry guards its code map and
// each game guards its own state, so service methods hold no locks of
// their own.
package service
