package api

import "github.com/wordgrid/hangman-server/game/engine"

// Action names accepted by the dispatcher
const (
	ActionCreateLobby      = "create_lobby"
	ActionJoinLobby        = "join_lobby"
	ActionCheckLobbyStatus = "check_lobby_status"
	ActionStartGame        = "start_game"
	ActionSetCategory      = "set_category"
	ActionGuess            = "guess"
	ActionGetGameState     = "get_game_state"
	ActionListCategories   = "list_categories"
)

// Response status values
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// Request is the single message shape clients send. Which fields are
// required depends on Action; the field names are the wire contract.
type Request struct {
	Action    string `json:"action"`
	Name      string `json:"name,omitempty"`
	LobbyCode string `json:"lobby_code,omitempty"`
	Category  string `json:"category,omitempty"`
	Letter    string `json:"letter,omitempty"`
}

// ErrorResponse is returned for every failed request
type ErrorResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// AckResponse acknowledges an action with no payload
type AckResponse struct {
	Status string `json:"status"`
}

// LobbyResponse is returned by create_lobby and join_lobby
type LobbyResponse struct {
	Status    string `json:"status"`
	LobbyCode string `json:"lobby_code"`
}

// LobbyStatusResponse is returned by check_lobby_status
type LobbyStatusResponse struct {
	Status       string   `json:"status"`
	PlayerCount  int      `json:"player_count"`
	Players      []string `json:"players"`
	ReadyToStart bool     `json:"ready_to_start"`
	GameStarted  bool     `json:"game_started"`
}

// GameStateResponse is returned by guess and get_game_state
type GameStateResponse struct {
	Status    string                `json:"status"`
	GameState *engine.GameStateView `json:"game_state"`
}

// CategoriesResponse is returned by list_categories
type CategoriesResponse struct {
	Status     string   `json:"status"`
	Categories []string `json:"categories"`
}
