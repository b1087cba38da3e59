package engine

// Phase represents the coarse lifecycle stage of a game
type Phase string

const (
	PhaseWaiting    Phase = "waiting"
	PhaseInProgress Phase = "in_progress"
	PhaseFinished   Phase = "finished"

	// Game rule constants
	MaxWrongGuesses   = 7
	MinPlayersToStart = 2

	// Display name length bounds
	MinNameLength = 1
	MaxNameLength = 15
)

// GameStateView is the read-only projection of a game exposed to clients.
// Word is masked: unguessed positions are shown as '_'. Winner is empty
// unless the game ended on a completing guess.
type GameStateView struct {
	Word              string   `json:"word"`
	GuessedLetters    []string `json:"guessed_letters"`
	WrongGuesses      int      `json:"wrong_guesses"`
	CurrentPlayerName string   `json:"current_player_name"`
	GameOver          bool     `json:"game_over"`
	Winner            string   `json:"winner,omitempty"`
	Category          string   `json:"category"`
}

// LobbyStatus summarizes a lobby for the pre-game waiting screen
type LobbyStatus struct {
	PlayerCount  int      `json:"player_count"`
	Players      []string `json:"players"`
	ReadyToStart bool     `json:"ready_to_start"`
	GameStarted  bool     `json:"game_started"`
}
