package engine

import (
	"sort"
	"sync"
	"time"
	"unicode"
)

// Game holds the authoritative state of one hangman lobby. The zero value
// is not usable; construct with NewGame.
type Game struct {
	mu sync.Mutex

	host    string
	players []string          // join order doubles as turn order
	names   map[string]string // player ID -> display name

	phase    Phase
	category string
	word     string

	guessed      map[rune]bool
	wrongGuesses int
	turnIndex    int
	winner       string

	createdAt      time.Time
	lastAccessedAt time.Time
}

// NewGame creates a new game in the waiting phase with the host as the
// first (and only) player.
func NewGame(hostID, hostName string) (*Game, error) {
	if !validName(hostName) {
		return nil, ErrInvalidName
	}

	now := time.Now()
	return &Game{
		host:           hostID,
		players:        []string{hostID},
		names:          map[string]string{hostID: hostName},
		phase:          PhaseWaiting,
		guessed:        make(map[rune]bool),
		createdAt:      now,
		lastAccessedAt: now,
	}, nil
}

// AddPlayer appends a player to the roster. Joining is only possible while
// the game is waiting; the roster (and therefore the turn order) is fixed
// once the game starts.
func (g *Game) AddPlayer(id, name string) error {
	if !validName(name) {
		return ErrInvalidName
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if g.phase != PhaseWaiting {
		return ErrAlreadyStarted
	}
	if _, exists := g.names[id]; exists {
		return ErrAlreadyJoined
	}

	g.players = append(g.players, id)
	g.names[id] = name
	g.touch()
	return nil
}

// ReadyToStart reports whether enough players have joined
func (g *Game) ReadyToStart() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.players) >= MinPlayersToStart
}

// HostID returns the identifier of the player that created the lobby
func (g *Game) HostID() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.host
}

// CanStart checks whether playerID is allowed to start the game right now
// without actually starting it. It mirrors the validation Start performs.
func (g *Game) CanStart(playerID string) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.startableBy(playerID)
}

// Start transitions the game into play with the given category and target
// word. Only the host may start, only from the waiting phase, and only once
// at least MinPlayersToStart players have joined. The word must already be
// uppercase letters only; it is drawn by the caller from the word bank.
func (g *Game) Start(playerID, category, word string) error {
	if !validWord(word) {
		return ErrInvalidWord
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if err := g.startableBy(playerID); err != nil {
		return err
	}

	g.category = category
	g.word = word
	g.phase = PhaseInProgress
	g.turnIndex = 0
	g.touch()
	return nil
}

// startableBy reports why playerID may not start the game, or nil.
// Caller must hold g.mu.
func (g *Game) startableBy(playerID string) error {
	if g.phase != PhaseWaiting {
		return ErrAlreadyStarted
	}
	if playerID != g.host {
		return ErrNotHost
	}
	if len(g.players) < MinPlayersToStart {
		return ErrNotEnoughPlayers
	}
	return nil
}

// Guess submits a letter for the player whose turn it is. The turn advances
// exactly once per accepted guess, correct or not. A rejected guess
// (wrong turn, wrong phase) leaves all state unchanged.
//
// The returned view is computed under the same lock as the mutation, so it
// reflects exactly the state this guess produced.
func (g *Game) Guess(playerID, letter string) (GameStateView, bool, error) {
	if len(letter) != 1 || letter[0] < 'A' || letter[0] > 'Z' {
		return GameStateView{}, false, ErrInvalidLetter
	}
	r := rune(letter[0])

	g.mu.Lock()
	defer g.mu.Unlock()

	switch g.phase {
	case PhaseWaiting:
		return GameStateView{}, false, ErrNotStarted
	case PhaseFinished:
		return GameStateView{}, false, ErrAlreadyFinished
	}
	if g.players[g.turnIndex] != playerID {
		return GameStateView{}, false, ErrNotYourTurn
	}

	g.guessed[r] = true
	correct := containsRune(g.word, r)
	if !correct {
		g.wrongGuesses++
		if g.wrongGuesses > MaxWrongGuesses {
			g.wrongGuesses = MaxWrongGuesses
		}
	}

	// Advance exactly once per guess, regardless of correctness
	g.turnIndex = (g.turnIndex + 1) % len(g.players)

	if g.wordComplete() {
		g.phase = PhaseFinished
		g.winner = g.names[playerID]
	} else if g.wrongGuesses >= MaxWrongGuesses {
		g.phase = PhaseFinished
	}

	g.touch()
	return g.snapshotLocked(), correct, nil
}

// Snapshot returns the current read-only view of the game. Safe in any phase.
func (g *Game) Snapshot() GameStateView {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.touch()
	return g.snapshotLocked()
}

// Status summarizes the lobby for the waiting screen
func (g *Game) Status() LobbyStatus {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.touch()

	players := make([]string, 0, len(g.players))
	for _, id := range g.players {
		players = append(players, g.names[id])
	}

	return LobbyStatus{
		PlayerCount:  len(g.players),
		Players:      players,
		ReadyToStart: len(g.players) >= MinPlayersToStart,
		GameStarted:  g.phase != PhaseWaiting,
	}
}

// LastAccessedAt returns the time of the most recent operation on the game
func (g *Game) LastAccessedAt() time.Time {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.lastAccessedAt
}

// CreatedAt returns when the lobby was created
func (g *Game) CreatedAt() time.Time {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.createdAt
}

// snapshotLocked builds the client-facing view. Caller must hold g.mu.
func (g *Game) snapshotLocked() GameStateView {
	masked := make([]rune, 0, len(g.word))
	for _, r := range g.word {
		if g.guessed[r] {
			masked = append(masked, r)
		} else {
			masked = append(masked, '_')
		}
	}

	letters := make([]string, 0, len(g.guessed))
	for r := range g.guessed {
		letters = append(letters, string(r))
	}
	// Sorted so repeated polls of an unchanged game compare equal
	sort.Strings(letters)

	current := ""
	if len(g.players) > 0 {
		current = g.names[g.players[g.turnIndex]]
	}

	return GameStateView{
		Word:              string(masked),
		GuessedLetters:    letters,
		WrongGuesses:      g.wrongGuesses,
		CurrentPlayerName: current,
		GameOver:          g.phase == PhaseFinished,
		Winner:            g.winner,
		Category:          g.category,
	}
}

// wordComplete reports whether every letter of the word has been guessed.
// Caller must hold g.mu.
func (g *Game) wordComplete() bool {
	for _, r := range g.word {
		if !g.guessed[r] {
			return false
		}
	}
	return true
}

// touch updates the last-accessed timestamp. Caller must hold g.mu.
func (g *Game) touch() {
	g.lastAccessedAt = time.Now()
}

func containsRune(s string, r rune) bool {
	for _, c := range s {
		if c == r {
			return true
		}
	}
	return false
}

func validName(name string) bool {
	if len(name) < MinNameLength || len(name) > MaxNameLength {
		return false
	}
	for _, r := range name {
		if !unicode.IsPrint(r) {
			return false
		}
	}
	return true
}

func validWord(word string) bool {
	if word == "" {
		return false
	}
	for _, r := range word {
		if r < 'A' || r > 'Z' {
			return false
		}
	}
	return true
}
