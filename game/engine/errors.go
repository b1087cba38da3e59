package engine

import "errors"

var (
	ErrNotYourTurn      = errors.New("not your turn")
	ErrAlreadyFinished  = errors.New("game is already finished")
	ErrNotStarted       = errors.New("game has not started yet")
	ErrAlreadyStarted   = errors.New("game already started")
	ErrNotHost          = errors.New("not authorized to start the game")
	ErrNotEnoughPlayers = errors.New("not enough players")
	ErrAlreadyJoined    = errors.New("player already joined this lobby")
	ErrInvalidName      = errors.New("name must be 1-15 printable characters")
	ErrInvalidLetter    = errors.New("letter must be a single character A-Z")
	ErrInvalidWord      = errors.New("word must consist of uppercase letters only")
)
