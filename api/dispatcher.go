package api

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/wordgrid/hangman-server/game/service"
)

// Dispatcher routes decoded requests to the game service
type Dispatcher struct {
	service service.GameService
}

// NewDispatcher creates a dispatcher backed by the given service
func NewDispatcher(gameService service.GameService) *Dispatcher {
	return &Dispatcher{service: gameService}
}

// Dispatch handles one raw request for the given player and returns the
// encoded response. It always returns well-formed JSON; protocol-level
// failures become error responses, never panics or dropped replies.
func (d *Dispatcher) Dispatch(ctx context.Context, playerID string, data []byte) []byte {
	var req Request
	if err := json.Unmarshal(data, &req); err != nil {
		return encode(errorResponse(fmt.Sprintf("malformed request: %v", err)))
	}

	result, err := d.route(ctx, playerID, &req)
	if err != nil {
		return encode(errorResponse(err.Error()))
	}
	return encode(result)
}

// route validates the request fields for the action and invokes the
// corresponding service operation.
func (d *Dispatcher) route(ctx context.Context, playerID string, req *Request) (interface{}, error) {
	switch req.Action {
	case ActionCreateLobby:
		if err := requireFields(req, fieldName); err != nil {
			return nil, err
		}
		info, err := d.service.CreateLobby(ctx, playerID, req.Name)
		if err != nil {
			return nil, err
		}
		return &LobbyResponse{Status: StatusSuccess, LobbyCode: info.LobbyCode}, nil

	case ActionJoinLobby:
		if err := requireFields(req, fieldLobbyCode, fieldName); err != nil {
			return nil, err
		}
		info, err := d.service.JoinLobby(ctx, playerID, req.LobbyCode, req.Name)
		if err != nil {
			return nil, err
		}
		return &LobbyResponse{Status: StatusSuccess, LobbyCode: info.LobbyCode}, nil

	case ActionCheckLobbyStatus:
		if err := requireFields(req, fieldLobbyCode); err != nil {
			return nil, err
		}
		status, err := d.service.LobbyStatus(ctx, req.LobbyCode)
		if err != nil {
			return nil, err
		}
		return &LobbyStatusResponse{
			Status:       StatusSuccess,
			PlayerCount:  status.PlayerCount,
			Players:      status.Players,
			ReadyToStart: status.ReadyToStart,
			GameStarted:  status.GameStarted,
		}, nil

	case ActionStartGame:
		if err := requireFields(req, fieldLobbyCode); err != nil {
			return nil, err
		}
		if err := d.service.StartGame(ctx, playerID, req.LobbyCode); err != nil {
			return nil, err
		}
		return &AckResponse{Status: StatusSuccess}, nil

	case ActionSetCategory:
		if err := requireFields(req, fieldLobbyCode, fieldCategory); err != nil {
			return nil, err
		}
		if _, err := d.service.SetCategory(ctx, playerID, req.LobbyCode, req.Category); err != nil {
			return nil, err
		}
		return &AckResponse{Status: StatusSuccess}, nil

	case ActionGuess:
		if err := requireFields(req, fieldLobbyCode, fieldLetter); err != nil {
			return nil, err
		}
		view, err := d.service.Guess(ctx, playerID, req.LobbyCode, req.Letter)
		if err != nil {
			return nil, err
		}
		return &GameStateResponse{Status: StatusSuccess, GameState: view}, nil

	case ActionGetGameState:
		if err := requireFields(req, fieldLobbyCode); err != nil {
			return nil, err
		}
		view, err := d.service.GameState(ctx, req.LobbyCode)
		if err != nil {
			return nil, err
		}
		return &GameStateResponse{Status: StatusSuccess, GameState: view}, nil

	case ActionListCategories:
		categories, err := d.service.ListCategories(ctx)
		if err != nil {
			return nil, err
		}
		return &CategoriesResponse{Status: StatusSuccess, Categories: categories}, nil

	default:
		return nil, fmt.Errorf("invalid action: %q", req.Action)
	}
}

// Required request fields, checked before any session state is touched
type field int

const (
	fieldName field = iota
	fieldLobbyCode
	fieldCategory
	fieldLetter
)

func requireFields(req *Request, fields ...field) error {
	for _, f := range fields {
		switch f {
		case fieldName:
			if req.Name == "" {
				return fmt.Errorf("malformed request: missing field %q", "name")
			}
		case fieldLobbyCode:
			if req.LobbyCode == "" {
				return fmt.Errorf("malformed request: missing field %q", "lobby_code")
			}
		case fieldCategory:
			if req.Category == "" {
				return fmt.Errorf("malformed request: missing field %q", "category")
			}
		case fieldLetter:
			if len(req.Letter) != 1 {
				return fmt.Errorf("malformed request: field %q must be a single letter", "letter")
			}
		}
	}
	return nil
}

func errorResponse(message string) *ErrorResponse {
	return &ErrorResponse{Status: StatusError, Message: message}
}

func encode(v interface{}) []byte {
	data, err := json.Marshal(v)
	if err != nil {
		// Response types cannot fail to marshal; keep the contract anyway
		return []byte(`{"status":"error","message":"internal encoding error"}`)
	}
	return data
}
