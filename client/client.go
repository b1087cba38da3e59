package client

import (
	"bufio"
	"encoding/json"
	"fmt"
	"net"
	"sync"

	"github.com/wordgrid/hangman-server/api"
	"github.com/wordgrid/hangman-server/game/engine"
)

// ServerError is an error response returned by the server
type ServerError struct {
	Message string
}

func (e *ServerError) Error() string {
	return e.Message
}

// Client is a protocol client bound to one connection / player identity
type Client struct {
	conn   net.Conn
	reader *bufio.Reader
	mu     sync.Mutex
}

// Dial connects to a hangman lobby server at addr
func Dial(addr string) (*Client, error) {
	conn, err := net.Dial("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to server: %w", err)
	}

	return &Client{
		conn:   conn,
		reader: bufio.NewReader(conn),
	}, nil
}

// Close closes the underlying connection
func (c *Client) Close() error {
	return c.conn.Close()
}

// CreateLobby creates a lobby with this client as host and returns its code
func (c *Client) CreateLobby(name string) (string, error) {
	var resp api.LobbyResponse
	err := c.do(api.Request{Action: api.ActionCreateLobby, Name: name}, &resp)
	if err != nil {
		return "", err
	}
	return resp.LobbyCode, nil
}

// JoinLobby joins an existing lobby
func (c *Client) JoinLobby(code, name string) error {
	var resp api.LobbyResponse
	return c.do(api.Request{Action: api.ActionJoinLobby, LobbyCode: code, Name: name}, &resp)
}

// LobbyStatus returns the waiting-screen summary for a lobby
func (c *Client) LobbyStatus(code string) (*api.LobbyStatusResponse, error) {
	var resp api.LobbyStatusResponse
	err := c.do(api.Request{Action: api.ActionCheckLobbyStatus, LobbyCode: code}, &resp)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

// StartGame asks the server whether this client may start the game
func (c *Client) StartGame(code string) error {
	var resp api.AckResponse
	return c.do(api.Request{Action: api.ActionStartGame, LobbyCode: code}, &resp)
}

// SetCategory picks the category and begins play
func (c *Client) SetCategory(code, category string) error {
	var resp api.AckResponse
	return c.do(api.Request{Action: api.ActionSetCategory, LobbyCode: code, Category: category}, &resp)
}

// Guess submits a letter and returns the resulting game state
func (c *Client) Guess(code, letter string) (*engine.GameStateView, error) {
	var resp api.GameStateResponse
	err := c.do(api.Request{Action: api.ActionGuess, LobbyCode: code, Letter: letter}, &resp)
	if err != nil {
		return nil, err
	}
	return resp.GameState, nil
}

// GameState polls the current game state
func (c *Client) GameState(code string) (*engine.GameStateView, error) {
	var resp api.GameStateResponse
	err := c.do(api.Request{Action: api.ActionGetGameState, LobbyCode: code}, &resp)
	if err != nil {
		return nil, err
	}
	return resp.GameState, nil
}

// ListCategories returns the server's word categories
func (c *Client) ListCategories() ([]string, error) {
	var resp api.CategoriesResponse
	err := c.do(api.Request{Action: api.ActionListCategories}, &resp)
	if err != nil {
		return nil, err
	}
	return resp.Categories, nil
}

// do sends one framed request and decodes the single framed response.
// Calls are serialized so concurrent use cannot interleave frames.
func (c *Client) do(req api.Request, result interface{}) error {
	data, err := json.Marshal(req)
	if err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if _, err := c.conn.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}

	line, err := c.reader.ReadBytes('\n')
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	// Check the envelope before decoding the payload
	var envelope struct {
		Status  string `json:"status"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(line, &envelope); err != nil {
		return fmt.Errorf("invalid response from server: %w", err)
	}
	if envelope.Status == api.StatusError {
		return &ServerError{Message: envelope.Message}
	}

	return json.Unmarshal(line, result)
}
