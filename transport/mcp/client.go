package mcp

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/wordgrid/hangman-server/client"
	"github.com/wordgrid/hangman-server/game/engine"
)

// Client is a thin MCP server that proxies tool calls to the lobby server
type Client struct {
	serverAddr string
	mcpServer  *server.MCPServer

	mu   sync.Mutex
	conn *client.Client
}

// NewClient creates an MCP proxy targeting the lobby server at serverAddr
func NewClient(serverAddr string) *Client {
	c := &Client{serverAddr: serverAddr}
	c.initMCPServer()
	return c
}

// initMCPServer initializes the MCP server with all tools
func (c *Client) initMCPServer() {
	c.mcpServer = server.NewMCPServer(
		"Multiplayer Hangman",
		"1.0.0",
		server.WithToolCapabilities(true),
		server.WithInstructions(`Multiplayer Hangman - MCP Interface

This session is one player on a shared hangman lobby server.

GAME FLOW:
1. create_lobby (you become the host) or join_lobby with a code someone shared
2. Poll lobby_status until at least 2 players joined
3. As host: start_game, then set_category to begin play
4. Take turns with guess; poll game_state between your turns

The word is masked with '_' for unguessed letters. Seven wrong guesses
lose the game for everyone; completing the word wins it for whoever
guessed the last letter.

AVAILABLE TOOLS:
- create_lobby: Create a new lobby, returns its 6-character code
- join_lobby: Join an existing lobby by code
- lobby_status: Player roster and readiness of a lobby
- start_game: Host-only readiness check before picking a category
- set_category: Host-only; draws the word and starts play
- guess: Guess a single letter on your turn
- game_state: Current masked word, strikes, and whose turn it is
- list_categories: Available word categories`),
	)

	c.registerTools()
}

// registerTools registers all MCP tools
func (c *Client) registerTools() {
	c.mcpServer.AddTool(mcp.Tool{
		Name:        "create_lobby",
		Description: "Create a new hangman lobby and become its host",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"name": map[string]interface{}{
					"type":        "string",
					"description": "Display name, 1-15 printable characters",
				},
			},
			Required: []string{"name"},
		},
	}, c.handleCreateLobby)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "join_lobby",
		Description: "Join an existing lobby by its 6-character code",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"lobby_code": map[string]interface{}{
					"type":        "string",
					"description": "6-character lobby code",
				},
				"name": map[string]interface{}{
					"type":        "string",
					"description": "Display name, 1-15 printable characters",
				},
			},
			Required: []string{"lobby_code", "name"},
		},
	}, c.handleJoinLobby)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "lobby_status",
		Description: "Get the player roster and readiness of a lobby",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"lobby_code": map[string]interface{}{
					"type":        "string",
					"description": "6-character lobby code",
				},
			},
			Required: []string{"lobby_code"},
		},
	}, c.handleLobbyStatus)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "start_game",
		Description: "Host-only: verify the lobby can start (at least 2 players)",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"lobby_code": map[string]interface{}{
					"type":        "string",
					"description": "6-character lobby code",
				},
			},
			Required: []string{"lobby_code"},
		},
	}, c.handleStartGame)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "set_category",
		Description: "Host-only: pick the word category and begin play",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"lobby_code": map[string]interface{}{
					"type":        "string",
					"description": "6-character lobby code",
				},
				"category": map[string]interface{}{
					"type":        "string",
					"description": "Word category, see list_categories",
				},
			},
			Required: []string{"lobby_code", "category"},
		},
	}, c.handleSetCategory)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "guess",
		Description: "Guess a single letter A-Z on your turn",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"lobby_code": map[string]interface{}{
					"type":        "string",
					"description": "6-character lobby code",
				},
				"letter": map[string]interface{}{
					"type":        "string",
					"description": "Single uppercase letter",
				},
			},
			Required: []string{"lobby_code", "letter"},
		},
	}, c.handleGuess)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "game_state",
		Description: "Get the current game state of a lobby",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"lobby_code": map[string]interface{}{
					"type":        "string",
					"description": "6-character lobby code",
				},
			},
			Required: []string{"lobby_code"},
		},
	}, c.handleGameState)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "list_categories",
		Description: "List the available word categories",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, c.handleListCategories)
}

// GetMCPServer returns the underlying MCP server for serving
func (c *Client) GetMCPServer() *server.MCPServer {
	return c.mcpServer
}

// protocolClient returns the shared connection to the lobby server,
// dialing on first use. One connection means one player identity for the
// whole MCP session.
func (c *Client) protocolClient() (*client.Client, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.conn == nil {
		conn, err := client.Dial(c.serverAddr)
		if err != nil {
			return nil, err
		}
		c.conn = conn
	}
	return c.conn, nil
}

// Close releases the connection to the lobby server
func (c *Client) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.conn == nil {
		return nil
	}
	err := c.conn.Close()
	c.conn = nil
	return err
}

// Tool handlers

func (c *Client) handleCreateLobby(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	name, _ := args["name"].(string)

	conn, err := c.protocolClient()
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	code, err := conn.CreateLobby(name)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := fmt.Sprintf("Created lobby %s\nShare this code with other players, then poll lobby_status.", code)
	return mcp.NewToolResultText(result), nil
}

func (c *Client) handleJoinLobby(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	code, _ := args["lobby_code"].(string)
	name, _ := args["name"].(string)

	conn, err := c.protocolClient()
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	if err := conn.JoinLobby(code, name); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(fmt.Sprintf("Joined lobby %s as %s", strings.ToUpper(code), name)), nil
}

func (c *Client) handleLobbyStatus(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	code, _ := args["lobby_code"].(string)

	conn, err := c.protocolClient()
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	status, err := conn.LobbyStatus(code)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := fmt.Sprintf("Lobby %s: %d player(s): %s\nReady to start: %v\nGame started: %v",
		strings.ToUpper(code), status.PlayerCount, strings.Join(status.Players, ", "),
		status.ReadyToStart, status.GameStarted)
	return mcp.NewToolResultText(result), nil
}

func (c *Client) handleStartGame(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	code, _ := args["lobby_code"].(string)

	conn, err := c.protocolClient()
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	if err := conn.StartGame(code); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText("Lobby is ready. Call set_category to begin play."), nil
}

func (c *Client) handleSetCategory(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	code, _ := args["lobby_code"].(string)
	category, _ := args["category"].(string)

	conn, err := c.protocolClient()
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	if err := conn.SetCategory(code, category); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(fmt.Sprintf("Game started with category %s. Check game_state for whose turn it is.", category)), nil
}

func (c *Client) handleGuess(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	code, _ := args["lobby_code"].(string)
	letter, _ := args["letter"].(string)

	conn, err := c.protocolClient()
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	state, err := conn.Guess(code, letter)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(formatGameState(state)), nil
}

func (c *Client) handleGameState(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	code, _ := args["lobby_code"].(string)

	conn, err := c.protocolClient()
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	state, err := conn.GameState(code)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(formatGameState(state)), nil
}

func (c *Client) handleListCategories(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	conn, err := c.protocolClient()
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	categories, err := conn.ListCategories()
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText("Categories: " + strings.Join(categories, ", ")), nil
}

// formatGameState renders a game view as readable text for the MCP caller
func formatGameState(state *engine.GameStateView) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Word: %s\n", spaced(state.Word))
	fmt.Fprintf(&b, "Category: %s\n", state.Category)
	fmt.Fprintf(&b, "Guessed: %s\n", strings.Join(state.GuessedLetters, " "))
	fmt.Fprintf(&b, "Wrong guesses: %d/%d\n", state.WrongGuesses, engine.MaxWrongGuesses)

	if state.GameOver {
		if state.Winner != "" {
			fmt.Fprintf(&b, "Game over - %s won!", state.Winner)
		} else {
			b.WriteString("Game over - the word was not found.")
		}
	} else {
		fmt.Fprintf(&b, "Current turn: %s", state.CurrentPlayerName)
	}

	return b.String()
}

// spaced separates the masked word's characters for readability
func spaced(word string) string {
	parts := make([]string, 0, len(word))
	for _, r := range word {
		parts = append(parts, string(r))
	}
	return strings.Join(parts, " ")
}
