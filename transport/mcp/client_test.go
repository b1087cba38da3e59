package mcp

import (
	"context"
	"strings"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/wordgrid/hangman-server/api"
	"github.com/wordgrid/hangman-server/game/engine"
	"github.com/wordgrid/hangman-server/game/service"
	"github.com/wordgrid/hangman-server/game/session"
	"github.com/wordgrid/hangman-server/game/words"
	"github.com/wordgrid/hangman-server/transport/tcp"
)

// fixedBank always serves APPLE so the end-to-end flow is deterministic
type fixedBank struct{}

func (fixedBank) WordFor(category string) (string, error) {
	if category != "Fruits" {
		return "", words.ErrUnknownCategory
	}
	return "APPLE", nil
}

func (fixedBank) Categories() []string { return []string{"Fruits"} }

func startLobbyServer(t *testing.T) string {
	t.Helper()

	svc := service.NewGameService(session.NewManager(), fixedBank{})
	server := tcp.NewServer("127.0.0.1:0", api.NewDispatcher(svc))
	if err := server.Start(); err != nil {
		t.Fatalf("Failed to start server: %v", err)
	}
	t.Cleanup(server.Stop)
	return server.Addr().String()
}

func callTool(name string, args map[string]interface{}) mcp.CallToolRequest {
	return mcp.CallToolRequest{
		Params: mcp.CallToolParams{
			Name:      name,
			Arguments: args,
		},
	}
}

func resultText(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()

	if result == nil || len(result.Content) == 0 {
		t.Fatal("Expected result with content")
	}
	text, ok := result.Content[0].(mcp.TextContent)
	if !ok {
		t.Fatal("Expected text content in result")
	}
	return text.Text
}

func TestNewClient(t *testing.T) {
	client := NewClient("127.0.0.1:7777")

	if client == nil {
		t.Fatal("Expected client to be created")
	}

	if client.serverAddr != "127.0.0.1:7777" {
		t.Errorf("Expected server address 127.0.0.1:7777, got %s", client.serverAddr)
	}

	if client.mcpServer == nil {
		t.Error("Expected MCP server to be initialized")
	}

	if client.GetMCPServer() == nil {
		t.Error("Expected GetMCPServer to return the MCP server")
	}
}

func TestClient_CreateAndInspectLobby(t *testing.T) {
	addr := startLobbyServer(t)

	client := NewClient(addr)
	defer client.Close()
	ctx := context.Background()

	result, err := client.handleCreateLobby(ctx, callTool("create_lobby", map[string]interface{}{
		"name": "Alice",
	}))
	if err != nil {
		t.Fatalf("handleCreateLobby failed: %v", err)
	}

	text := resultText(t, result)
	if !strings.Contains(text, "Created lobby ") {
		t.Fatalf("Expected lobby code in result, got: %s", text)
	}
	code := strings.Fields(strings.Split(text, "\n")[0])[2]
	if len(code) != 6 {
		t.Fatalf("Expected 6-character lobby code, got %q", code)
	}

	result, err = client.handleLobbyStatus(ctx, callTool("lobby_status", map[string]interface{}{
		"lobby_code": code,
	}))
	if err != nil {
		t.Fatalf("handleLobbyStatus failed: %v", err)
	}

	text = resultText(t, result)
	if !strings.Contains(text, "1 player(s): Alice") {
		t.Errorf("Expected Alice alone in roster, got: %s", text)
	}
	if !strings.Contains(text, "Ready to start: false") {
		t.Errorf("Expected lobby not ready with one player, got: %s", text)
	}
}

func TestClient_ErrorsBecomeToolErrors(t *testing.T) {
	addr := startLobbyServer(t)

	client := NewClient(addr)
	defer client.Close()
	ctx := context.Background()

	result, err := client.handleJoinLobby(ctx, callTool("join_lobby", map[string]interface{}{
		"lobby_code": "NOPE99",
		"name":       "Bob",
	}))
	if err != nil {
		t.Fatalf("Handler should report server errors in the result, got: %v", err)
	}
	if !result.IsError {
		t.Error("Expected an error result for an unknown lobby")
	}
	if !strings.Contains(resultText(t, result), "invalid lobby code") {
		t.Errorf("Expected invalid lobby code message, got: %s", resultText(t, result))
	}
}

func TestClient_ListCategories(t *testing.T) {
	addr := startLobbyServer(t)

	client := NewClient(addr)
	defer client.Close()
	ctx := context.Background()

	result, err := client.handleListCategories(ctx, callTool("list_categories", map[string]interface{}{}))
	if err != nil {
		t.Fatalf("handleListCategories failed: %v", err)
	}

	text := resultText(t, result)
	if !strings.Contains(text, "Fruits") {
		t.Errorf("Expected Fruits in categories, got: %s", text)
	}
}

func TestClient_SingleIdentityPerSession(t *testing.T) {
	addr := startLobbyServer(t)

	client := NewClient(addr)
	defer client.Close()
	ctx := context.Background()

	result, err := client.handleCreateLobby(ctx, callTool("create_lobby", map[string]interface{}{
		"name": "Alice",
	}))
	if err != nil {
		t.Fatalf("handleCreateLobby failed: %v", err)
	}
	code := strings.Fields(strings.Split(resultText(t, result), "\n")[0])[2]

	// The proxy reuses one connection, so joining a lobby this session
	// already hosts is rejected.
	result, err = client.handleJoinLobby(ctx, callTool("join_lobby", map[string]interface{}{
		"lobby_code": code,
		"name":       "AliceAgain",
	}))
	if err != nil {
		t.Fatalf("handleJoinLobby failed: %v", err)
	}
	if !result.IsError {
		t.Error("Expected joining own lobby on the same connection to fail")
	}
}

func TestFormatGameState(t *testing.T) {
	state := &engine.GameStateView{
		Word:              "A___E",
		GuessedLetters:    []string{"A", "E", "Z"},
		WrongGuesses:      1,
		CurrentPlayerName: "Bob",
		Category:          "Fruits",
	}

	result := formatGameState(state)

	expectedFields := []string{
		"Word: A _ _ _ E",
		"Category: Fruits",
		"Guessed: A E Z",
		"Wrong guesses: 1/7",
		"Current turn: Bob",
	}

	for _, field := range expectedFields {
		if !strings.Contains(result, field) {
			t.Errorf("Expected field %q in formatted output, got: %s", field, result)
		}
	}
}

func TestFormatGameState_Winner(t *testing.T) {
	state := &engine.GameStateView{
		Word:           "APPLE",
		GuessedLetters: []string{"A", "E", "L", "P"},
		GameOver:       true,
		Winner:         "Alice",
		Category:       "Fruits",
	}

	result := formatGameState(state)

	if !strings.Contains(result, "Alice won!") {
		t.Errorf("Expected winner announcement, got: %s", result)
	}
}

func TestFormatGameState_Loss(t *testing.T) {
	state := &engine.GameStateView{
		Word:           "_____",
		GuessedLetters: []string{"B", "C", "D", "F", "G", "H", "J"},
		WrongGuesses:   7,
		GameOver:       true,
		Category:       "Fruits",
	}

	result := formatGameState(state)

	if !strings.Contains(result, "the word was not found") {
		t.Errorf("Expected loss announcement, got: %s", result)
	}
}
