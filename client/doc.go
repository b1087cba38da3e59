// Package client implements a minimal protocol client for the hangman
// lobby server.
//
// A Client owns one TCP connection and therefore one player identity on
// the server. All methods are plain request/response calls with
// newline-delimited JSON framing; an error response from the server is
// surfaced as a *ServerError carrying the server's message. The client is
// safe for use from multiple goroutines; calls on one connection are
// serialized, matching the one-request-in-flight protocol.
//
// Usage:
//
//	c, err := client.Dial("localhost:65432")
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer c.Close()
//
//	code, err := c.CreateLobby("Alice")
//	state, err := c.GameState(code)
package client
