// Package mcp exposes the hangman lobby server over the Model Context
// Protocol.
//
// It is a thin proxy: every MCP tool call is translated into one protocol
// request on a TCP connection to the lobby server, using the client
// package. The MCP session holds a single connection, so an MCP user is a
// single player: it can host a lobby, join one, and take its turns like
// any other client.
//
// The server side of MCP (stdio transport) is provided by
// github.com/mark3labs/mcp-go; this package only registers the tools and
// formats their results.
package mcp
