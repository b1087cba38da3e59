// Package websocket provides a WebSocket transport for the hangman lobby
// server.
//
// It carries exactly the same request/response protocol as the TCP
// transport; WebSocket message boundaries replace the newline framing.
// There is no push channel and no broadcast: clients poll the server just
// as they do over TCP, one request per message, one response per message.
//
// Each upgraded connection receives its own player identifier, so a
// browser tab is a player the same way a raw TCP connection is.
package websocket
