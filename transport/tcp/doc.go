// Package tcp provides the TCP transport for the hangman lobby server.
//
// Each accepted connection is served by its own goroutine running a plain
// request/response loop: read one message, dispatch, write one response,
// repeat until the peer hangs up or an IO error occurs. Messages are
// framed as newline-delimited JSON in both directions, so requests and
// responses survive being split or coalesced across TCP reads.
//
// Every connection is assigned a fresh player identifier on accept; it is
// the identity used for session membership and turn checks for the
// lifetime of the connection. A failing connection only takes down its own
// handler, never the listener or other lobbies.
package tcp
