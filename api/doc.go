// Package api implements the request/response protocol of the hangman
// lobby server.
//
// Every transport (TCP, WebSocket, MCP via the client library) carries the
// same message shape: a single JSON request object with an "action" field,
// answered by a single JSON response object with a "status" field of
// either "success" or "error". The Dispatcher decodes a raw request,
// validates its fields, invokes the matching service operation for the
// requesting player, and encodes the response. It never returns invalid
// JSON and never lets a bad request take down a connection handler.
//
// Actions:
//
//	create_lobby        {name}                    -> {lobby_code}
//	join_lobby          {lobby_code, name}        -> {lobby_code}
//	check_lobby_status  {lobby_code}              -> {player_count, players, ready_to_start, game_started}
//	start_game          {lobby_code}              -> {}
//	set_category        {lobby_code, category}    -> {}
//	guess               {lobby_code, letter}      -> {game_state}
//	get_game_state      {lobby_code}              -> {game_state}
//	list_categories     {}                        -> {categories}
package api
