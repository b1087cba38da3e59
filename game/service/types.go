package service

// LobbyInfo is returned after creating or joining a lobby
type LobbyInfo struct {
	LobbyCode string `json:"lobby_code"`
}
