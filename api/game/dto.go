// Package gameapi exposes game sessions and the leaderboard over HTTP.
package gameapi

import (
	"github.com/beka-birhanu/snowmaze/game"
	"github.com/beka-birhanu/snowmaze/maze"
)

// GameCreatedResponse identifies a newly started game.
type GameCreatedResponse struct {
	ID string `json:"id"`
}

// InputRequest sets the hero's next direction: north, south, east, west or none.
type InputRequest struct {
	Direction string `json:"direction" binding:"required"`
}

// ActionRequest runs an item action: pickup or dig.
type ActionRequest struct {
	Action string `json:"action" binding:"required"`
}

// ActionResponse reports whether the action changed anything.
type ActionResponse struct {
	Applied bool `json:"applied"`
}

// Position is a cell on the maze.
type Position struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// GameStateResponse is a full view of a game.
type GameStateResponse struct {
	ID       string    `json:"id"`
	Rows     []string  `json:"rows"`
	Hero     Position  `json:"hero"`
	Pursuer  Position  `json:"pursuer"`
	IcePick  *Position `json:"ice_pick,omitempty"`
	Carrying bool      `json:"carrying_ice_pick"`
	State    string    `json:"state"`
	Ticks    int       `json:"ticks"`
	Distance int       `json:"distance"`
}

// LeaderboardResponse is a page of the leaderboard and the number of ranked players.
type LeaderboardResponse struct {
	Total   int64                      `json:"total"`
	Entries []LeaderboardEntryResponse `json:"entries"`
}

// LeaderboardEntryResponse is one ranked escape.
type LeaderboardEntryResponse struct {
	Rank     int    `json:"rank"`
	Username string `json:"username"`
	Ticks    int    `json:"ticks"`
}

func toPosition(p maze.CellPosition) Position {
	return Position{Row: p.Row, Col: p.Col}
}

func toGameState(id string, s game.Snapshot) *GameStateResponse {
	resp := &GameStateResponse{
		ID:       id,
		Rows:     s.Rows,
		Hero:     toPosition(s.Hero),
		Pursuer:  toPosition(s.Pursuer),
		Carrying: s.Carrying,
		State:    s.State.String(),
		Ticks:    s.Ticks,
		Distance: s.Distance,
	}
	if s.IcePick != nil {
		pick := toPosition(*s.IcePick)
		resp.IcePick = &pick
	}
	return resp
}
