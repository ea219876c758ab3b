// Package mazeapi exposes maze generation over HTTP.
package mazeapi

// MazeQuery holds the query parameters of the public image routes.
type MazeQuery struct {
	Width  int    `form:"width" binding:"required"`
	Height int    `form:"height" binding:"required"`
	Noise  string `form:"noise"`
	Seed   string `form:"seed"`
	Format string `form:"format"`
}

// CreateMazeRequest represents a request to generate and save a maze.
type CreateMazeRequest struct {
	Width  int    `json:"width" binding:"required"`
	Height int    `json:"height" binding:"required"`
	Noise  string `json:"noise"`
	Seed   string `json:"seed"`
}

// RulesResponse carries the maze image rules.
type RulesResponse struct {
	Rules string `json:"rules"`
}
