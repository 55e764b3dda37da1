package repository

import "time"

// Category represents a scoring category row. IDs are the category
// indexes 0-11.
type Category struct {
	ID   int
	Name string
}

// Game represents a finished game row.
type Game struct {
	ID          string
	Mode        string
	Seed        int64
	PlayerCount int
	CreatedAt   time.Time
	Players     []GamePlayer // ordered by rank, then seat
}

// GamePlayer represents one player's final line in a game.
type GamePlayer struct {
	ID     string
	GameID string
	Name   string
	Seat   int
	Rank   int
	Total  int
	Scores []CategoryScore // filled categories only, by category id
}

// CategoryScore is the points a player scored in one category.
type CategoryScore struct {
	CategoryID int
	Name       string
	Points     int
}

// LeaderboardEntry is one player result among the best totals ever recorded.
type LeaderboardEntry struct {
	GameID   string
	Name     string
	Mode     string
	Total    int
	Rank     int
	PlayedAt time.Time
}
