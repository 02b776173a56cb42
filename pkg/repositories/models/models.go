package models

import (
	"time"

	"github.com/google/uuid"
)

// Score is a finished game stored on a leaderboard.
type Score struct {
	ID            uuid.UUID `json:"id"`
	Board         string    `json:"board"`
	UserID        string    `json:"user_id,omitempty"`
	Name          string    `json:"name"`
	Score         int       `json:"score"`
	Cubes         int       `json:"cubes"`
	SecondsPlayed int       `json:"seconds_played"`
	PlayedAt      time.Time `json:"played_at"`
}

// Board summarizes one leaderboard.
type Board struct {
	Name      string `json:"name"`
	Games     int    `json:"games"`
	HighScore int    `json:"high_score"`
}
