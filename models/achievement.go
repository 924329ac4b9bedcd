package models

import (
	"time"
)

// Achievement is a static badge definition. Unlock state lives on
// User.UnlockedAchievements, not here.
type Achievement struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

// AchievementEvent is broadcast over the websocket hub when a badge is
// newly unlocked.
type AchievementEvent struct {
	Type        string    `json:"type"`
	Email       string    `json:"email"`
	Achievement string    `json:"achievement"`
	Timestamp   time.Time `json:"timestamp"`
}
