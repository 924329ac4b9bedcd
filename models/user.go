package models

import (
	"time"
)

// User defines a learner profile. The email is the identity key; the
// record is merged with any previously persisted profile at login and
// is never deleted by the application (logout only clears the saved
// in-progress quiz).
type User struct {
	Name                 string    `bson:"name" json:"name"`
	Email                string    `bson:"email" json:"email"`
	Picture              string    `bson:"picture" json:"picture"`
	PasswordHash         string    `bson:"passwordHash,omitempty" json:"-"`
	UnlockedAchievements []string  `bson:"unlockedAchievements" json:"unlockedAchievements"`
	HasSelectedAvatar    bool      `bson:"hasSelectedAvatar" json:"hasSelectedAvatar"`
	LongestStreakEver    int       `bson:"longestStreakEver" json:"longestStreakEver"`
	CreatedAt            time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt            time.Time `bson:"updatedAt" json:"updatedAt"`
}

// HasAchievement reports whether the achievement id is already in the
// user's unlocked set.
func (u *User) HasAchievement(id string) bool {
	for _, a := range u.UnlockedAchievements {
		if a == id {
			return true
		}
	}
	return false
}
