package controllers

import (
	"errors"
	"net/http"
	"sort"

	"github.com/gin-gonic/gin"

	"quizmaster/catalog"
	"quizmaster/localization"
	"quizmaster/models"
	"quizmaster/services"
)

// LeaderboardController combines the static seed competitors with the
// current user's aggregate score and ranks everyone.
type LeaderboardController struct {
	users    *services.UserService
	sessions *services.SessionManager
}

func NewLeaderboardController(users *services.UserService, sessions *services.SessionManager) *LeaderboardController {
	return &LeaderboardController{users: users, sessions: sessions}
}

func (lc *LeaderboardController) GetLeaderboard(c *gin.Context) {
	email := c.GetString("email")
	uiLang := c.DefaultQuery("lang", "en")

	entries := append([]models.LeaderboardEntry(nil), catalog.LeaderboardSeed...)

	user, err := lc.users.Get(c.Request.Context(), email)
	if err != nil && !errors.Is(err, services.ErrNotFound) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch leaderboard"})
		return
	}
	if user != nil {
		history := lc.sessions.Machine(email).History()
		entries = append(entries, models.LeaderboardEntry{
			Name:          user.Name,
			Picture:       user.Picture,
			Score:         services.LeaderboardScore(history),
			IsCurrentUser: true,
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Score > entries[j].Score
	})
	type rankedEntry struct {
		models.LeaderboardEntry
		Points string `json:"points"`
	}
	ranked := make([]rankedEntry, 0, len(entries))
	for i, entry := range entries {
		entry.Rank = i + 1
		ranked = append(ranked, rankedEntry{
			LeaderboardEntry: entry,
			Points: localization.Translate(uiLang, "leaderboard.points",
				map[string]interface{}{"score": entry.Score}),
		})
	}

	c.JSON(http.StatusOK, ranked)
}
