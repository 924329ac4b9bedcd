package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"quizmaster/catalog"
	"quizmaster/services"
)

// HistoryController serves the completed-quiz log and the achievement
// catalog annotated with the user's unlock state.
type HistoryController struct {
	users    *services.UserService
	sessions *services.SessionManager
}

func NewHistoryController(users *services.UserService, sessions *services.SessionManager) *HistoryController {
	return &HistoryController{users: users, sessions: sessions}
}

func (hc *HistoryController) GetHistory(c *gin.Context) {
	email := c.GetString("email")
	c.JSON(http.StatusOK, hc.sessions.Machine(email).History())
}

func (hc *HistoryController) GetAchievements(c *gin.Context) {
	email := c.GetString("email")

	user, err := hc.users.Get(c.Request.Context(), email)
	if err != nil && !errors.Is(err, services.ErrNotFound) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch achievements"})
		return
	}

	type achievementView struct {
		ID          string `json:"id"`
		Name        string `json:"name"`
		Description string `json:"description"`
		Icon        string `json:"icon"`
		Unlocked    bool   `json:"unlocked"`
	}

	out := make([]achievementView, 0, len(catalog.Achievements))
	for _, a := range catalog.Achievements {
		unlocked := user != nil && user.HasAchievement(a.ID)
		out = append(out, achievementView{
			ID:          a.ID,
			Name:        a.Name,
			Description: a.Description,
			Icon:        a.Icon,
			Unlocked:    unlocked,
		})
	}

	c.JSON(http.StatusOK, out)
}
