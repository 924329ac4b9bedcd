package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"quizmaster/catalog"
	"quizmaster/services"
)

// ProfileController serves profile reads and edits, avatar selection
// and the derived profile statistics.
type ProfileController struct {
	users    *services.UserService
	sessions *services.SessionManager
}

func NewProfileController(users *services.UserService, sessions *services.SessionManager) *ProfileController {
	return &ProfileController{users: users, sessions: sessions}
}

// GetProfile retrieves the authenticated user's profile.
func (pc *ProfileController) GetProfile(c *gin.Context) {
	email := c.GetString("email")

	user, err := pc.users.Get(c.Request.Context(), email)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	c.JSON(http.StatusOK, user)
}

type updateProfileRequest struct {
	Name    string `json:"name"`
	Picture string `json:"picture"`
}

// UpdateProfile applies a name/picture edit.
func (pc *ProfileController) UpdateProfile(c *gin.Context) {
	email := c.GetString("email")

	var req updateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	user, err := pc.users.UpdateProfile(c.Request.Context(), email, req.Name, req.Picture, nil)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update profile"})
		return
	}

	c.JSON(http.StatusOK, user)
}

type selectAvatarRequest struct {
	Picture string `json:"picture" binding:"required"`
}

// SelectAvatar sets the chosen avatar and marks the one-time selection
// flow as done.
func (pc *ProfileController) SelectAvatar(c *gin.Context) {
	email := c.GetString("email")

	var req selectAvatarRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	valid := false
	for _, avatar := range catalog.AvatarList {
		if avatar == req.Picture {
			valid = true
			break
		}
	}
	if !valid {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown avatar"})
		return
	}

	selected := true
	user, err := pc.users.UpdateProfile(c.Request.Context(), email, "", req.Picture, &selected)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to select avatar"})
		return
	}

	c.JSON(http.StatusOK, user)
}

// Avatars lists the selectable avatars.
func (pc *ProfileController) Avatars(c *gin.Context) {
	c.JSON(http.StatusOK, catalog.AvatarList)
}

// GetStats returns the derived statistics for the profile screen.
func (pc *ProfileController) GetStats(c *gin.Context) {
	email := c.GetString("email")

	history := pc.sessions.Machine(email).History()
	c.JSON(http.StatusOK, services.ComputeStats(history))
}
